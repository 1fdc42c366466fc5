package libloc

// Country is information on a country, returned by Locations.Country.
//
// A Country borrows from its Locations handle: it is cheap to copy and must
// not be used after the handle is closed.
type Country struct {
	db    *Locations
	index uint32
}

// Code returns the ISO 3166-1 alpha-2 code of the country, two uppercase
// latin letters.
func (c Country) Code() string {
	return c.db.countries.code(c.index)
}

// ContinentCode returns the two-letter code of the continent the country
// resides in: "AF", "AN", "AS", "EU", "NA", "OC" or "SA".
func (c Country) ContinentCode() string {
	return c.db.countries.continentCode(c.index)
}

// Name returns the human-readable name of the country in English.
func (c Country) Name() string {
	return c.db.mustResolve(c.db.countries.record(c.index).NameRef)
}
