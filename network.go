package libloc

import (
	"net/netip"

	"github.com/arloliu/libloc/format"
)

// Network is information on an IP network, returned by Lookup.
//
// A Network borrows from its Locations handle: it is cheap to copy and must
// not be used after the handle is closed.
type Network struct {
	db     *Locations
	index  uint32
	prefix netip.Prefix
}

// CountryCode returns the ISO 3166-1 alpha-2 code of the country associated
// with the network, "XX" if unknown.
func (n Network) CountryCode() string {
	return n.db.networks.countryCode(n.index)
}

// ASN returns the autonomous system number of the network, 0 if unknown.
//
// An ASN of 0 only means the network record carries none; whether AS 0
// itself exists can only be answered by the AS table.
func (n Network) ASN() uint32 {
	return n.db.networks.record(n.index).ASN
}

// Flags returns the raw network flag bitfield, reserved bits included.
func (n Network) Flags() format.NetworkFlag {
	return n.db.networks.record(n.index).Flags
}

// IsAnonymousProxy reports whether the network hosts anonymous proxies.
func (n Network) IsAnonymousProxy() bool {
	return n.Flags().Has(format.FlagAnonymousProxy)
}

// IsSatelliteProvider reports whether the network is a satellite provider.
func (n Network) IsSatelliteProvider() bool {
	return n.Flags().Has(format.FlagSatelliteProvider)
}

// IsAnycast reports whether the network consists of anycast addresses.
func (n Network) IsAnycast() bool {
	return n.Flags().Has(format.FlagAnycast)
}

// IsDrop reports whether the network is flagged as hostile.
func (n Network) IsDrop() bool {
	return n.Flags().Has(format.FlagDrop)
}

// Prefix returns all the addresses belonging to this particular network: the
// CIDR of the trie path the match was found on. Matches inside the
// IPv4-mapped subtree of an IPv4 lookup are exposed as IPv4 prefixes.
func (n Network) Prefix() netip.Prefix {
	return n.prefix
}
