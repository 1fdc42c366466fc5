package libloc

import (
	"fmt"
	"math"
	"sort"
	"time"
	"unsafe"

	"github.com/arloliu/libloc/errs"
	"github.com/arloliu/libloc/internal/mmap"
	"github.com/arloliu/libloc/section"
)

// Locations is an opened libloc database. Main type of this package.
//
// The handle owns the memory mapping; every view returned by its methods
// aliases the mapped bytes and must not be used after Close.
type Locations struct {
	mm     *mmap.File
	header section.Header

	as        asTable
	networks  networkTable
	nodes     nodeTable
	countries countryTable
	pool      section.StringPool

	vendor      string
	description string
	license     string

	// Sort order is verified once at open; an unsorted table degrades the
	// keyed lookups to a linear scan instead of rejecting the database.
	asSorted        bool
	countriesSorted bool

	// v4Root is the node the 96-bit ::ffff:0:0/96 descent ends at, so IPv4
	// lookups skip straight to it. v4Best/v4BestDepth hold the last network
	// observed on that descent.
	v4Root      uint32
	v4Found     bool
	v4Best      uint32
	v4BestDepth int
}

// Open opens a libloc database file and memory-maps it read-only.
//
// Parameters:
//   - path: Path of the database file
//
// Returns:
//   - *Locations: The opened database handle
//   - error: An I/O or mapping error, or one of the errs sentinels when the
//     file is not a valid v1 database
func Open(path string) (*Locations, error) {
	mm, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	loc, err := newLocations(mm)
	if err != nil {
		_ = mm.Close()
		return nil, err
	}

	return loc, nil
}

func newLocations(mm *mmap.File) (*Locations, error) {
	data := mm.Bytes()

	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if err := header.Validate(uint64(len(data))); err != nil {
		return nil, err
	}

	loc := &Locations{
		mm:     mm,
		header: header,
		as: asTable{
			data:  segment(data, header.AS),
			count: header.AS.Count(section.ASSize),
		},
		networks: networkTable{
			data:  segment(data, header.Networks),
			count: header.Networks.Count(section.NetworkSize),
		},
		nodes: nodeTable{
			data:  segment(data, header.Nodes),
			count: header.Nodes.Count(section.NetworkNodeSize),
		},
		countries: countryTable{
			data:  segment(data, header.Countries),
			count: header.Countries.Count(section.CountrySize),
		},
		pool: section.NewStringPool(segment(data, header.Pool)),
	}

	if loc.networks.count > 0 && loc.nodes.count == 0 {
		return nil, errs.ErrMissingRoot
	}

	if loc.vendor, err = loc.pool.Resolve(header.Vendor); err != nil {
		return nil, fmt.Errorf("%w: vendor: %w", errs.ErrBadPoolString, err)
	}
	if loc.description, err = loc.pool.Resolve(header.Description); err != nil {
		return nil, fmt.Errorf("%w: description: %w", errs.ErrBadPoolString, err)
	}
	if loc.license, err = loc.pool.Resolve(header.License); err != nil {
		return nil, fmt.Errorf("%w: license: %w", errs.ErrBadPoolString, err)
	}

	loc.asSorted = loc.as.isSorted()
	loc.countriesSorted = loc.countries.isSorted()
	loc.precomputeV4()

	return loc, nil
}

// Close releases the memory mapping. Views obtained from the handle are
// invalid afterwards. Close is idempotent.
func (l *Locations) Close() error {
	return l.mm.Close()
}

// CreatedAt returns the database creation time as raw seconds since the Unix
// epoch.
func (l *Locations) CreatedAt() uint64 {
	return l.header.CreatedAt
}

// CreatedAtTime returns the database creation time as a UTC time.Time.
func (l *Locations) CreatedAtTime() time.Time {
	createdAt := l.header.CreatedAt
	if createdAt > math.MaxInt64 {
		corruptf("invalid created_at header: %d", createdAt)
	}

	return time.Unix(int64(createdAt), 0).UTC()
}

// Vendor returns the vendor string of the database, e.g. "IPFire Project".
func (l *Locations) Vendor() string {
	return l.vendor
}

// Description returns the free-form description of the database.
func (l *Locations) Description() string {
	return l.description
}

// License returns the license string of the database.
func (l *Locations) License() string {
	return l.license
}

// AS looks up an autonomous system by its number.
//
// The AS table is keyed by ASN; the lookup is a binary search unless the
// table turned out unsorted at open. The second return value is false when
// the ASN is not in the database.
func (l *Locations) AS(asn uint32) (AS, bool) {
	n := int(l.as.count)

	if l.asSorted {
		i := sort.Search(n, func(i int) bool {
			return l.as.number(uint32(i)) >= asn
		})
		if i < n && l.as.number(uint32(i)) == asn {
			return AS{db: l, index: uint32(i)}, true
		}

		return AS{}, false
	}

	for i := 0; i < n; i++ {
		if l.as.number(uint32(i)) == asn {
			return AS{db: l, index: uint32(i)}, true
		}
	}

	return AS{}, false
}

// Country looks up a country by its ISO 3166-1 alpha-2 code.
//
// The code must be exactly two ASCII bytes and is matched case-sensitively
// against the stored form (uppercase in practice); anything else misses
// without allocating.
func (l *Locations) Country(code string) (Country, bool) {
	if len(code) != 2 || code[0] >= 0x80 || code[1] >= 0x80 {
		return Country{}, false
	}

	key := uint16(code[0])<<8 | uint16(code[1])
	n := int(l.countries.count)

	if l.countriesSorted {
		i := sort.Search(n, func(i int) bool {
			return l.countries.codeKey(uint32(i)) >= key
		})
		if i < n && l.countries.codeKey(uint32(i)) == key {
			return Country{db: l, index: uint32(i)}, true
		}

		return Country{}, false
	}

	for i := 0; i < n; i++ {
		if l.countries.codeKey(uint32(i)) == key {
			return Country{db: l, index: uint32(i)}, true
		}
	}

	return Country{}, false
}

func segment(data []byte, r section.FileRange) []byte {
	return data[uint64(r.Offset) : uint64(r.Offset)+uint64(r.Length)]
}

// corruptf reports corruption observed after a successful open. This is the
// documented panic contract: query paths do not return errors.
func corruptf(format string, args ...any) {
	panic(fmt.Sprintf("corrupt libloc database: "+format, args...))
}

// mustResolve resolves a pool string on a query path, where a dangling
// reference is corruption rather than an error.
func (l *Locations) mustResolve(offset uint32) string {
	s, err := l.pool.Resolve(offset)
	if err != nil {
		corruptf("%v", err)
	}

	return s
}

// asciiString returns a zero-copy string over bytes of the mapping.
func asciiString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(b), len(b))
}

// asTable is the fixed-stride view of the AS segment.
type asTable struct {
	data  []byte
	count uint32
}

func (t *asTable) slice(i uint32) []byte {
	if i >= t.count {
		corruptf("invalid as index: %d >= %d", i, t.count)
	}
	off := int(i) * section.ASSize

	return t.data[off : off+section.ASSize]
}

func (t *asTable) record(i uint32) section.AS {
	var rec section.AS
	_ = rec.Parse(t.slice(i))

	return rec
}

func (t *asTable) number(i uint32) uint32 {
	return t.record(i).Number
}

func (t *asTable) isSorted() bool {
	for i := uint32(1); i < t.count; i++ {
		if t.number(i-1) > t.number(i) {
			return false
		}
	}

	return true
}

// networkTable is the fixed-stride view of the network segment.
type networkTable struct {
	data  []byte
	count uint32
}

func (t *networkTable) slice(i uint32) []byte {
	if i >= t.count {
		corruptf("invalid network index: %d >= %d", i, t.count)
	}
	off := int(i) * section.NetworkSize

	return t.data[off : off+section.NetworkSize]
}

func (t *networkTable) record(i uint32) section.Network {
	var rec section.Network
	_ = rec.Parse(t.slice(i))

	return rec
}

func (t *networkTable) countryCode(i uint32) string {
	return asciiString(t.slice(i)[:2])
}

// nodeTable is the fixed-stride view of the trie node segment.
type nodeTable struct {
	data  []byte
	count uint32
}

func (t *nodeTable) node(i uint32) section.NetworkNode {
	if i >= t.count {
		corruptf("invalid network node index: %d >= %d", i, t.count)
	}
	off := int(i) * section.NetworkNodeSize

	var n section.NetworkNode
	_ = n.Parse(t.data[off : off+section.NetworkNodeSize])

	return n
}

// countryTable is the fixed-stride view of the country segment.
type countryTable struct {
	data  []byte
	count uint32
}

func (t *countryTable) slice(i uint32) []byte {
	if i >= t.count {
		corruptf("invalid country index: %d >= %d", i, t.count)
	}
	off := int(i) * section.CountrySize

	return t.data[off : off+section.CountrySize]
}

func (t *countryTable) record(i uint32) section.Country {
	var rec section.Country
	_ = rec.Parse(t.slice(i))

	return rec
}

// codeKey packs the two code bytes into a comparable key.
func (t *countryTable) codeKey(i uint32) uint16 {
	b := t.slice(i)

	return uint16(b[0])<<8 | uint16(b[1])
}

func (t *countryTable) code(i uint32) string {
	return asciiString(t.slice(i)[:2])
}

func (t *countryTable) continentCode(i uint32) string {
	return asciiString(t.slice(i)[2:4])
}

func (t *countryTable) isSorted() bool {
	for i := uint32(1); i < t.count; i++ {
		if t.codeKey(i-1) > t.codeKey(i) {
			return false
		}
	}

	return true
}
