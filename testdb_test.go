package libloc

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/libloc/format"
	"github.com/arloliu/libloc/section"
	"github.com/stretchr/testify/require"
)

// dbBuilder assembles a database in memory from the section writers, laying
// the segments out in header order after the fixed header.
type dbBuilder struct {
	createdAt   uint64
	vendor      string
	description string
	license     string

	pool    []byte
	strings map[string]uint32

	as        []section.AS
	networks  []section.Network
	countries []section.Country
	nodes     []section.NetworkNode
}

func newDBBuilder() *dbBuilder {
	return &dbBuilder{
		createdAt:   1707258629, // 2024-02-06 22:30:29 UTC
		vendor:      "IPFire Project",
		description: "This is a geo location database",
		license:     "CC",
		strings:     map[string]uint32{},
		// root node
		nodes: []section.NetworkNode{{Network: section.NetworkNone}},
	}
}

func (b *dbBuilder) internString(s string) uint32 {
	if off, ok := b.strings[s]; ok {
		return off
	}

	off := uint32(len(b.pool))
	b.pool = append(b.pool, s...)
	b.pool = append(b.pool, 0)
	b.strings[s] = off

	return off
}

func (b *dbBuilder) addAS(asn uint32, name string) {
	b.as = append(b.as, section.AS{Number: asn, NameRef: b.internString(name)})
}

func (b *dbBuilder) addCountry(code, continent, name string) {
	c := section.Country{NameRef: b.internString(name)}
	copy(c.Code[:], code)
	copy(c.ContinentCode[:], continent)
	b.countries = append(b.countries, c)
}

// addNetwork appends a network record and inserts its prefix into the trie.
// IPv4 prefixes are inserted below the IPv4-mapped ::ffff:0:0/96 subtree.
func (b *dbBuilder) addNetwork(cidr, country string, asn uint32, flags format.NetworkFlag) {
	prefix := netip.MustParsePrefix(cidr)

	index := uint32(len(b.networks))
	rec := section.Network{ASN: asn, Flags: flags}
	copy(rec.CountryCode[:], country)
	b.networks = append(b.networks, rec)

	var a16 [16]byte
	bits := prefix.Bits()
	if prefix.Addr().Is4() {
		a4 := prefix.Addr().As4()
		a16[10], a16[11] = 0xFF, 0xFF
		copy(a16[12:], a4[:])
		bits += 96
	} else {
		a16 = prefix.Addr().As16()
	}

	cur := uint32(0)
	for i := 0; i < bits; i++ {
		bit := int(a16[i>>3]>>(7-i&7)) & 1
		next := b.nodes[cur].Children[bit]
		if next == section.NodeNone {
			next = uint32(len(b.nodes))
			b.nodes = append(b.nodes, section.NetworkNode{Network: section.NetworkNone})
			b.nodes[cur].Children[bit] = next
		}
		cur = next
	}
	b.nodes[cur].Network = index
}

func (b *dbBuilder) build() []byte {
	header := section.Header{
		CreatedAt:   b.createdAt,
		Vendor:      b.internString(b.vendor),
		Description: b.internString(b.description),
		License:     b.internString(b.license),
	}

	offset := uint32(section.HeaderSize)
	place := func(length uint32) section.FileRange {
		r := section.FileRange{Offset: offset, Length: length}
		offset += length

		return r
	}

	header.AS = place(uint32(len(b.as) * section.ASSize))
	header.Networks = place(uint32(len(b.networks) * section.NetworkSize))
	header.Nodes = place(uint32(len(b.nodes) * section.NetworkNodeSize))
	header.Countries = place(uint32(len(b.countries) * section.CountrySize))
	header.Pool = place(uint32(len(b.pool)))

	out := header.Bytes()
	for i := range b.as {
		out = append(out, b.as[i].Bytes()...)
	}
	for i := range b.networks {
		out = append(out, b.networks[i].Bytes()...)
	}
	for i := range b.nodes {
		out = append(out, b.nodes[i].Bytes()...)
	}
	for i := range b.countries {
		out = append(out, b.countries[i].Bytes()...)
	}
	out = append(out, b.pool...)

	return out
}

func writeDB(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "location.db")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

// newTestBuilder returns the standard fixture used across the tests, modeled
// on the reference example database.
func newTestBuilder() *dbBuilder {
	b := newDBBuilder()

	b.addCountry("DE", "EU", "Germany")
	b.addCountry("JP", "AS", "Japan")
	b.addCountry("US", "NA", "United States of America")

	b.addAS(13335, "Cloudflare, Inc.")
	b.addAS(64512, "Example Networks")
	b.addAS(204867, "Lightning Wire Labs GmbH")

	b.addNetwork("2a07:1c44:5800::/40", "DE", 204867, 0)
	b.addNetwork("1.0.0.0/8", "JP", 0, 0)
	b.addNetwork("1.1.1.0/24", "US", 13335, format.FlagAnycast)
	b.addNetwork("198.51.100.0/24", "US", 64512, format.FlagAnonymousProxy|format.FlagDrop)

	return b
}

func openTestDB(t *testing.T) *Locations {
	t.Helper()

	loc, err := Open(writeDB(t, newTestBuilder().build()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = loc.Close() })

	return loc
}
