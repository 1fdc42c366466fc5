// Package libloc reads IP geolocation databases in the libloc v1 format, the
// format published by the IPFire location project.
//
// A database answers three questions: which network prefix covers an IP
// address (with the country, AS and flags recorded for it), what metadata
// exists for an ISO 3166 country code, and what display name exists for an
// autonomous system number.
//
// # Core Features
//
//   - Constant-time-bounded longest-prefix-match lookup over a packed binary
//     trie keyed by 128-bit addresses (at most 128 steps per query)
//   - IPv4 fast path: the ::ffff:0:0/96 subtree is located once at open, so
//     IPv4 queries traverse at most 32 levels
//   - Zero-copy access: the file is memory-mapped read-only and records are
//     viewed in place, no per-query heap allocation
//   - Sorted-key binary search for country and AS lookups
//
// # Basic Usage
//
//	import "github.com/arloliu/libloc"
//
//	locations, err := libloc.Open("location.db")
//	if err != nil {
//	    return err
//	}
//	defer locations.Close()
//
//	if network, ok := locations.Lookup(netip.MustParseAddr("2a07:1c44:5800::1")); ok {
//	    fmt.Println(network.CountryCode()) // "DE"
//	    fmt.Println(network.ASN())         // 204867
//	    fmt.Println(network.Prefix())      // "2a07:1c44:5800::/40"
//	}
//
//	if country, ok := locations.Country("DE"); ok {
//	    fmt.Println(country.Name()) // "Germany"
//	}
//
//	if as, ok := locations.AS(204867); ok {
//	    fmt.Println(as.Name()) // "Lightning Wire Labs GmbH"
//	}
//
// # Concurrency
//
// A Locations handle is immutable after Open and safe for concurrent use by
// any number of goroutines without synchronisation. Nothing blocks after
// Open (first access to a page may fault it in).
//
// # Corruption
//
// Open validates the header, the segment geometry and the header string
// references, and returns structured errors (see the errs package). It does
// not walk the whole trie; corruption first observed during a query, such as
// a child index past the node table, causes a panic. Callers that need to
// recover from hostile inputs are expected to verify the database signature
// beforehand, which is outside the scope of this package.
//
// # Package Structure
//
// The root package holds the Locations handle and the query surface. The
// section package defines the on-disk layouts, format the value types, and
// endian the byte-order engines.
package libloc
