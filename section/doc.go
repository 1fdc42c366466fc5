// Package section defines the low-level binary structures and constants of the
// libloc v1 database format.
//
// This package provides the foundational types that define the physical layout
// of a database file. It handles binary serialization/deserialization of the
// header and the fixed-size records, ensuring consistent byte-level
// representation across platforms.
//
// # Overview
//
// The section package defines three main categories of types:
//
//  1. Header: the fixed-size file header with the segment descriptors (Header, FileRange)
//  2. Records: fixed-size table entries (AS, Network, NetworkNode, Country)
//  3. StringPool: offset-addressed NUL-terminated UTF-8 strings
//
// Every multi-byte field is big-endian. All parsing goes through the endian
// engine abstraction, and every parser is paired with a Bytes writer so that
// database builders (and the test fixtures) can produce byte-exact layouts.
//
// # File Structure
//
// A libloc database consists of the fixed header followed by the five
// segments it describes. Segment order is not fixed by the format; readers
// consult the header descriptors exclusively.
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (4200 bytes, fixed)                              │
//	│  - magic "LOCDBXX" + version                            │
//	│  - created_at, vendor/description/license string refs   │
//	│  - five FileRange segment descriptors                   │
//	│  - two 2048-byte signature slots + 32 bytes padding     │
//	├─────────────────────────────────────────────────────────┤
//	│ AS segment (N × 8 bytes)                                │
//	│  - sorted ascending by ASN                              │
//	├─────────────────────────────────────────────────────────┤
//	│ Network segment (N × 12 bytes)                          │
//	├─────────────────────────────────────────────────────────┤
//	│ Node segment (N × 12 bytes)                             │
//	│  - binary trie over 128-bit address keys, root at 0     │
//	├─────────────────────────────────────────────────────────┤
//	│ Country segment (N × 8 bytes)                           │
//	│  - sorted ascending by country code                     │
//	├─────────────────────────────────────────────────────────┤
//	│ String pool (variable)                                  │
//	│  - NUL-terminated UTF-8, addressed by byte offset       │
//	└─────────────────────────────────────────────────────────┘
package section
