package section

import (
	"github.com/arloliu/libloc/errs"
	"github.com/arloliu/libloc/format"
)

// AS is an autonomous system record: the 8-byte entry of the AS segment.
// The segment is sorted ascending by Number.
type AS struct {
	// Number is the 32-bit autonomous system number.
	Number uint32 // byte offset 0-3
	// NameRef is the pool offset of the AS display name.
	NameRef uint32 // byte offset 4-7
}

// Parse parses the record from a byte slice.
//
// Returns errs.ErrInvalidRecordSize if data is not exactly 8 bytes.
func (a *AS) Parse(data []byte) error {
	if len(data) != ASSize {
		return errs.ErrInvalidRecordSize
	}

	a.Number = engine.Uint32(data[0:4])
	a.NameRef = engine.Uint32(data[4:8])

	return nil
}

// Bytes returns the record as an 8-byte slice.
func (a *AS) Bytes() []byte {
	var b [ASSize]byte
	engine.PutUint32(b[0:4], a.Number)
	engine.PutUint32(b[4:8], a.NameRef)

	return b[:]
}

// Network is the 12-byte entry of the network segment. Networks carry no
// address bits of their own: the covering prefix is the bit path from the
// trie root to the node referencing the record.
type Network struct {
	// CountryCode is the ISO 3166-1 alpha-2 code, "XX" when unknown.
	CountryCode [2]byte // byte offset 0-1, then 2 bytes padding
	// ASN is the autonomous system number, 0 when unknown.
	ASN uint32 // byte offset 4-7
	// Flags is the network flag bitfield.
	Flags format.NetworkFlag // byte offset 8-9, then 2 bytes padding
}

// Parse parses the record from a byte slice.
//
// Returns errs.ErrInvalidRecordSize if data is not exactly 12 bytes.
func (n *Network) Parse(data []byte) error {
	if len(data) != NetworkSize {
		return errs.ErrInvalidRecordSize
	}

	n.CountryCode[0] = data[0]
	n.CountryCode[1] = data[1]
	n.ASN = engine.Uint32(data[4:8])
	n.Flags = format.NetworkFlag(engine.Uint16(data[8:10]))

	return nil
}

// Bytes returns the record as a 12-byte slice with zeroed padding.
func (n *Network) Bytes() []byte {
	var b [NetworkSize]byte
	b[0] = n.CountryCode[0]
	b[1] = n.CountryCode[1]
	engine.PutUint32(b[4:8], n.ASN)
	engine.PutUint16(b[8:10], uint16(n.Flags))

	return b[:]
}

// NetworkNode is the 12-byte entry of the trie node segment. The trie is a
// binary tree keyed bit-by-bit over 128-bit addresses, most significant bit
// first, with the root at index 0.
type NetworkNode struct {
	// Children holds the node indices of the zero and one subtrees.
	// NodeNone (0) marks a missing child.
	Children [2]uint32 // byte offset 0-7
	// Network is the index of the network whose prefix ends at this node,
	// or NetworkNone.
	Network uint32 // byte offset 8-11
}

// Parse parses the node from a byte slice.
//
// Returns errs.ErrInvalidRecordSize if data is not exactly 12 bytes.
func (n *NetworkNode) Parse(data []byte) error {
	if len(data) != NetworkNodeSize {
		return errs.ErrInvalidRecordSize
	}

	n.Children[0] = engine.Uint32(data[0:4])
	n.Children[1] = engine.Uint32(data[4:8])
	n.Network = engine.Uint32(data[8:12])

	return nil
}

// Bytes returns the node as a 12-byte slice.
func (n *NetworkNode) Bytes() []byte {
	var b [NetworkNodeSize]byte
	engine.PutUint32(b[0:4], n.Children[0])
	engine.PutUint32(b[4:8], n.Children[1])
	engine.PutUint32(b[8:12], n.Network)

	return b[:]
}

// NetworkIndex returns the index of the network terminating at the node,
// hiding the NetworkNone sentinel.
func (n *NetworkNode) NetworkIndex() (uint32, bool) {
	if n.Network == NetworkNone {
		return 0, false
	}

	return n.Network, true
}

// Country is the 8-byte entry of the country segment. The segment is sorted
// ascending by Code.
type Country struct {
	// Code is the ISO 3166-1 alpha-2 country code, uppercase ASCII.
	Code [2]byte // byte offset 0-1
	// ContinentCode is the two-letter continent code, e.g. "EU".
	ContinentCode [2]byte // byte offset 2-3
	// NameRef is the pool offset of the country display name.
	NameRef uint32 // byte offset 4-7
}

// Parse parses the record from a byte slice.
//
// Returns errs.ErrInvalidRecordSize if data is not exactly 8 bytes.
func (c *Country) Parse(data []byte) error {
	if len(data) != CountrySize {
		return errs.ErrInvalidRecordSize
	}

	c.Code[0] = data[0]
	c.Code[1] = data[1]
	c.ContinentCode[0] = data[2]
	c.ContinentCode[1] = data[3]
	c.NameRef = engine.Uint32(data[4:8])

	return nil
}

// Bytes returns the record as an 8-byte slice.
func (c *Country) Bytes() []byte {
	var b [CountrySize]byte
	b[0] = c.Code[0]
	b[1] = c.Code[1]
	b[2] = c.ContinentCode[0]
	b[3] = c.ContinentCode[1]
	engine.PutUint32(b[4:8], c.NameRef)

	return b[:]
}
