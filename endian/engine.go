// Package endian provides the byte order engine for binary decoding.
//
// This package combines the ByteOrder and AppendByteOrder interfaces of the
// standard encoding/binary package into a unified EndianEngine interface, so
// the section parsers and writers share one engine value.
//
// The libloc database format is big-endian throughout, so GetBigEndianEngine
// is the only engine this module needs:
//
//	import "github.com/arloliu/libloc/endian"
//
//	engine := endian.GetBigEndianEngine()
//	asn := engine.Uint32(data[4:8])
//
// # Thread Safety
//
// The returned EndianEngine is immutable and stateless, safe for concurrent
// use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.BigEndian from the standard library,
// making it fully compatible with existing Go code while providing access to
// both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine.
//
// This is the byte order of every multi-byte field in a libloc database.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
