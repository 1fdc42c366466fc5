// Package format defines the value types of the libloc v1 database format.
package format

import "strings"

// NetworkFlag is the 16-bit flag field of a network record.
//
// Bits 0-3 are defined by the format; the remaining bits are reserved and
// preserved verbatim by the reader without interpretation.
type NetworkFlag uint16

const (
	FlagAnonymousProxy    NetworkFlag = 0x0001 // FlagAnonymousProxy marks networks hosting anonymous proxies.
	FlagSatelliteProvider NetworkFlag = 0x0002 // FlagSatelliteProvider marks satellite provider networks.
	FlagAnycast           NetworkFlag = 0x0004 // FlagAnycast marks anycast address ranges.
	FlagDrop              NetworkFlag = 0x0008 // FlagDrop marks hostile networks recommended for dropping.
)

// Has reports whether all bits of flag are set in f.
func (f NetworkFlag) Has(flag NetworkFlag) bool {
	return f&flag == flag
}

func (f NetworkFlag) String() string {
	if f == 0 {
		return "None"
	}

	var names []string
	if f.Has(FlagAnonymousProxy) {
		names = append(names, "AnonymousProxy")
	}
	if f.Has(FlagSatelliteProvider) {
		names = append(names, "SatelliteProvider")
	}
	if f.Has(FlagAnycast) {
		names = append(names, "Anycast")
	}
	if f.Has(FlagDrop) {
		names = append(names, "Drop")
	}
	if rest := f &^ (FlagAnonymousProxy | FlagSatelliteProvider | FlagAnycast | FlagDrop); rest != 0 {
		names = append(names, "Reserved")
	}

	return strings.Join(names, "|")
}
