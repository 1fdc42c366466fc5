package section

// Magic is the 7-byte signature at the start of every libloc database.
const Magic = "LOCDBXX"

// Version is the only database format version this reader supports.
const Version uint8 = 1

// offsets and sizes of the fixed header fields
const (
	MagicSize         = 7    // length of the magic signature
	SignatureSlotSize = 2048 // size of each of the two signature slots
	HeaderPaddingSize = 32   // trailing header padding

	magicOffset         = 0
	versionOffset       = 7
	createdAtOffset     = 8
	vendorOffset        = 16
	descriptionOffset   = 20
	licenseOffset       = 24
	asRangeOffset       = 28
	networkRangeOffset  = 36
	nodeRangeOffset     = 44
	countryRangeOffset  = 52
	poolRangeOffset     = 60
	signature1LenOffset = 68
	signature2LenOffset = 70
	signature1Offset    = 72
	signature2Offset    = signature1Offset + SignatureSlotSize
	paddingOffset       = signature2Offset + SignatureSlotSize

	// HeaderSize is the total fixed header size in bytes.
	HeaderSize = paddingOffset + HeaderPaddingSize // 4200
)

// record widths of the fixed-stride segments
const (
	FileRangeSize   = 8  // segment descriptor: u32 offset + u32 length
	ASSize          = 8  // AS record: u32 asn + u32 name ref
	NetworkSize     = 12 // network record: 2 code + 2 pad + u32 asn + u16 flags + 2 pad
	NetworkNodeSize = 12 // trie node: u32 child zero + u32 child one + u32 network
	CountrySize     = 8  // country record: 2 code + 2 continent + u32 name ref
)

// NetworkNone is the network index a trie node stores when no network
// terminates at it.
const NetworkNone uint32 = 0xFFFFFFFF

// NodeNone is the child index a trie node stores for a missing child. The
// root lives at index 0 and is never a child of any node on a downward walk.
const NodeNone uint32 = 0
