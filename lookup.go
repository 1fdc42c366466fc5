package libloc

import (
	"net/netip"

	"github.com/arloliu/libloc/section"
)

// Lookup finds the longest network prefix covering an IP address.
//
// IPv4 and IPv4-mapped IPv6 inputs take the precomputed IPv4 fast path; any
// other IPv6 input walks the full 128-bit trie. The second return value is
// false when no recorded network covers the address.
func (l *Locations) Lookup(addr netip.Addr) (Network, bool) {
	switch {
	case addr.Is4() || addr.Is4In6():
		return l.LookupV4(addr)
	case addr.Is6():
		return l.LookupV6(addr)
	default:
		return Network{}, false
	}
}

// LookupV4 finds the longest network prefix covering an IPv4 address.
//
// The address must be IPv4 or IPv4-mapped IPv6; anything else misses. When
// the match lies inside the IPv4-mapped subtree the returned network exposes
// an IPv4 prefix; a (purely theoretical) shorter match above ::ffff:0:0/96
// is exposed in its IPv6 form.
//
// See Lookup.
func (l *Locations) LookupV4(addr netip.Addr) (Network, bool) {
	if (!addr.Is4() && !addr.Is4In6()) || l.nodes.count == 0 {
		return Network{}, false
	}

	a4 := addr.As4()
	var a16 [16]byte
	a16[10], a16[11] = 0xFF, 0xFF
	copy(a16[12:], a4[:])

	var index uint32
	var depth int
	if l.v4Found {
		index, depth = l.findNetwork(l.v4Root, &a16, 96, l.v4Best, l.v4BestDepth)
	} else {
		// The database has no ::ffff:0:0/96 subtree; degrade to a full walk.
		index, depth = l.findNetwork(0, &a16, 0, section.NetworkNone, 0)
	}
	if index == section.NetworkNone {
		return Network{}, false
	}

	var prefix netip.Prefix
	if depth >= 96 {
		prefix = netip.PrefixFrom(netip.AddrFrom4(a4), depth-96).Masked()
	} else {
		prefix = netip.PrefixFrom(netip.AddrFrom16(a16), depth).Masked()
	}

	return Network{db: l, index: index, prefix: prefix}, true
}

// LookupV6 finds the longest network prefix covering an IPv6 address by
// walking the trie from the root over all 128 address bits.
//
// See Lookup.
func (l *Locations) LookupV6(addr netip.Addr) (Network, bool) {
	if !addr.IsValid() || addr.Is4() || l.nodes.count == 0 {
		return Network{}, false
	}

	a16 := addr.As16()
	index, depth := l.findNetwork(0, &a16, 0, section.NetworkNone, 0)
	if index == section.NetworkNone {
		return Network{}, false
	}

	prefix := netip.PrefixFrom(netip.AddrFrom16(a16), depth).Masked()

	return Network{db: l, index: index, prefix: prefix}, true
}

// findNetwork walks the trie from node root, consuming address bits from
// position firstBit (0 = most significant) to 127, and returns the network
// index and depth of the longest match seen, starting from the given best.
//
// A node's depth equals the number of bits consumed to reach it, so the last
// node carrying a network index is the longest matching prefix.
func (l *Locations) findNetwork(root uint32, a *[16]byte, firstBit int, best uint32, bestDepth int) (uint32, int) {
	cur := root
	depth := firstBit

	for depth < 128 {
		node := l.nodes.node(cur)
		next := node.Children[addrBit(a, depth)]
		if next == section.NodeNone {
			break
		}
		if index, ok := node.NetworkIndex(); ok {
			best, bestDepth = index, depth
		}
		cur = next
		depth++
	}

	lastNode := l.nodes.node(cur)
	if index, ok := lastNode.NetworkIndex(); ok {
		best, bestDepth = index, depth
	}
	if best != section.NetworkNone && best >= l.networks.count {
		corruptf("invalid network index: %d >= %d", best, l.networks.count)
	}

	return best, bestDepth
}

// precomputeV4 descends the trie along the fixed ::ffff:0:0/96 prefix once,
// caching the subtree node IPv4 lookups start from and the last network
// observed on the way down.
func (l *Locations) precomputeV4() {
	l.v4Best = section.NetworkNone
	if l.nodes.count == 0 {
		return
	}

	var prefix [16]byte
	prefix[10], prefix[11] = 0xFF, 0xFF

	cur := uint32(0)
	for i := 0; i < 96; i++ {
		node := l.nodes.node(cur)
		if index, ok := node.NetworkIndex(); ok {
			l.v4Best, l.v4BestDepth = index, i
		}
		next := node.Children[addrBit(&prefix, i)]
		if next == section.NodeNone {
			return
		}
		cur = next
	}

	l.v4Root = cur
	l.v4Found = true
}

// addrBit returns bit i of a 128-bit address, counting from the most
// significant bit.
func addrBit(a *[16]byte, i int) int {
	return int(a[i>>3]>>(7-i&7)) & 1
}
