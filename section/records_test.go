package section

import (
	"testing"

	"github.com/arloliu/libloc/errs"
	"github.com/arloliu/libloc/format"
	"github.com/stretchr/testify/require"
)

func TestAS(t *testing.T) {
	original := AS{Number: 204867, NameRef: 123}

	data := original.Bytes()
	require.Len(t, data, ASSize)
	// big-endian field layout
	require.Equal(t, []byte{0x00, 0x03, 0x20, 0x43}, data[0:4])

	parsed := AS{}
	require.NoError(t, parsed.Parse(data))
	require.Equal(t, original, parsed)

	require.ErrorIs(t, parsed.Parse(data[:4]), errs.ErrInvalidRecordSize)
}

func TestNetwork(t *testing.T) {
	original := Network{
		CountryCode: [2]byte{'D', 'E'},
		ASN:         204867,
		Flags:       format.FlagAnycast | format.FlagDrop,
	}

	data := original.Bytes()
	require.Len(t, data, NetworkSize)
	// padding bytes stay zeroed
	require.Zero(t, data[2])
	require.Zero(t, data[3])
	require.Zero(t, data[10])
	require.Zero(t, data[11])

	parsed := Network{}
	require.NoError(t, parsed.Parse(data))
	require.Equal(t, original, parsed)

	// reserved flag bits survive a round trip uninterpreted
	original.Flags |= 0x8000
	parsed = Network{}
	require.NoError(t, parsed.Parse(original.Bytes()))
	require.Equal(t, original.Flags, parsed.Flags)

	require.ErrorIs(t, parsed.Parse(data[:8]), errs.ErrInvalidRecordSize)
}

func TestNetworkNode(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		original := NetworkNode{Children: [2]uint32{3, 0}, Network: 7}

		parsed := NetworkNode{}
		require.NoError(t, parsed.Parse(original.Bytes()))
		require.Equal(t, original, parsed)
	})

	t.Run("NetworkIndex sentinel", func(t *testing.T) {
		node := NetworkNode{Network: NetworkNone}
		_, ok := node.NetworkIndex()
		require.False(t, ok)

		node.Network = 0
		idx, ok := node.NetworkIndex()
		require.True(t, ok)
		require.Equal(t, uint32(0), idx)
	})

	t.Run("Invalid size", func(t *testing.T) {
		node := NetworkNode{}
		require.ErrorIs(t, node.Parse(make([]byte, NetworkNodeSize+1)), errs.ErrInvalidRecordSize)
	})
}

func TestCountry(t *testing.T) {
	original := Country{
		Code:          [2]byte{'D', 'E'},
		ContinentCode: [2]byte{'E', 'U'},
		NameRef:       31,
	}

	data := original.Bytes()
	require.Len(t, data, CountrySize)
	require.Equal(t, []byte("DEEU"), data[0:4])

	parsed := Country{}
	require.NoError(t, parsed.Parse(data))
	require.Equal(t, original, parsed)

	require.ErrorIs(t, parsed.Parse(nil), errs.ErrInvalidRecordSize)
}
