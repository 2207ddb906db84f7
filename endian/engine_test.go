package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArchitecture(t *testing.T) {
	t.Run("Engine selection", func(t *testing.T) {
		require.Equal(t, binary.LittleEndian, LittleEndian.Engine())
		require.Equal(t, binary.BigEndian, BigEndian.Engine())
	})

	t.Run("IsBigEndian", func(t *testing.T) {
		require.False(t, LittleEndian.IsBigEndian())
		require.True(t, BigEndian.IsBigEndian())
	})

	t.Run("Only one selects big-endian", func(t *testing.T) {
		// the architecture byte is masked to its low bit before conversion
		require.Equal(t, binary.LittleEndian, Architecture(0).Engine())
		require.Equal(t, binary.BigEndian, Architecture(1).Engine())
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "little-endian", LittleEndian.String())
		require.Equal(t, "big-endian", BigEndian.String())
	})
}

func TestEngines(t *testing.T) {
	b := []byte{0x34, 0x12}
	require.Equal(t, uint16(0x1234), GetLittleEndianEngine().Uint16(b))
	require.Equal(t, uint16(0x3412), GetBigEndianEngine().Uint16(b))
}
