package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMagicLoginVector(t *testing.T) {
	encoded := EncodeMagic(MessageMagic{ID: 7, Length: 29})
	require.Equal(t, uint32(0x8D06CD01), encoded)

	decoded := DecodeMagic(0x8D06CD01)
	require.Equal(t, uint16(7), decoded.ID)
	require.Equal(t, uint16(29), decoded.Length)
}

func TestMagicRoundTrip(t *testing.T) {
	ids := []uint16{
		uint16(CmdLobbyLogin),
		uint16(CmdLobbyLoginOK),
		uint16(CmdRanchEnterRanch),
		uint16(CmdRanchSnapshotNotify),
		uint16(CmdRaceEnterRoomOK),
		uint16(CmdRaceUserRaceTimer),
		0x1,
		0x3FFF,
	}
	for _, id := range ids {
		for length := uint16(4); length <= 4096; length += 31 {
			decoded := DecodeMagic(EncodeMagic(MessageMagic{ID: id, Length: length}))
			require.Equal(t, id, decoded.ID, "id for (%#x, %d)", id, length)
			require.Equal(t, length, decoded.Length, "length for (%#x, %d)", id, length)
		}
	}
}

func TestRollCode(t *testing.T) {
	first := RollCode(0)
	require.Equal(t, uint32(0xA20191CB), first)

	// Second advance, in 32-bit wrapping arithmetic.
	expected := XorControl - first*XorMultiplier
	require.Equal(t, expected, RollCode(first))

	// The padding is the low three bits of the code.
	require.Equal(t, int(first&7), CodePadding(first))
}

func TestXorPayloadInvolution(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	original := append([]byte(nil), payload...)

	code := RollCode(0x1234)
	XorPayload(code, payload)
	require.NotEqual(t, original, payload)
	XorPayload(code, payload)
	require.Equal(t, original, payload)
}

func TestCodeNeverReused(t *testing.T) {
	seen := make(map[uint32]bool)
	code := uint32(0)
	for i := 0; i < 1000; i++ {
		code = RollCode(code)
		require.False(t, seen[code], "code %#x reused at advance %d", code, i)
		seen[code] = true
	}
}
