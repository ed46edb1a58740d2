package packet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(0xAB)
	w.WriteUint16(0xBEEF)
	w.WriteUint32(0xDEADBEEF)
	w.WriteUint64(0x0102030405060708)
	w.WriteInt32(-42)
	w.WriteBool(true)
	w.WriteFloat32(1.5)
	require.NoError(t, w.Err())

	r := NewReader(w.Bytes())
	require.Equal(t, uint8(0xAB), r.ReadUint8())
	require.Equal(t, uint16(0xBEEF), r.ReadUint16())
	require.Equal(t, uint32(0xDEADBEEF), r.ReadUint32())
	require.Equal(t, uint64(0x0102030405060708), r.ReadUint64())
	require.Equal(t, int32(-42), r.ReadInt32())
	require.True(t, r.ReadBool())
	require.Equal(t, float32(1.5), r.ReadFloat32())
	require.NoError(t, r.Err())
	require.Zero(t, r.Remaining())
}

func TestLittleEndianLayout(t *testing.T) {
	w := NewWriter()
	w.WriteUint32(0x11223344)
	require.Equal(t, []byte{0x44, 0x33, 0x22, 0x11}, w.Bytes())
}

func TestStringKoreanRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteString("안녕하세요")
	require.NoError(t, w.Err())

	// EUC-KR uses two bytes per hangul syllable, plus the terminator.
	require.Equal(t, 11, w.Len())
	require.Equal(t, byte(0), w.Bytes()[w.Len()-1])

	r := NewReader(w.Bytes())
	require.Equal(t, "안녕하세요", r.ReadString())
	require.NoError(t, r.Err())
}

func TestStringASCIIFastPath(t *testing.T) {
	w := NewWriter()
	w.WriteString("rider01")

	r := NewReader(w.Bytes())
	require.Equal(t, "rider01", r.ReadString())
	require.NoError(t, r.Err())
}

func TestStringMissingTerminator(t *testing.T) {
	r := NewReader([]byte("no terminator"))
	r.ReadString()
	require.Error(t, r.Err())
}

func TestShortReadSticks(t *testing.T) {
	r := NewReader([]byte{0x01})
	require.Equal(t, uint32(0), r.ReadUint32())
	require.Error(t, r.Err())

	// Every read after the failure keeps returning zero values.
	require.Equal(t, uint8(0), r.ReadUint8())
	require.Error(t, r.Err())
}

func TestInvalidEucKrIsFatal(t *testing.T) {
	// 0xFF is not a lead byte of any EUC-KR sequence.
	r := NewReader([]byte{0xFF, 0xFF, 0x00})
	r.ReadString()
	require.Error(t, r.Err())
}
