package packet

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
)

// Reader reads command fields from a descrambled payload.
// All multi-byte values are little-endian. The first failed read sticks:
// subsequent reads return zero values and Err() reports the failure.
type Reader struct {
	data []byte
	off  int
	err  error
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Err returns the first error encountered while reading.
func (r *Reader) Err() error {
	return r.err
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

func (r *Reader) ReadUint8() uint8 {
	if r.err != nil {
		return 0
	}
	if r.off+1 > len(r.data) {
		r.fail(fmt.Errorf("read uint8: %d bytes remaining", r.Remaining()))
		return 0
	}
	v := r.data[r.off]
	r.off++
	return v
}

func (r *Reader) ReadUint16() uint16 {
	if r.err != nil {
		return 0
	}
	if r.off+2 > len(r.data) {
		r.fail(fmt.Errorf("read uint16: %d bytes remaining", r.Remaining()))
		return 0
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v
}

func (r *Reader) ReadUint32() uint32 {
	if r.err != nil {
		return 0
	}
	if r.off+4 > len(r.data) {
		r.fail(fmt.Errorf("read uint32: %d bytes remaining", r.Remaining()))
		return 0
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v
}

func (r *Reader) ReadUint64() uint64 {
	if r.err != nil {
		return 0
	}
	if r.off+8 > len(r.data) {
		r.fail(fmt.Errorf("read uint64: %d bytes remaining", r.Remaining()))
		return 0
	}
	v := binary.LittleEndian.Uint64(r.data[r.off:])
	r.off += 8
	return v
}

func (r *Reader) ReadInt32() int32 {
	return int32(r.ReadUint32())
}

func (r *Reader) ReadInt64() int64 {
	return int64(r.ReadUint64())
}

func (r *Reader) ReadFloat32() float32 {
	return math.Float32frombits(r.ReadUint32())
}

func (r *Reader) ReadBool() bool {
	return r.ReadUint8() != 0
}

// ReadBytes reads exactly n raw bytes.
func (r *Reader) ReadBytes(n int) []byte {
	if r.err != nil {
		return make([]byte, n)
	}
	if r.off+n > len(r.data) {
		r.fail(fmt.Errorf("read %d bytes: %d bytes remaining", n, r.Remaining()))
		return make([]byte, n)
	}
	b := make([]byte, n)
	copy(b, r.data[r.off:r.off+n])
	r.off += n
	return b
}

// ReadString reads a null-terminated EUC-KR string and returns UTF-8.
// A byte sequence that does not decode is a protocol error.
func (r *Reader) ReadString() string {
	if r.err != nil {
		return ""
	}
	start := r.off
	for r.off < len(r.data) {
		if r.data[r.off] == 0 {
			raw := r.data[start:r.off]
			r.off++
			return r.decode(raw)
		}
		r.off++
	}
	r.fail(fmt.Errorf("read string: missing null terminator"))
	return ""
}

func (r *Reader) decode(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	// Fast path: pure ASCII needs no conversion.
	allASCII := true
	for _, b := range raw {
		if b >= 0x80 {
			allASCII = false
			break
		}
	}
	if allASCII {
		return string(raw)
	}
	decoded, err := korean.EUCKR.NewDecoder().Bytes(raw)
	if err != nil {
		r.fail(fmt.Errorf("decode EUC-KR string: %w", err))
		return ""
	}
	// The decoder substitutes U+FFFD for invalid sequences instead of
	// failing; EUC-KR cannot encode that rune, so its presence means the
	// input was malformed.
	if strings.ContainsRune(string(decoded), utf8.RuneError) {
		r.fail(fmt.Errorf("decode EUC-KR string: invalid byte sequence"))
		return ""
	}
	return string(decoded)
}
