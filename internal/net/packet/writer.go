package packet

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/text/encoding/korean"
)

// Writer builds a command payload. All multi-byte values are little-endian.
// Strings go out null-terminated in EUC-KR; the first encode failure sticks.
type Writer struct {
	buf []byte
	err error
}

func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 64)}
}

// Err returns the first error encountered while writing.
func (w *Writer) Err() error {
	return w.err
}

// Len returns the current payload length.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the payload built so far.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

func (w *Writer) WriteInt64(v int64) {
	w.WriteUint64(uint64(v))
}

func (w *Writer) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
}

func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteString writes a null-terminated string, converting UTF-8 to EUC-KR.
func (w *Writer) WriteString(s string) {
	if len(s) != 0 {
		encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(s))
		if err != nil {
			if w.err == nil {
				w.err = fmt.Errorf("encode EUC-KR string: %w", err)
			}
			return
		}
		w.buf = append(w.buf, encoded...)
	}
	w.buf = append(w.buf, 0)
}
