// Package proto defines the wire protocol: the command id enumeration, the
// frame magic, the rolling-XOR payload scrambling and the typed command
// structures exchanged by the lobby, ranch, race and messenger servers.
package proto

import (
	"github.com/aliciago/server/internal/net/packet"
)

const (
	// BufferSize is the maximum frame length. The extra four bytes over
	// MaxPayloadSize are reserved for the message magic.
	BufferSize = 4096
	// MaxPayloadSize is the maximum size of a command payload.
	MaxPayloadSize = BufferSize - 4

	// XorControl and XorMultiplier drive the per-connection rolling code:
	// code = XorControl - code*XorMultiplier, in 32-bit wrapping arithmetic.
	XorControl    uint32 = 0xA20191CB
	XorMultiplier uint32 = 0x20080825
)

// MessengerXorKey is the fixed 4-byte key the messenger frame is XORed
// with. The messenger code does not roll.
var MessengerXorKey = [4]byte{0x2B, 0xFE, 0xB8, 0x02}

// Command is a 16-bit command identifier.
type Command uint16

// MessageMagic is the decoded 32-bit frame header: command id and total
// frame length (magic included).
type MessageMagic struct {
	ID     uint16
	Length uint16
}

// EncodeMagic scrambles a message magic into its 32-bit wire form.
// The bit pattern is a compatibility surface; see DecodeMagic for the inverse.
func EncodeMagic(magic MessageMagic) uint32 {
	id := uint32(magic.ID) & 0xFFFF
	length := uint32(BufferSize)<<16 | uint32(magic.Length)

	encoded := length
	encoded = (encoded&0x3FFF | encoded<<14) & 0xFFFF
	encoded = ((encoded&0xF|0xFF80)<<8 | (length>>4)&0xFF | encoded&0xF000) & 0xFFFF
	// The id half carries bit 14 clear; the decoder masks it off either
	// way, but clients emit this exact pattern.
	encoded |= ((encoded ^ id) & 0xBFFF) << 16
	return encoded
}

// DecodeMagic recovers the message magic from its 32-bit wire form.
func DecodeMagic(value uint32) MessageMagic {
	var magic MessageMagic

	if value&(1<<15) != 0 {
		section := value & 0x3FFF
		magic.Length = uint16((value&0xFF)<<4 | (section>>8)&0xF | section&0xF000)
	}

	firstTwoBytes := uint16(value & 0xFFFF)
	secondTwoBytes := uint16(value >> 16 & 0xFFFF)
	xorResult := firstTwoBytes ^ secondTwoBytes

	magic.ID = ^(xorResult & 0xC000) & xorResult
	return magic
}

// RollCode advances a rolling XOR code. The low three bits of the new
// code are the count of trailing filler bytes in the scrambled payload.
func RollCode(code uint32) uint32 {
	return XorControl - code*XorMultiplier
}

// CodePadding extracts the filler byte count from a rolling code.
func CodePadding(code uint32) int {
	return int(code & 7)
}

// XorPayload applies the 4-byte little-endian representation of code as a
// repeating keystream over data, in place. The operation is an involution.
func XorPayload(code uint32, data []byte) {
	key := [4]byte{
		byte(code),
		byte(code >> 8),
		byte(code >> 16),
		byte(code >> 24),
	}
	for i := range data {
		data[i] ^= key[i%4]
	}
}

// Readable is a command that can be decoded from a payload reader.
type Readable interface {
	Read(r *packet.Reader)
}

// Writable is a command that can be encoded onto a payload writer.
type Writable interface {
	Write(w *packet.Writer)
}
