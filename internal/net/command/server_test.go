package command

import (
	"encoding/binary"
	"io"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aliciago/server/internal/net/packet"
	"github.com/aliciago/server/internal/proto"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// buildFrame scrambles plain into a full wire frame, advancing code the
// way a client would, and returns the frame and the advanced code.
func buildFrame(id proto.Command, code uint32, plain []byte) ([]byte, uint32) {
	code = proto.RollCode(code)
	padding := proto.CodePadding(code)

	payload := make([]byte, len(plain)+padding)
	copy(payload, plain)
	proto.XorPayload(code, payload)

	frame := make([]byte, 4+len(payload))
	magic := proto.EncodeMagic(proto.MessageMagic{
		ID:     uint16(id),
		Length: uint16(len(frame)),
	})
	binary.LittleEndian.PutUint32(frame[:4], magic)
	copy(frame[4:], payload)
	return frame, code
}

func TestPartialFrameTolerance(t *testing.T) {
	s := NewServer(Events{}, false, zap.NewNop())
	s.OnClientConnected(1)

	var calls int
	var got []byte
	s.Register(proto.CmdRanchCmdAction, func(clientID uint64, r *packet.Reader) error {
		calls++
		got = r.ReadBytes(r.Remaining())
		return nil
	})

	// A frame of exactly 32 bytes: the rolling code advanced from zero
	// is 0xA20191CB, so the payload carries three filler bytes.
	code := proto.RollCode(0)
	require.Equal(t, 3, proto.CodePadding(code))
	plain := make([]byte, 25)
	for i := range plain {
		plain[i] = byte(i + 1)
	}
	frame, _ := buildFrame(proto.CmdRanchCmdAction, 0, plain)
	require.Len(t, frame, 32)

	// The first three bytes do not even hold the magic.
	consumed, err := s.OnClientData(1, frame[:3])
	require.NoError(t, err)
	require.Equal(t, 0, consumed)
	require.Equal(t, 0, calls)

	// The whole frame parses in one pass.
	consumed, err = s.OnClientData(1, frame)
	require.NoError(t, err)
	require.Equal(t, 32, consumed)
	require.Equal(t, 1, calls)
	require.Equal(t, plain, got)
}

func TestPartialPayloadRewinds(t *testing.T) {
	s := NewServer(Events{}, false, zap.NewNop())
	s.OnClientConnected(1)

	calls := 0
	s.Register(proto.CmdRanchCmdAction, func(uint64, *packet.Reader) error {
		calls++
		return nil
	})

	frame, _ := buildFrame(proto.CmdRanchCmdAction, 0, []byte{1, 2, 3, 4, 5})

	// Header present but payload short by one byte.
	consumed, err := s.OnClientData(1, frame[:len(frame)-1])
	require.NoError(t, err)
	require.Equal(t, 0, consumed)
	require.Equal(t, 0, calls)

	consumed, err = s.OnClientData(1, frame)
	require.NoError(t, err)
	require.Equal(t, len(frame), consumed)
	require.Equal(t, 1, calls)
}

func TestTwoFramesOnePass(t *testing.T) {
	s := NewServer(Events{}, false, zap.NewNop())
	s.OnClientConnected(1)

	var received [][]byte
	s.Register(proto.CmdRanchCmdAction, func(_ uint64, r *packet.Reader) error {
		received = append(received, r.ReadBytes(r.Remaining()))
		return nil
	})

	first, code := buildFrame(proto.CmdRanchCmdAction, 0, []byte{0xA})
	second, _ := buildFrame(proto.CmdRanchCmdAction, code, []byte{0xB, 0xC})

	buffered := append(append([]byte{}, first...), second...)
	consumed, err := s.OnClientData(1, buffered)
	require.NoError(t, err)
	require.Equal(t, len(buffered), consumed)
	require.Equal(t, [][]byte{{0xA}, {0xB, 0xC}}, received)
}

func TestUnknownCommandKeepsClient(t *testing.T) {
	s := NewServer(Events{}, false, zap.NewNop())
	s.OnClientConnected(1)

	frame, _ := buildFrame(proto.CmdLobbyEnterChannel, 0, []byte{7})
	consumed, err := s.OnClientData(1, frame)
	require.NoError(t, err)
	require.Equal(t, len(frame), consumed)
}

func TestMalformedLengthDisconnects(t *testing.T) {
	s := NewServer(Events{}, false, zap.NewNop())
	s.OnClientConnected(1)

	magic := proto.EncodeMagic(proto.MessageMagic{ID: 7, Length: 2})
	frame := make([]byte, 4)
	binary.LittleEndian.PutUint32(frame, magic)

	_, err := s.OnClientData(1, frame)
	require.Error(t, err)
}

func TestPaddingSwallowsPayloadDisconnects(t *testing.T) {
	s := NewServer(Events{}, false, zap.NewNop())
	s.OnClientConnected(1)

	// Rolling code from zero carries three filler bytes; a two-byte
	// payload cannot contain them.
	frame := make([]byte, 6)
	magic := proto.EncodeMagic(proto.MessageMagic{
		ID:     uint16(proto.CmdLobbyEnterChannel),
		Length: 6,
	})
	binary.LittleEndian.PutUint32(frame[:4], magic)

	_, err := s.OnClientData(1, frame)
	require.Error(t, err)
}

// End-to-end over loopback TCP: a scrambled request produces an
// unscrambled typed reply.
func TestEnterChannelEcho(t *testing.T) {
	s := NewServer(Events{}, false, zap.NewNop())

	RegisterHandler[proto.LobbyEnterChannel](s, proto.CmdLobbyEnterChannel,
		func(clientID uint64, command *proto.LobbyEnterChannel) {
			s.QueueCommand(clientID, proto.CmdLobbyEnterChannelOK, proto.LobbyEnterChannelOK{
				Unk0: command.Channel,
			})
		})

	require.NoError(t, s.Host("127.0.0.1:0"))
	defer s.End()

	conn, err := net.Dial("tcp", s.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	w := packet.NewWriter()
	proto.LobbyEnterChannel{Channel: 5}.Write(w)
	frame, _ := buildFrame(proto.CmdLobbyEnterChannel, 0, w.Bytes())

	_, err = conn.Write(frame)
	require.NoError(t, err)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	header := make([]byte, 4)
	_, err = io.ReadFull(conn, header)
	require.NoError(t, err)

	magic := proto.DecodeMagic(binary.LittleEndian.Uint32(header))
	require.Equal(t, uint16(proto.CmdLobbyEnterChannelOK), magic.ID)

	payload := make([]byte, int(magic.Length)-4)
	_, err = io.ReadFull(conn, payload)
	require.NoError(t, err)

	reply := proto.LobbyEnterChannelOK{}
	r := packet.NewReader(payload)
	reply.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, uint8(5), reply.Unk0)
}

func TestDisconnectReported(t *testing.T) {
	var disconnected atomic.Bool
	s := NewServer(Events{
		OnClientDisconnected: func(uint64) { disconnected.Store(true) },
	}, false, zap.NewNop())

	require.NoError(t, s.Host("127.0.0.1:0"))
	defer s.End()

	conn, err := net.Dial("tcp", s.Addr().String())
	require.NoError(t, err)
	conn.Close()

	require.Eventually(t, disconnected.Load, 2*time.Second, 10*time.Millisecond)
}
