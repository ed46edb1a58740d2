package director

import (
	"encoding/binary"
	"io"
	"net"
	"testing"
	"time"

	"github.com/aliciago/server/internal/config"
	"github.com/aliciago/server/internal/data"
	"github.com/aliciago/server/internal/net/packet"
	"github.com/aliciago/server/internal/persist"
	"github.com/aliciago/server/internal/proto"
	"github.com/aliciago/server/internal/system"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticRoster struct {
	uids []data.Uid
}

func (r staticRoster) OnlineCharacterUids() []data.Uid { return r.uids }

// chatterFrame scrambles one messenger frame with the fixed key.
func chatterFrame(id proto.ChatterCommand, payload []byte) []byte {
	frame := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint16(frame[0:2], uint16(len(frame)))
	binary.LittleEndian.PutUint16(frame[2:4], uint16(id))
	copy(frame[4:], payload)
	for i := range frame {
		frame[i] ^= proto.MessengerXorKey[i%4]
	}
	return frame
}

func readChatterFrame(t *testing.T, conn net.Conn) (proto.ChatterCommand, []byte) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	header := make([]byte, 4)
	_, err := io.ReadFull(conn, header)
	require.NoError(t, err)
	for i := range header {
		header[i] ^= proto.MessengerXorKey[i%4]
	}

	length := binary.LittleEndian.Uint16(header[0:2])
	id := binary.LittleEndian.Uint16(header[2:4])

	payload := make([]byte, int(length)-4)
	_, err = io.ReadFull(conn, payload)
	require.NoError(t, err)
	for i := range payload {
		payload[i] ^= proto.MessengerXorKey[(4+i)%4]
	}
	return proto.ChatterCommand(id), payload
}

func TestMessengerLogin(t *testing.T) {
	log := zap.NewNop()

	source := persist.NewFileSource(t.TempDir())
	require.NoError(t, source.Initialize())
	dataDirector := NewDataDirector(source, log)

	// Two online characters besides the chatter.
	for uid, name := range map[data.Uid]string{
		100: "self",
		101: "friend-one",
		102: "friend-two",
	} {
		record, ok := dataDirector.CreateCharacter(uid)
		require.True(t, ok)
		record.Mutable(func(character *data.Character) {
			character.Uid.Set(uid)
			character.Name.Set(name)
			character.RanchUid.Set(uid + 2000)
		})
	}

	otp := system.NewOtpSystem()
	messenger := NewMessengerDirector(dataDirector, otp, staticRoster{
		uids: []data.Uid{100, 101, 102},
	}, config.ServiceConfig{
		Enabled: true,
		Listen:  config.Listen{Address: net.IPv4(127, 0, 0, 1), Port: 0},
	}, log)
	require.NoError(t, messenger.Initialize())
	t.Cleanup(messenger.Terminate)

	conn, err := net.Dial("tcp", messenger.server.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	code := otp.GrantCode(100)
	w := packet.NewWriter()
	proto.ChatCmdLoginCommand{Val0: 100, Name: "self", Code: code}.Write(w)
	_, err = conn.Write(chatterFrame(proto.ChatCmdLogin, w.Bytes()))
	require.NoError(t, err)

	id, payload := readChatterFrame(t, conn)
	require.Equal(t, proto.ChatCmdLoginAckOK, id)

	ack := proto.ChatCmdLoginAckOKCommand{}
	r := packet.NewReader(payload)
	ack.Read(r)
	require.NoError(t, r.Err())

	require.Len(t, ack.Groups, 1)
	require.Equal(t, "Online Players", ack.Groups[0].Name)

	// The chatter is not their own friend.
	require.Len(t, ack.Friends, 2)
	for _, friend := range ack.Friends {
		require.NotEqual(t, data.Uid(100), friend.UID)
		require.Equal(t, proto.ChatterFriendOnline, friend.Status)
	}
}

func TestMessengerLoginBadCode(t *testing.T) {
	log := zap.NewNop()

	source := persist.NewFileSource(t.TempDir())
	require.NoError(t, source.Initialize())
	dataDirector := NewDataDirector(source, log)

	otp := system.NewOtpSystem()
	messenger := NewMessengerDirector(dataDirector, otp, staticRoster{}, config.ServiceConfig{
		Enabled: true,
		Listen:  config.Listen{Address: net.IPv4(127, 0, 0, 1), Port: 0},
	}, log)
	require.NoError(t, messenger.Initialize())
	t.Cleanup(messenger.Terminate)

	conn, err := net.Dial("tcp", messenger.server.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	w := packet.NewWriter()
	proto.ChatCmdLoginCommand{Val0: 100, Name: "self", Code: 1}.Write(w)
	_, err = conn.Write(chatterFrame(proto.ChatCmdLogin, w.Bytes()))
	require.NoError(t, err)

	id, _ := readChatterFrame(t, conn)
	require.Equal(t, proto.ChatCmdLoginAckCancel, id)
}
