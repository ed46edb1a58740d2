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

// testClient drives the command protocol over a real connection.
type testClient struct {
	t    *testing.T
	conn net.Conn
	code uint32
}

func dialClient(t *testing.T, addr string) *testClient {
	t.Helper()
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &testClient{t: t, conn: conn}
}

func (c *testClient) send(id proto.Command, command proto.Writable) {
	c.t.Helper()

	w := packet.NewWriter()
	command.Write(w)
	require.NoError(c.t, w.Err())
	plain := w.Bytes()

	payload := plain
	if len(plain) > 0 {
		c.code = proto.RollCode(c.code)
		payload = make([]byte, len(plain)+proto.CodePadding(c.code))
		copy(payload, plain)
		proto.XorPayload(c.code, payload)
	}

	frame := make([]byte, 4+len(payload))
	magic := proto.EncodeMagic(proto.MessageMagic{
		ID:     uint16(id),
		Length: uint16(len(frame)),
	})
	binary.LittleEndian.PutUint32(frame[:4], magic)
	copy(frame[4:], payload)

	_, err := c.conn.Write(frame)
	require.NoError(c.t, err)
}

// readFrame reads one clientbound frame; the server writes them
// unscrambled.
func (c *testClient) readFrame(timeout time.Duration) (proto.Command, []byte, error) {
	c.conn.SetReadDeadline(time.Now().Add(timeout))

	header := make([]byte, 4)
	if _, err := io.ReadFull(c.conn, header); err != nil {
		return 0, nil, err
	}
	magic := proto.DecodeMagic(binary.LittleEndian.Uint32(header))
	payload := make([]byte, int(magic.Length)-4)
	if _, err := io.ReadFull(c.conn, payload); err != nil {
		return 0, nil, err
	}
	return proto.Command(magic.ID), payload, nil
}

func (c *testClient) expectFrame(id proto.Command) []byte {
	c.t.Helper()
	got, payload, err := c.readFrame(2 * time.Second)
	require.NoError(c.t, err)
	require.Equal(c.t, id, got, "expected %s, got %s", id.Name(), got.Name())
	return payload
}

func (c *testClient) expectSilence() {
	c.t.Helper()
	_, _, err := c.readFrame(300 * time.Millisecond)
	require.Error(c.t, err)
}

// ranchFixture wires a ranch director over a throwaway file source.
type ranchFixture struct {
	dataDirector *DataDirector
	otp          *system.OtpSystem
	ranch        *RanchDirector
}

func newRanchFixture(t *testing.T) *ranchFixture {
	t.Helper()
	log := zap.NewNop()

	source := persist.NewFileSource(t.TempDir())
	require.NoError(t, source.Initialize())
	dataDirector := NewDataDirector(source, log)

	otp := system.NewOtpSystem()
	chat := system.NewChatSystem(dataDirector, staticPresence{}, log)

	ranch := NewRanchDirector(dataDirector, otp, chat, config.ServiceConfig{
		Enabled: true,
		Listen:  config.Listen{Address: net.IPv4(127, 0, 0, 1), Port: 0},
	}, false, log)
	require.NoError(t, ranch.Initialize())
	t.Cleanup(ranch.Terminate)

	return &ranchFixture{dataDirector: dataDirector, otp: otp, ranch: ranch}
}

type staticPresence struct{}

func (staticPresence) OnlineCharacterNames() []string { return nil }

func (f *ranchFixture) addr() string {
	return f.ranch.server.Addr().String()
}

// seedCharacter creates an available character with a mount.
func (f *ranchFixture) seedCharacter(t *testing.T, uid data.Uid, name string, ranchUid data.Uid) {
	t.Helper()

	mountUid := uid + 1000
	horseRecord, ok := f.dataDirector.CreateHorse(mountUid)
	require.True(t, ok)
	horseRecord.Mutable(func(horse *data.Horse) {
		horse.Uid.Set(mountUid)
		horse.Tid.Set(0x4E21)
		horse.Name.Set(name + "'s horse")
	})

	characterRecord, ok := f.dataDirector.CreateCharacter(uid)
	require.True(t, ok)
	characterRecord.Mutable(func(character *data.Character) {
		character.Uid.Set(uid)
		character.Name.Set(name)
		character.MountUid.Set(mountUid)
		character.Horses.Set([]data.Uid{mountUid})
	})
}

func (f *ranchFixture) seedRanch(t *testing.T, uid, owner data.Uid, name string) {
	t.Helper()
	record, ok := f.dataDirector.CreateRanch(uid)
	require.True(t, ok)
	record.Mutable(func(ranch *data.Ranch) {
		ranch.Uid.Set(uid)
		ranch.Owner.Set(owner)
		ranch.Name.Set(name)
	})
}

func enterRanch(t *testing.T, client *testClient, characterUid data.Uid, otp uint32, ranchUid data.Uid) proto.RanchEnterRanchOK {
	t.Helper()
	client.send(proto.CmdRanchEnterRanch, proto.RanchEnterRanch{
		CharacterUID: characterUid,
		OTP:          otp,
		RanchUID:     ranchUid,
	})

	payload := client.expectFrame(proto.CmdRanchEnterRanchOK)
	response := proto.RanchEnterRanchOK{}
	r := packet.NewReader(payload)
	response.Read(r)
	require.NoError(t, r.Err())

	// Subsequent serverbound commands scramble from the advertised code.
	client.code = response.ScramblingConstant
	return response
}

// Three authenticated clients; when B enters A's ranch, A gets exactly
// one join notification, B's roster carries both occupants in OID order
// and C sees nothing. On B leaving, A gets exactly one leave notify.
func TestRanchJoinLeaveBroadcast(t *testing.T) {
	f := newRanchFixture(t)

	const (
		characterA = data.Uid(100)
		characterB = data.Uid(101)
		characterC = data.Uid(102)
		ranchA     = data.Uid(300)
	)
	f.seedCharacter(t, characterA, "alpha", ranchA)
	f.seedCharacter(t, characterB, "bravo", ranchA)
	f.seedCharacter(t, characterC, "carol", ranchA)
	f.seedRanch(t, ranchA, characterA, "alpha's ranch")

	clientA := dialClient(t, f.addr())
	clientB := dialClient(t, f.addr())
	clientC := dialClient(t, f.addr())

	// A enters their own ranch first.
	okA := enterRanch(t, clientA, characterA, f.otp.GrantCode(ranchA), ranchA)
	require.Equal(t, characterA, okA.RancherUID)
	require.Equal(t, "alpha's ranch", okA.RanchName)
	require.Len(t, okA.Characters, 1)

	// B joins after A.
	okB := enterRanch(t, clientB, characterB, f.otp.GrantCode(ranchA), ranchA)
	require.Len(t, okB.Characters, 2)
	require.Equal(t, characterA, okB.Characters[0].UID)
	require.Equal(t, characterB, okB.Characters[1].UID)
	require.Less(t, okB.Characters[0].OID, okB.Characters[1].OID)
	require.Len(t, okB.Horses, 2)

	// A receives exactly one join notification carrying B's profile.
	payload := clientA.expectFrame(proto.CmdRanchEnterRanchNotify)
	notify := proto.RanchEnterRanchNotify{}
	r := packet.NewReader(payload)
	notify.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, characterB, notify.Character.UID)
	require.Equal(t, "bravo", notify.Character.Name)

	// C receives nothing.
	clientC.expectSilence()

	// B leaves; A receives exactly one leave notification.
	clientB.send(proto.CmdRanchLeaveRanch, proto.RanchLeaveRanch{})
	clientB.expectFrame(proto.CmdRanchLeaveRanchOK)

	payload = clientA.expectFrame(proto.CmdRanchLeaveRanchNotify)
	leave := proto.RanchLeaveRanchNotify{}
	r = packet.NewReader(payload)
	leave.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, characterB, leave.CharacterUID)

	clientA.expectSilence()
}

// The lobby-issued code authorizes ranch entry exactly once; replays and
// wrong codes return a cancel and a wrong code leaves the stored one
// authorizable.
func TestRanchOtpHandoff(t *testing.T) {
	f := newRanchFixture(t)

	const (
		characterA = data.Uid(100)
		ranchA     = data.Uid(300)
	)
	f.seedCharacter(t, characterA, "alpha", ranchA)
	f.seedRanch(t, ranchA, characterA, "alpha's ranch")

	code := f.otp.GrantCode(ranchA)

	// A wrong code cancels but does not burn the stored code.
	wrong := dialClient(t, f.addr())
	wrong.send(proto.CmdRanchEnterRanch, proto.RanchEnterRanch{
		CharacterUID: characterA,
		OTP:          code + 1,
		RanchUID:     ranchA,
	})
	wrong.expectFrame(proto.CmdRanchEnterRanchCancel)

	// The real code succeeds exactly once.
	client := dialClient(t, f.addr())
	enterRanch(t, client, characterA, code, ranchA)

	// A replay of the same pair cancels.
	replay := dialClient(t, f.addr())
	replay.send(proto.CmdRanchEnterRanch, proto.RanchEnterRanch{
		CharacterUID: characterA,
		OTP:          code,
		RanchUID:     ranchA,
	})
	replay.expectFrame(proto.CmdRanchEnterRanchCancel)
}

// A snapshot is rebroadcast to the other occupants, rewritten with the
// sender's OID.
func TestRanchSnapshotBroadcast(t *testing.T) {
	f := newRanchFixture(t)

	const (
		characterA = data.Uid(100)
		characterB = data.Uid(101)
		ranchA     = data.Uid(300)
	)
	f.seedCharacter(t, characterA, "alpha", ranchA)
	f.seedCharacter(t, characterB, "bravo", ranchA)
	f.seedRanch(t, ranchA, characterA, "alpha's ranch")

	clientA := dialClient(t, f.addr())
	clientB := dialClient(t, f.addr())

	enterRanch(t, clientA, characterA, f.otp.GrantCode(ranchA), ranchA)
	okB := enterRanch(t, clientB, characterB, f.otp.GrantCode(ranchA), ranchA)
	clientA.expectFrame(proto.CmdRanchEnterRanchNotify)

	snapshot := proto.RanchSnapshot{Type: proto.SnapshotPartial}
	snapshot.Partial.Time = 12345
	clientB.send(proto.CmdRanchSnapshot, snapshot)

	payload := clientA.expectFrame(proto.CmdRanchSnapshotNotify)
	notify := proto.RanchSnapshotNotify{}
	r := packet.NewReader(payload)
	notify.Read(r)
	require.NoError(t, r.Err())

	// The notify carries B's OID, which is the second character OID
	// handed out in the roster B received.
	require.Equal(t, okB.Characters[1].OID, notify.OID)
	require.Equal(t, uint32(12345), notify.Partial.Time)

	// The sender itself gets no echo.
	clientB.expectSilence()
}


// Chat commands answer only the sender; plain chat fans out.
func TestRanchChatRouting(t *testing.T) {
	f := newRanchFixture(t)

	const (
		characterA = data.Uid(100)
		characterB = data.Uid(101)
		ranchA     = data.Uid(300)
	)
	f.seedCharacter(t, characterA, "alpha", ranchA)
	f.seedCharacter(t, characterB, "bravo", ranchA)
	f.seedRanch(t, ranchA, characterA, "alpha's ranch")

	clientA := dialClient(t, f.addr())
	clientB := dialClient(t, f.addr())

	enterRanch(t, clientA, characterA, f.otp.GrantCode(ranchA), ranchA)
	enterRanch(t, clientB, characterB, f.otp.GrantCode(ranchA), ranchA)
	clientA.expectFrame(proto.CmdRanchEnterRanchNotify)

	// A command reply goes only to the sender.
	clientB.send(proto.CmdRanchChat, proto.RanchChat{Message: "//nosuchcommand"})
	payload := clientB.expectFrame(proto.CmdRanchChatNotify)
	notify := proto.RanchChatNotify{}
	r := packet.NewReader(payload)
	notify.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, "Unknown command", notify.Message)
	clientA.expectSilence()

	// Plain chat reaches the whole ranch, sender included.
	clientB.send(proto.CmdRanchChat, proto.RanchChat{Message: "hello"})
	for _, client := range []*testClient{clientA, clientB} {
		payload = client.expectFrame(proto.CmdRanchChatNotify)
		notify = proto.RanchChatNotify{}
		r = packet.NewReader(payload)
		notify.Read(r)
		require.NoError(t, r.Err())
		require.Equal(t, "bravo", notify.Author)
		require.Equal(t, "hello", notify.Message)
	}
}

// RanchStuff credits the carrot balance and acknowledges with the
// event id, the delta and the new total.
func TestRanchStuff(t *testing.T) {
	f := newRanchFixture(t)

	const (
		characterA = data.Uid(100)
		ranchA     = data.Uid(300)
	)
	f.seedCharacter(t, characterA, "alpha", ranchA)
	f.seedRanch(t, ranchA, characterA, "alpha's ranch")

	client := dialClient(t, f.addr())
	enterRanch(t, client, characterA, f.otp.GrantCode(ranchA), ranchA)

	client.send(proto.CmdRanchStuff, proto.RanchStuff{EventID: 3, Value: 25})

	payload := client.expectFrame(proto.CmdRanchStuffOK)
	response := proto.RanchStuffOK{}
	r := packet.NewReader(payload)
	response.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, uint32(3), response.EventID)
	require.Equal(t, int32(25), response.MoneyIncrement)
	require.Equal(t, int32(25), response.TotalMoney)
}
