package director

import (
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
	"golang.org/x/crypto/bcrypt"
)

type lobbyFixture struct {
	source       *persist.FileSource
	dataDirector *DataDirector
	otp          *system.OtpSystem
	rooms        *system.RoomSystem
	lobby        *LobbyDirector
	stop         chan struct{}
}

func newLobbyFixture(t *testing.T) *lobbyFixture {
	t.Helper()
	log := zap.NewNop()

	source := persist.NewFileSource(t.TempDir())
	require.NoError(t, source.Initialize())
	dataDirector := NewDataDirector(source, log)

	otp := system.NewOtpSystem()
	rooms := system.NewRoomSystem()
	infractions := system.NewInfractionSystem(dataDirector)

	localhost := net.IPv4(127, 0, 0, 1)
	lobby := NewLobbyDirector(dataDirector, otp, rooms, infractions, config.LobbyConfig{
		Enabled: true,
		Listen:  config.Listen{Address: localhost, Port: 0},
		Advertisement: config.Advertisement{
			Ranch:     config.Listen{Address: localhost, Port: 10031},
			Race:      config.Listen{Address: localhost, Port: 10032},
			Messenger: config.Listen{Address: localhost, Port: 10033},
		},
	}, "welcome", false, log)
	require.NoError(t, lobby.Initialize())
	t.Cleanup(lobby.Terminate)

	f := &lobbyFixture{
		source:       source,
		dataDirector: dataDirector,
		otp:          otp,
		rooms:        rooms,
		lobby:        lobby,
		stop:         make(chan struct{}),
	}

	// Pump the data director and the login pipeline like the tick
	// threads would.
	go func() {
		ticker := time.NewTicker(5 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				dataDirector.Tick()
				lobby.Tick()
			case <-f.stop:
				return
			}
		}
	}()
	t.Cleanup(func() { close(f.stop) })

	return f
}

func (f *lobbyFixture) addr() string {
	return f.lobby.server.Addr().String()
}

// seedUser writes a user with a bcrypt token digest to the data source.
func (f *lobbyFixture) seedUser(t *testing.T, name, authKey string, characterUid data.Uid) {
	t.Helper()

	digest, err := bcrypt.GenerateFromPassword([]byte(authKey), bcrypt.MinCost)
	require.NoError(t, err)

	user := data.User{}
	user.Name.Set(name)
	user.Token.Set(string(digest))
	user.CharacterUid.Set(characterUid)
	require.NoError(t, f.source.StoreUser(name, &user))
}

func (f *lobbyFixture) seedCharacter(t *testing.T, uid data.Uid, name string) {
	t.Helper()

	mountUid := uid + 1000
	horse := data.Horse{}
	horse.Uid.Set(mountUid)
	horse.Tid.Set(0x4E21)
	horse.Name.Set(name + "'s horse")
	require.NoError(t, f.source.StoreHorse(mountUid, &horse))

	character := data.Character{}
	character.Uid.Set(uid)
	character.Name.Set(name)
	character.Level.Set(7)
	character.Carrots.Set(1234)
	character.MountUid.Set(mountUid)
	character.Horses.Set([]data.Uid{mountUid})
	character.RanchUid.Set(uid + 2000)
	require.NoError(t, f.source.StoreCharacter(uid, &character))
}

// loginReply is the subset of the login acknowledgment the tests care
// about.
type loginReply struct {
	selfUid  data.Uid
	nickname string
	motd     string
	constant uint32
}

// parseLoginOK walks the reply up to the scrambling constant, mirroring
// the write order.
func parseLoginOK(t *testing.T, payload []byte) loginReply {
	t.Helper()
	r := packet.NewReader(payload)

	r.ReadUint64() // lobby file time
	r.ReadUint32() // val0

	reply := loginReply{}
	reply.selfUid = r.ReadUint32()
	reply.nickname = r.ReadString()
	reply.motd = r.ReadString()
	r.ReadUint8()  // gender
	r.ReadString() // status

	for i, n := 0, int(r.ReadUint8()); i < n; i++ {
		item := proto.Item{}
		item.Read(r)
	}
	for i, n := 0, int(r.ReadUint8()); i < n; i++ {
		item := proto.Item{}
		item.Read(r)
	}

	r.ReadUint16() // level
	r.ReadInt32()  // carrots
	r.ReadUint32()
	r.ReadUint32()
	r.ReadUint8()

	optionType := proto.OptionType(r.ReadUint32())
	if optionType&proto.OptionKeyboard != 0 {
		options := proto.KeyboardOptions{}
		options.Read(r)
	}
	if optionType&proto.OptionMacros != 0 {
		options := proto.MacroOptions{}
		options.Read(r)
	}
	if optionType&proto.OptionValue != 0 {
		r.ReadUint32()
	}

	r.ReadUint8() // age group
	r.ReadUint8() // hide age

	hintCount := int(r.ReadUint8())
	for i := 0; i < hintCount; i++ {
		r.ReadUint16()
		nested := int(r.ReadUint8())
		for j := 0; j < nested; j++ {
			r.ReadUint32()
			r.ReadUint32()
		}
	}
	r.ReadString()

	r.ReadUint32() // race host address
	r.ReadUint16() // race host port
	reply.constant = r.ReadUint32()

	require.NoError(t, r.Err())
	return reply
}

// completeLogin reads the login acknowledgment and re-seeds the client
// code with the advertised scrambling constant.
func completeLogin(t *testing.T, client *testClient) loginReply {
	t.Helper()
	payload := client.expectFrame(proto.CmdLobbyLoginOK)
	reply := parseLoginOK(t, payload)
	client.code = reply.constant
	return reply
}

func login(t *testing.T, client *testClient, name, authKey string) {
	t.Helper()
	client.send(proto.CmdLobbyLogin, proto.LobbyLogin{
		Constant0: 50,
		Constant1: 281,
		LoginID:   name,
		AuthKey:   authKey,
	})
}

func TestLobbyLoginOK(t *testing.T) {
	f := newLobbyFixture(t)
	f.seedUser(t, "rider", "secret", 100)
	f.seedCharacter(t, 100, "rider")

	client := dialClient(t, f.addr())
	login(t, client, "rider", "secret")

	reply := completeLogin(t, client)
	require.Equal(t, data.Uid(100), reply.selfUid)
	require.Equal(t, "rider", reply.nickname)
	require.Equal(t, "welcome", reply.motd)
}

func TestLobbyLoginBadToken(t *testing.T) {
	f := newLobbyFixture(t)
	f.seedUser(t, "rider", "secret", 100)
	f.seedCharacter(t, 100, "rider")

	client := dialClient(t, f.addr())
	login(t, client, "rider", "wrong")

	payload := client.expectFrame(proto.CmdLobbyLoginCancel)
	cancel := proto.LobbyLoginCancel{}
	r := packet.NewReader(payload)
	cancel.Read(r)
	require.Equal(t, proto.LoginCancelInvalidUser, cancel.Reason)
}

func TestLobbyLoginVersionMismatch(t *testing.T) {
	f := newLobbyFixture(t)

	client := dialClient(t, f.addr())
	client.send(proto.CmdLobbyLogin, proto.LobbyLogin{
		Constant0: 1,
		Constant1: 1,
		LoginID:   "rider",
	})

	payload := client.expectFrame(proto.CmdLobbyLoginCancel)
	cancel := proto.LobbyLoginCancel{}
	cancel.Read(packet.NewReader(payload))
	require.Equal(t, proto.LoginCancelInvalidVersion, cancel.Reason)
}

func TestLobbyCharacterCreation(t *testing.T) {
	f := newLobbyFixture(t)
	// No character bound yet.
	f.seedUser(t, "fresh", "secret", data.InvalidUid)

	client := dialClient(t, f.addr())
	login(t, client, "fresh", "secret")

	client.expectFrame(proto.CmdLobbyCreateNicknameNotify)

	client.send(proto.CmdLobbyCreateNickname, proto.LobbyCreateNickname{
		Nickname: "newbie",
	})

	reply := completeLogin(t, client)
	require.NotEqual(t, data.InvalidUid, reply.selfUid)
	require.Equal(t, "newbie", reply.nickname)
}

func TestLobbyEnterRanchHandoff(t *testing.T) {
	f := newLobbyFixture(t)
	f.seedUser(t, "rider", "secret", 100)
	f.seedCharacter(t, 100, "rider")

	client := dialClient(t, f.addr())
	login(t, client, "rider", "secret")
	completeLogin(t, client)

	client.send(proto.CmdLobbyEnterRanch, proto.LobbyEnterRanch{})

	payload := client.expectFrame(proto.CmdLobbyEnterRanchOK)
	response := proto.LobbyEnterRanchOK{}
	r := packet.NewReader(payload)
	response.Read(r)
	require.NoError(t, r.Err())

	// The advertised ranch is the character's own; the code authorizes
	// against the OTP system exactly once.
	require.Equal(t, data.Uid(2100), response.RanchUID)
	require.Equal(t, uint16(10031), response.Port)
	require.True(t, f.otp.AuthorizeCode(response.RanchUID, response.Code))
	require.False(t, f.otp.AuthorizeCode(response.RanchUID, response.Code))
}

func TestLobbyMakeRoom(t *testing.T) {
	f := newLobbyFixture(t)
	f.seedUser(t, "rider", "secret", 100)
	f.seedCharacter(t, 100, "rider")

	client := dialClient(t, f.addr())
	login(t, client, "rider", "secret")
	completeLogin(t, client)

	client.send(proto.CmdLobbyMakeRoom, proto.LobbyMakeRoom{
		Name:      "fun run",
		MissionID: 4,
	})

	payload := client.expectFrame(proto.CmdLobbyMakeRoomOK)
	response := proto.LobbyMakeRoomOK{}
	r := packet.NewReader(payload)
	response.Read(r)
	require.NoError(t, r.Err())
	require.NotZero(t, response.RoomUID)
	require.Equal(t, uint16(10032), response.Port)

	room, err := f.rooms.GetRoom(response.RoomUID)
	require.NoError(t, err)
	require.Equal(t, "fun run", room.Name)
	require.Equal(t, uint16(4), room.MissionID)
	require.Equal(t, response.OTP, room.Otp)
}

func TestLobbyInquiryTreecash(t *testing.T) {
	f := newLobbyFixture(t)
	f.seedUser(t, "rider", "secret", 100)
	f.seedCharacter(t, 100, "rider")

	client := dialClient(t, f.addr())
	login(t, client, "rider", "secret")
	completeLogin(t, client)

	client.send(proto.CmdLobbyInquiryTreecash, proto.LobbyInquiryTreecash{})

	payload := client.expectFrame(proto.CmdLobbyInquiryTreecashOK)
	response := proto.LobbyInquiryTreecashOK{}
	response.Read(packet.NewReader(payload))
	require.Equal(t, uint32(0), response.Cash)
}

func TestLobbyShowInventory(t *testing.T) {
	f := newLobbyFixture(t)
	f.seedUser(t, "rider", "secret", 100)
	f.seedCharacter(t, 100, "rider")

	client := dialClient(t, f.addr())
	login(t, client, "rider", "secret")
	completeLogin(t, client)

	// The horse list needs a retrieval tick; retry like a client would.
	deadline := time.Now().Add(2 * time.Second)
	for {
		client.send(proto.CmdLobbyShowInventory, proto.LobbyShowInventory{})
		id, payload, err := client.readFrame(2 * time.Second)
		require.NoError(t, err)
		if id == proto.CmdLobbyShowInventoryCancel && time.Now().Before(deadline) {
			time.Sleep(20 * time.Millisecond)
			continue
		}
		require.Equal(t, proto.CmdLobbyShowInventoryOK, id)

		response := proto.LobbyShowInventoryOK{}
		r := packet.NewReader(payload)
		response.Read(r)
		require.NoError(t, r.Err())
		require.Empty(t, response.Items)
		require.Len(t, response.Horses, 1)
		require.Equal(t, "rider's horse", response.Horses[0].Name)
		return
	}
}
