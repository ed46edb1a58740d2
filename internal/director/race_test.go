package director

import (
	"net"
	"testing"

	"github.com/aliciago/server/internal/config"
	"github.com/aliciago/server/internal/data"
	"github.com/aliciago/server/internal/net/packet"
	"github.com/aliciago/server/internal/persist"
	"github.com/aliciago/server/internal/proto"
	"github.com/aliciago/server/internal/system"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type raceFixture struct {
	dataDirector *DataDirector
	otp          *system.OtpSystem
	rooms        *system.RoomSystem
	race         *RaceDirector
}

func newRaceFixture(t *testing.T) *raceFixture {
	t.Helper()
	log := zap.NewNop()

	source := persist.NewFileSource(t.TempDir())
	require.NoError(t, source.Initialize())
	dataDirector := NewDataDirector(source, log)

	otp := system.NewOtpSystem()
	rooms := system.NewRoomSystem()
	chat := system.NewChatSystem(dataDirector, staticPresence{}, log)

	race := NewRaceDirector(dataDirector, otp, rooms, chat, config.ServiceConfig{
		Enabled: true,
		Listen:  config.Listen{Address: net.IPv4(127, 0, 0, 1), Port: 0},
	}, false, log)
	require.NoError(t, race.Initialize())
	t.Cleanup(race.Terminate)

	return &raceFixture{dataDirector: dataDirector, otp: otp, rooms: rooms, race: race}
}

func (f *raceFixture) addr() string {
	return f.race.server.Addr().String()
}

func (f *raceFixture) seedCharacter(t *testing.T, uid data.Uid, name string) {
	t.Helper()

	mountUid := uid + 1000
	horseRecord, ok := f.dataDirector.CreateHorse(mountUid)
	require.True(t, ok)
	horseRecord.Mutable(func(horse *data.Horse) {
		horse.Uid.Set(mountUid)
		horse.Tid.Set(0x4E21)
	})

	characterRecord, ok := f.dataDirector.CreateCharacter(uid)
	require.True(t, ok)
	characterRecord.Mutable(func(character *data.Character) {
		character.Uid.Set(uid)
		character.Name.Set(name)
		character.MountUid.Set(mountUid)
	})
}

func (f *raceFixture) makeRoom(name string) *system.Room {
	room := f.rooms.CreateRoom()
	room.Name = name
	room.GameMode = proto.GameModeSpeed
	room.TeamMode = proto.TeamModeSingle
	room.MapBlockID = 11
	room.Otp = f.otp.GrantCode(room.Uid)
	return room
}

func enterRoom(t *testing.T, f *raceFixture, client *testClient, characterUid data.Uid, room *system.Room, code uint32) {
	t.Helper()
	client.send(proto.CmdRaceEnterRoom, proto.RaceEnterRoom{
		CharacterUID: characterUid,
		OTP:          code,
		RoomUID:      room.Uid,
	})
	client.expectFrame(proto.CmdRaceEnterRoomOK)
}

func TestRaceRoomEntryAndOtp(t *testing.T) {
	f := newRaceFixture(t)
	f.seedCharacter(t, 100, "alpha")
	f.seedCharacter(t, 101, "bravo")

	room := f.makeRoom("fun run")

	clientA := dialClient(t, f.addr())
	enterRoom(t, f, clientA, 100, room, room.Otp)

	// The code is burned; the second racer needs a fresh grant.
	clientB := dialClient(t, f.addr())
	clientB.send(proto.CmdRaceEnterRoom, proto.RaceEnterRoom{
		CharacterUID: 101,
		OTP:          room.Otp,
		RoomUID:      room.Uid,
	})
	clientB.expectFrame(proto.CmdRaceEnterRoomCancel)

	code := f.otp.GrantCode(room.Uid)
	clientB2 := dialClient(t, f.addr())
	enterRoom(t, f, clientB2, 101, room, code)

	// The first racer sees the join.
	clientA.expectFrame(proto.CmdRaceEnterRoomNotify)
}

func TestRaceReadyStartLoadingCountdown(t *testing.T) {
	f := newRaceFixture(t)
	f.seedCharacter(t, 100, "alpha")
	f.seedCharacter(t, 101, "bravo")

	room := f.makeRoom("grand prix")

	clientA := dialClient(t, f.addr())
	enterRoom(t, f, clientA, 100, room, room.Otp)

	clientB := dialClient(t, f.addr())
	enterRoom(t, f, clientB, 101, room, f.otp.GrantCode(room.Uid))
	clientA.expectFrame(proto.CmdRaceEnterRoomNotify)

	// B readies up; everyone hears it.
	clientB.send(proto.CmdRaceReadyRace, proto.RaceReadyRace{})
	for _, client := range []*testClient{clientA, clientB} {
		payload := client.expectFrame(proto.CmdRaceReadyRaceNotify)
		notify := proto.RaceReadyRaceNotify{}
		r := packet.NewReader(payload)
		notify.Read(r)
		require.NoError(t, r.Err())
		require.Equal(t, data.Uid(101), notify.CharacterUID)
		require.Equal(t, uint8(1), notify.Ready)
	}

	// A starts the race; the start grid reaches the room.
	clientA.send(proto.CmdRaceStartRace, proto.RaceStartRace{})
	for _, client := range []*testClient{clientA, clientB} {
		client.expectFrame(proto.CmdRaceStartRaceNotify)
	}

	// A finishes loading; B hears it, no countdown yet.
	clientA.send(proto.CmdRaceLoadingComplete, proto.RaceLoadingComplete{})
	payload := clientB.expectFrame(proto.CmdRaceLoadingCompleteNotify)
	notify := proto.RaceLoadingCompleteNotify{}
	notify.Read(packet.NewReader(payload))
	require.NotZero(t, notify.OID)
	clientA.expectSilence()

	// Once B finishes too, the countdown reaches the whole grid.
	clientB.send(proto.CmdRaceLoadingComplete, proto.RaceLoadingComplete{})
	clientA.expectFrame(proto.CmdRaceLoadingCompleteNotify)
	clientA.expectFrame(proto.CmdRaceCountdown)
	clientB.expectFrame(proto.CmdRaceCountdown)
}

func TestRaceChangeRoomOptionsBroadcast(t *testing.T) {
	f := newRaceFixture(t)
	f.seedCharacter(t, 100, "alpha")

	room := f.makeRoom("fun run")
	client := dialClient(t, f.addr())
	enterRoom(t, f, client, 100, room, room.Otp)

	client.send(proto.CmdRaceChangeRoomOptions, proto.RaceChangeRoomOptions{
		OptionsBitfield: proto.RoomOptionName | proto.RoomOptionMapBlockID,
		Name:            "renamed",
		MapBlockID:      42,
	})

	payload := client.expectFrame(proto.CmdRaceChangeRoomOptionsNotify)
	notify := proto.RaceChangeRoomOptionsNotify{}
	r := packet.NewReader(payload)
	notify.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, proto.RoomOptionName|proto.RoomOptionMapBlockID, notify.OptionsBitfield)
	require.Equal(t, "renamed", notify.Name)
	require.Equal(t, uint16(42), notify.MapBlockID)

	updated, err := f.rooms.GetRoom(room.Uid)
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Name)
	require.Equal(t, uint16(42), updated.MapBlockID)
}

func TestRaceUserTimerAck(t *testing.T) {
	f := newRaceFixture(t)
	f.seedCharacter(t, 100, "alpha")

	room := f.makeRoom("fun run")
	client := dialClient(t, f.addr())
	enterRoom(t, f, client, 100, room, room.Otp)

	client.send(proto.CmdRaceUserRaceTimer, proto.RaceUserRaceTimer{Timestamp: 777})

	payload := client.expectFrame(proto.CmdRaceUserRaceTimerOK)
	response := proto.RaceUserRaceTimerOK{}
	r := packet.NewReader(payload)
	response.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, uint64(777), response.Unk0)
	require.NotZero(t, response.Unk1)
}
