package director

import (
	"sync"
	"time"

	"github.com/aliciago/server/internal/config"
	"github.com/aliciago/server/internal/data"
	"github.com/aliciago/server/internal/net/command"
	"github.com/aliciago/server/internal/proto"
	"github.com/aliciago/server/internal/system"
	"github.com/aliciago/server/internal/world"
	"go.uber.org/zap"
)

// raceRoom is one live race: its tracker, the present clients and the
// room state.
type raceRoom struct {
	tracker *world.RaceTracker
	clients map[data.Uid]uint64
	started bool
}

func newRaceRoom() *raceRoom {
	return &raceRoom{
		tracker: world.NewRaceTracker(),
		clients: make(map[data.Uid]uint64),
	}
}

type raceClientContext struct {
	characterUid data.Uid
	roomUid      uint32
}

// RaceDirector hosts the transient match rooms brokered out of the
// lobby.
type RaceDirector struct {
	server       *command.Server
	dataDirector *DataDirector
	otp          *system.OtpSystem
	rooms        *system.RoomSystem
	chat         *system.ChatSystem
	settings     config.ServiceConfig
	log          *zap.Logger

	mu      sync.Mutex
	clients map[uint64]*raceClientContext
	races   map[uint32]*raceRoom
}

func NewRaceDirector(
	dataDirector *DataDirector,
	otp *system.OtpSystem,
	rooms *system.RoomSystem,
	chat *system.ChatSystem,
	settings config.ServiceConfig,
	scrambleOutbound bool,
	log *zap.Logger,
) *RaceDirector {
	d := &RaceDirector{
		dataDirector: dataDirector,
		otp:          otp,
		rooms:        rooms,
		chat:         chat,
		settings:     settings,
		log:          log,
		clients:      make(map[uint64]*raceClientContext),
		races:        make(map[uint32]*raceRoom),
	}
	d.server = command.NewServer(command.Events{
		OnClientConnected:    d.handleClientConnected,
		OnClientDisconnected: d.handleClientDisconnected,
	}, scrambleOutbound, log)

	command.RegisterHandler[proto.RaceEnterRoom](d.server, proto.CmdRaceEnterRoom, d.handleEnterRoom)
	command.RegisterHandler[proto.RaceChangeRoomOptions](d.server, proto.CmdRaceChangeRoomOptions, d.handleChangeRoomOptions)
	command.RegisterHandler[proto.RaceReadyRace](d.server, proto.CmdRaceReadyRace, d.handleReadyRace)
	command.RegisterHandler[proto.RaceStartRace](d.server, proto.CmdRaceStartRace, d.handleStartRace)
	command.RegisterHandler[proto.RaceLoadingComplete](d.server, proto.CmdRaceLoadingComplete, d.handleLoadingComplete)
	command.RegisterHandler[proto.RaceChat](d.server, proto.CmdRaceChat, d.handleChat)
	command.RegisterHandler[proto.RaceUserRaceTimer](d.server, proto.CmdRaceUserRaceTimer, d.handleUserRaceTimer)

	return d
}

// Initialize hosts the race listener.
func (d *RaceDirector) Initialize() error {
	return d.server.Host(d.settings.Listen.Addr())
}

// Terminate closes the race listener and its clients.
func (d *RaceDirector) Terminate() {
	d.server.End()
}

// Tick does nothing; the race director is reactive.
func (d *RaceDirector) Tick() {}

func (d *RaceDirector) handleClientConnected(clientID uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clients[clientID] = &raceClientContext{}
}

func (d *RaceDirector) handleClientDisconnected(clientID uint64) {
	d.mu.Lock()
	context := d.clients[clientID]
	delete(d.clients, clientID)
	var (
		characterUid data.Uid
		roomUid      uint32
	)
	if context != nil {
		characterUid = context.characterUid
		roomUid = context.roomUid
	}
	d.mu.Unlock()

	if roomUid != 0 {
		d.removeRacer(characterUid, roomUid)
	}
}

func (d *RaceDirector) context(clientID uint64) *raceClientContext {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clients[clientID]
}

func (d *RaceDirector) roomClients(roomUid uint32, exclude data.Uid) []uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	room, ok := d.races[roomUid]
	if !ok {
		return nil
	}
	clients := make([]uint64, 0, len(room.clients))
	for characterUid, clientID := range room.clients {
		if characterUid == exclude {
			continue
		}
		clients = append(clients, clientID)
	}
	return clients
}

func (d *RaceDirector) handleEnterRoom(clientID uint64, message *proto.RaceEnterRoom) {
	if !d.otp.AuthorizeCode(message.RoomUID, message.OTP) {
		d.log.Info("room entry rejected, bad code",
			zap.Uint32("character", message.CharacterUID),
			zap.Uint32("room", message.RoomUID))
		d.server.QueueCommand(clientID, proto.CmdRaceEnterRoomCancel, proto.RaceEnterRoomCancel{})
		return
	}

	room, err := d.rooms.GetRoom(message.RoomUID)
	if err != nil {
		d.server.QueueCommand(clientID, proto.CmdRaceEnterRoomCancel, proto.RaceEnterRoomCancel{})
		return
	}

	d.mu.Lock()
	race, ok := d.races[message.RoomUID]
	if !ok {
		race = newRaceRoom()
		d.races[message.RoomUID] = race
	}
	race.tracker.AddRacer(message.CharacterUID)
	race.clients[message.CharacterUID] = clientID
	if context := d.clients[clientID]; context != nil {
		context.characterUid = message.CharacterUID
		context.roomUid = message.RoomUID
	}
	started := race.started
	racerUids := append([]data.Uid(nil), race.tracker.Racers()...)
	racerOids := make(map[data.Uid]world.Oid, len(racerUids))
	for _, uid := range racerUids {
		racerOids[uid] = race.tracker.GetRacer(uid).Oid
	}
	d.mu.Unlock()

	response := proto.RaceEnterRoomOK{
		NowPlaying: boolByte(started),
		UID:        message.RoomUID,
		RoomDescription: proto.RoomDescription{
			Name:        room.Name,
			PlayerCount: room.PlayerCount,
			Description: room.Description,
			GameMode:    room.GameMode,
			MapBlockID:  room.MapBlockID,
			TeamMode:    room.TeamMode,
			MissionID:   room.MissionID,
		},
	}

	for _, characterUid := range racerUids {
		entry, ok := d.buildRacer(characterUid, racerOids[characterUid])
		if !ok {
			continue
		}
		response.Racers = append(response.Racers, entry)
	}

	d.server.QueueCommand(clientID, proto.CmdRaceEnterRoomOK, response)

	if entering, ok := d.buildRacer(message.CharacterUID, racerOids[message.CharacterUID]); ok {
		d.server.Broadcast(
			d.roomClients(message.RoomUID, message.CharacterUID),
			proto.CmdRaceEnterRoomNotify,
			proto.RaceEnterRoomNotify{Racer: entering})
	}
}

// buildRacer assembles a roster entry for the room.
func (d *RaceDirector) buildRacer(characterUid data.Uid, oid world.Oid) (proto.Racer, bool) {
	characterRecord, ok := d.dataDirector.GetCharacter(characterUid)
	if !ok {
		return proto.Racer{}, false
	}

	entry := proto.Racer{
		OID: uint32(oid),
		UID: characterUid,
	}

	avatar := proto.Avatar{}
	var (
		mountUid  data.Uid
		equipment []data.Uid
	)
	characterRecord.Immutable(func(character *data.Character) {
		entry.Name = character.Name.Get()
		entry.Level = uint32(character.Level.Get())
		avatar.Character = protocolCharacter(character)
		mountUid = character.MountUid.Get()
		equipment = character.CharacterEquipment.Get()
	})

	if mountUid != data.InvalidUid {
		horseRecord, ok := d.dataDirector.GetHorse(mountUid)
		if !ok {
			return proto.Racer{}, false
		}
		horseRecord.Immutable(func(horse *data.Horse) {
			avatar.Mount = protocolHorse(horse)
		})
	}
	if equipmentRecords, ok := d.dataDirector.GetItems(equipment); ok {
		avatar.CharacterEquipment = protocolItems(equipmentRecords)
	}

	entry.Avatar = &avatar
	return entry, true
}

func (d *RaceDirector) removeRacer(characterUid data.Uid, roomUid uint32) {
	d.mu.Lock()
	race, ok := d.races[roomUid]
	if !ok {
		d.mu.Unlock()
		return
	}
	race.tracker.RemoveRacer(characterUid)
	delete(race.clients, characterUid)
	empty := len(race.clients) == 0
	if empty {
		delete(d.races, roomUid)
	}
	d.mu.Unlock()

	if empty {
		if err := d.rooms.DeleteRoom(roomUid); err == nil {
			d.log.Debug("room deleted", zap.Uint32("room", roomUid))
		}
	}
}

// handleChangeRoomOptions applies the changed fields selected by the
// bitfield and fans the change out with the same bitfield shape.
func (d *RaceDirector) handleChangeRoomOptions(clientID uint64, message *proto.RaceChangeRoomOptions) {
	context := d.context(clientID)
	if context == nil || context.roomUid == 0 {
		return
	}

	room, err := d.rooms.GetRoom(context.roomUid)
	if err != nil {
		return
	}

	if message.OptionsBitfield&proto.RoomOptionName != 0 {
		room.Name = message.Name
	}
	if message.OptionsBitfield&proto.RoomOptionPlayerCount != 0 {
		room.PlayerCount = message.PlayerCount
	}
	if message.OptionsBitfield&proto.RoomOptionDescription != 0 {
		room.Description = message.Description
	}
	if message.OptionsBitfield&proto.RoomOptionMapBlockID != 0 {
		room.MapBlockID = message.MapBlockID
	}

	d.server.Broadcast(d.roomClients(context.roomUid, data.InvalidUid),
		proto.CmdRaceChangeRoomOptionsNotify,
		proto.RaceChangeRoomOptionsNotify{
			OptionsBitfield: message.OptionsBitfield,
			Name:            message.Name,
			PlayerCount:     message.PlayerCount,
			Description:     message.Description,
			Option3:         message.Option3,
			MapBlockID:      message.MapBlockID,
			HasRaceStarted:  message.HasRaceStarted,
		})
}

// handleReadyRace toggles the sender's readiness and fans it out.
func (d *RaceDirector) handleReadyRace(clientID uint64, _ *proto.RaceReadyRace) {
	context := d.context(clientID)
	if context == nil || context.roomUid == 0 {
		return
	}

	d.mu.Lock()
	race, ok := d.races[context.roomUid]
	var ready uint8
	if ok {
		if racer := race.tracker.GetRacer(context.characterUid); racer != nil {
			if racer.State == world.RacerReady {
				racer.State = world.RacerNotReady
			} else if racer.State == world.RacerNotReady {
				racer.State = world.RacerReady
			}
			if racer.State == world.RacerReady {
				ready = 1
			}
		}
	}
	d.mu.Unlock()
	if !ok {
		return
	}

	d.server.Broadcast(d.roomClients(context.roomUid, data.InvalidUid),
		proto.CmdRaceReadyRaceNotify,
		proto.RaceReadyRaceNotify{
			CharacterUID: context.characterUid,
			Ready:        ready,
		})
}

// handleStartRace moves every racer in the room into loading, whatever its
// readiness, and announces the start grid.
func (d *RaceDirector) handleStartRace(clientID uint64, _ *proto.RaceStartRace) {
	context := d.context(clientID)
	if context == nil || context.roomUid == 0 {
		return
	}

	room, err := d.rooms.GetRoom(context.roomUid)
	if err != nil {
		d.server.QueueCommand(clientID, proto.CmdRaceStartRaceCancel, proto.RaceStartRaceCancel{Reason: 1})
		return
	}

	d.mu.Lock()
	race, ok := d.races[context.roomUid]
	if !ok {
		d.mu.Unlock()
		d.server.QueueCommand(clientID, proto.CmdRaceStartRaceCancel, proto.RaceStartRaceCancel{Reason: 1})
		return
	}

	notify := proto.RaceStartRaceNotify{
		GameMode:   room.GameMode,
		MapBlockID: room.MapBlockID,
		Member4:    context.roomUid,
		IP:         d.settings.Listen.AdvertisedAddress(),
		Port:       d.settings.Listen.Port,
	}
	for _, characterUid := range race.tracker.Racers() {
		racer := race.tracker.GetRacer(characterUid)
		if racer == nil {
			continue
		}
		racer.State = world.RacerLoading

		entry := proto.RaceStartRaceNotifyRacer{
			OID:   racer.Oid,
			P2DID: characterUid,
		}
		if characterRecord, ok := d.dataDirector.GetCharacter(characterUid); ok {
			characterRecord.Immutable(func(character *data.Character) {
				entry.Name = character.Name.Get()
			})
		}
		notify.Racers = append(notify.Racers, entry)
	}
	race.started = true
	d.mu.Unlock()

	d.server.Broadcast(d.roomClients(context.roomUid, data.InvalidUid),
		proto.CmdRaceStartRaceNotify, notify)
}

// handleLoadingComplete marks the racer loaded, fans the completion out,
// and starts the countdown once the whole grid is loaded.
func (d *RaceDirector) handleLoadingComplete(clientID uint64, _ *proto.RaceLoadingComplete) {
	context := d.context(clientID)
	if context == nil || context.roomUid == 0 {
		return
	}

	d.mu.Lock()
	race, ok := d.races[context.roomUid]
	var oid world.Oid
	allLoaded := false
	if ok {
		if racer := race.tracker.GetRacer(context.characterUid); racer != nil {
			racer.State = world.RacerRacing
			oid = racer.Oid
		}
		allLoaded = true
		for _, characterUid := range race.tracker.Racers() {
			if racer := race.tracker.GetRacer(characterUid); racer != nil &&
				racer.State != world.RacerRacing {
				allLoaded = false
				break
			}
		}
	}
	d.mu.Unlock()
	if !ok || oid == world.InvalidOid {
		return
	}

	d.server.Broadcast(d.roomClients(context.roomUid, context.characterUid),
		proto.CmdRaceLoadingCompleteNotify,
		proto.RaceLoadingCompleteNotify{OID: oid})

	if allLoaded {
		countdown := proto.RaceCountdown{
			Timestamp: fileTimeInt64(time.Now().Add(3 * time.Second)),
		}
		d.server.Broadcast(d.roomClients(context.roomUid, data.InvalidUid),
			proto.CmdRaceCountdown, countdown)
	}
}

func (d *RaceDirector) handleChat(clientID uint64, message *proto.RaceChat) {
	context := d.context(clientID)
	if context == nil || context.roomUid == 0 {
		return
	}

	var author string
	var muted bool
	if characterRecord, ok := d.dataDirector.GetCharacter(context.characterUid); ok {
		characterRecord.Immutable(func(character *data.Character) {
			author = character.Name.Get()
			muted = character.Muted.Get()
		})
	}

	verdict := d.chat.ProcessChatMessage(context.characterUid, message.Message)
	if verdict.CommandVerdict != nil {
		for _, line := range verdict.CommandVerdict.Result {
			d.server.QueueCommand(clientID, proto.CmdRaceChatNotify, proto.RaceChatNotify{
				Message: line,
			})
		}
		return
	}
	if muted {
		return
	}

	d.server.Broadcast(d.roomClients(context.roomUid, data.InvalidUid),
		proto.CmdRaceChatNotify,
		proto.RaceChatNotify{
			Author:  author,
			Message: verdict.Message,
		})
}

func (d *RaceDirector) handleUserRaceTimer(clientID uint64, message *proto.RaceUserRaceTimer) {
	d.server.QueueCommand(clientID, proto.CmdRaceUserRaceTimerOK, proto.RaceUserRaceTimerOK{
		Unk0: message.Timestamp,
		Unk1: uint64(fileTimeInt64(time.Now())),
	})
}

// fileTimeInt64 renders a time point as a 64-bit Windows file time.
func fileTimeInt64(t time.Time) int64 {
	ft := proto.TimeToFileTime(t)
	return int64(uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime))
}
