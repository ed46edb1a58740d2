package director

import (
	"math/rand"
	"sync"

	"github.com/aliciago/server/internal/config"
	"github.com/aliciago/server/internal/data"
	"github.com/aliciago/server/internal/net/command"
	"github.com/aliciago/server/internal/proto"
	"github.com/aliciago/server/internal/system"
	"go.uber.org/zap"
)

// Client build identification carried in the login command.
const (
	loginConstant0 = 50
	loginConstant1 = 281
)

type lobbyClientState int

const (
	lobbyStateUnauthenticated lobbyClientState = iota
	lobbyStateAwaitingUser
	lobbyStateAwaitingCharacter
	lobbyStateNoCharacter
	lobbyStateActive
	lobbyStateRejected
)

type lobbyClientContext struct {
	state lobbyClientState

	userName string
	authKey  string

	characterUid data.Uid
	muted        bool
}

// LobbyDirector authenticates users, brokers channels and rooms, and
// advertises the ranch, race and messenger hosts.
type LobbyDirector struct {
	server       *command.Server
	dataDirector *DataDirector
	otp          *system.OtpSystem
	rooms        *system.RoomSystem
	infractions  *system.InfractionSystem
	settings     config.LobbyConfig
	motd         string
	log          *zap.Logger

	mu      sync.Mutex
	clients map[uint64]*lobbyClientContext
}

func NewLobbyDirector(
	dataDirector *DataDirector,
	otp *system.OtpSystem,
	rooms *system.RoomSystem,
	infractions *system.InfractionSystem,
	settings config.LobbyConfig,
	motd string,
	scrambleOutbound bool,
	log *zap.Logger,
) *LobbyDirector {
	d := &LobbyDirector{
		dataDirector: dataDirector,
		otp:          otp,
		rooms:        rooms,
		infractions:  infractions,
		settings:     settings,
		motd:         motd,
		log:          log,
		clients:      make(map[uint64]*lobbyClientContext),
	}
	d.server = command.NewServer(command.Events{
		OnClientConnected:    d.handleClientConnected,
		OnClientDisconnected: d.handleClientDisconnected,
	}, scrambleOutbound, log)

	command.RegisterHandler[proto.LobbyLogin](d.server, proto.CmdLobbyLogin, d.handleLogin)
	command.RegisterHandler[proto.LobbyCreateNickname](d.server, proto.CmdLobbyCreateNickname, d.handleCreateNickname)
	command.RegisterHandler[proto.LobbyEnterChannel](d.server, proto.CmdLobbyEnterChannel, d.handleEnterChannel)
	command.RegisterHandler[proto.LobbyMakeRoom](d.server, proto.CmdLobbyMakeRoom, d.handleMakeRoom)
	command.RegisterHandler[proto.LobbyRoomList](d.server, proto.CmdLobbyRoomList, d.handleRoomList)
	command.RegisterHandler[proto.LobbyHeartbeat](d.server, proto.CmdLobbyHeartbeat, d.handleHeartbeat)
	command.RegisterHandler[proto.LobbyShowInventory](d.server, proto.CmdLobbyShowInventory, d.handleShowInventory)
	command.RegisterHandler[proto.LobbyAchievementCompleteList](d.server, proto.CmdLobbyAchievementCompleteList, d.handleAchievementCompleteList)
	command.RegisterHandler[proto.LobbyRequestLeagueInfo](d.server, proto.CmdLobbyRequestLeagueInfo, d.handleRequestLeagueInfo)
	command.RegisterHandler[proto.LobbyRequestQuestList](d.server, proto.CmdLobbyRequestQuestList, d.handleRequestQuestList)
	command.RegisterHandler[proto.LobbyRequestDailyQuestList](d.server, proto.CmdLobbyRequestDailyQuestList, d.handleRequestDailyQuestList)
	command.RegisterHandler[proto.LobbyRequestSpecialEventList](d.server, proto.CmdLobbyRequestSpecialEventList, d.handleRequestSpecialEventList)
	command.RegisterHandler[proto.LobbyEnterRanch](d.server, proto.CmdLobbyEnterRanch, d.handleEnterRanch)
	command.RegisterHandler[proto.LobbyEnterRandomRanch](d.server, proto.CmdLobbyEnterRandomRanch, d.handleEnterRandomRanch)
	command.RegisterHandler[proto.LobbyGetMessengerInfo](d.server, proto.CmdLobbyGetMessengerInfo, d.handleGetMessengerInfo)
	command.RegisterHandler[proto.LobbyGoodsShopList](d.server, proto.CmdLobbyGoodsShopList, d.handleGoodsShopList)
	command.RegisterHandler[proto.LobbyInquiryTreecash](d.server, proto.CmdLobbyInquiryTreecash, d.handleInquiryTreecash)
	command.RegisterHandler[proto.LobbyClientNotify](d.server, proto.CmdLobbyClientNotify, d.handleClientNotify)

	return d
}

// Initialize hosts the lobby listener.
func (d *LobbyDirector) Initialize() error {
	d.log.Info("lobby advertising ranch host",
		zap.String("address", d.settings.Advertisement.Ranch.Addr()))
	d.log.Info("lobby advertising race host",
		zap.String("address", d.settings.Advertisement.Race.Addr()))
	d.log.Info("lobby advertising messenger host",
		zap.String("address", d.settings.Advertisement.Messenger.Addr()))

	return d.server.Host(d.settings.Listen.Addr())
}

// Terminate closes the lobby listener and its clients.
func (d *LobbyDirector) Terminate() {
	d.server.End()
}

// Tick advances the login pipeline.
func (d *LobbyDirector) Tick() {
	d.mu.Lock()
	pending := make(map[uint64]*lobbyClientContext)
	for clientID, context := range d.clients {
		if context.state == lobbyStateAwaitingUser || context.state == lobbyStateAwaitingCharacter {
			pending[clientID] = context
		}
	}
	d.mu.Unlock()

	for clientID, context := range pending {
		d.stepLogin(clientID, context)
	}
}

func (d *LobbyDirector) handleClientConnected(clientID uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clients[clientID] = &lobbyClientContext{}
}

func (d *LobbyDirector) handleClientDisconnected(clientID uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.clients, clientID)
}

func (d *LobbyDirector) context(clientID uint64) *lobbyClientContext {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clients[clientID]
}

// characterUid returns the authenticated character binding, or
// InvalidUid when the client has not completed the login pipeline.
func (d *LobbyDirector) characterUid(clientID uint64) data.Uid {
	context := d.context(clientID)
	if context == nil || context.state != lobbyStateActive {
		return data.InvalidUid
	}
	return context.characterUid
}

// OnlineCharacterNames lists the names of the characters bound to
// active lobby clients, for presence queries.
func (d *LobbyDirector) OnlineCharacterNames() []string {
	d.mu.Lock()
	uids := make([]data.Uid, 0, len(d.clients))
	for _, context := range d.clients {
		if context.state == lobbyStateActive && context.characterUid != data.InvalidUid {
			uids = append(uids, context.characterUid)
		}
	}
	d.mu.Unlock()

	names := make([]string, 0, len(uids))
	for _, uid := range uids {
		record, ok := d.dataDirector.GetCharacter(uid)
		if !ok {
			continue
		}
		record.Immutable(func(character *data.Character) {
			names = append(names, character.Name.Get())
		})
	}
	return names
}

// OnlineCharacterUids lists the character UIDs bound to active clients.
func (d *LobbyDirector) OnlineCharacterUids() []data.Uid {
	d.mu.Lock()
	defer d.mu.Unlock()

	uids := make([]data.Uid, 0, len(d.clients))
	for _, context := range d.clients {
		if context.state == lobbyStateActive && context.characterUid != data.InvalidUid {
			uids = append(uids, context.characterUid)
		}
	}
	return uids
}

func (d *LobbyDirector) handleEnterChannel(clientID uint64, message *proto.LobbyEnterChannel) {
	d.server.QueueCommand(clientID, proto.CmdLobbyEnterChannelOK, proto.LobbyEnterChannelOK{
		Unk0: message.Channel,
	})
}

func (d *LobbyDirector) handleMakeRoom(clientID uint64, message *proto.LobbyMakeRoom) {
	room := d.rooms.CreateRoom()
	room.Name = message.Name
	room.Description = message.Description
	room.MissionID = message.MissionID
	room.PlayerCount = message.Unk0
	room.GameMode = proto.GameMode(message.Unk1)
	room.TeamMode = proto.TeamMode(message.Unk2)
	room.Unk3 = message.Unk3
	room.Bitset = message.Bitset
	room.Unk4 = message.Unk4
	room.Otp = d.otp.GrantCode(room.Uid)

	d.server.QueueCommand(clientID, proto.CmdLobbyMakeRoomOK, proto.LobbyMakeRoomOK{
		RoomUID: room.Uid,
		OTP:     room.Otp,
		IP:      d.settings.Advertisement.Race.AdvertisedAddress(),
		Port:    d.settings.Advertisement.Race.Port,
	})
}

func (d *LobbyDirector) handleRoomList(clientID uint64, message *proto.LobbyRoomList) {
	response := proto.LobbyRoomListOK{
		Unk0: message.Unk0,
		Unk1: message.Unk1,
		Unk2: message.Unk2,
	}
	for _, room := range d.rooms.Rooms() {
		response.Rooms = append(response.Rooms, proto.LobbyRoomListRoom{
			ID:          room.Uid,
			Name:        room.Name,
			PlayerCount: room.PlayerCount,
			MaxPlayers:  8,
			Map:         room.MapBlockID,
		})
	}
	d.server.QueueCommand(clientID, proto.CmdLobbyRoomListOK, response)
}

func (d *LobbyDirector) handleHeartbeat(uint64, *proto.LobbyHeartbeat) {}

func (d *LobbyDirector) handleShowInventory(clientID uint64, _ *proto.LobbyShowInventory) {
	characterUid := d.characterUid(clientID)
	if characterUid == data.InvalidUid {
		d.server.QueueCommand(clientID, proto.CmdLobbyShowInventoryCancel, proto.LobbyShowInventoryCancel{})
		return
	}

	characterRecord, ok := d.dataDirector.GetCharacter(characterUid)
	if !ok {
		d.server.QueueCommand(clientID, proto.CmdLobbyShowInventoryCancel, proto.LobbyShowInventoryCancel{})
		return
	}

	var (
		inventory []data.Uid
		horseUids []data.Uid
	)
	characterRecord.Immutable(func(character *data.Character) {
		inventory = character.Inventory.Get()
		horseUids = character.Horses.Get()
	})

	itemRecords, itemsOK := d.dataDirector.GetItems(inventory)
	horseRecords, horsesOK := d.dataDirector.GetHorses(horseUids)
	if !itemsOK || !horsesOK {
		d.server.QueueCommand(clientID, proto.CmdLobbyShowInventoryCancel, proto.LobbyShowInventoryCancel{})
		return
	}

	response := proto.LobbyShowInventoryOK{
		Items: protocolItems(itemRecords),
	}
	for _, record := range horseRecords {
		record.Immutable(func(horse *data.Horse) {
			response.Horses = append(response.Horses, protocolHorse(horse))
		})
	}
	d.server.QueueCommand(clientID, proto.CmdLobbyShowInventoryOK, response)
}

func (d *LobbyDirector) handleAchievementCompleteList(clientID uint64, _ *proto.LobbyAchievementCompleteList) {
	d.server.QueueCommand(clientID, proto.CmdLobbyAchievementCompleteListOK, proto.LobbyAchievementCompleteListOK{
		Unk0: d.characterUid(clientID),
	})
}

func (d *LobbyDirector) handleRequestLeagueInfo(clientID uint64, _ *proto.LobbyRequestLeagueInfo) {
	d.server.QueueCommand(clientID, proto.CmdLobbyRequestLeagueInfoOK, proto.LobbyRequestLeagueInfoOK{})
}

func (d *LobbyDirector) handleRequestQuestList(clientID uint64, _ *proto.LobbyRequestQuestList) {
	d.server.QueueCommand(clientID, proto.CmdLobbyRequestQuestListOK, proto.LobbyRequestQuestListOK{
		Unk0: d.characterUid(clientID),
	})
}

func (d *LobbyDirector) handleRequestDailyQuestList(clientID uint64, _ *proto.LobbyRequestDailyQuestList) {
	d.server.QueueCommand(clientID, proto.CmdLobbyRequestDailyQuestListOK, proto.LobbyRequestDailyQuestListOK{
		Val0: d.characterUid(clientID),
	})
}

func (d *LobbyDirector) handleRequestSpecialEventList(clientID uint64, message *proto.LobbyRequestSpecialEventList) {
	d.server.QueueCommand(clientID, proto.CmdLobbyRequestSpecialEventListOK, proto.LobbyRequestSpecialEventListOK{
		Unk0: message.Unk0,
	})
}

func (d *LobbyDirector) handleEnterRanch(clientID uint64, message *proto.LobbyEnterRanch) {
	characterUid := d.characterUid(clientID)
	if characterUid == data.InvalidUid {
		d.server.QueueCommand(clientID, proto.CmdLobbyEnterRanchCancel, proto.LobbyEnterRanchCancel{})
		return
	}

	ranchUid := message.RanchUID
	if ranchUid == data.InvalidUid {
		characterRecord, ok := d.dataDirector.GetCharacter(characterUid)
		if !ok {
			d.server.QueueCommand(clientID, proto.CmdLobbyEnterRanchCancel, proto.LobbyEnterRanchCancel{})
			return
		}
		characterRecord.Immutable(func(character *data.Character) {
			ranchUid = character.RanchUid.Get()
		})
	}

	d.server.QueueCommand(clientID, proto.CmdLobbyEnterRanchOK, proto.LobbyEnterRanchOK{
		RanchUID: ranchUid,
		Code:     d.otp.GrantCode(ranchUid),
		IP:       d.settings.Advertisement.Ranch.AdvertisedAddress(),
		Port:     d.settings.Advertisement.Ranch.Port,
	})
}

func (d *LobbyDirector) handleEnterRandomRanch(clientID uint64, _ *proto.LobbyEnterRandomRanch) {
	d.handleEnterRanch(clientID, &proto.LobbyEnterRanch{})
}

func (d *LobbyDirector) handleGetMessengerInfo(clientID uint64, _ *proto.LobbyGetMessengerInfo) {
	characterUid := d.characterUid(clientID)
	if characterUid == data.InvalidUid {
		d.server.QueueCommand(clientID, proto.CmdLobbyGetMessengerInfoCancel, proto.LobbyGetMessengerInfoCancel{})
		return
	}

	d.server.QueueCommand(clientID, proto.CmdLobbyGetMessengerInfoOK, proto.LobbyGetMessengerInfoOK{
		Code: d.otp.GrantCode(characterUid),
		IP:   d.settings.Advertisement.Messenger.AdvertisedAddress(),
		Port: d.settings.Advertisement.Messenger.Port,
	})
}

func (d *LobbyDirector) handleGoodsShopList(clientID uint64, message *proto.LobbyGoodsShopList) {
	d.server.QueueCommand(clientID, proto.CmdLobbyGoodsShopListOK, proto.LobbyGoodsShopListOK{
		Data: message.Data,
	})
}

func (d *LobbyDirector) handleInquiryTreecash(clientID uint64, _ *proto.LobbyInquiryTreecash) {
	characterUid := d.characterUid(clientID)
	if characterUid == data.InvalidUid {
		d.server.QueueCommand(clientID, proto.CmdLobbyInquiryTreecashCancel, proto.LobbyInquiryTreecashCancel{})
		return
	}

	characterRecord, ok := d.dataDirector.GetCharacter(characterUid)
	if !ok {
		d.server.QueueCommand(clientID, proto.CmdLobbyInquiryTreecashCancel, proto.LobbyInquiryTreecashCancel{})
		return
	}

	var cash uint32
	characterRecord.Immutable(func(character *data.Character) {
		cash = character.Cash.Get()
	})
	d.server.QueueCommand(clientID, proto.CmdLobbyInquiryTreecashOK, proto.LobbyInquiryTreecashOK{
		Cash: cash,
	})
}

func (d *LobbyDirector) handleClientNotify(_ uint64, message *proto.LobbyClientNotify) {
	if message.Val0 != 1 {
		d.log.Error("client scene error",
			zap.Uint16("state", message.Val0),
			zap.Uint32("value", message.Val1))
	}
}

// scramblingConstant seeds the per-connection code advertised in replies.
func scramblingConstant() uint32 {
	return rand.Uint32()
}
