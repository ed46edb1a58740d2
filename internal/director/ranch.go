package director

import (
	"sync"

	"github.com/aliciago/server/internal/config"
	"github.com/aliciago/server/internal/data"
	"github.com/aliciago/server/internal/net/command"
	"github.com/aliciago/server/internal/proto"
	"github.com/aliciago/server/internal/system"
	"github.com/aliciago/server/internal/world"
	"go.uber.org/zap"
)

// ranchInstance is one live ranch: its tracker and the clients present.
type ranchInstance struct {
	tracker *world.Tracker
	// characterUid → clientID of every occupant.
	clients map[data.Uid]uint64
}

func newRanchInstance() *ranchInstance {
	return &ranchInstance{
		tracker: world.NewTracker(),
		clients: make(map[data.Uid]uint64),
	}
}

type ranchClientContext struct {
	characterUid data.Uid
	ranchUid     data.Uid
}

// RanchDirector hosts the persistent per-character world instances with
// co-present players and horses.
type RanchDirector struct {
	server       *command.Server
	dataDirector *DataDirector
	otp          *system.OtpSystem
	chat         *system.ChatSystem
	settings     config.ServiceConfig
	log          *zap.Logger

	mu      sync.Mutex
	clients map[uint64]*ranchClientContext
	ranches map[data.Uid]*ranchInstance
}

func NewRanchDirector(
	dataDirector *DataDirector,
	otp *system.OtpSystem,
	chat *system.ChatSystem,
	settings config.ServiceConfig,
	scrambleOutbound bool,
	log *zap.Logger,
) *RanchDirector {
	d := &RanchDirector{
		dataDirector: dataDirector,
		otp:          otp,
		chat:         chat,
		settings:     settings,
		log:          log,
		clients:      make(map[uint64]*ranchClientContext),
		ranches:      make(map[data.Uid]*ranchInstance),
	}
	d.server = command.NewServer(command.Events{
		OnClientConnected:    d.handleClientConnected,
		OnClientDisconnected: d.handleClientDisconnected,
	}, scrambleOutbound, log)

	command.RegisterHandler[proto.RanchEnterRanch](d.server, proto.CmdRanchEnterRanch, d.handleEnterRanch)
	command.RegisterHandler[proto.RanchLeaveRanch](d.server, proto.CmdRanchLeaveRanch, d.handleLeaveRanch)
	command.RegisterHandler[proto.RanchSnapshot](d.server, proto.CmdRanchSnapshot, d.handleSnapshot)
	command.RegisterHandler[proto.RanchChat](d.server, proto.CmdRanchChat, d.handleChat)
	command.RegisterHandler[proto.RanchCmdAction](d.server, proto.CmdRanchCmdAction, d.handleCmdAction)
	command.RegisterHandler[proto.RanchStuff](d.server, proto.CmdRanchStuff, d.handleRanchStuff)
	command.RegisterHandler[proto.RanchUpdateBusyState](d.server, proto.CmdRanchUpdateBusyState, d.handleUpdateBusyState)
	command.RegisterHandler[proto.RanchUpdateMountNickname](d.server, proto.CmdRanchUpdateMountNickname, d.handleUpdateMountNickname)
	command.RegisterHandler[proto.RanchRequestStorage](d.server, proto.CmdRanchRequestStorage, d.handleRequestStorage)
	command.RegisterHandler[proto.RanchGetItemFromStorage](d.server, proto.CmdRanchGetItemFromStorage, d.handleGetItemFromStorage)
	command.RegisterHandler[proto.RanchWearEquipment](d.server, proto.CmdRanchWearEquipment, d.handleWearEquipment)
	command.RegisterHandler[proto.RanchRemoveEquipment](d.server, proto.CmdRanchRemoveEquipment, d.handleRemoveEquipment)
	command.RegisterHandler[proto.RanchHeartbeat](d.server, proto.CmdRanchHeartbeat, d.handleHeartbeat)

	return d
}

// Initialize hosts the ranch listener.
func (d *RanchDirector) Initialize() error {
	return d.server.Host(d.settings.Listen.Addr())
}

// Terminate closes the ranch listener and its clients.
func (d *RanchDirector) Terminate() {
	d.server.End()
}

// Tick does nothing; the ranch director is reactive.
func (d *RanchDirector) Tick() {}

func (d *RanchDirector) handleClientConnected(clientID uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clients[clientID] = &ranchClientContext{}
}

func (d *RanchDirector) handleClientDisconnected(clientID uint64) {
	d.mu.Lock()
	context := d.clients[clientID]
	delete(d.clients, clientID)
	d.mu.Unlock()

	if context == nil || context.ranchUid == data.InvalidUid {
		return
	}
	d.removeOccupant(context.characterUid, context.ranchUid)
}

func (d *RanchDirector) context(clientID uint64) *ranchClientContext {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clients[clientID]
}

// instance returns the live ranch for the UID, creating it on first use.
func (d *RanchDirector) instance(ranchUid data.Uid) *ranchInstance {
	d.mu.Lock()
	defer d.mu.Unlock()

	instance, ok := d.ranches[ranchUid]
	if !ok {
		instance = newRanchInstance()
		d.ranches[ranchUid] = instance
	}
	return instance
}

// occupantClients lists the clients in the ranch, optionally excluding
// one character.
func (d *RanchDirector) occupantClients(ranchUid data.Uid, exclude data.Uid) []uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	instance, ok := d.ranches[ranchUid]
	if !ok {
		return nil
	}
	clients := make([]uint64, 0, len(instance.clients))
	for characterUid, clientID := range instance.clients {
		if characterUid == exclude {
			continue
		}
		clients = append(clients, clientID)
	}
	return clients
}

func (d *RanchDirector) handleEnterRanch(clientID uint64, message *proto.RanchEnterRanch) {
	if !d.otp.AuthorizeCode(message.RanchUID, message.OTP) {
		d.log.Info("ranch entry rejected, bad code",
			zap.Uint32("character", message.CharacterUID),
			zap.Uint32("ranch", message.RanchUID))
		d.server.QueueCommand(clientID, proto.CmdRanchEnterRanchCancel, proto.RanchEnterRanchCancel{})
		return
	}

	ranchRecord, ok := d.dataDirector.GetRanch(message.RanchUID)
	if !ok {
		d.server.QueueCommand(clientID, proto.CmdRanchEnterRanchCancel, proto.RanchEnterRanchCancel{})
		return
	}
	var (
		ranchName   string
		rancherUid  data.Uid
		housingUids []data.Uid
	)
	ranchRecord.Immutable(func(ranch *data.Ranch) {
		ranchName = ranch.Name.Get()
		rancherUid = ranch.Owner.Get()
		housingUids = ranch.Housing.Get()
	})

	characterRecord, ok := d.dataDirector.GetCharacter(message.CharacterUID)
	if !ok {
		d.server.QueueCommand(clientID, proto.CmdRanchEnterRanchCancel, proto.RanchEnterRanchCancel{})
		return
	}
	var mountUid data.Uid
	characterRecord.Immutable(func(character *data.Character) {
		mountUid = character.MountUid.Get()
	})

	instance := d.instance(message.RanchUID)

	// Tracker state is only touched under the director lock; snapshot
	// the occupant set for building the reply outside of it.
	d.mu.Lock()
	instance.tracker.AddCharacter(message.CharacterUID)
	if mountUid != data.InvalidUid {
		instance.tracker.AddHorse(mountUid)
	}
	instance.clients[message.CharacterUID] = clientID
	context := d.clients[clientID]
	if context != nil {
		context.characterUid = message.CharacterUID
		context.ranchUid = message.RanchUID
	}

	horseUids := append([]data.Uid(nil), instance.tracker.Horses()...)
	characterUids := append([]data.Uid(nil), instance.tracker.Characters()...)
	horseOids := make(map[data.Uid]world.Oid, len(horseUids))
	for _, uid := range horseUids {
		horseOids[uid] = instance.tracker.GetHorseOid(uid)
	}
	characterOids := make(map[data.Uid]world.Oid, len(characterUids))
	for _, uid := range characterUids {
		characterOids[uid] = instance.tracker.GetCharacterOid(uid)
	}
	d.mu.Unlock()

	response := proto.RanchEnterRanchOK{
		RancherUID:         rancherUid,
		RanchName:          ranchName,
		ScramblingConstant: scramblingConstant(),
		HorseSlots:         5,
	}

	// The rancher's name, when their character is loaded.
	if rancherUid != data.InvalidUid {
		if rancher, ok := d.dataDirector.GetCharacter(rancherUid); ok {
			rancher.Immutable(func(character *data.Character) {
				response.RancherName = character.Name.Get()
			})
		}
	}

	if housingRecords, ok := d.dataDirector.GetHousing(housingUids); ok {
		for _, record := range housingRecords {
			record.Immutable(func(housing *data.Housing) {
				response.Housing = append(response.Housing, proto.Housing{
					UID:        housing.Uid.Get(),
					TID:        uint16(housing.Tid.Get()),
					Durability: housing.Durability.Get(),
				})
			})
		}
	}

	// The occupant set in OID order.
	for _, horseUid := range horseUids {
		horseRecord, ok := d.dataDirector.GetHorse(horseUid)
		if !ok {
			continue
		}
		entry := proto.RanchHorse{OID: horseOids[horseUid]}
		horseRecord.Immutable(func(horse *data.Horse) {
			entry.Horse = protocolHorse(horse)
		})
		response.Horses = append(response.Horses, entry)
	}
	for _, characterUid := range characterUids {
		occupant, ok := d.buildRanchCharacter(characterUid, characterOids[characterUid])
		if !ok {
			continue
		}
		response.Characters = append(response.Characters, occupant)
	}

	d.server.QueueCommand(clientID, proto.CmdRanchEnterRanchOK, response)
	d.server.SetCode(clientID, response.ScramblingConstant)

	// Announce the new occupant to everyone already present.
	if entering, ok := d.buildRanchCharacter(message.CharacterUID, characterOids[message.CharacterUID]); ok {
		d.server.Broadcast(
			d.occupantClients(message.RanchUID, message.CharacterUID),
			proto.CmdRanchEnterRanchNotify,
			proto.RanchEnterRanchNotify{Character: entering})
	}
}

// buildRanchCharacter assembles the occupant aggregate for broadcast.
func (d *RanchDirector) buildRanchCharacter(characterUid data.Uid, oid world.Oid) (proto.RanchCharacter, bool) {
	characterRecord, ok := d.dataDirector.GetCharacter(characterUid)
	if !ok {
		return proto.RanchCharacter{}, false
	}

	occupant := proto.RanchCharacter{
		UID: characterUid,
		OID: oid,
	}
	var (
		mountUid  data.Uid
		equipment []data.Uid
	)
	characterRecord.Immutable(func(character *data.Character) {
		occupant.Name = character.Name.Get()
		occupant.Role = proto.Role(character.Role.Get())
		occupant.Gender = character.Gender.Get()
		occupant.Introduction = character.Introduction.Get()
		occupant.Character = protocolCharacter(character)
		mountUid = character.MountUid.Get()
		equipment = character.CharacterEquipment.Get()
	})

	if mountUid != data.InvalidUid {
		horseRecord, ok := d.dataDirector.GetHorse(mountUid)
		if !ok {
			return proto.RanchCharacter{}, false
		}
		horseRecord.Immutable(func(horse *data.Horse) {
			occupant.Mount = protocolHorse(horse)
		})
	}

	if equipmentRecords, ok := d.dataDirector.GetItems(equipment); ok {
		occupant.CharacterEquipment = protocolItems(equipmentRecords)
	}

	return occupant, true
}

func (d *RanchDirector) handleLeaveRanch(clientID uint64, _ *proto.RanchLeaveRanch) {
	context := d.context(clientID)
	if context == nil || context.ranchUid == data.InvalidUid {
		return
	}

	d.server.QueueCommand(clientID, proto.CmdRanchLeaveRanchOK, proto.RanchLeaveRanchOK{})
	d.removeOccupant(context.characterUid, context.ranchUid)

	d.mu.Lock()
	context.characterUid = data.InvalidUid
	context.ranchUid = data.InvalidUid
	d.mu.Unlock()
}

// removeOccupant drops the character from the instance and notifies the
// remaining occupants.
func (d *RanchDirector) removeOccupant(characterUid, ranchUid data.Uid) {
	d.mu.Lock()
	instance, ok := d.ranches[ranchUid]
	if !ok {
		d.mu.Unlock()
		return
	}
	instance.tracker.RemoveCharacter(characterUid)
	delete(instance.clients, characterUid)

	var mountUid data.Uid
	if characterRecord, ok := d.dataDirector.GetCharacter(characterUid); ok {
		characterRecord.Immutable(func(character *data.Character) {
			mountUid = character.MountUid.Get()
		})
	}
	if mountUid != data.InvalidUid {
		instance.tracker.RemoveHorse(mountUid)
	}

	empty := len(instance.clients) == 0
	if empty {
		delete(d.ranches, ranchUid)
	}
	d.mu.Unlock()

	if !empty {
		d.server.Broadcast(
			d.occupantClients(ranchUid, characterUid),
			proto.CmdRanchLeaveRanchNotify,
			proto.RanchLeaveRanchNotify{CharacterUID: characterUid})
	}
}

// handleSnapshot rewrites the snapshot with the sender's OID and fans it
// out to every other occupant of the ranch.
func (d *RanchDirector) handleSnapshot(clientID uint64, message *proto.RanchSnapshot) {
	context := d.context(clientID)
	if context == nil || context.ranchUid == data.InvalidUid {
		return
	}

	d.mu.Lock()
	instance, ok := d.ranches[context.ranchUid]
	var oid world.Oid
	if ok {
		oid = instance.tracker.GetCharacterOid(context.characterUid)
	}
	d.mu.Unlock()
	if !ok || oid == world.InvalidOid {
		return
	}

	notify := proto.RanchSnapshotNotify{
		OID:     oid,
		Type:    message.Type,
		Full:    message.Full,
		Partial: message.Partial,
	}
	notify.Full.OID = oid
	notify.Partial.OID = oid

	d.server.Broadcast(
		d.occupantClients(context.ranchUid, context.characterUid),
		proto.CmdRanchSnapshotNotify, notify)
}

// handleChat routes the message through the chat system: commands answer
// only the sender, everything else fans out to the ranch.
func (d *RanchDirector) handleChat(clientID uint64, message *proto.RanchChat) {
	context := d.context(clientID)
	if context == nil || context.ranchUid == data.InvalidUid {
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
			d.server.QueueCommand(clientID, proto.CmdRanchChatNotify, proto.RanchChatNotify{
				Message: line,
				IsBlue:  1,
			})
		}
		return
	}

	if muted {
		return
	}

	notify := proto.RanchChatNotify{
		Author:  author,
		Message: verdict.Message,
	}
	d.server.Broadcast(d.occupantClients(context.ranchUid, data.InvalidUid),
		proto.CmdRanchChatNotify, notify)
}

func (d *RanchDirector) handleCmdAction(clientID uint64, message *proto.RanchCmdAction) {
	d.server.QueueCommand(clientID, proto.CmdRanchCmdActionNotify, proto.RanchCmdActionNotify{
		Unk0: message.Unk0,
		Unk1: 3,
		Unk2: 1,
	})
}

// handleRanchStuff credits a currency-earning activity and acknowledges
// with the applied delta and the new balance.
func (d *RanchDirector) handleRanchStuff(clientID uint64, message *proto.RanchStuff) {
	context := d.context(clientID)
	if context == nil || context.characterUid == data.InvalidUid {
		return
	}

	characterRecord, ok := d.dataDirector.GetCharacter(context.characterUid)
	if !ok {
		return
	}

	var total int32
	characterRecord.Mutable(func(character *data.Character) {
		total = character.Carrots.Get() + message.Value
		character.Carrots.Set(total)
	})
	d.dataDirector.SaveCharacter(context.characterUid)

	d.server.QueueCommand(clientID, proto.CmdRanchStuffOK, proto.RanchStuffOK{
		EventID:        message.EventID,
		MoneyIncrement: message.Value,
		TotalMoney:     total,
	})
}

func (d *RanchDirector) handleUpdateBusyState(clientID uint64, message *proto.RanchUpdateBusyState) {
	context := d.context(clientID)
	if context == nil || context.ranchUid == data.InvalidUid {
		return
	}

	d.server.Broadcast(d.occupantClients(context.ranchUid, data.InvalidUid),
		proto.CmdRanchUpdateBusyStateNotify,
		proto.RanchUpdateBusyStateNotify{
			CharacterUID: context.characterUid,
			BusyState:    message.BusyState,
		})
}

func (d *RanchDirector) handleUpdateMountNickname(clientID uint64, message *proto.RanchUpdateMountNickname) {
	context := d.context(clientID)
	if context == nil || context.characterUid == data.InvalidUid {
		d.server.QueueCommand(clientID, proto.CmdRanchUpdateMountNicknameCancel,
			proto.RanchUpdateMountNicknameCancel{})
		return
	}

	horseRecord, ok := d.dataDirector.GetHorse(message.HorseUID)
	if !ok {
		d.server.QueueCommand(clientID, proto.CmdRanchUpdateMountNicknameCancel,
			proto.RanchUpdateMountNicknameCancel{})
		return
	}

	horseRecord.Mutable(func(horse *data.Horse) {
		horse.Name.Set(message.Name)
	})
	d.dataDirector.SaveHorse(message.HorseUID)

	d.server.QueueCommand(clientID, proto.CmdRanchUpdateMountNicknameOK, proto.RanchUpdateMountNicknameOK{
		HorseUID: message.HorseUID,
		Nickname: message.Name,
		Unk1:     message.Unk1,
	})
}

// handleRequestStorage returns one page of the gift inbox (category 0)
// or the shop delivery storage (category 1).
func (d *RanchDirector) handleRequestStorage(clientID uint64, message *proto.RanchRequestStorage) {
	context := d.context(clientID)
	if context == nil || context.characterUid == data.InvalidUid {
		d.server.QueueCommand(clientID, proto.CmdRanchRequestStorageCancel, proto.RanchRequestStorageCancel{})
		return
	}

	characterRecord, ok := d.dataDirector.GetCharacter(context.characterUid)
	if !ok {
		d.server.QueueCommand(clientID, proto.CmdRanchRequestStorageCancel, proto.RanchRequestStorageCancel{})
		return
	}

	var storageUids []data.Uid
	characterRecord.Immutable(func(character *data.Character) {
		if message.Category == 0 {
			storageUids = character.GiftStorage.Get()
		} else {
			storageUids = character.PurchaseStorage.Get()
		}
	})

	storedRecords, ok := d.dataDirector.GetStorageItems(storageUids)
	if !ok {
		d.server.QueueCommand(clientID, proto.CmdRanchRequestStorageCancel, proto.RanchRequestStorageCancel{})
		return
	}

	response := proto.RanchRequestStorageOK{
		Category: message.Category,
		Page:     message.Page,
	}
	for _, record := range storedRecords {
		record.Immutable(func(storageItem *data.StorageItem) {
			status := proto.StoredItemUnread
			if storageItem.Expired.Get() {
				status = proto.StoredItemExpired
			} else if storageItem.Checked.Get() {
				status = proto.StoredItemRead
			}
			response.Items = append(response.Items, proto.StoredItem{
				UID:      storageItem.Uid.Get(),
				Status:   status,
				Sender:   storageItem.Sender.Get(),
				Message:  storageItem.Message.Get(),
				DateTime: proto.TimeToPacked(storageItem.CreatedAt.Get()),
			})
		})
	}
	d.server.QueueCommand(clientID, proto.CmdRanchRequestStorageOK, response)
}

// handleGetItemFromStorage claims a storage bundle: the wrapped items
// move into the character inventory and the bundle is marked checked.
func (d *RanchDirector) handleGetItemFromStorage(clientID uint64, message *proto.RanchGetItemFromStorage) {
	context := d.context(clientID)
	if context == nil || context.characterUid == data.InvalidUid {
		d.server.QueueCommand(clientID, proto.CmdRanchGetItemFromStorageCancel,
			proto.RanchGetItemFromStorageCancel{StoredItemUID: message.StoredItemUID})
		return
	}

	storedRecord, ok := d.dataDirector.GetStorageItem(message.StoredItemUID)
	if !ok {
		d.server.QueueCommand(clientID, proto.CmdRanchGetItemFromStorageCancel,
			proto.RanchGetItemFromStorageCancel{StoredItemUID: message.StoredItemUID})
		return
	}

	var (
		itemUids []data.Uid
		claimed  bool
	)
	storedRecord.Mutable(func(storageItem *data.StorageItem) {
		if storageItem.Checked.Get() || storageItem.Expired.Get() {
			return
		}
		itemUids = storageItem.Items.Get()
		storageItem.Checked.Set(true)
		claimed = true
	})
	if !claimed {
		d.server.QueueCommand(clientID, proto.CmdRanchGetItemFromStorageCancel,
			proto.RanchGetItemFromStorageCancel{StoredItemUID: message.StoredItemUID})
		return
	}
	d.dataDirector.SaveStorageItem(message.StoredItemUID)

	itemRecords, ok := d.dataDirector.GetItems(itemUids)
	if !ok {
		d.server.QueueCommand(clientID, proto.CmdRanchGetItemFromStorageCancel,
			proto.RanchGetItemFromStorageCancel{StoredItemUID: message.StoredItemUID})
		return
	}

	characterRecord, ok := d.dataDirector.GetCharacter(context.characterUid)
	if !ok {
		return
	}
	characterRecord.Mutable(func(character *data.Character) {
		character.Inventory.Set(append(character.Inventory.Get(), itemUids...))
	})
	d.dataDirector.SaveCharacter(context.characterUid)

	d.server.QueueCommand(clientID, proto.CmdRanchGetItemFromStorageOK, proto.RanchGetItemFromStorageOK{
		StoredItemUID: message.StoredItemUID,
		Items:         protocolItems(itemRecords),
	})
}

func (d *RanchDirector) handleWearEquipment(clientID uint64, message *proto.RanchWearEquipment) {
	context := d.context(clientID)
	if context == nil || context.characterUid == data.InvalidUid {
		d.server.QueueCommand(clientID, proto.CmdRanchWearEquipmentCancel, proto.RanchWearEquipmentCancel{
			ItemUID: message.ItemUID,
			Member:  message.Member,
		})
		return
	}

	characterRecord, ok := d.dataDirector.GetCharacter(context.characterUid)
	if !ok {
		d.server.QueueCommand(clientID, proto.CmdRanchWearEquipmentCancel, proto.RanchWearEquipmentCancel{
			ItemUID: message.ItemUID,
			Member:  message.Member,
		})
		return
	}

	equipped := false
	characterRecord.Mutable(func(character *data.Character) {
		for _, owned := range character.Inventory.Get() {
			if owned != message.ItemUID {
				continue
			}
			equipment := character.CharacterEquipment.Get()
			for _, present := range equipment {
				if present == message.ItemUID {
					return
				}
			}
			character.CharacterEquipment.Set(append(equipment, message.ItemUID))
			equipped = true
			return
		}
	})

	if !equipped {
		d.server.QueueCommand(clientID, proto.CmdRanchWearEquipmentCancel, proto.RanchWearEquipmentCancel{
			ItemUID: message.ItemUID,
			Member:  message.Member,
		})
		return
	}
	d.dataDirector.SaveCharacter(context.characterUid)

	d.server.QueueCommand(clientID, proto.CmdRanchWearEquipmentOK, proto.RanchWearEquipmentOK{
		ItemUID: message.ItemUID,
		Member:  message.Member,
	})
	d.notifyEquipmentUpdate(context)
}

func (d *RanchDirector) handleRemoveEquipment(clientID uint64, message *proto.RanchRemoveEquipment) {
	context := d.context(clientID)
	if context == nil || context.characterUid == data.InvalidUid {
		return
	}

	characterRecord, ok := d.dataDirector.GetCharacter(context.characterUid)
	if !ok {
		return
	}

	characterRecord.Mutable(func(character *data.Character) {
		equipment := character.CharacterEquipment.Get()
		for i, present := range equipment {
			if present == message.ItemUID {
				character.CharacterEquipment.Set(append(equipment[:i], equipment[i+1:]...))
				return
			}
		}
	})
	d.dataDirector.SaveCharacter(context.characterUid)

	d.server.QueueCommand(clientID, proto.CmdRanchRemoveEquipmentOK, proto.RanchRemoveEquipmentOK{
		ItemUID: message.ItemUID,
	})
	d.notifyEquipmentUpdate(context)
}

// notifyEquipmentUpdate fans the sender's new look out to the ranch.
func (d *RanchDirector) notifyEquipmentUpdate(context *ranchClientContext) {
	if context.ranchUid == data.InvalidUid {
		return
	}

	characterRecord, ok := d.dataDirector.GetCharacter(context.characterUid)
	if !ok {
		return
	}

	notify := proto.RanchUpdateEquipmentNotify{CharacterUID: context.characterUid}
	var (
		mountUid  data.Uid
		equipment []data.Uid
	)
	characterRecord.Immutable(func(character *data.Character) {
		notify.Character = protocolCharacter(character)
		mountUid = character.MountUid.Get()
		equipment = character.CharacterEquipment.Get()
	})

	if mountUid != data.InvalidUid {
		if horseRecord, ok := d.dataDirector.GetHorse(mountUid); ok {
			horseRecord.Immutable(func(horse *data.Horse) {
				notify.Mount = protocolHorse(horse)
			})
		}
	}
	if equipmentRecords, ok := d.dataDirector.GetItems(equipment); ok {
		notify.Equipment = protocolItems(equipmentRecords)
	}

	d.server.Broadcast(d.occupantClients(context.ranchUid, context.characterUid),
		proto.CmdRanchUpdateEquipmentNotify, notify)
}

func (d *RanchDirector) handleHeartbeat(uint64, *proto.RanchHeartbeat) {}
