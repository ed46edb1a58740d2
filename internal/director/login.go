package director

import (
	"errors"
	"time"

	"github.com/aliciago/server/internal/data"
	"github.com/aliciago/server/internal/proto"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	errUidCollision    = errors.New("allocated uid already cached")
	errUserUnavailable = errors.New("user record not available")
)

// handleLogin starts the login pipeline: the user record is enqueued for
// retrieval and the tick advances the state machine once it is loaded.
func (d *LobbyDirector) handleLogin(clientID uint64, message *proto.LobbyLogin) {
	if message.Constant0 != loginConstant0 || message.Constant1 != loginConstant1 {
		d.log.Warn("login version mismatch",
			zap.Uint16("constant0", message.Constant0),
			zap.Uint16("constant1", message.Constant1))
		d.reject(clientID, proto.LoginCancelInvalidVersion)
		return
	}
	if message.LoginID == "" {
		d.reject(clientID, proto.LoginCancelInvalidLoginID)
		return
	}

	context := d.context(clientID)
	if context == nil || context.state != lobbyStateUnauthenticated {
		d.reject(clientID, proto.LoginCancelDuplicated)
		return
	}

	d.mu.Lock()
	alreadyOnline := false
	for _, other := range d.clients {
		if other != context && other.userName == message.LoginID &&
			other.state != lobbyStateRejected {
			alreadyOnline = true
			break
		}
	}
	if alreadyOnline {
		d.mu.Unlock()
		d.reject(clientID, proto.LoginCancelDuplicated)
		return
	}
	context.state = lobbyStateAwaitingUser
	context.userName = message.LoginID
	context.authKey = message.AuthKey
	d.mu.Unlock()

	// Warm the cache; the tick completes the pipeline.
	d.dataDirector.GetUser(message.LoginID)
}

// stepLogin advances one client's login pipeline. Unavailable records
// leave the state untouched so the next tick retries.
func (d *LobbyDirector) stepLogin(clientID uint64, context *lobbyClientContext) {
	switch context.state {
	case lobbyStateAwaitingUser:
		d.stepAwaitingUser(clientID, context)
	case lobbyStateAwaitingCharacter:
		d.stepAwaitingCharacter(clientID, context)
	}
}

func (d *LobbyDirector) stepAwaitingUser(clientID uint64, context *lobbyClientContext) {
	userRecord, ok := d.dataDirector.GetUser(context.userName)
	if !ok {
		return
	}

	var (
		tokenDigest  string
		characterUid data.Uid
	)
	userRecord.Immutable(func(user *data.User) {
		tokenDigest = user.Token.Get()
		characterUid = user.CharacterUid.Get()
	})

	if tokenDigest == "" ||
		bcrypt.CompareHashAndPassword([]byte(tokenDigest), []byte(context.authKey)) != nil {
		d.log.Info("login rejected, bad token", zap.String("user", context.userName))
		d.reject(clientID, proto.LoginCancelInvalidUser)
		return
	}

	verdict, err := d.infractions.CheckOutstandingPunishments(context.userName)
	if err != nil {
		// Infractions not cached yet; retry next tick.
		return
	}
	if verdict.PreventServerJoining {
		d.log.Info("login rejected, outstanding ban", zap.String("user", context.userName))
		d.reject(clientID, proto.LoginCancelInvalidUser)
		return
	}

	d.mu.Lock()
	context.muted = verdict.PreventChatting
	if characterUid == data.InvalidUid {
		context.state = lobbyStateNoCharacter
		d.mu.Unlock()
		d.server.QueueCommand(clientID, proto.CmdLobbyCreateNicknameNotify, proto.LobbyCreateNicknameNotify{})
		return
	}
	context.characterUid = characterUid
	context.state = lobbyStateAwaitingCharacter
	d.mu.Unlock()
}

func (d *LobbyDirector) stepAwaitingCharacter(clientID uint64, context *lobbyClientContext) {
	characterRecord, ok := d.dataDirector.GetCharacter(context.characterUid)
	if !ok {
		return
	}

	var (
		nickname       string
		gender         uint8
		status         string
		level          uint16
		carrots        int32
		ageGroup       uint8
		mountUid       data.Uid
		characterEquip []data.Uid
		mountEquip     []data.Uid
		wireCharacter  proto.Character
		characterMuted bool
	)
	characterRecord.Immutable(func(character *data.Character) {
		nickname = character.Name.Get()
		gender = character.Gender.Get()
		status = character.Status.Get()
		level = character.Level.Get()
		carrots = character.Carrots.Get()
		ageGroup = character.AgeGroup.Get()
		mountUid = character.MountUid.Get()
		characterEquip = character.CharacterEquipment.Get()
		mountEquip = character.MountEquipment.Get()
		wireCharacter = protocolCharacter(character)
		characterMuted = character.Muted.Get()
	})

	characterEquipRecords, characterEquipOK := d.dataDirector.GetItems(characterEquip)
	mountEquipRecords, mountEquipOK := d.dataDirector.GetItems(mountEquip)
	if !characterEquipOK || !mountEquipOK {
		return
	}

	var wireHorse proto.Horse
	if mountUid != data.InvalidUid {
		horseRecord, ok := d.dataDirector.GetHorse(mountUid)
		if !ok {
			return
		}
		horseRecord.Immutable(func(horse *data.Horse) {
			wireHorse = protocolHorse(horse)
		})
	}

	constant := scramblingConstant()

	response := proto.LobbyLoginOK{
		LobbyTime:     proto.TimeToFileTime(time.Now()),
		SelfUID:       context.characterUid,
		Nickname:      nickname,
		Motd:          d.motd,
		ProfileGender: proto.Gender(gender),
		Status:        status,

		CharacterEquipment: protocolItems(characterEquipRecords),
		MountEquipment:     protocolItems(mountEquipRecords),

		Level:   level,
		Carrots: carrots,

		OptionType:   proto.OptionKeyboard | proto.OptionMacros | proto.OptionValue,
		ValueOptions: 0x64,
		MacroOptions: proto.MacroOptions{Macros: [8]string{
			"Thank you!", "Well done!", "Nice!", "Sorry!",
			"Good race!", "Let's go!", "One more!", "Bye!",
		}},

		AgeGroup: proto.AgeGroup(ageGroup),

		Address:            d.settings.Advertisement.Race.AdvertisedAddress(),
		Port:               d.settings.Advertisement.Race.Port,
		ScramblingConstant: constant,

		Character: wireCharacter,
		Horse:     wireHorse,
	}

	// An outstanding mute infraction silences the character for the
	// session; moderation commands can lift it.
	if context.muted && !characterMuted {
		characterRecord.Mutable(func(character *data.Character) {
			character.Muted.Set(true)
		})
	}

	d.mu.Lock()
	context.state = lobbyStateActive
	context.muted = context.muted || characterMuted
	d.mu.Unlock()

	d.server.QueueCommand(clientID, proto.CmdLobbyLoginOK, response)
	d.server.SetCode(clientID, constant)

	d.log.Info("user logged in",
		zap.String("user", context.userName),
		zap.Uint32("character", context.characterUid))
}

// handleCreateNickname creates the character, its first horse and its
// ranch, then resumes the login pipeline.
func (d *LobbyDirector) handleCreateNickname(clientID uint64, message *proto.LobbyCreateNickname) {
	context := d.context(clientID)
	if context == nil || context.state != lobbyStateNoCharacter {
		d.server.QueueCommand(clientID, proto.CmdLobbyCreateNicknameCancel, proto.LobbyCreateNicknameCancel{Error: 1})
		return
	}
	if message.Nickname == "" {
		d.server.QueueCommand(clientID, proto.CmdLobbyCreateNicknameCancel, proto.LobbyCreateNicknameCancel{Error: 1})
		return
	}

	characterUid, err := d.createCharacter(context.userName, message)
	if err != nil {
		d.log.Error("character creation failed",
			zap.String("user", context.userName),
			zap.Error(err))
		d.server.QueueCommand(clientID, proto.CmdLobbyCreateNicknameCancel, proto.LobbyCreateNicknameCancel{Error: 1})
		return
	}

	d.mu.Lock()
	context.characterUid = characterUid
	context.state = lobbyStateAwaitingCharacter
	d.mu.Unlock()
}

// Default template of the starter horse.
const starterHorseTid = 0x4E21

func (d *LobbyDirector) createCharacter(userName string, message *proto.LobbyCreateNickname) (data.Uid, error) {
	characterUid, err := d.dataDirector.NextUid()
	if err != nil {
		return data.InvalidUid, err
	}
	horseUid, err := d.dataDirector.NextUid()
	if err != nil {
		return data.InvalidUid, err
	}
	ranchUid, err := d.dataDirector.NextUid()
	if err != nil {
		return data.InvalidUid, err
	}

	horseRecord, ok := d.dataDirector.CreateHorse(horseUid)
	if !ok {
		return data.InvalidUid, errUidCollision
	}
	horseRecord.Mutable(func(horse *data.Horse) {
		horse.Uid.Set(horseUid)
		horse.Tid.Set(starterHorseTid)
		horse.Name.Set(message.Nickname + "'s horse")
		horse.Parts.SkinTid.Set(1)
		horse.Parts.ManeTid.Set(1)
		horse.Parts.TailTid.Set(1)
		horse.Parts.FaceTid.Set(1)
		horse.Appearance.Scale.Set(4)
		horse.Appearance.LegLength.Set(4)
		horse.Appearance.LegVolume.Set(5)
		horse.Appearance.BodyLength.Set(3)
		horse.Appearance.BodyVolume.Set(4)
		horse.Stats.Agility.Set(9)
		horse.Stats.Control.Set(9)
		horse.Stats.Speed.Set(9)
		horse.Stats.Strength.Set(9)
		horse.Stats.Spirit.Set(9)
		horse.Condition.Stamina.Set(2000)
		horse.Condition.Plenitude.Set(910)
		horse.Grade.Set(1)
		horse.DateOfBirth.Set(time.Now())
	})
	d.dataDirector.SaveHorse(horseUid)

	ranchRecord, ok := d.dataDirector.CreateRanch(ranchUid)
	if !ok {
		return data.InvalidUid, errUidCollision
	}
	ranchRecord.Mutable(func(ranch *data.Ranch) {
		ranch.Uid.Set(ranchUid)
		ranch.Owner.Set(characterUid)
		ranch.Name.Set(message.Nickname + "'s ranch")
	})
	d.dataDirector.SaveRanch(ranchUid)

	characterRecord, ok := d.dataDirector.CreateCharacter(characterUid)
	if !ok {
		return data.InvalidUid, errUidCollision
	}
	characterRecord.Mutable(func(character *data.Character) {
		character.Uid.Set(characterUid)
		character.Name.Set(message.Nickname)
		character.Level.Set(1)
		character.Carrots.Set(5000)
		character.Parts.ModelId.Set(uint32(message.Character.Parts.CharID))
		character.Parts.MouthId.Set(uint32(message.Character.Parts.MouthSerialID))
		character.Parts.FaceId.Set(uint32(message.Character.Parts.FaceSerialID))
		character.Appearance.VoiceId.Set(uint32(message.Character.Appearance.VoiceID))
		character.Appearance.HeadSize.Set(uint32(message.Character.Appearance.HeadSize))
		character.Appearance.Height.Set(uint32(message.Character.Appearance.Height))
		character.Appearance.ThighVolume.Set(uint32(message.Character.Appearance.ThighVolume))
		character.Appearance.LegVolume.Set(uint32(message.Character.Appearance.LegVolume))
		character.Horses.Set([]data.Uid{horseUid})
		character.MountUid.Set(horseUid)
		character.RanchUid.Set(ranchUid)
	})
	d.dataDirector.SaveCharacter(characterUid)

	userRecord, ok := d.dataDirector.GetUser(userName)
	if !ok {
		return data.InvalidUid, errUserUnavailable
	}
	userRecord.Mutable(func(user *data.User) {
		user.CharacterUid.Set(characterUid)
	})
	d.dataDirector.SaveUser(userName)

	return characterUid, nil
}

// reject cancels the login and disconnects the client.
func (d *LobbyDirector) reject(clientID uint64, reason proto.LoginCancelReason) {
	d.mu.Lock()
	if context := d.clients[clientID]; context != nil {
		context.state = lobbyStateRejected
	}
	d.mu.Unlock()

	d.server.QueueCommand(clientID, proto.CmdLobbyLoginCancel, proto.LobbyLoginCancel{Reason: reason})
	d.server.Disconnect(clientID)
}
