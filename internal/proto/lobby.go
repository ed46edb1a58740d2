package proto

import "github.com/aliciago/server/internal/net/packet"

// LobbyLogin is the serverbound login command. Constant0/Constant1 carry
// the client build identification and must match the expected version.
type LobbyLogin struct {
	Constant0 uint16
	Constant1 uint16
	LoginID   string
	MemberNo  uint32
	AuthKey   string
	Val0      uint8
}

func (v *LobbyLogin) Read(r *packet.Reader) {
	v.Constant0 = r.ReadUint16()
	v.Constant1 = r.ReadUint16()
	v.LoginID = r.ReadString()
	v.MemberNo = r.ReadUint32()
	v.AuthKey = r.ReadString()
	v.Val0 = r.ReadUint8()
}

func (v LobbyLogin) Write(w *packet.Writer) {
	w.WriteUint16(v.Constant0)
	w.WriteUint16(v.Constant1)
	w.WriteString(v.LoginID)
	w.WriteUint32(v.MemberNo)
	w.WriteString(v.AuthKey)
	w.WriteUint8(v.Val0)
}

// LoginOK placeholder struct groups. The fields carry no ascribed
// semantics and are preserved verbatim for compatibility.
type (
	LoginOKStruct0 struct {
		Values []struct {
			Val0 uint32
			Val1 uint32
		}
	}

	LoginOKStruct1 struct {
		Val0 uint16
		Val1 uint16
		Val2 uint16
	}

	LoginOKStruct2 struct {
		Val0 uint8
		Val1 uint32
		Val2 uint16
	}

	LoginOKStruct3 struct {
		Values []struct {
			Val0 uint8
			Val1 uint8
		}
	}

	LoginOKStruct4 struct {
		Values []struct {
			Val0 uint16
			Val1 uint8
			Val2 uint8
		}
	}

	LoginOKStruct5 struct {
		Val0 uint32
		Val1 uint8
		Val2 uint32
		Val3 string
		Val4 uint8
		Val5 uint32
		Val6 uint8
	}

	LoginOKStruct6 struct {
		MountUID uint32
		Val1     uint32
		Val2     uint32
	}

	LoginOKStruct7 struct {
		Val0 uint32
		Val1 uint32
		Val2 uint32
		Val3 uint32
	}
)

// LobbyLoginOKHint is an achievement hint entry in the login reply.
type LobbyLoginOKHint struct {
	Val0 uint16
	Val1 []struct {
		Val1 uint32
		Val2 uint32
	}
}

// LobbyLoginOK is the clientbound login acknowledgment; the richest
// message in the protocol.
type LobbyLoginOK struct {
	LobbyTime WinFileTime
	Val0      uint32

	SelfUID       uint32
	Nickname      string
	Motd          string
	ProfileGender Gender
	Status        string

	CharacterEquipment []Item
	MountEquipment     []Item

	Level   uint16
	Carrots int32
	Val1    uint32
	Val2    uint32
	Val3    uint8

	OptionType      OptionType
	KeyboardOptions KeyboardOptions
	MacroOptions    MacroOptions
	ValueOptions    uint32

	AgeGroup AgeGroup
	HideAge  uint8

	// Size-prefixed with u8, at most 17 entries.
	Hints []LobbyLoginOKHint
	Val6  string

	// Advertised race host, network byte order address.
	Address            uint32
	Port               uint16
	ScramblingConstant uint32

	Character Character
	Horse     Horse

	Val7  LoginOKStruct0
	Val8  uint32
	Val9  LoginOKStruct1
	Val10 uint32
	Val11 LoginOKStruct2
	Val12 LoginOKStruct3
	Val13 LoginOKStruct4
	Val14 uint32
	Val15 LoginOKStruct5
	Val16 uint8
	Val17 LoginOKStruct6
	Val18 uint32
	Val19 uint32
	Val20 uint32
	Val21 LoginOKStruct7
}

func (v LobbyLoginOK) Write(w *packet.Writer) {
	w.WriteUint32(v.LobbyTime.LowDateTime)
	w.WriteUint32(v.LobbyTime.HighDateTime)
	w.WriteUint32(v.Val0)

	w.WriteUint32(v.SelfUID)
	w.WriteString(v.Nickname)
	w.WriteString(v.Motd)
	w.WriteUint8(uint8(v.ProfileGender))
	w.WriteString(v.Status)

	w.WriteUint8(uint8(len(v.CharacterEquipment)))
	for _, item := range v.CharacterEquipment {
		item.Write(w)
	}
	w.WriteUint8(uint8(len(v.MountEquipment)))
	for _, item := range v.MountEquipment {
		item.Write(w)
	}

	w.WriteUint16(v.Level)
	w.WriteInt32(v.Carrots)
	w.WriteUint32(v.Val1)
	w.WriteUint32(v.Val2)
	w.WriteUint8(v.Val3)

	w.WriteUint32(uint32(v.OptionType))
	if v.OptionType&OptionKeyboard != 0 {
		v.KeyboardOptions.Write(w)
	}
	if v.OptionType&OptionMacros != 0 {
		v.MacroOptions.Write(w)
	}
	if v.OptionType&OptionValue != 0 {
		w.WriteUint32(v.ValueOptions)
	}

	w.WriteUint8(uint8(v.AgeGroup))
	w.WriteUint8(v.HideAge)

	w.WriteUint8(uint8(len(v.Hints)))
	for _, hint := range v.Hints {
		w.WriteUint16(hint.Val0)
		w.WriteUint8(uint8(len(hint.Val1)))
		for _, nested := range hint.Val1 {
			w.WriteUint32(nested.Val1)
			w.WriteUint32(nested.Val2)
		}
	}

	w.WriteString(v.Val6)

	w.WriteUint32(v.Address)
	w.WriteUint16(v.Port)
	w.WriteUint32(v.ScramblingConstant)

	v.Character.Write(w)
	v.Horse.Write(w)

	w.WriteUint8(uint8(len(v.Val7.Values)))
	for _, value := range v.Val7.Values {
		w.WriteUint32(value.Val0)
		w.WriteUint32(value.Val1)
	}

	w.WriteUint32(v.Val8)

	w.WriteUint16(v.Val9.Val0)
	w.WriteUint16(v.Val9.Val1)
	w.WriteUint16(v.Val9.Val2)

	w.WriteUint32(v.Val10)

	w.WriteUint8(v.Val11.Val0)
	w.WriteUint32(v.Val11.Val1)
	w.WriteUint16(v.Val11.Val2)

	w.WriteUint8(uint8(len(v.Val12.Values)))
	for _, value := range v.Val12.Values {
		w.WriteUint8(value.Val0)
		w.WriteUint8(value.Val1)
	}

	w.WriteUint8(uint8(len(v.Val13.Values)))
	for _, value := range v.Val13.Values {
		w.WriteUint16(value.Val0)
		w.WriteUint8(value.Val1)
		w.WriteUint8(value.Val2)
	}

	w.WriteUint32(v.Val14)

	w.WriteUint32(v.Val15.Val0)
	w.WriteUint8(v.Val15.Val1)
	w.WriteUint32(v.Val15.Val2)
	w.WriteString(v.Val15.Val3)
	w.WriteUint8(v.Val15.Val4)
	w.WriteUint32(v.Val15.Val5)
	w.WriteUint8(v.Val15.Val6)

	w.WriteUint8(v.Val16)

	w.WriteUint32(v.Val17.MountUID)
	w.WriteUint32(v.Val17.Val1)
	w.WriteUint32(v.Val17.Val2)

	w.WriteUint32(v.Val18)
	w.WriteUint32(v.Val19)
	w.WriteUint32(v.Val20)

	w.WriteUint32(v.Val21.Val0)
	w.WriteUint32(v.Val21.Val1)
	w.WriteUint32(v.Val21.Val2)
	w.WriteUint32(v.Val21.Val3)
}

// LoginCancelReason enumerates login rejection causes.
type LoginCancelReason uint8

const (
	LoginCancelInvalidUser        LoginCancelReason = 1
	LoginCancelDuplicated         LoginCancelReason = 2
	LoginCancelInvalidVersion     LoginCancelReason = 3
	LoginCancelInvalidEquipment   LoginCancelReason = 4
	LoginCancelInvalidLoginID     LoginCancelReason = 5
	LoginCancelDisconnectYourself LoginCancelReason = 6
)

// LobbyLoginCancel is the clientbound login rejection.
type LobbyLoginCancel struct {
	Reason LoginCancelReason
}

func (v LobbyLoginCancel) Write(w *packet.Writer) {
	w.WriteUint8(uint8(v.Reason))
}

func (v *LobbyLoginCancel) Read(r *packet.Reader) {
	v.Reason = LoginCancelReason(r.ReadUint8())
}

// LobbyCreateNicknameNotify asks the client to pick a nickname for a
// freshly created user.
type LobbyCreateNicknameNotify struct{}

func (LobbyCreateNicknameNotify) Write(*packet.Writer) {}

func (*LobbyCreateNicknameNotify) Read(*packet.Reader) {}

// LobbyCreateNickname is the serverbound character creation command.
type LobbyCreateNickname struct {
	Nickname  string
	Character Character
	Unk0      uint32
}

func (v *LobbyCreateNickname) Read(r *packet.Reader) {
	v.Nickname = r.ReadString()
	v.Character.Read(r)
	v.Unk0 = r.ReadUint32()
}

func (v LobbyCreateNickname) Write(w *packet.Writer) {
	w.WriteString(v.Nickname)
	v.Character.Write(w)
	w.WriteUint32(v.Unk0)
}

// LobbyCreateNicknameCancel rejects the chosen nickname.
type LobbyCreateNicknameCancel struct {
	Error uint8
}

func (v LobbyCreateNicknameCancel) Write(w *packet.Writer) {
	w.WriteUint8(v.Error)
}

func (v *LobbyCreateNicknameCancel) Read(r *packet.Reader) {
	v.Error = r.ReadUint8()
}

// LobbyEnterChannel is the serverbound channel selection.
type LobbyEnterChannel struct {
	Channel uint8
}

func (v *LobbyEnterChannel) Read(r *packet.Reader) {
	v.Channel = r.ReadUint8()
}

func (v LobbyEnterChannel) Write(w *packet.Writer) {
	w.WriteUint8(v.Channel)
}

// LobbyEnterChannelOK acknowledges the channel selection.
type LobbyEnterChannelOK struct {
	Unk0 uint8
	Unk1 uint16
}

func (v LobbyEnterChannelOK) Write(w *packet.Writer) {
	w.WriteUint8(v.Unk0)
	w.WriteUint16(v.Unk1)
}

func (v *LobbyEnterChannelOK) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint8()
	v.Unk1 = r.ReadUint16()
}

// LobbyHeartbeat keeps the connection alive; it has no payload.
type LobbyHeartbeat struct{}

func (LobbyHeartbeat) Write(*packet.Writer) {}

func (*LobbyHeartbeat) Read(*packet.Reader) {}

// LobbyMakeRoom is the serverbound room creation request.
type LobbyMakeRoom struct {
	Name        string
	Description string
	Unk0        uint8
	Unk1        uint8
	Unk2        uint8
	MissionID   uint16
	Unk3        uint8
	Bitset      uint16
	Unk4        uint8
}

func (v *LobbyMakeRoom) Read(r *packet.Reader) {
	v.Name = r.ReadString()
	v.Description = r.ReadString()
	v.Unk0 = r.ReadUint8()
	v.Unk1 = r.ReadUint8()
	v.Unk2 = r.ReadUint8()
	v.MissionID = r.ReadUint16()
	v.Unk3 = r.ReadUint8()
	v.Bitset = r.ReadUint16()
	v.Unk4 = r.ReadUint8()
}

func (v LobbyMakeRoom) Write(w *packet.Writer) {
	w.WriteString(v.Name)
	w.WriteString(v.Description)
	w.WriteUint8(v.Unk0)
	w.WriteUint8(v.Unk1)
	w.WriteUint8(v.Unk2)
	w.WriteUint16(v.MissionID)
	w.WriteUint8(v.Unk3)
	w.WriteUint16(v.Bitset)
	w.WriteUint8(v.Unk4)
}

// LobbyMakeRoomOK advertises the race host for the created room.
type LobbyMakeRoomOK struct {
	RoomUID uint32
	OTP     uint32
	IP      uint32
	Port    uint16
	Unk2    uint8
}

func (v LobbyMakeRoomOK) Write(w *packet.Writer) {
	w.WriteUint32(v.RoomUID)
	w.WriteUint32(v.OTP)
	w.WriteUint32(v.IP)
	w.WriteUint16(v.Port)
	w.WriteUint8(v.Unk2)
}

func (v *LobbyMakeRoomOK) Read(r *packet.Reader) {
	v.RoomUID = r.ReadUint32()
	v.OTP = r.ReadUint32()
	v.IP = r.ReadUint32()
	v.Port = r.ReadUint16()
	v.Unk2 = r.ReadUint8()
}

// LobbyMakeRoomCancel rejects the room creation.
type LobbyMakeRoomCancel struct {
	Unk0 uint8
}

func (v LobbyMakeRoomCancel) Write(w *packet.Writer) {
	w.WriteUint8(v.Unk0)
}

func (v *LobbyMakeRoomCancel) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint8()
}

// LobbyShowInventory requests the full inventory; it has no payload.
type LobbyShowInventory struct{}

func (LobbyShowInventory) Write(*packet.Writer) {}

func (*LobbyShowInventory) Read(*packet.Reader) {}

// LobbyShowInventoryOK lists the character's items and horses.
type LobbyShowInventoryOK struct {
	Items  []Item
	Horses []Horse
}

func (v LobbyShowInventoryOK) Write(w *packet.Writer) {
	w.WriteUint8(uint8(len(v.Items)))
	for _, item := range v.Items {
		item.Write(w)
	}
	w.WriteUint8(uint8(len(v.Horses)))
	for _, horse := range v.Horses {
		horse.Write(w)
	}
}

func (v *LobbyShowInventoryOK) Read(r *packet.Reader) {
	itemCount := r.ReadUint8()
	v.Items = make([]Item, itemCount)
	for i := range v.Items {
		v.Items[i].Read(r)
	}
	horseCount := r.ReadUint8()
	v.Horses = make([]Horse, horseCount)
	for i := range v.Horses {
		v.Horses[i].Read(r)
	}
}

// LobbyShowInventoryCancel rejects the inventory request.
type LobbyShowInventoryCancel struct{}

func (LobbyShowInventoryCancel) Write(*packet.Writer) {}

func (*LobbyShowInventoryCancel) Read(*packet.Reader) {}

// LobbyAchievementCompleteList requests the achievement list.
type LobbyAchievementCompleteList struct {
	Unk0 uint32
}

func (v *LobbyAchievementCompleteList) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint32()
}

func (v LobbyAchievementCompleteList) Write(w *packet.Writer) {
	w.WriteUint32(v.Unk0)
}

// LobbyAchievementCompleteListOK lists completed achievements.
type LobbyAchievementCompleteListOK struct {
	Unk0         uint32
	Achievements []Quest
}

func (v LobbyAchievementCompleteListOK) Write(w *packet.Writer) {
	w.WriteUint32(v.Unk0)
	w.WriteUint16(uint16(len(v.Achievements)))
	for _, quest := range v.Achievements {
		quest.Write(w)
	}
}

func (v *LobbyAchievementCompleteListOK) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint32()
	size := r.ReadUint16()
	v.Achievements = make([]Quest, size)
	for i := range v.Achievements {
		v.Achievements[i].Read(r)
	}
}

// LobbyRequestLeagueInfo requests the league standing; no payload.
type LobbyRequestLeagueInfo struct{}

func (LobbyRequestLeagueInfo) Write(*packet.Writer) {}

func (*LobbyRequestLeagueInfo) Read(*packet.Reader) {}

// LobbyRequestLeagueInfoOK carries the league standing summary.
type LobbyRequestLeagueInfoOK struct {
	Unk0  uint8
	Unk1  uint8
	Unk2  uint32
	Unk3  uint32
	Unk4  uint8
	Unk5  uint8
	Unk6  uint32
	Unk7  uint32
	Unk8  uint8
	Unk9  uint8
	Unk10 uint32
	Unk11 uint8
	Unk12 uint8
	Unk13 uint8
}

func (v LobbyRequestLeagueInfoOK) Write(w *packet.Writer) {
	w.WriteUint8(v.Unk0)
	w.WriteUint8(v.Unk1)
	w.WriteUint32(v.Unk2)
	w.WriteUint32(v.Unk3)
	w.WriteUint8(v.Unk4)
	w.WriteUint8(v.Unk5)
	w.WriteUint32(v.Unk6)
	w.WriteUint32(v.Unk7)
	w.WriteUint8(v.Unk8)
	w.WriteUint8(v.Unk9)
	w.WriteUint32(v.Unk10)
	w.WriteUint8(v.Unk11)
	w.WriteUint8(v.Unk12)
	w.WriteUint8(v.Unk13)
}

func (v *LobbyRequestLeagueInfoOK) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint8()
	v.Unk1 = r.ReadUint8()
	v.Unk2 = r.ReadUint32()
	v.Unk3 = r.ReadUint32()
	v.Unk4 = r.ReadUint8()
	v.Unk5 = r.ReadUint8()
	v.Unk6 = r.ReadUint32()
	v.Unk7 = r.ReadUint32()
	v.Unk8 = r.ReadUint8()
	v.Unk9 = r.ReadUint8()
	v.Unk10 = r.ReadUint32()
	v.Unk11 = r.ReadUint8()
	v.Unk12 = r.ReadUint8()
	v.Unk13 = r.ReadUint8()
}

// LobbyRequestQuestList requests the quest list.
type LobbyRequestQuestList struct {
	Unk0 uint32
}

func (v *LobbyRequestQuestList) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint32()
}

func (v LobbyRequestQuestList) Write(w *packet.Writer) {
	w.WriteUint32(v.Unk0)
}

// LobbyRequestQuestListOK lists active quests.
type LobbyRequestQuestListOK struct {
	Unk0   uint32
	Quests []Quest
}

func (v LobbyRequestQuestListOK) Write(w *packet.Writer) {
	w.WriteUint32(v.Unk0)
	w.WriteUint16(uint16(len(v.Quests)))
	for _, quest := range v.Quests {
		quest.Write(w)
	}
}

func (v *LobbyRequestQuestListOK) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint32()
	size := r.ReadUint16()
	v.Quests = make([]Quest, size)
	for i := range v.Quests {
		v.Quests[i].Read(r)
	}
}

// LobbyRequestDailyQuestList requests the daily quest list.
type LobbyRequestDailyQuestList struct {
	Val0 uint32
}

func (v *LobbyRequestDailyQuestList) Read(r *packet.Reader) {
	v.Val0 = r.ReadUint32()
}

func (v LobbyRequestDailyQuestList) Write(w *packet.Writer) {
	w.WriteUint32(v.Val0)
}

// LobbyRequestDailyQuestListOK lists daily quests. Both collections are
// size-prefixed with u16.
type LobbyRequestDailyQuestListOK struct {
	Val0   uint32
	Quests []Quest
	Val1   []struct {
		Val0 uint16
		Val1 uint32
		Val2 uint8
		Val3 uint8
	}
}

func (v LobbyRequestDailyQuestListOK) Write(w *packet.Writer) {
	w.WriteUint32(v.Val0)
	w.WriteUint16(uint16(len(v.Quests)))
	for _, quest := range v.Quests {
		quest.Write(w)
	}
	w.WriteUint16(uint16(len(v.Val1)))
	for _, entry := range v.Val1 {
		w.WriteUint16(entry.Val0)
		w.WriteUint32(entry.Val1)
		w.WriteUint8(entry.Val2)
		w.WriteUint8(entry.Val3)
	}
}

// LobbyRequestSpecialEventList requests the special event list.
type LobbyRequestSpecialEventList struct {
	Unk0 uint32
}

func (v *LobbyRequestSpecialEventList) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint32()
}

func (v LobbyRequestSpecialEventList) Write(w *packet.Writer) {
	w.WriteUint32(v.Unk0)
}

// LobbyRequestSpecialEventListOK lists event quests and events.
type LobbyRequestSpecialEventListOK struct {
	Unk0   uint32
	Quests []Quest
	Events []struct {
		Unk0 uint16
		Unk1 uint32
	}
}

func (v LobbyRequestSpecialEventListOK) Write(w *packet.Writer) {
	w.WriteUint32(v.Unk0)
	w.WriteUint16(uint16(len(v.Quests)))
	for _, quest := range v.Quests {
		quest.Write(w)
	}
	w.WriteUint16(uint16(len(v.Events)))
	for _, event := range v.Events {
		w.WriteUint16(event.Unk0)
		w.WriteUint32(event.Unk1)
	}
}

// LobbyEnterRanch asks for a ranch-host advertisement.
type LobbyEnterRanch struct {
	RanchUID uint32
	Unk1     string
	Unk2     uint8
}

func (v *LobbyEnterRanch) Read(r *packet.Reader) {
	v.RanchUID = r.ReadUint32()
	v.Unk1 = r.ReadString()
	v.Unk2 = r.ReadUint8()
}

func (v LobbyEnterRanch) Write(w *packet.Writer) {
	w.WriteUint32(v.RanchUID)
	w.WriteString(v.Unk1)
	w.WriteUint8(v.Unk2)
}

// LobbyEnterRanchOK advertises the ranch host with a one-time code.
type LobbyEnterRanchOK struct {
	RanchUID uint32
	Code     uint32
	IP       uint32
	Port     uint16
}

func (v LobbyEnterRanchOK) Write(w *packet.Writer) {
	w.WriteUint32(v.RanchUID)
	w.WriteUint32(v.Code)
	w.WriteUint32(v.IP)
	w.WriteUint16(v.Port)
}

func (v *LobbyEnterRanchOK) Read(r *packet.Reader) {
	v.RanchUID = r.ReadUint32()
	v.Code = r.ReadUint32()
	v.IP = r.ReadUint32()
	v.Port = r.ReadUint16()
}

// LobbyEnterRanchCancel rejects the ranch handoff.
type LobbyEnterRanchCancel struct {
	Unk0 uint16
}

func (v LobbyEnterRanchCancel) Write(w *packet.Writer) {
	w.WriteUint16(v.Unk0)
}

func (v *LobbyEnterRanchCancel) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint16()
}

// LobbyGetMessengerInfo asks for the messenger-host advertisement.
type LobbyGetMessengerInfo struct{}

func (LobbyGetMessengerInfo) Write(*packet.Writer) {}

func (*LobbyGetMessengerInfo) Read(*packet.Reader) {}

// LobbyGetMessengerInfoOK advertises the messenger host.
type LobbyGetMessengerInfoOK struct {
	Code uint32
	IP   uint32
	Port uint16
}

func (v LobbyGetMessengerInfoOK) Write(w *packet.Writer) {
	w.WriteUint32(v.Code)
	w.WriteUint32(v.IP)
	w.WriteUint16(v.Port)
}

func (v *LobbyGetMessengerInfoOK) Read(r *packet.Reader) {
	v.Code = r.ReadUint32()
	v.IP = r.ReadUint32()
	v.Port = r.ReadUint16()
}

// LobbyGetMessengerInfoCancel rejects the messenger handoff.
type LobbyGetMessengerInfoCancel struct{}

func (LobbyGetMessengerInfoCancel) Write(*packet.Writer) {}

func (*LobbyGetMessengerInfoCancel) Read(*packet.Reader) {}

// LobbyRoomListRoom is a room summary entry.
type LobbyRoomListRoom struct {
	ID          uint32
	Name        string
	PlayerCount uint8
	MaxPlayers  uint8
	IsLocked    uint8
	Unk0        uint8
	Unk1        uint8
	Map         uint16
	HasStarted  uint8
	Unk2        uint16
	Unk3        uint8
	Level       uint8
	Unk4        uint32
}

// LobbyRoomList requests the room roster page.
type LobbyRoomList struct {
	Unk0 uint8
	Unk1 uint8
	Unk2 uint8
}

func (v *LobbyRoomList) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint8()
	v.Unk1 = r.ReadUint8()
	v.Unk2 = r.ReadUint8()
}

func (v LobbyRoomList) Write(w *packet.Writer) {
	w.WriteUint8(v.Unk0)
	w.WriteUint8(v.Unk1)
	w.WriteUint8(v.Unk2)
}

// LobbyRoomListOK lists the joinable rooms.
type LobbyRoomListOK struct {
	Unk0  uint8
	Unk1  uint8
	Unk2  uint8
	Rooms []LobbyRoomListRoom
	Unk3  struct {
		Unk0 uint32
		Unk1 string
		Unk2 uint16
	}
}

func (v LobbyRoomListOK) Write(w *packet.Writer) {
	w.WriteUint8(v.Unk0)
	w.WriteUint8(v.Unk1)
	w.WriteUint8(v.Unk2)
	w.WriteUint8(uint8(len(v.Rooms)))
	for _, room := range v.Rooms {
		w.WriteUint32(room.ID)
		w.WriteString(room.Name)
		w.WriteUint8(room.PlayerCount)
		w.WriteUint8(room.MaxPlayers)
		w.WriteUint8(room.IsLocked)
		w.WriteUint8(room.Unk0)
		w.WriteUint8(room.Unk1)
		w.WriteUint16(room.Map)
		w.WriteUint8(room.HasStarted)
		w.WriteUint16(room.Unk2)
		w.WriteUint8(room.Unk3)
		w.WriteUint8(room.Level)
		w.WriteUint32(room.Unk4)
	}
	w.WriteUint32(v.Unk3.Unk0)
	w.WriteString(v.Unk3.Unk1)
	w.WriteUint16(v.Unk3.Unk2)
}

// LobbyGoodsShopList requests the goods shop catalog page.
type LobbyGoodsShopList struct {
	Data [12]uint8
}

func (v *LobbyGoodsShopList) Read(r *packet.Reader) {
	copy(v.Data[:], r.ReadBytes(len(v.Data)))
}

func (v LobbyGoodsShopList) Write(w *packet.Writer) {
	w.WriteBytes(v.Data[:])
}

// LobbyGoodsShopListOK echoes the goods shop catalog selector.
type LobbyGoodsShopListOK struct {
	Data [12]uint8
}

func (v LobbyGoodsShopListOK) Write(w *packet.Writer) {
	w.WriteBytes(v.Data[:])
}

func (v *LobbyGoodsShopListOK) Read(r *packet.Reader) {
	copy(v.Data[:], r.ReadBytes(len(v.Data)))
}

// LobbyInquiryTreecash requests the hard-currency balance; no payload.
type LobbyInquiryTreecash struct{}

func (LobbyInquiryTreecash) Write(*packet.Writer) {}

func (*LobbyInquiryTreecash) Read(*packet.Reader) {}

// LobbyInquiryTreecashCancel rejects the hard-currency balance request.
type LobbyInquiryTreecashCancel struct{}

func (LobbyInquiryTreecashCancel) Write(*packet.Writer) {}

func (*LobbyInquiryTreecashCancel) Read(*packet.Reader) {}

// LobbyInquiryTreecashOK carries the hard-currency balance.
type LobbyInquiryTreecashOK struct {
	Cash uint32
}

func (v LobbyInquiryTreecashOK) Write(w *packet.Writer) {
	w.WriteUint32(v.Cash)
}

func (v *LobbyInquiryTreecashOK) Read(r *packet.Reader) {
	v.Cash = r.ReadUint32()
}

// LobbyClientNotify reports the client's scene state: 1 on success;
// 2 and 3 are first and repeated cancels, with the retry count in Val1.
type LobbyClientNotify struct {
	Val0 uint16
	Val1 uint32
}

func (v *LobbyClientNotify) Read(r *packet.Reader) {
	v.Val0 = r.ReadUint16()
	v.Val1 = r.ReadUint32()
}

func (v LobbyClientNotify) Write(w *packet.Writer) {
	w.WriteUint16(v.Val0)
	w.WriteUint32(v.Val1)
}

// LobbyEnterRandomRanch asks to enter any open ranch; no payload.
type LobbyEnterRandomRanch struct{}

func (LobbyEnterRandomRanch) Write(*packet.Writer) {}

func (*LobbyEnterRandomRanch) Read(*packet.Reader) {}
