package proto

import "github.com/aliciago/server/internal/net/packet"

// RoomOptionType is the bitfield selecting which room options changed.
type RoomOptionType uint16

const (
	RoomOptionName RoomOptionType = 1 << iota
	RoomOptionPlayerCount
	RoomOptionDescription
	RoomOptionOption3
	RoomOptionMapBlockID
	RoomOptionRaceStarted
)

// Avatar is the appearance aggregate of a human racer.
type Avatar struct {
	CharacterEquipment []Item
	Character          Character
	Mount              Horse
	Unk0               uint32
}

func (v Avatar) Write(w *packet.Writer) {
	w.WriteUint8(uint8(len(v.CharacterEquipment)))
	for _, item := range v.CharacterEquipment {
		item.Write(w)
	}
	v.Character.Write(w)
	v.Mount.Write(w)
	w.WriteUint32(v.Unk0)
}

func (v *Avatar) Read(r *packet.Reader) {
	size := r.ReadUint8()
	v.CharacterEquipment = make([]Item, size)
	for i := range v.CharacterEquipment {
		v.CharacterEquipment[i].Read(r)
	}
	v.Character.Read(r)
	v.Mount.Read(r)
	v.Unk0 = r.ReadUint32()
}

// Racer is the roster aggregate of a room participant. IsNPC selects
// whether the avatar or the NPC template id follows on the wire.
type Racer struct {
	Member1  uint8
	Member2  uint8
	Level    uint32
	OID      uint32
	UID      uint32
	Name     string
	Unk5     uint8
	Unk6     uint32
	IsHidden bool
	IsNPC    bool

	Avatar *Avatar
	NpcTID *uint32

	Unk8 struct {
		Unk0 uint8
		Rent Rent
	}

	Pet    Pet
	Guild  Guild
	League League
	Unk10  uint8
	Unk11  uint8
	Unk12  uint8
	Unk13  uint8
}

func (v Racer) Write(w *packet.Writer) {
	w.WriteUint8(v.Member1)
	w.WriteUint8(v.Member2)
	w.WriteUint32(v.Level)
	w.WriteUint32(v.OID)
	w.WriteUint32(v.UID)
	w.WriteString(v.Name)
	w.WriteUint8(v.Unk5)
	w.WriteUint32(v.Unk6)
	w.WriteBool(v.IsHidden)
	w.WriteBool(v.IsNPC)

	if v.IsNPC {
		var npcTid uint32
		if v.NpcTID != nil {
			npcTid = *v.NpcTID
		}
		w.WriteUint32(npcTid)
	} else {
		var avatar Avatar
		if v.Avatar != nil {
			avatar = *v.Avatar
		}
		avatar.Write(w)
	}

	w.WriteUint8(v.Unk8.Unk0)
	v.Unk8.Rent.Write(w)

	v.Pet.Write(w)
	v.Guild.Write(w)
	v.League.Write(w)
	w.WriteUint8(v.Unk10)
	w.WriteUint8(v.Unk11)
	w.WriteUint8(v.Unk12)
	w.WriteUint8(v.Unk13)
}

func (v *Racer) Read(r *packet.Reader) {
	v.Member1 = r.ReadUint8()
	v.Member2 = r.ReadUint8()
	v.Level = r.ReadUint32()
	v.OID = r.ReadUint32()
	v.UID = r.ReadUint32()
	v.Name = r.ReadString()
	v.Unk5 = r.ReadUint8()
	v.Unk6 = r.ReadUint32()
	v.IsHidden = r.ReadBool()
	v.IsNPC = r.ReadBool()

	if v.IsNPC {
		npcTid := r.ReadUint32()
		v.NpcTID = &npcTid
		v.Avatar = nil
	} else {
		avatar := Avatar{}
		avatar.Read(r)
		v.Avatar = &avatar
		v.NpcTID = nil
	}

	v.Unk8.Unk0 = r.ReadUint8()
	v.Unk8.Rent.Read(r)

	v.Pet.Read(r)
	v.Guild.Read(r)
	v.League.Read(r)
	v.Unk10 = r.ReadUint8()
	v.Unk11 = r.ReadUint8()
	v.Unk12 = r.ReadUint8()
	v.Unk13 = r.ReadUint8()
}

// RoomDescription summarizes a race room's settings.
type RoomDescription struct {
	Name         string
	PlayerCount  uint8
	Description  string
	Unk1         uint8
	GameMode     GameMode
	MapBlockID   uint16
	TeamMode     TeamMode
	MissionID    uint16
	Unk6         uint8
	SkillBracket uint8
}

func (v RoomDescription) Write(w *packet.Writer) {
	w.WriteString(v.Name)
	w.WriteUint8(v.PlayerCount)
	w.WriteString(v.Description)
	w.WriteUint8(v.Unk1)
	w.WriteUint8(uint8(v.GameMode))
	w.WriteUint16(v.MapBlockID)
	w.WriteUint8(uint8(v.TeamMode))
	w.WriteUint16(v.MissionID)
	w.WriteUint8(v.Unk6)
	w.WriteUint8(v.SkillBracket)
}

func (v *RoomDescription) Read(r *packet.Reader) {
	v.Name = r.ReadString()
	v.PlayerCount = r.ReadUint8()
	v.Description = r.ReadString()
	v.Unk1 = r.ReadUint8()
	v.GameMode = GameMode(r.ReadUint8())
	v.MapBlockID = r.ReadUint16()
	v.TeamMode = TeamMode(r.ReadUint8())
	v.MissionID = r.ReadUint16()
	v.Unk6 = r.ReadUint8()
	v.SkillBracket = r.ReadUint8()
}

// RaceEnterRoom is the serverbound room entry, presenting the OTP issued
// by the lobby.
type RaceEnterRoom struct {
	CharacterUID uint32
	OTP          uint32
	RoomUID      uint32
}

func (v *RaceEnterRoom) Read(r *packet.Reader) {
	v.CharacterUID = r.ReadUint32()
	v.OTP = r.ReadUint32()
	v.RoomUID = r.ReadUint32()
}

func (v RaceEnterRoom) Write(w *packet.Writer) {
	w.WriteUint32(v.CharacterUID)
	w.WriteUint32(v.OTP)
	w.WriteUint32(v.RoomUID)
}

// RaceEnterRoomOK returns the room roster. The racer list is prefixed
// with u32; at most ten entries.
type RaceEnterRoomOK struct {
	Racers []Racer

	NowPlaying      uint8
	UID             uint32
	RoomDescription RoomDescription

	Unk2 uint32
	Unk3 uint16
	Unk4 uint32
	Unk5 uint32
	Unk6 uint32

	Unk7 uint32
	Unk8 uint16

	Unk9 struct {
		Unk0 uint32
		Unk1 uint16
		Unk2 []uint32
	}

	Unk10 uint32
	Unk11 float32
	Unk12 uint32
	Unk13 uint32
}

func (v RaceEnterRoomOK) Write(w *packet.Writer) {
	w.WriteUint32(uint32(len(v.Racers)))
	for _, racer := range v.Racers {
		racer.Write(w)
	}

	w.WriteUint8(v.NowPlaying)
	w.WriteUint32(v.UID)
	v.RoomDescription.Write(w)

	w.WriteUint32(v.Unk2)
	w.WriteUint16(v.Unk3)
	w.WriteUint32(v.Unk4)
	w.WriteUint32(v.Unk5)
	w.WriteUint32(v.Unk6)

	w.WriteUint32(v.Unk7)
	w.WriteUint16(v.Unk8)

	w.WriteUint32(v.Unk9.Unk0)
	w.WriteUint16(v.Unk9.Unk1)
	w.WriteUint8(uint8(len(v.Unk9.Unk2)))
	for _, value := range v.Unk9.Unk2 {
		w.WriteUint32(value)
	}

	w.WriteUint32(v.Unk10)
	w.WriteFloat32(v.Unk11)
	w.WriteUint32(v.Unk12)
	w.WriteUint32(v.Unk13)
}

// RaceEnterRoomCancel rejects the room entry; it has no payload.
type RaceEnterRoomCancel struct{}

func (RaceEnterRoomCancel) Write(*packet.Writer) {}

func (*RaceEnterRoomCancel) Read(*packet.Reader) {}

// RaceEnterRoomNotify announces a new racer to the room.
type RaceEnterRoomNotify struct {
	Racer             Racer
	AverageTimeRecord uint32
}

func (v RaceEnterRoomNotify) Write(w *packet.Writer) {
	v.Racer.Write(w)
	w.WriteUint32(v.AverageTimeRecord)
}

// RaceChangeRoomOptions applies the changed options selected by the
// bitfield; only the selected fields follow on the wire.
type RaceChangeRoomOptions struct {
	OptionsBitfield RoomOptionType
	Name            string
	PlayerCount     uint8
	Description     string
	Option3         uint8
	MapBlockID      uint16
	HasRaceStarted  uint8
}

func (v *RaceChangeRoomOptions) Read(r *packet.Reader) {
	v.OptionsBitfield = RoomOptionType(r.ReadUint16())
	if v.OptionsBitfield&RoomOptionName != 0 {
		v.Name = r.ReadString()
	}
	if v.OptionsBitfield&RoomOptionPlayerCount != 0 {
		v.PlayerCount = r.ReadUint8()
	}
	if v.OptionsBitfield&RoomOptionDescription != 0 {
		v.Description = r.ReadString()
	}
	if v.OptionsBitfield&RoomOptionOption3 != 0 {
		v.Option3 = r.ReadUint8()
	}
	if v.OptionsBitfield&RoomOptionMapBlockID != 0 {
		v.MapBlockID = r.ReadUint16()
	}
	if v.OptionsBitfield&RoomOptionRaceStarted != 0 {
		v.HasRaceStarted = r.ReadUint8()
	}
}

func (v RaceChangeRoomOptions) Write(w *packet.Writer) {
	w.WriteUint16(uint16(v.OptionsBitfield))
	if v.OptionsBitfield&RoomOptionName != 0 {
		w.WriteString(v.Name)
	}
	if v.OptionsBitfield&RoomOptionPlayerCount != 0 {
		w.WriteUint8(v.PlayerCount)
	}
	if v.OptionsBitfield&RoomOptionDescription != 0 {
		w.WriteString(v.Description)
	}
	if v.OptionsBitfield&RoomOptionOption3 != 0 {
		w.WriteUint8(v.Option3)
	}
	if v.OptionsBitfield&RoomOptionMapBlockID != 0 {
		w.WriteUint16(v.MapBlockID)
	}
	if v.OptionsBitfield&RoomOptionRaceStarted != 0 {
		w.WriteUint8(v.HasRaceStarted)
	}
}

// RaceChangeRoomOptionsNotify fans the changed options out with the same
// bitfield shape as the request.
type RaceChangeRoomOptionsNotify struct {
	OptionsBitfield RoomOptionType
	Name            string
	PlayerCount     uint8
	Description     string
	Option3         uint8
	MapBlockID      uint16
	HasRaceStarted  uint8
}

func (v RaceChangeRoomOptionsNotify) Write(w *packet.Writer) {
	RaceChangeRoomOptions(v).Write(w)
}

func (v *RaceChangeRoomOptionsNotify) Read(r *packet.Reader) {
	options := RaceChangeRoomOptions{}
	options.Read(r)
	*v = RaceChangeRoomOptionsNotify(options)
}

// RaceStartRace starts the race for the listed participants.
type RaceStartRace struct {
	Unk0 []uint16
}

func (v *RaceStartRace) Read(r *packet.Reader) {
	size := r.ReadUint8()
	v.Unk0 = make([]uint16, size)
	for i := range v.Unk0 {
		v.Unk0[i] = r.ReadUint16()
	}
}

func (v RaceStartRace) Write(w *packet.Writer) {
	w.WriteUint8(uint8(len(v.Unk0)))
	for _, value := range v.Unk0 {
		w.WriteUint16(value)
	}
}

// RaceStartRaceNotifyRacer is a per-racer start entry.
type RaceStartRaceNotifyRacer struct {
	OID   uint16
	Name  string
	Unk2  uint8
	Unk3  uint8
	Unk4  uint16
	P2DID uint32
	Unk6  uint16
	Unk7  uint32
}

// RaceStartRaceNotify announces the race start with the starting grid
// and the relay host address.
type RaceStartRaceNotify struct {
	GameMode    GameMode
	Skills      bool
	SomeonesOID uint16
	Member4     uint32
	MapBlockID  uint16

	Racers []RaceStartRaceNotifyRacer

	IP   uint32
	Port uint16

	Unk6 uint8

	Unk9 struct {
		Unk0  uint16
		Unk1  uint8
		Unk2  uint8
		Unk3  uint32
		Unk4  []uint32
		Unk5  uint16
		Unk6  uint16
		Unk7  uint16
		Unk8  uint16
		Unk9  uint16
		Unk10 uint8
		Unk11 uint32
	}

	Unk10 struct {
		Unk0 uint32
		Unk1 uint32
		Unk2 uint32
		Unk3 uint32
	}

	Unk11 uint16
	Unk12 uint8

	Unk13 struct {
		Unk0 uint8
		Unk1 uint32
		Unk2 []uint16
	}

	Unk14 uint8
	Unk15 uint32
	Unk16 uint32
	Unk17 uint8

	Unk18 []struct {
		Unk0 uint16
		Unk1 []uint32
	}
}

func (v RaceStartRaceNotify) Write(w *packet.Writer) {
	w.WriteUint8(uint8(v.GameMode))
	w.WriteBool(v.Skills)
	w.WriteUint16(v.SomeonesOID)
	w.WriteUint32(v.Member4)
	w.WriteUint16(v.MapBlockID)

	w.WriteUint8(uint8(len(v.Racers)))
	for _, racer := range v.Racers {
		w.WriteUint16(racer.OID)
		w.WriteString(racer.Name)
		w.WriteUint8(racer.Unk2)
		w.WriteUint8(racer.Unk3)
		w.WriteUint16(racer.Unk4)
		w.WriteUint32(racer.P2DID)
		w.WriteUint16(racer.Unk6)
		w.WriteUint32(racer.Unk7)
	}

	w.WriteUint32(v.IP)
	w.WriteUint16(v.Port)

	w.WriteUint8(v.Unk6)

	w.WriteUint16(v.Unk9.Unk0)
	w.WriteUint8(v.Unk9.Unk1)
	w.WriteUint8(v.Unk9.Unk2)
	w.WriteUint32(v.Unk9.Unk3)
	w.WriteUint8(uint8(len(v.Unk9.Unk4)))
	for _, value := range v.Unk9.Unk4 {
		w.WriteUint32(value)
	}
	w.WriteUint16(v.Unk9.Unk5)
	w.WriteUint16(v.Unk9.Unk6)
	w.WriteUint16(v.Unk9.Unk7)
	w.WriteUint16(v.Unk9.Unk8)
	w.WriteUint16(v.Unk9.Unk9)
	w.WriteUint8(v.Unk9.Unk10)
	w.WriteUint32(v.Unk9.Unk11)

	w.WriteUint32(v.Unk10.Unk0)
	w.WriteUint32(v.Unk10.Unk1)
	w.WriteUint32(v.Unk10.Unk2)
	w.WriteUint32(v.Unk10.Unk3)

	w.WriteUint16(v.Unk11)
	w.WriteUint8(v.Unk12)

	w.WriteUint8(v.Unk13.Unk0)
	w.WriteUint32(v.Unk13.Unk1)
	w.WriteUint8(uint8(len(v.Unk13.Unk2)))
	for _, value := range v.Unk13.Unk2 {
		w.WriteUint16(value)
	}

	w.WriteUint8(v.Unk14)
	w.WriteUint32(v.Unk15)
	w.WriteUint32(v.Unk16)
	w.WriteUint8(v.Unk17)

	w.WriteUint8(uint8(len(v.Unk18)))
	for _, element := range v.Unk18 {
		w.WriteUint16(element.Unk0)
		w.WriteUint8(uint8(len(element.Unk1)))
		for _, value := range element.Unk1 {
			w.WriteUint32(value)
		}
	}
}

// RaceStartRaceCancel rejects the start.
type RaceStartRaceCancel struct {
	Reason uint8
}

func (v RaceStartRaceCancel) Write(w *packet.Writer) {
	w.WriteUint8(v.Reason)
}

func (v *RaceStartRaceCancel) Read(r *packet.Reader) {
	v.Reason = r.ReadUint8()
}

// RaceUserRaceTimer reports the client race clock as a count of 100ns
// intervals since system start.
type RaceUserRaceTimer struct {
	Timestamp uint64
}

func (v *RaceUserRaceTimer) Read(r *packet.Reader) {
	v.Timestamp = r.ReadUint64()
}

func (v RaceUserRaceTimer) Write(w *packet.Writer) {
	w.WriteUint64(v.Timestamp)
}

// RaceUserRaceTimerOK acknowledges the race clock.
type RaceUserRaceTimerOK struct {
	Unk0 uint64
	Unk1 uint64
}

func (v RaceUserRaceTimerOK) Write(w *packet.Writer) {
	w.WriteUint64(v.Unk0)
	w.WriteUint64(v.Unk1)
}

func (v *RaceUserRaceTimerOK) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint64()
	v.Unk1 = r.ReadUint64()
}

// RaceLoadingComplete reports the sender finished loading; no payload.
type RaceLoadingComplete struct{}

func (RaceLoadingComplete) Write(*packet.Writer) {}

func (*RaceLoadingComplete) Read(*packet.Reader) {}

// RaceLoadingCompleteNotify fans a loading completion out to the room.
type RaceLoadingCompleteNotify struct {
	OID uint16
}

func (v RaceLoadingCompleteNotify) Write(w *packet.Writer) {
	w.WriteUint16(v.OID)
}

func (v *RaceLoadingCompleteNotify) Read(r *packet.Reader) {
	v.OID = r.ReadUint16()
}

// RaceChat is a serverbound chat line.
type RaceChat struct {
	Message string
	Unknown uint8
}

func (v *RaceChat) Read(r *packet.Reader) {
	v.Message = r.ReadString()
	v.Unknown = r.ReadUint8()
}

func (v RaceChat) Write(w *packet.Writer) {
	w.WriteString(v.Message)
	w.WriteUint8(v.Unknown)
}

// RaceChatNotify fans a chat line out to the room.
type RaceChatNotify struct {
	Author  string
	Message string
	Unknown uint8
}

func (v RaceChatNotify) Write(w *packet.Writer) {
	w.WriteString(v.Author)
	w.WriteString(v.Message)
	w.WriteUint8(v.Unknown)
}

func (v *RaceChatNotify) Read(r *packet.Reader) {
	v.Author = r.ReadString()
	v.Message = r.ReadString()
	v.Unknown = r.ReadUint8()
}

// RaceReadyRace toggles the sender's readiness; no payload.
type RaceReadyRace struct{}

func (RaceReadyRace) Write(*packet.Writer) {}

func (*RaceReadyRace) Read(*packet.Reader) {}

// RaceReadyRaceNotify fans a readiness change out to the room.
type RaceReadyRaceNotify struct {
	CharacterUID uint32
	Ready        uint8
}

func (v RaceReadyRaceNotify) Write(w *packet.Writer) {
	w.WriteUint32(v.CharacterUID)
	w.WriteUint8(v.Ready)
}

func (v *RaceReadyRaceNotify) Read(r *packet.Reader) {
	v.CharacterUID = r.ReadUint32()
	v.Ready = r.ReadUint8()
}

// RaceCountdown starts the countdown at the given file-time instant.
type RaceCountdown struct {
	Timestamp int64
}

func (v RaceCountdown) Write(w *packet.Writer) {
	w.WriteInt64(v.Timestamp)
}

func (v *RaceCountdown) Read(r *packet.Reader) {
	v.Timestamp = r.ReadInt64()
}
