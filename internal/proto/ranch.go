package proto

import "github.com/aliciago/server/internal/net/packet"

// RanchHeartbeat keeps the ranch connection alive; it has no payload.
type RanchHeartbeat struct{}

func (RanchHeartbeat) Write(*packet.Writer) {}

func (*RanchHeartbeat) Read(*packet.Reader) {}

// RanchEnterRanch is the serverbound ranch entry, presenting the OTP
// issued by the lobby.
type RanchEnterRanch struct {
	CharacterUID uint32
	OTP          uint32
	RanchUID     uint32
}

func (v *RanchEnterRanch) Read(r *packet.Reader) {
	v.CharacterUID = r.ReadUint32()
	v.OTP = r.ReadUint32()
	v.RanchUID = r.ReadUint32()
}

func (v RanchEnterRanch) Write(w *packet.Writer) {
	w.WriteUint32(v.CharacterUID)
	w.WriteUint32(v.OTP)
	w.WriteUint32(v.RanchUID)
}

// RanchEnterRanchOK carries the full occupant set (horses and characters
// in OID order), the housing list and the incubator state.
type RanchEnterRanchOK struct {
	RancherUID  uint32
	RancherName string
	RanchName   string

	Horses     []RanchHorse
	Characters []RanchCharacter

	Member6            uint64
	ScramblingConstant uint32
	RanchProgress      uint32

	// Size-prefixed with u8, at most 13 entries.
	Housing []Housing

	HorseSlots uint8
	Member11   uint32
	Bitset     uint32

	IncubatorSlotOne uint32
	IncubatorSlotTwo uint32
	Incubator        [3]Egg

	League   League
	Member17 uint32
}

func (v RanchEnterRanchOK) Write(w *packet.Writer) {
	w.WriteUint32(v.RancherUID)
	w.WriteString(v.RancherName)
	w.WriteString(v.RanchName)

	w.WriteUint8(uint8(len(v.Horses)))
	for _, horse := range v.Horses {
		horse.Write(w)
	}
	w.WriteUint8(uint8(len(v.Characters)))
	for _, character := range v.Characters {
		character.Write(w)
	}

	w.WriteUint64(v.Member6)
	w.WriteUint32(v.ScramblingConstant)
	w.WriteUint32(v.RanchProgress)

	w.WriteUint8(uint8(len(v.Housing)))
	for _, housing := range v.Housing {
		housing.Write(w)
	}

	w.WriteUint8(v.HorseSlots)
	w.WriteUint32(v.Member11)
	w.WriteUint32(v.Bitset)

	w.WriteUint32(v.IncubatorSlotOne)
	w.WriteUint32(v.IncubatorSlotTwo)
	for _, egg := range v.Incubator {
		egg.Write(w)
	}

	v.League.Write(w)
	w.WriteUint32(v.Member17)
}

func (v *RanchEnterRanchOK) Read(r *packet.Reader) {
	v.RancherUID = r.ReadUint32()
	v.RancherName = r.ReadString()
	v.RanchName = r.ReadString()

	horseCount := r.ReadUint8()
	v.Horses = make([]RanchHorse, horseCount)
	for i := range v.Horses {
		v.Horses[i].Read(r)
	}
	characterCount := r.ReadUint8()
	v.Characters = make([]RanchCharacter, characterCount)
	for i := range v.Characters {
		v.Characters[i].Read(r)
	}

	v.Member6 = r.ReadUint64()
	v.ScramblingConstant = r.ReadUint32()
	v.RanchProgress = r.ReadUint32()

	housingCount := r.ReadUint8()
	v.Housing = make([]Housing, housingCount)
	for i := range v.Housing {
		v.Housing[i].Read(r)
	}

	v.HorseSlots = r.ReadUint8()
	v.Member11 = r.ReadUint32()
	v.Bitset = r.ReadUint32()

	v.IncubatorSlotOne = r.ReadUint32()
	v.IncubatorSlotTwo = r.ReadUint32()
	for i := range v.Incubator {
		v.Incubator[i].Read(r)
	}

	v.League.Read(r)
	v.Member17 = r.ReadUint32()
}

// RanchEnterRanchCancel rejects the ranch entry; it has no payload.
type RanchEnterRanchCancel struct{}

func (RanchEnterRanchCancel) Write(*packet.Writer) {}

func (*RanchEnterRanchCancel) Read(*packet.Reader) {}

// RanchEnterRanchNotify announces a new occupant to the present ones.
type RanchEnterRanchNotify struct {
	Character RanchCharacter
}

func (v RanchEnterRanchNotify) Write(w *packet.Writer) {
	v.Character.Write(w)
}

func (v *RanchEnterRanchNotify) Read(r *packet.Reader) {
	v.Character.Read(r)
}

// RanchLeaveRanch is the serverbound leave command; no payload.
type RanchLeaveRanch struct{}

func (RanchLeaveRanch) Write(*packet.Writer) {}

func (*RanchLeaveRanch) Read(*packet.Reader) {}

// RanchLeaveRanchOK acknowledges the leave; no payload.
type RanchLeaveRanchOK struct{}

func (RanchLeaveRanchOK) Write(*packet.Writer) {}

func (*RanchLeaveRanchOK) Read(*packet.Reader) {}

// RanchLeaveRanchNotify announces a departure to the remaining occupants.
type RanchLeaveRanchNotify struct {
	CharacterUID uint32
}

func (v RanchLeaveRanchNotify) Write(w *packet.Writer) {
	w.WriteUint32(v.CharacterUID)
}

func (v *RanchLeaveRanchNotify) Read(r *packet.Reader) {
	v.CharacterUID = r.ReadUint32()
}

// RanchChat is a serverbound chat line.
type RanchChat struct {
	Message  string
	Unknown  uint8
	Unknown2 uint8
}

func (v *RanchChat) Read(r *packet.Reader) {
	v.Message = r.ReadString()
	v.Unknown = r.ReadUint8()
	v.Unknown2 = r.ReadUint8()
}

func (v RanchChat) Write(w *packet.Writer) {
	w.WriteString(v.Message)
	w.WriteUint8(v.Unknown)
	w.WriteUint8(v.Unknown2)
}

// RanchChatNotify fans a chat line out to the ranch.
type RanchChatNotify struct {
	Author   string
	Message  string
	IsBlue   uint8
	Unknown2 uint8
}

func (v RanchChatNotify) Write(w *packet.Writer) {
	w.WriteString(v.Author)
	w.WriteString(v.Message)
	w.WriteUint8(v.IsBlue)
	w.WriteUint8(v.Unknown2)
}

func (v *RanchChatNotify) Read(r *packet.Reader) {
	v.Author = r.ReadString()
	v.Message = r.ReadString()
	v.IsBlue = r.ReadUint8()
	v.Unknown2 = r.ReadUint8()
}

// SnapshotType discriminates the spatial payload of a ranch snapshot.
type SnapshotType uint8

const (
	SnapshotFull    SnapshotType = 0
	SnapshotPartial SnapshotType = 1
)

// FullSpatial is the full pose/position snapshot.
type FullSpatial struct {
	OID       uint16
	Time      uint32
	Action    uint64
	Timer     uint16
	Member4   [12]byte
	Matrix    [16]byte
	VelocityX float32
	VelocityY float32
	VelocityZ float32
}

func (v FullSpatial) Write(w *packet.Writer) {
	w.WriteUint16(v.OID)
	w.WriteUint32(v.Time)
	w.WriteUint64(v.Action)
	w.WriteUint16(v.Timer)
	w.WriteBytes(v.Member4[:])
	w.WriteBytes(v.Matrix[:])
	w.WriteFloat32(v.VelocityX)
	w.WriteFloat32(v.VelocityY)
	w.WriteFloat32(v.VelocityZ)
}

func (v *FullSpatial) Read(r *packet.Reader) {
	v.OID = r.ReadUint16()
	v.Time = r.ReadUint32()
	v.Action = r.ReadUint64()
	v.Timer = r.ReadUint16()
	copy(v.Member4[:], r.ReadBytes(len(v.Member4)))
	copy(v.Matrix[:], r.ReadBytes(len(v.Matrix)))
	v.VelocityX = r.ReadFloat32()
	v.VelocityY = r.ReadFloat32()
	v.VelocityZ = r.ReadFloat32()
}

// PartialSpatial is the pose-only snapshot.
type PartialSpatial struct {
	OID     uint16
	Time    uint32
	Action  uint64
	Timer   uint16
	Member4 [12]byte
	Matrix  [16]byte
}

func (v PartialSpatial) Write(w *packet.Writer) {
	w.WriteUint16(v.OID)
	w.WriteUint32(v.Time)
	w.WriteUint64(v.Action)
	w.WriteUint16(v.Timer)
	w.WriteBytes(v.Member4[:])
	w.WriteBytes(v.Matrix[:])
}

func (v *PartialSpatial) Read(r *packet.Reader) {
	v.OID = r.ReadUint16()
	v.Time = r.ReadUint32()
	v.Action = r.ReadUint64()
	v.Timer = r.ReadUint16()
	copy(v.Member4[:], r.ReadBytes(len(v.Member4)))
	copy(v.Matrix[:], r.ReadBytes(len(v.Matrix)))
}

// RanchSnapshot is the serverbound position/pose delta. The Type
// discriminator selects which spatial branch is present.
type RanchSnapshot struct {
	Type    SnapshotType
	Full    FullSpatial
	Partial PartialSpatial
}

func (v *RanchSnapshot) Read(r *packet.Reader) {
	v.Type = SnapshotType(r.ReadUint8())
	switch v.Type {
	case SnapshotFull:
		v.Full.Read(r)
	case SnapshotPartial:
		v.Partial.Read(r)
	}
}

func (v RanchSnapshot) Write(w *packet.Writer) {
	w.WriteUint8(uint8(v.Type))
	switch v.Type {
	case SnapshotFull:
		v.Full.Write(w)
	case SnapshotPartial:
		v.Partial.Write(w)
	}
}

// RanchSnapshotNotify rebroadcasts a snapshot bound to the sender's OID.
type RanchSnapshotNotify struct {
	OID     uint16
	Type    SnapshotType
	Full    FullSpatial
	Partial PartialSpatial
}

func (v RanchSnapshotNotify) Write(w *packet.Writer) {
	w.WriteUint16(v.OID)
	w.WriteUint8(uint8(v.Type))
	switch v.Type {
	case SnapshotFull:
		v.Full.Write(w)
	case SnapshotPartial:
		v.Partial.Write(w)
	}
}

func (v *RanchSnapshotNotify) Read(r *packet.Reader) {
	v.OID = r.ReadUint16()
	v.Type = SnapshotType(r.ReadUint8())
	switch v.Type {
	case SnapshotFull:
		v.Full.Read(r)
	case SnapshotPartial:
		v.Partial.Read(r)
	}
}

// RanchCmdAction forwards an emote/action snapshot blob.
type RanchCmdAction struct {
	Unk0     uint16
	Snapshot []uint8
}

func (v *RanchCmdAction) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint16()
	v.Snapshot = r.ReadBytes(r.Remaining())
}

func (v RanchCmdAction) Write(w *packet.Writer) {
	w.WriteUint16(v.Unk0)
	w.WriteBytes(v.Snapshot)
}

// RanchCmdActionNotify acknowledges an action command.
type RanchCmdActionNotify struct {
	Unk0 uint16
	Unk1 uint16
	Unk2 uint8
}

func (v RanchCmdActionNotify) Write(w *packet.Writer) {
	w.WriteUint16(v.Unk0)
	w.WriteUint16(v.Unk1)
	w.WriteUint8(v.Unk2)
}

func (v *RanchCmdActionNotify) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint16()
	v.Unk1 = r.ReadUint16()
	v.Unk2 = r.ReadUint8()
}

// RanchStuff reports a currency-earning ranch activity: an event id and
// the earned delta.
type RanchStuff struct {
	EventID uint32
	Value   int32
}

func (v *RanchStuff) Read(r *packet.Reader) {
	v.EventID = r.ReadUint32()
	v.Value = r.ReadInt32()
}

func (v RanchStuff) Write(w *packet.Writer) {
	w.WriteUint32(v.EventID)
	w.WriteInt32(v.Value)
}

// RanchStuffOK acknowledges the activity with the applied delta and the
// resulting balance. The shape deliberately differs from RanchStuff.
type RanchStuffOK struct {
	EventID        uint32
	MoneyIncrement int32
	TotalMoney     int32
}

func (v RanchStuffOK) Write(w *packet.Writer) {
	w.WriteUint32(v.EventID)
	w.WriteInt32(v.MoneyIncrement)
	w.WriteInt32(v.TotalMoney)
}

func (v *RanchStuffOK) Read(r *packet.Reader) {
	v.EventID = r.ReadUint32()
	v.MoneyIncrement = r.ReadInt32()
	v.TotalMoney = r.ReadInt32()
}

// RanchUpdateBusyState sets the sender's busy flag.
type RanchUpdateBusyState struct {
	BusyState uint8
}

func (v *RanchUpdateBusyState) Read(r *packet.Reader) {
	v.BusyState = r.ReadUint8()
}

func (v RanchUpdateBusyState) Write(w *packet.Writer) {
	w.WriteUint8(v.BusyState)
}

// RanchUpdateBusyStateNotify fans a busy-state change out to the ranch.
type RanchUpdateBusyStateNotify struct {
	CharacterUID uint32
	BusyState    uint8
}

func (v RanchUpdateBusyStateNotify) Write(w *packet.Writer) {
	w.WriteUint32(v.CharacterUID)
	w.WriteUint8(v.BusyState)
}

func (v *RanchUpdateBusyStateNotify) Read(r *packet.Reader) {
	v.CharacterUID = r.ReadUint32()
	v.BusyState = r.ReadUint8()
}

// RanchUpdateMountNickname renames a mount.
type RanchUpdateMountNickname struct {
	HorseUID uint32
	Name     string
	Unk1     uint32
}

func (v *RanchUpdateMountNickname) Read(r *packet.Reader) {
	v.HorseUID = r.ReadUint32()
	v.Name = r.ReadString()
	v.Unk1 = r.ReadUint32()
}

func (v RanchUpdateMountNickname) Write(w *packet.Writer) {
	w.WriteUint32(v.HorseUID)
	w.WriteString(v.Name)
	w.WriteUint32(v.Unk1)
}

// RanchUpdateMountNicknameOK acknowledges the rename.
type RanchUpdateMountNicknameOK struct {
	HorseUID uint32
	Nickname string
	Unk1     uint32
	Unk2     uint32
}

func (v RanchUpdateMountNicknameOK) Write(w *packet.Writer) {
	w.WriteUint32(v.HorseUID)
	w.WriteString(v.Nickname)
	w.WriteUint32(v.Unk1)
	w.WriteUint32(v.Unk2)
}

func (v *RanchUpdateMountNicknameOK) Read(r *packet.Reader) {
	v.HorseUID = r.ReadUint32()
	v.Nickname = r.ReadString()
	v.Unk1 = r.ReadUint32()
	v.Unk2 = r.ReadUint32()
}

// RanchUpdateMountNicknameCancel rejects the rename.
type RanchUpdateMountNicknameCancel struct {
	Unk0 uint8
}

func (v RanchUpdateMountNicknameCancel) Write(w *packet.Writer) {
	w.WriteUint8(v.Unk0)
}

func (v *RanchUpdateMountNicknameCancel) Read(r *packet.Reader) {
	v.Unk0 = r.ReadUint8()
}

// RanchRequestStorage requests a storage page. Category 0 is the gift
// inbox, category 1 the shop-delivery storage.
type RanchRequestStorage struct {
	Category uint8
	Page     uint16
}

func (v *RanchRequestStorage) Read(r *packet.Reader) {
	v.Category = r.ReadUint8()
	v.Page = r.ReadUint16()
}

func (v RanchRequestStorage) Write(w *packet.Writer) {
	w.WriteUint8(v.Category)
	w.WriteUint16(v.Page)
}

// RanchRequestStorageOK returns one storage page.
type RanchRequestStorageOK struct {
	Category uint8
	Page     uint16
	Items    []StoredItem
}

func (v RanchRequestStorageOK) Write(w *packet.Writer) {
	w.WriteUint8(v.Category)
	w.WriteUint16(v.Page)
	w.WriteUint8(uint8(len(v.Items)))
	for _, item := range v.Items {
		item.Write(w)
	}
}

func (v *RanchRequestStorageOK) Read(r *packet.Reader) {
	v.Category = r.ReadUint8()
	v.Page = r.ReadUint16()
	size := r.ReadUint8()
	v.Items = make([]StoredItem, size)
	for i := range v.Items {
		v.Items[i].Read(r)
	}
}

// RanchRequestStorageCancel rejects the storage request.
type RanchRequestStorageCancel struct{}

func (RanchRequestStorageCancel) Write(*packet.Writer) {}

func (*RanchRequestStorageCancel) Read(*packet.Reader) {}

// RanchGetItemFromStorage claims a storage bundle.
type RanchGetItemFromStorage struct {
	StoredItemUID uint32
}

func (v *RanchGetItemFromStorage) Read(r *packet.Reader) {
	v.StoredItemUID = r.ReadUint32()
}

func (v RanchGetItemFromStorage) Write(w *packet.Writer) {
	w.WriteUint32(v.StoredItemUID)
}

// RanchGetItemFromStorageOK delivers the claimed items.
type RanchGetItemFromStorageOK struct {
	StoredItemUID uint32
	Items         []Item
	Member0       uint32
}

func (v RanchGetItemFromStorageOK) Write(w *packet.Writer) {
	w.WriteUint32(v.StoredItemUID)
	w.WriteUint8(uint8(len(v.Items)))
	for _, item := range v.Items {
		item.Write(w)
	}
	w.WriteUint32(v.Member0)
}

func (v *RanchGetItemFromStorageOK) Read(r *packet.Reader) {
	v.StoredItemUID = r.ReadUint32()
	size := r.ReadUint8()
	v.Items = make([]Item, size)
	for i := range v.Items {
		v.Items[i].Read(r)
	}
	v.Member0 = r.ReadUint32()
}

// RanchGetItemFromStorageCancel rejects the claim.
type RanchGetItemFromStorageCancel struct {
	StoredItemUID uint32
	Status        uint8
}

func (v RanchGetItemFromStorageCancel) Write(w *packet.Writer) {
	w.WriteUint32(v.StoredItemUID)
	w.WriteUint8(v.Status)
}

func (v *RanchGetItemFromStorageCancel) Read(r *packet.Reader) {
	v.StoredItemUID = r.ReadUint32()
	v.Status = r.ReadUint8()
}

// RanchWearEquipment equips an item.
type RanchWearEquipment struct {
	ItemUID uint32
	Member  uint32
}

func (v *RanchWearEquipment) Read(r *packet.Reader) {
	v.ItemUID = r.ReadUint32()
	v.Member = r.ReadUint32()
}

func (v RanchWearEquipment) Write(w *packet.Writer) {
	w.WriteUint32(v.ItemUID)
	w.WriteUint32(v.Member)
}

// RanchWearEquipmentOK acknowledges the equip.
type RanchWearEquipmentOK struct {
	ItemUID uint32
	Member  uint32
}

func (v RanchWearEquipmentOK) Write(w *packet.Writer) {
	w.WriteUint32(v.ItemUID)
	w.WriteUint32(v.Member)
}

func (v *RanchWearEquipmentOK) Read(r *packet.Reader) {
	v.ItemUID = r.ReadUint32()
	v.Member = r.ReadUint32()
}

// RanchWearEquipmentCancel rejects the equip.
type RanchWearEquipmentCancel struct {
	ItemUID uint32
	Member  uint32
}

func (v RanchWearEquipmentCancel) Write(w *packet.Writer) {
	w.WriteUint32(v.ItemUID)
	w.WriteUint32(v.Member)
}

func (v *RanchWearEquipmentCancel) Read(r *packet.Reader) {
	v.ItemUID = r.ReadUint32()
	v.Member = r.ReadUint32()
}

// RanchRemoveEquipment unequips an item.
type RanchRemoveEquipment struct {
	ItemUID uint32
}

func (v *RanchRemoveEquipment) Read(r *packet.Reader) {
	v.ItemUID = r.ReadUint32()
}

func (v RanchRemoveEquipment) Write(w *packet.Writer) {
	w.WriteUint32(v.ItemUID)
}

// RanchRemoveEquipmentOK acknowledges the unequip.
type RanchRemoveEquipmentOK struct {
	ItemUID uint32
}

func (v RanchRemoveEquipmentOK) Write(w *packet.Writer) {
	w.WriteUint32(v.ItemUID)
}

func (v *RanchRemoveEquipmentOK) Read(r *packet.Reader) {
	v.ItemUID = r.ReadUint32()
}

// RanchUpdateEquipmentNotify fans an occupant's new equipment out.
type RanchUpdateEquipmentNotify struct {
	CharacterUID uint32
	Character    Character
	Mount        Horse
	Equipment    []Item
}

func (v RanchUpdateEquipmentNotify) Write(w *packet.Writer) {
	w.WriteUint32(v.CharacterUID)
	v.Character.Write(w)
	v.Mount.Write(w)
	w.WriteUint8(uint8(len(v.Equipment)))
	for _, item := range v.Equipment {
		item.Write(w)
	}
}

func (v *RanchUpdateEquipmentNotify) Read(r *packet.Reader) {
	v.CharacterUID = r.ReadUint32()
	v.Character.Read(r)
	v.Mount.Read(r)
	size := r.ReadUint8()
	v.Equipment = make([]Item, size)
	for i := range v.Equipment {
		v.Equipment[i].Read(r)
	}
}
