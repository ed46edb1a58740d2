package proto

import "github.com/aliciago/server/internal/net/packet"

// Gender of a character profile.
type Gender uint8

const (
	GenderUnspecified Gender = 0
	GenderBoy         Gender = 1
	GenderGirl        Gender = 2
)

// Role of a character within an instance.
type Role uint8

const (
	RoleUser       Role = 0
	RoleOp         Role = 1
	RoleGameMaster Role = 2
)

// OptionType is the bitmask gating which option sub-records are present
// in the login reply.
type OptionType uint32

const (
	OptionKeyboard OptionType = 1 << 0
	OptionMacros   OptionType = 1 << 3
	OptionValue    OptionType = 1 << 4
	OptionGamepad  OptionType = 1 << 5
)

// AgeGroup of the logged-in user.
type AgeGroup uint8

const (
	AgeKid          AgeGroup = 0
	AgeTeenager     AgeGroup = 1
	AgeHighschooler AgeGroup = 2
	AgeAdult        AgeGroup = 3
)

// GameMode of a race room.
type GameMode uint8

const (
	GameModeNothing  GameMode = 0
	GameModeSpeed    GameMode = 1
	GameModeMagic    GameMode = 2
	GameModeGuild    GameMode = 3
	GameModeTutorial GameMode = 6
)

// TeamMode of a race room.
type TeamMode uint8

const (
	TeamModeSingle TeamMode = 1
	TeamModeTeam   TeamMode = 2
)

// Item is the wire representation of an inventory item.
type Item struct {
	UID       uint32
	TID       uint32
	ExpiresAt uint32
	Count     uint32
}

func (v Item) Write(w *packet.Writer) {
	w.WriteUint32(v.UID)
	w.WriteUint32(v.TID)
	w.WriteUint32(v.ExpiresAt)
	w.WriteUint32(v.Count)
}

func (v *Item) Read(r *packet.Reader) {
	v.UID = r.ReadUint32()
	v.TID = r.ReadUint32()
	v.ExpiresAt = r.ReadUint32()
	v.Count = r.ReadUint32()
}

// StoredItemStatus of a storage bundle.
type StoredItemStatus uint8

const (
	StoredItemUnread  StoredItemStatus = 0
	StoredItemExpired StoredItemStatus = 1
	StoredItemRead    StoredItemStatus = 2
)

// StoredItem is a gift or shop-delivery bundle in the character storage.
type StoredItem struct {
	UID      uint32
	Val1     uint32
	Status   StoredItemStatus
	Val3     uint32
	Val4     uint32
	Val5     uint32
	Val6     uint32
	Sender   string
	Message  string
	DateTime uint32
}

func (v StoredItem) Write(w *packet.Writer) {
	w.WriteUint32(v.UID)
	w.WriteUint32(v.Val1)
	w.WriteUint8(uint8(v.Status))
	w.WriteUint32(v.Val3)
	w.WriteUint32(v.Val4)
	w.WriteUint32(v.Val5)
	w.WriteUint32(v.Val6)
	w.WriteString(v.Sender)
	w.WriteString(v.Message)
	w.WriteUint32(v.DateTime)
}

func (v *StoredItem) Read(r *packet.Reader) {
	v.UID = r.ReadUint32()
	v.Val1 = r.ReadUint32()
	v.Status = StoredItemStatus(r.ReadUint8())
	v.Val3 = r.ReadUint32()
	v.Val4 = r.ReadUint32()
	v.Val5 = r.ReadUint32()
	v.Val6 = r.ReadUint32()
	v.Sender = r.ReadString()
	v.Message = r.ReadString()
	v.DateTime = r.ReadUint32()
}

// KeyboardBinding is a single key binding option.
type KeyboardBinding struct {
	Index uint16
	Type  uint8
	Key   uint8
}

// KeyboardOptions carries the keyboard bindings, size-prefixed with u8.
type KeyboardOptions struct {
	Bindings []KeyboardBinding
}

func (v KeyboardOptions) Write(w *packet.Writer) {
	w.WriteUint8(uint8(len(v.Bindings)))
	for _, b := range v.Bindings {
		w.WriteUint16(b.Index)
		w.WriteUint8(b.Type)
		w.WriteUint8(b.Key)
	}
}

func (v *KeyboardOptions) Read(r *packet.Reader) {
	size := r.ReadUint8()
	v.Bindings = make([]KeyboardBinding, size)
	for i := range v.Bindings {
		v.Bindings[i].Index = r.ReadUint16()
		v.Bindings[i].Type = r.ReadUint8()
		v.Bindings[i].Key = r.ReadUint8()
	}
}

// MacroOptions is the fixed array of eight chat macros.
type MacroOptions struct {
	Macros [8]string
}

func (v MacroOptions) Write(w *packet.Writer) {
	for _, m := range v.Macros {
		w.WriteString(m)
	}
}

func (v *MacroOptions) Read(r *packet.Reader) {
	for i := range v.Macros {
		v.Macros[i] = r.ReadString()
	}
}

// CharacterParts selects the character model and face parts.
type CharacterParts struct {
	CharID        uint8
	MouthSerialID uint8
	FaceSerialID  uint8
	Val0          uint8
}

func (v CharacterParts) Write(w *packet.Writer) {
	w.WriteUint8(v.CharID)
	w.WriteUint8(v.MouthSerialID)
	w.WriteUint8(v.FaceSerialID)
	w.WriteUint8(v.Val0)
}

func (v *CharacterParts) Read(r *packet.Reader) {
	v.CharID = r.ReadUint8()
	v.MouthSerialID = r.ReadUint8()
	v.FaceSerialID = r.ReadUint8()
	v.Val0 = r.ReadUint8()
}

// CharacterAppearance carries the figure sliders.
type CharacterAppearance struct {
	VoiceID     uint16
	HeadSize    uint16
	Height      uint16
	ThighVolume uint16
	LegVolume   uint16
	EmblemID    uint16
}

func (v CharacterAppearance) Write(w *packet.Writer) {
	w.WriteUint16(v.VoiceID)
	w.WriteUint16(v.HeadSize)
	w.WriteUint16(v.Height)
	w.WriteUint16(v.ThighVolume)
	w.WriteUint16(v.LegVolume)
	w.WriteUint16(v.EmblemID)
}

func (v *CharacterAppearance) Read(r *packet.Reader) {
	v.VoiceID = r.ReadUint16()
	v.HeadSize = r.ReadUint16()
	v.Height = r.ReadUint16()
	v.ThighVolume = r.ReadUint16()
	v.LegVolume = r.ReadUint16()
	v.EmblemID = r.ReadUint16()
}

// Character is the protocol-embedded character record.
type Character struct {
	Parts      CharacterParts
	Appearance CharacterAppearance
}

func (v Character) Write(w *packet.Writer) {
	v.Parts.Write(w)
	v.Appearance.Write(w)
}

func (v *Character) Read(r *packet.Reader) {
	v.Parts.Read(r)
	v.Appearance.Read(r)
}

// HorseParts selects the horse body parts.
type HorseParts struct {
	SkinID uint8
	ManeID uint8
	TailID uint8
	FaceID uint8
}

func (v HorseParts) Write(w *packet.Writer) {
	w.WriteUint8(v.SkinID)
	w.WriteUint8(v.ManeID)
	w.WriteUint8(v.TailID)
	w.WriteUint8(v.FaceID)
}

func (v *HorseParts) Read(r *packet.Reader) {
	v.SkinID = r.ReadUint8()
	v.ManeID = r.ReadUint8()
	v.TailID = r.ReadUint8()
	v.FaceID = r.ReadUint8()
}

// HorseAppearance carries the horse figure scalars.
type HorseAppearance struct {
	Scale      uint8
	LegLength  uint8
	LegVolume  uint8
	BodyLength uint8
	BodyVolume uint8
}

func (v HorseAppearance) Write(w *packet.Writer) {
	w.WriteUint8(v.Scale)
	w.WriteUint8(v.LegLength)
	w.WriteUint8(v.LegVolume)
	w.WriteUint8(v.BodyLength)
	w.WriteUint8(v.BodyVolume)
}

func (v *HorseAppearance) Read(r *packet.Reader) {
	v.Scale = r.ReadUint8()
	v.LegLength = r.ReadUint8()
	v.LegVolume = r.ReadUint8()
	v.BodyLength = r.ReadUint8()
	v.BodyVolume = r.ReadUint8()
}

// HorseStats are the five core performance stats.
type HorseStats struct {
	Agility  uint32
	Control  uint32
	Speed    uint32
	Strength uint32
	Spirit   uint32
}

func (v HorseStats) Write(w *packet.Writer) {
	w.WriteUint32(v.Agility)
	w.WriteUint32(v.Control)
	w.WriteUint32(v.Speed)
	w.WriteUint32(v.Strength)
	w.WriteUint32(v.Spirit)
}

func (v *HorseStats) Read(r *packet.Reader) {
	v.Agility = r.ReadUint32()
	v.Control = r.ReadUint32()
	v.Speed = r.ReadUint32()
	v.Strength = r.ReadUint32()
	v.Spirit = r.ReadUint32()
}

// HorseMastery holds the four cumulative mastery counters.
type HorseMastery struct {
	SpurMagicCount  uint32
	JumpCount       uint32
	SlidingTime     uint32
	GlidingDistance uint32
}

func (v HorseMastery) Write(w *packet.Writer) {
	w.WriteUint32(v.SpurMagicCount)
	w.WriteUint32(v.JumpCount)
	w.WriteUint32(v.SlidingTime)
	w.WriteUint32(v.GlidingDistance)
}

func (v *HorseMastery) Read(r *packet.Reader) {
	v.SpurMagicCount = r.ReadUint32()
	v.JumpCount = r.ReadUint32()
	v.SlidingTime = r.ReadUint32()
	v.GlidingDistance = r.ReadUint32()
}

// HorseCondition is the mount condition block; ranges are client-display
// conventions (stamina 0..4000, plenitude 0..1200, dirtiness 0..600).
type HorseCondition struct {
	Stamina         uint16
	CharmPoint      uint16
	FriendlyPoint   uint16
	InjuryPoint     uint16
	Plenitude       uint16
	BodyDirtiness   uint16
	ManeDirtiness   uint16
	TailDirtiness   uint16
	Attachment      uint16
	Boredom         uint16
	BodyPolish      uint16
	ManePolish      uint16
	TailPolish      uint16
	StopAmendsPoint uint16
}

func (v HorseCondition) Write(w *packet.Writer) {
	w.WriteUint16(v.Stamina)
	w.WriteUint16(v.CharmPoint)
	w.WriteUint16(v.FriendlyPoint)
	w.WriteUint16(v.InjuryPoint)
	w.WriteUint16(v.Plenitude)
	w.WriteUint16(v.BodyDirtiness)
	w.WriteUint16(v.ManeDirtiness)
	w.WriteUint16(v.TailDirtiness)
	w.WriteUint16(v.Attachment)
	w.WriteUint16(v.Boredom)
	w.WriteUint16(v.BodyPolish)
	w.WriteUint16(v.ManePolish)
	w.WriteUint16(v.TailPolish)
	w.WriteUint16(v.StopAmendsPoint)
}

func (v *HorseCondition) Read(r *packet.Reader) {
	v.Stamina = r.ReadUint16()
	v.CharmPoint = r.ReadUint16()
	v.FriendlyPoint = r.ReadUint16()
	v.InjuryPoint = r.ReadUint16()
	v.Plenitude = r.ReadUint16()
	v.BodyDirtiness = r.ReadUint16()
	v.ManeDirtiness = r.ReadUint16()
	v.TailDirtiness = r.ReadUint16()
	v.Attachment = r.ReadUint16()
	v.Boredom = r.ReadUint16()
	v.BodyPolish = r.ReadUint16()
	v.ManePolish = r.ReadUint16()
	v.TailPolish = r.ReadUint16()
	v.StopAmendsPoint = r.ReadUint16()
}

// HorseVitality groups the typed/untyped fields between the growth tuple
// and the mastery block. The ValN fields are preserved verbatim.
type HorseVitality struct {
	Type             uint8
	Val1             uint32
	DateOfBirth      uint32
	Tendency         uint8
	Spirit           uint8
	ClassProgression uint32
	Val5             uint32
	PotentialLevel   uint8
	HasPotential     uint8
	PotentialValue   uint8
	Val9             uint8
	Luck             uint8
	Injury           uint8
	Val12            uint8
	Fatigue          uint16
	Val14            uint16
	Emblem           uint16
}

func (v HorseVitality) Write(w *packet.Writer) {
	w.WriteUint8(v.Type)
	w.WriteUint32(v.Val1)
	w.WriteUint32(v.DateOfBirth)
	w.WriteUint8(v.Tendency)
	w.WriteUint8(v.Spirit)
	w.WriteUint32(v.ClassProgression)
	w.WriteUint32(v.Val5)
	w.WriteUint8(v.PotentialLevel)
	w.WriteUint8(v.HasPotential)
	w.WriteUint8(v.PotentialValue)
	w.WriteUint8(v.Val9)
	w.WriteUint8(v.Luck)
	w.WriteUint8(v.Injury)
	w.WriteUint8(v.Val12)
	w.WriteUint16(v.Fatigue)
	w.WriteUint16(v.Val14)
	w.WriteUint16(v.Emblem)
}

func (v *HorseVitality) Read(r *packet.Reader) {
	v.Type = r.ReadUint8()
	v.Val1 = r.ReadUint32()
	v.DateOfBirth = r.ReadUint32()
	v.Tendency = r.ReadUint8()
	v.Spirit = r.ReadUint8()
	v.ClassProgression = r.ReadUint32()
	v.Val5 = r.ReadUint32()
	v.PotentialLevel = r.ReadUint8()
	v.HasPotential = r.ReadUint8()
	v.PotentialValue = r.ReadUint8()
	v.Val9 = r.ReadUint8()
	v.Luck = r.ReadUint8()
	v.Injury = r.ReadUint8()
	v.Val12 = r.ReadUint8()
	v.Fatigue = r.ReadUint16()
	v.Val14 = r.ReadUint16()
	v.Emblem = r.ReadUint16()
}

// Horse is the protocol-embedded horse record.
type Horse struct {
	UID  uint32
	TID  uint32
	Name string

	Parts      HorseParts
	Appearance HorseAppearance
	Stats      HorseStats

	Rating        uint32
	Class         uint8
	ClassProgress uint8
	Grade         uint8
	GrowthPoints  uint16

	Condition HorseCondition
	Vitality  HorseVitality
	Mastery   HorseMastery

	Val16 uint32
	Val17 uint32
}

func (v Horse) Write(w *packet.Writer) {
	w.WriteUint32(v.UID)
	w.WriteUint32(v.TID)
	w.WriteString(v.Name)

	v.Parts.Write(w)
	v.Appearance.Write(w)
	v.Stats.Write(w)

	w.WriteUint32(v.Rating)
	w.WriteUint8(v.Class)
	w.WriteUint8(v.ClassProgress)
	w.WriteUint8(v.Grade)
	w.WriteUint16(v.GrowthPoints)

	v.Condition.Write(w)
	v.Vitality.Write(w)
	v.Mastery.Write(w)

	w.WriteUint32(v.Val16)
	w.WriteUint32(v.Val17)
}

func (v *Horse) Read(r *packet.Reader) {
	v.UID = r.ReadUint32()
	v.TID = r.ReadUint32()
	v.Name = r.ReadString()

	v.Parts.Read(r)
	v.Appearance.Read(r)
	v.Stats.Read(r)

	v.Rating = r.ReadUint32()
	v.Class = r.ReadUint8()
	v.ClassProgress = r.ReadUint8()
	v.Grade = r.ReadUint8()
	v.GrowthPoints = r.ReadUint16()

	v.Condition.Read(r)
	v.Vitality.Read(r)
	v.Mastery.Read(r)

	v.Val16 = r.ReadUint32()
	v.Val17 = r.ReadUint32()
}

// Guild is the protocol-embedded guild record.
type Guild struct {
	UID  uint32
	Val1 uint8
	Val2 uint32
	Name string
	Val4 uint8
	Val5 uint32
	Val6 uint8
}

func (v Guild) Write(w *packet.Writer) {
	w.WriteUint32(v.UID)
	w.WriteUint8(v.Val1)
	w.WriteUint32(v.Val2)
	w.WriteString(v.Name)
	w.WriteUint8(v.Val4)
	w.WriteUint32(v.Val5)
	w.WriteUint8(v.Val6)
}

func (v *Guild) Read(r *packet.Reader) {
	v.UID = r.ReadUint32()
	v.Val1 = r.ReadUint8()
	v.Val2 = r.ReadUint32()
	v.Name = r.ReadString()
	v.Val4 = r.ReadUint8()
	v.Val5 = r.ReadUint32()
	v.Val6 = r.ReadUint8()
}

// Rent describes a rented mount.
type Rent struct {
	MountUID uint32
	Val1     uint32
	Val2     uint32
}

func (v Rent) Write(w *packet.Writer) {
	w.WriteUint32(v.MountUID)
	w.WriteUint32(v.Val1)
	w.WriteUint32(v.Val2)
}

func (v *Rent) Read(r *packet.Reader) {
	v.MountUID = r.ReadUint32()
	v.Val1 = r.ReadUint32()
	v.Val2 = r.ReadUint32()
}

// Pet is the protocol-embedded pet record.
type Pet struct {
	UID       uint32
	TID       uint32
	Name      string
	BirthDate uint32
}

func (v Pet) Write(w *packet.Writer) {
	w.WriteUint32(v.UID)
	w.WriteUint32(v.TID)
	w.WriteString(v.Name)
	w.WriteUint32(v.BirthDate)
}

func (v *Pet) Read(r *packet.Reader) {
	v.UID = r.ReadUint32()
	v.TID = r.ReadUint32()
	v.Name = r.ReadString()
	v.BirthDate = r.ReadUint32()
}

// PetInfo couples a pet with its owner and the originating item.
type PetInfo struct {
	CharacterUID uint32
	ItemUID      uint32
	Pet          Pet
	Member4      uint32
}

func (v PetInfo) Write(w *packet.Writer) {
	w.WriteUint32(v.CharacterUID)
	w.WriteUint32(v.ItemUID)
	v.Pet.Write(w)
	w.WriteUint32(v.Member4)
}

func (v *PetInfo) Read(r *packet.Reader) {
	v.CharacterUID = r.ReadUint32()
	v.ItemUID = r.ReadUint32()
	v.Pet.Read(r)
	v.Member4 = r.ReadUint32()
}

// Egg is an incubator slot entry.
type Egg struct {
	UID               uint32
	ItemTID           uint32
	Member3           uint32
	Member4           uint8
	Member5           uint32
	TimeRemaining     uint32
	Boost             uint32
	TotalHatchingTime uint32
	Member9           uint32
}

func (v Egg) Write(w *packet.Writer) {
	w.WriteUint32(v.UID)
	w.WriteUint32(v.ItemTID)
	w.WriteUint32(v.Member3)
	w.WriteUint8(v.Member4)
	w.WriteUint32(v.Member5)
	w.WriteUint32(v.TimeRemaining)
	w.WriteUint32(v.Boost)
	w.WriteUint32(v.TotalHatchingTime)
	w.WriteUint32(v.Member9)
}

func (v *Egg) Read(r *packet.Reader) {
	v.UID = r.ReadUint32()
	v.ItemTID = r.ReadUint32()
	v.Member3 = r.ReadUint32()
	v.Member4 = r.ReadUint8()
	v.Member5 = r.ReadUint32()
	v.TimeRemaining = r.ReadUint32()
	v.Boost = r.ReadUint32()
	v.TotalHatchingTime = r.ReadUint32()
	v.Member9 = r.ReadUint32()
}

// RanchHorse couples a ranch-resident horse with its instance OID.
type RanchHorse struct {
	OID   uint16
	Horse Horse
}

func (v RanchHorse) Write(w *packet.Writer) {
	w.WriteUint16(v.OID)
	v.Horse.Write(w)
}

func (v *RanchHorse) Read(r *packet.Reader) {
	v.OID = r.ReadUint16()
	v.Horse.Read(r)
}

// RanchCharacter is the full occupant aggregate broadcast on ranch entry.
type RanchCharacter struct {
	UID          uint32
	Name         string
	Role         Role
	Age          uint8
	Gender       uint8
	Introduction string

	Character Character
	Mount     Horse

	CharacterEquipment []Item

	Guild Guild

	OID    uint16
	IsBusy uint8
	Unk3   uint8

	Rent Rent
	Pet  Pet

	Unk4 uint8
	Unk5 uint8
}

func (v RanchCharacter) Write(w *packet.Writer) {
	w.WriteUint32(v.UID)
	w.WriteString(v.Name)
	w.WriteUint8(uint8(v.Role))
	w.WriteUint8(v.Age)
	w.WriteUint8(v.Gender)
	w.WriteString(v.Introduction)

	v.Character.Write(w)
	v.Mount.Write(w)

	w.WriteUint8(uint8(len(v.CharacterEquipment)))
	for _, item := range v.CharacterEquipment {
		item.Write(w)
	}

	v.Guild.Write(w)

	w.WriteUint16(v.OID)
	w.WriteUint8(v.IsBusy)
	w.WriteUint8(v.Unk3)

	v.Rent.Write(w)
	v.Pet.Write(w)

	w.WriteUint8(v.Unk4)
	w.WriteUint8(v.Unk5)
}

func (v *RanchCharacter) Read(r *packet.Reader) {
	v.UID = r.ReadUint32()
	v.Name = r.ReadString()
	v.Role = Role(r.ReadUint8())
	v.Age = r.ReadUint8()
	v.Gender = r.ReadUint8()
	v.Introduction = r.ReadString()

	v.Character.Read(r)
	v.Mount.Read(r)

	size := r.ReadUint8()
	v.CharacterEquipment = make([]Item, size)
	for i := range v.CharacterEquipment {
		v.CharacterEquipment[i].Read(r)
	}

	v.Guild.Read(r)

	v.OID = r.ReadUint16()
	v.IsBusy = r.ReadUint8()
	v.Unk3 = r.ReadUint8()

	v.Rent.Read(r)
	v.Pet.Read(r)

	v.Unk4 = r.ReadUint8()
	v.Unk5 = r.ReadUint8()
}

// Quest is an achievement/quest progress entry.
type Quest struct {
	TID     uint16
	Member0 uint32
	Member1 uint8
	Member2 uint32
	Member3 uint8
	Member4 uint8
}

func (v Quest) Write(w *packet.Writer) {
	w.WriteUint16(v.TID)
	w.WriteUint32(v.Member0)
	w.WriteUint8(v.Member1)
	w.WriteUint32(v.Member2)
	w.WriteUint8(v.Member3)
	w.WriteUint8(v.Member4)
}

func (v *Quest) Read(r *packet.Reader) {
	v.TID = r.ReadUint16()
	v.Member0 = r.ReadUint32()
	v.Member1 = r.ReadUint8()
	v.Member2 = r.ReadUint32()
	v.Member3 = r.ReadUint8()
	v.Member4 = r.ReadUint8()
}

// Housing is a ranch housing entry.
type Housing struct {
	UID        uint32
	TID        uint16
	Durability uint32
}

func (v Housing) Write(w *packet.Writer) {
	w.WriteUint32(v.UID)
	w.WriteUint16(v.TID)
	w.WriteUint32(v.Durability)
}

func (v *Housing) Read(r *packet.Reader) {
	v.UID = r.ReadUint32()
	v.TID = r.ReadUint16()
	v.Durability = r.ReadUint32()
}

// LeagueType tiers.
type LeagueType uint8

const (
	LeagueNone     LeagueType = 0
	LeagueBronze   LeagueType = 1
	LeagueSilver   LeagueType = 2
	LeagueGold     LeagueType = 3
	LeaguePlatinum LeagueType = 4
)

// League is the league standing summary.
type League struct {
	Type LeagueType
	// Rank percentile as a whole number in <0, 100>.
	RankingPercentile uint8
}

func (v League) Write(w *packet.Writer) {
	w.WriteUint8(uint8(v.Type))
	w.WriteUint8(v.RankingPercentile)
}

func (v *League) Read(r *packet.Reader) {
	v.Type = LeagueType(r.ReadUint8())
	v.RankingPercentile = r.ReadUint8()
}
