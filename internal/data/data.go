// Package data defines the persistent entities. Every entity carries an
// immutable UID allocated monotonically at creation and, where relevant,
// a TID referencing a static content template. UID 0 and TID 0 are
// reserved as invalid.
package data

import "time"

// Uid is a 32-bit unique identifier of a persistent entity.
type Uid = uint32

// Tid is a 32-bit content-template identifier.
type Tid = uint32

const (
	InvalidUid Uid = 0
	InvalidTid Tid = 0
)

// Role of a character.
type Role uint8

const (
	RoleUser       Role = 0
	RoleGameMaster Role = 2
)

// User owns the login identity and the character binding. The token is
// stored as a bcrypt digest of the launcher-issued authorization key.
type User struct {
	Uid   Field[Uid]
	Name  Field[string]
	Token Field[string]

	CharacterUid Field[Uid]
	Infractions  Field[[]Uid]
}

// Punishment applied by an infraction.
type Punishment uint8

const (
	PunishmentNone Punishment = 0
	PunishmentMute Punishment = 1
	PunishmentBan  Punishment = 2
)

// Infraction is a moderation record held by a user.
type Infraction struct {
	Uid         Field[Uid]
	Punishment  Field[Punishment]
	Duration    Field[time.Duration]
	CreatedAt   Field[time.Time]
	Description Field[string]
}

// CharacterParts selects the character model and face parts.
type CharacterParts struct {
	ModelId Field[uint32]
	MouthId Field[uint32]
	FaceId  Field[uint32]
}

// CharacterAppearance carries the figure sliders.
type CharacterAppearance struct {
	VoiceId     Field[uint32]
	HeadSize    Field[uint32]
	Height      Field[uint32]
	ThighVolume Field[uint32]
	LegVolume   Field[uint32]
	EmblemId    Field[uint32]
}

// Character is the user's in-game persona. Aggregates are owned
// exclusively and live exactly as long as the character.
type Character struct {
	Uid  Field[Uid]
	Name Field[string]

	Role         Field[Role]
	Level        Field[uint16]
	Carrots      Field[int32]
	Cash         Field[uint32]
	Status       Field[string]
	Introduction Field[string]
	AgeGroup     Field[uint8]
	Gender       Field[uint8]

	Parts      CharacterParts
	Appearance CharacterAppearance

	// Ordered collections of item UIDs.
	Inventory          Field[[]Uid]
	CharacterEquipment Field[[]Uid]
	MountEquipment     Field[[]Uid]

	Horses Field[[]Uid]
	// MountUid is the currently ridden horse; a member of Horses or 0.
	MountUid Field[Uid]
	RanchUid Field[Uid]

	GiftStorage     Field[[]Uid]
	PurchaseStorage Field[[]Uid]

	Muted       Field[bool]
	RanchLocked Field[bool]
}

// HorseParts selects the horse body part templates.
type HorseParts struct {
	SkinTid Field[Tid]
	ManeTid Field[Tid]
	TailTid Field[Tid]
	FaceTid Field[Tid]
}

// HorseAppearance carries the horse figure scalars.
type HorseAppearance struct {
	Scale      Field[uint32]
	LegLength  Field[uint32]
	LegVolume  Field[uint32]
	BodyLength Field[uint32]
	BodyVolume Field[uint32]
}

// HorseStats are the five core performance stats.
type HorseStats struct {
	Agility  Field[uint32]
	Control  Field[uint32]
	Speed    Field[uint32]
	Strength Field[uint32]
	Spirit   Field[uint32]
}

// HorseMastery holds the cumulative mastery counters.
type HorseMastery struct {
	SpurMagicCount  Field[uint32]
	JumpCount       Field[uint32]
	SlidingTime     Field[uint32]
	GlidingDistance Field[uint32]
}

// HorseCondition is the mount condition block.
type HorseCondition struct {
	Stamina         Field[uint16]
	Charm           Field[uint16]
	Friendliness    Field[uint16]
	Injury          Field[uint16]
	Plenitude       Field[uint16]
	BodyDirtiness   Field[uint16]
	ManeDirtiness   Field[uint16]
	TailDirtiness   Field[uint16]
	Attachment      Field[uint16]
	Boredom         Field[uint16]
	BodyPolish      Field[uint16]
	ManePolish      Field[uint16]
	TailPolish      Field[uint16]
	StopAmendsPoint Field[uint16]
}

// Horse is a persistent horse record.
type Horse struct {
	Uid  Field[Uid]
	Tid  Field[Tid]
	Name Field[string]

	Parts      HorseParts
	Appearance HorseAppearance
	Stats      HorseStats
	Mastery    HorseMastery
	Condition  HorseCondition

	Rating         Field[uint32]
	Class          Field[uint8]
	ClassProgress  Field[uint8]
	Grade          Field[uint8]
	GrowthPoints   Field[uint16]
	PotentialType  Field[uint8]
	PotentialLevel Field[uint8]
	LuckState      Field[uint8]
	Emblem         Field[uint16]
	DateOfBirth    Field[time.Time]
}

// Item is a persistent inventory item: a template reference, a count and
// an expiry. Count 0 with a finite expiry represents timed ownership.
type Item struct {
	Uid       Field[Uid]
	Tid       Field[Tid]
	Count     Field[uint32]
	ExpiresAt Field[time.Time]
}

// StorageItem is a bundle wrapping one or more items with a sender and a
// message, used for the gift inbox and shop delivery.
type StorageItem struct {
	Uid       Field[Uid]
	Items     Field[[]Uid]
	Sender    Field[string]
	Message   Field[string]
	CreatedAt Field[time.Time]
	Checked   Field[bool]
	Expired   Field[bool]
}

// RanchHousing is a built housing entry on a ranch.
type RanchHousing struct {
	Uid        Field[Uid]
	Tid        Field[Tid]
	Durability Field[uint32]
	ExpiresAt  Field[time.Time]
}

// Ranch is a character's persistent world location. Owner is the
// rancher's character UID.
type Ranch struct {
	Uid     Field[Uid]
	Owner   Field[Uid]
	Name    Field[string]
	Housing Field[[]Uid]
}

// Housing is a persistent housing record.
type Housing struct {
	Uid        Field[Uid]
	Tid        Field[Tid]
	Durability Field[uint32]
	ExpiresAt  Field[time.Time]
}

// Guild is a persistent guild record.
type Guild struct {
	Uid         Field[Uid]
	Name        Field[string]
	Description Field[string]
}

// Pet is a persistent pet record.
type Pet struct {
	Uid       Field[Uid]
	Tid       Field[Tid]
	Name      Field[string]
	BirthDate Field[time.Time]
}

// Egg is an incubating egg record.
type Egg struct {
	Uid         Field[Uid]
	ItemTid     Field[Tid]
	IncubatedAt Field[time.Time]
	HatchesAt   Field[time.Time]
	Boost       Field[uint32]
}
