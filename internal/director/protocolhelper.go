package director

import (
	"time"

	"github.com/aliciago/server/internal/data"
	"github.com/aliciago/server/internal/data/cache"
	"github.com/aliciago/server/internal/proto"
)

// protocolCharacter builds the wire character from a character record
// view.
func protocolCharacter(character *data.Character) proto.Character {
	return proto.Character{
		Parts: proto.CharacterParts{
			CharID:        uint8(character.Parts.ModelId.Get()),
			MouthSerialID: uint8(character.Parts.MouthId.Get()),
			FaceSerialID:  uint8(character.Parts.FaceId.Get()),
		},
		Appearance: proto.CharacterAppearance{
			VoiceID:     uint16(character.Appearance.VoiceId.Get()),
			HeadSize:    uint16(character.Appearance.HeadSize.Get()),
			Height:      uint16(character.Appearance.Height.Get()),
			ThighVolume: uint16(character.Appearance.ThighVolume.Get()),
			LegVolume:   uint16(character.Appearance.LegVolume.Get()),
			EmblemID:    uint16(character.Appearance.EmblemId.Get()),
		},
	}
}

// protocolHorse builds the wire horse from a horse record view.
func protocolHorse(horse *data.Horse) proto.Horse {
	return proto.Horse{
		UID:  horse.Uid.Get(),
		TID:  horse.Tid.Get(),
		Name: horse.Name.Get(),
		Parts: proto.HorseParts{
			SkinID: uint8(horse.Parts.SkinTid.Get()),
			ManeID: uint8(horse.Parts.ManeTid.Get()),
			TailID: uint8(horse.Parts.TailTid.Get()),
			FaceID: uint8(horse.Parts.FaceTid.Get()),
		},
		Appearance: proto.HorseAppearance{
			Scale:      uint8(horse.Appearance.Scale.Get()),
			LegLength:  uint8(horse.Appearance.LegLength.Get()),
			LegVolume:  uint8(horse.Appearance.LegVolume.Get()),
			BodyLength: uint8(horse.Appearance.BodyLength.Get()),
			BodyVolume: uint8(horse.Appearance.BodyVolume.Get()),
		},
		Stats: proto.HorseStats{
			Agility:  horse.Stats.Agility.Get(),
			Control:  horse.Stats.Control.Get(),
			Speed:    horse.Stats.Speed.Get(),
			Strength: horse.Stats.Strength.Get(),
			Spirit:   horse.Stats.Spirit.Get(),
		},
		Rating:        horse.Rating.Get(),
		Class:         horse.Class.Get(),
		ClassProgress: horse.ClassProgress.Get(),
		Grade:         horse.Grade.Get(),
		GrowthPoints:  horse.GrowthPoints.Get(),
		Condition: proto.HorseCondition{
			Stamina:         horse.Condition.Stamina.Get(),
			CharmPoint:      horse.Condition.Charm.Get(),
			FriendlyPoint:   horse.Condition.Friendliness.Get(),
			InjuryPoint:     horse.Condition.Injury.Get(),
			Plenitude:       horse.Condition.Plenitude.Get(),
			BodyDirtiness:   horse.Condition.BodyDirtiness.Get(),
			ManeDirtiness:   horse.Condition.ManeDirtiness.Get(),
			TailDirtiness:   horse.Condition.TailDirtiness.Get(),
			Attachment:      horse.Condition.Attachment.Get(),
			Boredom:         horse.Condition.Boredom.Get(),
			BodyPolish:      horse.Condition.BodyPolish.Get(),
			ManePolish:      horse.Condition.ManePolish.Get(),
			TailPolish:      horse.Condition.TailPolish.Get(),
			StopAmendsPoint: horse.Condition.StopAmendsPoint.Get(),
		},
		Vitality: proto.HorseVitality{
			DateOfBirth:    proto.TimeToPacked(horse.DateOfBirth.Get()),
			PotentialLevel: horse.PotentialLevel.Get(),
			HasPotential:   boolByte(horse.PotentialType.Get() != 0),
			PotentialValue: horse.PotentialType.Get(),
			Luck:           horse.LuckState.Get(),
			Emblem:         horse.Emblem.Get(),
		},
		Mastery: proto.HorseMastery{
			SpurMagicCount:  horse.Mastery.SpurMagicCount.Get(),
			JumpCount:       horse.Mastery.JumpCount.Get(),
			SlidingTime:     horse.Mastery.SlidingTime.Get(),
			GlidingDistance: horse.Mastery.GlidingDistance.Get(),
		},
	}
}

// protocolItems resolves item records into wire items, preserving the
// order of the UID list.
func protocolItems(records []cache.Record[data.Item]) []proto.Item {
	items := make([]proto.Item, 0, len(records))
	for _, record := range records {
		record.Immutable(func(item *data.Item) {
			items = append(items, proto.Item{
				UID:       item.Uid.Get(),
				TID:       item.Tid.Get(),
				ExpiresAt: expiryUint32(item.ExpiresAt.Get()),
				Count:     item.Count.Get(),
			})
		})
	}
	return items
}

// expiryUint32 encodes an item expiry; the zero time means no expiry.
func expiryUint32(t time.Time) uint32 {
	if t.IsZero() {
		return 0
	}
	return proto.TimeToPacked(t)
}

func boolByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}
