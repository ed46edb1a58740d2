package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aliciago/server/internal/data"
)

// FileSource keeps one JSON document per entity under the base path:
// <basePath>/{users,characters,horses,ranches,items,storage,housing,
// infractions}/<key>.json, plus meta.json holding the UID allocator.
// Stores rewrite each file atomically.
type FileSource struct {
	basePath string

	mu            sync.Mutex
	sequentialUid data.Uid
}

func NewFileSource(basePath string) *FileSource {
	return &FileSource{basePath: basePath}
}

func (s *FileSource) Initialize() error {
	for _, dir := range []string{
		"users", "characters", "horses", "ranches",
		"items", "storage", "housing", "infractions",
	} {
		if err := os.MkdirAll(filepath.Join(s.basePath, dir), 0o755); err != nil {
			return fmt.Errorf("create %s directory: %w", dir, err)
		}
	}

	meta := struct {
		SequentialUid data.Uid `json:"sequentialUid"`
	}{}
	err := readJSON(filepath.Join(s.basePath, "meta.json"), &meta)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read meta: %w", err)
	}
	s.sequentialUid = meta.SequentialUid
	return nil
}

func (s *FileSource) Terminate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeMeta()
}

func (s *FileSource) writeMeta() error {
	meta := struct {
		SequentialUid data.Uid `json:"sequentialUid"`
	}{SequentialUid: s.sequentialUid}
	return writeJSON(filepath.Join(s.basePath, "meta.json"), meta)
}

func (s *FileSource) NextUid() (data.Uid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sequentialUid++
	if err := s.writeMeta(); err != nil {
		return data.InvalidUid, err
	}
	return s.sequentialUid, nil
}

func readJSON(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// readEntity loads the document if it exists. A missing file is not an
// error: the record stays zero-valued, matching the retrieve contract.
func readEntity(path string, out any) error {
	err := readJSON(path, out)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// writeJSON rewrites the file atomically: write a temp file alongside,
// then rename over the target.
func writeJSON(path string, in any) error {
	raw, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *FileSource) entityPath(dir, key string) string {
	return filepath.Join(s.basePath, dir, key+".json")
}

// userDoc is the on-disk shape of a user.
type userDoc struct {
	Name         string     `json:"name"`
	Token        string     `json:"token"`
	CharacterUid data.Uid   `json:"characterUid"`
	Infractions  []data.Uid `json:"infractions"`
}

func (s *FileSource) RetrieveUser(name string, user *data.User) error {
	doc := userDoc{}
	if err := readEntity(s.entityPath("users", name), &doc); err != nil {
		return err
	}
	user.Name = data.NewField(doc.Name)
	user.Token = data.NewField(doc.Token)
	user.CharacterUid = data.NewField(doc.CharacterUid)
	user.Infractions = data.NewField(doc.Infractions)
	return nil
}

func (s *FileSource) StoreUser(name string, user *data.User) error {
	doc := userDoc{
		Name:         user.Name.Get(),
		Token:        user.Token.Get(),
		CharacterUid: user.CharacterUid.Get(),
		Infractions:  user.Infractions.Get(),
	}
	if err := writeJSON(s.entityPath("users", name), doc); err != nil {
		return err
	}
	clearUserModified(user)
	return nil
}

// characterDoc is the on-disk shape of a character.
type characterDoc struct {
	Uid          data.Uid  `json:"uid"`
	Name         string    `json:"name"`
	Role         data.Role `json:"role"`
	Level        uint16    `json:"level"`
	Carrots      int32     `json:"carrots"`
	Cash         uint32    `json:"cash"`
	Status       string    `json:"status"`
	Introduction string    `json:"introduction"`
	AgeGroup     uint8     `json:"ageGroup"`
	Gender       uint8     `json:"gender"`

	Parts struct {
		ModelId uint32 `json:"modelId"`
		MouthId uint32 `json:"mouthId"`
		FaceId  uint32 `json:"faceId"`
	} `json:"parts"`
	Appearance struct {
		VoiceId     uint32 `json:"voiceId"`
		HeadSize    uint32 `json:"headSize"`
		Height      uint32 `json:"height"`
		ThighVolume uint32 `json:"thighVolume"`
		LegVolume   uint32 `json:"legVolume"`
		EmblemId    uint32 `json:"emblemId"`
	} `json:"appearance"`

	Inventory          []data.Uid `json:"inventory"`
	CharacterEquipment []data.Uid `json:"characterEquipment"`
	MountEquipment     []data.Uid `json:"mountEquipment"`
	Horses             []data.Uid `json:"horses"`
	MountUid           data.Uid   `json:"mountUid"`
	RanchUid           data.Uid   `json:"ranchUid"`
	GiftStorage        []data.Uid `json:"giftStorage"`
	PurchaseStorage    []data.Uid `json:"purchaseStorage"`
	Muted              bool       `json:"muted"`
	RanchLocked        bool       `json:"ranchLocked"`
}

func (s *FileSource) RetrieveCharacter(uid data.Uid, character *data.Character) error {
	doc := characterDoc{}
	if err := readEntity(s.entityPath("characters", uidKey(uid)), &doc); err != nil {
		return err
	}
	applyCharacterDoc(&doc, character)
	return nil
}

func (s *FileSource) StoreCharacter(uid data.Uid, character *data.Character) error {
	doc := characterDoc{
		Uid:          character.Uid.Get(),
		Name:         character.Name.Get(),
		Role:         character.Role.Get(),
		Level:        character.Level.Get(),
		Carrots:      character.Carrots.Get(),
		Cash:         character.Cash.Get(),
		Status:       character.Status.Get(),
		Introduction: character.Introduction.Get(),
		AgeGroup:     character.AgeGroup.Get(),
		Gender:       character.Gender.Get(),

		Inventory:          character.Inventory.Get(),
		CharacterEquipment: character.CharacterEquipment.Get(),
		MountEquipment:     character.MountEquipment.Get(),
		Horses:             character.Horses.Get(),
		MountUid:           character.MountUid.Get(),
		RanchUid:           character.RanchUid.Get(),
		GiftStorage:        character.GiftStorage.Get(),
		PurchaseStorage:    character.PurchaseStorage.Get(),
		Muted:              character.Muted.Get(),
		RanchLocked:        character.RanchLocked.Get(),
	}
	doc.Parts.ModelId = character.Parts.ModelId.Get()
	doc.Parts.MouthId = character.Parts.MouthId.Get()
	doc.Parts.FaceId = character.Parts.FaceId.Get()
	doc.Appearance.VoiceId = character.Appearance.VoiceId.Get()
	doc.Appearance.HeadSize = character.Appearance.HeadSize.Get()
	doc.Appearance.Height = character.Appearance.Height.Get()
	doc.Appearance.ThighVolume = character.Appearance.ThighVolume.Get()
	doc.Appearance.LegVolume = character.Appearance.LegVolume.Get()
	doc.Appearance.EmblemId = character.Appearance.EmblemId.Get()

	if err := writeJSON(s.entityPath("characters", uidKey(uid)), doc); err != nil {
		return err
	}
	clearCharacterModified(character)
	return nil
}

// horseDoc is the on-disk shape of a horse.
type horseDoc struct {
	Uid  data.Uid `json:"uid"`
	Tid  data.Tid `json:"tid"`
	Name string   `json:"name"`

	Parts struct {
		SkinTid data.Tid `json:"skinTid"`
		ManeTid data.Tid `json:"maneTid"`
		TailTid data.Tid `json:"tailTid"`
		FaceTid data.Tid `json:"faceTid"`
	} `json:"parts"`
	Appearance struct {
		Scale      uint32 `json:"scale"`
		LegLength  uint32 `json:"legLength"`
		LegVolume  uint32 `json:"legVolume"`
		BodyLength uint32 `json:"bodyLength"`
		BodyVolume uint32 `json:"bodyVolume"`
	} `json:"appearance"`
	Stats struct {
		Agility  uint32 `json:"agility"`
		Control  uint32 `json:"control"`
		Speed    uint32 `json:"speed"`
		Strength uint32 `json:"strength"`
		Spirit   uint32 `json:"spirit"`
	} `json:"stats"`
	Mastery struct {
		SpurMagicCount  uint32 `json:"spurMagicCount"`
		JumpCount       uint32 `json:"jumpCount"`
		SlidingTime     uint32 `json:"slidingTime"`
		GlidingDistance uint32 `json:"glidingDistance"`
	} `json:"mastery"`
	Condition struct {
		Stamina         uint16 `json:"stamina"`
		Charm           uint16 `json:"charm"`
		Friendliness    uint16 `json:"friendliness"`
		Injury          uint16 `json:"injury"`
		Plenitude       uint16 `json:"plenitude"`
		BodyDirtiness   uint16 `json:"bodyDirtiness"`
		ManeDirtiness   uint16 `json:"maneDirtiness"`
		TailDirtiness   uint16 `json:"tailDirtiness"`
		Attachment      uint16 `json:"attachment"`
		Boredom         uint16 `json:"boredom"`
		BodyPolish      uint16 `json:"bodyPolish"`
		ManePolish      uint16 `json:"manePolish"`
		TailPolish      uint16 `json:"tailPolish"`
		StopAmendsPoint uint16 `json:"stopAmendsPoint"`
	} `json:"condition"`

	Rating         uint32    `json:"rating"`
	Class          uint8     `json:"class"`
	ClassProgress  uint8     `json:"classProgress"`
	Grade          uint8     `json:"grade"`
	GrowthPoints   uint16    `json:"growthPoints"`
	PotentialType  uint8     `json:"potentialType"`
	PotentialLevel uint8     `json:"potentialLevel"`
	LuckState      uint8     `json:"luckState"`
	Emblem         uint16    `json:"emblem"`
	DateOfBirth    time.Time `json:"dateOfBirth"`
}

func (s *FileSource) RetrieveHorse(uid data.Uid, horse *data.Horse) error {
	doc := horseDoc{}
	if err := readEntity(s.entityPath("horses", uidKey(uid)), &doc); err != nil {
		return err
	}
	applyHorseDoc(&doc, horse)
	return nil
}

func (s *FileSource) StoreHorse(uid data.Uid, horse *data.Horse) error {
	doc := horseDoc{
		Uid:            horse.Uid.Get(),
		Tid:            horse.Tid.Get(),
		Name:           horse.Name.Get(),
		Rating:         horse.Rating.Get(),
		Class:          horse.Class.Get(),
		ClassProgress:  horse.ClassProgress.Get(),
		Grade:          horse.Grade.Get(),
		GrowthPoints:   horse.GrowthPoints.Get(),
		PotentialType:  horse.PotentialType.Get(),
		PotentialLevel: horse.PotentialLevel.Get(),
		LuckState:      horse.LuckState.Get(),
		Emblem:         horse.Emblem.Get(),
		DateOfBirth:    horse.DateOfBirth.Get(),
	}
	doc.Parts.SkinTid = horse.Parts.SkinTid.Get()
	doc.Parts.ManeTid = horse.Parts.ManeTid.Get()
	doc.Parts.TailTid = horse.Parts.TailTid.Get()
	doc.Parts.FaceTid = horse.Parts.FaceTid.Get()
	doc.Appearance.Scale = horse.Appearance.Scale.Get()
	doc.Appearance.LegLength = horse.Appearance.LegLength.Get()
	doc.Appearance.LegVolume = horse.Appearance.LegVolume.Get()
	doc.Appearance.BodyLength = horse.Appearance.BodyLength.Get()
	doc.Appearance.BodyVolume = horse.Appearance.BodyVolume.Get()
	doc.Stats.Agility = horse.Stats.Agility.Get()
	doc.Stats.Control = horse.Stats.Control.Get()
	doc.Stats.Speed = horse.Stats.Speed.Get()
	doc.Stats.Strength = horse.Stats.Strength.Get()
	doc.Stats.Spirit = horse.Stats.Spirit.Get()
	doc.Mastery.SpurMagicCount = horse.Mastery.SpurMagicCount.Get()
	doc.Mastery.JumpCount = horse.Mastery.JumpCount.Get()
	doc.Mastery.SlidingTime = horse.Mastery.SlidingTime.Get()
	doc.Mastery.GlidingDistance = horse.Mastery.GlidingDistance.Get()
	doc.Condition.Stamina = horse.Condition.Stamina.Get()
	doc.Condition.Charm = horse.Condition.Charm.Get()
	doc.Condition.Friendliness = horse.Condition.Friendliness.Get()
	doc.Condition.Injury = horse.Condition.Injury.Get()
	doc.Condition.Plenitude = horse.Condition.Plenitude.Get()
	doc.Condition.BodyDirtiness = horse.Condition.BodyDirtiness.Get()
	doc.Condition.ManeDirtiness = horse.Condition.ManeDirtiness.Get()
	doc.Condition.TailDirtiness = horse.Condition.TailDirtiness.Get()
	doc.Condition.Attachment = horse.Condition.Attachment.Get()
	doc.Condition.Boredom = horse.Condition.Boredom.Get()
	doc.Condition.BodyPolish = horse.Condition.BodyPolish.Get()
	doc.Condition.ManePolish = horse.Condition.ManePolish.Get()
	doc.Condition.TailPolish = horse.Condition.TailPolish.Get()
	doc.Condition.StopAmendsPoint = horse.Condition.StopAmendsPoint.Get()

	if err := writeJSON(s.entityPath("horses", uidKey(uid)), doc); err != nil {
		return err
	}
	clearHorseModified(horse)
	return nil
}

// ranchDoc is the on-disk shape of a ranch.
type ranchDoc struct {
	Uid     data.Uid   `json:"uid"`
	Owner   data.Uid   `json:"owner"`
	Name    string     `json:"name"`
	Housing []data.Uid `json:"housing"`
}

func (s *FileSource) RetrieveRanch(uid data.Uid, ranch *data.Ranch) error {
	doc := ranchDoc{}
	if err := readEntity(s.entityPath("ranches", uidKey(uid)), &doc); err != nil {
		return err
	}
	ranch.Uid = data.NewField(doc.Uid)
	ranch.Owner = data.NewField(doc.Owner)
	ranch.Name = data.NewField(doc.Name)
	ranch.Housing = data.NewField(doc.Housing)
	return nil
}

func (s *FileSource) StoreRanch(uid data.Uid, ranch *data.Ranch) error {
	doc := ranchDoc{
		Uid:     ranch.Uid.Get(),
		Owner:   ranch.Owner.Get(),
		Name:    ranch.Name.Get(),
		Housing: ranch.Housing.Get(),
	}
	if err := writeJSON(s.entityPath("ranches", uidKey(uid)), doc); err != nil {
		return err
	}
	ranch.Uid.ClearModified()
	ranch.Owner.ClearModified()
	ranch.Name.ClearModified()
	ranch.Housing.ClearModified()
	return nil
}

// itemDoc is the on-disk shape of an item.
type itemDoc struct {
	Uid       data.Uid  `json:"uid"`
	Tid       data.Tid  `json:"tid"`
	Count     uint32    `json:"count"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *FileSource) RetrieveItem(uid data.Uid, item *data.Item) error {
	doc := itemDoc{}
	if err := readEntity(s.entityPath("items", uidKey(uid)), &doc); err != nil {
		return err
	}
	item.Uid = data.NewField(doc.Uid)
	item.Tid = data.NewField(doc.Tid)
	item.Count = data.NewField(doc.Count)
	item.ExpiresAt = data.NewField(doc.ExpiresAt)
	return nil
}

func (s *FileSource) StoreItem(uid data.Uid, item *data.Item) error {
	doc := itemDoc{
		Uid:       item.Uid.Get(),
		Tid:       item.Tid.Get(),
		Count:     item.Count.Get(),
		ExpiresAt: item.ExpiresAt.Get(),
	}
	if err := writeJSON(s.entityPath("items", uidKey(uid)), doc); err != nil {
		return err
	}
	item.Uid.ClearModified()
	item.Tid.ClearModified()
	item.Count.ClearModified()
	item.ExpiresAt.ClearModified()
	return nil
}

// storageItemDoc is the on-disk shape of a storage bundle.
type storageItemDoc struct {
	Uid       data.Uid   `json:"uid"`
	Items     []data.Uid `json:"items"`
	Sender    string     `json:"sender"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
	Checked   bool       `json:"checked"`
	Expired   bool       `json:"expired"`
}

func (s *FileSource) RetrieveStorageItem(uid data.Uid, storageItem *data.StorageItem) error {
	doc := storageItemDoc{}
	if err := readEntity(s.entityPath("storage", uidKey(uid)), &doc); err != nil {
		return err
	}
	storageItem.Uid = data.NewField(doc.Uid)
	storageItem.Items = data.NewField(doc.Items)
	storageItem.Sender = data.NewField(doc.Sender)
	storageItem.Message = data.NewField(doc.Message)
	storageItem.CreatedAt = data.NewField(doc.CreatedAt)
	storageItem.Checked = data.NewField(doc.Checked)
	storageItem.Expired = data.NewField(doc.Expired)
	return nil
}

func (s *FileSource) StoreStorageItem(uid data.Uid, storageItem *data.StorageItem) error {
	doc := storageItemDoc{
		Uid:       storageItem.Uid.Get(),
		Items:     storageItem.Items.Get(),
		Sender:    storageItem.Sender.Get(),
		Message:   storageItem.Message.Get(),
		CreatedAt: storageItem.CreatedAt.Get(),
		Checked:   storageItem.Checked.Get(),
		Expired:   storageItem.Expired.Get(),
	}
	if err := writeJSON(s.entityPath("storage", uidKey(uid)), doc); err != nil {
		return err
	}
	storageItem.Uid.ClearModified()
	storageItem.Items.ClearModified()
	storageItem.Sender.ClearModified()
	storageItem.Message.ClearModified()
	storageItem.CreatedAt.ClearModified()
	storageItem.Checked.ClearModified()
	storageItem.Expired.ClearModified()
	return nil
}

// housingDoc is the on-disk shape of a housing record.
type housingDoc struct {
	Uid        data.Uid  `json:"uid"`
	Tid        data.Tid  `json:"tid"`
	Durability uint32    `json:"durability"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

func (s *FileSource) RetrieveHousing(uid data.Uid, housing *data.Housing) error {
	doc := housingDoc{}
	if err := readEntity(s.entityPath("housing", uidKey(uid)), &doc); err != nil {
		return err
	}
	housing.Uid = data.NewField(doc.Uid)
	housing.Tid = data.NewField(doc.Tid)
	housing.Durability = data.NewField(doc.Durability)
	housing.ExpiresAt = data.NewField(doc.ExpiresAt)
	return nil
}

func (s *FileSource) StoreHousing(uid data.Uid, housing *data.Housing) error {
	doc := housingDoc{
		Uid:        housing.Uid.Get(),
		Tid:        housing.Tid.Get(),
		Durability: housing.Durability.Get(),
		ExpiresAt:  housing.ExpiresAt.Get(),
	}
	if err := writeJSON(s.entityPath("housing", uidKey(uid)), doc); err != nil {
		return err
	}
	housing.Uid.ClearModified()
	housing.Tid.ClearModified()
	housing.Durability.ClearModified()
	housing.ExpiresAt.ClearModified()
	return nil
}

// infractionDoc is the on-disk shape of an infraction.
type infractionDoc struct {
	Uid         data.Uid        `json:"uid"`
	Punishment  data.Punishment `json:"punishment"`
	Duration    time.Duration   `json:"duration"`
	CreatedAt   time.Time       `json:"createdAt"`
	Description string          `json:"description"`
}

func (s *FileSource) RetrieveInfraction(uid data.Uid, infraction *data.Infraction) error {
	doc := infractionDoc{}
	if err := readEntity(s.entityPath("infractions", uidKey(uid)), &doc); err != nil {
		return err
	}
	infraction.Uid = data.NewField(doc.Uid)
	infraction.Punishment = data.NewField(doc.Punishment)
	infraction.Duration = data.NewField(doc.Duration)
	infraction.CreatedAt = data.NewField(doc.CreatedAt)
	infraction.Description = data.NewField(doc.Description)
	return nil
}

func (s *FileSource) StoreInfraction(uid data.Uid, infraction *data.Infraction) error {
	doc := infractionDoc{
		Uid:         infraction.Uid.Get(),
		Punishment:  infraction.Punishment.Get(),
		Duration:    infraction.Duration.Get(),
		CreatedAt:   infraction.CreatedAt.Get(),
		Description: infraction.Description.Get(),
	}
	if err := writeJSON(s.entityPath("infractions", uidKey(uid)), doc); err != nil {
		return err
	}
	infraction.Uid.ClearModified()
	infraction.Punishment.ClearModified()
	infraction.Duration.ClearModified()
	infraction.CreatedAt.ClearModified()
	infraction.Description.ClearModified()
	return nil
}

func uidKey(uid data.Uid) string {
	return fmt.Sprintf("%d", uid)
}

func clearUserModified(user *data.User) {
	user.Uid.ClearModified()
	user.Name.ClearModified()
	user.Token.ClearModified()
	user.CharacterUid.ClearModified()
	user.Infractions.ClearModified()
}

func clearCharacterModified(character *data.Character) {
	character.Uid.ClearModified()
	character.Name.ClearModified()
	character.Role.ClearModified()
	character.Level.ClearModified()
	character.Carrots.ClearModified()
	character.Cash.ClearModified()
	character.Status.ClearModified()
	character.Introduction.ClearModified()
	character.AgeGroup.ClearModified()
	character.Gender.ClearModified()
	character.Parts.ModelId.ClearModified()
	character.Parts.MouthId.ClearModified()
	character.Parts.FaceId.ClearModified()
	character.Appearance.VoiceId.ClearModified()
	character.Appearance.HeadSize.ClearModified()
	character.Appearance.Height.ClearModified()
	character.Appearance.ThighVolume.ClearModified()
	character.Appearance.LegVolume.ClearModified()
	character.Appearance.EmblemId.ClearModified()
	character.Inventory.ClearModified()
	character.CharacterEquipment.ClearModified()
	character.MountEquipment.ClearModified()
	character.Horses.ClearModified()
	character.MountUid.ClearModified()
	character.RanchUid.ClearModified()
	character.GiftStorage.ClearModified()
	character.PurchaseStorage.ClearModified()
	character.Muted.ClearModified()
	character.RanchLocked.ClearModified()
}

func clearHorseModified(horse *data.Horse) {
	horse.Uid.ClearModified()
	horse.Tid.ClearModified()
	horse.Name.ClearModified()
	horse.Parts.SkinTid.ClearModified()
	horse.Parts.ManeTid.ClearModified()
	horse.Parts.TailTid.ClearModified()
	horse.Parts.FaceTid.ClearModified()
	horse.Appearance.Scale.ClearModified()
	horse.Appearance.LegLength.ClearModified()
	horse.Appearance.LegVolume.ClearModified()
	horse.Appearance.BodyLength.ClearModified()
	horse.Appearance.BodyVolume.ClearModified()
	horse.Stats.Agility.ClearModified()
	horse.Stats.Control.ClearModified()
	horse.Stats.Speed.ClearModified()
	horse.Stats.Strength.ClearModified()
	horse.Stats.Spirit.ClearModified()
	horse.Mastery.SpurMagicCount.ClearModified()
	horse.Mastery.JumpCount.ClearModified()
	horse.Mastery.SlidingTime.ClearModified()
	horse.Mastery.GlidingDistance.ClearModified()
	horse.Condition.Stamina.ClearModified()
	horse.Condition.Charm.ClearModified()
	horse.Condition.Friendliness.ClearModified()
	horse.Condition.Injury.ClearModified()
	horse.Condition.Plenitude.ClearModified()
	horse.Condition.BodyDirtiness.ClearModified()
	horse.Condition.ManeDirtiness.ClearModified()
	horse.Condition.TailDirtiness.ClearModified()
	horse.Condition.Attachment.ClearModified()
	horse.Condition.Boredom.ClearModified()
	horse.Condition.BodyPolish.ClearModified()
	horse.Condition.ManePolish.ClearModified()
	horse.Condition.TailPolish.ClearModified()
	horse.Condition.StopAmendsPoint.ClearModified()
	horse.Rating.ClearModified()
	horse.Class.ClearModified()
	horse.ClassProgress.ClearModified()
	horse.Grade.ClearModified()
	horse.GrowthPoints.ClearModified()
	horse.PotentialType.ClearModified()
	horse.PotentialLevel.ClearModified()
	horse.LuckState.ClearModified()
	horse.Emblem.ClearModified()
	horse.DateOfBirth.ClearModified()
}
