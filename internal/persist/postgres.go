package persist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aliciago/server/internal/data"
	"github.com/jackc/pgx/v5"
)

const pgOpTimeout = 5 * time.Second

// PgSource is the PostgreSQL data source. Upserts emit only the columns
// whose per-field modified flag is set.
type PgSource struct {
	db *DB
}

func NewPgSource(db *DB) *PgSource {
	return &PgSource{db: db}
}

func (s *PgSource) Initialize() error {
	ctx, cancel := opCtx()
	defer cancel()
	return RunMigrations(ctx, s.db.Pool)
}

func (s *PgSource) Terminate() error {
	return nil
}

func (s *PgSource) NextUid() (data.Uid, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var uid int64
	err := s.db.Pool.QueryRow(ctx,
		`UPDATE meta SET sequential_uid = sequential_uid + 1 WHERE id = 1
		 RETURNING sequential_uid`,
	).Scan(&uid)
	if err != nil {
		return data.InvalidUid, fmt.Errorf("allocate uid: %w", err)
	}
	return data.Uid(uid), nil
}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), pgOpTimeout)
}

// column is one (name, value) pair of a minimal upsert.
type column struct {
	name  string
	value any
}

// modified appends the column only when the field reports an assignment.
func modified[T any](cols []column, name string, f *data.Field[T]) []column {
	if f.IsModified() {
		cols = append(cols, column{name: name, value: f.Get()})
	}
	return cols
}

// upsert builds and executes an insert that updates only the listed
// columns on conflict.
func (s *PgSource) upsert(table, keyColumn string, keyValue any, cols []column) error {
	if len(cols) == 0 {
		return nil
	}

	names := make([]string, 0, len(cols)+1)
	placeholders := make([]string, 0, len(cols)+1)
	updates := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)

	names = append(names, keyColumn)
	placeholders = append(placeholders, "$1")
	args = append(args, keyValue)

	for i, col := range cols {
		names = append(names, col.name)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col.name, col.name))
		args = append(args, col.value)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		table,
		strings.Join(names, ", "),
		strings.Join(placeholders, ", "),
		keyColumn,
		strings.Join(updates, ", "),
	)

	ctx, cancel := opCtx()
	defer cancel()
	if _, err := s.db.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}

func (s *PgSource) RetrieveUser(name string, user *data.User) error {
	ctx, cancel := opCtx()
	defer cancel()

	var (
		token        string
		characterUid int64
		infractions  []int64
	)
	err := s.db.Pool.QueryRow(ctx,
		`SELECT token, character_uid, infractions FROM users WHERE name = $1`, name,
	).Scan(&token, &characterUid, &infractions)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("retrieve user %s: %w", name, err)
	}

	user.Name = data.NewField(name)
	user.Token = data.NewField(token)
	user.CharacterUid = data.NewField(data.Uid(characterUid))
	user.Infractions = data.NewField(uidSlice(infractions))
	return nil
}

func (s *PgSource) StoreUser(name string, user *data.User) error {
	var cols []column
	cols = modified(cols, "token", &user.Token)
	if user.CharacterUid.IsModified() {
		cols = append(cols, column{name: "character_uid", value: int64(user.CharacterUid.Get())})
	}
	if user.Infractions.IsModified() {
		cols = append(cols, column{name: "infractions", value: int64Slice(user.Infractions.Get())})
	}

	if err := s.upsert("users", "name", name, cols); err != nil {
		return err
	}
	clearUserModified(user)
	return nil
}

func (s *PgSource) RetrieveCharacter(uid data.Uid, character *data.Character) error {
	ctx, cancel := opCtx()
	defer cancel()

	doc := characterDoc{}
	var (
		inventory, characterEquipment, mountEquipment []int64
		horses, giftStorage, purchaseStorage          []int64
		mountUid, ranchUid                            int64
	)
	err := s.db.Pool.QueryRow(ctx,
		`SELECT name, role, level, carrots, cash, status, introduction,
		        age_group, gender,
		        model_id, mouth_id, face_id,
		        voice_id, head_size, height, thigh_volume, leg_volume, emblem_id,
		        inventory, character_equipment, mount_equipment,
		        horses, mount_uid, ranch_uid,
		        gift_storage, purchase_storage, muted, ranch_locked
		 FROM characters WHERE uid = $1`, int64(uid),
	).Scan(
		&doc.Name, &doc.Role, &doc.Level, &doc.Carrots, &doc.Cash,
		&doc.Status, &doc.Introduction, &doc.AgeGroup, &doc.Gender,
		&doc.Parts.ModelId, &doc.Parts.MouthId, &doc.Parts.FaceId,
		&doc.Appearance.VoiceId, &doc.Appearance.HeadSize, &doc.Appearance.Height,
		&doc.Appearance.ThighVolume, &doc.Appearance.LegVolume, &doc.Appearance.EmblemId,
		&inventory, &characterEquipment, &mountEquipment,
		&horses, &mountUid, &ranchUid,
		&giftStorage, &purchaseStorage, &doc.Muted, &doc.RanchLocked,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("retrieve character %d: %w", uid, err)
	}

	doc.Uid = uid
	doc.Inventory = uidSlice(inventory)
	doc.CharacterEquipment = uidSlice(characterEquipment)
	doc.MountEquipment = uidSlice(mountEquipment)
	doc.Horses = uidSlice(horses)
	doc.MountUid = data.Uid(mountUid)
	doc.RanchUid = data.Uid(ranchUid)
	doc.GiftStorage = uidSlice(giftStorage)
	doc.PurchaseStorage = uidSlice(purchaseStorage)
	applyCharacterDoc(&doc, character)
	return nil
}

// applyCharacterDoc copies a loaded character document into the record
// with clear modified flags.
func applyCharacterDoc(doc *characterDoc, character *data.Character) {
	character.Uid = data.NewField(doc.Uid)
	character.Name = data.NewField(doc.Name)
	character.Role = data.NewField(doc.Role)
	character.Level = data.NewField(doc.Level)
	character.Carrots = data.NewField(doc.Carrots)
	character.Cash = data.NewField(doc.Cash)
	character.Status = data.NewField(doc.Status)
	character.Introduction = data.NewField(doc.Introduction)
	character.AgeGroup = data.NewField(doc.AgeGroup)
	character.Gender = data.NewField(doc.Gender)
	character.Parts.ModelId = data.NewField(doc.Parts.ModelId)
	character.Parts.MouthId = data.NewField(doc.Parts.MouthId)
	character.Parts.FaceId = data.NewField(doc.Parts.FaceId)
	character.Appearance.VoiceId = data.NewField(doc.Appearance.VoiceId)
	character.Appearance.HeadSize = data.NewField(doc.Appearance.HeadSize)
	character.Appearance.Height = data.NewField(doc.Appearance.Height)
	character.Appearance.ThighVolume = data.NewField(doc.Appearance.ThighVolume)
	character.Appearance.LegVolume = data.NewField(doc.Appearance.LegVolume)
	character.Appearance.EmblemId = data.NewField(doc.Appearance.EmblemId)
	character.Inventory = data.NewField(doc.Inventory)
	character.CharacterEquipment = data.NewField(doc.CharacterEquipment)
	character.MountEquipment = data.NewField(doc.MountEquipment)
	character.Horses = data.NewField(doc.Horses)
	character.MountUid = data.NewField(doc.MountUid)
	character.RanchUid = data.NewField(doc.RanchUid)
	character.GiftStorage = data.NewField(doc.GiftStorage)
	character.PurchaseStorage = data.NewField(doc.PurchaseStorage)
	character.Muted = data.NewField(doc.Muted)
	character.RanchLocked = data.NewField(doc.RanchLocked)
}

func (s *PgSource) StoreCharacter(uid data.Uid, character *data.Character) error {
	var cols []column
	cols = modified(cols, "name", &character.Name)
	cols = modified(cols, "role", &character.Role)
	cols = modified(cols, "level", &character.Level)
	cols = modified(cols, "carrots", &character.Carrots)
	cols = modified(cols, "cash", &character.Cash)
	cols = modified(cols, "status", &character.Status)
	cols = modified(cols, "introduction", &character.Introduction)
	cols = modified(cols, "age_group", &character.AgeGroup)
	cols = modified(cols, "gender", &character.Gender)
	cols = modified(cols, "model_id", &character.Parts.ModelId)
	cols = modified(cols, "mouth_id", &character.Parts.MouthId)
	cols = modified(cols, "face_id", &character.Parts.FaceId)
	cols = modified(cols, "voice_id", &character.Appearance.VoiceId)
	cols = modified(cols, "head_size", &character.Appearance.HeadSize)
	cols = modified(cols, "height", &character.Appearance.Height)
	cols = modified(cols, "thigh_volume", &character.Appearance.ThighVolume)
	cols = modified(cols, "leg_volume", &character.Appearance.LegVolume)
	cols = modified(cols, "emblem_id", &character.Appearance.EmblemId)
	cols = modifiedUids(cols, "inventory", &character.Inventory)
	cols = modifiedUids(cols, "character_equipment", &character.CharacterEquipment)
	cols = modifiedUids(cols, "mount_equipment", &character.MountEquipment)
	cols = modifiedUids(cols, "horses", &character.Horses)
	cols = modifiedUid(cols, "mount_uid", &character.MountUid)
	cols = modifiedUid(cols, "ranch_uid", &character.RanchUid)
	cols = modifiedUids(cols, "gift_storage", &character.GiftStorage)
	cols = modifiedUids(cols, "purchase_storage", &character.PurchaseStorage)
	cols = modified(cols, "muted", &character.Muted)
	cols = modified(cols, "ranch_locked", &character.RanchLocked)

	if err := s.upsert("characters", "uid", int64(uid), cols); err != nil {
		return err
	}
	clearCharacterModified(character)
	return nil
}

func (s *PgSource) RetrieveHorse(uid data.Uid, horse *data.Horse) error {
	ctx, cancel := opCtx()
	defer cancel()

	doc := horseDoc{}
	err := s.db.Pool.QueryRow(ctx,
		`SELECT tid, name,
		        skin_tid, mane_tid, tail_tid, face_tid,
		        scale, leg_length, leg_volume, body_length, body_volume,
		        agility, control, speed, strength, spirit,
		        spur_magic_count, jump_count, sliding_time, gliding_distance,
		        stamina, charm, friendliness, injury, plenitude,
		        body_dirtiness, mane_dirtiness, tail_dirtiness,
		        attachment, boredom, body_polish, mane_polish, tail_polish,
		        stop_amends_point,
		        rating, class, class_progress, grade, growth_points,
		        potential_type, potential_level, luck_state, emblem, date_of_birth
		 FROM horses WHERE uid = $1`, int64(uid),
	).Scan(
		&doc.Tid, &doc.Name,
		&doc.Parts.SkinTid, &doc.Parts.ManeTid, &doc.Parts.TailTid, &doc.Parts.FaceTid,
		&doc.Appearance.Scale, &doc.Appearance.LegLength, &doc.Appearance.LegVolume,
		&doc.Appearance.BodyLength, &doc.Appearance.BodyVolume,
		&doc.Stats.Agility, &doc.Stats.Control, &doc.Stats.Speed,
		&doc.Stats.Strength, &doc.Stats.Spirit,
		&doc.Mastery.SpurMagicCount, &doc.Mastery.JumpCount,
		&doc.Mastery.SlidingTime, &doc.Mastery.GlidingDistance,
		&doc.Condition.Stamina, &doc.Condition.Charm, &doc.Condition.Friendliness,
		&doc.Condition.Injury, &doc.Condition.Plenitude,
		&doc.Condition.BodyDirtiness, &doc.Condition.ManeDirtiness, &doc.Condition.TailDirtiness,
		&doc.Condition.Attachment, &doc.Condition.Boredom,
		&doc.Condition.BodyPolish, &doc.Condition.ManePolish, &doc.Condition.TailPolish,
		&doc.Condition.StopAmendsPoint,
		&doc.Rating, &doc.Class, &doc.ClassProgress, &doc.Grade, &doc.GrowthPoints,
		&doc.PotentialType, &doc.PotentialLevel, &doc.LuckState, &doc.Emblem, &doc.DateOfBirth,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("retrieve horse %d: %w", uid, err)
	}

	doc.Uid = uid
	applyHorseDoc(&doc, horse)
	return nil
}

func (s *PgSource) StoreHorse(uid data.Uid, horse *data.Horse) error {
	var cols []column
	cols = modified(cols, "tid", &horse.Tid)
	cols = modified(cols, "name", &horse.Name)
	cols = modified(cols, "skin_tid", &horse.Parts.SkinTid)
	cols = modified(cols, "mane_tid", &horse.Parts.ManeTid)
	cols = modified(cols, "tail_tid", &horse.Parts.TailTid)
	cols = modified(cols, "face_tid", &horse.Parts.FaceTid)
	cols = modified(cols, "scale", &horse.Appearance.Scale)
	cols = modified(cols, "leg_length", &horse.Appearance.LegLength)
	cols = modified(cols, "leg_volume", &horse.Appearance.LegVolume)
	cols = modified(cols, "body_length", &horse.Appearance.BodyLength)
	cols = modified(cols, "body_volume", &horse.Appearance.BodyVolume)
	cols = modified(cols, "agility", &horse.Stats.Agility)
	cols = modified(cols, "control", &horse.Stats.Control)
	cols = modified(cols, "speed", &horse.Stats.Speed)
	cols = modified(cols, "strength", &horse.Stats.Strength)
	cols = modified(cols, "spirit", &horse.Stats.Spirit)
	cols = modified(cols, "spur_magic_count", &horse.Mastery.SpurMagicCount)
	cols = modified(cols, "jump_count", &horse.Mastery.JumpCount)
	cols = modified(cols, "sliding_time", &horse.Mastery.SlidingTime)
	cols = modified(cols, "gliding_distance", &horse.Mastery.GlidingDistance)
	cols = modified(cols, "stamina", &horse.Condition.Stamina)
	cols = modified(cols, "charm", &horse.Condition.Charm)
	cols = modified(cols, "friendliness", &horse.Condition.Friendliness)
	cols = modified(cols, "injury", &horse.Condition.Injury)
	cols = modified(cols, "plenitude", &horse.Condition.Plenitude)
	cols = modified(cols, "body_dirtiness", &horse.Condition.BodyDirtiness)
	cols = modified(cols, "mane_dirtiness", &horse.Condition.ManeDirtiness)
	cols = modified(cols, "tail_dirtiness", &horse.Condition.TailDirtiness)
	cols = modified(cols, "attachment", &horse.Condition.Attachment)
	cols = modified(cols, "boredom", &horse.Condition.Boredom)
	cols = modified(cols, "body_polish", &horse.Condition.BodyPolish)
	cols = modified(cols, "mane_polish", &horse.Condition.ManePolish)
	cols = modified(cols, "tail_polish", &horse.Condition.TailPolish)
	cols = modified(cols, "stop_amends_point", &horse.Condition.StopAmendsPoint)
	cols = modified(cols, "rating", &horse.Rating)
	cols = modified(cols, "class", &horse.Class)
	cols = modified(cols, "class_progress", &horse.ClassProgress)
	cols = modified(cols, "grade", &horse.Grade)
	cols = modified(cols, "growth_points", &horse.GrowthPoints)
	cols = modified(cols, "potential_type", &horse.PotentialType)
	cols = modified(cols, "potential_level", &horse.PotentialLevel)
	cols = modified(cols, "luck_state", &horse.LuckState)
	cols = modified(cols, "emblem", &horse.Emblem)
	cols = modified(cols, "date_of_birth", &horse.DateOfBirth)

	if err := s.upsert("horses", "uid", int64(uid), cols); err != nil {
		return err
	}
	clearHorseModified(horse)
	return nil
}

func (s *PgSource) RetrieveRanch(uid data.Uid, ranch *data.Ranch) error {
	ctx, cancel := opCtx()
	defer cancel()

	var (
		owner   int64
		name    string
		housing []int64
	)
	err := s.db.Pool.QueryRow(ctx,
		`SELECT owner, name, housing FROM ranches WHERE uid = $1`, int64(uid),
	).Scan(&owner, &name, &housing)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("retrieve ranch %d: %w", uid, err)
	}

	ranch.Uid = data.NewField(uid)
	ranch.Owner = data.NewField(data.Uid(owner))
	ranch.Name = data.NewField(name)
	ranch.Housing = data.NewField(uidSlice(housing))
	return nil
}

func (s *PgSource) StoreRanch(uid data.Uid, ranch *data.Ranch) error {
	var cols []column
	cols = modifiedUid(cols, "owner", &ranch.Owner)
	cols = modified(cols, "name", &ranch.Name)
	cols = modifiedUids(cols, "housing", &ranch.Housing)

	if err := s.upsert("ranches", "uid", int64(uid), cols); err != nil {
		return err
	}
	ranch.Uid.ClearModified()
	ranch.Owner.ClearModified()
	ranch.Name.ClearModified()
	ranch.Housing.ClearModified()
	return nil
}

func (s *PgSource) RetrieveItem(uid data.Uid, item *data.Item) error {
	ctx, cancel := opCtx()
	defer cancel()

	doc := itemDoc{}
	err := s.db.Pool.QueryRow(ctx,
		`SELECT tid, count, expires_at FROM items WHERE uid = $1`, int64(uid),
	).Scan(&doc.Tid, &doc.Count, &doc.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("retrieve item %d: %w", uid, err)
	}

	item.Uid = data.NewField(uid)
	item.Tid = data.NewField(doc.Tid)
	item.Count = data.NewField(doc.Count)
	item.ExpiresAt = data.NewField(doc.ExpiresAt)
	return nil
}

func (s *PgSource) StoreItem(uid data.Uid, item *data.Item) error {
	var cols []column
	cols = modified(cols, "tid", &item.Tid)
	cols = modified(cols, "count", &item.Count)
	cols = modified(cols, "expires_at", &item.ExpiresAt)

	if err := s.upsert("items", "uid", int64(uid), cols); err != nil {
		return err
	}
	item.Uid.ClearModified()
	item.Tid.ClearModified()
	item.Count.ClearModified()
	item.ExpiresAt.ClearModified()
	return nil
}

func (s *PgSource) RetrieveStorageItem(uid data.Uid, storageItem *data.StorageItem) error {
	ctx, cancel := opCtx()
	defer cancel()

	doc := storageItemDoc{}
	var items []int64
	err := s.db.Pool.QueryRow(ctx,
		`SELECT items, sender, message, created_at, checked, expired
		 FROM storage_items WHERE uid = $1`, int64(uid),
	).Scan(&items, &doc.Sender, &doc.Message, &doc.CreatedAt, &doc.Checked, &doc.Expired)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("retrieve storage item %d: %w", uid, err)
	}

	storageItem.Uid = data.NewField(uid)
	storageItem.Items = data.NewField(uidSlice(items))
	storageItem.Sender = data.NewField(doc.Sender)
	storageItem.Message = data.NewField(doc.Message)
	storageItem.CreatedAt = data.NewField(doc.CreatedAt)
	storageItem.Checked = data.NewField(doc.Checked)
	storageItem.Expired = data.NewField(doc.Expired)
	return nil
}

func (s *PgSource) StoreStorageItem(uid data.Uid, storageItem *data.StorageItem) error {
	var cols []column
	cols = modifiedUids(cols, "items", &storageItem.Items)
	cols = modified(cols, "sender", &storageItem.Sender)
	cols = modified(cols, "message", &storageItem.Message)
	cols = modified(cols, "created_at", &storageItem.CreatedAt)
	cols = modified(cols, "checked", &storageItem.Checked)
	cols = modified(cols, "expired", &storageItem.Expired)

	if err := s.upsert("storage_items", "uid", int64(uid), cols); err != nil {
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

func (s *PgSource) RetrieveHousing(uid data.Uid, housing *data.Housing) error {
	ctx, cancel := opCtx()
	defer cancel()

	doc := housingDoc{}
	err := s.db.Pool.QueryRow(ctx,
		`SELECT tid, durability, expires_at FROM housing WHERE uid = $1`, int64(uid),
	).Scan(&doc.Tid, &doc.Durability, &doc.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("retrieve housing %d: %w", uid, err)
	}

	housing.Uid = data.NewField(uid)
	housing.Tid = data.NewField(doc.Tid)
	housing.Durability = data.NewField(doc.Durability)
	housing.ExpiresAt = data.NewField(doc.ExpiresAt)
	return nil
}

func (s *PgSource) StoreHousing(uid data.Uid, housing *data.Housing) error {
	var cols []column
	cols = modified(cols, "tid", &housing.Tid)
	cols = modified(cols, "durability", &housing.Durability)
	cols = modified(cols, "expires_at", &housing.ExpiresAt)

	if err := s.upsert("housing", "uid", int64(uid), cols); err != nil {
		return err
	}
	housing.Uid.ClearModified()
	housing.Tid.ClearModified()
	housing.Durability.ClearModified()
	housing.ExpiresAt.ClearModified()
	return nil
}

func (s *PgSource) RetrieveInfraction(uid data.Uid, infraction *data.Infraction) error {
	ctx, cancel := opCtx()
	defer cancel()

	var (
		punishment  data.Punishment
		durationNs  int64
		createdAt   time.Time
		description string
	)
	err := s.db.Pool.QueryRow(ctx,
		`SELECT punishment, duration_ns, created_at, description
		 FROM infractions WHERE uid = $1`, int64(uid),
	).Scan(&punishment, &durationNs, &createdAt, &description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("retrieve infraction %d: %w", uid, err)
	}

	infraction.Uid = data.NewField(uid)
	infraction.Punishment = data.NewField(punishment)
	infraction.Duration = data.NewField(time.Duration(durationNs))
	infraction.CreatedAt = data.NewField(createdAt)
	infraction.Description = data.NewField(description)
	return nil
}

func (s *PgSource) StoreInfraction(uid data.Uid, infraction *data.Infraction) error {
	var cols []column
	cols = modified(cols, "punishment", &infraction.Punishment)
	if infraction.Duration.IsModified() {
		cols = append(cols, column{name: "duration_ns", value: int64(infraction.Duration.Get())})
	}
	cols = modified(cols, "created_at", &infraction.CreatedAt)
	cols = modified(cols, "description", &infraction.Description)

	if err := s.upsert("infractions", "uid", int64(uid), cols); err != nil {
		return err
	}
	infraction.Uid.ClearModified()
	infraction.Punishment.ClearModified()
	infraction.Duration.ClearModified()
	infraction.CreatedAt.ClearModified()
	infraction.Description.ClearModified()
	return nil
}

func modifiedUid(cols []column, name string, f *data.Field[data.Uid]) []column {
	if f.IsModified() {
		cols = append(cols, column{name: name, value: int64(f.Get())})
	}
	return cols
}

func modifiedUids(cols []column, name string, f *data.Field[[]data.Uid]) []column {
	if f.IsModified() {
		cols = append(cols, column{name: name, value: int64Slice(f.Get())})
	}
	return cols
}

func uidSlice(values []int64) []data.Uid {
	uids := make([]data.Uid, len(values))
	for i, v := range values {
		uids[i] = data.Uid(v)
	}
	return uids
}

func int64Slice(uids []data.Uid) []int64 {
	values := make([]int64, len(uids))
	for i, uid := range uids {
		values[i] = int64(uid)
	}
	return values
}

// applyHorseDoc copies a loaded horse document into the record with
// clear modified flags.
func applyHorseDoc(doc *horseDoc, horse *data.Horse) {
	horse.Uid = data.NewField(doc.Uid)
	horse.Tid = data.NewField(doc.Tid)
	horse.Name = data.NewField(doc.Name)
	horse.Parts.SkinTid = data.NewField(doc.Parts.SkinTid)
	horse.Parts.ManeTid = data.NewField(doc.Parts.ManeTid)
	horse.Parts.TailTid = data.NewField(doc.Parts.TailTid)
	horse.Parts.FaceTid = data.NewField(doc.Parts.FaceTid)
	horse.Appearance.Scale = data.NewField(doc.Appearance.Scale)
	horse.Appearance.LegLength = data.NewField(doc.Appearance.LegLength)
	horse.Appearance.LegVolume = data.NewField(doc.Appearance.LegVolume)
	horse.Appearance.BodyLength = data.NewField(doc.Appearance.BodyLength)
	horse.Appearance.BodyVolume = data.NewField(doc.Appearance.BodyVolume)
	horse.Stats.Agility = data.NewField(doc.Stats.Agility)
	horse.Stats.Control = data.NewField(doc.Stats.Control)
	horse.Stats.Speed = data.NewField(doc.Stats.Speed)
	horse.Stats.Strength = data.NewField(doc.Stats.Strength)
	horse.Stats.Spirit = data.NewField(doc.Stats.Spirit)
	horse.Mastery.SpurMagicCount = data.NewField(doc.Mastery.SpurMagicCount)
	horse.Mastery.JumpCount = data.NewField(doc.Mastery.JumpCount)
	horse.Mastery.SlidingTime = data.NewField(doc.Mastery.SlidingTime)
	horse.Mastery.GlidingDistance = data.NewField(doc.Mastery.GlidingDistance)
	horse.Condition.Stamina = data.NewField(doc.Condition.Stamina)
	horse.Condition.Charm = data.NewField(doc.Condition.Charm)
	horse.Condition.Friendliness = data.NewField(doc.Condition.Friendliness)
	horse.Condition.Injury = data.NewField(doc.Condition.Injury)
	horse.Condition.Plenitude = data.NewField(doc.Condition.Plenitude)
	horse.Condition.BodyDirtiness = data.NewField(doc.Condition.BodyDirtiness)
	horse.Condition.ManeDirtiness = data.NewField(doc.Condition.ManeDirtiness)
	horse.Condition.TailDirtiness = data.NewField(doc.Condition.TailDirtiness)
	horse.Condition.Attachment = data.NewField(doc.Condition.Attachment)
	horse.Condition.Boredom = data.NewField(doc.Condition.Boredom)
	horse.Condition.BodyPolish = data.NewField(doc.Condition.BodyPolish)
	horse.Condition.ManePolish = data.NewField(doc.Condition.ManePolish)
	horse.Condition.TailPolish = data.NewField(doc.Condition.TailPolish)
	horse.Condition.StopAmendsPoint = data.NewField(doc.Condition.StopAmendsPoint)
	horse.Rating = data.NewField(doc.Rating)
	horse.Class = data.NewField(doc.Class)
	horse.ClassProgress = data.NewField(doc.ClassProgress)
	horse.Grade = data.NewField(doc.Grade)
	horse.GrowthPoints = data.NewField(doc.GrowthPoints)
	horse.PotentialType = data.NewField(doc.PotentialType)
	horse.PotentialLevel = data.NewField(doc.PotentialLevel)
	horse.LuckState = data.NewField(doc.LuckState)
	horse.Emblem = data.NewField(doc.Emblem)
	horse.DateOfBirth = data.NewField(doc.DateOfBirth)
}
