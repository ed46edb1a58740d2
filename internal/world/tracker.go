// Package world implements the instance-scoped entity trackers mapping
// persistent UIDs to ephemeral 16-bit object identifiers.
package world

import "github.com/aliciago/server/internal/data"

// Oid is an instance-scoped object identifier assigned by a tracker.
type Oid = uint16

// InvalidOid is the reserved invalid object identifier.
const InvalidOid Oid = 0

// Tracker is a per-instance registry with two disjoint OID namespaces
// (characters and horses) served by one monotonic counter. An OID is
// never reused within a tracker instance; disposing the instance
// discards the tracker, so reuse across instances is permitted.
type Tracker struct {
	nextOid    Oid
	characters map[data.Uid]Oid
	horses     map[data.Uid]Oid

	// Insertion order, for building enter-instance payloads in OID order.
	characterOrder []data.Uid
	horseOrder     []data.Uid
}

func NewTracker() *Tracker {
	return &Tracker{
		nextOid:    1,
		characters: make(map[data.Uid]Oid),
		horses:     make(map[data.Uid]Oid),
	}
}

// AddCharacter assigns a fresh OID to the character.
func (t *Tracker) AddCharacter(character data.Uid) Oid {
	oid := t.nextOid
	t.nextOid++
	t.characters[character] = oid
	t.characterOrder = append(t.characterOrder, character)
	return oid
}

// RemoveCharacter stops tracking the character.
func (t *Tracker) RemoveCharacter(character data.Uid) {
	delete(t.characters, character)
	t.characterOrder = removeUid(t.characterOrder, character)
}

// GetCharacterOid returns the character's OID, or InvalidOid.
func (t *Tracker) GetCharacterOid(character data.Uid) Oid {
	return t.characters[character]
}

// AddHorse assigns a fresh OID to the horse.
func (t *Tracker) AddHorse(horse data.Uid) Oid {
	oid := t.nextOid
	t.nextOid++
	t.horses[horse] = oid
	t.horseOrder = append(t.horseOrder, horse)
	return oid
}

// RemoveHorse stops tracking the horse.
func (t *Tracker) RemoveHorse(horse data.Uid) {
	delete(t.horses, horse)
	t.horseOrder = removeUid(t.horseOrder, horse)
}

// GetHorseOid returns the horse's OID, or InvalidOid.
func (t *Tracker) GetHorseOid(horse data.Uid) Oid {
	return t.horses[horse]
}

// Characters enumerates the tracked characters in OID order.
func (t *Tracker) Characters() []data.Uid {
	return t.characterOrder
}

// Horses enumerates the tracked horses in OID order.
func (t *Tracker) Horses() []data.Uid {
	return t.horseOrder
}

func removeUid(uids []data.Uid, uid data.Uid) []data.Uid {
	for i, candidate := range uids {
		if candidate == uid {
			return append(uids[:i], uids[i+1:]...)
		}
	}
	return uids
}
