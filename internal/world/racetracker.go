package world

import "github.com/aliciago/server/internal/data"

// RacerState is the per-racer room state machine:
// NotReady → Ready → Loading → Racing → Finished.
type RacerState int

const (
	RacerDisconnected RacerState = iota
	RacerNotReady
	RacerReady
	RacerLoading
	RacerRacing
	RacerFinished
)

// Racer is the per-participant record of a race room.
type Racer struct {
	Oid   Oid
	State RacerState

	StarPointValue uint32
	JumpComboValue uint32
	CourseTime     uint32
}

// RaceItem is an in-race item instance.
type RaceItem struct {
	ItemID   uint16
	ItemType uint32
	Position [3]float32
}

// RaceTracker tracks the racers of one room by character UID, plus the
// in-race items keyed by a 16-bit item id.
type RaceTracker struct {
	nextOid    Oid
	racers     map[data.Uid]*Racer
	racerOrder []data.Uid

	nextItemID uint16
	items      map[uint16]*RaceItem
}

func NewRaceTracker() *RaceTracker {
	return &RaceTracker{
		nextOid:    1,
		racers:     make(map[data.Uid]*Racer),
		nextItemID: 1,
		items:      make(map[uint16]*RaceItem),
	}
}

// AddRacer assigns a fresh OID and begins tracking the character.
func (t *RaceTracker) AddRacer(character data.Uid) *Racer {
	racer := &Racer{
		Oid:   t.nextOid,
		State: RacerNotReady,
	}
	t.nextOid++
	t.racers[character] = racer
	t.racerOrder = append(t.racerOrder, character)
	return racer
}

// RemoveRacer stops tracking the character.
func (t *RaceTracker) RemoveRacer(character data.Uid) {
	delete(t.racers, character)
	t.racerOrder = removeUid(t.racerOrder, character)
}

// GetRacer returns the racer record, or nil.
func (t *RaceTracker) GetRacer(character data.Uid) *Racer {
	return t.racers[character]
}

// Racers enumerates the tracked characters in OID order.
func (t *RaceTracker) Racers() []data.Uid {
	return t.racerOrder
}

// AddItem begins tracking a fresh in-race item.
func (t *RaceTracker) AddItem() *RaceItem {
	item := &RaceItem{ItemID: t.nextItemID}
	t.nextItemID++
	t.items[item.ItemID] = item
	return item
}

// RemoveItem stops tracking the item.
func (t *RaceTracker) RemoveItem(itemID uint16) {
	delete(t.items, itemID)
}

// GetItem returns the item record, or nil.
func (t *RaceTracker) GetItem(itemID uint16) *RaceItem {
	return t.items[itemID]
}
