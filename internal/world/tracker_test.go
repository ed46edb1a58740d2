package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerOidUniqueness(t *testing.T) {
	tracker := NewTracker()

	seen := make(map[Oid]bool)
	for uid := uint32(100); uid < 150; uid++ {
		oid := tracker.AddCharacter(uid)
		require.NotEqual(t, InvalidOid, oid)
		require.False(t, seen[oid])
		seen[oid] = true

		oid = tracker.AddHorse(uid + 1000)
		require.NotEqual(t, InvalidOid, oid)
		require.False(t, seen[oid])
		seen[oid] = true
	}
}

func TestTrackerNoReuseAfterRemove(t *testing.T) {
	tracker := NewTracker()

	first := tracker.AddCharacter(1)
	tracker.RemoveCharacter(1)
	second := tracker.AddCharacter(1)
	require.NotEqual(t, first, second)
	require.Equal(t, second, tracker.GetCharacterOid(1))
}

func TestTrackerDisjointNamespaces(t *testing.T) {
	tracker := NewTracker()

	characterOid := tracker.AddCharacter(5)
	horseOid := tracker.AddHorse(5)

	require.Equal(t, characterOid, tracker.GetCharacterOid(5))
	require.Equal(t, horseOid, tracker.GetHorseOid(5))
	require.NotEqual(t, characterOid, horseOid)
}

func TestTrackerInvalidForUnknown(t *testing.T) {
	tracker := NewTracker()
	require.Equal(t, InvalidOid, tracker.GetCharacterOid(9))
	require.Equal(t, InvalidOid, tracker.GetHorseOid(9))
}

func TestTrackerEnumerationOrder(t *testing.T) {
	tracker := NewTracker()
	tracker.AddCharacter(30)
	tracker.AddCharacter(10)
	tracker.AddCharacter(20)

	require.Equal(t, []uint32{30, 10, 20}, tracker.Characters())

	tracker.RemoveCharacter(10)
	require.Equal(t, []uint32{30, 20}, tracker.Characters())
}

func TestRaceTrackerStates(t *testing.T) {
	tracker := NewRaceTracker()

	racer := tracker.AddRacer(100)
	require.Equal(t, RacerNotReady, racer.State)
	require.Equal(t, Oid(1), racer.Oid)

	other := tracker.AddRacer(200)
	require.Equal(t, Oid(2), other.Oid)

	racer.State = RacerReady
	require.Equal(t, RacerReady, tracker.GetRacer(100).State)

	tracker.RemoveRacer(100)
	require.Nil(t, tracker.GetRacer(100))
	require.Equal(t, []uint32{200}, tracker.Racers())
}

func TestRaceTrackerItems(t *testing.T) {
	tracker := NewRaceTracker()

	first := tracker.AddItem()
	second := tracker.AddItem()
	require.Equal(t, uint16(1), first.ItemID)
	require.Equal(t, uint16(2), second.ItemID)

	tracker.RemoveItem(first.ItemID)
	require.Nil(t, tracker.GetItem(first.ItemID))
	require.NotNil(t, tracker.GetItem(second.ItemID))
}
