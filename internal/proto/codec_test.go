package proto

import (
	"testing"

	"github.com/aliciago/server/internal/net/packet"
	"github.com/stretchr/testify/require"
)

func sampleHorse() Horse {
	return Horse{
		UID:  2,
		TID:  0x4E21,
		Name: "Juan",
		Parts: HorseParts{
			SkinID: 2, ManeID: 3, TailID: 3, FaceID: 3,
		},
		Appearance: HorseAppearance{
			Scale: 4, LegLength: 4, LegVolume: 5, BodyLength: 3, BodyVolume: 4,
		},
		Stats: HorseStats{
			Agility: 9, Control: 9, Speed: 9, Strength: 9, Spirit: 0x13,
		},
		Rating:        0,
		Class:         0x15,
		ClassProgress: 1,
		Grade:         5,
		GrowthPoints:  2,
		Condition: HorseCondition{
			Stamina:   0x7D0,
			Plenitude: 0x21C,
			Boredom:   10,
		},
		Vitality: HorseVitality{
			DateOfBirth:    0xB8A167E4,
			PotentialLevel: 0x40,
			HasPotential:   1,
			PotentialValue: 0x64,
			Luck:           5,
			Emblem:         0xA,
		},
		Mastery: HorseMastery{
			SpurMagicCount:  0x1FE,
			JumpCount:       0x421,
			SlidingTime:     0x5F8,
			GlidingDistance: 0xCFA4,
		},
		Val16: 0xB8A167E4,
	}
}

func TestItemRoundTrip(t *testing.T) {
	in := Item{UID: 10, TID: 20, ExpiresAt: 30, Count: 40}

	w := packet.NewWriter()
	in.Write(w)
	require.NoError(t, w.Err())
	require.Equal(t, 16, w.Len())

	out := Item{}
	r := packet.NewReader(w.Bytes())
	out.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, in, out)
	require.Zero(t, r.Remaining())
}

func TestStoredItemRoundTrip(t *testing.T) {
	in := StoredItem{
		UID:      7,
		Status:   StoredItemRead,
		Sender:   "GM",
		Message:  "welcome gift",
		DateTime: 0x12345678,
	}

	w := packet.NewWriter()
	in.Write(w)
	require.NoError(t, w.Err())

	out := StoredItem{}
	r := packet.NewReader(w.Bytes())
	out.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, in, out)
}

func TestHorseRoundTrip(t *testing.T) {
	in := sampleHorse()

	w := packet.NewWriter()
	in.Write(w)
	require.NoError(t, w.Err())

	out := Horse{}
	r := packet.NewReader(w.Bytes())
	out.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, in, out)
	require.Zero(t, r.Remaining())
}

func TestRanchCharacterRoundTrip(t *testing.T) {
	in := RanchCharacter{
		UID:          55,
		Name:         "rider",
		Role:         RoleGameMaster,
		Gender:       1,
		Introduction: "hello",
		Mount:        sampleHorse(),
		CharacterEquipment: []Item{
			{UID: 1, TID: 2, Count: 1},
			{UID: 3, TID: 4, Count: 2},
		},
		Guild: Guild{UID: 9, Name: "club"},
		OID:   3,
		Rent:  Rent{MountUID: 2},
		Pet:   Pet{UID: 77, TID: 88, Name: "pup"},
	}

	w := packet.NewWriter()
	in.Write(w)
	require.NoError(t, w.Err())

	out := RanchCharacter{}
	r := packet.NewReader(w.Bytes())
	out.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, in, out)
}

func TestLobbyLoginRoundTrip(t *testing.T) {
	in := LobbyLogin{
		Constant0: 50,
		Constant1: 281,
		LoginID:   "rider",
		MemberNo:  42,
		AuthKey:   "token",
		Val0:      1,
	}

	w := packet.NewWriter()
	in.Write(w)
	require.NoError(t, w.Err())

	out := LobbyLogin{}
	r := packet.NewReader(w.Bytes())
	out.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, in, out)
}

// The option bitset gates which sub-records follow in the login reply.
func TestLoginOKOptionBitset(t *testing.T) {
	base := LobbyLoginOK{}

	encode := func(v LobbyLoginOK) []byte {
		w := packet.NewWriter()
		v.Write(w)
		require.NoError(t, w.Err())
		return w.Bytes()
	}

	none := encode(base)

	valueOnly := base
	valueOnly.OptionType = OptionValue
	require.Equal(t, len(none)+4, len(encode(valueOnly)))

	keyboardAndMacros := base
	keyboardAndMacros.OptionType = OptionKeyboard | OptionMacros
	keyboardAndMacros.KeyboardOptions.Bindings = []KeyboardBinding{
		{Index: 1, Type: 2, Key: 3},
	}
	// One count byte plus one 4-byte binding, then eight empty
	// null-terminated macros.
	require.Equal(t, len(none)+1+4+8, len(encode(keyboardAndMacros)))
}

func TestSnapshotDiscriminator(t *testing.T) {
	full := RanchSnapshot{Type: SnapshotFull}
	full.Full.OID = 4
	full.Full.VelocityX = 1.5

	w := packet.NewWriter()
	full.Write(w)

	out := RanchSnapshot{}
	r := packet.NewReader(w.Bytes())
	out.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, full, out)
	require.Zero(t, r.Remaining())

	partial := RanchSnapshot{Type: SnapshotPartial}
	partial.Partial.OID = 9

	w = packet.NewWriter()
	partial.Write(w)

	out = RanchSnapshot{}
	r = packet.NewReader(w.Bytes())
	out.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, partial, out)

	// The partial branch omits the velocity triplet.
	require.Equal(t, 12, fullMinusPartialSize(t))
}

func fullMinusPartialSize(t *testing.T) int {
	t.Helper()

	w := packet.NewWriter()
	FullSpatial{}.Write(w)
	fullSize := w.Len()

	w = packet.NewWriter()
	PartialSpatial{}.Write(w)
	return fullSize - w.Len()
}

func TestRacerDiscriminator(t *testing.T) {
	npcTid := uint32(9001)
	npc := Racer{
		OID:    1,
		UID:    0,
		Name:   "pacer",
		IsNPC:  true,
		NpcTID: &npcTid,
	}

	w := packet.NewWriter()
	npc.Write(w)

	out := Racer{}
	r := packet.NewReader(w.Bytes())
	out.Read(r)
	require.NoError(t, r.Err())
	require.Nil(t, out.Avatar)
	require.NotNil(t, out.NpcTID)
	require.Equal(t, npcTid, *out.NpcTID)

	human := Racer{
		OID:  2,
		UID:  500,
		Name: "rider",
		Avatar: &Avatar{
			CharacterEquipment: []Item{{UID: 1, TID: 2, Count: 1}},
			Mount:              sampleHorse(),
		},
	}

	w = packet.NewWriter()
	human.Write(w)

	out = Racer{}
	r = packet.NewReader(w.Bytes())
	out.Read(r)
	require.NoError(t, r.Err())
	require.Nil(t, out.NpcTID)
	require.NotNil(t, out.Avatar)
	require.Equal(t, *human.Avatar, *out.Avatar)
	require.Zero(t, r.Remaining())
}

func TestChangeRoomOptionsBitfield(t *testing.T) {
	in := RaceChangeRoomOptions{
		OptionsBitfield: RoomOptionName | RoomOptionMapBlockID,
		Name:            "sprint",
		MapBlockID:      7,
	}

	w := packet.NewWriter()
	in.Write(w)

	out := RaceChangeRoomOptions{}
	r := packet.NewReader(w.Bytes())
	out.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, in, out)
	require.Zero(t, r.Remaining())

	// Only the selected fields follow the bitfield: u16 bitfield, the
	// null-terminated name and the u16 map block.
	require.Equal(t, 2+len("sprint")+1+2, w.Len())
}

func TestChatterLoginAckRoundTrip(t *testing.T) {
	in := ChatCmdLoginAckOKCommand{
		Groups: []ChatterGroup{{UID: 1, Name: "Online Players"}},
		Friends: []ChatterFriend{
			{UID: 2, CategoryUID: 1, Name: "rider", Status: ChatterFriendOnline, RanchUID: 9},
		},
	}

	w := packet.NewWriter()
	in.Write(w)
	require.NoError(t, w.Err())

	out := ChatCmdLoginAckOKCommand{}
	r := packet.NewReader(w.Bytes())
	out.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, in, out)
}
