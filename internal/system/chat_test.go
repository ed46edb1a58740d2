package system

import (
	"testing"

	"github.com/aliciago/server/internal/data"
	"github.com/aliciago/server/internal/data/cache"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore serves characters straight out of a cache.
type fakeStore struct {
	characters *cache.Cache[data.Uid, data.Character]
	saved      []data.Uid
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		characters: cache.New[data.Uid, data.Character]("characters",
			func(data.Uid, *data.Character) error { return nil },
			func(data.Uid, *data.Character) error { return nil },
			zap.NewNop()),
	}
}

func (s *fakeStore) GetCharacter(uid data.Uid) (cache.Record[data.Character], bool) {
	return s.characters.Get(uid)
}

func (s *fakeStore) SaveCharacter(uid data.Uid) {
	s.saved = append(s.saved, uid)
}

func (s *fakeStore) addCharacter(uid data.Uid, name string, role data.Role) {
	record, _ := s.characters.Create(uid)
	record.Mutable(func(character *data.Character) {
		character.Uid.Set(uid)
		character.Name.Set(name)
		character.Role.Set(role)
	})
}

type fakePresence struct {
	names []string
}

func (p *fakePresence) OnlineCharacterNames() []string {
	return p.names
}

func newChatFixture() (*ChatSystem, *fakeStore, *fakePresence) {
	store := newFakeStore()
	presence := &fakePresence{}
	return NewChatSystem(store, presence, zap.NewNop()), store, presence
}

func TestChatPlainMessageBroadcasts(t *testing.T) {
	chat, _, _ := newChatFixture()

	verdict := chat.ProcessChatMessage(1, "hello ranch")
	require.Nil(t, verdict.CommandVerdict)
	require.Equal(t, "hello ranch", verdict.Message)
}

func TestChatUnknownCommand(t *testing.T) {
	chat, _, _ := newChatFixture()

	verdict := chat.ProcessChatMessage(1, "//frobnicate")
	require.NotNil(t, verdict.CommandVerdict)
	require.Equal(t, []string{"Unknown command"}, verdict.CommandVerdict.Result)
}

func TestChatOnlineCommand(t *testing.T) {
	chat, _, presence := newChatFixture()
	presence.names = []string{"rider", "breeder"}

	verdict := chat.ProcessChatMessage(1, "//online")
	require.NotNil(t, verdict.CommandVerdict)
	require.Len(t, verdict.CommandVerdict.Result, 1)
	require.Contains(t, verdict.CommandVerdict.Result[0], "rider")
	require.Contains(t, verdict.CommandVerdict.Result[0], "breeder")
}

func TestAdminCommandGated(t *testing.T) {
	chat, store, _ := newChatFixture()
	store.addCharacter(1, "player", data.RoleUser)
	store.addCharacter(2, "gm", data.RoleGameMaster)

	// A plain user silently gets nothing.
	verdict := chat.ProcessChatMessage(1, "//give carrots 100")
	require.NotNil(t, verdict.CommandVerdict)
	require.Empty(t, verdict.CommandVerdict.Result)

	// A game master gets the new balance and the character is saved.
	verdict = chat.ProcessChatMessage(2, "//give carrots 100")
	require.NotNil(t, verdict.CommandVerdict)
	require.Equal(t, []string{"Carrots: 100"}, verdict.CommandVerdict.Result)
	require.Contains(t, store.saved, data.Uid(2))

	record, _ := store.GetCharacter(2)
	record.Immutable(func(character *data.Character) {
		require.Equal(t, int32(100), character.Carrots.Get())
	})
}

func TestMuteCommand(t *testing.T) {
	chat, store, _ := newChatFixture()
	store.addCharacter(1, "target", data.RoleUser)
	store.addCharacter(2, "gm", data.RoleGameMaster)

	verdict := chat.ProcessChatMessage(2, "//mute 1")
	require.Equal(t, []string{"Muted 1"}, verdict.CommandVerdict.Result)

	record, _ := store.GetCharacter(1)
	record.Immutable(func(character *data.Character) {
		require.True(t, character.Muted.Get())
	})

	verdict = chat.ProcessChatMessage(2, "//unmute 1")
	require.Equal(t, []string{"Unmuted 1"}, verdict.CommandVerdict.Result)
	record.Immutable(func(character *data.Character) {
		require.False(t, character.Muted.Get())
	})
}

func TestScriptedCommand(t *testing.T) {
	chat, _, _ := newChatFixture()

	chat.CommandManager().RegisterCommand("echo", func(_ data.Uid, arguments []string) []string {
		return arguments
	})

	verdict := chat.ProcessChatMessage(1, "//echo a b")
	require.Equal(t, []string{"a", "b"}, verdict.CommandVerdict.Result)
}
