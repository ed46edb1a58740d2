package persist

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aliciago/server/internal/data"
	"github.com/stretchr/testify/require"
)

func newTestFileSource(t *testing.T) *FileSource {
	t.Helper()
	source := NewFileSource(t.TempDir())
	require.NoError(t, source.Initialize())
	return source
}

func TestFileSourceUidAllocator(t *testing.T) {
	dir := t.TempDir()

	source := NewFileSource(dir)
	require.NoError(t, source.Initialize())

	first, err := source.NextUid()
	require.NoError(t, err)
	require.Equal(t, data.Uid(1), first)

	second, err := source.NextUid()
	require.NoError(t, err)
	require.Equal(t, data.Uid(2), second)
	require.NoError(t, source.Terminate())

	// A fresh source over the same directory resumes the sequence.
	source = NewFileSource(dir)
	require.NoError(t, source.Initialize())
	third, err := source.NextUid()
	require.NoError(t, err)
	require.Equal(t, data.Uid(3), third)
}

func TestFileSourceUserRoundTrip(t *testing.T) {
	source := newTestFileSource(t)

	user := data.User{}
	user.Name.Set("rider")
	user.Token.Set("digest")
	user.CharacterUid.Set(44)
	user.Infractions.Set([]data.Uid{7, 8})
	require.NoError(t, source.StoreUser("rider", &user))

	// The store cleared the modified flags.
	require.False(t, user.Token.IsModified())

	loaded := data.User{}
	require.NoError(t, source.RetrieveUser("rider", &loaded))
	require.Equal(t, "rider", loaded.Name.Get())
	require.Equal(t, "digest", loaded.Token.Get())
	require.Equal(t, data.Uid(44), loaded.CharacterUid.Get())
	require.Equal(t, []data.Uid{7, 8}, loaded.Infractions.Get())
}

func TestFileSourceMissingUserIsEmpty(t *testing.T) {
	source := newTestFileSource(t)

	loaded := data.User{}
	require.NoError(t, source.RetrieveUser("ghost", &loaded))
	require.Equal(t, data.InvalidUid, loaded.CharacterUid.Get())
	require.Empty(t, loaded.Token.Get())
}

func TestFileSourceCharacterRoundTrip(t *testing.T) {
	source := newTestFileSource(t)

	character := data.Character{}
	character.Uid.Set(10)
	character.Name.Set("rider")
	character.Role.Set(data.RoleGameMaster)
	character.Level.Set(12)
	character.Carrots.Set(-5)
	character.Cash.Set(1000)
	character.Parts.ModelId.Set(3)
	character.Inventory.Set([]data.Uid{1, 2, 3})
	character.Horses.Set([]data.Uid{20})
	character.MountUid.Set(20)
	character.RanchUid.Set(30)
	character.Muted.Set(true)
	require.NoError(t, source.StoreCharacter(10, &character))

	loaded := data.Character{}
	require.NoError(t, source.RetrieveCharacter(10, &loaded))
	require.Equal(t, "rider", loaded.Name.Get())
	require.Equal(t, data.RoleGameMaster, loaded.Role.Get())
	require.Equal(t, uint16(12), loaded.Level.Get())
	require.Equal(t, int32(-5), loaded.Carrots.Get())
	require.Equal(t, uint32(3), loaded.Parts.ModelId.Get())
	require.Equal(t, []data.Uid{1, 2, 3}, loaded.Inventory.Get())
	require.Equal(t, data.Uid(20), loaded.MountUid.Get())
	require.True(t, loaded.Muted.Get())
	require.False(t, loaded.Name.IsModified())
}

func TestFileSourceHorseRoundTrip(t *testing.T) {
	source := newTestFileSource(t)

	birth := time.Date(2011, time.September, 1, 12, 0, 0, 0, time.UTC)
	horse := data.Horse{}
	horse.Uid.Set(20)
	horse.Tid.Set(0x4E21)
	horse.Name.Set("Juan")
	horse.Stats.Agility.Set(9)
	horse.Condition.Stamina.Set(2000)
	horse.Grade.Set(5)
	horse.DateOfBirth.Set(birth)
	require.NoError(t, source.StoreHorse(20, &horse))

	loaded := data.Horse{}
	require.NoError(t, source.RetrieveHorse(20, &loaded))
	require.Equal(t, "Juan", loaded.Name.Get())
	require.Equal(t, data.Tid(0x4E21), loaded.Tid.Get())
	require.Equal(t, uint32(9), loaded.Stats.Agility.Get())
	require.Equal(t, uint16(2000), loaded.Condition.Stamina.Get())
	require.True(t, loaded.DateOfBirth.Get().Equal(birth))
}

func TestFileSourceStorageItemRoundTrip(t *testing.T) {
	source := newTestFileSource(t)

	created := time.Now().Truncate(time.Second)
	storageItem := data.StorageItem{}
	storageItem.Uid.Set(60)
	storageItem.Items.Set([]data.Uid{61, 62})
	storageItem.Sender.Set("GM")
	storageItem.Message.Set("event reward")
	storageItem.CreatedAt.Set(created)
	require.NoError(t, source.StoreStorageItem(60, &storageItem))

	loaded := data.StorageItem{}
	require.NoError(t, source.RetrieveStorageItem(60, &loaded))
	require.Equal(t, []data.Uid{61, 62}, loaded.Items.Get())
	require.Equal(t, "GM", loaded.Sender.Get())
	require.False(t, loaded.Checked.Get())
	require.True(t, loaded.CreatedAt.Get().Equal(created))
}

func TestFileSourceAtomicRewrite(t *testing.T) {
	source := newTestFileSource(t)

	item := data.Item{}
	item.Uid.Set(5)
	item.Tid.Set(100)
	item.Count.Set(1)
	require.NoError(t, source.StoreItem(5, &item))

	// No stray temp file remains after the rename.
	entries, err := os.ReadDir(filepath.Join(source.basePath, "items"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "5.json", entries[0].Name())
}
