package system

import (
	"testing"
	"time"

	"github.com/aliciago/server/internal/data"
	"github.com/aliciago/server/internal/data/cache"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeInfractionStore struct {
	users       *cache.Cache[string, data.User]
	infractions *cache.Cache[data.Uid, data.Infraction]
}

func newFakeInfractionStore() *fakeInfractionStore {
	nopRetrieveUser := func(string, *data.User) error { return nil }
	nopStoreUser := func(string, *data.User) error { return nil }
	nopRetrieve := func(data.Uid, *data.Infraction) error { return nil }
	nopStore := func(data.Uid, *data.Infraction) error { return nil }
	return &fakeInfractionStore{
		users:       cache.New("users", nopRetrieveUser, nopStoreUser, zap.NewNop()),
		infractions: cache.New("infractions", nopRetrieve, nopStore, zap.NewNop()),
	}
}

func (s *fakeInfractionStore) GetUser(name string) (cache.Record[data.User], bool) {
	return s.users.Get(name)
}

func (s *fakeInfractionStore) GetInfractions(uids []data.Uid) ([]cache.Record[data.Infraction], bool) {
	return s.infractions.GetAll(uids)
}

func (s *fakeInfractionStore) addUser(name string, infractions []data.Uid) {
	record, _ := s.users.Create(name)
	record.Mutable(func(user *data.User) {
		user.Name.Set(name)
		user.Infractions.Set(infractions)
	})
}

func (s *fakeInfractionStore) addInfraction(uid data.Uid, punishment data.Punishment, createdAt time.Time, duration time.Duration) {
	record, _ := s.infractions.Create(uid)
	record.Mutable(func(infraction *data.Infraction) {
		infraction.Uid.Set(uid)
		infraction.Punishment.Set(punishment)
		infraction.CreatedAt.Set(createdAt)
		infraction.Duration.Set(duration)
	})
}

func TestInfractionVerdictBan(t *testing.T) {
	store := newFakeInfractionStore()
	store.addUser("rider", []data.Uid{1})
	store.addInfraction(1, data.PunishmentBan, time.Now(), time.Hour)

	verdict, err := NewInfractionSystem(store).CheckOutstandingPunishments("rider")
	require.NoError(t, err)
	require.True(t, verdict.PreventServerJoining)
	require.False(t, verdict.PreventChatting)
}

func TestInfractionVerdictMute(t *testing.T) {
	store := newFakeInfractionStore()
	store.addUser("rider", []data.Uid{1})
	store.addInfraction(1, data.PunishmentMute, time.Now(), time.Hour)

	verdict, err := NewInfractionSystem(store).CheckOutstandingPunishments("rider")
	require.NoError(t, err)
	require.False(t, verdict.PreventServerJoining)
	require.True(t, verdict.PreventChatting)
}

func TestInfractionExpiredIgnored(t *testing.T) {
	store := newFakeInfractionStore()
	store.addUser("rider", []data.Uid{1, 2})
	store.addInfraction(1, data.PunishmentBan, time.Now().Add(-2*time.Hour), time.Hour)
	store.addInfraction(2, data.PunishmentNone, time.Now(), time.Hour)

	verdict, err := NewInfractionSystem(store).CheckOutstandingPunishments("rider")
	require.NoError(t, err)
	require.False(t, verdict.PreventServerJoining)
	require.False(t, verdict.PreventChatting)
}

func TestInfractionUnavailableUser(t *testing.T) {
	store := newFakeInfractionStore()
	_, err := NewInfractionSystem(store).CheckOutstandingPunishments("ghost")
	require.Error(t, err)
}
