package system

import (
	"fmt"
	"time"

	"github.com/aliciago/server/internal/data"
	"github.com/aliciago/server/internal/data/cache"
)

// InfractionStore is the slice of the data director the infraction
// system reads from.
type InfractionStore interface {
	GetUser(name string) (cache.Record[data.User], bool)
	GetInfractions(uids []data.Uid) ([]cache.Record[data.Infraction], bool)
}

// Verdict summarizes a user's outstanding punishments.
type Verdict struct {
	PreventServerJoining bool
	PreventChatting      bool
}

// InfractionSystem evaluates the outstanding infractions of a user at
// login. An infraction past createdAt+duration has expired and is
// ignored.
type InfractionSystem struct {
	store InfractionStore
}

func NewInfractionSystem(store InfractionStore) *InfractionSystem {
	return &InfractionSystem{store: store}
}

// CheckOutstandingPunishments builds the verdict for a user. The user
// and all referenced infractions must be available in the cache.
func (s *InfractionSystem) CheckOutstandingPunishments(userName string) (Verdict, error) {
	userRecord, ok := s.store.GetUser(userName)
	if !ok {
		return Verdict{}, fmt.Errorf("user %s not available", userName)
	}

	var infractionUids []data.Uid
	userRecord.Immutable(func(user *data.User) {
		infractionUids = user.Infractions.Get()
	})

	infractionRecords, ok := s.store.GetInfractions(infractionUids)
	if !ok {
		return Verdict{}, fmt.Errorf("infractions of user %s not available", userName)
	}

	verdict := Verdict{}
	now := time.Now()
	for _, record := range infractionRecords {
		record.Immutable(func(infraction *data.Infraction) {
			expired := infraction.CreatedAt.Get().Add(infraction.Duration.Get()).Before(now)
			if expired {
				return
			}
			switch infraction.Punishment.Get() {
			case data.PunishmentMute:
				verdict.PreventChatting = true
			case data.PunishmentBan:
				verdict.PreventServerJoining = true
			}
		})
	}

	return verdict, nil
}
