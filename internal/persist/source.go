// Package persist implements the data sources behind the data director:
// a file backend keeping one JSON document per entity, and a PostgreSQL
// backend over pgx with goose migrations. Retrieve and store calls come
// from the data director's cache ticks; NextUid is also called from the
// lobby's login pipeline.
package persist

import "github.com/aliciago/server/internal/data"

// Source is the pluggable persistence backend. Retrieve hooks fill the
// passed record; store hooks persist it and clear the per-field modified
// flags they consumed.
type Source interface {
	Initialize() error
	Terminate() error

	// NextUid allocates a monotonic entity UID. UID 0 is never returned.
	NextUid() (data.Uid, error)

	RetrieveUser(name string, user *data.User) error
	StoreUser(name string, user *data.User) error

	RetrieveCharacter(uid data.Uid, character *data.Character) error
	StoreCharacter(uid data.Uid, character *data.Character) error

	RetrieveHorse(uid data.Uid, horse *data.Horse) error
	StoreHorse(uid data.Uid, horse *data.Horse) error

	RetrieveRanch(uid data.Uid, ranch *data.Ranch) error
	StoreRanch(uid data.Uid, ranch *data.Ranch) error

	RetrieveItem(uid data.Uid, item *data.Item) error
	StoreItem(uid data.Uid, item *data.Item) error

	RetrieveStorageItem(uid data.Uid, storageItem *data.StorageItem) error
	StoreStorageItem(uid data.Uid, storageItem *data.StorageItem) error

	RetrieveHousing(uid data.Uid, housing *data.Housing) error
	StoreHousing(uid data.Uid, housing *data.Housing) error

	RetrieveInfraction(uid data.Uid, infraction *data.Infraction) error
	StoreInfraction(uid data.Uid, infraction *data.Infraction) error
}
