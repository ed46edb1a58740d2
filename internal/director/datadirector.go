// Package director implements the service directors and the data
// director they share.
package director

import (
	"fmt"
	"time"

	"github.com/aliciago/server/internal/data"
	"github.com/aliciago/server/internal/data/cache"
	"github.com/aliciago/server/internal/persist"
	"go.uber.org/zap"
)

// DataDirector owns one cache per entity type over the active data
// source. Cache ticks run only on the data director's goroutine; game
// directors never call the data source directly.
type DataDirector struct {
	source persist.Source
	log    *zap.Logger

	users        *cache.Cache[string, data.User]
	characters   *cache.Cache[data.Uid, data.Character]
	horses       *cache.Cache[data.Uid, data.Horse]
	ranches      *cache.Cache[data.Uid, data.Ranch]
	items        *cache.Cache[data.Uid, data.Item]
	storageItems *cache.Cache[data.Uid, data.StorageItem]
	housing      *cache.Cache[data.Uid, data.Housing]
	infractions  *cache.Cache[data.Uid, data.Infraction]
}

func NewDataDirector(source persist.Source, log *zap.Logger) *DataDirector {
	d := &DataDirector{source: source, log: log}

	d.users = cache.New("users", source.RetrieveUser, source.StoreUser, log)
	d.characters = cache.New("characters", source.RetrieveCharacter, source.StoreCharacter, log)
	d.horses = cache.New("horses", source.RetrieveHorse, source.StoreHorse, log)
	d.ranches = cache.New("ranches", source.RetrieveRanch, source.StoreRanch, log)
	d.items = cache.New("items", source.RetrieveItem, source.StoreItem, log)
	d.storageItems = cache.New("storage", source.RetrieveStorageItem, source.StoreStorageItem, log)
	d.housing = cache.New("housing", source.RetrieveHousing, source.StoreHousing, log)
	d.infractions = cache.New("infractions", source.RetrieveInfraction, source.StoreInfraction, log)

	return d
}

// Initialize prepares the data source.
func (d *DataDirector) Initialize() error {
	if err := d.source.Initialize(); err != nil {
		return fmt.Errorf("initialize data source: %w", err)
	}
	return nil
}

// Tick drains every cache's retrieve and store queues.
func (d *DataDirector) Tick() {
	d.users.Tick()
	d.characters.Tick()
	d.horses.Tick()
	d.ranches.Tick()
	d.items.Tick()
	d.storageItems.Tick()
	d.housing.Tick()
	d.infractions.Tick()
}

// Terminate flushes every cache and shuts the source down.
func (d *DataDirector) Terminate() {
	d.users.Terminate()
	d.characters.Terminate()
	d.horses.Terminate()
	d.ranches.Terminate()
	d.items.Terminate()
	d.storageItems.Terminate()
	d.housing.Terminate()
	d.infractions.Terminate()

	if err := d.source.Terminate(); err != nil {
		d.log.Error("terminate data source", zap.Error(err))
	}
}

// NextUid allocates a fresh entity UID.
func (d *DataDirector) NextUid() (data.Uid, error) {
	return d.source.NextUid()
}

func (d *DataDirector) GetUser(name string) (cache.Record[data.User], bool) {
	return d.users.Get(name)
}

func (d *DataDirector) SaveUser(name string) {
	d.users.Save(name)
}

func (d *DataDirector) GetCharacter(uid data.Uid) (cache.Record[data.Character], bool) {
	return d.characters.Get(uid)
}

func (d *DataDirector) CreateCharacter(uid data.Uid) (cache.Record[data.Character], bool) {
	return d.characters.Create(uid)
}

func (d *DataDirector) SaveCharacter(uid data.Uid) {
	d.characters.Save(uid)
}

func (d *DataDirector) GetHorse(uid data.Uid) (cache.Record[data.Horse], bool) {
	return d.horses.Get(uid)
}

func (d *DataDirector) GetHorses(uids []data.Uid) ([]cache.Record[data.Horse], bool) {
	return d.horses.GetAll(uids)
}

func (d *DataDirector) CreateHorse(uid data.Uid) (cache.Record[data.Horse], bool) {
	return d.horses.Create(uid)
}

func (d *DataDirector) SaveHorse(uid data.Uid) {
	d.horses.Save(uid)
}

func (d *DataDirector) GetRanch(uid data.Uid) (cache.Record[data.Ranch], bool) {
	return d.ranches.Get(uid)
}

func (d *DataDirector) CreateRanch(uid data.Uid) (cache.Record[data.Ranch], bool) {
	return d.ranches.Create(uid)
}

func (d *DataDirector) SaveRanch(uid data.Uid) {
	d.ranches.Save(uid)
}

func (d *DataDirector) GetItem(uid data.Uid) (cache.Record[data.Item], bool) {
	return d.items.Get(uid)
}

func (d *DataDirector) GetItems(uids []data.Uid) ([]cache.Record[data.Item], bool) {
	return d.items.GetAll(uids)
}

func (d *DataDirector) CreateItem(uid data.Uid) (cache.Record[data.Item], bool) {
	return d.items.Create(uid)
}

func (d *DataDirector) SaveItem(uid data.Uid) {
	d.items.Save(uid)
}

func (d *DataDirector) GetStorageItem(uid data.Uid) (cache.Record[data.StorageItem], bool) {
	return d.storageItems.Get(uid)
}

func (d *DataDirector) GetStorageItems(uids []data.Uid) ([]cache.Record[data.StorageItem], bool) {
	return d.storageItems.GetAll(uids)
}

func (d *DataDirector) SaveStorageItem(uid data.Uid) {
	d.storageItems.Save(uid)
}

func (d *DataDirector) GetHousing(uids []data.Uid) ([]cache.Record[data.Housing], bool) {
	return d.housing.GetAll(uids)
}

func (d *DataDirector) GetInfractions(uids []data.Uid) ([]cache.Record[data.Infraction], bool) {
	return d.infractions.GetAll(uids)
}

// RunTickLoop runs the data director tick at the fixed cadence until
// shouldRun reports false.
func (d *DataDirector) RunTickLoop(shouldRun func() bool) {
	runTickLoop(d.Tick, shouldRun, d.log)
}

// Tick cadence shared by the data director and the service directors.
const (
	ticksPerSecond = 50
	tickInterval   = time.Second / ticksPerSecond
)

// runTickLoop drives Tick at the target cadence, yielding the remainder
// of the tick interval when a tick finishes early.
func runTickLoop(tick func(), shouldRun func() bool, log *zap.Logger) {
	lastTick := time.Now()

	for shouldRun() {
		now := time.Now()
		delta := now.Sub(lastTick)
		if delta < tickInterval {
			time.Sleep(tickInterval - delta)
			continue
		}
		lastTick = now

		func() {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic in tick loop", zap.Any("panic", rec))
				}
			}()
			tick()
		}()
	}
}
