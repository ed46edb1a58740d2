package cache

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testDatum struct {
	value int
}

func newTestCache(retrieve RetrieveFunc[uint32, testDatum], store StoreFunc[uint32, testDatum]) *Cache[uint32, testDatum] {
	if retrieve == nil {
		retrieve = func(uint32, *testDatum) error { return nil }
	}
	if store == nil {
		store = func(uint32, *testDatum) error { return nil }
	}
	return New("test", retrieve, store, zap.NewNop())
}

func TestGetMissSchedulesRetrieve(t *testing.T) {
	retrieved := 0
	c := newTestCache(func(key uint32, datum *testDatum) error {
		retrieved++
		datum.value = int(key) * 10
		return nil
	}, nil)

	_, ok := c.Get(7)
	require.False(t, ok)
	require.Equal(t, 0, retrieved)

	c.Tick()
	require.Equal(t, 1, retrieved)

	record, ok := c.Get(7)
	require.True(t, ok)
	record.Immutable(func(datum *testDatum) {
		require.Equal(t, 70, datum.value)
	})
}

func TestGetAllNoPartialReturns(t *testing.T) {
	c := newTestCache(nil, nil)

	record, ok := c.Create(1)
	require.True(t, ok)
	record.Mutable(func(datum *testDatum) { datum.value = 1 })

	// Key 2 is not cached: no partial result.
	_, ok = c.GetAll([]uint32{1, 2})
	require.False(t, ok)

	c.Tick()
	records, ok := c.GetAll([]uint32{1, 2})
	require.True(t, ok)
	require.Len(t, records, 2)
}

func TestCreateDuplicateFails(t *testing.T) {
	c := newTestCache(nil, nil)

	_, ok := c.Create(1)
	require.True(t, ok)
	_, ok = c.Create(1)
	require.False(t, ok)
}

func TestSaveStoresOnTick(t *testing.T) {
	stored := 0
	c := newTestCache(nil, func(key uint32, datum *testDatum) error {
		stored++
		require.Equal(t, 5, datum.value)
		return nil
	})

	record, _ := c.Create(3)
	record.Mutable(func(datum *testDatum) { datum.value = 5 })

	c.Save(3)
	require.Equal(t, 0, stored)
	c.Tick()
	require.Equal(t, 1, stored)

	// The store queue drained; nothing left to store.
	c.Tick()
	require.Equal(t, 1, stored)
}

func TestRetrieveFailureRetries(t *testing.T) {
	attempts := 0
	c := newTestCache(func(uint32, *testDatum) error {
		attempts++
		if attempts < 3 {
			return errors.New("source unavailable")
		}
		return nil
	}, nil)

	_, ok := c.Get(9)
	require.False(t, ok)

	c.Tick()
	_, ok = c.Get(9)
	require.False(t, ok)

	c.Tick()
	c.Tick()
	_, ok = c.Get(9)
	require.True(t, ok)
	require.Equal(t, 3, attempts)
}

func TestTerminateFlushes(t *testing.T) {
	flushed := 0
	c := newTestCache(nil, func(uint32, *testDatum) error {
		flushed++
		return nil
	})

	c.Create(1)
	c.Create(2)
	c.Terminate()
	require.Equal(t, 2, flushed)

	// The cache is empty afterwards.
	_, ok := c.Get(1)
	require.False(t, ok)
}

func TestRecordLocking(t *testing.T) {
	c := newTestCache(nil, nil)
	record, _ := c.Create(1)

	// Immutable holders may overlap.
	var wg sync.WaitGroup
	inside := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record.Immutable(func(*testDatum) {
				inside <- struct{}{}
				time.Sleep(50 * time.Millisecond)
			})
		}()
	}
	require.Eventually(t, func() bool { return len(inside) == 2 },
		time.Second, 5*time.Millisecond)
	wg.Wait()

	// A mutable closure runs exclusively: the counter never observes a
	// concurrent increment.
	value := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record.Mutable(func(datum *testDatum) {
				value++
				datum.value = value
			})
		}()
	}
	wg.Wait()
	require.Equal(t, 8, value)
}
