package flight

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCachesResults(t *testing.T) {
	var calls atomic.Int32
	cache := NewCache(func(k string) (string, error) {
		calls.Add(1)
		return k + "!", nil
	})

	v, err := cache.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a!", v)

	v, err = cache.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a!", v)
	assert.Equal(t, int32(1), calls.Load())

	_, err = cache.Get("b")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetDoesNotCacheErrors(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("boom")
	cache := NewCache(func(k string) (int, error) {
		calls.Add(1)
		return 0, boom
	})

	_, err := cache.Get("x")
	assert.ErrorIs(t, err, boom)
	_, err = cache.Get("x")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(2), calls.Load())
}

func TestConcurrentGetsCoalesce(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	cache := NewCache(func(k string) (string, error) {
		calls.Add(1)
		<-release
		return "done", nil
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cache.Get("k")
			assert.NoError(t, err)
			assert.Equal(t, "done", v)
		}()
	}
	close(release)
	wg.Wait()

	// Late joiners share the first call; a straggler may still start its own
	// after completion, but never while one is in flight.
	assert.LessOrEqual(t, calls.Load(), int32(2))
}
