package mqttsn

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBindResolve(t *testing.T) {
	r := NewTopicRegistry()

	_, err := r.Resolve("sensors/temp")
	assert.ErrorIs(t, err, ErrTopicNotRegistered)

	r.Bind("sensors/temp", 1)

	id, err := r.Resolve("sensors/temp")
	require.NoError(t, err)
	assert.Equal(t, uint16(1), id)

	name, ok := r.NameOf(1)
	require.True(t, ok)
	assert.Equal(t, "sensors/temp", name)
}

func TestRegistryRebind(t *testing.T) {
	r := NewTopicRegistry()
	r.Bind("a", 1)
	r.Bind("a", 2)

	id, err := r.Resolve("a")
	require.NoError(t, err)
	assert.Equal(t, uint16(2), id)

	// The old id no longer maps back.
	_, ok := r.NameOf(1)
	assert.False(t, ok)
}

func TestRegistryInvalidate(t *testing.T) {
	r := NewTopicRegistry()
	r.Bind("a", 1)

	r.Invalidate(1)

	_, err := r.Resolve("a")
	assert.ErrorIs(t, err, ErrTopicNotRegistered)

	// Invalidating an unknown id is a no-op.
	r.Invalidate(99)
}

func TestRegistryClearKeepsPredefined(t *testing.T) {
	r := NewTopicRegistry()
	r.Bind("a", 1)
	r.BindPredefined("fixed", 100)

	r.Clear()

	_, err := r.Resolve("a")
	assert.ErrorIs(t, err, ErrTopicNotRegistered)

	name, ok := r.PredefinedName(100)
	require.True(t, ok)
	assert.Equal(t, "fixed", name)
}

func TestRegistryBeginComplete(t *testing.T) {
	r := NewTopicRegistry()

	reg, leader := r.begin("a")
	require.True(t, leader)

	// A second claim while the first is in flight is a follower.
	follower, leader2 := r.begin("a")
	assert.False(t, leader2)
	assert.Same(t, reg, follower)

	r.complete("a", 7, nil)

	<-follower.done
	assert.Equal(t, uint16(7), follower.id)
	assert.NoError(t, follower.err)

	id, err := r.Resolve("a")
	require.NoError(t, err)
	assert.Equal(t, uint16(7), id)

	// Once registered, begin returns a completed registration.
	done, leader3 := r.begin("a")
	assert.False(t, leader3)
	<-done.done
	assert.Equal(t, uint16(7), done.id)
}

func TestRegistryBeginCompleteFailure(t *testing.T) {
	r := NewTopicRegistry()

	_, leader := r.begin("a")
	require.True(t, leader)

	r.complete("a", 0, ErrTimeout)

	// A failed registration leaves nothing bound; the next begin leads again.
	_, err := r.Resolve("a")
	assert.ErrorIs(t, err, ErrTopicNotRegistered)

	_, leader = r.begin("a")
	assert.True(t, leader)
}

func TestRegistryConcurrentRegistration(t *testing.T) {
	r := NewTopicRegistry()

	const workers = 32

	var wg sync.WaitGroup
	var leaders int
	var mu sync.Mutex
	ids := make([]uint16, 0, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			reg, leader := r.begin("shared")
			if leader {
				mu.Lock()
				leaders++
				mu.Unlock()
				r.complete("shared", 5, nil)
			}

			<-reg.done
			mu.Lock()
			ids = append(ids, reg.id)
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, leaders)
	for _, id := range ids {
		assert.Equal(t, uint16(5), id)
	}
}
