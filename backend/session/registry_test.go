package session

import (
	"sync"
	"testing"
	"time"

	"growthlog/backend/models"
	"growthlog/backend/tracker"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func quick(focus string) tracker.SubmitQuick {
	return tracker.SubmitQuick{
		Input: models.QuickLogInput{Focus: focus, Hours: 1, Learnings: "x"},
		Now:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	r := NewRegistry(time.Hour)

	r.Dispatch("alice", quick("Go"))
	r.Dispatch("alice", quick("SQL"))
	r.Dispatch("bob", quick("Rust"))

	assert.Equal(t, 2, r.Snapshot("alice").Entries.Len())
	assert.Equal(t, 1, r.Snapshot("bob").Entries.Len())
	assert.Equal(t, 0, r.Snapshot("carol").Entries.Len())
	assert.Equal(t, 3, r.Len())
}

func TestSnapshotStartsAtOverview(t *testing.T) {
	r := NewRegistry(time.Hour)
	assert.Equal(t, tracker.PageOverview, r.Snapshot("new").Page)

	r.Dispatch("new", tracker.Navigate{Page: tracker.PageResources})
	assert.Equal(t, tracker.PageResources, r.Snapshot("new").Page)
}

func TestIdleSessionsExpire(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := NewRegistry(time.Hour, WithClock(clock.Now))

	r.Dispatch("idle", quick("Go"))
	clock.Advance(30 * time.Minute)
	r.Dispatch("active", quick("Go"))

	clock.Advance(45 * time.Minute)
	assert.Equal(t, 1, r.Sweep(clock.Now()))
	assert.Equal(t, 1, r.Len())

	assert.Equal(t, 0, r.Snapshot("idle").Entries.Len(), "expired session starts over")
	assert.Equal(t, 1, r.Snapshot("active").Entries.Len())
}

func TestZeroTTLNeverExpires(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	r := NewRegistry(0, WithClock(clock.Now))

	r.Dispatch("s", quick("Go"))
	clock.Advance(1000 * time.Hour)

	assert.Equal(t, 0, r.Sweep(clock.Now()))
	assert.Equal(t, 1, r.Snapshot("s").Entries.Len())
}

func TestConcurrentDispatchOnOneSession(t *testing.T) {
	r := NewRegistry(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Dispatch("shared", quick("Go"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, r.Snapshot("shared").Entries.Len())
}

func TestSweepRunsOncePerInterval(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := NewRegistry(time.Hour, WithClock(clock.Now), WithSweepInterval(2*time.Hour))

	r.Dispatch("a", quick("Go"))
	clock.Advance(90 * time.Minute)
	r.Dispatch("b", quick("Go"))

	assert.Equal(t, 2, r.Len(), "no sweep before the interval")
	assert.Equal(t, 0, r.Snapshot("a").Entries.Len(), "an expired session still starts over")

	clock.Advance(2 * time.Hour)
	r.Dispatch("c", quick("Go"))
	assert.Equal(t, 1, r.Len())
}

func TestDispatchSequenceIsAtomic(t *testing.T) {
	r := NewRegistry(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		page := tracker.PageLogEntry
		if i%2 == 0 {
			page = tracker.PageResources
		}
		wg.Add(1)
		go func(page tracker.Page) {
			defer wg.Done()
			state, outcome := r.Dispatch("shared", tracker.Sequence{tracker.Navigate{Page: page}, quick("Go")})
			assert.Equal(t, page, state.Page)
			assert.True(t, outcome.Success())
		}(page)
	}
	wg.Wait()

	assert.Equal(t, 40, r.Snapshot("shared").Entries.Len())
}
