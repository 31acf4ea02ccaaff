package session

import (
	"sync"
	"time"

	"growthlog/backend/tracker"
)

type entry struct {
	state    tracker.State
	lastSeen time.Time
}

// Registry keeps one tracker.State per session id. A session idle for longer
// than ttl starts over on its next request; idle sessions are removed from
// memory at most once per sweep interval.
type Registry struct {
	mu            sync.Mutex
	sessions      map[string]*entry
	ttl           time.Duration
	sweepInterval time.Duration
	lastSweep     time.Time
	now           func() time.Time
}

type Option func(*Registry)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithSweepInterval sets how often touching the registry removes idle
// sessions. It defaults to the ttl.
func WithSweepInterval(d time.Duration) Option {
	return func(r *Registry) { r.sweepInterval = d }
}

func NewRegistry(ttl time.Duration, opts ...Option) *Registry {
	r := &Registry{
		sessions:      make(map[string]*entry),
		ttl:           ttl,
		sweepInterval: ttl,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.lastSweep = r.now()
	return r
}

// Dispatch applies action to the session's state and stores the result.
func (r *Registry) Dispatch(id string, action tracker.Action) (tracker.State, tracker.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.touch(id)
	next, outcome := tracker.Apply(e.state, action)
	e.state = next
	return next, outcome
}

// Snapshot returns the session's current state, creating an empty one for an
// unknown id.
func (r *Registry) Snapshot(id string) tracker.State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.touch(id).state
}

// Sweep drops every session idle since before now-ttl and returns how many
// were removed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sweep(now)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// touch must be called with mu held.
func (r *Registry) touch(id string) *entry {
	now := r.now()
	if r.sweepInterval > 0 && now.Sub(r.lastSweep) >= r.sweepInterval {
		r.sweep(now)
	}

	e, ok := r.sessions[id]
	if !ok || r.expired(e, now) {
		e = &entry{state: tracker.NewState()}
		r.sessions[id] = e
	}
	e.lastSeen = now
	return e
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) > r.ttl
}

func (r *Registry) sweep(now time.Time) int {
	r.lastSweep = now
	removed := 0
	for id, e := range r.sessions {
		if r.expired(e, now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
