package notify

import (
	"context"
	"sync"
	"time"
)

// Topics clients can watch. A change names every topic whose data moved.
const (
	TopicTeams       = "teams"
	TopicGameResults = "game_results"
	TopicCompletions = "completions"
	TopicLogs        = "logs"
)

const defaultHistory = 256

// Change is one committed write, identified by a feed-local version.
type Change struct {
	Version int64     `json:"version"`
	Topics  []string  `json:"topics"`
	At      time.Time `json:"at"`
}

// Notifier is what writers call after a successful commit.
type Notifier interface {
	Publish(ctx context.Context, topics ...string) error
}

// Nop drops every change.
type Nop struct{}

func (Nop) Publish(context.Context, ...string) error { return nil }

// Feed keeps a bounded, versioned history of changes for polling clients.
type Feed struct {
	mu      sync.RWMutex
	version int64
	limit   int
	history []Change
	now     func() time.Time
}

// NewFeed returns a feed that remembers the last limit changes.
func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = defaultHistory
	}
	return &Feed{limit: limit, now: time.Now}
}

// Publish appends a change locally. It never fails.
func (f *Feed) Publish(_ context.Context, topics ...string) error {
	f.Append(topics, time.Time{})
	return nil
}

// Append records a change and returns it with its assigned version. A zero
// at is replaced by the current time.
func (f *Feed) Append(topics []string, at time.Time) Change {
	f.mu.Lock()
	defer f.mu.Unlock()

	if at.IsZero() {
		at = f.now()
	}
	f.version++
	ch := Change{Version: f.version, Topics: append([]string(nil), topics...), At: at}
	f.history = append(f.history, ch)
	if over := len(f.history) - f.limit; over > 0 {
		f.history = append(f.history[:0:0], f.history[over:]...)
	}
	return ch
}

// Snapshot is the answer to a poll.
type Snapshot struct {
	Version   int64    `json:"version"`
	Truncated bool     `json:"truncated"`
	Changes   []Change `json:"changes"`
}

// Since returns the changes newer than version. Truncated is set when some of
// them already fell out of the history, in which case clients should refetch
// everything instead of replaying.
func (f *Feed) Since(version int64) Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()

	snap := Snapshot{Version: f.version, Changes: []Change{}}
	if version >= f.version {
		return snap
	}
	if version < 0 {
		version = 0
	}
	if len(f.history) > 0 && f.history[0].Version > version+1 {
		snap.Truncated = true
	}
	for _, ch := range f.history {
		if ch.Version > version {
			snap.Changes = append(snap.Changes, ch)
		}
	}
	return snap
}

// Version returns the latest assigned version.
func (f *Feed) Version() int64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.version
}
