package notify

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

const testChannel = "scoreboard:test-changes"

func newTestBus(t *testing.T) (*miniredis.Miniredis, *RedisBus) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewRedisClient([]string{mr.Addr()}, "")
	if err != nil {
		t.Fatalf("NewRedisClient() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return mr, NewRedisBus(client, testChannel)
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func subscribed(mr *miniredis.Miniredis) func() bool {
	return func() bool { return mr.PubSubNumSub(testChannel)[testChannel] > 0 }
}

func TestRedisBusRun(t *testing.T) {
	mr, bus := newTestBus(t)
	feed := NewFeed(0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- bus.Run(ctx, feed) }()
	waitFor(t, "subscription", subscribed(mr))

	if err := bus.Publish(ctx, TopicTeams, TopicGameResults); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	waitFor(t, "first change", func() bool { return feed.Version() == 1 })

	mr.Publish(testChannel, "not json")
	if err := bus.Publish(ctx, TopicLogs); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	waitFor(t, "change after malformed payload", func() bool { return feed.Version() >= 2 })

	snap := feed.Since(0)
	if snap.Version != 2 || len(snap.Changes) != 2 {
		t.Fatalf("snapshot = %+v, want two changes", snap)
	}
	if got := snap.Changes[0].Topics; !slices.Equal(got, []string{TopicTeams, TopicGameResults}) {
		t.Errorf("first topics = %v", got)
	}
	if got := snap.Changes[1].Topics; !slices.Equal(got, []string{TopicLogs}) {
		t.Errorf("second topics = %v", got)
	}
	if snap.Changes[0].At.IsZero() {
		t.Error("change time not carried over the wire")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() after cancel = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestRedisBusRunSubscribeFailure(t *testing.T) {
	mr, bus := newTestBus(t)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := bus.Run(ctx, NewFeed(0)); err == nil {
		t.Fatal("Run() against a stopped server returned nil")
	}
}

func TestRedisBusListenResubscribes(t *testing.T) {
	mr, bus := newTestBus(t)
	feed := NewFeed(0)
	mr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		bus.Listen(ctx, feed, 10*time.Millisecond)
		close(done)
	}()

	// Let a few attempts fail before the server comes back.
	time.Sleep(50 * time.Millisecond)
	if err := mr.Restart(); err != nil {
		t.Fatalf("Restart() error = %v", err)
	}
	waitFor(t, "resubscription", subscribed(mr))

	mr.Publish(testChannel, `{"topics":["teams"],"at":"2026-01-02T15:04:05Z"}`)
	waitFor(t, "change after restart", func() bool { return feed.Version() == 1 })
	if got := feed.Since(0).Changes[0].Topics; !slices.Equal(got, []string{TopicTeams}) {
		t.Errorf("topics = %v", got)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Listen() did not return after cancel")
	}
}
