package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestFeedSince(t *testing.T) {
	f := NewFeed(10)
	ctx := context.Background()

	if snap := f.Since(0); snap.Version != 0 || len(snap.Changes) != 0 || snap.Truncated {
		t.Fatalf("empty feed snapshot = %+v", snap)
	}

	f.Publish(ctx, TopicTeams)
	f.Publish(ctx, TopicTeams, TopicGameResults)
	f.Publish(ctx, TopicLogs)

	snap := f.Since(1)
	if snap.Version != 3 {
		t.Errorf("Version = %d, want 3", snap.Version)
	}
	if len(snap.Changes) != 2 || snap.Changes[0].Version != 2 || snap.Changes[1].Topics[0] != TopicLogs {
		t.Errorf("Since(1) changes = %+v", snap.Changes)
	}
	if snap.Truncated {
		t.Error("Since(1) should not be truncated")
	}

	if snap := f.Since(3); len(snap.Changes) != 0 {
		t.Errorf("Since(current) returned %d changes", len(snap.Changes))
	}
	if snap := f.Since(99); len(snap.Changes) != 0 || snap.Version != 3 {
		t.Errorf("Since(future) = %+v", snap)
	}
}

func TestFeedTruncatesHistory(t *testing.T) {
	f := NewFeed(2)
	for i := 0; i < 5; i++ {
		f.Publish(context.Background(), TopicTeams)
	}

	snap := f.Since(0)
	if !snap.Truncated {
		t.Error("expected truncated snapshot")
	}
	if len(snap.Changes) != 2 || snap.Changes[0].Version != 4 {
		t.Errorf("changes = %+v", snap.Changes)
	}
	if snap := f.Since(3); snap.Truncated {
		t.Error("Since(3) still has version 4 in history, should not be truncated")
	}
}

func TestFeedConcurrentPublish(t *testing.T) {
	f := NewFeed(1000)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Publish(context.Background(), TopicCompletions)
		}()
	}
	wg.Wait()

	snap := f.Since(0)
	if snap.Version != 50 || len(snap.Changes) != 50 {
		t.Fatalf("version=%d changes=%d, want 50/50", snap.Version, len(snap.Changes))
	}
	for i, ch := range snap.Changes {
		if ch.Version != int64(i+1) {
			t.Fatalf("change %d has version %d", i, ch.Version)
		}
	}
}

func TestAppendKeepsGivenTime(t *testing.T) {
	f := NewFeed(0)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ch := f.Append([]string{TopicTeams}, at)
	if !ch.At.Equal(at) {
		t.Errorf("At = %v, want %v", ch.At, at)
	}
}

func TestGetChanges(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := NewFeed(10)
	f.Publish(context.Background(), TopicTeams)

	r := gin.New()
	NotifyRoutes(r.Group("/api"), f)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/changes?since=0", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var snap Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Version != 1 || len(snap.Changes) != 1 {
		t.Errorf("snapshot = %+v", snap)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/changes?since=abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad since: code = %d, want 400", w.Code)
	}
}
