package queue

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
)

type recordingSink struct {
	mu      sync.Mutex
	changes []domain.StatusChange
	fail    bool
}

func (s *recordingSink) Record(_ context.Context, change domain.StatusChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return fmt.Errorf("sink down")
	}
	s.changes = append(s.changes, change)
	return nil
}

func (s *recordingSink) forUser(id string) []domain.StatusChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.StatusChange
	for _, c := range s.changes {
		if c.UserID == id {
			out = append(out, c)
		}
	}
	return out
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.changes)
}

func testLog() zerolog.Logger {
	return zerolog.New(os.Stderr).Level(zerolog.Disabled)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestDispatcher_RecordsEnqueuedChanges(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(4, sink, testLog())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 20; i++ {
		d.Enqueue(domain.StatusChange{
			UserID: fmt.Sprintf("%d", i%5),
			From:   domain.StatusActive,
			To:     domain.StatusInactive,
		})
	}

	waitFor(t, func() bool { return sink.count() == 20 })
}

func TestDispatcher_PerUserOrderPreserved(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(8, sink, testLog())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	seq := []domain.UserStatus{
		domain.StatusInactive, domain.StatusActive, domain.StatusBlacklisted, domain.StatusActive,
	}
	for _, to := range seq {
		d.Enqueue(domain.StatusChange{UserID: "42", To: to})
	}

	waitFor(t, func() bool { return len(sink.forUser("42")) == len(seq) })

	got := sink.forUser("42")
	for i, c := range got {
		if c.To != seq[i] {
			t.Fatalf("order broken at %d: got %s want %s", i, c.To, seq[i])
		}
	}
}

func TestDispatcher_RecorderFailureDoesNotStopWorker(t *testing.T) {
	sink := &recordingSink{fail: true}
	d := NewDispatcher(1, sink, testLog())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.StatusChange{UserID: "1", To: domain.StatusActive})
	time.Sleep(20 * time.Millisecond)

	sink.mu.Lock()
	sink.fail = false
	sink.mu.Unlock()

	d.Enqueue(domain.StatusChange{UserID: "1", To: domain.StatusBlacklisted})
	waitFor(t, func() bool { return sink.count() == 1 })
}
