//go:build unit

package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"salon-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextFireTime(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)

	cases := []struct {
		name string
		now  time.Time
		hour int
		want time.Time
	}{
		{
			name: "before the hour fires today",
			now:  time.Date(2026, 4, 1, 7, 30, 0, 0, jst),
			hour: 9,
			want: time.Date(2026, 4, 1, 9, 0, 0, 0, jst),
		},
		{
			name: "exactly on the hour fires tomorrow",
			now:  time.Date(2026, 4, 1, 9, 0, 0, 0, jst),
			hour: 9,
			want: time.Date(2026, 4, 2, 9, 0, 0, 0, jst),
		},
		{
			name: "after the hour fires tomorrow",
			now:  time.Date(2026, 4, 1, 15, 0, 0, 0, jst),
			hour: 9,
			want: time.Date(2026, 4, 2, 9, 0, 0, 0, jst),
		},
		{
			name: "month boundary",
			now:  time.Date(2026, 4, 30, 23, 0, 0, 0, jst),
			hour: 9,
			want: time.Date(2026, 5, 1, 9, 0, 0, 0, jst),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := nextFireTime(c.now, c.hour)
			assert.True(t, c.want.Equal(got), "want %s, got %s", c.want, got)
		})
	}
}

type countingSweeper struct {
	mu      sync.Mutex
	calls   int
	block   chan struct{}
	started chan struct{}
}

func (s *countingSweeper) RunReminderSweep(context.Context) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.started != nil {
		close(s.started)
		s.started = nil
	}
	if s.block != nil {
		<-s.block
	}
	return nil
}

func (s *countingSweeper) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestRunNow(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC))

	t.Run("runs the sweep", func(t *testing.T) {
		sweeper := &countingSweeper{}
		s := NewReminderScheduler(sweeper, clk, 9)

		require.NoError(t, s.RunNow(context.Background()))
		assert.Equal(t, 1, sweeper.count())
	})

	t.Run("overlapping runs are skipped", func(t *testing.T) {
		sweeper := &countingSweeper{
			block:   make(chan struct{}),
			started: make(chan struct{}),
		}
		s := NewReminderScheduler(sweeper, clk, 9)

		started := sweeper.started
		var firstDone atomic.Bool
		go func() {
			_ = s.RunNow(context.Background())
			firstDone.Store(true)
		}()

		<-started
		// 1回目が走っている間の2回目はスキップされてnilが返る
		require.NoError(t, s.RunNow(context.Background()))
		assert.Equal(t, 1, sweeper.count())

		close(sweeper.block)
		assert.Eventually(t, firstDone.Load, time.Second, 5*time.Millisecond)

		require.NoError(t, s.RunNow(context.Background()))
		assert.Equal(t, 2, sweeper.count())
	})
}

func TestStartStop(t *testing.T) {
	sweeper := &countingSweeper{}
	clk := clock.NewMockClock(time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC))
	s := NewReminderScheduler(sweeper, clk, 9)

	s.Start()
	// Stop must return promptly even though the next fire is a day away.
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
