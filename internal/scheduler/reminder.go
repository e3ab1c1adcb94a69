// Package scheduler runs the daily reminder sweep at a fixed local-time hour.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"salon-booking/internal/pkg/clock"
)

// Sweeper is satisfied by usecase.ReminderCommands.
type Sweeper interface {
	RunReminderSweep(ctx context.Context) error
}

type ReminderScheduler struct {
	sweeper  Sweeper
	clock    clock.Clock
	hour     int
	done     chan struct{}
	wg       sync.WaitGroup
	inFlight atomic.Bool
}

func NewReminderScheduler(sweeper Sweeper, clk clock.Clock, hour int) *ReminderScheduler {
	return &ReminderScheduler{
		sweeper: sweeper,
		clock:   clk,
		hour:    hour,
		done:    make(chan struct{}),
	}
}

func (s *ReminderScheduler) Start() {
	s.wg.Add(1)
	go s.loop()
	slog.Info("リマインダースケジューラを開始しました", "hour", s.hour)
}

func (s *ReminderScheduler) Stop() {
	close(s.done)
	s.wg.Wait()
}

func (s *ReminderScheduler) loop() {
	defer s.wg.Done()

	for {
		now := s.clock.Now()
		next := nextFireTime(now, s.hour)
		timer := time.NewTimer(next.Sub(now))

		select {
		case <-s.done:
			timer.Stop()
			return
		case <-timer.C:
			s.runOnce()
		}
	}
}

// RunNow triggers a sweep outside the daily schedule. Used by the admin API.
func (s *ReminderScheduler) RunNow(ctx context.Context) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		slog.Info("リマインダー掃引は既に実行中のためスキップします")
		return nil
	}
	defer s.inFlight.Store(false)
	return s.sweeper.RunReminderSweep(ctx)
}

func (s *ReminderScheduler) runOnce() {
	if !s.inFlight.CompareAndSwap(false, true) {
		slog.Info("リマインダー掃引は既に実行中のためスキップします")
		return
	}
	defer s.inFlight.Store(false)

	if err := s.sweeper.RunReminderSweep(context.Background()); err != nil {
		slog.Error("リマインダー掃引に失敗しました", "error", err.Error())
	}
}

// nextFireTime returns the next occurrence of hour:00 strictly after now, in
// now's location.
func nextFireTime(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
