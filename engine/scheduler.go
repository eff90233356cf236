package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/kinecam/parameter"
)

// Scheduler drives Session.TickAll on a fixed cadence with drift-corrected
// deadlines. When every rig reports itself at rest the cadence relaxes to
// the idle interval, mirroring the original host timer behavior; any
// activity snaps it back to the nominal tick.
type Scheduler struct {
	session *Session

	tickInterval time.Duration
	idleInterval time.Duration

	// onTick, when set, observes every pass from the scheduler goroutine;
	// it must not block
	onTick func(Report)

	ticks    atomic.Uint64
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithIntervals overrides the nominal and idle tick intervals.
func WithIntervals(tick, idle time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		s.tickInterval = tick
		s.idleInterval = idle
	}
}

// WithObserver registers a per-pass observer.
func WithObserver(fn func(Report)) SchedulerOption {
	return func(s *Scheduler) {
		s.onTick = fn
	}
}

// NewScheduler creates a stopped scheduler around a session.
func NewScheduler(session *Session, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		session:      session,
		tickInterval: parameter.TickInterval,
		idleInterval: parameter.IdleTickInterval,
		stopChan:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the scheduling loop.
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		go s.loop()
	}
}

// Stop halts the loop, waits for it to exit, and discards every rig so a
// later session starts from fresh state.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopChan)
			s.wg.Wait()
			s.session.Reset()
		}
	})
}

// Ticks returns the number of completed passes.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks.Load()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	deadline := time.Now().Add(s.tickInterval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		default:
		}

		now := time.Now()
		if !now.Before(deadline) {
			rep := s.session.TickAll()
			s.ticks.Add(1)
			if s.onTick != nil {
				s.onTick(rep)
			}

			interval := s.tickInterval
			if rep.AllIdle {
				interval = s.idleInterval
			}
			deadline = deadline.Add(interval)

			// if we fell far behind, rebase instead of bursting catch-up
			// ticks
			if now.Sub(deadline) > 2*interval {
				deadline = now.Add(interval)
			}
		}

		sleep := time.Until(deadline)
		if sleep > 0 {
			timer.Reset(sleep)
			select {
			case <-timer.C:
			case <-s.stopChan:
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				return
			}
		}
	}
}
