package engine

import (
	"github.com/lixenwraith/kinecam/core"
	"github.com/lixenwraith/kinecam/rig"
	"github.com/lixenwraith/kinecam/status"
)

// Session owns one rig per active viewport for the lifetime of a toggle
// session. Rigs are created the first time the host reports a viewport and
// dropped when it disappears; stopping the session discards all of them,
// so every toggle-on starts from fresh state.
type Session struct {
	host   core.Host
	clock  core.Clock
	config func() core.Config
	stats  *status.Registry

	rigs map[core.ViewportID]*rig.Rig
}

// Report aggregates one scheduling pass over every live rig.
type Report struct {
	AllIdle      bool
	Changed      bool
	ModeSwitches int
	CoastStarts  int
	Resets       int
}

// NewSession creates an empty session. config is called once per pass and
// its result shared by every rig ticked in that pass.
func NewSession(host core.Host, clock core.Clock, config func() core.Config, stats *status.Registry) *Session {
	return &Session{
		host:   host,
		clock:  clock,
		config: config,
		stats:  stats,
		rigs:   make(map[core.ViewportID]*rig.Rig),
	}
}

// TickAll runs one update on every viewport the host reports active.
// Viewports may be ticked in any order; rigs own disjoint state.
func (s *Session) TickAll() Report {
	cfg := s.config()
	rep := Report{AllIdle: true}

	ids := s.host.Viewports()
	seen := make(map[core.ViewportID]bool, len(ids))
	for _, id := range ids {
		r, ok := s.rigs[id]
		if !ok {
			r = rig.New(id, s.host, s.clock, s.stats)
			s.rigs[id] = r
		}
		seen[id] = true

		res := r.Tick(cfg)
		if !res.Idle {
			rep.AllIdle = false
		}
		if res.Changed {
			rep.Changed = true
		}
		if res.ModeSwitched {
			rep.ModeSwitches++
		}
		if res.CoastStarted {
			rep.CoastStarts++
		}
		if res.Reset {
			rep.Resets++
		}
	}

	// drop rigs whose viewport vanished
	for id := range s.rigs {
		if !seen[id] {
			delete(s.rigs, id)
		}
	}
	return rep
}

// RigCount returns the number of live rigs.
func (s *Session) RigCount() int {
	return len(s.rigs)
}

// Rig returns the rig for a viewport, nil if none exists yet.
func (s *Session) Rig(id core.ViewportID) *rig.Rig {
	return s.rigs[id]
}

// Reset discards every rig. The next TickAll recreates them from scratch,
// which is exactly the toggle-off/toggle-on semantics of the controller.
func (s *Session) Reset() {
	s.rigs = make(map[core.ViewportID]*rig.Rig)
}
