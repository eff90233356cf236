package sim

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kinecam/core"
	"github.com/lixenwraith/kinecam/engine"
	"github.com/lixenwraith/kinecam/status"
)

const gestureFPS = 100

// App wires the world, the controller engine, keyboard gestures, and the
// terminal renderer into one interactive session.
type App struct {
	world   *World
	gesture *Gesture
	audio   *Audio
	stats   *status.Registry
	session *engine.Session
	sched   *engine.Scheduler

	cfgMu sync.Mutex
	cfg   core.Config

	reports chan engine.Report
}

// NewApp builds a ready-to-run simulator.
func NewApp(cfg core.Config, mute bool) *App {
	a := &App{
		world:   NewWorld(),
		gesture: NewGesture(gestureFPS),
		audio:   NewAudio(mute),
		stats:   status.NewRegistry(),
		cfg:     cfg,
		reports: make(chan engine.Report, 16),
	}
	a.session = engine.NewSession(a.world, engine.NewMonotonicClock(), a.config, a.stats)
	a.sched = engine.NewScheduler(a.session, engine.WithObserver(a.observe))
	return a
}

func (a *App) config() core.Config {
	a.cfgMu.Lock()
	defer a.cfgMu.Unlock()
	return a.cfg
}

func (a *App) mutateConfig(fn func(*core.Config)) {
	a.cfgMu.Lock()
	fn(&a.cfg)
	a.cfgMu.Unlock()
}

// observe runs on the scheduler goroutine; it only forwards.
func (a *App) observe(rep engine.Report) {
	if rep.ModeSwitches == 0 && rep.CoastStarts == 0 {
		return
	}
	select {
	case a.reports <- rep:
	default:
	}
}

// Run blocks until the user quits.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	defer a.audio.Close()
	screen.HideCursor()

	view := NewView(screen)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.sched.Start()
	defer a.sched.Stop()

	gestureTick := time.NewTicker(time.Second / gestureFPS)
	defer gestureTick.Stop()
	renderTick := time.NewTicker(time.Second / 30)
	defer renderTick.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := a.handleEvent(ev, screen); quit {
				return nil
			}

		case <-gestureTick.C:
			a.gesture.Step(a.world)

		case rep := <-a.reports:
			if rep.ModeSwitches > 0 {
				a.audio.ModeSwitch()
			}
			if rep.CoastStarts > 0 {
				a.audio.CoastStart()
			}

		case <-renderTick.C:
			a.render(view)

		case <-a.world.Redraw():
			a.render(view)
		}
	}
}

func (a *App) render(view *View) {
	mode := core.ModeManual
	coasting := false
	if r := a.session.Rig(ViewportMain); r != nil {
		mode = r.Mode()
		coasting = r.Coasting()
	}
	view.Render(a.world, mode, coasting, a.stats.Snapshot())
}

// handleEvent maps keys to gestures and config toggles. Returns true on
// quit.
func (a *App) handleEvent(ev tcell.Event, screen tcell.Screen) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		if _, isResize := ev.(*tcell.EventResize); isResize {
			screen.Sync()
		}
		return false
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		a.gesture.Orbit(0.15, 0)
	case tcell.KeyRight:
		a.gesture.Orbit(-0.15, 0)
	case tcell.KeyUp:
		a.gesture.Orbit(0, 0.1)
	case tcell.KeyDown:
		a.gesture.Orbit(0, -0.1)
	case tcell.KeyTab:
		a.world.CycleSelection()
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return true
		case 'w':
			a.gesture.Pan(0, 0.2)
		case 's':
			a.gesture.Pan(0, -0.2)
		case 'a':
			a.gesture.Pan(-0.2, 0)
		case 'd':
			a.gesture.Pan(0.2, 0)
		case '+', '=':
			a.gesture.Zoom(-0.15)
		case '-':
			a.gesture.Zoom(0.15)
		case ' ':
			a.gesture.Halt()
		case 'e':
			a.world.ToggleEdit()
		case 'p':
			a.world.TogglePerspective()
		case '1':
			a.mutateConfig(func(c *core.Config) { c.AutoPilot = !c.AutoPilot })
		case '2':
			a.mutateConfig(func(c *core.Config) { c.BreakOnManual = !c.BreakOnManual })
		case '3':
			a.mutateConfig(func(c *core.Config) { c.Drift = !c.Drift })
		case '[':
			a.mutateConfig(func(c *core.Config) {
				c.DriftIntensity -= 0.05
				if c.DriftIntensity < 0 {
					c.DriftIntensity = 0
				}
			})
		case ']':
			a.mutateConfig(func(c *core.Config) {
				c.DriftIntensity += 0.05
				if c.DriftIntensity > 1 {
					c.DriftIntensity = 1
				}
			})
		case ',':
			a.mutateConfig(func(c *core.Config) {
				c.Friction -= 0.02
				if c.Friction < 0 {
					c.Friction = 0
				}
			})
		case '.':
			a.mutateConfig(func(c *core.Config) {
				c.Friction += 0.02
				if c.Friction > 1 {
					c.Friction = 1
				}
			})
		case '<':
			a.mutateConfig(func(c *core.Config) {
				c.Speed -= 0.01
				if c.Speed < 0.01 {
					c.Speed = 0.01
				}
			})
		case '>':
			a.mutateConfig(func(c *core.Config) {
				c.Speed += 0.01
				if c.Speed > 0.2 {
					c.Speed = 0.2
				}
			})
		}
	}
	return false
}
