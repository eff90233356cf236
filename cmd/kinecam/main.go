package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/kinecam/core"
	"github.com/lixenwraith/kinecam/sim"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	muteFlag   = flag.Bool("mute", false, "Disable audio cues")
)

// fileConfig is the on-disk shape of the controller settings.
type fileConfig struct {
	Rig struct {
		AutoPilot          *bool    `toml:"auto_pilot"`
		BreakOnManual      *bool    `toml:"break_on_manual"`
		DistanceMultiplier *float64 `toml:"distance_multiplier"`
		Speed              *float64 `toml:"speed"`
		Friction           *float64 `toml:"friction"`
		Drift              *bool    `toml:"drift"`
		DriftIntensity     *float64 `toml:"drift_intensity"`
	} `toml:"rig"`
	Sim struct {
		Mute *bool `toml:"mute"`
	} `toml:"sim"`
}

// loadConfig overlays file settings on the defaults; absent keys keep
// their default values.
func loadConfig(path string) (core.Config, bool, error) {
	cfg := core.DefaultConfig()
	mute := false
	if path == "" {
		return cfg, mute, nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return cfg, mute, fmt.Errorf("load config %s: %w", path, err)
	}

	if fc.Rig.AutoPilot != nil {
		cfg.AutoPilot = *fc.Rig.AutoPilot
	}
	if fc.Rig.BreakOnManual != nil {
		cfg.BreakOnManual = *fc.Rig.BreakOnManual
	}
	if fc.Rig.DistanceMultiplier != nil {
		cfg.DistanceMultiplier = *fc.Rig.DistanceMultiplier
	}
	if fc.Rig.Speed != nil {
		cfg.Speed = *fc.Rig.Speed
	}
	if fc.Rig.Friction != nil {
		cfg.Friction = *fc.Rig.Friction
	}
	if fc.Rig.Drift != nil {
		cfg.Drift = *fc.Rig.Drift
	}
	if fc.Rig.DriftIntensity != nil {
		cfg.DriftIntensity = *fc.Rig.DriftIntensity
	}
	if fc.Sim.Mute != nil {
		mute = *fc.Sim.Mute
	}
	return cfg, mute, nil
}

func main() {
	// Panic recovery: make sure the crash is visible after tcell restores
	// the terminal during unwind
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nKINECAM CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, mute, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		mute = true
	}

	app := sim.NewApp(cfg, mute)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
