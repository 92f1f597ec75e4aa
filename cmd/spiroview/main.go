// Command spiroview explores the curve families and nodal fields in the
// terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/spiro"
)

func main() {
	var (
		family  = flag.String("family", "spirograph", "initial family")
		presets = flag.String("presets", "", "TOML presets file")
		preset  = flag.String("preset", "", "preset to start from")
		fps     = flag.Int("fps", 60, "frame rate")
		budget  = flag.Duration("budget", 0, "regeneration budget per frame; 0 keeps full density")
		logFile = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer func() {
			_ = f.Close()
		}()
		spiro.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	m, err := setup(*family, *presets, *preset, *fps, *budget)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

// setup builds the initial model from the command-line flags.
func setup(family, presetsPath, preset string, fps int, budget time.Duration) (model, error) {
	f, err := spiro.ParseFamily(family)
	if err != nil {
		return model{}, err
	}

	var opts []spiro.StateOption
	if budget > 0 {
		opts = append(opts, spiro.WithFrameBudget(budget))
	}
	state := spiro.NewState(f, spiro.NewGenerator(), opts...)

	var ps spiro.Presets
	if presetsPath != "" {
		if ps, err = loadPresets(presetsPath); err != nil {
			return model{}, err
		}
	}

	m := newModel(state, ps, fps)
	if preset != "" {
		if err := m.applyPreset(preset); err != nil {
			return model{}, err
		}
		for i, name := range m.names {
			if name == preset {
				m.preset = i
			}
		}
	}
	m.refresh()
	return m, nil
}

func loadPresets(path string) (spiro.Presets, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("open presets: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return spiro.LoadPresets(f)
}
