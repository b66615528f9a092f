package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/dilmatt/rangegrid/internal/actions"
	"github.com/dilmatt/rangegrid/internal/hand"
	"github.com/dilmatt/rangegrid/internal/tui"
)

// EditCmd opens the interactive grid editor.
type EditCmd struct {
	Config   string `short:"c" default:"rangegrid.hcl" help:"Path to HCL action catalogue file"`
	Range    string `short:"r" help:"Initial range notation painted with the first action"`
	ReadOnly bool   `help:"Open the grid as a non-interactive display"`
	Seed     int64  `help:"Deterministic RNG seed for card visuals"`
	LogFile  string `long:"log-file" help:"Log file path (logging is disabled without it)"`
	LogLevel string `long:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
}

func (c *EditCmd) Run() error {
	logger, cleanup, err := setupLogger(c.LogFile, c.LogLevel)
	if err != nil {
		return err
	}
	defer cleanup()

	catalogue, err := actions.LoadCatalogue(c.Config)
	if err != nil {
		return fmt.Errorf("loading catalogue: %w", err)
	}

	initial := map[hand.Label]string{}
	if c.Range != "" {
		set, err := hand.ParseNotation(c.Range)
		if err != nil {
			return fmt.Errorf("parsing initial range: %w", err)
		}
		first := catalogue.Actions()[0].ID
		for l := range set {
			initial[l] = first
		}
	}

	profile := termenv.ColorProfile()
	logger.Info("starting editor",
		"config", c.Config,
		"actions", catalogue.Len(),
		"read_only", c.ReadOnly,
		"color_profile", profile)
	if profile == termenv.Ascii {
		logger.Warn("terminal reports no color support; fills will be invisible")
	}

	model := tui.NewModel(logger, tui.Options{
		Catalogue: catalogue,
		Initial:   initial,
		ReadOnly:  c.ReadOnly,
		Seed:      c.Seed,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}
