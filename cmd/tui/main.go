package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fkhayef/eatnsplit/internal/config"
	"github.com/fkhayef/eatnsplit/internal/session"
	"github.com/fkhayef/eatnsplit/internal/tui"
	"github.com/fkhayef/eatnsplit/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config.LoadDotEnv(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs only go to a file in debug mode
	var out io.Writer = io.Discard
	level := logging.ParseLevel(cfg.LogLevel)
	if level == slog.LevelDebug {
		f, err := tea.LogToFile("eatnsplit-debug.log", "")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := logging.New(out, level)

	svc, err := session.NewFromConfig(cfg, prometheus.NewRegistry(), logger)
	if err != nil {
		return fmt.Errorf("failed to build session: %w", err)
	}

	p := tea.NewProgram(tui.New(svc, cfg.DefaultImage), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui failed: %w", err)
	}
	return nil
}
