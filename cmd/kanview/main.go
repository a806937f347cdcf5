package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/Kavantix/kanview/internal/api"
	"github.com/Kavantix/kanview/internal/app"
	"github.com/Kavantix/kanview/internal/config"
	"github.com/Kavantix/kanview/internal/flags"
	"github.com/Kavantix/kanview/internal/ticket"
	"github.com/Kavantix/kanview/internal/view"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	f, err := flags.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if f.LogFile() != "" {
		logFile, err := tea.LogToFile(f.LogFile(), "kanview")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	if f.Debug() {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	opts, err := options(f)
	if err != nil {
		slog.Error("Invalid configuration", slog.String("error", err.Error()))
		opts = app.Options{State: view.Default(), StartupErr: err}
	}

	zone.NewGlobal()
	defer zone.Close()

	program := tea.NewProgram(
		app.New(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	slog.Info("Starting", slog.String("url", opts.Source), slog.String("grouping", opts.State.Grouping.String()))

	final, err := program.Run()
	if err != nil {
		slog.Error("Running program failed: ", slog.String("error", err.Error()))
		return err
	}
	if m, ok := final.(app.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// options resolves the configuration into what the app needs to start.
func options(f *flags.Context) (app.Options, error) {
	cfg, err := config.Load(f)
	if err != nil {
		return app.Options{}, err
	}
	if err := cfg.Validate(); err != nil {
		return app.Options{}, err
	}
	state, err := cfg.ViewState()
	if err != nil {
		return app.Options{}, err
	}
	locale, err := cfg.Language()
	if err != nil {
		return app.Options{}, err
	}

	client := api.New(cfg.APIURL, api.WithTimeout(cfg.Timeout))
	return app.Options{
		Store:  ticket.NewStore(client),
		State:  state,
		Locale: locale,
		Source: client.URL(),
	}, nil
}
