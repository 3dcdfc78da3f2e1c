package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garrettladley/wellscore/internal/config"
	"github.com/garrettladley/wellscore/internal/paths"
	"github.com/garrettladley/wellscore/internal/wellness"
	"github.com/garrettladley/wellscore/internal/xerrors"
	"github.com/garrettladley/wellscore/internal/xslog"
)

type app struct {
	logger *slog.Logger
	flags  struct {
		server  string
		apiKey  string
		weights string
		db      string
	}

	cfg     config.CLI
	engines *wellness.Holder
	backend backend
}

// init merges flags over the environment. Flags win.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.ReadCLI()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.Server = a.flags.server
	}
	if flags.Changed("api-key") {
		cfg.APIKey = a.flags.apiKey
	}
	if flags.Changed("weights") {
		cfg.WeightsFile = a.flags.weights
	}
	if flags.Changed("db") {
		cfg.DBPath = a.flags.db
	}
	a.cfg = cfg
	return nil
}

func (a *app) engine() (*wellness.Holder, error) {
	if a.engines != nil {
		return a.engines, nil
	}

	fallback, err := paths.Weights()
	if err != nil {
		return nil, err
	}
	weights, err := a.cfg.ResolveWeights(fallback)
	if err != nil {
		return nil, err
	}
	engine, err := wellness.NewEngine(weights)
	if err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}

	a.engines = wellness.NewHolder(engine)
	return a.engines, nil
}

// open returns the remote backend when a server is configured, otherwise
// the local SQLite history.
func (a *app) open(ctx context.Context) (backend, error) {
	if a.backend != nil {
		return a.backend, nil
	}

	if a.cfg.Server != "" {
		a.backend = newRemoteBackend(a.cfg.Server, a.cfg.APIKey)
		return a.backend, nil
	}

	engines, err := a.engine()
	if err != nil {
		return nil, err
	}

	path := a.cfg.DBPath
	if path == "" {
		if _, err := paths.EnsureDir(); err != nil {
			return nil, err
		}
		if path, err = paths.DB(); err != nil {
			return nil, err
		}
	}

	b, err := openLocalBackend(ctx, path, engines, a.logger)
	if err != nil {
		return nil, err
	}
	a.backend = b
	return a.backend, nil
}

func (a *app) close() {
	if a.backend == nil {
		return
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("failed to close backend", xslog.Error(err))
	}
}

// describe turns validation failures into one readable line.
func describe(err error) error {
	xerr := xerrors.As(err)
	if xerr == nil || xerr.Validation == nil || len(xerr.Validation.Fields) == 0 {
		return err
	}

	fields := make([]string, 0, len(xerr.Validation.Fields))
	for field, msg := range xerr.Validation.Fields {
		fields = append(fields, strings.TrimPrefix(field, "formData.")+" "+msg)
	}
	sort.Strings(fields)
	return errors.New("invalid input: " + strings.Join(fields, "; "))
}
