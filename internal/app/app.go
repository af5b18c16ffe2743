// Package app wires configuration, logging, storage and the terminal
// renderer into a playable session.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tatianab/text-adventure/internal/config"
	"github.com/tatianab/text-adventure/internal/engine"
	"github.com/tatianab/text-adventure/internal/observability"
	"github.com/tatianab/text-adventure/internal/store"
	"github.com/tatianab/text-adventure/internal/tui"
)

// Store reads and writes adventures.
type Store interface {
	engine.Loader
	engine.Saver
}

// NewStore returns the backend named by cfg. The returned close function
// releases any connection the store holds.
func NewStore(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (Store, func() error, error) {
	switch cfg.Backend {
	case "file":
		return store.NewFileStore(logger), func() error { return nil }, nil
	case "redis":
		rs := store.NewRedisStore(cfg.RedisAddr, cfg.RedisPrefix, logger)
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, nil, fmt.Errorf("connecting to redis at %s: %w", cfg.RedisAddr, err)
		}
		return rs, rs.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// OpenSession loads and validates the configured adventure and returns a
// session that has not begun yet.
func OpenSession(ctx context.Context, cfg *config.Config, st Store, logger *zap.Logger) (*engine.Session, error) {
	session, err := engine.Open(ctx, st, cfg.Adventure.Path,
		engine.WithStartLocation(cfg.Adventure.StartLocation),
		engine.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("adventure loaded",
		zap.String("path", cfg.Adventure.Path),
		zap.String("backend", cfg.Store.Backend),
		zap.String("session_id", session.ID.String()),
	)
	return session, nil
}

// Run plays the adventure named by the configuration at configPath until
// the player quits.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	st, closeStore, err := NewStore(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("closing store", zap.Error(err))
		}
	}()

	session, err := OpenSession(ctx, cfg, st, logger)
	if err != nil {
		logger.Error("opening adventure", zap.Error(err))
		return err
	}
	defer session.Close()

	if err := tui.Run(session); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	logger.Info("adventure ended", zap.String("session_id", session.ID.String()))
	return nil
}
