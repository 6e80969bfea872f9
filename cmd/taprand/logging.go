package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/taprand/internal/entropy"
)

// newLogger configures charmbracelet/log for console output at the given level
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	}), nil
}

// setupSignalHandler creates a context that is cancelled on interrupt signals and logs
func setupSignalHandler(logger *log.Logger) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("Received signal, shutting down gracefully", "signal", sig.String())
		cancel()
	}()

	return ctx
}

// resolveSeed picks the seed for a command: the flag, then the config file,
// then fresh entropy. The chosen seed is logged so the run can be replayed.
func (g *Globals) resolveSeed(flag *int64) (int64, error) {
	if flag != nil {
		g.log.Debug("Using seed from flag", "seed", *flag)
		return *flag, nil
	}
	if g.cfg.Seed != nil {
		g.log.Debug("Using seed from config", "seed", *g.cfg.Seed)
		return *g.cfg.Seed, nil
	}
	seed, err := entropy.Seed()
	if err != nil {
		return 0, err
	}
	g.log.Info("Using random seed", "seed", seed)
	return seed, nil
}
