package main

import (
	"context"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/taprand/internal/server"
)

// ServeCmd streams draws to WebSocket clients
type ServeCmd struct {
	Addr string `short:"a" help:"Server address to bind to (overrides config)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	if err := g.load(); err != nil {
		return err
	}

	cfg := server.Config{
		Address:       g.cfg.Server.Address,
		StreamTimeout: g.cfg.StreamTimeout(),
		MaxCount:      g.cfg.Server.MaxCount,
	}
	if c.Addr != "" {
		cfg.Address = c.Addr
	}

	s := server.NewServer(cfg, g.log, quartz.NewReal())

	ctx := setupSignalHandler(g.log)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- s.Start()
	}()

	select {
	case <-ctx.Done():
		g.log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
