package main

import (
	"fmt"

	"github.com/lox/taprand/internal/client"
	"github.com/lox/taprand/internal/server"
)

// FetchCmd prints a stream read from a running server
type FetchCmd struct {
	DistFlags `embed:""`

	URL   string `short:"u" help:"Server URL (default: http:// plus the configured server address)"`
	Count *int   `short:"n" help:"Number of values to request"`
	Seed  *int64 `short:"s" help:"Generator seed (default: config, then entropy)"`
}

func (c *FetchCmd) Run(g *Globals) error {
	if err := g.load(); err != nil {
		return err
	}
	spec, err := c.spec(g)
	if err != nil {
		return err
	}
	seed, err := g.resolveSeed(c.Seed)
	if err != nil {
		return err
	}

	req := server.Request{Seed: seed, Count: g.cfg.Draw.Count, Spec: spec}
	if c.Count != nil {
		req.Count = *c.Count
	}

	url := c.URL
	if url == "" {
		url = "http://" + g.cfg.Server.Address
	}

	ctx := setupSignalHandler(g.log)
	id, err := client.NewClient(url, g.log).Stream(ctx, req, func(m client.Message) error {
		_, err := fmt.Fprintln(g.out, m.Value.String())
		return err
	})
	if err != nil {
		return err
	}
	g.log.Debug("Fetched stream", "stream", id, "count", req.Count)
	return nil
}
