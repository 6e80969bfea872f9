package client

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/taprand/internal/draw"
	"github.com/lox/taprand/internal/server"
	"github.com/lox/taprand/internal/streamid"
)

func startServer(t *testing.T, cfg server.Config, clock quartz.Clock) *httptest.Server {
	t.Helper()
	if cfg.MaxCount == 0 {
		cfg.MaxCount = 1_000_000
	}
	ts := httptest.NewServer(server.NewServer(cfg, log.New(io.Discard), clock).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func collect(t *testing.T, c *Client, req server.Request) ([]string, string, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var values []string
	id, err := c.Stream(ctx, req, func(m Message) error {
		values = append(values, m.Value.String())
		return nil
	})
	return values, id, err
}

func TestStream(t *testing.T) {
	ts := startServer(t, server.Config{}, quartz.NewMock(t))
	c := NewClient(ts.URL, log.New(io.Discard))

	values, id, err := collect(t, c, server.Request{
		Seed:  1,
		Count: 3,
		Spec:  draw.Spec{Kind: draw.KindInt32n, Bound: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"81", "87", "47"}, values)
	assert.NoError(t, streamid.Validate(id))

	values, _, err = collect(t, c, server.Request{
		Seed:  1,
		Count: 2,
		Spec:  draw.Spec{Kind: draw.KindUint64},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"5577006791947779410", "8674665223082153551"}, values)
}

func TestStreamRejected(t *testing.T) {
	ts := startServer(t, server.Config{MaxCount: 10}, quartz.NewMock(t))
	c := NewClient(ts.URL, log.New(io.Discard))

	_, _, err := collect(t, c, server.Request{Seed: 1, Count: 11, Spec: draw.Spec{Kind: draw.KindInt64}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestStreamTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clock := quartz.NewMock(t)
	ts := startServer(t, server.Config{StreamTimeout: time.Second}, clock)
	c := NewClient(ts.URL, log.New(io.Discard))

	first := true
	_, err := c.Stream(ctx, server.Request{Seed: 1, Count: 1_000_000, Spec: draw.Spec{Kind: draw.KindInt64}},
		func(m Message) error {
			if first {
				first = false
				clock.Advance(time.Second).MustWait(ctx)
			}
			return nil
		})
	assert.ErrorIs(t, err, ErrStreamTimeout)
}

func TestStreamCancelled(t *testing.T) {
	ts := startServer(t, server.Config{}, quartz.NewMock(t))
	c := NewClient(ts.URL, log.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := c.Stream(ctx, server.Request{Seed: 1, Count: 1_000_000, Spec: draw.Spec{Kind: draw.KindInt64}},
		func(m Message) error {
			cancel()
			return nil
		})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStreamURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://localhost:8080", "ws://localhost:8080/ws?count=1&kind=int64&seed=2"},
		{"https://example.com/rand/", "wss://example.com/rand/ws?count=1&kind=int64&seed=2"},
		{"ws://localhost:9000", "ws://localhost:9000/ws?count=1&kind=int64&seed=2"},
	}
	for _, tt := range tests {
		c := NewClient(tt.base, log.New(io.Discard))
		got, err := c.streamURL(server.Request{Seed: 2, Count: 1, Spec: draw.Spec{Kind: draw.KindInt64}})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
