// Package client reads draw streams from a taprand server.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/taprand/internal/server"
)

var (
	// ErrStreamTimeout is returned when the server cut the stream short
	// because it ran past its timeout.
	ErrStreamTimeout = errors.New("stream timed out on server")

	// ErrServerShutdown is returned when the server went away mid-stream.
	ErrServerShutdown = errors.New("server shut down")
)

// Message is one received draw. Value keeps the exact text the server sent
// so large integers and floats round-trip unchanged.
type Message struct {
	Index int         `json:"index"`
	Value json.Number `json:"value"`
}

// Client connects to a draw server
type Client struct {
	serverURL string
	dialer    *websocket.Dialer
	logger    *log.Logger
}

// NewClient creates a new WebSocket client
func NewClient(serverURL string, logger *log.Logger) *Client {
	return &Client{
		serverURL: serverURL,
		dialer:    websocket.DefaultDialer,
		logger:    logger.WithPrefix("client"),
	}
}

// streamURL builds the /ws URL for req, converting http schemes to ws.
func (c *Client) streamURL(req server.Request) (string, error) {
	u, err := url.Parse(c.serverURL)
	if err != nil {
		return "", fmt.Errorf("invalid server URL: %w", err)
	}

	switch u.Scheme {
	case "http", "":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	u.RawQuery = req.Values().Encode()
	return u.String(), nil
}

// Stream requests req from the server and calls fn for each message in
// order. It returns the server-assigned stream ID once the server closes
// the stream normally.
func (c *Client) Stream(ctx context.Context, req server.Request, fn func(Message) error) (string, error) {
	u, err := c.streamURL(req)
	if err != nil {
		return "", err
	}

	c.logger.Debug("Connecting to server", "url", u)
	conn, resp, err := c.dialer.DialContext(ctx, u, nil)
	if err != nil {
		if resp != nil {
			return "", fmt.Errorf("failed to connect: %w (status %d)", err, resp.StatusCode)
		}
		return "", fmt.Errorf("failed to connect: %w", err)
	}
	defer func() {
		_ = conn.Close() // Ignore close errors during cleanup
	}()

	id := resp.Header.Get(server.StreamIDHeader)
	logger := c.logger.With("stream", id)

	// Unblock the read loop when the caller gives up.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	received := 0
	for {
		var msg Message
		err := conn.ReadJSON(&msg)
		switch {
		case err == nil:
		case websocket.IsCloseError(err, websocket.CloseNormalClosure):
			logger.Debug("Stream complete", "received", received)
			if received != req.Count {
				return id, fmt.Errorf("stream ended after %d of %d messages", received, req.Count)
			}
			return id, nil
		case websocket.IsCloseError(err, websocket.CloseTryAgainLater):
			return id, fmt.Errorf("%w after %d messages", ErrStreamTimeout, received)
		case websocket.IsCloseError(err, websocket.CloseGoingAway):
			return id, fmt.Errorf("%w after %d messages", ErrServerShutdown, received)
		case ctx.Err() != nil:
			return id, ctx.Err()
		default:
			return id, fmt.Errorf("reading stream: %w", err)
		}

		if msg.Index != received {
			return id, fmt.Errorf("message %d arrived out of order, expected %d", msg.Index, received)
		}
		if err := fn(msg); err != nil {
			return id, err
		}
		received++
	}
}
