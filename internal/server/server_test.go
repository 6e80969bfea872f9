package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/taprand/internal/draw"
	"github.com/lox/taprand/internal/randutil"
	"github.com/lox/taprand/internal/streamid"
)

type rawMessage struct {
	Index int             `json:"index"`
	Value json.RawMessage `json:"value"`
}

func startTestServer(t *testing.T, cfg Config, clock quartz.Clock) (*Server, *httptest.Server) {
	t.Helper()
	if cfg.MaxCount == 0 {
		cfg.MaxCount = 1_000_000
	}
	s := NewServer(cfg, log.New(io.Discard), clock)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func wsURL(ts *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?" + query
}

func dial(t *testing.T, ts *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, query), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) rawMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg rawMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHealth(t *testing.T) {
	_, ts := startTestServer(t, Config{}, quartz.NewMock(t))

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestStreamMatchesLocalGenerator(t *testing.T) {
	tests := []struct {
		query string
		seed  int64
		spec  draw.Spec
	}{
		{"kind=int32n&bound=100&seed=1&count=5", 1, draw.Spec{Kind: draw.KindInt32n, Bound: 100}},
		{"kind=uint64&seed=7&count=20", 7, draw.Spec{Kind: draw.KindUint64}},
		{"kind=float64&seed=-3&count=8", -3, draw.Spec{Kind: draw.KindFloat64}},
		{"kind=normal&mean=10&stddev=2&seed=42&count=16", 42, draw.Spec{Kind: draw.KindNormal, Mean: 10, StdDev: 2}},
		{"kind=zipf&s=1.5&v=50&seed=9&count=32", 9, draw.Spec{Kind: draw.KindZipf, S: 1.5, V: 50}},
	}

	_, ts := startTestServer(t, Config{}, quartz.NewMock(t))

	for _, tt := range tests {
		t.Run(string(tt.spec.Kind), func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			local, err := draw.New(randutil.New(tt.seed), tt.spec)
			require.NoError(t, err)

			conn := dial(t, ts, tt.query)
			n, err := intParam(q, "count", 0)
			require.NoError(t, err)
			for i := 0; i < int(n); i++ {
				msg := readMessage(t, conn)
				assert.Equal(t, i, msg.Index)
				assert.Equal(t, local.Next().String(), string(msg.Value), "draw %d", i)
			}

			_, _, err = conn.ReadMessage()
			assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
		})
	}
}

func TestStreamDefaults(t *testing.T) {
	_, ts := startTestServer(t, Config{}, quartz.NewMock(t))
	conn := dial(t, ts, "")

	first := readMessage(t, conn)
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "5577006791947779410", string(first.Value))

	for i := 1; i < defaultCount; i++ {
		readMessage(t, conn)
	}
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestStreamZeroCount(t *testing.T) {
	_, ts := startTestServer(t, Config{}, quartz.NewMock(t))
	conn := dial(t, ts, "count=0")

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestBadRequestsRejectedBeforeUpgrade(t *testing.T) {
	_, ts := startTestServer(t, Config{MaxCount: 100}, quartz.NewMock(t))

	tests := []struct {
		name  string
		query string
	}{
		{"unknown kind", "kind=gamma"},
		{"bad seed", "seed=abc"},
		{"negative count", "count=-1"},
		{"count over max", "count=101"},
		{"missing bound", "kind=int32n"},
		{"bound too large", "kind=int32n&bound=4294967296"},
		{"zipf exponent", "kind=zipf&s=1&v=10"},
		{"normal stddev", "kind=normal&stddev=0"},
		{"bad float", "kind=normal&mean=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, resp, err := websocket.DefaultDialer.Dial(wsURL(ts, tt.query), nil)
			if conn != nil {
				_ = conn.Close()
			}
			require.ErrorIs(t, err, websocket.ErrBadHandshake)
			require.NotNil(t, resp)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestStreamTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clock := quartz.NewMock(t)
	timeout := 5 * time.Second
	_, ts := startTestServer(t, Config{StreamTimeout: timeout}, clock)

	count := 1_000_000
	conn := dial(t, ts, "kind=int64&seed=1&count=1000000")

	// The timer is armed before the first message goes out.
	readMessage(t, conn)
	clock.Advance(timeout).MustWait(ctx)

	received := 1
	for {
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, _, err := conn.ReadMessage()
		if err != nil {
			assert.True(t, websocket.IsCloseError(err, websocket.CloseTryAgainLater), "got %v", err)
			break
		}
		received++
	}
	assert.Less(t, received, count)
}

func TestShutdownClosesStreams(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, ts := startTestServer(t, Config{}, quartz.NewMock(t))
	conn := dial(t, ts, "count=1000000")
	readMessage(t, conn)
	assert.Equal(t, 1, s.ActiveStreams())

	require.NoError(t, s.Shutdown(ctx))

	for {
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, _, err := conn.ReadMessage()
		if err != nil {
			assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
			break
		}
	}
}

func TestStreamsAfterShutdownGoAway(t *testing.T) {
	s, ts := startTestServer(t, Config{}, quartz.NewMock(t))
	require.NoError(t, s.Shutdown(context.Background()))

	conn := dial(t, ts, "count=1000000")
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

func TestStreamIDHeader(t *testing.T) {
	_, ts := startTestServer(t, Config{}, quartz.NewMock(t))

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(ts, "count=1"), nil)
	require.NoError(t, err)
	defer conn.Close()

	assert.NoError(t, streamid.Validate(resp.Header.Get(StreamIDHeader)))
}

func TestRequestValuesRoundTrip(t *testing.T) {
	reqs := []Request{
		{Seed: -5, Count: 3, Spec: draw.Spec{Kind: draw.KindInt64n, Bound: 1 << 40}},
		{Seed: 1, Count: 0, Spec: draw.Spec{Kind: draw.KindNormal, Mean: -2.5, StdDev: 0.1}},
		{Seed: 9, Count: 7, Spec: draw.Spec{Kind: draw.KindZipf, S: 1.25, V: 1000}},
	}
	for _, want := range reqs {
		got, err := parseRequest(want.Values(), 0)
		require.NoError(t, err)
		if want.Spec.Kind != draw.KindNormal {
			want.Spec.StdDev = 1
		}
		assert.Equal(t, want, got)
	}
}

func TestParseRequestDefaults(t *testing.T) {
	req, err := parseRequest(url.Values{}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), req.Seed)
	assert.Equal(t, defaultCount, req.Count)
	assert.Equal(t, draw.KindInt64, req.Spec.Kind)
	assert.Equal(t, 1.0, req.Spec.StdDev)
}
