package server

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/taprand/internal/draw"
	"github.com/lox/taprand/internal/randutil"
	"github.com/lox/taprand/srand"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer
	maxMessageSize = 512

	defaultCount = 10
)

// Message is one streamed draw.
type Message struct {
	Index int        `json:"index"`
	Value draw.Value `json:"value"`
}

// Request is a parsed /ws query.
type Request struct {
	Seed  int64
	Count int
	Spec  draw.Spec
}

// Values encodes the request as a /ws query string.
func (r Request) Values() url.Values {
	q := url.Values{}
	q.Set("kind", string(r.Spec.Kind))
	q.Set("seed", strconv.FormatInt(r.Seed, 10))
	q.Set("count", strconv.Itoa(r.Count))
	switch r.Spec.Kind {
	case draw.KindInt32n, draw.KindInt64n:
		q.Set("bound", strconv.FormatInt(r.Spec.Bound, 10))
	case draw.KindNormal:
		q.Set("mean", strconv.FormatFloat(r.Spec.Mean, 'g', -1, 64))
		q.Set("stddev", strconv.FormatFloat(r.Spec.StdDev, 'g', -1, 64))
	case draw.KindZipf:
		q.Set("s", strconv.FormatFloat(r.Spec.S, 'g', -1, 64))
		q.Set("v", strconv.FormatInt(r.Spec.V, 10))
	}
	return q
}

func (r Request) drawer() (draw.Drawer, error) {
	return draw.New(randutil.New(r.Seed), r.Spec)
}

// parseRequest reads the stream parameters from a query string. Missing
// values fall back to the int64 kind, the default seed and ten draws.
func parseRequest(q url.Values, maxCount int) (Request, error) {
	req := Request{
		Seed:  srand.DefaultSeed,
		Count: defaultCount,
		Spec:  draw.Spec{Kind: draw.KindInt64, StdDev: 1},
	}

	if v := q.Get("kind"); v != "" {
		kind, err := draw.ParseKind(v)
		if err != nil {
			return Request{}, err
		}
		req.Spec.Kind = kind
	}

	var err error
	if req.Seed, err = intParam(q, "seed", req.Seed); err != nil {
		return Request{}, err
	}
	count, err := intParam(q, "count", int64(req.Count))
	if err != nil {
		return Request{}, err
	}
	if count < 0 {
		return Request{}, fmt.Errorf("count must not be negative, got %d", count)
	}
	if maxCount > 0 && count > int64(maxCount) {
		return Request{}, fmt.Errorf("count %d exceeds maximum %d", count, maxCount)
	}
	req.Count = int(count)

	if req.Spec.Bound, err = intParam(q, "bound", 0); err != nil {
		return Request{}, err
	}
	if req.Spec.V, err = intParam(q, "v", 0); err != nil {
		return Request{}, err
	}
	if req.Spec.S, err = floatParam(q, "s", 0); err != nil {
		return Request{}, err
	}
	if req.Spec.Mean, err = floatParam(q, "mean", 0); err != nil {
		return Request{}, err
	}
	if req.Spec.StdDev, err = floatParam(q, "stddev", req.Spec.StdDev); err != nil {
		return Request{}, err
	}

	if err := req.Spec.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

func intParam(q url.Values, name string, def int64) (int64, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return n, nil
}

func floatParam(q url.Values, name string, def float64) (float64, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return f, nil
}

// stream writes one request's draws to a single connection.
type stream struct {
	id     string
	conn   *websocket.Conn
	req    Request
	drawer draw.Drawer
	logger *log.Logger
	ctx    context.Context
	cancel context.CancelCauseFunc
}

func newStream(conn *websocket.Conn, id string, req Request, drawer draw.Drawer, logger *log.Logger) *stream {
	ctx, cancel := context.WithCancelCause(context.Background())
	return &stream{
		id:     id,
		conn:   conn,
		req:    req,
		drawer: drawer,
		logger: logger.With("stream", id, "seed", req.Seed, "kind", req.Spec.Kind),
		ctx:    ctx,
		cancel: cancel,
	}
}

// serve sends the requested draws followed by a close frame. The timeout is
// armed before the first message is written.
func (st *stream) serve(clock quartz.Clock, timeout time.Duration) {
	defer func() {
		st.cancel(nil)
		_ = st.conn.Close() // Ignore close errors during cleanup
	}()

	if timeout > 0 {
		timer := clock.AfterFunc(timeout, func() {
			st.cancel(errStreamTimeout)
		})
		defer timer.Stop()
	}

	go st.readPump()

	sent, err := st.writeAll()
	switch {
	case err == nil:
		st.logger.Debug("Stream complete", "sent", sent)
		st.close(websocket.CloseNormalClosure, "")
	case errors.Is(err, errStreamTimeout):
		st.logger.Warn("Stream timed out", "sent", sent, "count", st.req.Count)
		st.close(websocket.CloseTryAgainLater, errStreamTimeout.Error())
	case errors.Is(err, errShuttingDown):
		st.close(websocket.CloseGoingAway, errShuttingDown.Error())
	default:
		st.logger.Debug("Stream aborted", "sent", sent, "error", err)
	}
}

func (st *stream) writeAll() (int, error) {
	for i := 0; i < st.req.Count; i++ {
		select {
		case <-st.ctx.Done():
			return i, context.Cause(st.ctx)
		default:
		}

		msg := Message{Index: i, Value: st.drawer.Next()}
		_ = st.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := st.conn.WriteJSON(msg); err != nil {
			return i, fmt.Errorf("write message %d: %w", i, err)
		}
	}
	return st.req.Count, nil
}

func (st *stream) close(code int, text string) {
	_ = st.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = st.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, text))
}

// readPump drains client frames so control messages are processed, and ends
// the stream when the client goes away.
func (st *stream) readPump() {
	st.conn.SetReadLimit(maxMessageSize)
	for {
		if _, _, err := st.conn.ReadMessage(); err != nil {
			st.cancel(fmt.Errorf("client gone: %w", err))
			return
		}
	}
}
