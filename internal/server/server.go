package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/taprand/internal/streamid"
)

// StreamIDHeader carries the ID the server assigned to a stream in the
// upgrade response.
const StreamIDHeader = "X-Stream-Id"

// Config holds the settings the server needs from the HCL configuration.
type Config struct {
	Address       string
	StreamTimeout time.Duration // zero disables the timeout
	MaxCount      int
}

var (
	errStreamTimeout = errors.New("stream timeout")
	errShuttingDown  = errors.New("server shutting down")
)

// Server streams deterministic draws over WebSocket connections
type Server struct {
	cfg        Config
	upgrader   websocket.Upgrader
	logger     *log.Logger
	clock      quartz.Clock
	ids        *streamid.Generator
	mu         sync.Mutex
	streams    map[*stream]struct{}
	closing    bool
	httpServer *http.Server
}

// NewServer creates a new draw streaming server
func NewServer(cfg Config, logger *log.Logger, clock quartz.Clock) *Server {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:  logger.WithPrefix("server"),
		clock:   clock,
		ids:     streamid.NewGenerator(clock, nil),
		streams: make(map[*stream]struct{}),
	}
}

// Handler returns the HTTP handler serving /ws and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start listens on the configured address and blocks until the server stops
func (s *Server) Start() error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info("Starting WebSocket server", "addr", s.cfg.Address)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", s.cfg.Address, err)
	}
	return nil
}

// Shutdown ends every open stream with a going-away close frame and stops
// the HTTP listener. Streams that register afterwards are closed the same
// way before their first draw.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closing = true
	for st := range s.streams {
		st.cancel(errShuttingDown)
	}
	srv := s.httpServer
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// ActiveStreams returns the number of streams currently being served.
func (s *Server) ActiveStreams() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.streams)
}

func (s *Server) register(st *stream) {
	s.mu.Lock()
	s.streams[st] = struct{}{}
	if s.closing {
		st.cancel(errShuttingDown)
	}
	total := len(s.streams)
	s.mu.Unlock()
	s.logger.Info("Client connected", "total", total)
}

func (s *Server) unregister(st *stream) {
	s.mu.Lock()
	delete(s.streams, st)
	total := len(s.streams)
	s.mu.Unlock()
	s.logger.Info("Client disconnected", "total", total)
}

// handleWebSocket validates the query, then upgrades and streams
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r.URL.Query(), s.cfg.MaxCount)
	if err != nil {
		s.logger.Debug("Rejected stream request", "query", r.URL.RawQuery, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	drawer, err := req.drawer()
	if err != nil {
		s.logger.Debug("Rejected stream request", "query", r.URL.RawQuery, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := s.ids.New()
	if err != nil {
		s.logger.Error("Failed to assign stream ID", "error", err)
		http.Error(w, "failed to assign stream ID", http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, http.Header{StreamIDHeader: {id}})
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "stream", id, "error", err)
		return
	}

	st := newStream(conn, id, req, drawer, s.logger)
	s.register(st)
	defer s.unregister(st)

	st.serve(s.clock, s.cfg.StreamTimeout)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}
