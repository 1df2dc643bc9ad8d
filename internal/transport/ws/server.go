package ws

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pump-ai-fun/kind-of-stop-spam/internal/chat"
)

// Frame is what the scraper pushes over the socket: one raw message block
// per frame, tagged with the ingestion phase. The scraper owns the single
// backlog-to-live switch and source-level identity.
type Frame struct {
	Phase string `json:"phase"`
	Block string `json:"block"`
}

const (
	PhaseBacklog = "backlog"
	PhaseLive    = "live"
)

// Update is one block handed to the handler together with its filtering mode.
type Update struct {
	Mode chat.Mode
	Raw  string
}

type Server struct {
	logger   *slog.Logger
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(logger *slog.Logger, addr string) *Server {
	return &Server{
		logger: logger,
		addr:   addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// Start listens for scraper connections and fans their frames into the
// returned channel. The cleanup function shuts the listener down.
func (s *Server) Start(ctx context.Context) (<-chan Update, func() error, error) {
	updates := make(chan Update, 100)

	mux := http.NewServeMux()
	mux.HandleFunc("/ingest", func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.logger.Error("Websocket upgrade failed", "error", err)
			return
		}
		s.logger.Info("Scraper connected", "remote", conn.RemoteAddr().String())
		s.readLoop(ctx, conn, updates)
	})

	server := &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	go func() {
		s.logger.Info("Ingest server listening", "addr", s.addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Ingest server failed", "error", err)
		}
	}()

	cleanup := func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	}

	return updates, cleanup, nil
}

func (s *Server) readLoop(ctx context.Context, conn *websocket.Conn, updates chan<- Update) {
	defer func() {
		_ = conn.Close()
		s.logger.Info("Scraper disconnected", "remote", conn.RemoteAddr().String())
	}()

	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Error("Read failed", "error", err)
			}
			return
		}

		mode := chat.ModeLive
		if frame.Phase == PhaseBacklog {
			mode = chat.ModeHistorical
		}

		select {
		case updates <- Update{Mode: mode, Raw: frame.Block}:
		case <-ctx.Done():
			return
		}
	}
}
