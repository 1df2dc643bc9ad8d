package ws

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/pump-ai-fun/kind-of-stop-spam/internal/chat"
)

func TestReadLoop_PhaseMapping(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s := NewServer(logger, ":0")
	updates := make(chan Update, 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		s.readLoop(ctx, conn, updates)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ingest"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	frames := []Frame{
		{Phase: PhaseBacklog, Block: "alice\n\nold message"},
		{Phase: PhaseLive, Block: "bob\n\nnew message"},
	}
	for _, f := range frames {
		if err := conn.WriteJSON(f); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	var got []Update
	for i := 0; i < len(frames); i++ {
		select {
		case upd := <-updates:
			got = append(got, upd)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for update %d", i)
		}
	}

	assert.Equal(t, chat.ModeHistorical, got[0].Mode)
	assert.Equal(t, "alice\n\nold message", got[0].Raw)
	assert.Equal(t, chat.ModeLive, got[1].Mode)
	assert.Equal(t, "bob\n\nnew message", got[1].Raw)
}
