package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pump-ai-fun/kind-of-stop-spam/internal/banlist"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/chat"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/config"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/handler"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/metrics"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/repository"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/service"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/transport/ws"
)

type App struct {
	cfg    *config.Config
	logger *slog.Logger
	sink   handler.Sink
}

// NewApp wires the filter service; sink is the rendering collaborator that
// receives accepted messages.
func NewApp(cfg *config.Config, logger *slog.Logger, sink handler.Sink) (*App, error) {
	if sink == nil {
		return nil, fmt.Errorf("a sink is required")
	}
	return &App{
		cfg:    cfg,
		logger: logger,
		sink:   sink,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a.logger.Info("Starting chat filter service")

	lists := banlist.New(a.cfg.BannedWords, a.cfg.BannedMentions, a.cfg.UserIcons)
	svc := service.NewFilterService(a.logger, lists, a.cfg.RateLimitWindow, a.cfg.DedupTTL)
	svc.StartMetricsUpdater(ctx)

	var archive repository.MessageRepository
	if a.cfg.EnableArchive {
		db, err := repository.NewPostgresDB(a.cfg.GetDSN())
		if err != nil {
			return fmt.Errorf("failed to init db: %w", err)
		}
		archive = repository.NewMessageRepository(db)
	}

	h := handler.NewHandler(a.logger, svc, archive, a.sink)
	h.StartRetention(ctx, time.Hour, a.cfg.ArchiveRetention)

	metricsSrv := metrics.NewServer(a.logger, a.cfg.MetricsAddr)
	go func() {
		if err := metricsSrv.Listen(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("Metrics server failed", "error", err)
		}
	}()

	ingest := ws.NewServer(a.logger, a.cfg.ListenAddr)
	updates, cleanup, err := ingest.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start ingest server: %w", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			a.logger.Error("Cleanup failed", "error", err)
		}
	}()

	go h.Run(ctx, updates)

	<-ctx.Done()
	a.logger.Info("Shutting down...")

	return nil
}

// LogSink is the default rendering collaborator: it just logs accepted
// messages. Real deployments plug in an overlay renderer here.
type LogSink struct {
	Logger *slog.Logger
}

func (s *LogSink) Publish(_ context.Context, msg *chat.Message) {
	s.Logger.Info("Message surfaced",
		"user", msg.User,
		"text", msg.Text,
		"colors", msg.Colors,
		"effects", len(msg.Effects),
		"icon", msg.Icon,
	)
}
