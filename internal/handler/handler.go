package handler

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pump-ai-fun/kind-of-stop-spam/internal/chat"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/metrics"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/repository"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/service"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/transport/ws"
)

// Sink is the rendering collaborator boundary: whatever consumes accepted
// messages. The filter never produces markup.
type Sink interface {
	Publish(ctx context.Context, msg *chat.Message)
}

type Handler struct {
	logger  *slog.Logger
	svc     service.Service
	archive repository.MessageRepository // nil when archiving is disabled
	sink    Sink
	tracer  trace.Tracer
}

func NewHandler(logger *slog.Logger, svc service.Service, archive repository.MessageRepository, sink Sink) *Handler {
	return &Handler{
		logger:  logger,
		svc:     svc,
		archive: archive,
		sink:    sink,
		tracer:  otel.Tracer("handler"),
	}
}

func (h *Handler) HandleUpdate(ctx context.Context, upd ws.Update) {
	start := time.Now()

	ctx, span := h.tracer.Start(ctx, "HandleUpdate")
	defer span.End()
	span.SetAttributes(attribute.String("mode", upd.Mode.String()))

	metrics.IncProcessed(upd.Mode.String())

	msg, res, err := h.svc.SiftMessage(ctx, upd.Raw, upd.Mode)
	metrics.ObserveSift(upd.Mode.String(), time.Since(start).Seconds(), err)
	if err != nil {
		h.logger.Error("Failed to sift block", "error", err)
		return
	}

	if msg == nil {
		metrics.IncRejected(res.FilterName)
		h.logger.Debug("Block rejected", "reason", res.Reason, "filter", res.FilterName)
		return
	}

	metrics.IncAccepted(upd.Mode.String())
	h.logger.Info("Message accepted",
		"id", msg.ID,
		"user", msg.User,
		"effects", len(msg.Effects),
		"mode", upd.Mode.String(),
	)

	if h.archive != nil {
		if err := h.archive.SaveMessage(ctx, msg); err != nil {
			h.logger.Error("Failed to archive message", "id", msg.ID, "error", err)
		}
	}
	h.sink.Publish(ctx, msg)
}

// Run drains the update channel until it closes or the context ends.
func (h *Handler) Run(ctx context.Context, updates <-chan ws.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			h.HandleUpdate(ctx, upd)
		}
	}
}

// StartRetention deletes archived messages older than maxAge on a timer.
func (h *Handler) StartRetention(ctx context.Context, interval, maxAge time.Duration) {
	if h.archive == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := h.archive.DeleteOlderThan(ctx, time.Now().Add(-maxAge))
				if err != nil {
					h.logger.Error("Retention sweep failed", "error", err)
					continue
				}
				if n > 0 {
					h.logger.Info("Retention sweep", "deleted", n)
				}
			}
		}
	}()
}
