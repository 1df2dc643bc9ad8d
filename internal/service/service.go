package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pump-ai-fun/kind-of-stop-spam/internal/banlist"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/chat"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/directive"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/messages"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/metrics"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/parser"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/pipeline"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/pipeline/filters"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/utils"
)

type Service interface {
	// SiftMessage runs one raw scraped block through the full pipeline under
	// the given mode. An accepted message comes back as an entity; every
	// rejection is a nil entity plus the result explaining why. Expected
	// rejections are never errors.
	SiftMessage(ctx context.Context, raw string, mode chat.Mode) (*chat.Message, *pipeline.Result, error)
	StartMetricsUpdater(ctx context.Context)
}

type FilterService struct {
	logger   *slog.Logger
	lists    *banlist.Lists
	pipeline *pipeline.Manager
	throttle *filters.ThrottleFilter
	tracer   trace.Tracer
}

func NewFilterService(logger *slog.Logger, lists *banlist.Lists, window, ttl time.Duration) *FilterService {
	throttle := filters.NewThrottleFilter(window, ttl)
	pm := pipeline.NewManager(filters.NewBanFilter(lists), throttle)

	return &FilterService{
		logger:   logger,
		lists:    lists,
		pipeline: pm,
		throttle: throttle,
		tracer:   otel.Tracer("service"),
	}
}

func (s *FilterService) SiftMessage(ctx context.Context, raw string, mode chat.Mode) (*chat.Message, *pipeline.Result, error) {
	ctx, span := s.tracer.Start(ctx, "SiftMessage")
	defer span.End()
	span.SetAttributes(attribute.String("mode", mode.String()))

	block, ok := parser.ParseBlock(raw)
	if !ok {
		return nil, &pipeline.Result{
			IsAllowed:  false,
			Reason:     messages.MsgReasonMalformed,
			FilterName: "parser",
		}, nil
	}

	ex := directive.Extract(block.Content)
	now := time.Now()

	res, err := s.pipeline.Process(ctx, pipeline.Payload{
		User: block.User,
		Text: ex.Text,
		Key:  utils.NormalizeContent(ex.Text),
		Mode: mode,
		Now:  now,
	})
	if err != nil {
		return nil, nil, err
	}
	if !res.IsAllowed {
		return nil, res, nil
	}

	msg := &chat.Message{
		ID:        uuid.NewString(),
		User:      block.User,
		Text:      ex.Text,
		ArrivedAt: now,
		RawTime:   block.RawTime,
		ReplyTo:   block.ReplyTo,
		Colors:    ex.Colors,
		Effects:   ex.Effects,
	}
	if icon, ok := s.lists.TryGetIcon(block.User); ok {
		msg.Icon = icon
	}
	return msg, res, nil
}

// StartMetricsUpdater keeps the dedup cache size gauge current.
func (s *FilterService) StartMetricsUpdater(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				metrics.SetDedupEntries(float64(s.throttle.PendingKeys()))
			}
		}
	}()
}
