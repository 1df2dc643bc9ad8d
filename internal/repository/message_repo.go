package repository

import (
	"context"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/pump-ai-fun/kind-of-stop-spam/internal/chat"
)

type MessageRepository interface {
	SaveMessage(ctx context.Context, msg *chat.Message) error
	RecentMessages(ctx context.Context, limit int) ([]ArchivedMessage, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type PostgresMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) SaveMessage(ctx context.Context, msg *chat.Message) error {
	row := ArchivedMessage{
		ID:        msg.ID,
		Username:  msg.User,
		Text:      msg.Text,
		RawTime:   msg.RawTime,
		ReplyTo:   msg.ReplyTo,
		Colors:    pq.StringArray(msg.Colors),
		Icon:      msg.Icon,
		ArrivedAt: msg.ArrivedAt,
	}
	for _, eff := range msg.Effects {
		row.Effects = append(row.Effects, eff.String())
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *PostgresMessageRepository) RecentMessages(ctx context.Context, limit int) ([]ArchivedMessage, error) {
	var rows []ArchivedMessage
	err := r.db.WithContext(ctx).
		Order("arrived_at desc").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *PostgresMessageRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("arrived_at < ?", cutoff).
		Delete(&ArchivedMessage{})
	return res.RowsAffected, res.Error
}
