package repository

import (
	"time"

	"github.com/lib/pq"
)

type ArchivedMessage struct {
	ID        string         `gorm:"primaryKey;size:36"`
	Username  string         `gorm:"size:255;index"`
	Text      string         `gorm:"type:text"`
	RawTime   string         `gorm:"size:64"`
	ReplyTo   string         `gorm:"type:text"`
	Colors    pq.StringArray `gorm:"type:text[]"`
	Effects   pq.StringArray `gorm:"type:text[]"`
	Icon      string         `gorm:"size:16"`
	ArrivedAt time.Time      `gorm:"index"`
}
