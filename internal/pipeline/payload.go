package pipeline

import (
	"time"

	"github.com/pump-ai-fun/kind-of-stop-spam/internal/chat"
)

// Payload is one parsed, cleaned message on its way through the filters.
type Payload struct {
	User string
	Text string
	// Key is the normalized comparison key derived from Text; dedup and ban
	// checks run against it, never against raw content.
	Key  string
	Mode chat.Mode
	Now  time.Time
}
