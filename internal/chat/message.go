package chat

import "time"

// Message is a single accepted chat message, ready for the rendering side.
// It is never mutated after the filter produces it.
type Message struct {
	ID        string
	User      string
	Text      string
	ArrivedAt time.Time
	RawTime   string // display time scraped from the page, stored verbatim
	ReplyTo   string
	Colors    []string // 0..2 normalized "#rrggbb" highlights
	Effects   []Effect
	Icon      string
}
