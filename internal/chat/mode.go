package chat

// Mode selects how strict a filtering pass is. The caller supplies it on
// every call; the filter never guesses.
type Mode int

const (
	// ModeHistorical ingests pre-existing backlog: no rate limiting, no
	// dedup, so legitimately repeated history is not flagged as spam.
	ModeHistorical Mode = iota
	// ModeLive is the full real-time pass.
	ModeLive
)

func (m Mode) String() string {
	if m == ModeLive {
		return "live"
	}
	return "historical"
}
