package messages

// Reject reasons surfaced through the pipeline result so callers can log why
// a message was dropped. Rejection itself is always a silent non-accept.
const (
	MsgReasonMalformed = "malformed block"
	MsgReasonBanned    = "banned content"
	MsgReasonRateLimit = "user posting too fast"
	MsgReasonDuplicate = "duplicate content"
)
