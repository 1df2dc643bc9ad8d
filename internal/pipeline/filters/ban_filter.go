package filters

import (
	"context"

	"github.com/pump-ai-fun/kind-of-stop-spam/internal/messages"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/pipeline"
)

// BanChecker is the read-only moderation data collaborator.
type BanChecker interface {
	IsBanned(content string) bool
}

// BanFilter rejects messages whose normalized content contains a banned
// keyword or mention. It applies in both modes and mutates no state.
type BanFilter struct {
	lists BanChecker
}

func NewBanFilter(lists BanChecker) *BanFilter {
	return &BanFilter{lists: lists}
}

func (f *BanFilter) Name() string {
	return "ban_filter"
}

func (f *BanFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	if f.lists.IsBanned(payload.Key) {
		return &pipeline.Result{
			IsAllowed:  false,
			Reason:     messages.MsgReasonBanned,
			FilterName: f.Name(),
		}, nil
	}
	return &pipeline.Result{IsAllowed: true}, nil
}
