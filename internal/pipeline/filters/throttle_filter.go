package filters

import (
	"context"
	"sync"
	"time"

	"github.com/pump-ai-fun/kind-of-stop-spam/internal/chat"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/messages"
	"github.com/pump-ai-fun/kind-of-stop-spam/internal/pipeline"
)

type expiryEntry struct {
	key       string
	expiresAt time.Time
}

// ThrottleFilter enforces the per-user cooldown and the global content dedup
// window. All three state structures live behind one mutex; stale dedup
// entries are evicted lazily at the head of each live-mode call. Every entry
// carries the same TTL, so the queue is already in ascending-expiry order and
// eviction only ever inspects the head. Each instance owns its own state, so
// independent filters can coexist.
type ThrottleFilter struct {
	mu           sync.Mutex
	lastAccepted map[string]time.Time
	expiries     map[string]time.Time
	queue        []expiryEntry
	window       time.Duration
	ttl          time.Duration
}

func NewThrottleFilter(window, ttl time.Duration) *ThrottleFilter {
	return &ThrottleFilter{
		lastAccepted: make(map[string]time.Time),
		expiries:     make(map[string]time.Time),
		window:       window,
		ttl:          ttl,
	}
}

func (f *ThrottleFilter) Name() string {
	return "throttle_filter"
}

func (f *ThrottleFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	if payload.Mode != chat.ModeLive {
		return &pipeline.Result{IsAllowed: true}, nil
	}

	now := payload.Now
	if now.IsZero() {
		now = time.Now()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.evict(now)

	if _, ok := f.expiries[payload.Key]; ok {
		return &pipeline.Result{
			IsAllowed:  false,
			Reason:     messages.MsgReasonDuplicate,
			FilterName: f.Name(),
		}, nil
	}

	if last, ok := f.lastAccepted[payload.User]; ok && now.Sub(last) < f.window {
		return &pipeline.Result{
			IsAllowed:  false,
			Reason:     messages.MsgReasonRateLimit,
			FilterName: f.Name(),
		}, nil
	}

	f.lastAccepted[payload.User] = now
	f.expiries[payload.Key] = now.Add(f.ttl)
	f.queue = append(f.queue, expiryEntry{key: payload.Key, expiresAt: now.Add(f.ttl)})

	return &pipeline.Result{IsAllowed: true}, nil
}

// evict pops stale queue entries. A popped entry only deletes its map entry
// while the stored expiry still equals the popped one; a fresher TTL written
// for the same key in the meantime must survive.
func (f *ThrottleFilter) evict(now time.Time) {
	for len(f.queue) > 0 && !f.queue[0].expiresAt.After(now) {
		e := f.queue[0]
		f.queue = f.queue[1:]
		if exp, ok := f.expiries[e.key]; ok && exp.Equal(e.expiresAt) {
			delete(f.expiries, e.key)
		}
	}
}

// PendingKeys reports how many content keys are currently deduplicated,
// for the metrics updater.
func (f *ThrottleFilter) PendingKeys() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.expiries)
}
