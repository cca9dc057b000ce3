package controller

import (
	"context"
	"sync"
)

// buildTracker guards against out-of-order completion when leaderboards
// are requested in quick succession. Beginning a build for a different
// match cancels the prior in-flight one, and a build whose match is no
// longer the latest requested one reports superseded instead of handing
// back results for a match the caller is no longer looking at. Concurrent
// builds for the same match never interfere with each other.
type buildTracker struct {
	mu      sync.Mutex
	gen     uint64
	matchID string
	cancel  context.CancelFunc
}

type buildToken struct {
	gen     uint64
	matchID string
	cancel  context.CancelFunc
}

func (t *buildTracker) begin(ctx context.Context, matchID string) (context.Context, buildToken) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil && matchID != t.matchID {
		t.cancel()
		t.cancel = nil
	}
	ctx, cancel := context.WithCancel(ctx)
	t.gen++
	t.matchID = matchID
	t.cancel = cancel
	return ctx, buildToken{gen: t.gen, matchID: matchID, cancel: cancel}
}

// superseded reports whether the latest build is for a different match
// than the token's. A newer build for the same match does not make the
// token stale.
func (t *buildTracker) superseded(tok buildToken) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tok.matchID != t.matchID
}

// finish releases the build's own context and, if the token is still the
// latest build, clears the tracker's reference to it.
func (t *buildTracker) finish(tok buildToken) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tok.cancel()
	if tok.gen == t.gen {
		t.cancel = nil
	}
}
