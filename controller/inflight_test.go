package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTracker_latestWins(t *testing.T) {
	var tracker buildTracker

	ctx1, tok1 := tracker.begin(context.Background(), "1")
	assert.False(t, tracker.superseded(tok1))

	ctx2, tok2 := tracker.begin(context.Background(), "2")

	// Starting a build for a different match cancels the first and marks
	// it stale.
	assert.Error(t, ctx1.Err())
	assert.True(t, tracker.superseded(tok1))

	assert.NoError(t, ctx2.Err())
	assert.False(t, tracker.superseded(tok2))
}

func TestBuildTracker_sameMatchBuildsCoexist(t *testing.T) {
	var tracker buildTracker

	ctx1, tok1 := tracker.begin(context.Background(), "1")
	ctx2, tok2 := tracker.begin(context.Background(), "1")

	// A newer build for the same match must not cancel or stale the
	// in-flight one.
	assert.NoError(t, ctx1.Err())
	assert.False(t, tracker.superseded(tok1))
	assert.NoError(t, ctx2.Err())
	assert.False(t, tracker.superseded(tok2))

	// Either build finishing leaves the other untouched.
	tracker.finish(tok2)
	assert.NoError(t, ctx1.Err())
	assert.False(t, tracker.superseded(tok1))
}

func TestBuildTracker_finish(t *testing.T) {
	var tracker buildTracker

	ctx, tok := tracker.begin(context.Background(), "1")
	tracker.finish(tok)

	// Finishing releases the build's own context but starts nothing new.
	assert.Error(t, ctx.Err())
	assert.False(t, tracker.superseded(tok))

	// A stale token's finish must not disturb the current build.
	_, tok1 := tracker.begin(context.Background(), "1")
	ctx2, tok2 := tracker.begin(context.Background(), "2")
	tracker.finish(tok1)
	assert.NoError(t, ctx2.Err())
	assert.False(t, tracker.superseded(tok2))
}
