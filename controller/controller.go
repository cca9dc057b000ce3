package controller

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/nitish7045/Team11-adminWebsite/db"
	"github.com/nitish7045/Team11-adminWebsite/fantacy"
	"github.com/nitish7045/Team11-adminWebsite/model"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// BuildLeaderboard scores every team submitted for the match against its
	// declared result and returns them ranked by total points. It fails with
	// ErrNoDeclaredOutcome when the match has no player points, and with
	// ErrSuperseded when a newer build for another match was started before
	// this one finished.
	BuildLeaderboard(ctx context.Context, matchID string) (*model.Leaderboard, error)

	// TeamsOf returns the team submissions owned by the user. matchID is
	// optional; when empty, submissions for all matches are returned. No
	// matching submissions is an empty slice, not an error.
	TeamsOf(ctx context.Context, userID, matchID string) ([]model.TeamSubmission, error)

	// ScoreUserTeams is the drill-down behind TeamsOf: it re-applies the
	// scoring engine to the user's submissions for the given match.
	ScoreUserTeams(ctx context.Context, userID, matchID string) ([]model.ScoredTeam, error)

	ListMatchResults(ctx context.Context) ([]model.MatchResult, error)
	Overview(ctx context.Context) (*model.Overview, error)

	// UpdateUsers refreshes the local user directory mirror from the backend
	// service. It errors when no directory database is configured.
	UpdateUsers(ctx context.Context) error
	RunPeriodicUserSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock  clock.Clock
	client fantacy.Client
	// userDB may be nil. When it is, the user directory is fetched from the
	// backend service on every request instead of the local mirror.
	userDB db.DB

	builds buildTracker
}

func New(clock clock.Clock, client fantacy.Client, userDB db.DB) (C, error) {
	c := &controller{
		clock:  clock,
		client: client,
		userDB: userDB,
	}
	return c, nil
}

func (c *controller) fetchUsers(ctx context.Context) ([]model.User, error) {
	if c.userDB != nil {
		return c.userDB.GetUsers(ctx)
	}
	return c.client.FetchUsers(ctx)
}
