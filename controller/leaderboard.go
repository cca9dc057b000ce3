package controller

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/nitish7045/Team11-adminWebsite/model"
	"golang.org/x/sync/errgroup"
)

func (c *controller) BuildLeaderboard(ctx context.Context, matchID string) (*model.Leaderboard, error) {
	matchID = model.CanonicalID(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: matchID", ErrMissingID)
	}

	ctx, token := c.builds.begin(ctx, matchID)
	defer c.builds.finish(token)

	// The three sources have no data dependency on each other, fetch them
	// concurrently. Any single failure aborts the whole build.
	var (
		users  []model.User
		teams  []model.TeamSubmission
		result *model.MatchResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if users, err = c.fetchUsers(gctx); err != nil {
			return &SourceError{Source: "users", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if teams, err = c.client.FetchTeamsForMatch(gctx, matchID); err != nil {
			return &SourceError{Source: "teams", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if result, err = c.client.FetchMatchResult(gctx, matchID); err != nil {
			return &SourceError{Source: "match results", Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if c.builds.superseded(token) {
			return nil, ErrSuperseded
		}
		return nil, err
	}

	scored, err := scoreTeams(teams, result)
	if err != nil {
		return nil, err
	}

	names := userNamesByID(users)
	for i := range scored {
		scored[i].UserName = resolveUserName(names, scored[i].UserID)
	}

	// Total points descending; equal totals order by teamId ascending so
	// the ranking is deterministic regardless of submission order.
	slices.SortFunc(scored, func(a, b model.ScoredTeam) int {
		if d := cmp.Compare(b.TotalPoints, a.TotalPoints); d != 0 {
			return d
		}
		return cmp.Compare(a.TeamID, b.TeamID)
	})

	if c.builds.superseded(token) {
		return nil, ErrSuperseded
	}

	return &model.Leaderboard{
		MatchID:  matchID,
		Computed: c.clock.Now().UTC(),
		Teams:    scored,
	}, nil
}

func userNamesByID(users []model.User) map[string]string {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[model.CanonicalID(u.UserID)] = u.FullName
	}
	return names
}

// resolveUserName falls back to the sentinel name on a directory miss. A
// miss never fails the computation.
func resolveUserName(names map[string]string, userID string) string {
	if name, ok := names[model.CanonicalID(userID)]; ok {
		return name
	}
	return model.UnknownUserName
}
