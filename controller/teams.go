package controller

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/nitish7045/Team11-adminWebsite/model"
	"golang.org/x/sync/errgroup"
)

func (c *controller) TeamsOf(ctx context.Context, userID, matchID string) ([]model.TeamSubmission, error) {
	userID = model.CanonicalID(userID)
	matchID = model.CanonicalID(matchID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userID", ErrMissingID)
	}

	teams, err := c.client.FetchUserTeams(ctx, userID)
	if err != nil {
		return nil, &SourceError{Source: "teams", Err: err}
	}

	matched := make([]model.TeamSubmission, 0, len(teams))
	for _, t := range teams {
		if matchID != "" && !model.SameID(t.MatchID, matchID) {
			continue
		}
		matched = append(matched, t)
	}
	return matched, nil
}

func (c *controller) ScoreUserTeams(ctx context.Context, userID, matchID string) ([]model.ScoredTeam, error) {
	matchID = model.CanonicalID(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: matchID", ErrMissingID)
	}

	teams, err := c.TeamsOf(ctx, userID, matchID)
	if err != nil {
		return nil, err
	}

	result, err := c.client.FetchMatchResult(ctx, matchID)
	if err != nil {
		return nil, &SourceError{Source: "match results", Err: err}
	}

	scored, err := scoreTeams(teams, result)
	if err != nil {
		return nil, err
	}

	name, err := c.lookupUserName(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range scored {
		scored[i].UserName = name
	}

	slices.SortFunc(scored, func(a, b model.ScoredTeam) int {
		if d := cmp.Compare(b.TotalPoints, a.TotalPoints); d != 0 {
			return d
		}
		return cmp.Compare(a.TeamID, b.TeamID)
	})
	return scored, nil
}

func (c *controller) ListMatchResults(ctx context.Context) ([]model.MatchResult, error) {
	results, err := c.client.FetchAllMatchResults(ctx)
	if err != nil {
		return nil, &SourceError{Source: "match results", Err: err}
	}
	return results, nil
}

func (c *controller) Overview(ctx context.Context) (*model.Overview, error) {
	var (
		users   []model.User
		teams   []model.TeamSubmission
		results []model.MatchResult
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
		if teams, err = c.client.FetchAllTeams(gctx); err != nil {
			return &SourceError{Source: "teams", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if results, err = c.client.FetchAllMatchResults(gctx); err != nil {
			return &SourceError{Source: "match results", Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Matches counts only declared outcomes; upstream lists entries for
	// matches whose results are still pending.
	declared := 0
	for i := range results {
		if results[i].HasOutcome() {
			declared++
		}
	}

	return &model.Overview{
		Users:   len(users),
		Teams:   len(teams),
		Matches: declared,
	}, nil
}
