package mockfantacy

import (
	"context"

	"github.com/nitish7045/Team11-adminWebsite/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) FetchUsers(ctx context.Context) ([]model.User, error) {
	args := c.Called(ctx)

	var u []model.User
	if args.Get(0) != nil {
		u = args.Get(0).([]model.User)
	}
	return u, args.Error(1)
}

func (c *Client) FetchTeamsForMatch(ctx context.Context, matchID string) ([]model.TeamSubmission, error) {
	args := c.Called(ctx, matchID)

	var t []model.TeamSubmission
	if args.Get(0) != nil {
		t = args.Get(0).([]model.TeamSubmission)
	}
	return t, args.Error(1)
}

func (c *Client) FetchAllTeams(ctx context.Context) ([]model.TeamSubmission, error) {
	args := c.Called(ctx)

	var t []model.TeamSubmission
	if args.Get(0) != nil {
		t = args.Get(0).([]model.TeamSubmission)
	}
	return t, args.Error(1)
}

func (c *Client) FetchUserTeams(ctx context.Context, userID string) ([]model.TeamSubmission, error) {
	args := c.Called(ctx, userID)

	var t []model.TeamSubmission
	if args.Get(0) != nil {
		t = args.Get(0).([]model.TeamSubmission)
	}
	return t, args.Error(1)
}

func (c *Client) FetchMatchResult(ctx context.Context, matchID string) (*model.MatchResult, error) {
	args := c.Called(ctx, matchID)

	var r *model.MatchResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.MatchResult)
	}
	return r, args.Error(1)
}

func (c *Client) FetchAllMatchResults(ctx context.Context) ([]model.MatchResult, error) {
	args := c.Called(ctx)

	var r []model.MatchResult
	if args.Get(0) != nil {
		r = args.Get(0).([]model.MatchResult)
	}
	return r, args.Error(1)
}
