package fantacy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nitish7045/Team11-adminWebsite/model"
	"golang.org/x/time/rate"
)

// The platform is split across two services: the app service owns team
// submissions, the backend service owns the user directory and declared
// match results.
const (
	AppURL     = "https://fantacy-app.onrender.com"
	BackendURL = "https://fantacy-app-backend.onrender.com"
)

type Client interface {
	FetchUsers(ctx context.Context) ([]model.User, error)
	FetchTeamsForMatch(ctx context.Context, matchID string) ([]model.TeamSubmission, error)
	FetchAllTeams(ctx context.Context) ([]model.TeamSubmission, error)
	FetchUserTeams(ctx context.Context, userID string) ([]model.TeamSubmission, error)
	// FetchMatchResult returns nil without an error when no result has been
	// declared for the match.
	FetchMatchResult(ctx context.Context, matchID string) (*model.MatchResult, error)
	FetchAllMatchResults(ctx context.Context) ([]model.MatchResult, error)
}

type client struct {
	appURL     string
	backendURL string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a client for the production services. httpClient may be nil,
// in which case a default client with a timeout is used; passing one allows
// main to inject an OAuth2-authorized client.
func New(httpClient *http.Client) (Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 1 * time.Minute}
	}
	c := &client{
		appURL:     AppURL,
		backendURL: BackendURL,
		httpClient: httpClient,
		// The services run on a free tier, keep request bursts polite.
		limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
	return c, nil
}

func NewForTest(appURL, backendURL string) Client {
	return &client{
		appURL:     appURL,
		backendURL: backendURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}
}

func (c *client) FetchUsers(ctx context.Context) ([]model.User, error) {
	var parsed []wireUser
	if err := c.getJSON(ctx, c.backendURL+"/auth/admin/fetch-users", &parsed); err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(parsed))
	for _, u := range parsed {
		users = append(users, u.toUser())
	}
	return users, nil
}

func (c *client) FetchTeamsForMatch(ctx context.Context, matchID string) ([]model.TeamSubmission, error) {
	u := fmt.Sprintf("%s/auth/teams/team/matchid/%s", c.appURL, url.PathEscape(matchID))

	var parsed struct {
		Teams []wireTeam `json:"matchw"`
	}
	if err := c.getJSON(ctx, u, &parsed); err != nil {
		return nil, err
	}
	return toSubmissions(parsed.Teams), nil
}

func (c *client) FetchAllTeams(ctx context.Context) ([]model.TeamSubmission, error) {
	var parsed struct {
		Teams []wireTeam `json:"teams"`
	}
	if err := c.getJSON(ctx, c.appURL+"/auth/teams/all", &parsed); err != nil {
		return nil, err
	}
	return toSubmissions(parsed.Teams), nil
}

func (c *client) FetchUserTeams(ctx context.Context, userID string) ([]model.TeamSubmission, error) {
	u := fmt.Sprintf("%s/auth/teams/user/%s", c.appURL, url.PathEscape(userID))

	var parsed struct {
		Teams []wireTeam `json:"teams"`
	}
	if err := c.getJSON(ctx, u, &parsed); err != nil {
		return nil, err
	}
	return toSubmissions(parsed.Teams), nil
}

func (c *client) FetchMatchResult(ctx context.Context, matchID string) (*model.MatchResult, error) {
	u := fmt.Sprintf("%s/auth/match-results/%s", c.backendURL, url.PathEscape(matchID))

	var parsed struct {
		MatchResult *wireMatchResult `json:"matchResult"`
	}
	err := c.getJSON(ctx, u, &parsed)
	if err != nil {
		// The backend answers 404 when no result has been declared yet.
		// That is an expected state, not a source failure.
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if parsed.MatchResult == nil {
		return nil, nil
	}
	return parsed.MatchResult.toMatchResult(), nil
}

func (c *client) FetchAllMatchResults(ctx context.Context) ([]model.MatchResult, error) {
	var parsed struct {
		MatchResults []wireMatchResult `json:"matchResults"`
	}
	if err := c.getJSON(ctx, c.backendURL+"/auth/all-match-results", &parsed); err != nil {
		return nil, err
	}

	results := make([]model.MatchResult, 0, len(parsed.MatchResults))
	for _, r := range parsed.MatchResults {
		results = append(results, *r.toMatchResult())
	}
	return results, nil
}

func (c *client) getJSON(ctx context.Context, url string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("error waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode, url: url}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("error parsing response from %s: %w", url, err)
	}
	return nil
}

type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.code, e.url)
}

func isNotFound(err error) bool {
	var se *statusError
	return errors.As(err, &se) && se.code == http.StatusNotFound
}
