package model

import (
	"fmt"
	"time"
)

// ScoredPlayer is a roster player with its computed points. Points carries
// the final multiplied value, not the raw base points.
type ScoredPlayer struct {
	RosterPlayer
	Points float64 `json:"points"`
}

// ScoredTeam is the scoring engine's output for one (team, matchResult)
// pair. It is derived on every request and never persisted.
type ScoredTeam struct {
	TeamID      string         `json:"teamId"`
	UserID      string         `json:"userId"`
	UserName    string         `json:"userName"`
	TotalPoints float64        `json:"totalPoints"`
	Players     []ScoredPlayer `json:"players"`
}

// Leaderboard is the ranked list of every team submitted for one match,
// sorted by total points descending. Rank is positional and 1-based.
type Leaderboard struct {
	MatchID  string       `json:"matchId"`
	Computed time.Time    `json:"computed"`
	Teams    []ScoredTeam `json:"teams"`
}

// FormattedPoints renders a point total without trailing fractional noise,
// e.g. 95 rather than 95.00 but 12.5 as-is.
func FormattedPoints(p float64) string {
	if p == float64(int64(p)) {
		return fmt.Sprintf("%d", int64(p))
	}
	return fmt.Sprintf("%.2f", p)
}
