package model

// PlayerResult is one player's official points for a match. PlayerName is
// the join key used by the scoring engine.
type PlayerResult struct {
	PlayerName string  `json:"playerName"`
	Points     float64 `json:"points"`
}

// MatchResult is the declared outcome for a single match. MatchTitle is
// only populated by the all-match-results listing.
type MatchResult struct {
	MatchID       string         `json:"matchId"`
	MatchTitle    string         `json:"matchTitle,omitempty"`
	PlayersPoints []PlayerResult `json:"playersPoints"`
}

// HasOutcome reports whether the match has a declared outcome. A match
// without player points cannot be scored.
func (m *MatchResult) HasOutcome() bool {
	return m != nil && len(m.PlayersPoints) > 0
}

// PointsByName builds a name -> points lookup over the declared results.
// If the same player name appears more than once the last entry wins.
func (m *MatchResult) PointsByName() map[string]float64 {
	if m == nil {
		return nil
	}
	points := make(map[string]float64, len(m.PlayersPoints))
	for _, p := range m.PlayersPoints {
		points[p.PlayerName] = p.Points
	}
	return points
}
