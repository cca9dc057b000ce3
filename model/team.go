package model

// RosterPlayer is one selected player in a team submission. Name is the
// join key against PlayerResult, compared by exact string equality.
type RosterPlayer struct {
	PlayerID string `json:"playerId,omitempty"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
}

// TeamSubmission is a user's fantasy team for one match. Captain and
// ViceCaptain are player names that should appear in the roster; a
// submission where they do not is still scoreable, the multiplier simply
// never applies.
type TeamSubmission struct {
	TeamID      string         `json:"teamId"`
	UserID      string         `json:"userId"`
	MatchID     string         `json:"matchId"`
	Captain     string         `json:"captain"`
	ViceCaptain string         `json:"viceCaptain"`
	Roster      []RosterPlayer `json:"team"`
}

// HasPlayer reports whether a player with the given name is on the roster.
func (t *TeamSubmission) HasPlayer(name string) bool {
	for _, p := range t.Roster {
		if p.Name == name {
			return true
		}
	}
	return false
}
