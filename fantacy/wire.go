package fantacy

import (
	"encoding/json"
	"fmt"

	"github.com/nitish7045/Team11-adminWebsite/model"
)

// flexString decodes a JSON value that may arrive as either a string or a
// number. The platform services disagree on id typing, so every id funnels
// through this type and comes out as a canonical string.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id is neither a string nor a number: %w", err)
	}
	*s = flexString(n.String())
	return nil
}

func (s flexString) canonical() string {
	return model.CanonicalID(string(s))
}

type wireUser struct {
	UserID   flexString `json:"userId"`
	FullName string     `json:"fullName"`
}

func (u *wireUser) toUser() model.User {
	return model.User{
		UserID:   u.UserID.canonical(),
		FullName: u.FullName,
	}
}

type wireRosterPlayer struct {
	PlayerID flexString `json:"playerId"`
	Name     string     `json:"name"`
	Position string     `json:"position"`
}

type wireTeam struct {
	TeamID      flexString         `json:"teamId"`
	UserID      flexString         `json:"userId"`
	MatchID     flexString         `json:"matchId"`
	Captain     string             `json:"captain"`
	ViceCaptain string             `json:"viceCaptain"`
	Team        []wireRosterPlayer `json:"team"`
}

func (t *wireTeam) toSubmission() model.TeamSubmission {
	roster := make([]model.RosterPlayer, 0, len(t.Team))
	for _, p := range t.Team {
		roster = append(roster, model.RosterPlayer{
			PlayerID: p.PlayerID.canonical(),
			Name:     p.Name,
			Position: p.Position,
		})
	}
	return model.TeamSubmission{
		TeamID:      t.TeamID.canonical(),
		UserID:      t.UserID.canonical(),
		MatchID:     t.MatchID.canonical(),
		Captain:     t.Captain,
		ViceCaptain: t.ViceCaptain,
		Roster:      roster,
	}
}

func toSubmissions(teams []wireTeam) []model.TeamSubmission {
	result := make([]model.TeamSubmission, 0, len(teams))
	for _, t := range teams {
		result = append(result, t.toSubmission())
	}
	return result
}

type wirePlayerPoints struct {
	PlayerName string  `json:"playerName"`
	Points     float64 `json:"points"`
}

type wireMatchResult struct {
	MatchID       flexString         `json:"matchId"`
	MatchTitle    string             `json:"matchTitle"`
	PlayersPoints []wirePlayerPoints `json:"playersPoints"`
}

func (r *wireMatchResult) toMatchResult() *model.MatchResult {
	points := make([]model.PlayerResult, 0, len(r.PlayersPoints))
	for _, p := range r.PlayersPoints {
		points = append(points, model.PlayerResult{
			PlayerName: p.PlayerName,
			Points:     p.Points,
		})
	}
	return &model.MatchResult{
		MatchID:       r.MatchID.canonical(),
		MatchTitle:    r.MatchTitle,
		PlayersPoints: points,
	}
}
