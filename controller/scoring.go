package controller

import (
	"github.com/nitish7045/Team11-adminWebsite/model"
)

const (
	captainMultiplier     = 2.0
	viceCaptainMultiplier = 1.5
)

// multiplier returns the scoring multiplier for a roster player. The
// captain case is evaluated first, so a submission that erroneously marks
// the same name as both captain and vice-captain gets the captain
// multiplier. The multipliers never stack.
func multiplier(team *model.TeamSubmission, name string) float64 {
	switch name {
	case team.Captain:
		return captainMultiplier
	case team.ViceCaptain:
		return viceCaptainMultiplier
	default:
		return 1
	}
}

// scoreTeam joins one team's roster against the match's player points and
// produces the per-player and total scores. A roster player with no
// declared result contributes 0. Each ScoredPlayer carries the final
// multiplied points, and the team total is their sum. The userName is left
// for the caller to resolve.
func scoreTeam(team model.TeamSubmission, points map[string]float64) model.ScoredTeam {
	scored := model.ScoredTeam{
		TeamID:  team.TeamID,
		UserID:  team.UserID,
		Players: make([]model.ScoredPlayer, 0, len(team.Roster)),
	}

	for _, p := range team.Roster {
		pts := points[p.Name] * multiplier(&team, p.Name)
		scored.TotalPoints += pts
		scored.Players = append(scored.Players, model.ScoredPlayer{
			RosterPlayer: p,
			Points:       pts,
		})
	}
	return scored
}

// scoreTeams runs the scoring engine over every submission. It refuses to
// score when the match has no declared outcome: partial or all-zero scores
// must never be presented as real.
func scoreTeams(teams []model.TeamSubmission, result *model.MatchResult) ([]model.ScoredTeam, error) {
	if !result.HasOutcome() {
		return nil, ErrNoDeclaredOutcome
	}

	points := result.PointsByName()
	scored := make([]model.ScoredTeam, 0, len(teams))
	for _, t := range teams {
		scored = append(scored, scoreTeam(t, points))
	}
	return scored, nil
}
