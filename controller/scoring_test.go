package controller

import (
	"errors"
	"testing"

	"github.com/nitish7045/Team11-adminWebsite/model"
)

func resultAB() *model.MatchResult {
	return &model.MatchResult{
		MatchID: "m1",
		PlayersPoints: []model.PlayerResult{
			{PlayerName: "Player A", Points: 40},
			{PlayerName: "Player B", Points: 10},
		},
	}
}

func TestScoreTeam_multipliers(t *testing.T) {
	team := model.TeamSubmission{
		TeamID:      "t1",
		UserID:      "u1",
		MatchID:     "m1",
		Captain:     "Player A",
		ViceCaptain: "Player B",
		Roster: []model.RosterPlayer{
			{Name: "Player A"},
			{Name: "Player B"},
		},
	}

	scored := scoreTeam(team, resultAB().PointsByName())

	// 40*2 + 10*1.5
	if scored.TotalPoints != 95 {
		t.Errorf("expected total 95, got %v", scored.TotalPoints)
	}

	// Players carry the final multiplied points, not the base values.
	if scored.Players[0].Points != 80 {
		t.Errorf("captain: expected 80, got %v", scored.Players[0].Points)
	}
	if scored.Players[1].Points != 15 {
		t.Errorf("vice-captain: expected 15, got %v", scored.Players[1].Points)
	}
}

func TestScoreTeam_undeclaredPlayer(t *testing.T) {
	// Player C has no declared result and is also the captain: the captain
	// multiplier applies to a base of 0.
	team := model.TeamSubmission{
		TeamID:  "t1",
		Captain: "Player C",
		Roster: []model.RosterPlayer{
			{Name: "Player A"},
			{Name: "Player C"},
		},
	}

	scored := scoreTeam(team, resultAB().PointsByName())

	if scored.TotalPoints != 40 {
		t.Errorf("expected total 40, got %v", scored.TotalPoints)
	}
	if scored.Players[1].Points != 0 {
		t.Errorf("undeclared captain: expected 0, got %v", scored.Players[1].Points)
	}
}

func TestScoreTeam_captainPrecedence(t *testing.T) {
	// Malformed submission marking the same name as captain and
	// vice-captain: the captain multiplier wins and nothing stacks.
	team := model.TeamSubmission{
		TeamID:      "t1",
		Captain:     "Player A",
		ViceCaptain: "Player A",
		Roster: []model.RosterPlayer{
			{Name: "Player A"},
		},
	}

	scored := scoreTeam(team, resultAB().PointsByName())

	if scored.TotalPoints != 80 {
		t.Errorf("expected 80 (captain only), got %v", scored.TotalPoints)
	}
}

func TestScoreTeam_captainNotOnRoster(t *testing.T) {
	// The designated captain never appears on the roster: the multiplier
	// simply never triggers and everyone scores at 1x.
	team := model.TeamSubmission{
		TeamID:      "t1",
		Captain:     "Somebody Else",
		ViceCaptain: "Another Absentee",
		Roster: []model.RosterPlayer{
			{Name: "Player A"},
			{Name: "Player B"},
		},
	}

	scored := scoreTeam(team, resultAB().PointsByName())

	if scored.TotalPoints != 50 {
		t.Errorf("expected 50, got %v", scored.TotalPoints)
	}
}

func TestScoreTeam_nameMatchIsExact(t *testing.T) {
	team := model.TeamSubmission{
		TeamID: "t1",
		Roster: []model.RosterPlayer{
			{Name: "player a"},
		},
	}

	scored := scoreTeam(team, resultAB().PointsByName())

	if scored.TotalPoints != 0 {
		t.Errorf("join must be case sensitive, got %v", scored.TotalPoints)
	}
}

func TestScoreTeams_noOutcome(t *testing.T) {
	teams := []model.TeamSubmission{{TeamID: "t1"}}

	if _, err := scoreTeams(teams, nil); !errors.Is(err, ErrNoDeclaredOutcome) {
		t.Errorf("missing result: expected ErrNoDeclaredOutcome, got %v", err)
	}

	empty := &model.MatchResult{MatchID: "m1"}
	if _, err := scoreTeams(teams, empty); !errors.Is(err, ErrNoDeclaredOutcome) {
		t.Errorf("empty playersPoints: expected ErrNoDeclaredOutcome, got %v", err)
	}
}

func TestScoreTeams_totalsAreSums(t *testing.T) {
	result := &model.MatchResult{
		MatchID: "m1",
		PlayersPoints: []model.PlayerResult{
			{PlayerName: "Player A", Points: 33.5},
			{PlayerName: "Player B", Points: 12},
			{PlayerName: "Player C", Points: 7.25},
		},
	}
	teams := []model.TeamSubmission{
		{
			TeamID:      "t1",
			Captain:     "Player B",
			ViceCaptain: "Player C",
			Roster: []model.RosterPlayer{
				{Name: "Player A"},
				{Name: "Player B"},
				{Name: "Player C"},
			},
		},
	}

	scored, err := scoreTeams(teams, result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sum float64
	for _, p := range scored[0].Players {
		sum += p.Points
	}
	if scored[0].TotalPoints != sum {
		t.Errorf("total %v does not equal player sum %v", scored[0].TotalPoints, sum)
	}
}
