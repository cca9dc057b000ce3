package model

import "testing"

func TestCanonicalID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "12345", want: "12345"},
		{in: " 12345 ", want: "12345"},
		{in: "user-7\n", want: "user-7"},
		{in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := CanonicalID(tc.in); got != tc.want {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestSameID(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical", a: "42", b: "42", want: true},
		{name: "whitespace", a: " 42", b: "42 ", want: true},
		{name: "different", a: "42", b: "43", want: false},
		{name: "case sensitive", a: "User1", b: "user1", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameID(tc.a, tc.b); got != tc.want {
				t.Errorf("SameID(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestHasPlayer(t *testing.T) {
	team := TeamSubmission{
		TeamID: "t1",
		Roster: []RosterPlayer{
			{Name: "Player A"},
			{Name: "Player B"},
		},
	}

	if !team.HasPlayer("Player A") {
		t.Error("expected Player A to be on the roster")
	}
	if team.HasPlayer("player a") {
		t.Error("roster membership must be case sensitive")
	}
	if team.HasPlayer("Player C") {
		t.Error("did not expect Player C on the roster")
	}
}

func TestHasOutcome(t *testing.T) {
	var absent *MatchResult
	if absent.HasOutcome() {
		t.Error("a missing match result has no outcome")
	}

	empty := &MatchResult{MatchID: "m1"}
	if empty.HasOutcome() {
		t.Error("a result without player points has no outcome")
	}

	declared := &MatchResult{
		MatchID:       "m1",
		PlayersPoints: []PlayerResult{{PlayerName: "Player A", Points: 40}},
	}
	if !declared.HasOutcome() {
		t.Error("expected a declared outcome")
	}
}

func TestPointsByName(t *testing.T) {
	result := &MatchResult{
		MatchID: "m1",
		PlayersPoints: []PlayerResult{
			{PlayerName: "Player A", Points: 40},
			{PlayerName: "Player B", Points: 10.5},
		},
	}

	points := result.PointsByName()
	if len(points) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(points))
	}
	if points["Player A"] != 40 {
		t.Errorf("Player A: expected 40, got %v", points["Player A"])
	}
	if points["Player B"] != 10.5 {
		t.Errorf("Player B: expected 10.5, got %v", points["Player B"])
	}

	var absent *MatchResult
	if absent.PointsByName() != nil {
		t.Error("expected nil lookup for a missing result")
	}
}

func TestFormattedPoints(t *testing.T) {
	tests := []struct {
		points float64
		want   string
	}{
		{points: 95, want: "95"},
		{points: 0, want: "0"},
		{points: 12.5, want: "12.50"},
		{points: 40.25, want: "40.25"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormattedPoints(tc.points); got != tc.want {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}
