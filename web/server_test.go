package web

import "testing"

func TestRankFormatter(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{0, 1},
		{1, 2},
		{9, 10},
	}

	for _, test := range tests {
		if got := rankFormatter(test.index); got != test.want {
			t.Errorf("rankFormatter(%d) = %d, want %d", test.index, got, test.want)
		}
	}
}

func TestMedalFormatter(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "🥇"},
		{1, "🥈"},
		{2, "🥉"},
		{3, ""},
		{100, ""},
	}

	for _, test := range tests {
		if got := medalFormatter(test.index); got != test.want {
			t.Errorf("medalFormatter(%d) = %q, want %q", test.index, got, test.want)
		}
	}
}
