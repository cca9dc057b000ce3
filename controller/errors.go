package controller

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDeclaredOutcome means the match has no player-level results, so
	// ranking is meaningless. Callers must surface this distinctly instead
	// of showing an empty leaderboard that looks like "no winners".
	ErrNoDeclaredOutcome = errors.New("no declared outcome for this match")

	// ErrSuperseded means a newer leaderboard build started before this one
	// finished and its results were discarded.
	ErrSuperseded = errors.New("leaderboard build superseded by a newer request")

	// ErrMissingID means a required identifier was empty after trimming.
	ErrMissingID = errors.New("a required id is missing")
)

// SourceError reports that one of the upstream data sources could not be
// read. Any single source failure aborts the whole operation.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s source unavailable: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
