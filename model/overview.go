package model

// Overview carries the counts shown on the admin dashboard. Matches
// counts only matches with a declared outcome.
type Overview struct {
	Users   int `json:"users"`
	Teams   int `json:"teams"`
	Matches int `json:"matches"`
}
