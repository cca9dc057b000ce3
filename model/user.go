package model

import "strings"

// UnknownUserName is shown when a team's userId has no entry in the user
// directory. The miss never aborts a leaderboard build.
const UnknownUserName = "Unknown User"

type User struct {
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
}

// CanonicalID normalizes an identifier to its canonical string form.
// Upstream services are inconsistent about id typing (numeric vs string),
// so ids are converted to strings at the wire boundary and compared only
// in this form.
func CanonicalID(id string) string {
	return strings.TrimSpace(id)
}

// SameID reports whether two identifiers are equal in canonical form.
func SameID(a, b string) bool {
	return CanonicalID(a) == CanonicalID(b)
}
