package domain

import "strings"

// Date is a plain calendar date without time or zone.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Identity is the verified holder record attached to a binding.
// It is immutable once the binding is created; swaps re-supply it
// only for comparison.
type Identity struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       *string `json:"email,omitempty"`
	NationalID  string  `json:"national_id"`
	DateOfBirth Date    `json:"date_of_birth"`
}

// Matches reports whether a claimed identity is the same person as the
// stored one. Names and the national id compare case-insensitively,
// the date of birth compares exactly. Email is never part of the match.
func (i Identity) Matches(claimed Identity) bool {
	return strings.EqualFold(i.FirstName, claimed.FirstName) &&
		strings.EqualFold(i.LastName, claimed.LastName) &&
		strings.EqualFold(i.NationalID, claimed.NationalID) &&
		i.DateOfBirth == claimed.DateOfBirth
}

// DisplayName returns the holder name shown to support staff, e.g. in
// duplicate-registration failures.
func (i Identity) DisplayName() string {
	return i.FirstName + " " + i.LastName
}
