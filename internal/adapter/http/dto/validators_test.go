package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"plain digits", "1234567890", true},
		{"with plus", "+12345678901", true},
		{"with spaces", "+1 234 567 8901", true},
		{"fifteen digits", "123456789012345", true},
		{"too short", "123456789", false},
		{"too long", "1234567890123456", false},
		{"letters", "+1234abc8901", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned := NormalizePhone(tt.phone)
			assert.Equal(t, tt.valid, phoneRe.MatchString(cleaned))
		})
	}
}

func TestValidateNationalID(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"alphanumeric", "A1B2C3", true},
		{"with dash", "ID-12345", true},
		{"single char", "A", false},
		{"spaces", "A1 B2", false},
		{"symbols", "A1;DROP", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, nationalIDRe.MatchString(tt.id))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+12345678901", NormalizePhone("+1 234 567 8901"))
	assert.Equal(t, "1234567890", NormalizePhone("1234567890"))
}

func TestDateOfBirth_ValidDate(t *testing.T) {
	tests := []struct {
		name  string
		date  DateOfBirth
		valid bool
	}{
		{"normal date", DateOfBirth{2000, 1, 1}, true},
		{"leap day on leap year", DateOfBirth{2000, 2, 29}, true},
		{"leap day on non-leap year", DateOfBirth{2001, 2, 29}, false},
		{"february 30", DateOfBirth{2000, 2, 30}, false},
		{"april 31", DateOfBirth{2000, 4, 31}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.date.ValidDate())
		})
	}
}

func TestDateOfBirth_AtLeastYearsOld(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date DateOfBirth
		want bool
	}{
		{"clearly adult", DateOfBirth{1990, 5, 20}, true},
		{"eighteenth birthday today", DateOfBirth{2008, 9, 1}, true},
		{"one day short", DateOfBirth{2008, 9, 2}, false},
		{"minor", DateOfBirth{2015, 1, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.AtLeastYearsOld(18, now))
		})
	}
}
