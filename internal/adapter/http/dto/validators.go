package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	phoneRe      = regexp.MustCompile(`^\+?\d{10,15}$`)
	nationalIDRe = regexp.MustCompile(`^[a-zA-Z0-9\-]{2,30}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone", validatePhone)
		_ = v.RegisterValidation("national_id", validateNationalID)
	}
}

// validatePhone accepts an optional leading + followed by 10-15 digits,
// ignoring embedded spaces.
func validatePhone(fl validator.FieldLevel) bool {
	return phoneRe.MatchString(strings.ReplaceAll(fl.Field().String(), " ", ""))
}

// validateNationalID allows alphanumeric and dash.
func validateNationalID(fl validator.FieldLevel) bool {
	return nationalIDRe.MatchString(fl.Field().String())
}

// ValidNationalID reports whether a path-supplied national id has the
// same shape the request validator accepts.
func ValidNationalID(id string) bool {
	return nationalIDRe.MatchString(id)
}

// NormalizePhone strips embedded spaces so the stored key is canonical.
func NormalizePhone(phone string) string {
	return strings.ReplaceAll(phone, " ", "")
}

// ValidDate reports whether the date exists on the calendar, e.g. it
// rejects February 30.
func (d DateOfBirth) ValidDate() bool {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == d.Year && int(t.Month()) == d.Month && t.Day() == d.Day
}

// AtLeastYearsOld reports whether a person born on the date is at least
// years old at the given reference time.
func (d DateOfBirth) AtLeastYearsOld(years int, now time.Time) bool {
	cutoff := time.Date(now.Year()-years, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	birth := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return !birth.After(cutoff)
}
