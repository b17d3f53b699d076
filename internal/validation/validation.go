// Package validation collects per-field input errors at the boundary of the
// stores. Errors matches common.ErrorValidation with errors.Is, so callers
// can treat every field problem as one class of failure.
package validation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dmitrijs2005/back2me/internal/common"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors maps a field name to a human-readable message.
type Errors map[string]string

// Add records msg for field unless the field already has a message.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Check records msg for field when ok is false.
func (e Errors) Check(ok bool, field, msg string) {
	if !ok {
		e.Add(field, msg)
	}
}

// Err returns e as an error, or nil when no field failed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e Errors) Is(target error) bool {
	return target == common.ErrorValidation
}

// IsEmail reports whether s looks like an e-mail address.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// Required reports whether s has non-blank content.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MinLen reports whether s is at least n runes long.
func MinLen(s string, n int) bool {
	return len([]rune(s)) >= n
}
