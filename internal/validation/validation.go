// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"microblog/internal/models"
)

// Violation messages. Wording is part of the API contract, so keep these
// stable.
const (
	MsgRequired      = "This field is required."
	MsgBlank         = "This field may not be blank."
	MsgInvalidEmail  = "Enter a valid email address."
	MsgUsernameTaken = "A user with that username already exists."
	MsgEmailTaken    = "A user with that email already exists."
	MsgInvalidUser   = "Invalid user ID."
	MsgInvalidPost   = "Invalid post ID."
)

// MsgMaxLength returns the violation message for a field exceeding max characters.
func MsgMaxLength(max int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", max)
}

// Required validates a required text field, distinguishing a field that was
// omitted from the payload (nil) from one supplied blank. Returns the value
// and whether it passed.
func Required(errs models.FieldErrors, field string, value *string) (string, bool) {
	if value == nil {
		errs.Add(field, MsgRequired)
		return "", false
	}
	if *value == "" {
		errs.Add(field, MsgBlank)
		return "", false
	}
	return *value, true
}

// MaxLength records a violation when value exceeds max characters.
func MaxLength(errs models.FieldErrors, field, value string, max int) bool {
	if len(value) > max {
		errs.Add(field, MsgMaxLength(max))
		return false
	}
	return true
}

// Email records a violation unless value is a bare, structurally valid
// address (no display name, dotted domain).
func Email(errs models.FieldErrors, field, value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		errs.Add(field, MsgInvalidEmail)
		return false
	}
	at := strings.LastIndex(value, "@")
	if !strings.Contains(value[at+1:], ".") {
		errs.Add(field, MsgInvalidEmail)
		return false
	}
	return true
}
