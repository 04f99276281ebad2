// Package validation holds the pure input rules of the talent directory:
// registration, profile updates, experience dates and sub-resource payloads.
// Rules never touch the database directly; uniqueness checks go through the
// small lookup interfaces callers pass in.
package validation

import (
	"errors"
	"sort"
	"strings"
)

// Common messages
const (
	MsgRequired          = "This field is required."
	MsgAlreadyRegistered = "already registered"
	MsgRaceConflict      = "email or NIM already registered"
)

// Errors maps a request field to the message describing why it was rejected
type Errors map[string]string

// Add records msg for field unless the field already has a message
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Err returns e as an error, or nil when nothing was recorded
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
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsErrors unwraps err into field errors
func AsErrors(err error) (Errors, bool) {
	var ve Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
