package store

import (
	"strings"
	"unicode/utf8"

	"github.com/rogersnm/taskeasy/internal/model"
)

const MaxTitleLength = 100

const (
	MsgTitleRequired   = "Title is required"
	MsgTitleTooLong    = "Title must be less than 100 characters"
	MsgInvalidPriority = "Invalid priority value"
	MsgInvalidStatus   = "Invalid status value"
)

// Validate returns every failed rule in fixed order: title required, title
// too long, priority, status. The length rule counts the raw title; the
// emptiness rule looks at the trimmed title.
func Validate(c model.Candidate) []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, MsgTitleRequired)
	}
	if utf8.RuneCountInString(c.Title) > MaxTitleLength {
		errs = append(errs, MsgTitleTooLong)
	}
	if !c.Priority.Valid() {
		errs = append(errs, MsgInvalidPriority)
	}
	if !c.Status.Valid() {
		errs = append(errs, MsgInvalidStatus)
	}
	return errs
}

func firstError(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Message: errs[0]}
}
