package domain

import (
	"encoding/json"
	"errors"
	"strings"
)

// StandardOutcome-specific validation errors
var (
	// ErrStandardOutcomeAuthorEmpty is returned when the author is empty.
	ErrStandardOutcomeAuthorEmpty = errors.New("standard outcome author cannot be empty")

	// ErrStandardOutcomeNameEmpty is returned when the name is empty.
	ErrStandardOutcomeNameEmpty = errors.New("standard outcome name cannot be empty")

	// ErrStandardOutcomeDateEmpty is returned when the date is empty.
	ErrStandardOutcomeDateEmpty = errors.New("standard outcome date cannot be empty")

	// ErrStandardOutcomeTextEmpty is returned when the outcome text is empty.
	ErrStandardOutcomeTextEmpty = errors.New("standard outcome text cannot be empty")
)

// StandardOutcome is an independently authored curriculum standard that
// learning outcomes map to. Mappings hold references only; a standard
// outcome is never owned by the outcome that maps to it.
//
// The four fields are independent value fields with no cross-field
// relationship. Each setter requires a non-empty value after trimming.
type StandardOutcome struct {
	author  string
	name    string
	date    string
	outcome string
}

// NewStandardOutcome creates an empty StandardOutcome. Fields default to
// empty strings and are populated through the validating setters.
func NewStandardOutcome() *StandardOutcome {
	return &StandardOutcome{}
}

// Author returns the standard's authoring body.
func (s *StandardOutcome) Author() string { return s.author }

// Name returns the standard's name.
func (s *StandardOutcome) Name() string { return s.name }

// Date returns the standard's publication date label.
func (s *StandardOutcome) Date() string { return s.date }

// Outcome returns the standard's outcome text.
func (s *StandardOutcome) Outcome() string { return s.outcome }

// SetAuthor sets the authoring body. The value is trimmed and must be
// non-empty.
func (s *StandardOutcome) SetAuthor(author string) error {
	trimmed := strings.TrimSpace(author)
	if trimmed == "" {
		return ErrStandardOutcomeAuthorEmpty
	}
	s.author = trimmed
	return nil
}

// SetName sets the standard's name. The value is trimmed and must be
// non-empty.
func (s *StandardOutcome) SetName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrStandardOutcomeNameEmpty
	}
	s.name = trimmed
	return nil
}

// SetDate sets the publication date label. The value is trimmed and must
// be non-empty.
func (s *StandardOutcome) SetDate(date string) error {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return ErrStandardOutcomeDateEmpty
	}
	s.date = trimmed
	return nil
}

// SetOutcome sets the outcome text. The value is trimmed and must be
// non-empty.
func (s *StandardOutcome) SetOutcome(outcome string) error {
	trimmed := strings.TrimSpace(outcome)
	if trimmed == "" {
		return ErrStandardOutcomeTextEmpty
	}
	s.outcome = trimmed
	return nil
}

type standardOutcomeJSON struct {
	Author  string `json:"author"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Outcome string `json:"outcome"`
}

// MarshalJSON serializes the four public fields.
func (s *StandardOutcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(standardOutcomeJSON{
		Author:  s.author,
		Name:    s.name,
		Date:    s.date,
		Outcome: s.outcome,
	})
}

// UnmarshalJSON performs a presence-guarded partial copy: fields that are
// missing or empty in the payload keep their empty-string defaults, and no
// validation error is raised at reconstruction time even though the
// setters would reject empty values.
func (s *StandardOutcome) UnmarshalJSON(data []byte) error {
	var raw standardOutcomeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Author != "" {
		s.author = strings.TrimSpace(raw.Author)
	}
	if raw.Name != "" {
		s.name = strings.TrimSpace(raw.Name)
	}
	if raw.Date != "" {
		s.date = strings.TrimSpace(raw.Date)
	}
	if raw.Outcome != "" {
		s.outcome = strings.TrimSpace(raw.Outcome)
	}

	return nil
}
