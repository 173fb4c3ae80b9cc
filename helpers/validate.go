package helpers

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinAgentTypeLength = 3
	MaxAgentTypeLength = 100
)

var (
	ErrAgentTypeEmpty    = errors.New("please enter an agent type")
	ErrAgentTypeTooShort = errors.New("agent type must be at least 3 characters")
	ErrAgentTypeTooLong  = errors.New("agent type must be less than 100 characters")
)

var (
	tagRegex         = regexp.MustCompile(`<[^>]*>`)
	scriptRegex      = regexp.MustCompile(`(?i)javascript:`)
	eventAttrRegex   = regexp.MustCompile(`(?i)on\w+\s*=`)
	controlCharRegex = regexp.MustCompile(`[\x00-\x1F\x7F-\x9F]`)
)

// ValidateAgentType checks the free-text agent description fed to the generator.
func ValidateAgentType(input string) error {
	trimmed := strings.TrimSpace(input)
	n := utf8.RuneCountInString(trimmed)
	switch {
	case n == 0:
		return ErrAgentTypeEmpty
	case n < MinAgentTypeLength:
		return ErrAgentTypeTooShort
	case n > MaxAgentTypeLength:
		return ErrAgentTypeTooLong
	}
	return nil
}

// SanitizeInput strips markup, script fragments and control characters from
// user input before it is placed into a model prompt.
func SanitizeInput(input string) string {
	s := strings.TrimSpace(input)
	s = tagRegex.ReplaceAllString(s, "")
	s = scriptRegex.ReplaceAllString(s, "")
	s = eventAttrRegex.ReplaceAllString(s, "")
	s = controlCharRegex.ReplaceAllString(s, "")
	return s
}
