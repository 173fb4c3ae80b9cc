package helpers_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"claude-profile/helpers"
)

func TestValidateAgentType(t *testing.T) {
	tests := map[string]struct {
		input string
		want  error
	}{
		"valid":               {input: "code reviewer", want: nil},
		"padded valid":        {input: "   sql tutor  ", want: nil},
		"empty":               {input: "", want: helpers.ErrAgentTypeEmpty},
		"whitespace only":     {input: " \t ", want: helpers.ErrAgentTypeEmpty},
		"too short":           {input: "ab", want: helpers.ErrAgentTypeTooShort},
		"exactly three":       {input: "abc", want: nil},
		"exactly one hundred": {input: strings.Repeat("a", 100), want: nil},
		"too long":            {input: strings.Repeat("a", 101), want: helpers.ErrAgentTypeTooLong},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, helpers.ValidateAgentType(tc.input))
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"plain text":       {input: "  code reviewer ", want: "code reviewer"},
		"html tags":        {input: "<b>code</b> reviewer", want: "code reviewer"},
		"script scheme":    {input: "JavaScript:alert(1)", want: "alert(1)"},
		"event attribute":  {input: "x onClick = y", want: "x  y"},
		"control chars":    {input: "code\x00\x07 reviewer", want: "code reviewer"},
		"unicode survives": {input: "revisor de código", want: "revisor de código"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, helpers.SanitizeInput(tc.input))
		})
	}
}
