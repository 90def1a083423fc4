// Package console implements the operator dialogue: questions with
// defaults, validation and autocompletion, yes/no confirmations and styled
// status output.
package console

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoInput is returned when a question cannot be answered: the input is
// exhausted, or the default answer of a non-interactive session is invalid.
var ErrNoInput = errors.New("no input available")

// Question is a free text question.
type Question struct {
	// Prompt is the question text.
	Prompt string

	// Default is the answer used when the operator enters nothing.
	Default string

	// Autocomplete lists the expected answers. An answer that is a prefix of
	// exactly one of them is completed.
	Autocomplete []string

	// Validate checks the answer and returns the accepted value. A failing
	// answer is reported and the question is asked again.
	Validate func(string) (string, error)
}

// Style selects the look of a block.
type Style int

const (
	StyleInfo Style = iota
	StyleSuccess
	StyleWarning
	StyleError
)

func (s Style) String() string {
	switch s {
	case StyleInfo:
		return "info"
	case StyleSuccess:
		return "success"
	case StyleWarning:
		return "warning"
	case StyleError:
		return "error"
	default:
		return "unknown"
	}
}

// IO is the dialogue with the operator.
type IO interface {
	// Ask asks q until a valid answer is given.
	Ask(q Question) (string, error)

	// Confirm asks a yes/no question.
	Confirm(prompt string, def bool) (bool, error)

	// Section starts a new output section.
	Section(title string)

	// Writeln writes a line of text.
	Writeln(text string)

	// Block writes a highlighted message.
	Block(message string, style Style)
}

// resolve turns raw input into an answer to q: empty input selects the
// default, unique prefixes of autocomplete values are completed and the
// result is validated.
func resolve(q Question, input string) (string, error) {
	value := strings.TrimRight(input, "\r\n")
	if value == "" {
		value = q.Default
	}
	value = complete(value, q.Autocomplete)
	if q.Validate != nil {
		return q.Validate(value)
	}
	return value, nil
}

func complete(value string, candidates []string) string {
	if value == "" {
		return value
	}
	var match string
	for _, c := range candidates {
		if c == value {
			return value
		}
		if strings.HasPrefix(c, value) {
			if match != "" {
				return value
			}
			match = c
		}
	}
	if match != "" {
		return match
	}
	return value
}

// parseConfirmation interprets a yes/no answer. Empty input selects def.
func parseConfirmation(input string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("please answer yes or no, not %q", strings.TrimSpace(input))
	}
}
