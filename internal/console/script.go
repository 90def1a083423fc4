package console

import (
	"fmt"
	"strings"
)

// Script is an IO answering questions from a fixed list, for tests and
// batch runs. It records everything written to it.
type Script struct {
	// Answers are consumed in order by Ask and Confirm. An empty answer
	// selects the default.
	Answers []string

	// Prompts records the questions asked, including repeated ones.
	Prompts []string

	// Errors records the validation messages of rejected answers.
	Errors []string

	out strings.Builder
}

// NewScript returns a script giving answers in order.
func NewScript(answers ...string) *Script {
	return &Script{Answers: answers}
}

func (s *Script) next(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Answers) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoInput, prompt)
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	return a, nil
}

// Ask implements IO.
func (s *Script) Ask(q Question) (string, error) {
	for {
		input, err := s.next(q.Prompt)
		if err != nil {
			return "", err
		}
		value, err := resolve(q, input)
		if err == nil {
			return value, nil
		}
		s.Errors = append(s.Errors, err.Error())
	}
}

// Confirm implements IO.
func (s *Script) Confirm(prompt string, def bool) (bool, error) {
	for {
		input, err := s.next(prompt)
		if err != nil {
			return false, err
		}
		ok, err := parseConfirmation(input, def)
		if err == nil {
			return ok, nil
		}
		s.Errors = append(s.Errors, err.Error())
	}
}

// Section implements IO.
func (s *Script) Section(title string) {
	fmt.Fprintf(&s.out, "== %s ==\n", title)
}

// Writeln implements IO.
func (s *Script) Writeln(text string) {
	s.out.WriteString(text)
	s.out.WriteByte('\n')
}

// Block implements IO.
func (s *Script) Block(message string, style Style) {
	fmt.Fprintf(&s.out, "[%s] %s\n", style, message)
}

// Output returns everything written so far.
func (s *Script) Output() string {
	return s.out.String()
}
