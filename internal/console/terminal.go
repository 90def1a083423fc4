package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal is an IO reading answers line by line from an input stream.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	// Interactive is false when every question takes its default answer
	// without reading input.
	Interactive bool

	section lipgloss.Style
	label   lipgloss.Style
	blocks  map[Style]lipgloss.Style
}

// NewTerminal returns a terminal dialogue on in and out. Colors are used
// only when out supports them.
func NewTerminal(in io.Reader, out io.Writer, interactive bool) *Terminal {
	r := lipgloss.NewRenderer(out)
	block := r.NewStyle().Padding(1, 2)
	return &Terminal{
		in:          bufio.NewReader(in),
		out:         out,
		Interactive: interactive,
		section:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		label:       r.NewStyle().Foreground(lipgloss.Color("2")),
		blocks: map[Style]lipgloss.Style{
			StyleInfo:    block.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")),
			StyleSuccess: block.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("2")),
			StyleWarning: block.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),
			StyleError:   block.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
		},
	}
}

// Ask implements IO.
func (t *Terminal) Ask(q Question) (string, error) {
	for {
		t.prompt(q.Prompt, q.Default)
		input, err := t.readLine()
		if err != nil {
			return "", err
		}
		value, err := resolve(q, input)
		if err == nil {
			return value, nil
		}
		if !t.Interactive {
			return "", fmt.Errorf("%w: %s: %v", ErrNoInput, q.Prompt, err)
		}
		t.Block(err.Error(), StyleError)
	}
}

// Confirm implements IO.
func (t *Terminal) Confirm(prompt string, def bool) (bool, error) {
	hint := "no"
	if def {
		hint = "yes"
	}
	for {
		t.prompt(prompt+" (yes/no)", hint)
		input, err := t.readLine()
		if err != nil {
			return false, err
		}
		ok, err := parseConfirmation(input, def)
		if err == nil {
			return ok, nil
		}
		t.Block(err.Error(), StyleError)
	}
}

// Section implements IO.
func (t *Terminal) Section(title string) {
	fmt.Fprintf(t.out, "\n%s\n%s\n\n", t.section.Render(title), t.section.Render(strings.Repeat("=", len(title))))
}

// Writeln implements IO.
func (t *Terminal) Writeln(text string) {
	fmt.Fprintln(t.out, text)
}

// Block implements IO.
func (t *Terminal) Block(message string, style Style) {
	fmt.Fprintf(t.out, "\n%s\n\n", t.blocks[style].Render(message))
}

func (t *Terminal) prompt(text, def string) {
	fmt.Fprintf(t.out, " %s", t.label.Render(text))
	if def != "" {
		fmt.Fprintf(t.out, " [%s]", def)
	}
	fmt.Fprint(t.out, ":\n > ")
}

// readLine returns the next input line. Non-interactive terminals answer
// every question with an empty line.
func (t *Terminal) readLine() (string, error) {
	if !t.Interactive {
		fmt.Fprintln(t.out)
		return "", nil
	}
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return line, nil
}
