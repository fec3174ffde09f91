// Package term implements the interactive terminal front-end for the
// onboarding flow.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/growvy/onboard/internal/onboarding"
)

// Prompter reads answers line by line. Typing "back" on any prompt goes
// to the previous step, "quit" leaves the flow.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", onboarding.ErrQuit
	}
	line := strings.TrimSpace(p.in.Text())
	switch strings.ToLower(line) {
	case "back":
		return "", onboarding.ErrBack
	case "quit", "exit":
		return "", onboarding.ErrQuit
	}
	return line, nil
}

func (p *Prompter) Input(title, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", title, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", title)
	}
	return p.readLine()
}

func (p *Prompter) Select(title string, options []string) (string, error) {
	fmt.Fprintln(p.out, title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}
	for {
		fmt.Fprint(p.out, "> ")
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(p.out, "Pick a number between 1 and %d.\n", len(options))
			continue
		}
		return options[n-1], nil
	}
}

func (p *Prompter) MultiSelect(title string, options []string, max int, current []string) ([]string, error) {
	fmt.Fprintf(p.out, "%s (up to %d, comma-separated numbers)\n", title, max)
	for i, opt := range options {
		marker := " "
		for _, cur := range current {
			if cur == opt {
				marker = "*"
			}
		}
		fmt.Fprintf(p.out, " %s %d) %s\n", marker, i+1, opt)
	}
	for {
		fmt.Fprint(p.out, "> ")
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return current, nil
		}
		picks, ok := parsePicks(line, len(options))
		if !ok {
			fmt.Fprintf(p.out, "Use numbers between 1 and %d, separated by commas.\n", len(options))
			continue
		}
		if len(picks) > max {
			fmt.Fprintf(p.out, "You can select up to %d.\n", max)
			continue
		}
		selected := make([]string, 0, len(picks))
		for _, n := range picks {
			selected = append(selected, options[n-1])
		}
		return selected, nil
	}
}

func (p *Prompter) Confirm(title string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(p.out, "%s [%s]: ", title, hint)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) Notify(msg string) {
	fmt.Fprintln(p.out, msg)
}

// parsePicks parses "1, 4,7" into unique 1-based indexes.
func parsePicks(line string, limit int) ([]int, bool) {
	parts := strings.Split(line, ",")
	seen := make(map[int]bool)
	picks := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > limit {
			return nil, false
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		picks = append(picks, n)
	}
	return picks, true
}
