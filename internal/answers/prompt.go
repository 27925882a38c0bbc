package answers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Interactive reports whether stdin is a terminal, i.e. whether prompting
// the user makes sense at all.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Prompter collects answers interactively, falling back to the provided
// defaults on empty input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing questions
// to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Collect asks the setup questions and returns the completed answers.
// Choices already fixed in base (e.g. by CLI flags, tracked in fixed) are
// not asked again.
func (p *Prompter) Collect(base Answers, fixed map[string]bool) (Answers, error) {
	a := base

	if !fixed["language"] {
		useTS, err := p.confirm("Do you want to use TypeScript or JavaScript?", "TypeScript", "JavaScript")
		if err != nil {
			return a, err
		}
		if useTS {
			a.Language = TypeScript
		} else {
			a.Language = JavaScript
		}
	}

	if !fixed["testDir"] && !a.IsComponentTesting() {
		dir, err := p.ask("Where to put your end-to-end tests?", a.TestDir)
		if err != nil {
			return a, err
		}
		a.TestDir = dir
	}

	if !fixed["gha"] {
		gha, err := p.confirmYesNo("Add a GitHub Actions workflow?", a.AddGitHubActions)
		if err != nil {
			return a, err
		}
		a.AddGitHubActions = gha
	}

	if !fixed["browsers"] {
		install, err := p.confirmYesNo("Install Playwright browsers (can be done manually via 'npx playwright install')?", a.InstallBrowsers)
		if err != nil {
			return a, err
		}
		a.InstallBrowsers = install
	}

	return a, nil
}

// ask prints a question and reads one trimmed line, returning def on
// empty input.
func (p *Prompter) ask(question, def string) (string, error) {
	fmt.Fprintf(p.out, "%s (%s): ", question, def)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// confirm asks a two-way question and reports whether the answer matched
// the first option. Answers match an option by case-insensitive prefix or
// by its initial letter; anything else keeps the default (the first
// option, which the prompt displays).
func (p *Prompter) confirm(question, first, second string) (bool, error) {
	answer, err := p.ask(question, first)
	if err != nil {
		return false, err
	}
	a := strings.ToLower(answer)
	lf, ls := strings.ToLower(first), strings.ToLower(second)
	switch {
	case a == "" || strings.HasPrefix(lf, a):
		return true, nil
	case strings.HasPrefix(ls, a):
		return false, nil
	case a[0] == lf[0]:
		return true, nil
	case a[0] == ls[0]:
		return false, nil
	}
	return true, nil
}

// confirmYesNo asks a yes/no question.
func (p *Prompter) confirmYesNo(question string, def bool) (bool, error) {
	defText := "y"
	if !def {
		defText = "n"
	}
	answer, err := p.ask(question+" [y/n]", defText)
	if err != nil {
		return def, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, nil
	}
}
