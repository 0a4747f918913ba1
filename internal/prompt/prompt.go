// Package prompt reads answers from an interactive terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user questions, one line per answer.
type Prompter interface {
	Ask(label string) (string, error)
	// AskSecret reads an answer without echoing it when attached to a terminal.
	AskSecret(label string) (string, error)
}

// Terminal is a Prompter over a reader/writer pair. Secrets are read with echo
// disabled when the input is a TTY, and as plain lines otherwise (pipes, tests).
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// New returns a Terminal reading answers from in and writing labels to out.
func New(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.fd = int(f.Fd())
		t.tty = true
	}
	return t
}

// Stdio prompts on stderr so stdout stays clean for command output.
func Stdio() *Terminal {
	return New(os.Stdin, os.Stderr)
}

// Ask prints label and returns the next line without its line ending.
// It returns io.EOF once input is exhausted.
func (t *Terminal) Ask(label string) (string, error) {
	fmt.Fprint(t.out, label)
	line, err := t.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) AskSecret(label string) (string, error) {
	if !t.tty {
		return t.Ask(label)
	}
	fmt.Fprint(t.out, label)
	b, err := term.ReadPassword(t.fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	return string(b), nil
}
