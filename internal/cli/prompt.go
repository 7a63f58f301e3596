package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when input ends before a prompt is answered.
var ErrNoInput = errors.New("no input received")

// prompter asks questions on out and reads trimmed answers from in.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask writes question and returns the answer with surrounding whitespace removed.
// A final line without a newline is still an answer; input that ends with
// nothing left to read returns ErrNoInput.
func (p *prompter) ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}

	return strings.TrimSpace(line), nil
}
