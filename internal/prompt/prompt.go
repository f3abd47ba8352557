package prompt

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bashhack/gitcz/internal/logger"
)

// Prompter defines an interface for the interactive questions gitcz asks
type Prompter interface {
	// Line asks for a single line of input and returns it trimmed
	Line(question string) (string, error)

	// MultiLine reads everything up to end-of-input as a free-form block
	MultiLine(question string) (string, error)

	// YesNo asks the user a yes/no question and returns their response
	YesNo(question string) bool
}

// DefaultPrompter is the standard implementation of Prompter that reads
// from stdin and writes through the logger
type DefaultPrompter struct {
	Reader io.Reader
	Logger logger.Logger

	reader *bufio.Reader
}

// NewDefaultPrompter creates a new DefaultPrompter reading from stdin
func NewDefaultPrompter(log logger.Logger) *DefaultPrompter {
	return &DefaultPrompter{
		Reader: os.Stdin,
		Logger: log,
	}
}

// buffered returns a bufio.Reader over the input, created once so that
// consecutive prompts never drop buffered bytes.
func (p *DefaultPrompter) buffered() *bufio.Reader {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.Reader)
	}
	return p.reader
}

// Line asks for a single line of input and returns it with surrounding
// whitespace trimmed. End-of-input with no text counts as an empty answer.
func (p *DefaultPrompter) Line(question string) (string, error) {
	p.Logger.StatusMessage("%s", question)

	answer, err := p.buffered().ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// MultiLine reads all remaining input until end-of-input and returns it
// verbatim, minus a trailing newline.
func (p *DefaultPrompter) MultiLine(question string) (string, error) {
	p.Logger.StatusMessage("%s", question)

	data, err := io.ReadAll(p.buffered())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// YesNo asks the user a yes/no question and returns their response.
// Any read failure defaults to 'no'.
func (p *DefaultPrompter) YesNo(question string) bool {
	p.Logger.StatusMessage("%s (y/n): ", question)

	answer, err := p.buffered().ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}

	answer = strings.TrimSpace(answer)
	return strings.HasPrefix(strings.ToLower(answer), "y")
}
