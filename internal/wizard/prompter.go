package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"webstart/internal/ui"
)

// ConsolePrompter reads answers line by line from an input stream.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{in: bufio.NewReader(in), out: out}
}

func (p *ConsolePrompter) Prompt(question string) (string, error) {
	fmt.Fprint(p.out, ui.Prompt.Render(question))

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
