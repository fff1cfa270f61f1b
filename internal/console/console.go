// Package console reads line-oriented answers from the terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console prints a prompt and reads the reply from an input stream.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Prompt writes msg and returns the next input line without its line ending.
// A final line without a newline is returned normally; io.EOF is returned
// only when nothing was read.
func (c *Console) Prompt(msg string) (string, error) {
	if msg != "" {
		fmt.Fprint(c.out, msg)
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
