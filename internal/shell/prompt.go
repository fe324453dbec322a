package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// prompter writes a prompt and reads one line of input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// ask prints label and returns the next input line without its line ending.
// A final line without a newline is returned normally; io.EOF is returned
// only when nothing was read.
func (p *prompter) ask(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
