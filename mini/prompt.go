package mini

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

type prompter interface {
	ask(message string) (string, error)
}

// surveyPrompter is used when stdin is a terminal.
type surveyPrompter struct{}

func (surveyPrompter) ask(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: strings.TrimSuffix(message, ": ")}, &answer)
	return answer, err
}

// linePrompter reads one line per answer, for pipes and tests.
type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{in: bufio.NewReader(in), out: out}
}

// ask returns io.EOF only once no partial line is left.
func (p *linePrompter) ask(message string) (string, error) {
	fmt.Fprint(p.out, message)

	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}

	if err != nil {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
