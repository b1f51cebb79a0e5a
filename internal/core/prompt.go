package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fedragon/go-organize/internal/models"
)

var ErrAborted = errors.New("aborted")

// Prompter asks the operator questions on a terminal, repeating a question
// until the answer is recognised. Running out of input aborts.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: no more input", ErrAborted)
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Confirm returns nil on "y" and ErrAborted on "n".
func (p *Prompter) Confirm() error {
	for {
		answer, err := p.ask("\nWould you like to sort these images? (y/n): ")
		if err != nil {
			return err
		}
		switch answer {
		case "y":
			return nil
		case "n":
			return ErrAborted
		}
	}
}

func (p *Prompter) ChooseLayout() (models.Layout, error) {
	for {
		answer, err := p.ask("\nWhich directory layout would you prefer?:\n" +
			"    year (y), month (m), year_month? (y_m), or year/month (y/m): ")
		if err != nil {
			return 0, err
		}
		switch answer {
		case "y", "m", "y_m", "y/m":
			layout, _ := models.ParseLayout(answer)
			return layout, nil
		}
		fmt.Fprintln(p.out, "Invalid input, please try again.")
	}
}
