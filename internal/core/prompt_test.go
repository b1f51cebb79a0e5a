package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fedragon/go-organize/internal/models"
)

func TestConfirm(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected error
		asked    int
	}{
		{name: "yes", input: "y\n", asked: 1},
		{name: "no aborts", input: "n\n", expected: ErrAborted, asked: 1},
		{name: "unrecognised answers are asked again", input: "maybe\nY\n  y  \n", asked: 3},
		{name: "end of input aborts", input: "what\n", expected: ErrAborted, asked: 2},
	}

	for _, c := range cases {
		var out bytes.Buffer
		err := NewPrompter(strings.NewReader(c.input), &out).Confirm()

		if !errors.Is(err, c.expected) || (c.expected == nil && err != nil) {
			t.Errorf("%v\n\tExpected %v but got %v instead", c.name, c.expected, err)
		}
		if got := strings.Count(out.String(), "(y/n)"); got != c.asked {
			t.Errorf("%v\n\tExpected %v questions but got %v instead", c.name, c.asked, got)
		}
	}
}

func TestChooseLayout(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected models.Layout
		invalid  int
	}{
		{name: "year", input: "y\n", expected: models.Year},
		{name: "month", input: "m\n", expected: models.Month},
		{name: "year_month", input: "y_m\n", expected: models.YearMonth},
		{name: "year/month", input: " y/m \n", expected: models.YearSlashMonth},
		{name: "long names are not prompt answers", input: "year\nmonth\nm\n", expected: models.Month, invalid: 2},
	}

	for _, c := range cases {
		var out bytes.Buffer
		got, err := NewPrompter(strings.NewReader(c.input), &out).ChooseLayout()
		if err != nil {
			t.Errorf("%v\n\tUnexpected error %v", c.name, err)
			continue
		}
		if got != c.expected {
			t.Errorf("%v\n\tExpected %v but got %v instead", c.name, c.expected, got)
		}
		if n := strings.Count(out.String(), "Invalid input"); n != c.invalid {
			t.Errorf("%v\n\tExpected %v invalid answers but got %v instead", c.name, c.invalid, n)
		}
	}

	if _, err := NewPrompter(strings.NewReader(""), &bytes.Buffer{}).ChooseLayout(); !errors.Is(err, ErrAborted) {
		t.Errorf("Expected end of input to abort but got %v instead", err)
	}
}
