package models

import (
	"fmt"
	"strings"
)

type Kind int

const (
	Photo Kind = iota + 1
	Video
)

func (k Kind) String() string {
	switch k {
	case Photo:
		return "photo"
	case Video:
		return "video"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MediaFile is a candidate found in the source directory. Name is relative to it.
type MediaFile struct {
	Name string
	Kind Kind
}

// CaptureDate holds the year and month tokens exactly as they were read from
// the file's metadata. They are neither validated nor zero-padded.
type CaptureDate struct {
	Year  string
	Month string
}

type Layout int

const (
	Year Layout = iota + 1
	Month
	YearMonth
	YearSlashMonth
)

var layoutNames = map[Layout]string{
	Year:           "year",
	Month:          "month",
	YearMonth:      "year_month",
	YearSlashMonth: "year/month",
}

func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("layout(%d)", int(l))
}

// ParseLayout accepts either the long layout names or the short tokens
// offered by the interactive prompt (y, m, y_m, y/m).
func ParseLayout(s string) (Layout, bool) {
	switch strings.TrimSpace(s) {
	case "y", "year":
		return Year, true
	case "m", "month":
		return Month, true
	case "y_m", "year_month":
		return YearMonth, true
	case "y/m", "year/month":
		return YearSlashMonth, true
	}
	return 0, false
}

// ErrorPolicy decides what happens to a run when a photo cannot be decoded.
type ErrorPolicy int

const (
	Skip ErrorPolicy = iota
	Abort
)

func (p ErrorPolicy) String() string {
	if p == Abort {
		return "abort"
	}
	return "skip"
}

func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch strings.TrimSpace(s) {
	case "", "skip":
		return Skip, nil
	case "abort":
		return Abort, nil
	}
	return Skip, fmt.Errorf("unknown error policy %q", s)
}
