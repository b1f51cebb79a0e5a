package core

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fedragon/go-organize/internal/models"
)

// DefaultBucket receives files whose capture date is unknown.
const DefaultBucket = "Timestamp_Unavailable"

var ErrInvalidLayout = errors.New("invalid layout")

// Resolve maps a capture date to a directory under source. A nil date
// resolves to the default bucket regardless of layout. Year and month are
// used verbatim.
func Resolve(source string, date *models.CaptureDate, layout models.Layout) (string, error) {
	switch layout {
	case models.Year, models.Month, models.YearMonth, models.YearSlashMonth:
	default:
		return "", fmt.Errorf("%w: %v", ErrInvalidLayout, layout)
	}

	if date == nil {
		return filepath.Join(source, DefaultBucket), nil
	}

	switch layout {
	case models.Month:
		return filepath.Join(source, date.Month), nil
	case models.Year:
		return filepath.Join(source, date.Year), nil
	case models.YearMonth:
		return filepath.Join(source, date.Year+"_"+date.Month), nil
	default:
		return filepath.Join(source, date.Year, date.Month), nil
	}
}
