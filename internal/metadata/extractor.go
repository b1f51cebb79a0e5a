package metadata

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fedragon/go-organize/internal/models"
)

var (
	ErrInvalidImage  = errors.New("invalid image")
	ErrProbe         = errors.New("probe failed")
	ErrNoVideoStream = errors.New("no video stream found")
)

// Extractor returns the capture date of the file at path. ok is false when
// the container carries no usable timestamp.
type Extractor interface {
	Extract(ctx context.Context, path string) (date models.CaptureDate, ok bool, err error)
}

// Extractors dispatches on the kind decided at classification time.
type Extractors struct {
	Photo Extractor
	Video Extractor
}

func (e Extractors) For(kind models.Kind) (Extractor, error) {
	switch kind {
	case models.Photo:
		return e.Photo, nil
	case models.Video:
		return e.Video, nil
	}
	return nil, fmt.Errorf("no extractor for %v", kind)
}

// splitDate returns the first two fields of s split on sep.
func splitDate(s, sep string) (models.CaptureDate, bool) {
	year, rest, found := strings.Cut(s, sep)
	if !found {
		return models.CaptureDate{}, false
	}
	month, _, _ := strings.Cut(rest, sep)
	return models.CaptureDate{Year: year, Month: month}, true
}
