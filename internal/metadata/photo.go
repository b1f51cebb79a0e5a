package metadata

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/fedragon/go-organize/internal/models"

	"github.com/rwcarlsen/goexif/exif"
	"go.uber.org/zap"
)

// PhotoExtractor reads the EXIF DateTime tag, formatted "YYYY:MM:DD HH:MM:SS".
type PhotoExtractor struct {
	Logger *zap.Logger
}

func (p *PhotoExtractor) Extract(_ context.Context, path string) (models.CaptureDate, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.CaptureDate{}, false, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return models.CaptureDate{}, false, fmt.Errorf("%w: %v: %v", ErrInvalidImage, path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return models.CaptureDate{}, false, err
	}

	if format == "png" {
		value, ok := p.pngDateTime(f, path)
		if !ok {
			return models.CaptureDate{}, false, nil
		}
		return parseDateTime(value)
	}

	x, err := exif.Decode(f)
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		p.Logger.Debug("No EXIF data", zap.String("file", path), zap.Error(err))
		return models.CaptureDate{}, false, nil
	}

	tag, err := x.Get(exif.DateTime)
	if err != nil {
		return models.CaptureDate{}, false, nil
	}
	value, err := tag.StringVal()
	if err != nil {
		p.Logger.Debug("Unreadable DateTime tag", zap.String("file", path), zap.Error(err))
		return models.CaptureDate{}, false, nil
	}

	return parseDateTime(value)
}

// parseDateTime keeps the year and month of a "YYYY:MM:DD HH:MM:SS" value.
func parseDateTime(value string) (models.CaptureDate, bool, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return models.CaptureDate{}, false, nil
	}

	date, ok := splitDate(fields[0], ":")
	return date, ok, nil
}
