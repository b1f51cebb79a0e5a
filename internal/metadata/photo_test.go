package metadata

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fedragon/go-organize/internal/mediatest"
	"github.com/fedragon/go-organize/internal/models"

	"go.uber.org/zap/zaptest"
)

func TestPhotoExtract(t *testing.T) {
	dir := t.TempDir()
	mediatest.WriteJPEG(t, filepath.Join(dir, "dated.jpg"), "2020:01:15 10:00:00")
	mediatest.WriteJPEG(t, filepath.Join(dir, "undated.jpg"), "")
	mediatest.WriteJPEG(t, filepath.Join(dir, "short.jpg"), "2020")
	mediatest.WritePNG(t, filepath.Join(dir, "plain.png"))
	mediatest.WritePNGWithEXIF(t, filepath.Join(dir, "dated.png"), "2021:08:15 10:00:00")

	cases := []struct {
		name     string
		file     string
		expected models.CaptureDate
		ok       bool
	}{
		{
			name:     "DateTime yields year and month tokens",
			file:     "dated.jpg",
			expected: models.CaptureDate{Year: "2020", Month: "01"},
			ok:       true,
		},
		{
			name: "a JPEG without EXIF has no capture date",
			file: "undated.jpg",
		},
		{
			name: "a DateTime without a month has no capture date",
			file: "short.jpg",
		},
		{
			name:     "DateTime in a PNG eXIf chunk yields year and month tokens",
			file:     "dated.png",
			expected: models.CaptureDate{Year: "2021", Month: "08"},
			ok:       true,
		},
		{
			name: "a PNG without EXIF has no capture date",
			file: "plain.png",
		},
	}

	p := &PhotoExtractor{Logger: zaptest.NewLogger(t)}
	for _, c := range cases {
		got, ok, err := p.Extract(context.Background(), filepath.Join(dir, c.file))
		if err != nil {
			t.Errorf("%v\n\tUnexpected error %v", c.name, err)
			continue
		}
		if ok != c.ok || got != c.expected {
			t.Errorf("%v\n\tExpected %v (%v) but got %v (%v) instead", c.name, c.expected, c.ok, got, ok)
		}
	}
}

func TestPhotoExtractRejectsInvalidImages(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.jpg")
	if err := os.WriteFile(broken, []byte("not an image"), 0o644); err != nil {
		t.Fatalf(err.Error())
	}

	p := &PhotoExtractor{Logger: zaptest.NewLogger(t)}
	for _, path := range []string{broken, filepath.Join(dir, "missing.jpg")} {
		if _, _, err := p.Extract(context.Background(), path); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("Expected ErrInvalidImage for %v but got %v instead", path, err)
		}
	}
}
