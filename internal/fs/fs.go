package fs

import (
	"os"
	"strings"

	"github.com/fedragon/go-organize/internal/models"
)

const (
	JPG = "jpg"
	PNG = "png"
	MP4 = "mp4"
)

var (
	photoTypes = map[string]bool{JPG: true, PNG: true}
	videoTypes = map[string]bool{MP4: true}
)

// List returns the names of the regular entries of root, sorted by name.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}

	return names, nil
}

// Classify splits names into photos and videos, keeping their relative order.
// Anything else is ignored.
func Classify(names []string) (photos []models.MediaFile, videos []models.MediaFile) {
	for _, name := range names {
		switch ext := extension(name); {
		case photoTypes[ext]:
			photos = append(photos, models.MediaFile{Name: name, Kind: models.Photo})
		case videoTypes[ext]:
			videos = append(videos, models.MediaFile{Name: name, Kind: models.Video})
		}
	}

	return photos, videos
}

// extension is whatever follows the last dot, or the whole name when there is none.
func extension(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
