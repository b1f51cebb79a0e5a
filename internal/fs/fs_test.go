package fs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fedragon/go-organize/internal/models"
)

func names(files []models.MediaFile) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Name)
	}
	return out
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		input  []string
		photos []string
		videos []string
	}{
		{
			name:   "photos and videos keep their relative order",
			input:  []string{"b.png", "z.mp4", "a.jpg", "c.txt", "a.mp4"},
			photos: []string{"b.png", "a.jpg"},
			videos: []string{"z.mp4", "a.mp4"},
		},
		{
			name:   "only the last extension counts",
			input:  []string{"archive.jpg.zip", "holiday.2020.jpg", "clip.old.mp4"},
			photos: []string{"holiday.2020.jpg"},
			videos: []string{"clip.old.mp4"},
		},
		{
			name:   "a name without a dot is its own extension",
			input:  []string{"jpg", "mp4", "README"},
			photos: []string{"jpg"},
			videos: []string{"mp4"},
		},
		{
			name:   "extensions are case sensitive",
			input:  []string{"IMG_0001.JPG", "MOV_0001.MP4", "jpeg.jpeg"},
			photos: []string{},
			videos: []string{},
		},
	}

	for _, c := range cases {
		photos, videos := Classify(c.input)

		if got := names(photos); !reflect.DeepEqual(got, c.photos) {
			t.Errorf("%v\n\tExpected photos %v but got %v instead", c.name, c.photos, got)
		}
		if got := names(videos); !reflect.DeepEqual(got, c.videos) {
			t.Errorf("%v\n\tExpected videos %v but got %v instead", c.name, c.videos, got)
		}
		for _, p := range photos {
			if p.Kind != models.Photo {
				t.Errorf("%v\n\tExpected %v to be a photo", c.name, p.Name)
			}
		}
		for _, v := range videos {
			if v.Kind != models.Video {
				t.Errorf("%v\n\tExpected %v to be a video", c.name, v.Name)
			}
		}
	}
}

func TestList(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.jpg", "a.mp4", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644); err != nil {
			t.Fatalf(err.Error())
		}
	}
	if err := os.Mkdir(filepath.Join(root, "2020"), 0o755); err != nil {
		t.Fatalf(err.Error())
	}

	got, err := List(root)
	if err != nil {
		t.Fatalf(err.Error())
	}

	expected := []string{"a.mp4", "b.jpg", "notes.txt"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v but got %v instead", expected, got)
	}
}

func TestListFailsOnMissingDirectory(t *testing.T) {
	if _, err := List(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("Expected an error listing a missing directory")
	}
}
