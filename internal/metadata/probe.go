package metadata

import (
	"context"
	"strings"
)

// Probe is the subset of ffprobe output needed to date a video.
type Probe struct {
	Streams []Stream `json:"streams"`
}

type Stream struct {
	Index     int               `json:"index"`
	CodecName string            `json:"codec_name"`
	CodecType string            `json:"codec_type"`
	Tags      map[string]string `json:"tags"`
}

// VideoStream returns the first stream whose codec type is video.
func (p Probe) VideoStream() (Stream, bool) {
	for _, s := range p.Streams {
		if strings.EqualFold(s.CodecType, "video") {
			return s, true
		}
	}
	return Stream{}, false
}

type Prober interface {
	Probe(ctx context.Context, path string) (Probe, error)
}
