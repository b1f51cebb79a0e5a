package metadata

import (
	"context"
	"fmt"
	"os"
	"time"

	mp4 "github.com/abema/go-mp4"
)

// seconds between the ISO-BMFF epoch (1904-01-01) and the Unix epoch
const mp4EpochOffset = 2082844800

// creation_time as ffprobe prints it
const creationTimeLayout = "2006-01-02T15:04:05.000000Z"

// MP4Probe reads the container directly, without external binaries. It
// reports one stream per track, typed by the track's handler, and tags
// video tracks with the movie header creation time.
type MP4Probe struct{}

func (MP4Probe) Probe(_ context.Context, path string) (Probe, error) {
	f, err := os.Open(path)
	if err != nil {
		return Probe{}, err
	}
	defer f.Close()

	boxes, err := mp4.ExtractBoxesWithPayload(f, nil, []mp4.BoxPath{
		{mp4.BoxTypeMoov(), mp4.BoxTypeMvhd()},
		{mp4.BoxTypeMoov(), mp4.BoxTypeTrak(), mp4.BoxTypeMdia(), mp4.BoxTypeHdlr()},
	})
	if err != nil {
		return Probe{}, fmt.Errorf("mp4 %v: %w", path, err)
	}

	var created string
	var probe Probe
	for _, box := range boxes {
		switch payload := box.Payload.(type) {
		case *mp4.Mvhd:
			if ct := payload.GetCreationTime(); ct != 0 {
				created = time.Unix(int64(ct)-mp4EpochOffset, 0).UTC().Format(creationTimeLayout)
			}
		case *mp4.Hdlr:
			probe.Streams = append(probe.Streams, Stream{
				Index:     len(probe.Streams),
				CodecType: codecType(payload.HandlerType),
			})
		}
	}

	if created != "" {
		for i := range probe.Streams {
			if probe.Streams[i].CodecType == "video" {
				probe.Streams[i].Tags = map[string]string{"creation_time": created}
			}
		}
	}

	return probe, nil
}

func codecType(handler [4]byte) string {
	switch string(handler[:]) {
	case "vide":
		return "video"
	case "soun":
		return "audio"
	case "subt", "sbtl", "text":
		return "subtitle"
	}
	return "data"
}
