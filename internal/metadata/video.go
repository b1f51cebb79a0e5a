package metadata

import (
	"context"
	"fmt"

	"github.com/fedragon/go-organize/internal/models"

	"go.uber.org/zap"
)

// VideoExtractor reads the creation_time tag of the first video stream,
// formatted "YYYY-MM-DD...". Unlike photos, a file that cannot be probed or
// has no video stream is an error.
type VideoExtractor struct {
	Prober Prober
	Logger *zap.Logger
}

func (v *VideoExtractor) Extract(ctx context.Context, path string) (models.CaptureDate, bool, error) {
	probe, err := v.Prober.Probe(ctx, path)
	if err != nil {
		return models.CaptureDate{}, false, fmt.Errorf("%w: %v", ErrProbe, err)
	}

	stream, ok := probe.VideoStream()
	if !ok {
		return models.CaptureDate{}, false, fmt.Errorf("%w: %v", ErrNoVideoStream, path)
	}

	created, ok := stream.Tags["creation_time"]
	if !ok {
		v.Logger.Debug("No creation_time tag", zap.String("file", path))
		return models.CaptureDate{}, false, nil
	}

	date, ok := splitDate(created, "-")
	return date, ok, nil
}
