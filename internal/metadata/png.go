package metadata

import (
	"io"
	"strings"

	dexif "github.com/dsoprea/go-exif/v3"
	"go.uber.org/zap"
)

const tagDateTime = 0x0132

// pngDateTime reads DateTime from the EXIF block a PNG carries in its eXIf chunk.
func (p *PhotoExtractor) pngDateTime(r io.Reader, path string) (string, bool) {
	data, err := io.ReadAll(r)
	if err != nil {
		p.Logger.Debug("Unreadable PNG", zap.String("file", path), zap.Error(err))
		return "", false
	}

	raw, err := dexif.SearchAndExtractExif(data)
	if err != nil {
		p.Logger.Debug("No EXIF data", zap.String("file", path), zap.Error(err))
		return "", false
	}

	tags, _, err := dexif.GetFlatExifData(raw, &dexif.ScanOptions{})
	if err != nil {
		p.Logger.Debug("Unreadable EXIF data", zap.String("file", path), zap.Error(err))
		return "", false
	}

	for _, tag := range tags {
		if tag.TagId != tagDateTime {
			continue
		}
		if value, ok := tag.Value.(string); ok {
			return strings.TrimRight(value, "\x00"), true
		}
	}

	return "", false
}
