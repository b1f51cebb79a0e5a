package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// FFProbe runs the ffprobe binary and decodes its JSON output.
type FFProbe struct {
	Binary string
}

func (f *FFProbe) Probe(ctx context.Context, path string) (Probe, error) {
	binary := strings.TrimSpace(f.Binary)
	if binary == "" {
		binary = "ffprobe"
	}
	if strings.TrimSpace(path) == "" {
		return Probe{}, errors.New("ffprobe: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.Output()
	if err != nil {
		var stderr string
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		return Probe{}, fmt.Errorf("ffprobe %v: %w: %s", path, err, stderr)
	}

	return parseFFProbe(output)
}

func parseFFProbe(output []byte) (Probe, error) {
	var probe Probe
	if err := json.Unmarshal(output, &probe); err != nil {
		return Probe{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return probe, nil
}
