package media

import (
	"context"
	"fmt"
)

// Inspector reports ffmpeg's view of a media file.
type Inspector struct {
	ffmpegPath string
	cmd        commandRunner
}

// InspectorOption configures an Inspector.
type InspectorOption func(*Inspector)

// WithInspectorCommandRunner sets the command runner (for testing).
func WithInspectorCommandRunner(r commandRunner) InspectorOption {
	return func(i *Inspector) {
		i.cmd = r
	}
}

// NewInspector creates an Inspector for the given ffmpeg binary.
func NewInspector(ffmpegPath string, opts ...InspectorOption) (*Inspector, error) {
	if ffmpegPath == "" {
		return nil, fmt.Errorf("ffmpegPath cannot be empty: %w", ErrToolNotFound)
	}

	i := &Inspector{
		ffmpegPath: ffmpegPath,
		cmd:        osCommandRunner{},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Inspect runs a null decode and returns ffmpeg's metadata report.
// ffmpeg writes the report to stderr, so combined output is what we want.
func (i *Inspector) Inspect(ctx context.Context, audioPath string) (string, error) {
	args := []string{
		"-hide_banner",
		"-i", audioPath,
		"-f", "null", "-",
	}

	out, err := i.cmd.CombinedOutput(ctx, i.ffmpegPath, args)
	if err != nil {
		return "", fmt.Errorf("%w: ffmpeg on %s: %v\nOutput: %s",
			ErrInspectFailed, audioPath, err, string(out))
	}
	return string(out), nil
}
