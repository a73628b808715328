package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/alnah/go-audiosplit/internal/plan"
)

// Cutter extracts planned windows from audio files using ffmpeg stream copy.
// No re-encoding takes place, so cuts are fast and the codec is preserved.
type Cutter struct {
	ffmpegPath string
	cmd        commandRunner
}

// CutterOption configures a Cutter.
type CutterOption func(*Cutter)

// WithCutterCommandRunner sets the command runner (for testing).
func WithCutterCommandRunner(r commandRunner) CutterOption {
	return func(c *Cutter) {
		c.cmd = r
	}
}

// NewCutter creates a Cutter for the given ffmpeg binary.
func NewCutter(ffmpegPath string, opts ...CutterOption) (*Cutter, error) {
	if ffmpegPath == "" {
		return nil, fmt.Errorf("ffmpegPath cannot be empty: %w", ErrToolNotFound)
	}

	c := &Cutter{
		ffmpegPath: ffmpegPath,
		cmd:        osCommandRunner{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Cut copies window w from inputPath into outputPath.
// Existing output files are overwritten.
func (c *Cutter) Cut(ctx context.Context, inputPath string, w plan.Window, outputPath string) error {
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", inputPath,
		"-ss", formatSeconds(w.Start),
		"-t", formatSeconds(w.Duration),
		"-c", "copy",
		outputPath,
	}

	out, err := c.cmd.CombinedOutput(ctx, c.ffmpegPath, args)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v\nOutput: %s",
			ErrCutFailed, filepath.Base(outputPath), err, string(out))
	}
	return nil
}

// formatSeconds renders a timestamp for ffmpeg -ss/-t arguments.
// Millisecond precision matches what stream copy can honor.
func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}
