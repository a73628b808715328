// Package media wraps the external ffmpeg/ffprobe tools behind small
// collaborators: probing metadata, cutting planned windows with stream copy,
// inspecting files, and re-checking produced segments against the
// transcription limits.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Metadata describes a probed audio file.
type Metadata struct {
	DurationSeconds float64
	BitrateKbps     float64
}

// ffprobe JSON payload. bit_rate may live on the format or on the first
// audio stream depending on the container.
type probeOutput struct {
	Streams []probeStream `json:"streams"`
	Format  *probeFormat  `json:"format"`
}

type probeStream struct {
	BitRate string `json:"bit_rate"`
}

type probeFormat struct {
	Duration string `json:"duration"`
	BitRate  string `json:"bit_rate"`
}

// Prober reads duration and average bitrate from audio files using ffprobe.
type Prober struct {
	ffprobePath string
	cmd         commandRunner
}

// ProberOption configures a Prober.
type ProberOption func(*Prober)

// WithProberCommandRunner sets the command runner (for testing).
func WithProberCommandRunner(r commandRunner) ProberOption {
	return func(p *Prober) {
		p.cmd = r
	}
}

// NewProber creates a Prober for the given ffprobe binary.
func NewProber(ffprobePath string, opts ...ProberOption) (*Prober, error) {
	if ffprobePath == "" {
		return nil, fmt.Errorf("ffprobePath cannot be empty: %w", ErrToolNotFound)
	}

	p := &Prober{
		ffprobePath: ffprobePath,
		cmd:         osCommandRunner{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Probe returns the duration and average bitrate of the first audio stream.
func (p *Prober) Probe(ctx context.Context, audioPath string) (Metadata, error) {
	args := []string{
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "format=duration,bit_rate:stream=bit_rate",
		"-of", "json",
		audioPath,
	}

	out, err := p.cmd.Output(ctx, p.ffprobePath, args)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: ffprobe on %s: %v", ErrProbeFailed, audioPath, err)
	}

	return parseProbeOutput(out)
}

// parseProbeOutput extracts duration and bitrate from ffprobe's JSON report.
// The format-level bit_rate is preferred; the first stream is the fallback.
func parseProbeOutput(out []byte) (Metadata, error) {
	var parsed probeOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		return Metadata{}, fmt.Errorf("%w: unparseable ffprobe output: %v", ErrProbeFailed, err)
	}

	if parsed.Format == nil || parsed.Format.Duration == "" {
		return Metadata{}, fmt.Errorf("%w: duration missing from ffprobe output", ErrProbeFailed)
	}
	duration, err := strconv.ParseFloat(parsed.Format.Duration, 64)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: bad duration %q: %v", ErrProbeFailed, parsed.Format.Duration, err)
	}

	bitRate := parsed.Format.BitRate
	if bitRate == "" && len(parsed.Streams) > 0 {
		bitRate = parsed.Streams[0].BitRate
	}
	if bitRate == "" {
		return Metadata{}, fmt.Errorf("%w: bitrate missing from ffprobe output", ErrProbeFailed)
	}
	bitsPerSecond, err := strconv.ParseFloat(bitRate, 64)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: bad bitrate %q: %v", ErrProbeFailed, bitRate, err)
	}

	return Metadata{
		DurationSeconds: duration,
		BitrateKbps:     bitsPerSecond / 1000,
	}, nil
}
