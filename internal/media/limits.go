package media

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alnah/go-audiosplit/internal/format"
	"github.com/alnah/go-audiosplit/internal/plan"
)

// metadataProber reads duration and bitrate from an audio file.
// *Prober implements this; tests inject fakes.
type metadataProber interface {
	Probe(ctx context.Context, audioPath string) (Metadata, error)
}

// Validator re-checks produced segments against the transcription limits.
// Planner estimates are bitrate-derived approximations, so every produced
// file is measured again before it is trusted.
type Validator struct {
	prober  metadataProber
	statter fileStatter
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithValidatorStatter sets the file statter (for testing).
func WithValidatorStatter(s fileStatter) ValidatorOption {
	return func(v *Validator) {
		v.statter = s
	}
}

// NewValidator creates a Validator that measures durations with prober.
func NewValidator(prober metadataProber, opts ...ValidatorOption) *Validator {
	v := &Validator{
		prober:  prober,
		statter: osFileStatter{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// FileSize returns the on-disk size of path in bytes.
func (v *Validator) FileSize(path string) (int64, error) {
	info, err := v.statter.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	return info.Size(), nil
}

// EnsureWithinLimits verifies a produced segment still fits the byte and
// duration ceilings. Violations wrap ErrLimitExceeded.
func (v *Validator) EnsureWithinLimits(ctx context.Context, path string) error {
	size, err := v.FileSize(path)
	if err != nil {
		return err
	}
	if !plan.WithinSizeLimit(size) {
		return fmt.Errorf("%w: %s is %s, limit is %s",
			ErrLimitExceeded, filepath.Base(path),
			format.Size(size), format.Size(plan.MaxChunkBytes))
	}

	md, err := v.prober.Probe(ctx, path)
	if err != nil {
		return err
	}
	if !plan.WithinDurationLimit(md.DurationSeconds) {
		return fmt.Errorf("%w: %s is %.1fs, limit is %.0fs",
			ErrLimitExceeded, filepath.Base(path),
			md.DurationSeconds, plan.MaxTranscriptionSeconds)
	}

	return nil
}

// EnsureReadyForSplit refuses inputs that are not already compliant chunks.
// Splitting subdivides a chunk after the fact; oversized inputs must go
// through chunk planning first.
func (v *Validator) EnsureReadyForSplit(path string, durationSeconds float64) error {
	size, err := v.FileSize(path)
	if err != nil {
		return err
	}
	if !plan.WithinSizeLimit(size) || !plan.WithinDurationLimit(durationSeconds) {
		return fmt.Errorf("%w: %s exceeds the chunk limits; chunk it first",
			ErrLimitExceeded, filepath.Base(path))
	}
	return nil
}
