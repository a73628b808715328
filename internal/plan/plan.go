// Package plan computes chunking plans for long audio recordings so every
// produced segment fits the transcription service's size and duration limits.
//
// The planners are pure functions over numeric inputs: no I/O, no shared
// state. Callers own the returned plan and may invoke the planners from any
// number of goroutines without coordination.
package plan

import (
	"fmt"
	"math"
)

// Service limits for transcribable segments.
const (
	// MaxChunkBytes is the hard byte ceiling for a transcribable segment.
	MaxChunkBytes int64 = 25 * 1024 * 1024

	// MaxTranscriptionSeconds is the hard duration ceiling the transcription
	// API accepts for a single segment.
	MaxTranscriptionSeconds = 1400.0

	// DurationBufferSeconds is headroom subtracted from the ceiling when
	// planning, so cut imprecision cannot push a chunk past the limit.
	DurationBufferSeconds = 100.0

	// PlannedMaxWindowSeconds caps planned window durations for low-bitrate
	// sources whose byte-budget-derived duration would exceed the API ceiling.
	PlannedMaxWindowSeconds = MaxTranscriptionSeconds - DurationBufferSeconds

	// SafetyMargin derates the byte budget. Encoded size is only
	// approximately bitrate times duration; the margin absorbs container
	// and muxing overhead the raw estimate does not see.
	SafetyMargin = 0.94
)

// Window is a planned segment of the source audio.
type Window struct {
	Start    float64 // Seconds from the beginning of the source.
	Duration float64 // Seconds; always > 0 in a valid plan.
}

// End returns the window's end position in seconds.
func (w Window) End() float64 {
	return w.Start + w.Duration
}

// String returns a human-readable representation for progress output.
func (w Window) String() string {
	return fmt.Sprintf("start: %.3fs, duration: %.3fs", w.Start, w.Duration)
}

// Plan is an ordered sequence of contiguous, non-overlapping windows.
// Index order is temporal order is output numbering order.
type Plan []Window

// chunkConfig holds the policy knobs for chunk planning.
type chunkConfig struct {
	margin    float64
	maxWindow float64
}

// Option adjusts chunk planning policy.
type Option func(*chunkConfig)

// WithSafetyMargin overrides the byte-budget derating factor.
// Values outside (0, 1] are ignored.
func WithSafetyMargin(m float64) Option {
	return func(c *chunkConfig) {
		if m > 0 && m <= 1 {
			c.margin = m
		}
	}
}

// WithoutSafetyMargin plans against the full byte budget.
func WithoutSafetyMargin() Option {
	return func(c *chunkConfig) {
		c.margin = 1.0
	}
}

// WithMaxWindowSeconds overrides the planned duration cap.
// Non-positive values are ignored.
func WithMaxWindowSeconds(seconds float64) Option {
	return func(c *chunkConfig) {
		if seconds > 0 {
			c.maxWindow = seconds
		}
	}
}

// WithoutDurationCap removes the duration cap, leaving only the byte budget.
func WithoutDurationCap() Option {
	return func(c *chunkConfig) {
		c.maxWindow = math.Inf(1)
	}
}

// Chunks plans windows whose estimated encoded size stays under maxSizeMB
// and whose duration stays under the planned cap.
//
// By default the byte budget is derated by SafetyMargin and windows are
// capped at PlannedMaxWindowSeconds; both policies can be adjusted or
// disabled with options. All windows except the last share one computed
// duration; the last absorbs the remainder, however small.
func Chunks(durationSeconds, bitrateKbps, maxSizeMB float64, opts ...Option) (Plan, error) {
	if durationSeconds <= 0 {
		return nil, fmt.Errorf("%w: duration %.3fs must be greater than zero", ErrInvalidInput, durationSeconds)
	}
	if bitrateKbps <= 0 {
		return nil, fmt.Errorf("%w: bitrate %.3f kbps must be greater than zero", ErrInvalidInput, bitrateKbps)
	}
	if maxSizeMB <= 0 {
		return nil, fmt.Errorf("%w: max size %.3f MB must be greater than zero", ErrInvalidInput, maxSizeMB)
	}

	cfg := chunkConfig{
		margin:    SafetyMargin,
		maxWindow: PlannedMaxWindowSeconds,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	bitsPerSecond := bitrateKbps * 1000
	maxBitsPerChunk := maxSizeMB * 1024 * 1024 * 8
	safeBitsPerChunk := maxBitsPerChunk * cfg.margin
	window := math.Floor(safeBitsPerChunk / bitsPerSecond)
	window = math.Min(window, cfg.maxWindow)

	if window < 1 {
		return nil, fmt.Errorf("%w: %.1f kbps under %.1f MB yields %.3fs windows",
			ErrDurationTooSmall, bitrateKbps, maxSizeMB, window)
	}

	var p Plan
	for start := 0.0; start < durationSeconds; {
		duration := math.Min(window, durationSeconds-start)
		p = append(p, Window{Start: start, Duration: duration})
		start += duration
	}

	return p, nil
}

// EqualSplit divides durationSeconds into parts contiguous windows of
// near-equal length.
//
// Each step divides the remaining duration by the remaining part count, so
// floating-point drift is redistributed instead of piling up in the last
// window; the last window takes exactly what remains.
func EqualSplit(durationSeconds float64, parts int) (Plan, error) {
	if durationSeconds <= 0 {
		return nil, fmt.Errorf("%w: duration %.3fs must be greater than zero", ErrInvalidInput, durationSeconds)
	}
	if parts < 2 {
		return nil, fmt.Errorf("%w: parts must be at least 2, got %d", ErrInvalidInput, parts)
	}

	p := make(Plan, 0, parts)
	start := 0.0
	for i := 0; i < parts; i++ {
		remaining := durationSeconds - start
		duration := remaining
		if left := parts - i; left > 1 {
			duration = remaining / float64(left)
		}
		p = append(p, Window{Start: start, Duration: duration})
		start += duration
	}

	return p, nil
}
