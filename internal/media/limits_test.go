package media_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-audiosplit/internal/media"
	"github.com/alnah/go-audiosplit/internal/plan"
)

func TestValidator_EnsureWithinLimits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int64
		duration float64
		wantErr  error
	}{
		{
			name:     "compliant segment",
			size:     20 * 1024 * 1024,
			duration: 864,
		},
		{
			name:     "exactly at both limits",
			size:     plan.MaxChunkBytes,
			duration: plan.MaxTranscriptionSeconds,
		},
		{
			name:     "oversized file",
			size:     plan.MaxChunkBytes + 1,
			duration: 864,
			wantErr:  media.ErrLimitExceeded,
		},
		{
			name:     "overlong segment",
			size:     1024,
			duration: plan.MaxTranscriptionSeconds + 1,
			wantErr:  media.ErrLimitExceeded,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := media.NewValidator(
				fakeProber{md: media.Metadata{DurationSeconds: tt.duration, BitrateKbps: 228}},
				media.WithValidatorStatter(fakeStatter{size: tt.size}),
			)

			err := v.EnsureWithinLimits(context.Background(), "session_chunk000.mp3")
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("EnsureWithinLimits() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("EnsureWithinLimits() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidator_EnsureWithinLimits_MissingFile(t *testing.T) {
	t.Parallel()

	v := media.NewValidator(
		fakeProber{},
		media.WithValidatorStatter(fakeStatter{err: errors.New("no such file")}),
	)

	err := v.EnsureWithinLimits(context.Background(), "gone.mp3")
	if !errors.Is(err, media.ErrFileNotFound) {
		t.Errorf("EnsureWithinLimits() error = %v, want ErrFileNotFound", err)
	}
}

func TestValidator_EnsureWithinLimits_ProbeFailure(t *testing.T) {
	t.Parallel()

	v := media.NewValidator(
		fakeProber{err: media.ErrProbeFailed},
		media.WithValidatorStatter(fakeStatter{size: 1024}),
	)

	err := v.EnsureWithinLimits(context.Background(), "chunk.mp3")
	if !errors.Is(err, media.ErrProbeFailed) {
		t.Errorf("EnsureWithinLimits() error = %v, want ErrProbeFailed", err)
	}
}

func TestValidator_EnsureReadyForSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int64
		duration float64
		wantErr  bool
	}{
		{"compliant chunk", 10 * 1024 * 1024, 864, false},
		{"oversized input", plan.MaxChunkBytes + 1, 864, true},
		{"overlong input", 1024, 2000, true},
		{"both over", plan.MaxChunkBytes + 1, 2000, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := media.NewValidator(
				fakeProber{},
				media.WithValidatorStatter(fakeStatter{size: tt.size}),
			)

			err := v.EnsureReadyForSplit("session.mp3", tt.duration)
			if tt.wantErr {
				if !errors.Is(err, media.ErrLimitExceeded) {
					t.Errorf("EnsureReadyForSplit() error = %v, want ErrLimitExceeded", err)
				}
				if err != nil && !strings.Contains(err.Error(), "chunk it first") {
					t.Errorf("EnsureReadyForSplit() error %q should point at the chunk command", err)
				}
				return
			}
			if err != nil {
				t.Errorf("EnsureReadyForSplit() error = %v, want nil", err)
			}
		})
	}
}

func TestValidator_FileSize(t *testing.T) {
	t.Parallel()

	v := media.NewValidator(
		fakeProber{},
		media.WithValidatorStatter(fakeStatter{size: 12345}),
	)

	size, err := v.FileSize("chunk.mp3")
	if err != nil {
		t.Fatalf("FileSize() error = %v", err)
	}
	if size != 12345 {
		t.Errorf("FileSize() = %d, want 12345", size)
	}
}
