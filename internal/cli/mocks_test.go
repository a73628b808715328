package cli_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/alnah/go-audiosplit/internal/cli"
	"github.com/alnah/go-audiosplit/internal/config"
	"github.com/alnah/go-audiosplit/internal/media"
	"github.com/alnah/go-audiosplit/internal/plan"
	"github.com/alnah/go-audiosplit/internal/transcribe"
)

// fakeTools resolves tool paths without touching PATH.
type fakeTools struct {
	ffmpegErr  error
	ffprobeErr error
}

func (f *fakeTools) FFmpeg() (string, error) {
	if f.ffmpegErr != nil {
		return "", f.ffmpegErr
	}
	return "/usr/bin/ffmpeg", nil
}

func (f *fakeTools) FFprobe() (string, error) {
	if f.ffprobeErr != nil {
		return "", f.ffprobeErr
	}
	return "/usr/bin/ffprobe", nil
}

// fakeProber returns fixed metadata.
type fakeProber struct {
	md  media.Metadata
	err error
}

func (f *fakeProber) Probe(_ context.Context, _ string) (media.Metadata, error) {
	return f.md, f.err
}

// cutCall records one Cut invocation.
type cutCall struct {
	input  string
	window plan.Window
	output string
}

// fakeCutter records calls and can fail at a given call index.
type fakeCutter struct {
	calls  []cutCall
	failAt int // call index that fails; -1 never fails
	err    error
}

func (f *fakeCutter) Cut(_ context.Context, inputPath string, w plan.Window, outputPath string) error {
	idx := len(f.calls)
	f.calls = append(f.calls, cutCall{input: inputPath, window: w, output: outputPath})
	if f.err != nil && idx == f.failAt {
		return f.err
	}
	return nil
}

// fakeInspector returns a fixed report.
type fakeInspector struct {
	report string
	err    error
}

func (f *fakeInspector) Inspect(_ context.Context, _ string) (string, error) {
	return f.report, f.err
}

// fakeValidator records checked paths and returns configured errors.
type fakeValidator struct {
	checked  []string
	limitErr error
	splitErr error
}

func (f *fakeValidator) EnsureWithinLimits(_ context.Context, path string) error {
	f.checked = append(f.checked, path)
	return f.limitErr
}

func (f *fakeValidator) EnsureReadyForSplit(_ string, _ float64) error {
	return f.splitErr
}

// fakeMedia hands out the configured fakes.
type fakeMedia struct {
	prober    *fakeProber
	cutter    *fakeCutter
	inspector *fakeInspector
	validator *fakeValidator
	proberErr error
	cutterErr error
}

func (f *fakeMedia) NewProber(_ string) (cli.Prober, error) {
	if f.proberErr != nil {
		return nil, f.proberErr
	}
	return f.prober, nil
}

func (f *fakeMedia) NewCutter(_ string) (cli.Cutter, error) {
	if f.cutterErr != nil {
		return nil, f.cutterErr
	}
	return f.cutter, nil
}

func (f *fakeMedia) NewInspector(_ string) (cli.Inspector, error) {
	return f.inspector, nil
}

func (f *fakeMedia) NewValidator(_ cli.Prober) cli.Validator {
	return f.validator
}

// fakeTranscriber returns canned text per path.
type fakeTranscriber struct {
	texts map[string]string
	err   error
	calls []string
}

func (f *fakeTranscriber) Transcribe(_ context.Context, audioPath string) (string, error) {
	f.calls = append(f.calls, audioPath)
	if f.err != nil {
		return "", f.err
	}
	return f.texts[audioPath], nil
}

// fakeTranscriberFactory records the credentials it was handed.
type fakeTranscriberFactory struct {
	apiKey      string
	model       string
	transcriber *fakeTranscriber
}

func (f *fakeTranscriberFactory) NewTranscriber(apiKey, model string) transcribe.Transcriber {
	f.apiKey = apiKey
	f.model = model
	return f.transcriber
}

// fakeConfigLoader returns a fixed config.
type fakeConfigLoader struct {
	cfg config.Config
	err error
}

func (f *fakeConfigLoader) Load() (config.Config, error) {
	return f.cfg, f.err
}

// Compile-time interface verification.
var (
	_ cli.ToolResolver       = (*fakeTools)(nil)
	_ cli.Prober             = (*fakeProber)(nil)
	_ cli.Cutter             = (*fakeCutter)(nil)
	_ cli.Inspector          = (*fakeInspector)(nil)
	_ cli.Validator          = (*fakeValidator)(nil)
	_ cli.MediaFactory       = (*fakeMedia)(nil)
	_ cli.TranscriberFactory = (*fakeTranscriberFactory)(nil)
	_ cli.ConfigLoader       = (*fakeConfigLoader)(nil)
)

// touch creates an empty file under dir and returns its path.
func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("touch %s: %v", name, err)
	}
	return path
}

// runCmd executes a cobra command with the given args, discarding cobra's
// own output so test failures stay readable.
func runCmd(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}
