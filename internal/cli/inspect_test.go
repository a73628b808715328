package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-audiosplit/internal/cli"
	"github.com/alnah/go-audiosplit/internal/media"
)

func TestInspectCmd_PrintsReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := touch(t, dir, "lecture.mp3")

	report := "Input #0, mp3, from 'lecture.mp3':\n  Duration: 01:00:00.00, bitrate: 228 kb/s"
	m := &fakeMedia{inspector: &fakeInspector{report: report}}

	var stdout bytes.Buffer
	env := cli.NewEnv(
		cli.WithStdout(&stdout),
		cli.WithStderr(&bytes.Buffer{}),
		cli.WithTools(&fakeTools{}),
		cli.WithMedia(m),
	)

	if err := runCmd(t, cli.InspectCmd(env), input); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "Duration: 01:00:00.00") {
		t.Errorf("stdout = %q, want metadata report", stdout.String())
	}
}

func TestInspectCmd_MissingFile(t *testing.T) {
	t.Parallel()

	env := cli.NewEnv(
		cli.WithStdout(&bytes.Buffer{}),
		cli.WithStderr(&bytes.Buffer{}),
		cli.WithTools(&fakeTools{}),
		cli.WithMedia(&fakeMedia{}),
	)

	err := runCmd(t, cli.InspectCmd(env), filepath.Join(t.TempDir(), "nope.mp3"))
	if !errors.Is(err, media.ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
}

func TestInspectCmd_InspectFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := touch(t, dir, "broken.mp3")

	inspectErr := fmt.Errorf("%w: invalid data", media.ErrInspectFailed)
	m := &fakeMedia{inspector: &fakeInspector{err: inspectErr}}
	env := cli.NewEnv(
		cli.WithStdout(&bytes.Buffer{}),
		cli.WithStderr(&bytes.Buffer{}),
		cli.WithTools(&fakeTools{}),
		cli.WithMedia(m),
	)

	err := runCmd(t, cli.InspectCmd(env), input)
	if !errors.Is(err, media.ErrInspectFailed) {
		t.Fatalf("err = %v, want ErrInspectFailed", err)
	}
}
