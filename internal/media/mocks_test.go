package media_test

import (
	"context"
	"io/fs"
	"os"
	"time"

	"github.com/alnah/go-audiosplit/internal/media"
)

// fakeRunner records invocations and plays back canned responses.
type fakeRunner struct {
	gotName string
	gotArgs []string

	stdout   []byte
	combined []byte
	err      error
}

func (f *fakeRunner) Output(_ context.Context, name string, args []string) ([]byte, error) {
	f.gotName = name
	f.gotArgs = args
	return f.stdout, f.err
}

func (f *fakeRunner) CombinedOutput(_ context.Context, name string, args []string) ([]byte, error) {
	f.gotName = name
	f.gotArgs = args
	return f.combined, f.err
}

var _ media.CommandRunner = (*fakeRunner)(nil)

// fakeStatter returns a fixed size or error.
type fakeStatter struct {
	size int64
	err  error
}

func (f fakeStatter) Stat(name string) (os.FileInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return fakeFileInfo{name: name, size: f.size}, nil
}

var _ media.FileStatter = fakeStatter{}

type fakeFileInfo struct {
	name string
	size int64
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return f.size }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return false }
func (f fakeFileInfo) Sys() any           { return nil }

// fakeProber returns fixed metadata or an error.
type fakeProber struct {
	md  media.Metadata
	err error
}

func (f fakeProber) Probe(context.Context, string) (media.Metadata, error) {
	return f.md, f.err
}
