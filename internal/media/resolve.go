package media

import (
	"fmt"
	"os/exec"
)

// lookPathFn resolves a binary on PATH (injectable for testing).
type lookPathFn func(file string) (string, error)

// ResolveFFmpeg returns the path to the ffmpeg binary.
func ResolveFFmpeg() (string, error) {
	return resolveTool("ffmpeg", exec.LookPath)
}

// ResolveFFprobe returns the path to the ffprobe binary.
func ResolveFFprobe() (string, error) {
	return resolveTool("ffprobe", exec.LookPath)
}

func resolveTool(name string, lookPath lookPathFn) (string, error) {
	path, err := lookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s is not on PATH, is it installed?", ErrToolNotFound, name)
	}
	return path, nil
}
