package media

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Output files are named deterministically from the input so plan order and
// on-disk order always agree.

// ChunkName returns the output path for the index-th planned chunk of
// inputPath: {stem}_chunk{NNN}{ext}, alongside the input. Zero-based.
func ChunkName(inputPath string, index int) string {
	return siblingName(inputPath, fmt.Sprintf("chunk%03d", index))
}

// PartName returns the output path for a split part of inputPath:
// {stem}_part{NNN}{ext}. Part numbers are one-based.
func PartName(inputPath string, number int) string {
	return siblingName(inputPath, fmt.Sprintf("part%03d", number))
}

// TranscriptPath returns where the transcript for a chunk is written.
func TranscriptPath(inputPath string) string {
	return inputPath + ".txt"
}

// siblingName builds {stem}_{suffix}{ext} next to inputPath.
func siblingName(inputPath, suffix string) string {
	dir := filepath.Dir(inputPath)
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(filepath.Base(inputPath), ext)
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, suffix, ext))
}
