package media

import "errors"

// ErrToolNotFound indicates ffmpeg or ffprobe is not installed or not on PATH.
var ErrToolNotFound = errors.New("media tool not found")

// ErrProbeFailed indicates ffprobe failed or produced unusable output.
var ErrProbeFailed = errors.New("audio probe failed")

// ErrCutFailed indicates ffmpeg failed while cutting a planned window.
var ErrCutFailed = errors.New("audio cut failed")

// ErrInspectFailed indicates ffmpeg failed while inspecting a file.
var ErrInspectFailed = errors.New("audio inspect failed")

// ErrLimitExceeded indicates a produced segment exceeds the transcription
// limits despite planning. The safety margin was insufficient for this input.
var ErrLimitExceeded = errors.New("segment exceeds transcription limits")

// ErrFileNotFound indicates the specified input file does not exist.
var ErrFileNotFound = errors.New("file not found")
