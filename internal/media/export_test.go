package media

// Internal functions exposed for black-box tests in media_test.

// ParseProbeOutput exposes parseProbeOutput for testing.
var ParseProbeOutput = parseProbeOutput

// FormatSeconds exposes formatSeconds for testing.
var FormatSeconds = formatSeconds

// ResolveTool exposes resolveTool for testing.
var ResolveTool = resolveTool

// LookPathFn exposes lookPathFn for testing.
type LookPathFn = lookPathFn

// CommandRunner exposes the commandRunner interface for test doubles.
type CommandRunner = commandRunner

// FileStatter exposes the fileStatter interface for test doubles.
type FileStatter = fileStatter
