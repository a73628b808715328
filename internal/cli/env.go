// Package cli implements the audiosplit subcommands. Commands receive their
// collaborators through an Env so tests can run the full orchestration
// without ffmpeg, ffprobe, or the network.
package cli

import (
	"context"
	"io"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/alnah/go-audiosplit/internal/config"
	"github.com/alnah/go-audiosplit/internal/media"
	"github.com/alnah/go-audiosplit/internal/plan"
	"github.com/alnah/go-audiosplit/internal/transcribe"
)

// EnvOpenAIAPIKey is the environment variable holding the API credential.
const EnvOpenAIAPIKey = "OPENAI_API_KEY"

// Env holds injectable dependencies for CLI commands.
//
// All fields have production defaults via DefaultEnv(). Tests override
// specific fields with the With* options or by building a custom Env.
type Env struct {
	// I/O and environment
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string

	// Collaborator factories
	Tools              ToolResolver
	Media              MediaFactory
	TranscriberFactory TranscriberFactory
	ConfigLoader       ConfigLoader
}

// ToolResolver locates the external media binaries.
type ToolResolver interface {
	FFmpeg() (string, error)
	FFprobe() (string, error)
}

// Prober reads duration and bitrate from an audio file.
type Prober interface {
	Probe(ctx context.Context, audioPath string) (media.Metadata, error)
}

// Cutter extracts one planned window into an output file.
type Cutter interface {
	Cut(ctx context.Context, inputPath string, w plan.Window, outputPath string) error
}

// Inspector reports ffmpeg's view of a media file.
type Inspector interface {
	Inspect(ctx context.Context, audioPath string) (string, error)
}

// Validator re-checks produced segments against the service limits.
type Validator interface {
	EnsureWithinLimits(ctx context.Context, path string) error
	EnsureReadyForSplit(path string, durationSeconds float64) error
}

// MediaFactory creates the ffprobe/ffmpeg collaborators.
type MediaFactory interface {
	NewProber(ffprobePath string) (Prober, error)
	NewCutter(ffmpegPath string) (Cutter, error)
	NewInspector(ffmpegPath string) (Inspector, error)
	NewValidator(prober Prober) Validator
}

// TranscriberFactory creates transcribers for audio-to-text conversion.
// An empty model selects the default.
type TranscriberFactory interface {
	NewTranscriber(apiKey, model string) transcribe.Transcriber
}

// ConfigLoader loads user configuration.
type ConfigLoader interface {
	Load() (config.Config, error)
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStdout sets the stdout writer.
func WithStdout(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stdout = w
	}
}

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stderr = w
	}
}

// WithGetenv sets the environment variable getter.
func WithGetenv(fn func(string) string) EnvOption {
	return func(e *Env) {
		e.Getenv = fn
	}
}

// WithTools sets the tool resolver.
func WithTools(r ToolResolver) EnvOption {
	return func(e *Env) {
		e.Tools = r
	}
}

// WithMedia sets the media collaborator factory.
func WithMedia(f MediaFactory) EnvOption {
	return func(e *Env) {
		e.Media = f
	}
}

// WithTranscriberFactory sets the transcriber factory.
func WithTranscriberFactory(f TranscriberFactory) EnvOption {
	return func(e *Env) {
		e.TranscriberFactory = f
	}
}

// WithConfigLoader sets the config loader.
func WithConfigLoader(l ConfigLoader) EnvOption {
	return func(e *Env) {
		e.ConfigLoader = l
	}
}

// DefaultEnv returns an Env with production defaults.
func DefaultEnv() *Env {
	return &Env{
		Stdout:             os.Stdout,
		Stderr:             os.Stderr,
		Getenv:             os.Getenv,
		Tools:              &defaultToolResolver{},
		Media:              &defaultMediaFactory{},
		TranscriberFactory: &defaultTranscriberFactory{},
		ConfigLoader:       &defaultConfigLoader{},
	}
}

// NewEnv creates an Env with the given options applied to defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// ---------------------------------------------------------------------------
// Default implementations - delegate to real packages
// ---------------------------------------------------------------------------

// defaultToolResolver implements ToolResolver using PATH lookup.
type defaultToolResolver struct{}

func (defaultToolResolver) FFmpeg() (string, error) {
	return media.ResolveFFmpeg()
}

func (defaultToolResolver) FFprobe() (string, error) {
	return media.ResolveFFprobe()
}

// defaultMediaFactory implements MediaFactory using the media package.
type defaultMediaFactory struct{}

func (defaultMediaFactory) NewProber(ffprobePath string) (Prober, error) {
	return media.NewProber(ffprobePath)
}

func (defaultMediaFactory) NewCutter(ffmpegPath string) (Cutter, error) {
	return media.NewCutter(ffmpegPath)
}

func (defaultMediaFactory) NewInspector(ffmpegPath string) (Inspector, error) {
	return media.NewInspector(ffmpegPath)
}

func (defaultMediaFactory) NewValidator(prober Prober) Validator {
	return media.NewValidator(prober)
}

// defaultTranscriberFactory implements TranscriberFactory using OpenAI.
type defaultTranscriberFactory struct{}

func (defaultTranscriberFactory) NewTranscriber(apiKey, model string) transcribe.Transcriber {
	client := openai.NewClient(apiKey)
	return transcribe.NewOpenAITranscriber(client, transcribe.WithModel(model))
}

// defaultConfigLoader implements ConfigLoader using the config package.
type defaultConfigLoader struct{}

func (defaultConfigLoader) Load() (config.Config, error) {
	return config.Load()
}

// Compile-time interface verification.
var (
	_ ToolResolver       = (*defaultToolResolver)(nil)
	_ MediaFactory       = (*defaultMediaFactory)(nil)
	_ TranscriberFactory = (*defaultTranscriberFactory)(nil)
	_ ConfigLoader       = (*defaultConfigLoader)(nil)
)
