package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alnah/go-audiosplit/internal/config"
	"github.com/alnah/go-audiosplit/internal/media"
	"github.com/alnah/go-audiosplit/internal/transcribe"
)

// TranscribeCmd creates the transcribe command.
func TranscribeCmd(env *Env) *cobra.Command {
	var (
		output   string
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>...",
		Short: "Transcribe audio files to text",
		Long: `Transcribe one or more audio files using the OpenAI transcription API
and write the combined result next to the first input (or to --output).

Multiple files are transcribed concurrently and joined in argument order,
so passing a full chunk sequence produces one transcript for the original
recording. Every input must already satisfy the service limits (25 MB,
1400 seconds); run chunk first for longer recordings. Requires the
OPENAI_API_KEY environment variable.`,
		Example: `  audiosplit transcribe lecture_chunk000.mp3
  audiosplit transcribe lecture_chunk*.mp3 -o lecture.txt
  audiosplit transcribe lecture_chunk*.mp3 --parallel 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranscribe(cmd, env, args, output, parallel)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Transcript output path (default: <first input>.txt)")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "Maximum concurrent API requests")

	return cmd
}

// runTranscribe validates the inputs, calls the API, and writes the transcript.
func runTranscribe(cmd *cobra.Command, env *Env, inputPaths []string, output string, parallel int) error {
	ctx := cmd.Context()

	for _, p := range inputPaths {
		if err := ensureInputExists(p); err != nil {
			return err
		}
	}

	cfg, err := env.ConfigLoader.Load()
	if err != nil {
		// A broken config file should not block transcription.
		fmt.Fprintf(env.Stderr, "Warning: ignoring config: %v\n", err)
		cfg = config.Config{}
	}

	apiKey := env.Getenv(EnvOpenAIAPIKey)
	if apiKey == "" {
		return fmt.Errorf("%w (set it with: export %s=sk-...)", ErrAPIKeyMissing, EnvOpenAIAPIKey)
	}

	if parallel > transcribe.MaxRecommendedParallel {
		fmt.Fprintf(env.Stderr, "Warning: --parallel %d exceeds the recommended maximum of %d\n",
			parallel, transcribe.MaxRecommendedParallel)
	}

	ffprobePath, err := env.Tools.FFprobe()
	if err != nil {
		return err
	}
	prober, err := env.Media.NewProber(ffprobePath)
	if err != nil {
		return err
	}
	validator := env.Media.NewValidator(prober)
	for _, p := range inputPaths {
		if err := validator.EnsureWithinLimits(ctx, p); err != nil {
			return err
		}
	}

	// Default lands next to the first input; a configured output-dir takes
	// only the file name.
	defaultOutput := media.TranscriptPath(inputPaths[0])
	if cfg.OutputDir != "" {
		defaultOutput = filepath.Base(defaultOutput)
	}
	output = config.ResolveOutputPath(output, cfg.OutputDir, defaultOutput)

	transcriber := env.TranscriberFactory.NewTranscriber(apiKey, cfg.Model)

	if len(inputPaths) == 1 {
		fmt.Fprintf(env.Stderr, "Transcribing %s...\n", filepath.Base(inputPaths[0]))
	} else {
		fmt.Fprintf(env.Stderr, "Transcribing %d files...\n", len(inputPaths))
	}

	texts, err := transcribe.TranscribeAll(ctx, inputPaths, transcriber, parallel)
	if err != nil {
		return err
	}

	if err := writeTranscript(output, strings.Join(texts, "\n\n")); err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Transcript saved to %s\n", output)
	return nil
}

// writeTranscript creates the output file, refusing to overwrite.
func writeTranscript(path, text string) error {
	// #nosec G304 -- path is user-provided output destination
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
		return fmt.Errorf("cannot create transcript file: %w", err)
	}

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("cannot write transcript: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("cannot write transcript: %w", err)
	}
	return nil
}
