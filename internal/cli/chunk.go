package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alnah/go-audiosplit/internal/format"
	"github.com/alnah/go-audiosplit/internal/media"
	"github.com/alnah/go-audiosplit/internal/plan"
)

// ChunkCmd creates the chunk command.
func ChunkCmd(env *Env) *cobra.Command {
	var maxSizeMB float64

	cmd := &cobra.Command{
		Use:   "chunk <audio-file>",
		Short: "Split an audio file into transcription-sized chunks",
		Long: `Split an audio file into chunks that respect the transcription service
limits (25 MB, 1400 seconds).

Windows are planned from the file's average bitrate with a safety margin
for container overhead, then cut with ffmpeg stream copy (no re-encoding).
Every produced chunk is measured again; the run stops at the first chunk
that still exceeds a limit.`,
		Example: `  audiosplit chunk lecture.mp3
  audiosplit chunk lecture.mp3 --max-size-mb 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChunk(cmd, env, args[0], maxSizeMB)
		},
	}

	cmd.Flags().Float64Var(&maxSizeMB, "max-size-mb", 25.0, "Maximum chunk size in megabytes")

	return cmd
}

// runChunk executes the chunking pipeline: probe, plan, cut, verify.
func runChunk(cmd *cobra.Command, env *Env, inputPath string, maxSizeMB float64) error {
	ctx := cmd.Context()

	if err := ensureInputExists(inputPath); err != nil {
		return err
	}

	ffprobePath, err := env.Tools.FFprobe()
	if err != nil {
		return err
	}
	ffmpegPath, err := env.Tools.FFmpeg()
	if err != nil {
		return err
	}

	prober, err := env.Media.NewProber(ffprobePath)
	if err != nil {
		return err
	}
	md, err := prober.Probe(ctx, inputPath)
	if err != nil {
		return err
	}

	windows, err := plan.Chunks(md.DurationSeconds, md.BitrateKbps, maxSizeMB)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stderr, "Planning %d chunks for %s at %.0f kbps\n",
		len(windows), format.Duration(md.DurationSeconds), md.BitrateKbps)

	cutter, err := env.Media.NewCutter(ffmpegPath)
	if err != nil {
		return err
	}
	validator := env.Media.NewValidator(prober)

	// Cut in plan order; output numbering matches window order.
	for i, w := range windows {
		outputPath := media.ChunkName(inputPath, i)
		if err := cutter.Cut(ctx, inputPath, w, outputPath); err != nil {
			return err
		}
		// Planner estimates are approximate; trust only measured files.
		if err := validator.EnsureWithinLimits(ctx, outputPath); err != nil {
			return err
		}
		fmt.Fprintf(env.Stdout, "Created %s (%s)\n", filepath.Base(outputPath), w)
	}

	return nil
}
