package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alnah/go-audiosplit/internal/media"
	"github.com/alnah/go-audiosplit/internal/plan"
)

// SplitCmd creates the split command.
func SplitCmd(env *Env) *cobra.Command {
	var parts int

	cmd := &cobra.Command{
		Use:   "split <chunk-file>",
		Short: "Split an already compliant chunk into N equal parts",
		Long: `Split a chunk that already satisfies the transcription limits into N
sequential parts of near-equal duration.

Use this to further subdivide a chunk after the fact, for example when a
transcription request times out on a long segment. Inputs that exceed the
chunk limits are refused; run chunk on them instead.`,
		Example: `  audiosplit split lecture_chunk000.mp3 --parts 2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, env, args[0], parts)
		},
	}

	cmd.Flags().IntVar(&parts, "parts", 0, "Number of parts to create (at least 2)")
	_ = cmd.MarkFlagRequired("parts")

	return cmd
}

// runSplit executes the split pipeline: probe, guard, plan, cut, verify.
func runSplit(cmd *cobra.Command, env *Env, inputPath string, parts int) error {
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

	validator := env.Media.NewValidator(prober)
	if err := validator.EnsureReadyForSplit(inputPath, md.DurationSeconds); err != nil {
		return err
	}

	windows, err := plan.EqualSplit(md.DurationSeconds, parts)
	if err != nil {
		return err
	}

	cutter, err := env.Media.NewCutter(ffmpegPath)
	if err != nil {
		return err
	}

	// Part numbering is one-based.
	for i, w := range windows {
		outputPath := media.PartName(inputPath, i+1)
		if err := cutter.Cut(ctx, inputPath, w, outputPath); err != nil {
			return err
		}
		if err := validator.EnsureWithinLimits(ctx, outputPath); err != nil {
			return err
		}
		fmt.Fprintf(env.Stdout, "Created %s (%s)\n", filepath.Base(outputPath), w)
	}

	return nil
}
