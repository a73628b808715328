package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// InspectCmd creates the inspect command.
func InspectCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <audio-file>",
		Short: "Show ffmpeg metadata for an audio file",
		Long: `Show ffmpeg's metadata report for an audio file: container, streams,
duration, and bitrate. Useful before chunking to see what the planner
will be working with.`,
		Example: `  audiosplit inspect lecture.mp3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, env, args[0])
		},
	}
}

// runInspect prints ffmpeg's view of the input file.
func runInspect(cmd *cobra.Command, env *Env, inputPath string) error {
	ctx := cmd.Context()

	if err := ensureInputExists(inputPath); err != nil {
		return err
	}

	ffmpegPath, err := env.Tools.FFmpeg()
	if err != nil {
		return err
	}
	inspector, err := env.Media.NewInspector(ffmpegPath)
	if err != nil {
		return err
	}

	report, err := inspector.Inspect(ctx, inputPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, report)
	return nil
}
