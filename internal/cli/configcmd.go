package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/alnah/go-audiosplit/internal/config"
)

// ConfigCmd creates the config command with subcommands.
func ConfigCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage persistent configuration settings.

Configuration is stored in ~/.config/go-audiosplit/config.
Settings can also be overridden via environment variables.

Supported settings:
  output-dir    Default directory for transcripts (env: AUDIOSPLIT_OUTPUT_DIR)
  model         Transcription model override (env: AUDIOSPLIT_MODEL)`,
		Example: `  audiosplit config set output-dir ~/Documents/transcripts
  audiosplit config get model
  audiosplit config list`,
	}

	cmd.AddCommand(configSetCmd(env))
	cmd.AddCommand(configGetCmd(env))
	cmd.AddCommand(configListCmd(env))

	return cmd
}

// configSetCmd creates the "config set" subcommand.
func configSetCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Example: `  audiosplit config set output-dir ~/Documents/transcripts
  audiosplit config set model whisper-1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Save(key, value); err != nil {
				return err
			}
			fmt.Fprintf(env.Stderr, "Set %s = %s\n", key, value)
			return nil
		},
	}
}

// configGetCmd creates the "config get" subcommand.
func configGetCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get a configuration value.

Prints the value to stdout, or nothing if not set.`,
		Example: `  audiosplit config get output-dir`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value, err := config.Get(key)
			if err != nil {
				return err
			}
			if value == "" {
				value = env.Getenv(envVarForKey(key))
			}
			if value != "" {
				fmt.Fprintln(env.Stdout, value)
			}
			return nil
		},
	}
}

// configListCmd creates the "config list" subcommand.
func configListCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long: `List all configuration values.

Shows both values from the config file and environment variable overrides.`,
		Example: `  audiosplit config list`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.List()
			if err != nil {
				return err
			}

			for _, key := range []string{config.KeyOutputDir, config.KeyModel} {
				if _, ok := data[key]; ok {
					continue
				}
				if v := env.Getenv(envVarForKey(key)); v != "" {
					data[key] = v + " (from env)"
				}
			}

			if len(data) == 0 {
				fmt.Fprintln(env.Stdout, "No configuration set.")
				fmt.Fprintf(env.Stdout, "\nAvailable settings: %s\n", config.KnownKeys())
				return nil
			}

			keys := make([]string, 0, len(data))
			for key := range data {
				keys = append(keys, key)
			}
			slices.Sort(keys)
			for _, key := range keys {
				fmt.Fprintf(env.Stdout, "%s=%s\n", key, data[key])
			}
			return nil
		},
	}
}

// envVarForKey maps a config key to its environment variable override.
func envVarForKey(key string) string {
	switch key {
	case config.KeyOutputDir:
		return config.EnvOutputDir
	case config.KeyModel:
		return config.EnvModel
	}
	return ""
}
