package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Priyankg101/content-moderator/internal/initialization"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "content-moderator",
		Short: "Multi-modal content moderation CLI",
		Long: `Content Moderator dispatches text, image, audio and video items through
AI moderation checks and aggregates the verdicts into a single result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	container, err := initialization.NewContainer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize moderator: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(NewModerateCommand(container))
	rootCmd.AddCommand(NewServeCommand(container))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
