package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// NewRootCommand builds the sessiond command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sessiond",
		Short:         "Per-session identifier and fingerprint service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newDeriveCommand(),
		newGenerateCommand(),
	)

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
