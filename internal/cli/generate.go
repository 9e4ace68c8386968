package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sessiontag/pkg/identifier"
)

func newGenerateCommand() *cobra.Command {
	var (
		byteLength int
		count      int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate session identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if byteLength < identifier.DefaultByteLength {
				return fmt.Errorf("--bytes must be at least %d", identifier.DefaultByteLength)
			}
			for range max(count, 1) {
				id, err := identifier.Generate(byteLength)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&byteLength, "bytes", "b", identifier.DefaultByteLength, "random bytes per identifier")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers")

	return cmd
}
