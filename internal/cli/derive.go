package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sessiontag/pkg/digest"
	"github.com/dmitrymomot/sessiontag/pkg/identity"
	"github.com/dmitrymomot/sessiontag/pkg/signals"
)

var errConflictingInput = errors.New("use either --signals or --descriptor, not both")

func newDeriveCommand() *cobra.Command {
	var (
		sid            string
		signalString   string
		descriptorPath string
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Compute the fingerprint for an identifier and a signal snapshot",
		Long: `Compute the fingerprint for an identifier and a signal snapshot.

The snapshot is either given verbatim with --signals, or collected from a JSON
client descriptor with --descriptor (a file path, or "-" for stdin).

Examples:
  sessiond derive --sid abc123 --signals 'UTC|0|0|en-US|en-US|UA|Platform|Vendor|8|4|1920x1080x1920x1040x24x24'
  echo '{"timezone":"UTC","userAgent":"UA"}' | sessiond derive --sid abc123 --descriptor - --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if signalString != "" && descriptorPath != "" {
				return errConflictingInput
			}

			snapshot := signalString
			if descriptorPath != "" {
				d, err := readDescriptor(cmd.InOrStdin(), descriptorPath)
				if err != nil {
					return err
				}
				snapshot = signals.Collect(d).String()
			} else if !cmd.Flags().Changed("signals") {
				snapshot = signals.Collect(nil).String()
			}

			fp, err := identity.Derive(digest.SHA256{}, sid, snapshot)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(identity.Identity{Identifier: sid, Fingerprint: fp, Signals: snapshot})
			}
			_, err = fmt.Fprintln(out, fp)
			return err
		},
	}

	cmd.Flags().StringVar(&sid, "sid", "", "session identifier")
	cmd.Flags().StringVar(&signalString, "signals", "", "canonical signal snapshot")
	cmd.Flags().StringVar(&descriptorPath, "descriptor", "", `JSON client descriptor file, "-" for stdin`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print identifier, fingerprint and signals as JSON")
	_ = cmd.MarkFlagRequired("sid")

	return cmd
}

func readDescriptor(stdin io.Reader, path string) (*signals.Descriptor, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var d signals.Descriptor
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, errors.Join(signals.ErrInvalidDescriptor, err)
	}
	return &d, nil
}
