package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
)

const formatHeader = "header"

func newProvenanceCmd() *cobra.Command {
	var flagInput, flagFormat string

	cmd := &cobra.Command{
		Use:   "provenance",
		Short: "print the benchmark provenance of a weight table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// provenance does not depend on the db weight
			table, err := loadTable(flagInput, weight.RocksDbWeight)
			if err != nil {
				return err
			}
			p := table.Provenance()

			switch flagFormat {
			case formatHeader:
				_, err = fmt.Fprintln(cmd.OutOrStdout(), p.Header())
				return err
			case "yaml":
				out, err := yaml.Marshal(p)
				if err != nil {
					return fmt.Errorf("could not encode provenance: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			default:
				return fmt.Errorf("unknown output format %q", flagFormat)
			}
		},
	}

	cmd.Flags().StringVar(&flagInput, "input", "", "benchmark result set (yaml); defaults to the compiled Kusama table")
	cmd.Flags().StringVar(&flagFormat, "format", "yaml", "output format (yaml or header)")

	return cmd
}
