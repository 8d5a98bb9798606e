package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/weights/gen"
)

type generateFlags struct {
	input  string
	output string
	pkg    string
}

// generate renders a benchmark result set into a weight table Go file. The
// result set carries the provenance of the run, which is written verbatim
// into the header of the generated file.
func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "render a benchmark result set into a weight table Go file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(flags)
		},
	}

	cmd.Flags().StringVar(&flags.input, "input", "", "benchmark result set (yaml)")
	_ = cmd.MarkFlagRequired("input")

	cmd.Flags().StringVar(&flags.output, "output", "", "path of the generated Go file")
	_ = cmd.MarkFlagRequired("output")

	cmd.Flags().StringVar(&flags.pkg, "package", "weights", "package name of the generated file")

	return cmd
}

func runGenerate(flags *generateFlags) error {
	rs, err := gen.Load(flags.input)
	if err != nil {
		return err
	}

	src, err := gen.Render(rs, flags.pkg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(flags.output, src, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", flags.output, err)
	}

	// the rendered records must form a complete table
	table, err := rs.Table(weight.RocksDbWeight)
	if err != nil {
		return err
	}

	log.Info().
		Str("input", flags.input).
		Str("output", flags.output).
		Str("pallet", rs.Provenance.Pallet).
		Str("date", rs.Provenance.Date).
		Int("instructions", len(table.Instructions())).
		Msg("generated weight table")

	return nil
}
