package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Bullrich/polkadot-fellows-runtimes/config"
	"github.com/Bullrich/polkadot-fellows-runtimes/model/xcm"
	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/weights"
	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/weights/gen"
	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/weights/kusama"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type showFlags struct {
	input       string
	instruction string
	format      string
}

type weightRow struct {
	Instruction string `json:"instruction"`
	RefTime     uint64 `json:"ref_time"`
	ProofSize   uint64 `json:"proof_size"`
	BaseTime    uint64 `json:"base_time"`
	Reads       uint64 `json:"reads"`
	Writes      uint64 `json:"writes"`
}

func newShowCmd(root *rootFlags) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "print instruction weights under the configured db weight",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.input, "input", "", "benchmark result set (yaml); defaults to the compiled Kusama table")
	cmd.Flags().StringVar(&flags.instruction, "instruction", "", "only show this instruction")
	cmd.Flags().StringVar(&flags.format, "format", formatText, "output format (text or json)")
	config.InitializeDbWeightFlags(cmd.Flags(), config.DefaultDbWeightConfig())

	return cmd
}

func runShow(cmd *cobra.Command, root *rootFlags, flags *showFlags) error {
	v, err := config.NewViper(root.config, cmd.Flags())
	if err != nil {
		return err
	}
	dbConfig, err := config.LoadDbWeightConfig(v)
	if err != nil {
		return err
	}
	db, err := dbConfig.DbWeight()
	if err != nil {
		return err
	}

	table, err := loadTable(flags.input, db)
	if err != nil {
		return err
	}

	instructions := table.Instructions()
	if flags.instruction != "" {
		i, err := xcm.ParseInstruction(flags.instruction)
		if err != nil {
			return err
		}
		instructions = []xcm.Instruction{i}
	}

	rows := make([]weightRow, 0, len(instructions))
	for _, i := range instructions {
		r := table.Record(i)
		w := table.Weight(i)
		rows = append(rows, weightRow{
			Instruction: i.Name(),
			RefTime:     w.RefTime,
			ProofSize:   w.ProofSize,
			BaseTime:    r.BaseTime,
			Reads:       r.Reads,
			Writes:      r.Writes,
		})
	}

	log.Debug().
		Str("backend", dbConfig.Backend).
		Stringer("read", db.Read).
		Stringer("write", db.Write).
		Msg("applying db weight")

	switch flags.format {
	case formatText:
		return writeText(cmd.OutOrStdout(), rows)
	case formatJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	default:
		return fmt.Errorf("unknown output format %q", flags.format)
	}
}

func loadTable(input string, db weights.DbWeightProvider) (*weights.Table, error) {
	if input == "" {
		return kusama.NewWeightInfo(db), nil
	}
	rs, err := gen.Load(input)
	if err != nil {
		return nil, err
	}
	return rs.Table(db)
}

func writeText(out io.Writer, rows []weightRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INSTRUCTION\tREF_TIME\tPROOF_SIZE\tBASE_TIME\tREADS\tWRITES")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n", r.Instruction, r.RefTime, r.ProofSize, r.BaseTime, r.Reads, r.Writes)
	}
	return w.Flush()
}
