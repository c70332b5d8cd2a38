package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bldb-fetch/pkg/types"
)

var urlCmd = &cobra.Command{
	Use:   "url <accession>",
	Short: "Print the efetch URL for one accession",
	Args:  cobra.ExactArgs(1),
	RunE:  runURL,
}

func init() {
	urlCmd.Flags().Int("from", 0, "range start (requires --to)")
	urlCmd.Flags().Int("to", 0, "range end (requires --from)")
	urlCmd.Flags().Int("strand", 0, "strand (1 plus, 2 minus)")

	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	cfg, err := loadFetchConfig(nil)
	if err != nil {
		return err
	}
	rec, err := recordFromFlags(cmd, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), newBuilder(cfg).URL(rec))
	return nil
}

// recordFromFlags builds a record from the url command's arguments,
// enforcing the same range rules as extraction.
func recordFromFlags(cmd *cobra.Command, accession string) (types.AccessionRecord, error) {
	rec := types.AccessionRecord{Accession: accession}
	flags := cmd.Flags()

	fromSet, toSet := flags.Changed("from"), flags.Changed("to")
	if fromSet != toSet {
		return rec, fmt.Errorf("--from and --to must be given together")
	}
	if fromSet {
		from, _ := flags.GetInt("from")
		to, _ := flags.GetInt("to")
		if from <= 0 || to < from {
			return rec, fmt.Errorf("invalid range %d-%d: need 0 < from <= to", from, to)
		}
		rec.From, rec.To = &from, &to
	}
	if flags.Changed("strand") {
		strand, _ := flags.GetInt("strand")
		rec.Strand = &strand
	}
	return rec, nil
}
