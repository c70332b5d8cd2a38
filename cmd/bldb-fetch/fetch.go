package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bldb-fetch/internal/acquire"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [page-url]",
	Short: "Download FASTA for every accession linked from the BLDB page",
	Long: `Fetch downloads the BLDB page (default ` + defaultSourceURL + `), extracts
the NCBI nucleotide accessions it links to and retrieves each one from efetch
as FASTA, in page order.

Without --output-dir each record is printed after a "[accession range strand]"
header line. With --output-dir each record is saved verbatim as
<accession>.fasta; files that already exist are skipped unless --overwrite.

A record that cannot be fetched or saved is logged as a warning and the run
continues. Failure to fetch the page itself aborts the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("output-dir", "", "save one <accession>.fasta per record in this directory")
	fetchCmd.Flags().Bool("overwrite", false, "re-download records whose file already exists")

	_ = viper.BindPFlag("output_dir", fetchCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("overwrite", fetchCmd.Flags().Lookup("overwrite"))

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadFetchConfig(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := acquire.Run(ctx, acquire.NewFetcher(cfg.HTTPConfig), newBuilder(cfg), cfg, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	if result.Interrupted {
		return fmt.Errorf("interrupted after %d record(s): %w", result.Total(), ctx.Err())
	}
	return nil
}
