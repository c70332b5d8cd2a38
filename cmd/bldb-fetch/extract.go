package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bldb-fetch/internal/acquire"
	"github.com/pdiddy/bldb-fetch/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract [page-url | -]",
	Short: "List the accessions on the BLDB page as YAML without downloading",
	Long: `Extract fetches the BLDB page (or reads HTML from stdin when the argument
is "-") and prints the accession records found in it as a YAML list, in page
order. Nothing is downloaded from NCBI.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	var html string
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		html = string(data)
	} else {
		cfg, err := loadFetchConfig(args)
		if err != nil {
			return err
		}
		html, err = acquire.NewFetcher(cfg.HTTPConfig).FetchPage(cmd.Context(), cfg.SourceURL)
		if err != nil {
			return fmt.Errorf("%w %s: %w", acquire.ErrPageFetch, cfg.SourceURL, err)
		}
	}

	return writeRecordsYAML(cmd.OutOrStdout(), html)
}

func writeRecordsYAML(w io.Writer, html string) error {
	records := extract.All(html)
	logger.Debug().Int("records", len(records)).Msg("extracted accessions")

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	return enc.Close()
}
