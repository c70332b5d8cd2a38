// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/bldb-fetch/pkg/types"
)

// DefaultEfetchURL is the NCBI E-utilities efetch endpoint.
const DefaultEfetchURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"

// Builder turns accession records into efetch URLs for FASTA text.
type Builder struct {
	// BaseURL is the efetch endpoint; DefaultEfetchURL when empty.
	BaseURL string

	// Email and Tool are sent when set so NCBI can contact the operator.
	Email string
	Tool  string
}

// URL returns the efetch URL for rec. It is a pure function of the Builder
// and rec: seq_start/seq_stop are added only when both range ends are set,
// strand only when set, and values are passed through unchanged.
func (b Builder) URL(rec types.AccessionRecord) string {
	q := url.Values{}
	q.Set("db", "nuccore")
	q.Set("id", rec.Accession)
	q.Set("rettype", "fasta")
	q.Set("retmode", "text")
	if rec.HasRange() {
		q.Set("seq_start", strconv.Itoa(*rec.From))
		q.Set("seq_stop", strconv.Itoa(*rec.To))
	}
	if rec.Strand != nil {
		q.Set("strand", strconv.Itoa(*rec.Strand))
	}
	if b.Tool != "" {
		q.Set("tool", b.Tool)
	}
	if b.Email != "" {
		q.Set("email", b.Email)
	}

	base := b.BaseURL
	if base == "" {
		base = DefaultEfetchURL
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + q.Encode()
}
