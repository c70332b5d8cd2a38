// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data types shared by the extraction, fetch and
// output stages.
package types

import (
	"fmt"
	"strings"
)

// AccessionRecord identifies one nucleotide record to retrieve: an accession
// and the optional coordinate range and strand found next to it on the
// source page. From and To are either both set with To >= From, or both nil.
type AccessionRecord struct {
	// Accession is the sequence identifier, with an optional ".N" version suffix.
	Accession string `json:"accession" yaml:"accession"`

	// From is the 1-based start of the requested range.
	From *int `json:"from,omitempty" yaml:"from,omitempty"`

	// To is the 1-based inclusive end of the requested range.
	To *int `json:"to,omitempty" yaml:"to,omitempty"`

	// Strand selects the strand to retrieve (1 plus, 2 minus). Recorded
	// verbatim from the page.
	Strand *int `json:"strand,omitempty" yaml:"strand,omitempty"`
}

// HasRange reports whether both range ends are set.
func (r AccessionRecord) HasRange() bool {
	return r.From != nil && r.To != nil
}

// Label renders the record for console headers, e.g. "ABC12345 100-200 strand=1".
func (r AccessionRecord) Label() string {
	var b strings.Builder
	b.WriteString(r.Accession)
	if r.HasRange() {
		fmt.Fprintf(&b, " %d-%d", *r.From, *r.To)
	}
	if r.Strand != nil {
		fmt.Fprintf(&b, " strand=%d", *r.Strand)
	}
	return b.String()
}

// FetchResult is the outcome of retrieving one AccessionRecord. Exactly one
// of Body and Err is meaningful.
type FetchResult struct {
	Record AccessionRecord
	Body   string
	Err    error
}

// OK reports whether the fetch succeeded.
func (r FetchResult) OK() bool {
	return r.Err == nil
}
