// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract finds nucleotide accessions linked from a BLDB page.
// Each hyperlink to NCBI nuccore (or to an E-utilities fetch/viewer URL) yields
// one record, in document order, with its from/to/strand query parameters.
package extract

import (
	"iter"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/bldb-fetch/pkg/types"
)

const (
	ncbiHost     = "ncbi.nlm.nih.gov"
	nuccorePath  = "/nuccore/"
	linkSelector = "[href]"
)

// accessionPattern matches GenBank/RefSeq accessions with an optional
// version: "ABC12345", "NG_049961.1", "KX999121.2".
var accessionPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_]*(?:\.[0-9]+)?$`)

// Accessions returns the records linked from html. The sequence is lazy and
// restartable: every range over it parses html again and walks the links in
// document order. Duplicates are kept. Markup goquery cannot parse, and links
// that don't point at a recognizable accession, yield nothing.
func Accessions(html string) iter.Seq[types.AccessionRecord] {
	return func(yield func(types.AccessionRecord) bool) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return
		}
		doc.Find(linkSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			href, _ := s.Attr("href")
			rec, ok := ParseLink(href)
			if !ok {
				return true
			}
			return yield(rec)
		})
	}
}

// All collects Accessions(html) into a slice.
func All(html string) []types.AccessionRecord {
	return slices.Collect(Accessions(html))
}

// ParseLink extracts a record from a single link target. It reports false
// when href does not point at an NCBI nucleotide record.
func ParseLink(href string) (types.AccessionRecord, bool) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return types.AccessionRecord{}, false
	}
	host := strings.ToLower(u.Hostname())
	if host != ncbiHost && !strings.HasSuffix(host, "."+ncbiHost) {
		return types.AccessionRecord{}, false
	}

	q := u.Query()
	var acc string
	switch {
	case strings.HasPrefix(u.Path, nuccorePath):
		acc = strings.TrimSuffix(strings.TrimPrefix(u.Path, nuccorePath), "/")
	case strings.HasSuffix(u.Path, "/efetch.fcgi"), strings.HasSuffix(u.Path, "/viewer.fcgi"):
		acc = q.Get("id")
		if acc == "" {
			acc = q.Get("val")
		}
	default:
		return types.AccessionRecord{}, false
	}
	if !accessionPattern.MatchString(acc) {
		return types.AccessionRecord{}, false
	}

	rec := types.AccessionRecord{Accession: acc}

	from, okFrom := positiveParam(q, "from", "seq_start")
	to, okTo := positiveParam(q, "to", "seq_stop")
	if okFrom && okTo && to >= from {
		rec.From = &from
		rec.To = &to
	}
	if v := q.Get("strand"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rec.Strand = &n
		}
	}
	return rec, true
}

// positiveParam returns the first of keys present in q as a positive integer.
func positiveParam(q url.Values, keys ...string) (int, bool) {
	for _, k := range keys {
		v := q.Get(k)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
