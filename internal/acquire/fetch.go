// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/bldb-fetch/internal/httputil"
	"github.com/pdiddy/bldb-fetch/pkg/types"
)

// ErrNotFASTA is returned for a 2xx response whose body is not a FASTA record.
// efetch answers unknown ids with HTTP 200 and an "Error: ..." text body.
var ErrNotFASTA = errors.New("response is not FASTA")

// Fetcher retrieves the source page and individual records over HTTP.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
}

// NewFetcher returns a Fetcher whose client enforces cfg.Timeout.
func NewFetcher(cfg types.HTTPConfig) *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: cfg.Timeout},
		UserAgent: cfg.UserAgent,
	}
}

// FetchPage downloads the HTML source page.
func (f *Fetcher) FetchPage(ctx context.Context, pageURL string) (string, error) {
	return httputil.GetText(ctx, f.Client, pageURL, f.UserAgent, "text/html")
}

// FetchRecord downloads one FASTA record. It never fails outright: any
// transport error, non-2xx status, timeout or non-FASTA body is reported
// in the result's Err.
func (f *Fetcher) FetchRecord(ctx context.Context, efetchURL string, rec types.AccessionRecord) types.FetchResult {
	body, err := httputil.GetText(ctx, f.Client, efetchURL, f.UserAgent, "text/plain")
	if err != nil {
		if httputil.IsTimeout(err) {
			err = fmt.Errorf("timed out: %w", err)
		}
		return types.FetchResult{Record: rec, Err: err}
	}
	if err := checkFASTA(body); err != nil {
		return types.FetchResult{Record: rec, Err: err}
	}
	return types.FetchResult{Record: rec, Body: body}
}

// checkFASTA requires the first non-blank line to be a '>' header.
func checkFASTA(body string) error {
	sc := bufio.NewScanner(strings.NewReader(body))
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			return nil
		}
		if len(line) > 80 {
			line = line[:80] + "..."
		}
		return fmt.Errorf("%w: %q", ErrNotFASTA, line)
	}
	return fmt.Errorf("%w: empty body", ErrNotFASTA)
}
