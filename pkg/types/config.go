package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout bounds each HTTP request, including reading the body.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "bldb-fetch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent" validate:"required"`
}

// FetchConfig holds settings for a scrape-and-download run.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// SourceURL is the BLDB page listing the accessions.
	SourceURL string `json:"source_url" yaml:"source_url" mapstructure:"source_url" validate:"required,http_url"`

	// EfetchURL is the E-utilities efetch endpoint records are retrieved from.
	EfetchURL string `json:"efetch_url" yaml:"efetch_url" mapstructure:"efetch_url" validate:"required,http_url"`

	// OutputDir, when set, receives one <accession>.fasta file per record.
	// When empty, records are printed to the console.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty" mapstructure:"output_dir"`

	// Overwrite re-downloads records whose file already exists in OutputDir.
	Overwrite bool `json:"overwrite" yaml:"overwrite" mapstructure:"overwrite"`

	// Email and Tool identify the caller to E-utilities. Both optional.
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email" validate:"omitempty,email"`
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty" mapstructure:"tool"`
}
