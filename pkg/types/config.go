package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Default names of the subdirectories inside a Joplin export.
const (
	DefaultDocsSubdir      = "Dokumente"
	DefaultResourcesSubdir = "_resources"
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "joplin-paperless/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// ExportDir is the root of the Joplin export, containing the note
	// subdirectory and _resources.
	ExportDir string `json:"export_dir" yaml:"export_dir"`

	// OutputDir is the directory that receives one PDF per note.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// DocsSubdir is the name of the note subdirectory inside the export
	// (default "Dokumente").
	DocsSubdir string `json:"docs_subdir" yaml:"docs_subdir"`

	// ResourcesSubdir is the name of the attachment subdirectory inside the
	// export (default "_resources").
	ResourcesSubdir string `json:"resources_subdir" yaml:"resources_subdir"`
}

// Validate reports whether the export configuration is usable.
func (c *ExportConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ExportDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
	)
}

// UploadConfig holds settings for the upload stage.
type UploadConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIURL is the base URL of the Paperless-ngx instance
	// (e.g. "https://paperless.example.com").
	APIURL string `json:"api_url" yaml:"api_url"`

	// APIToken authenticates requests, sent as "Authorization: Token <APIToken>".
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty"`

	// PDFFolder is the directory whose *.pdf files are uploaded.
	PDFFolder string `json:"pdf_folder" yaml:"pdf_folder"`

	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// Validate reports whether the upload configuration is usable.
func (c *UploadConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.APIURL, validation.Required, is.URL),
		validation.Field(&c.APIToken, validation.Required),
		validation.Field(&c.PDFFolder, validation.Required),
	)
}
