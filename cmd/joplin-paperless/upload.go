package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/joplin-paperless/internal/httputil"
	"github.com/pdiddy/joplin-paperless/internal/upload"
	"github.com/pdiddy/joplin-paperless/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "joplin-paperless/0.1"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a folder of PDFs to Paperless-ngx",
	Long: `Upload posts every PDF in a folder to the Paperless-ngx document
ingestion endpoint, one request per file. Each document is dated with the
file's creation date and titled with its filename. The API URL and token
come from flags, the PAPERLESS_API_URL and PAPERLESS_API_TOKEN environment
variables (a .env file is read automatically), the config file, or
.secrets/ files, in that order.`,
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().String("pdf-folder", "", "folder containing the PDF files to upload")
	uploadCmd.Flags().String("api-url", "", "Paperless-ngx base URL")
	uploadCmd.Flags().String("api-token", "", "Paperless-ngx API token")
	uploadCmd.Flags().Bool("no-verify-ssl", false, "skip TLS certificate verification")
	uploadCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	_ = uploadCmd.MarkFlagRequired("pdf-folder")

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	pdfFolder, _ := cmd.Flags().GetString("pdf-folder")
	noVerify, _ := cmd.Flags().GetBool("no-verify-ssl")

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}

	apiURL, _ := cmd.Flags().GetString("api-url")
	if apiURL == "" {
		apiURL = viper.GetString("api_url")
	}
	apiURL = secretDefault("paperless-api-url", apiURL)

	apiToken, _ := cmd.Flags().GetString("api-token")
	if apiToken == "" {
		apiToken = viper.GetString("api_token")
	}
	apiToken = secretDefault("paperless-api-token", apiToken)

	cfg := types.UploadConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		APIURL:             apiURL,
		APIToken:           apiToken,
		PDFFolder:          pdfFolder,
		InsecureSkipVerify: noVerify,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := httputil.NewClient(cfg.Timeout, cfg.InsecureSkipVerify)

	result, err := upload.UploadBatch(client, cfg, logger)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed to upload", result.Failed)
	}
	return nil
}
