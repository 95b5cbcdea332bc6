package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/joplin-paperless/internal/export"
	"github.com/pdiddy/joplin-paperless/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <export_dir> <output_dir>",
	Short: "Convert a Joplin export into one PDF per note",
	Long: `Export walks the document subdirectory of a Joplin "Markdown + Front
Matter" export, finds the attachments each note references, and writes one
PDF per note: embedded PDF attachments are copied out under the note's
title, image attachments are assembled into a PDF with one page per image.
Output files carry the note's created time as their modification time.`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("docs-dir", types.DefaultDocsSubdir, "name of the document subdirectory inside the export")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	docsDir, _ := cmd.Flags().GetString("docs-dir")

	cfg := types.ExportConfig{
		ExportDir:  args[0],
		OutputDir:  args[1],
		DocsSubdir: docsDir,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	result, err := export.ExportBatch(cfg, logger)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d note(s) failed to export", result.Failed)
	}
	return nil
}
