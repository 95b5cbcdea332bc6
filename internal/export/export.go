// Package export converts a Joplin export into one PDF per note.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/joplin-paperless/internal/note"
	"github.com/pdiddy/joplin-paperless/internal/pdf"
	"github.com/pdiddy/joplin-paperless/internal/resource"
	"github.com/pdiddy/joplin-paperless/pkg/types"
)

// notePatterns are the note filename patterns processed, in pass order.
var notePatterns = []string{"*.md", "*.html"}

// BatchResult holds the outcome of an export run.
type BatchResult struct {
	Exported int
	Skipped  int
	Failed   int
}

// Total returns the total number of notes processed.
func (r BatchResult) Total() int {
	return r.Exported + r.Skipped + r.Failed
}

// HasFailures reports whether any notes failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

type noteStatus int

const (
	statusExported noteStatus = iota
	statusSkipped
	statusFailed
)

// ExportBatch processes every note in the export's document directory and
// writes one PDF per note into cfg.OutputDir. Notes are processed
// independently; a failing note is counted and the batch continues.
func ExportBatch(cfg types.ExportConfig, logger zerolog.Logger) (BatchResult, error) {
	var result BatchResult

	docsSub := cfg.DocsSubdir
	if docsSub == "" {
		docsSub = types.DefaultDocsSubdir
	}
	resourcesSub := cfg.ResourcesSubdir
	if resourcesSub == "" {
		resourcesSub = types.DefaultResourcesSubdir
	}
	docsDir := filepath.Join(cfg.ExportDir, docsSub)
	resourcesDir := filepath.Join(cfg.ExportDir, resourcesSub)

	if info, err := os.Stat(cfg.ExportDir); err != nil || !info.IsDir() {
		return result, fmt.Errorf("export directory not found: %s", cfg.ExportDir)
	}
	if info, err := os.Stat(docsDir); err != nil || !info.IsDir() {
		return result, fmt.Errorf("document directory %q not found in %s", docsSub, cfg.ExportDir)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return result, fmt.Errorf("creating output directory: %w", err)
	}

	// Output names are claimed per run, so two notes with the same title
	// land in distinct files and a re-export claims the same names again.
	claimed := make(map[string]struct{})

	for _, pattern := range notePatterns {
		notes, err := filepath.Glob(filepath.Join(docsDir, pattern))
		if err != nil {
			return result, fmt.Errorf("listing notes: %w", err)
		}
		for _, notePath := range notes {
			switch exportNote(notePath, cfg.OutputDir, resourcesDir, claimed, logger) {
			case statusExported:
				result.Exported++
			case statusSkipped:
				result.Skipped++
			case statusFailed:
				result.Failed++
			}
		}
	}

	logger.Info().
		Int("exported", result.Exported).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("export complete")
	return result, nil
}

// exportNote turns one note into PDF output. Embedded PDF attachments are
// copied out as they are; otherwise referenced images are assembled into a
// single PDF. Notes referencing neither are skipped.
func exportNote(notePath, outputDir, resourcesDir string, claimed map[string]struct{}, logger zerolog.Logger) noteStatus {
	name := filepath.Base(notePath)
	noteLog := logger.With().Str("note", name).Logger()
	noteLog.Info().Msg("processing note")

	content, err := os.ReadFile(notePath)
	if err != nil {
		noteLog.Error().Err(err).Msg("reading note")
		return statusFailed
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	meta := note.Parse(content, stem, noteLog)
	resources := resource.FindAll(content, resourcesDir, noteLog)

	var pdfs, images []types.Resource
	for _, r := range resources {
		switch {
		case r.IsPDF():
			pdfs = append(pdfs, r)
		case r.IsImage():
			images = append(images, r)
		}
	}

	switch {
	case len(pdfs) > 0:
		for i, r := range pdfs {
			stem := meta.Title
			if len(pdfs) > 1 {
				stem = fmt.Sprintf("%s_%d", meta.Title, i)
			}
			outPath := claimName(outputDir, stem, claimed)
			if err := copyFile(r.Path, outPath); err != nil {
				noteLog.Error().Str("source", r.Path).Err(err).Msg("copying embedded PDF")
				return statusFailed
			}
			noteLog.Info().Str("output", filepath.Base(outPath)).Msg("copied embedded PDF")
			applyCreated(outPath, meta.Created, noteLog)
		}
		return statusExported

	case len(images) > 0:
		outPath := claimName(outputDir, meta.Title, claimed)
		paths := make([]string, 0, len(images))
		for _, r := range images {
			paths = append(paths, r.Path)
		}
		pages, err := pdf.FromImages(paths, outPath, noteLog)
		if err != nil {
			noteLog.Error().Err(err).Msg("assembling PDF")
			return statusFailed
		}
		if pages == 0 {
			return statusSkipped
		}
		noteLog.Info().Int("pages", pages).Str("output", filepath.Base(outPath)).Msg("assembled PDF from images")
		applyCreated(outPath, meta.Created, noteLog)
		return statusExported

	default:
		noteLog.Warn().Msg("no PDF or image resources, skipping")
		return statusSkipped
	}
}

// claimName reserves an output filename for stem, appending _1, _2, … when
// an earlier note in the run already claimed it.
func claimName(dir, stem string, claimed map[string]struct{}) string {
	name := stem
	for n := 1; ; n++ {
		if _, taken := claimed[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s_%d", stem, n)
	}
	claimed[name] = struct{}{}
	return filepath.Join(dir, name+".pdf")
}

// applyCreated stamps the note's creation time onto the output file's
// access and modification times.
func applyCreated(path string, created time.Time, logger zerolog.Logger) {
	if created.IsZero() {
		return
	}
	if err := os.Chtimes(path, created, created); err != nil {
		logger.Warn().Str("output", filepath.Base(path)).Err(err).Msg("could not set file times")
	}
}

// copyFile copies src to dstPath using a temporary file, so a partial copy
// never lands at the final name.
func copyFile(src, dstPath string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	tmpFile, err := os.CreateTemp(filepath.Dir(dstPath), ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, in)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing copy: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, dstPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
