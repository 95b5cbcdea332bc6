// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package upload posts PDF files to a Paperless-ngx instance.
package upload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/joplin-paperless/pkg/types"
)

// postDocumentPath is the Paperless-ngx document ingestion endpoint.
const postDocumentPath = "/api/documents/post_document/"

// maxResponseBytes caps how much of a response body is read for the
// document ID or an error message.
const maxResponseBytes = 1 << 20

// BatchResult holds the outcome of a batch upload run.
type BatchResult struct {
	Uploaded int
	Failed   int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Uploaded + r.Failed
}

// HasFailures reports whether any files failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// UploadBatch uploads every *.pdf file in cfg.PDFFolder, one POST per file.
// Files are uploaded independently; a failing file is counted and the batch
// continues. Each file gets exactly one attempt.
func UploadBatch(client *http.Client, cfg types.UploadConfig, logger zerolog.Logger) (BatchResult, error) {
	var result BatchResult

	if info, err := os.Stat(cfg.PDFFolder); err != nil || !info.IsDir() {
		return result, fmt.Errorf("PDF folder not found: %s", cfg.PDFFolder)
	}
	pdfs, err := filepath.Glob(filepath.Join(cfg.PDFFolder, "*.pdf"))
	if err != nil {
		return result, fmt.Errorf("listing PDFs: %w", err)
	}
	if len(pdfs) == 0 {
		logger.Warn().Str("folder", cfg.PDFFolder).Msg("no PDF files found")
		return result, nil
	}
	logger.Info().Int("count", len(pdfs)).Str("folder", cfg.PDFFolder).Msg("uploading PDFs")

	for _, pdfPath := range pdfs {
		fileLog := logger.With().Str("file", filepath.Base(pdfPath)).Logger()

		created, err := CreationDate(pdfPath)
		if err != nil {
			fileLog.Error().Err(err).Msg("reading file dates")
			result.Failed++
			continue
		}
		docID, err := UploadFile(client, cfg, pdfPath, created)
		if err != nil {
			fileLog.Error().Err(err).Msg("upload failed")
			result.Failed++
			continue
		}
		fileLog.Info().Int64("document_id", docID).Str("created", created).Msg("uploaded")
		result.Uploaded++
	}

	logger.Info().
		Int("uploaded", result.Uploaded).
		Int("failed", result.Failed).
		Msg("upload complete")
	return result, nil
}

// UploadFile posts one PDF to the ingestion endpoint, with created as the
// document date and the file stem as title. It returns the document ID
// from the response body.
func UploadFile(client *http.Client, cfg types.UploadConfig, pdfPath, created string) (int64, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	base := filepath.Base(pdfPath)
	title := strings.TrimSuffix(base, filepath.Ext(base))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("document", base)
	if err != nil {
		return 0, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return 0, fmt.Errorf("reading PDF: %w", err)
	}
	if err := mw.WriteField("created", created); err != nil {
		return 0, fmt.Errorf("building multipart body: %w", err)
	}
	if err := mw.WriteField("title", title); err != nil {
		return 0, fmt.Errorf("building multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return 0, fmt.Errorf("building multipart body: %w", err)
	}

	endpoint := strings.TrimRight(cfg.APIURL, "/") + postDocumentPath
	req, err := http.NewRequest(http.MethodPost, endpoint, &body)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Token "+cfg.APIToken)
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var docID int64
	if err := json.Unmarshal(bytes.TrimSpace(respBody), &docID); err != nil {
		return 0, fmt.Errorf("unexpected response body %q: %w", strings.TrimSpace(string(respBody)), err)
	}
	return docID, nil
}

// CreationDate returns the file's creation date formatted as UTC
// YYYY-MM-DD, using the closest timestamp the platform exposes.
func CreationDate(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return fileCreated(info).UTC().Format("2006-01-02"), nil
}
