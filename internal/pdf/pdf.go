// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf assembles images into multi-page PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/png"

	_ "github.com/gen2brain/heic"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"
)

// renderDPI sizes each page so its image renders at this resolution.
const renderDPI = 100.0

// FromImages writes a PDF to outPath with one page per readable image in
// paths, in order. Unreadable images are logged and skipped. When no image
// survives, no file is written and the returned page count is 0.
func FromImages(paths []string, outPath string, logger zerolog.Logger) (int, error) {
	if len(paths) == 0 {
		return 0, nil
	}

	doc := fpdf.New("P", "pt", "A4", "")
	pages := 0
	for _, p := range paths {
		img, err := decode(p)
		if err != nil {
			logger.Warn().Str("image", p).Err(err).Msg("could not read image, skipping")
			continue
		}

		// Pages are embedded as JPEG regardless of source format, which
		// flattens palette, grayscale, and alpha images onto opaque color.
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, nil); err != nil {
			logger.Warn().Str("image", p).Err(err).Msg("could not encode image, skipping")
			continue
		}

		bounds := img.Bounds()
		w := float64(bounds.Dx()) * 72 / renderDPI
		h := float64(bounds.Dy()) * 72 / renderDPI
		opts := fpdf.ImageOptions{ImageType: "JPEG"}
		doc.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
		doc.RegisterImageOptionsReader(p, opts, &buf)
		doc.ImageOptions(p, 0, 0, w, h, false, opts, 0, "")
		pages++
	}

	if pages == 0 {
		logger.Warn().Str("output", filepath.Base(outPath)).Msg("no readable images, not writing PDF")
		return 0, nil
	}
	if err := doc.OutputFileAndClose(outPath); err != nil {
		return 0, fmt.Errorf("writing %s: %w", outPath, err)
	}
	return pages, nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
