// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"time"
)

// NoteMeta holds the metadata read from a note's YAML front matter.
type NoteMeta struct {
	// Title is the note title. When the front matter has no usable title,
	// this is the note's filename without extension.
	Title string `json:"title" yaml:"title"`

	// Created is the note creation time; zero when absent or unparseable.
	Created time.Time `json:"created" yaml:"created"`
}

// Resource is an attachment referenced by a note, resolved to a file inside
// the export's _resources directory.
type Resource struct {
	// Path is the resolved filesystem path of the attachment.
	Path string `json:"path" yaml:"path"`

	// Ext is the inferred extension including the leading dot (e.g. ".pdf").
	// It can disagree with the extension of Path when a MIME type or link
	// label overrode the target's own suffix.
	Ext string `json:"ext" yaml:"ext"`
}

// IsPDF reports whether the resource was inferred to be a PDF document.
func (r Resource) IsPDF() bool {
	return strings.EqualFold(r.Ext, ".pdf")
}

// imageExts lists the extensions treated as page images during PDF assembly.
var imageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".bmp":  {},
	".gif":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
	".heic": {},
}

// IsImage reports whether the resource was inferred to be an image.
func (r Resource) IsImage() bool {
	_, ok := imageExts[strings.ToLower(r.Ext)]
	return ok
}
