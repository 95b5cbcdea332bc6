// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resource locates note attachments referenced from note bodies.
package resource

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/joplin-paperless/pkg/types"
)

// Reference patterns. Notes mix raw HTML and Markdown, so attachments are
// found with three passes over the text rather than a markup parser: <img>
// tags, then Markdown links, then <a> tags. Img tags are stripped before the
// later passes so an image reference is not counted again as a link.
var (
	imgTagRe    = regexp.MustCompile(`<img [^>]*>`)
	anchorTagRe = regexp.MustCompile(`<a [^>]*>.*?</a>`)
	mdLinkRe    = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)

	srcAttrRe    = regexp.MustCompile(`src=['"](.*?)['"]`)
	hrefAttrRe   = regexp.MustCompile(`href=['"](.*?)['"]`)
	typeAttrRe   = regexp.MustCompile(`type=['"](.*?)['"]`)
	altAttrRe    = regexp.MustCompile(`alt=['"](.*?)['"]`)
	anchorTextRe = regexp.MustCompile(`>(.*?)<`)
)

// mimeToExt maps MIME types found in type attributes to file extensions.
// A type attribute is the strongest extension signal a reference carries.
var mimeToExt = map[string]string{
	"image/jpeg":      ".jpg",
	"image/jpg":       ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/bmp":       ".bmp",
	"image/tiff":      ".tif",
	"image/webp":      ".webp",
	"image/heic":      ".heic",
	"application/pdf": ".pdf",
}

// FindAll returns the attachments referenced by content that exist under
// resourcesDir, in first-reference order. Each reference resolves to
// resourcesDir/<basename of the percent-decoded target>; references to the
// same path are reported once, keeping the first-seen extension. The
// extension is the target's own suffix unless a known MIME type or a
// suffixed label overrides it. Missing files are logged at debug level and
// dropped.
func FindAll(content []byte, resourcesDir string, logger zerolog.Logger) []types.Resource {
	text := string(content)
	var found []types.Resource
	seen := make(map[string]struct{})

	add := func(name, ext string) {
		if name == "" {
			return
		}
		resolved := filepath.Join(resourcesDir, name)
		if _, ok := seen[resolved]; ok {
			return
		}
		if _, err := os.Stat(resolved); err != nil {
			logger.Debug().Str("resource", resolved).Msg("resource not found")
			return
		}
		seen[resolved] = struct{}{}
		found = append(found, types.Resource{Path: resolved, Ext: ext})
	}

	for _, tag := range imgTagRe.FindAllString(text, -1) {
		src := srcAttrRe.FindStringSubmatch(tag)
		if src == nil {
			continue
		}
		name := baseName(src[1])
		ext := suffix(name)
		if m := typeAttrRe.FindStringSubmatch(tag); m != nil {
			if mapped, ok := mimeToExt[strings.ToLower(m[1])]; ok {
				ext = mapped
			}
		} else if m := altAttrRe.FindStringSubmatch(tag); m != nil {
			if s := suffix(m[1]); s != "" {
				ext = s
			}
		}
		add(name, ext)
	}

	stripped := imgTagRe.ReplaceAllString(text, "")

	for _, m := range mdLinkRe.FindAllStringSubmatch(stripped, -1) {
		label, target := m[1], m[2]
		name := baseName(target)
		ext := suffix(name)
		if ext == "" && label != "" {
			// A bare target like a Joplin resource ID gets its extension,
			// and its on-disk name, from the link label.
			if s := suffix(label); s != "" {
				name += s
				ext = s
			}
		}
		add(name, ext)
	}

	for _, tag := range anchorTagRe.FindAllString(stripped, -1) {
		href := hrefAttrRe.FindStringSubmatch(tag)
		if href == nil {
			continue
		}
		name := baseName(href[1])
		ext := suffix(name)
		label := ""
		if m := anchorTextRe.FindStringSubmatch(tag); m != nil {
			label = strings.TrimSpace(m[1])
		}
		if m := typeAttrRe.FindStringSubmatch(tag); m != nil {
			if mapped, ok := mimeToExt[strings.ToLower(m[1])]; ok {
				ext = mapped
			}
		} else if label != "" && !trustedSuffix(ext) {
			if s := suffix(label); s != "" {
				ext = s
			}
		}
		add(name, ext)
	}

	return found
}

// baseName returns the final path element of a percent-decoded link target,
// or "" when the target has none. Decoding that fails leaves the target
// as written ("+" is always literal in these names).
func baseName(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}
	name := path.Base(decoded)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// suffix returns the extension of name. A bare leading dot is a hidden
// filename, not an extension.
func suffix(name string) string {
	e := path.Ext(name)
	if e == name {
		return ""
	}
	return e
}

// trustedSuffix reports whether ext is trusted over an anchor's link text
// when the anchor carries no type attribute.
func trustedSuffix(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".pdf", ".tif":
		return true
	}
	return false
}
