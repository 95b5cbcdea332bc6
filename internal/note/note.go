// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package note reads titles and creation times from note front matter.
package note

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/joplin-paperless/pkg/types"
)

// delimiter separates YAML front matter from the note body. The metadata
// block sits between the first two occurrences.
var delimiter = []byte("---")

// Parse extracts title and creation time from a note's front matter.
// fallbackTitle (normally the note's file stem) is used when the front
// matter is absent, malformed, not a mapping, or has no usable title.
// Malformed YAML and unparseable timestamps are logged and leave the
// affected field at its default.
func Parse(content []byte, fallbackTitle string, logger zerolog.Logger) types.NoteMeta {
	meta := types.NoteMeta{Title: fallbackTitle}

	parts := bytes.SplitN(content, delimiter, 3)
	if len(parts) < 3 {
		return meta
	}

	var doc any
	if err := yaml.Unmarshal(parts[1], &doc); err != nil {
		logger.Warn().Err(err).Msg("could not parse front matter")
		return meta
	}
	fm, ok := doc.(map[string]any)
	if !ok {
		return meta
	}

	switch v := fm["title"].(type) {
	case string:
		if v != "" {
			meta.Title = v
		}
	case int, int64, uint64, float64:
		meta.Title = fmt.Sprint(v)
	}

	switch v := fm["created"].(type) {
	case nil:
	case time.Time:
		// yaml resolves unquoted timestamps itself.
		meta.Created = v.UTC()
	default:
		raw := fmt.Sprint(v)
		t, err := ParseTimestamp(raw)
		if err != nil {
			logger.Warn().Str("created", raw).Err(err).Msg("could not parse created timestamp")
			break
		}
		meta.Created = t
	}

	return meta
}

// timestampLayouts lists the accepted timestamp shapes after normalization,
// most specific first.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO 8601-style timestamp as written by Joplin
// front matter. A space between date and time is normalized to "T" and a
// "Z" suffix to "+00:00" first; timestamps without a zone offset are
// interpreted as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), " ", "T")
	normalized = strings.ReplaceAll(normalized, "Z", "+00:00")
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
