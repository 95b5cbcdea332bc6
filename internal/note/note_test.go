// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package note

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		fallback    string
		wantTitle   string
		wantCreated time.Time
	}{
		{
			name:        "title and quoted created",
			content:     "---\ntitle: Strom Jahresabrechnung\ncreated: \"2023-05-01 10:00:00\"\n---\n\nBody text.\n",
			fallback:    "note-file",
			wantTitle:   "Strom Jahresabrechnung",
			wantCreated: time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:        "unquoted timestamp resolved by yaml",
			content:     "---\ntitle: Rechnung\ncreated: 2023-05-01 10:00:00\n---\nBody.\n",
			fallback:    "note-file",
			wantTitle:   "Rechnung",
			wantCreated: time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:        "zulu suffix",
			content:     "---\ncreated: 2021-12-31 23:59:59Z\n---\n",
			fallback:    "silvester",
			wantTitle:   "silvester",
			wantCreated: time.Date(2021, 12, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:        "explicit offset",
			content:     "---\ncreated: \"2023-05-01T10:00:00+02:00\"\n---\n",
			fallback:    "offset",
			wantTitle:   "offset",
			wantCreated: time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			name:        "date only",
			content:     "---\ntitle: Vertrag\ncreated: 2023-05-01\n---\n",
			fallback:    "note-file",
			wantTitle:   "Vertrag",
			wantCreated: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "no front matter",
			content:   "Just a note body with no metadata.\n",
			fallback:  "plain-note",
			wantTitle: "plain-note",
		},
		{
			name:      "single delimiter only",
			content:   "---\ntitle: Incomplete\n",
			fallback:  "incomplete",
			wantTitle: "incomplete",
		},
		{
			name:      "front matter not at document start",
			content:   "Intro line.\n---\ntitle: Mitte\n---\nRest.\n",
			fallback:  "note-file",
			wantTitle: "Mitte",
		},
		{
			name:      "malformed yaml falls back",
			content:   "---\ntitle: [unclosed\n---\nBody.\n",
			fallback:  "broken",
			wantTitle: "broken",
		},
		{
			name:      "non-mapping front matter falls back",
			content:   "---\njust a scalar\n---\nBody.\n",
			fallback:  "scalar",
			wantTitle: "scalar",
		},
		{
			name:      "empty title falls back",
			content:   "---\ntitle: \"\"\n---\n",
			fallback:  "fallback-title",
			wantTitle: "fallback-title",
		},
		{
			name:      "numeric title is stringified",
			content:   "---\ntitle: 2024\n---\n",
			fallback:  "note-file",
			wantTitle: "2024",
		},
		{
			name:      "unparseable created is dropped",
			content:   "---\ntitle: Kaputt\ncreated: not-a-date\n---\n",
			fallback:  "note-file",
			wantTitle: "Kaputt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := Parse([]byte(tt.content), tt.fallback, zerolog.Nop())
			assert.Equal(t, tt.wantTitle, meta.Title)
			if tt.wantCreated.IsZero() {
				assert.True(t, meta.Created.IsZero(), "Created = %v, want zero", meta.Created)
			} else {
				assert.True(t, meta.Created.Equal(tt.wantCreated), "Created = %v, want %v", meta.Created, tt.wantCreated)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "iso with T separator",
			input: "2023-05-01T10:00:00",
			want:  time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "space separated",
			input: "2023-05-01 10:00:00",
			want:  time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "zulu suffix",
			input: "2023-05-01T10:00:00Z",
			want:  time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "positive offset",
			input: "2023-05-01T10:00:00+02:00",
			want:  time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			name:  "fractional seconds",
			input: "2023-05-01 10:00:00.123456",
			want:  time.Date(2023, 5, 1, 10, 0, 0, 123456000, time.UTC),
		},
		{
			name:  "minute precision",
			input: "2023-05-01T10:04",
			want:  time.Date(2023, 5, 1, 10, 4, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "2023-05-01",
			want:  time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			input: "  2023-05-01T10:00:00  ",
			want:  time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
		})
	}
}
