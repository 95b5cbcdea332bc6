// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceKind(t *testing.T) {
	tests := []struct {
		name      string
		ext       string
		wantPDF   bool
		wantImage bool
	}{
		{name: "pdf", ext: ".pdf", wantPDF: true},
		{name: "pdf uppercase", ext: ".PDF", wantPDF: true},
		{name: "jpeg", ext: ".jpeg", wantImage: true},
		{name: "png uppercase", ext: ".PNG", wantImage: true},
		{name: "heic", ext: ".heic", wantImage: true},
		{name: "tiff", ext: ".tiff", wantImage: true},
		{name: "no extension", ext: ""},
		{name: "unknown", ext: ".docx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resource{Path: "/exports/_resources/x", Ext: tt.ext}
			assert.Equal(t, tt.wantPDF, r.IsPDF(), "IsPDF")
			assert.Equal(t, tt.wantImage, r.IsImage(), "IsImage")
		})
	}
}
