// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !darwin && !linux && !windows

package upload

import (
	"os"
	"time"
)

// fileCreated falls back to the modification time on platforms without an
// accessible creation or change time.
func fileCreated(info os.FileInfo) time.Time {
	return info.ModTime()
}
