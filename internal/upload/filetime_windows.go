// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build windows

package upload

import (
	"os"
	"syscall"
	"time"
)

// fileCreated returns the file's creation time.
func fileCreated(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, st.CreationTime.Nanoseconds())
	}
	return info.ModTime()
}
