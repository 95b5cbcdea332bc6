// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build darwin

package upload

import (
	"os"
	"syscall"
	"time"
)

// fileCreated returns the file's birth time.
func fileCreated(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Birthtimespec.Sec), int64(st.Birthtimespec.Nsec))
	}
	return info.ModTime()
}
