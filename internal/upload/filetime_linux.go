// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build linux

package upload

import (
	"os"
	"syscall"
	"time"
)

// fileCreated returns the inode change time, the closest thing to a
// creation time the Linux stat result carries.
func fileCreated(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	}
	return info.ModTime()
}
