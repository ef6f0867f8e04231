//go:build !linux && !darwin && !freebsd && !windows

package filer

import (
	"os"
	"time"
)

// createTime returns the zero time on platforms where we do not know how to
// read a file creation time stamp. Callers treat a zero CreateTime as
// "unknown" and fall back to their configured policy.
func createTime(_ os.FileInfo) time.Time {
	return time.Time{}
}
