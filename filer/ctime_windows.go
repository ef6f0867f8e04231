package filer

import (
	"os"
	"syscall"
	"time"
)

// createTime digs the creation time stamp out of the Win32 file attributes.
func createTime(info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}
	}

	return time.Unix(0, stat.CreationTime.Nanoseconds())
}
