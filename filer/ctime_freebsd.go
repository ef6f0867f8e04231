package filer

import (
	"os"
	"syscall"
	"time"
)

// createTime digs the creation time stamp out of the stat syscall data.
func createTime(info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}
	}

	return time.Unix(int64(stat.Ctimespec.Sec), int64(stat.Ctimespec.Nsec)) //nolint:unconvert
}
