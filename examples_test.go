package rollerr_test

import (
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"golift.io/rollerr"
)

// This example shows how to plug a Roller into the standard library logger.
// The active file rotates once it passes 100MB, and only the ten newest
// backups stick around. Backup files are named file.log.1, file.log.2, and
// so on; the highest number is the newest.
func ExampleNew() {
	roller, err := rollerr.New(&rollerr.Config{
		Path:    "/var/log/file.log",
		Trigger: rollerr.MaxSize{Bytes: 100 * 1024 * 1024},
		Prune:   rollerr.KeepCount{Files: 10},
	})
	if err != nil {
		panic(err)
	}

	log.SetOutput(roller)
}

// Rotate by file age instead of size. The filesystem's creation time stamp
// drives the age check; on a filesystem that cannot report one, the explicit
// IfUnknown policy decides what happens. There is no implicit default.
func Example_maxAge() {
	log.SetOutput(mustRoller(&rollerr.Config{
		Path: "/var/log/file.log",
		Trigger: rollerr.MaxAge{
			Limit:     24 * time.Hour,
			IfUnknown: rollerr.RotateNever,
		},
		Prune: rollerr.KeepAge{Limit: 30 * 24 * time.Hour},
	}))
}

// An asynchronous or buffered writer may split one logical record across
// several Write calls. With RotateAtNewline set, rotation waits for a write
// that ends in a newline byte, so a record is never torn across two files.
func Example_recordBoundary() {
	log.SetOutput(mustRoller(&rollerr.Config{
		Path:            "/var/log/file.log",
		Trigger:         rollerr.MaxSize{Bytes: 10 * 1024 * 1024},
		RotateAtNewline: true,
	}))
}

// Non-fatal hiccups (a failed stat while deciding whether to rotate, a
// backup file that would not delete) are reported through the zap logger you
// provide and never abort a write. Leave Logger nil to ignore them entirely.
func Example_warnings() {
	zlog, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	log.SetOutput(mustRoller(&rollerr.Config{
		Path:    "/var/log/file.log",
		Trigger: rollerr.MaxSize{Bytes: 10 * 1024 * 1024},
		Prune:   rollerr.KeepCount{Files: 5},
		Logger:  zlog,
	}))
}

// This example demonstrates how to trigger an action after a file is
// rotated, e.g. shipping the finished backup somewhere.
func Example_postRotate() {
	roller, err := rollerr.New(&rollerr.Config{
		Path:    "/var/log/file.log",
		Trigger: rollerr.MaxSize{Bytes: 10 * 1024 * 1024},
		PostRotate: func(_, rotatedPath string) {
			// This blocks the write that triggered the rotation, so
			// make it snappy or hand off to a go routine. Don't log
			// through the roller itself from here.
			fmt.Fprintf(os.Stderr, "file rotated: %s\n", rotatedPath)
		},
	})
	if err != nil {
		panic(err)
	}

	log.SetOutput(roller)
}

func mustRoller(config *rollerr.Config) *rollerr.Roller {
	roller, err := rollerr.New(config)
	if err != nil {
		panic(err)
	}

	return roller
}
