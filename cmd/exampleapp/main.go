// Package main is a simple example app to write logs to see log rotation in action.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"golift.io/rollerr"
)

// Usage, rotate at 1MB and keep 10 backups:
//   go run ./cmd/exampleapp
//
// Usage, rotate every 2 seconds, record-boundary mode:
//   go run ./cmd/exampleapp --max-age 2s --newline
//
// Send SIGHUP to force a rotation.

type flags struct {
	Path      string        `help:"Log file path." default:"/tmp/rollerr/app.log"`
	MaxBytes  int64         `help:"Rotate when the active file exceeds this many bytes." default:"1048576"`
	MaxAge    time.Duration `help:"Rotate when the active file is older than this. Overrides max-bytes."`
	Keep      int           `help:"Keep only this many backup files." default:"10"`
	KeepAge   time.Duration `help:"Delete backups older than this. Overrides keep."`
	Newline   bool          `help:"Defer rotation until a write ends in a newline."`
	Interval  time.Duration `help:"Time between generated log lines." default:"5ms"`
	LineBytes int           `help:"Length of each generated log line." default:"5000"`
}

// lockedRoller serializes Write and Rotate calls. A Roller performs no
// internal locking, and we poke it from the SIGHUP go routine too.
type lockedRoller struct {
	mu sync.Mutex
	*rollerr.Roller
}

func (l *lockedRoller) Write(b []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.Roller.Write(b)
}

func (l *lockedRoller) Rotate() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.Roller.Rotate()
}

func main() {
	var cli flags

	kong.Parse(&cli, kong.Description("Writes junk log lines through a rotating file sink."))

	zlog, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	roller, err := rollerr.New(&rollerr.Config{
		Path:            cli.Path,
		Trigger:         pickTrigger(&cli),
		Prune:           pickPrune(&cli),
		RotateAtNewline: cli.Newline,
		Logger:          zlog,
		PostRotate: func(_, rotatedPath string) {
			fmt.Printf("\nfile rotated: %s\n", rotatedPath)
		},
	})
	if err != nil {
		zlog.Fatal("creating rotating file", zap.Error(err))
	}
	defer roller.Close()

	locked := &lockedRoller{Roller: roller}
	go rotateOnHUP(locked, zlog)

	log.SetFlags(log.LstdFlags)
	log.SetOutput(locked)
	makeLogs(cli.Interval, cli.LineBytes)
}

func pickTrigger(cli *flags) rollerr.Trigger {
	if cli.MaxAge > 0 {
		return rollerr.MaxAge{Limit: cli.MaxAge, IfUnknown: rollerr.RotateNever}
	}

	return rollerr.MaxSize{Bytes: cli.MaxBytes}
}

func pickPrune(cli *flags) rollerr.Prune {
	switch {
	case cli.KeepAge > 0:
		return rollerr.KeepAge{Limit: cli.KeepAge}
	case cli.Keep > 0:
		return rollerr.KeepCount{Files: cli.Keep}
	default:
		return rollerr.KeepAll{}
	}
}

// rotateOnHUP forces a rotation whenever the process receives SIGHUP.
func rotateOnHUP(roller *lockedRoller, zlog *zap.Logger) {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGHUP)

	for range sigc {
		rotated, err := roller.Rotate()
		if err != nil {
			zlog.Error("forced rotation failed", zap.Error(err))

			continue
		}

		zlog.Info("forced rotation", zap.String("file", rotated))
	}
}

// Write fake logs!
func makeLogs(interval time.Duration, lineBytes int) {
	logLine := string(bytes.Repeat([]byte{'_'}, lineBytes))

	ticker := time.NewTicker(interval)
	for range ticker.C {
		fmt.Print(".")

		err := log.Output(0, logLine)
		if err != nil {
			panic(err)
		}
	}
}
