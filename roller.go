package rollerr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"golift.io/rollerr/filer"
)

// These are the default log file and directory POSIX modes.
const (
	FileMode os.FileMode = 0o600
	DirMode  os.FileMode = 0o750
)

// Custom errors returned by this package.
var (
	ErrBadPath      = errors.New("cannot derive a file name from path")
	ErrBadTrigger   = errors.New("invalid rotation trigger")
	ErrBadPrune     = errors.New("invalid prune policy")
	ErrCorruptIndex = errors.New("malformed index suffix on backup file")
	ErrRotateFailed = errors.New("rotating active file")
)

// Config is the data needed to create a new Roller.
type Config struct {
	Path            string        // REQUIRED: Full path to the log file, e.g. /var/log/svc/app.log.
	Trigger         Trigger       // When to rotate the active file. Default: Never.
	Prune           Prune         // Which backup files to delete after a rotation. Default: KeepAll.
	RotateAtNewline bool          // Defer rotation until a write ends in a newline byte.
	FileMode        os.FileMode   // POSIX mode for new files.
	DirMode         os.FileMode   // POSIX mode for new folders.
	PostRotate      func(activePath, rotatedPath string) // Optional hook, called after each rotation.
	Logger          *zap.Logger   // Receives warnings the write path swallows. Default: discard.
	Clock           clock.Clock   // Overridable time source, handy in tests. Default: wall clock.
	Filer           filer.Filer   // Overridable file system procedures.
}

// Roller wraps one active output file and owns all rotation and pruning
// logic for it. You must obtain a Roller by calling New().
//
// A Roller assumes one logical writer: it performs no internal locking, so
// serialize access yourself if several goroutines share one. Logging
// frameworks that drain through a single output already do this.
type Roller struct {
	config *Config      // incoming configuration.
	dir    string       // parent directory of Path, derived once.
	name   string       // base name of Path. Backups are name.<index>.
	active string       // full path of the file receiving writes.
	index  uint64       // how many rotations have ever occurred for this stream.
	file   *os.File     // the active open file.
	log    *zap.Logger  // copied from config for brevity.
	clock  clock.Clock  // copied from config for brevity.
	filer.Filer         // overridable file system procedures.
}

// New takes in your configuration and returns a Roller you can use with
// log.SetOutput(). New recovers the rotation index from the files already on
// disk, creates any missing folders, and opens (or creates) the active file.
// Misconfiguration fails here, fast and loudly; it never degrades silently.
func New(config *Config) (*Roller, error) {
	roller := &Roller{config: config}

	if err := roller.initialize(); err != nil {
		return nil, err
	}

	return roller, nil
}

// initialize runs all the startup routines.
func (r *Roller) initialize() error {
	if err := r.setConfigDefaults(); err != nil {
		return err
	}

	sep := string(filepath.Separator)
	name := filepath.Base(r.config.Path)

	if r.config.Path == "" || strings.HasSuffix(r.config.Path, sep) ||
		name == "." || name == ".." || name == sep {
		return fmt.Errorf("%w: %q", ErrBadPath, r.config.Path)
	}

	r.dir = filepath.Dir(r.config.Path)
	r.name = name
	r.active = r.config.Path + ActiveSuffix

	if err := r.MkdirAll(r.dir, r.config.DirMode); err != nil {
		return fmt.Errorf("making directories for logfiles: %w", err)
	}

	index, err := latestIndex(r.Filer, r.dir, r.name)
	if err != nil {
		return err
	}

	r.index = index

	return r.openActive()
}

// setConfigDefaults does exactly what it says. Sets missing values.
func (r *Roller) setConfigDefaults() error {
	if r.config.Trigger == nil {
		r.config.Trigger = Never{}
	}

	if r.config.Prune == nil {
		r.config.Prune = KeepAll{}
	}

	if err := r.config.Trigger.Check(); err != nil {
		return err
	}

	if err := r.config.Prune.Check(); err != nil {
		return err
	}

	if r.config.FileMode == 0 {
		r.config.FileMode = FileMode
	}

	if r.config.DirMode == 0 {
		r.config.DirMode = DirMode
	}

	if r.config.Logger == nil {
		r.config.Logger = zap.NewNop()
	}

	if r.config.Clock == nil {
		r.config.Clock = clock.New()
	}

	if r.config.Filer == nil {
		r.config.Filer = filer.Default()
	}

	r.log = r.config.Logger
	r.clock = r.config.Clock
	r.Filer = r.config.Filer

	return nil
}

// openActive opens the active log file for writing.
// If the file exists, it is appended to. If it does not exist, it is created.
func (r *Roller) openActive() error {
	file, err := r.OpenFile(r.active, os.O_WRONLY|os.O_APPEND|os.O_CREATE, r.config.FileMode)
	if err != nil {
		return fmt.Errorf("error with new logfile: %w", err)
	}

	r.file = file

	return nil
}

// Write sends data to the active file, rotating and pruning first when the
// configured trigger says so. This satisfies the io.Writer interface, so you
// can pass a *Roller into log.SetOutput().
func (r *Roller) Write(b []byte) (int, error) {
	if r.config.RotateAtNewline {
		return r.writeAtBoundary(b)
	}

	if r.due() {
		if err := r.rotate(); err != nil {
			return 0, err
		}

		r.prune()
	}

	return r.write(b)
}

// writeAtBoundary is the Write path when RotateAtNewline is set. An upstream
// asynchronous writer may emit one logical record across several calls; only
// a write ending in a newline byte marks a safe point, so rotation is skipped
// entirely for everything else. A buffer that is exactly one bare newline is
// what completed the record already on disk: it is consumed by the rotation
// instead of being rewritten, or the new file would open with an orphan
// newline that belongs to a record in the previous one.
func (r *Roller) writeAtBoundary(b []byte) (int, error) {
	if len(b) == 0 || b[len(b)-1] != '\n' {
		return r.write(b)
	}

	if !r.due() {
		return r.write(b)
	}

	if err := r.rotate(); err != nil {
		return 0, err
	}

	size := len(b)

	if len(b) > 1 {
		var err error
		if size, err = r.write(b); err != nil {
			return size, err
		}
	}

	r.prune()

	return size, nil
}

// write sends a message into the active file after everything checks out.
func (r *Roller) write(b []byte) (int, error) {
	size, err := r.file.Write(b)
	if err != nil {
		return size, fmt.Errorf("error writing log msg: %w", err)
	}

	return size, nil
}

// due reports whether the active file must rotate before the next write.
// Metadata trouble is not fatal here: accepting writes beats perfect rotation
// timing, so the answer degrades to "do not rotate" with a logged warning.
func (r *Roller) due() bool {
	if r.config.Trigger == (Never{}) {
		return false
	}

	info, err := r.statActive()
	if err != nil {
		r.log.Warn("cannot read active file metadata; skipping rotation check",
			zap.String("file", r.active), zap.Error(err))

		return false
	}

	return r.config.Trigger.Fire(info, r.clock.Now())
}

// statActive syncs the active handle so the size on disk is current, then
// stats the open handle rather than the path. The handle stays correct even
// if the path was renamed underneath us.
func (r *Roller) statActive() (*filer.FileInfo, error) {
	if err := r.file.Sync(); err != nil {
		return nil, fmt.Errorf("syncing active file: %w", err)
	}

	return r.StatFile(r.file)
}

// rotate hands the active file off to its permanent indexed name and opens a
// fresh active file in its place. The rename happens under the open handle,
// which keeps referencing the renamed file, so on any failure the index and
// handle are left untouched and the next call retries against the
// pre-rotation file. Rotation never deletes data; it only renames.
func (r *Roller) rotate() error {
	if err := r.file.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %w", ErrRotateFailed, err)
	}

	next := r.index + 1
	rotated := filepath.Join(r.dir, rotatedName(r.name, next))

	if err := r.Rename(r.active, rotated); err != nil {
		return fmt.Errorf("%w: %w", ErrRotateFailed, err)
	}

	file, err := r.OpenFile(r.active, os.O_WRONLY|os.O_APPEND|os.O_CREATE, r.config.FileMode)
	if err != nil {
		return fmt.Errorf("%w: reopening active file: %w", ErrRotateFailed, err)
	}

	old := r.file
	r.file = file
	r.index = next
	_ = old.Close()

	if r.config.PostRotate != nil {
		r.config.PostRotate(r.active, rotated)
	}

	return nil
}

// prune applies the retention policy to the backup files. Best effort: old
// backups are cosmetic, so failing to delete one never aborts the write path.
func (r *Roller) prune() {
	err := r.config.Prune.Prune(r.Filer, r.dir, r.name, r.index, r.clock.Now())
	if err != nil {
		r.log.Warn("pruning backup files failed", zap.Error(err))
	}
}

// Rotate forces the log to rotate immediately, regardless of the configured
// trigger. Returns the path the active file was rotated to. Handy for SIGHUP
// handlers and logrotate-style external kicks.
func (r *Roller) Rotate() (string, error) {
	if err := r.rotate(); err != nil {
		return "", err
	}

	r.prune()

	return filepath.Join(r.dir, rotatedName(r.name, r.index)), nil
}

// Flush forces written bytes out to disk. It carries no rotation logic.
func (r *Roller) Flush() error {
	if err := r.file.Sync(); err != nil {
		return fmt.Errorf("flushing log file: %w", err)
	}

	return nil
}

// Close releases the active file handle. Pending unflushed bytes are the
// caller's responsibility; call Flush first if you need them on disk.
func (r *Roller) Close() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil

	if err != nil {
		return fmt.Errorf("closing log file %s: %w", r.active, err)
	}

	return nil
}

// Index returns how many rotations have ever occurred for this stream,
// counting the ones recovered from disk at startup. It never decreases, and
// it names the most recently rotated file.
func (r *Roller) Index() uint64 {
	return r.index
}

// ActivePath returns the path of the file currently receiving writes.
func (r *Roller) ActivePath() string {
	return r.active
}

// Our Roller must satisfy an io.WriteCloser.
var _ io.WriteCloser = (*Roller)(nil)
