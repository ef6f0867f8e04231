package rollerr

import (
	"fmt"
	"os"
	"time"

	"golift.io/rollerr/filer"
)

// Prune is the retention rule applied to backup files after each rotation.
// Pruning is best effort: the write path logs a warning and carries on when
// a policy returns an error. Use one of the provided policies directly, or
// bring your own.
type Prune interface {
	// Prune removes old backup files. It runs after every successful
	// rotation with the index the rotation just produced.
	Prune(fs filer.Filer, dir, name string, index uint64, now time.Time) error
	// Check is called once by New to validate the configuration.
	Check() error
}

// KeepAll is a Prune policy that keeps every backup file forever.
// This is the default.
type KeepAll struct{}

// Prune satisfies the Prune interface. It does nothing.
func (KeepAll) Prune(_ filer.Filer, _, _ string, _ uint64, _ time.Time) error { return nil }

// Check satisfies the Prune interface.
func (KeepAll) Check() error { return nil }

// KeepCount is a Prune policy that retains only the Files newest backup
// files, plus the active file.
type KeepCount struct {
	Files int
}

// Prune satisfies the Prune interface. Backups with an index at or below
// index-Files are deleted. Directory listings go stale the moment they're
// made, so a file that disappears before we remove it counts as pruned.
func (k KeepCount) Prune(fs filer.Filer, dir, name string, index uint64, _ time.Time) error {
	if index <= uint64(k.Files) {
		return nil // fewer backups than the limit; nothing to do.
	}

	cutoff := index - uint64(k.Files)

	files, err := rotatedFiles(fs, dir, name)
	if err != nil {
		return err
	}

	for _, file := range files {
		if file.Index > cutoff {
			break
		}

		if err := fs.Remove(file.Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing old backup file: %w", err)
		}
	}

	return nil
}

// Check satisfies the Prune interface.
func (k KeepCount) Check() error {
	if k.Files < 1 {
		return fmt.Errorf("%w: KeepCount.Files must be larger than zero", ErrBadPrune)
	}

	return nil
}

// KeepAge is a Prune policy that deletes backup files whose last modification
// is older than Limit.
type KeepAge struct {
	Limit time.Duration
}

// Prune satisfies the Prune interface.
func (k KeepAge) Prune(fs filer.Filer, dir, name string, _ uint64, now time.Time) error {
	cutoff := now.Add(-k.Limit)

	files, err := rotatedFiles(fs, dir, name)
	if err != nil {
		return err
	}

	for _, file := range files {
		info, err := file.Entry.Info()
		if err != nil {
			if os.IsNotExist(err) {
				continue // someone else pruned it. fine.
			}

			return fmt.Errorf("reading backup file info: %w", err)
		}

		if !info.ModTime().Before(cutoff) {
			continue
		}

		if err := fs.Remove(file.Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing old backup file: %w", err)
		}
	}

	return nil
}

// Check satisfies the Prune interface.
func (k KeepAge) Check() error {
	if k.Limit < 1 {
		return fmt.Errorf("%w: KeepAge.Limit must be larger than zero", ErrBadPrune)
	}

	return nil
}

// Our policies must satisfy the Prune interface.
var (
	_ Prune = KeepAll{}
	_ Prune = KeepCount{}
	_ Prune = KeepAge{}
)
