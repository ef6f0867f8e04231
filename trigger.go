package rollerr

import (
	"fmt"
	"time"

	"golift.io/rollerr/filer"
)

// Trigger decides whether the active file must be rotated before a write.
// Use one of the provided triggers directly, or bring your own.
type Trigger interface {
	// Fire is called with fresh (synced) metadata for the active file before
	// a write. Returning true rotates the file first.
	Fire(info *filer.FileInfo, now time.Time) bool
	// Check is called once by New to validate the configuration.
	Check() error
}

// Fallback selects the rotation decision a MaxAge trigger makes when the
// platform or filesystem cannot report a file creation time. There is no safe
// guess here: always rotating fragments the logs, never rotating grows one
// file forever. So the choice is yours, and MaxAge requires you to make it.
type Fallback uint8

const (
	fallbackUnset Fallback = iota
	// RotateNever keeps writing to the active file when its age is unknown.
	RotateNever
	// RotateAlways rotates on every write when the file age is unknown.
	RotateAlways
)

// Never is a Trigger that never rotates. This is the default.
type Never struct{}

// Fire satisfies the Trigger interface. It always says no.
func (Never) Fire(_ *filer.FileInfo, _ time.Time) bool { return false }

// Check satisfies the Trigger interface.
func (Never) Check() error { return nil }

// MaxSize is a Trigger that rotates once the active file strictly exceeds
// Bytes. The check runs before the write that would push the file over, so
// the file may end up larger than Bytes by up to one write's worth of data.
type MaxSize struct {
	Bytes int64
}

// Fire satisfies the Trigger interface.
func (m MaxSize) Fire(info *filer.FileInfo, _ time.Time) bool {
	return info.Size() > m.Bytes
}

// Check satisfies the Trigger interface.
func (m MaxSize) Check() error {
	if m.Bytes < 1 {
		return fmt.Errorf("%w: MaxSize.Bytes must be larger than zero", ErrBadTrigger)
	}

	return nil
}

// MaxAge is a Trigger that rotates once the active file has existed for
// longer than Limit. File age comes from the creation time stamp in the
// filesystem metadata; IfUnknown decides what happens when there isn't one.
type MaxAge struct {
	Limit     time.Duration
	IfUnknown Fallback
}

// Fire satisfies the Trigger interface.
func (m MaxAge) Fire(info *filer.FileInfo, now time.Time) bool {
	if info.CreateTime.IsZero() {
		return m.IfUnknown == RotateAlways
	}

	return now.Sub(info.CreateTime) > m.Limit
}

// Check satisfies the Trigger interface.
func (m MaxAge) Check() error {
	if m.Limit < 1 {
		return fmt.Errorf("%w: MaxAge.Limit must be larger than zero", ErrBadTrigger)
	}

	if m.IfUnknown != RotateNever && m.IfUnknown != RotateAlways {
		return fmt.Errorf("%w: MaxAge.IfUnknown must be RotateNever or RotateAlways", ErrBadTrigger)
	}

	return nil
}

// Our triggers must satisfy the Trigger interface.
var (
	_ Trigger = Never{}
	_ Trigger = MaxSize{}
	_ Trigger = MaxAge{}
)
