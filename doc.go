// Package rollerr is a rotating write sink designed to plug directly into a
// standard go logger. It wraps one append-only output file and transparently
// swaps it for a freshly indexed one when a configured threshold is crossed,
// optionally deleting old rotated files to bound disk usage.
//
// The New() method returns a simple io.WriteCloser that works with most log
// packages. Writes are opaque byte sequences: nothing is parsed or buffered,
// only bytes and file age are counted. Rotated files keep a permanent integer
// suffix (service.log.1 is the oldest, the highest number the newest), and the
// file currently receiving writes always lives at a fixed, index-free path.
// Numbering is recovered from the directory listing on startup, so a process
// restart continues where the last one left off.
//
// Use this package if you write your own log file, and you're tired of your
// log file growing indefinitely.
package rollerr
