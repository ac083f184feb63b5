// Package pathglob provides lazy directory enumeration and glob-pattern
// expansion over [github.com/pathglob/pathglob/path] values.
//
// The package is organized around cursors that own operating-system
// directory handles:
//
//   - [Dir] enumerates a single directory level. It owns exactly one
//     handle, reads one entry per [Dir.Advance], and releases the handle
//     on [Dir.Close] no matter how iteration ended.
//   - [RecursiveDir] walks a subtree depth-first in pre-order using an
//     explicit stack of handles, one per open ancestor, so memory is
//     bounded by tree depth rather than entry count. [RecursiveDir.Depth]
//     exposes the stack depth.
//
// Cursors are pull-based and single-threaded: nothing happens between
// calls, and cancellation is simply ceasing to pull and closing the
// cursor. Entries within one level arrive in whatever order the OS
// reports them; across levels, pre-order depth-first is guaranteed.
// Distinct cursors share no state and may be used from different
// goroutines without coordination from this package.
//
// [Stat] and [Lstat] translate OS metadata into a portable [Status]
// (file kind plus permission bits), produced fresh on every call.
//
// [Globber.Expand] drives the cursors from a glob pattern: '*' matches
// within one segment, a bare "**" segment matches zero or more directory
// levels, and '\' escapes the following character. Failures to open or
// stat a candidate during expansion skip that candidate rather than
// aborting the whole match; set [Globber].Diag to observe the skips.
//
// Every operating-system failure surfaces as an *io/fs.PathError whose
// underlying error is one of the sentinel values in this package
// ([ErrNotFound], [ErrPermission], [ErrNotDir], [ErrInvalidPath],
// [ErrUnsupported]) or the raw OS error for anything else. No operation
// terminates the process.
package pathglob
