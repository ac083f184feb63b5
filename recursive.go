package pathglob

import (
	"iter"
	"os"

	"github.com/pathglob/pathglob/path"
)

// RecursiveDir walks a subtree depth-first in pre-order: a directory is
// reported as an entry before its children. Instead of call-stack
// recursion it keeps an explicit stack with one open OS handle per
// ancestor directory, so at any point the number of held handles equals
// the traversal depth. The stack is empty exactly when the cursor is
// exhausted.
//
// Symbolic-link loop protection and depth limits are the caller's
// concern; supply a visited-set keyed on resolved identity if the tree
// may contain cycles.
type RecursiveDir struct {
	stack  []*os.File
	bases  []path.Path // base directory per open level
	cur    Entry
	follow bool
}

// OpenRecursiveDir starts a traversal rooted at p. Directory
// classification follows symbolic links, so a link to a directory is
// descended into.
func OpenRecursiveDir(p path.Path) (*RecursiveDir, error) {
	return openRecursive(p, true)
}

// OpenRecursiveDirNoFollow starts a traversal rooted at p that reports
// symbolic links as leaves and never descends through them.
func OpenRecursiveDirNoFollow(p path.Path) (*RecursiveDir, error) {
	return openRecursive(p, false)
}

func openRecursive(p path.Path, follow bool) (*RecursiveDir, error) {
	if err := checkPath("open", p); err != nil {
		return nil, err
	}
	f, err := os.Open(p.String())
	if err != nil {
		return nil, classify("open", p, err)
	}
	r := &RecursiveDir{follow: follow}
	ent, err := readNext(f, p)
	if err != nil {
		f.Close()
		return nil, err
	}
	if ent.IsZero() {
		// Empty root: exhausted from the start, nothing stays open.
		f.Close()
		return r, nil
	}
	r.stack = append(r.stack, f)
	r.bases = append(r.bases, p)
	r.cur = ent
	return r, nil
}

// More reports whether the cursor currently has an entry.
func (r *RecursiveDir) More() bool { return len(r.stack) > 0 }

// Current returns the current entry. It is meaningless once the cursor
// is exhausted.
func (r *RecursiveDir) Current() Entry { return r.cur }

// Depth returns the number of currently open handles, which equals the
// traversal depth.
func (r *RecursiveDir) Depth() int { return len(r.stack) }

// Advance moves to the next entry in pre-order: descend into the current
// entry when it is a directory, otherwise continue with the next
// sibling, popping and closing exhausted levels on the way out.
//
// A failure to stat or open the current entry is returned once, while
// the entry itself is treated as a leaf and traversal continues; after a
// non-nil return the cursor is still positioned on a valid entry (or
// exhausted) and may keep advancing. Advancing an exhausted cursor is a
// no-op.
func (r *RecursiveDir) Advance() error {
	if len(r.stack) == 0 {
		return nil
	}
	var firstErr error
	if ok, err := r.isDir(r.cur); err != nil {
		firstErr = err
	} else if ok {
		if f, err := os.Open(r.cur.path.String()); err != nil {
			firstErr = classify("open", r.cur.path, err)
		} else if ent, err := readNext(f, r.cur.path); err != nil {
			f.Close()
			firstErr = err
		} else if !ent.IsZero() {
			r.stack = append(r.stack, f)
			r.bases = append(r.bases, r.cur.path)
			r.cur = ent
			return nil
		} else {
			// Empty subdirectory: close immediately, keep going with
			// the current level's siblings.
			f.Close()
		}
	}
	for len(r.stack) > 0 {
		top := r.stack[len(r.stack)-1]
		ent, err := readNext(top, r.bases[len(r.bases)-1])
		if err != nil {
			r.pop()
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !ent.IsZero() {
			r.cur = ent
			return firstErr
		}
		r.pop()
	}
	r.cur = Entry{}
	return firstErr
}

// Close releases every handle on the stack. It is idempotent.
func (r *RecursiveDir) Close() error {
	var firstErr error
	for len(r.stack) > 0 {
		if err := r.stack[len(r.stack)-1].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		r.stack = r.stack[:len(r.stack)-1]
		r.bases = r.bases[:len(r.bases)-1]
	}
	r.cur = Entry{}
	return firstErr
}

// All drains the cursor from its current position. Errors are yielded
// with a zero entry; traversal continues afterwards, so breaking on
// error is the caller's choice.
func (r *RecursiveDir) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for r.More() {
			if !yield(r.cur, nil) {
				return
			}
			if err := r.Advance(); err != nil {
				if !yield(Entry{}, err) {
					return
				}
			}
		}
	}
}

func (r *RecursiveDir) pop() {
	r.stack[len(r.stack)-1].Close()
	r.stack = r.stack[:len(r.stack)-1]
	r.bases = r.bases[:len(r.bases)-1]
}

func (r *RecursiveDir) isDir(e Entry) (bool, error) {
	var st Status
	var err error
	if r.follow {
		st, err = Stat(e.path)
	} else {
		st, err = Lstat(e.path)
	}
	if err != nil {
		return false, err
	}
	return st.IsDir(), nil
}
