package pathglob

import (
	"errors"
	"io"
	"iter"
	"os"

	"github.com/pathglob/pathglob/path"
)

// Entry names one child of an enumerated directory. It is a value,
// decoupled from any live OS handle once returned.
type Entry struct {
	name string
	path path.Path
}

// Name returns the entry's base name.
func (e Entry) Name() string { return e.name }

// Path returns the entry's full path (base joined with name).
func (e Entry) Path() path.Path { return e.path }

// IsZero reports whether the entry is the empty placeholder.
func (e Entry) IsZero() bool { return e.name == "" }

// Dir is a lazy single-level directory cursor. It owns exactly one OS
// directory handle from [OpenDir] until [Dir.Close]; one entry is read
// per advance.
type Dir struct {
	base path.Path
	f    *os.File
	cur  Entry
}

// OpenDir acquires a directory handle for p and reads the first entry.
// The sentinel entries "." and ".." are never reported, regardless of
// where the OS places them in the stream. If the handle cannot be
// acquired or the first read fails, no handle remains held.
func OpenDir(p path.Path) (*Dir, error) {
	if err := checkPath("open", p); err != nil {
		return nil, err
	}
	f, err := os.Open(p.String())
	if err != nil {
		return nil, classify("open", p, err)
	}
	ent, err := readNext(f, p)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Dir{base: p, f: f, cur: ent}, nil
}

// More reports whether the cursor currently has an entry.
func (d *Dir) More() bool { return !d.cur.IsZero() }

// Current returns the current entry. It is meaningless once the cursor
// is exhausted.
func (d *Dir) Current() Entry { return d.cur }

// Advance reads the next entry. Past the last entry the cursor becomes
// exhausted; advancing an exhausted cursor is a no-op.
func (d *Dir) Advance() error {
	if d.f == nil || d.cur.IsZero() {
		return nil
	}
	ent, err := readNext(d.f, d.base)
	if err != nil {
		d.cur = Entry{}
		return err
	}
	d.cur = ent
	return nil
}

// Rewind restarts enumeration from the beginning by acquiring a fresh
// handle for the same base path; directory streams cannot be seeked to
// the start reliably across platforms.
func (d *Dir) Rewind() error {
	if d.f != nil {
		d.f.Close()
		d.f = nil
	}
	d.cur = Entry{}
	f, err := os.Open(d.base.String())
	if err != nil {
		return classify("open", d.base, err)
	}
	ent, err := readNext(f, d.base)
	if err != nil {
		f.Close()
		return err
	}
	d.f = f
	d.cur = ent
	return nil
}

// Close releases the handle. It is idempotent and safe on a cursor whose
// open failed partway.
func (d *Dir) Close() error {
	if d.f == nil {
		return nil
	}
	err := d.f.Close()
	d.f = nil
	d.cur = Entry{}
	return err
}

// Count reports the number of non-sentinel entries in the directory,
// using an independent handle so the cursor's position is untouched.
func (d *Dir) Count() (int, error) {
	f, err := os.Open(d.base.String())
	if err != nil {
		return 0, classify("open", d.base, err)
	}
	defer f.Close()
	names, err := f.Readdirnames(-1)
	if err != nil {
		return 0, classify("readdir", d.base, err)
	}
	n := 0
	for _, name := range names {
		if name != "." && name != ".." {
			n++
		}
	}
	return n, nil
}

// All drains the cursor from its current position. Errors are yielded
// with a zero entry, after which iteration stops.
func (d *Dir) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for d.More() {
			if !yield(d.cur, nil) {
				return
			}
			if err := d.Advance(); err != nil {
				yield(Entry{}, err)
				return
			}
		}
	}
}

// readNext pulls the next non-sentinel entry from an open directory
// handle. A zero entry with nil error means the stream is exhausted.
func readNext(f *os.File, base path.Path) (Entry, error) {
	for {
		ents, err := f.ReadDir(1)
		if errors.Is(err, io.EOF) {
			return Entry{}, nil
		}
		if err != nil {
			return Entry{}, classify("readdir", base, err)
		}
		if len(ents) == 0 {
			return Entry{}, nil
		}
		name := ents[0].Name()
		if name == "." || name == ".." {
			continue
		}
		return Entry{
			name: name,
			path: base.Join(path.New(name, base.Format())),
		}, nil
	}
}
