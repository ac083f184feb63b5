package pathglob

import (
	"slices"

	"github.com/pathglob/pathglob/path"
)

// Globber expands glob patterns against the filesystem.
//
// The zero value is ready to use: it follows symbolic links during "**"
// expansion and discards diagnostics. Failures to open or stat a
// candidate entry during expansion never abort the whole match; the
// candidate is skipped and, when Diag is set, reported through it.
type Globber struct {
	// NoFollow stops "**" expansion from descending through symbolic
	// links to directories.
	NoFollow bool

	// Diag, when non-nil, observes every candidate skipped because of a
	// filesystem error, with the error that caused the skip.
	Diag func(p path.Path, err error)
}

// Glob collects every expansion of pattern into a slice, in traversal
// order, following symbolic links.
func Glob(pattern path.Path) ([]path.Path, error) {
	var out []path.Path
	var g Globber
	err := g.Expand(pattern, func(p path.Path) bool {
		out = append(out, p)
		return true
	})
	return out, err
}

// Expand walks the pattern's segments left to right and emits every
// completed path into sink exactly once per match; sink returning false
// stops the expansion early.
//
// A literal segment is appended to the accumulated path verbatim (with
// escapes resolved) without touching the filesystem, so a pattern with
// no wildcard at all passes through unmodified, like a shell leaving a
// non-matching pattern alone. A segment containing '*' is expanded
// against the entries of the accumulated directory using [Match]. A
// segment that is exactly "**" matches zero or more directory levels:
// the remaining pattern is first tried against the accumulated path
// itself, then against every directory in its subtree; as the final
// segment, "**" emits the accumulated path and every entry beneath it.
//
// The only terminal error is a pattern whose literal prefix does not
// exist, which prevents the expansion from starting at all. Everything
// encountered deeper is skip-and-continue, observable via [Globber].Diag.
func (g *Globber) Expand(pattern path.Path, sink func(path.Path) bool) error {
	segs := slices.Collect(pattern.Segments())
	wild := -1
	for i, s := range segs {
		if s == "**" || hasWildcard(s) {
			wild = i
			break
		}
	}
	if wild >= 0 {
		prefix := path.New(".", pattern.Format())
		for _, s := range segs[:wild] {
			prefix = prefix.Join(path.New(literal(s, pattern.Format()), pattern.Format()))
		}
		if _, err := Stat(prefix); err != nil {
			return err
		}
	}
	g.expand(segs, path.New(".", pattern.Format()), sink)
	return nil
}

// expand reports false when the sink asked to stop.
func (g *Globber) expand(segs []string, acc path.Path, sink func(path.Path) bool) bool {
	for len(segs) > 0 {
		seg := segs[0]
		if seg == "**" {
			return g.expandTree(segs[1:], acc, sink)
		}
		if hasWildcard(seg) {
			return g.expandLevel(seg, segs[1:], acc, sink)
		}
		acc = acc.Join(path.New(literal(seg, acc.Format()), acc.Format()))
		segs = segs[1:]
	}
	return sink(acc)
}

// expandLevel expands one single-level wildcard segment against the
// entries of acc.
func (g *Globber) expandLevel(seg string, rest []string, acc path.Path, sink func(path.Path) bool) bool {
	d, err := OpenDir(acc)
	if err != nil {
		g.diag(acc, err)
		return true
	}
	defer d.Close()
	for d.More() {
		e := d.Current()
		if Match(e.Name(), seg) {
			if !g.expand(rest, e.Path(), sink) {
				return false
			}
		}
		if err := d.Advance(); err != nil {
			g.diag(acc, err)
			return true
		}
	}
	return true
}

// expandTree expands a "**" segment: zero levels first, then every
// directory in the subtree of acc. Entries whose kind cannot be
// determined are skipped.
func (g *Globber) expandTree(rest []string, acc path.Path, sink func(path.Path) bool) bool {
	if !g.expand(rest, acc, sink) {
		return false
	}
	open := OpenRecursiveDir
	if g.NoFollow {
		open = OpenRecursiveDirNoFollow
	}
	r, err := open(acc)
	if err != nil {
		g.diag(acc, err)
		return true
	}
	defer r.Close()
	for r.More() {
		e := r.Current()
		if len(rest) == 0 {
			if !sink(e.Path()) {
				return false
			}
		} else if st, err := g.stat(e.Path()); err != nil {
			g.diag(e.Path(), err)
		} else if st.IsDir() {
			if !g.expand(rest, e.Path(), sink) {
				return false
			}
		}
		if err := r.Advance(); err != nil {
			g.diag(e.Path(), err)
		}
	}
	return true
}

// literal resolves a pattern segment to the filename it names. Windows
// format has no escape character, since backslash is the separator
// there; resolving escapes would mangle a UNC anchor segment.
func literal(seg string, f path.Format) string {
	if f.Separator() == '\\' {
		return seg
	}
	return unescape(seg)
}

// stat classifies a candidate with the same link policy the recursive
// cursor uses, so NoFollow keeps symlinked directories out of "**"
// expansion entirely.
func (g *Globber) stat(p path.Path) (Status, error) {
	if g.NoFollow {
		return Lstat(p)
	}
	return Stat(p)
}

func (g *Globber) diag(p path.Path, err error) {
	if g.Diag != nil {
		g.Diag(p, err)
	}
}
