// Package path implements an immutable, dual-encoding filesystem path
// value and its structural algebra.
//
// A [Path] is a normalized raw string tagged with a [Format] (POSIX or
// Windows separators, or the host-native one). All operations here are
// purely lexical: they never access the filesystem and never consult
// process state beyond the native format resolved at startup.
//
// Normalization is part of the representation, not an operation:
// separator runs are collapsed, embedded "." segments are dropped, and a
// trailing separator is stripped unless the path is exactly a root or a
// Windows drive root. The empty path is canonically ".". ".." segments
// are preserved; resolving them would require filesystem knowledge.
//
//	path.New("a//b/./c/", path.Posix).String() // "a/b/c"
//	path.New(`C:\`, path.Windows).Join(path.New("x", path.Windows))
//	                                           // C:\x
package path

import (
	"iter"
	"strings"
)

// Path is an immutable path value. The zero value is the
// current-directory path "." in the native format.
//
// Two paths are structurally equal when their normalized raw forms and
// resolved formats agree after translation to a common format; see
// [Path.Equal].
type Path struct {
	raw  string
	form Format
}

// New builds a normalized Path from a string in the given format.
func New(s string, f Format) Path {
	return Path{normalize(s, f), f}
}

// Make builds a Path by joining segments left to right, so a segment
// carrying an anchor restarts the path just as [Path.Join] would.
func Make(f Format, segs ...string) Path {
	p := Path{".", f}
	for _, s := range segs {
		p = p.Join(New(s, f))
	}
	return p
}

// String returns the normalized raw form.
func (p Path) String() string {
	if p.raw == "" {
		return "."
	}
	return p.raw
}

// Format returns the format tag the path was constructed with.
func (p Path) Format() Format { return p.form }

// Separator returns the path's separator byte.
func (p Path) Separator() byte { return p.form.Separator() }

func (p Path) win() bool { return p.form.resolve() == Windows }

// Drive returns the Windows drive prefix: "X:" for drive-letter paths,
// "\\host\share" for UNC paths, "" otherwise. POSIX paths never have a
// drive.
func (p Path) Drive() string {
	if !p.win() {
		return ""
	}
	s := p.String()
	if strings.HasPrefix(s, `\\`) {
		// UNC: host and share both belong to the drive.
		rest := s[2:]
		i := strings.IndexByte(rest, '\\')
		if i < 0 {
			return s
		}
		j := strings.IndexByte(rest[i+1:], '\\')
		if j < 0 {
			return s
		}
		return s[:2+i+1+j]
	}
	if hasDrive(s) {
		return s[:2]
	}
	return ""
}

// HasDrive reports whether the path has a drive component.
func (p Path) HasDrive() bool { return p.Drive() != "" }

// Root returns the root separator as a one-byte string if the path is
// rooted, "" otherwise. A Windows drive letter without a following
// separator ("C:") has a drive but no root.
func (p Path) Root() string {
	s := p.String()
	if p.win() {
		if s[0] == '\\' {
			return `\`
		}
		if hasDrive(s) && len(s) > 2 && s[2] == '\\' {
			return `\`
		}
		return ""
	}
	if s[0] == '/' {
		return "/"
	}
	return ""
}

// HasRoot reports whether the path is rooted.
func (p Path) HasRoot() bool { return p.Root() != "" }

// Anchor returns the non-relative prefix: the drive plus its root
// separator when one follows, the drive alone otherwise, or the root
// alone on POSIX. Empty for purely relative paths.
func (p Path) Anchor() string {
	d := p.Drive()
	if d == "" {
		return p.Root()
	}
	s := p.String()
	if len(s) > len(d) && s[len(d)] == p.Separator() {
		return s[:len(d)+1]
	}
	return d
}

// HasAnchor reports whether the path has a root or a drive.
func (p Path) HasAnchor() bool { return p.HasRoot() || p.HasDrive() }

// rel is the raw remainder after the anchor.
func (p Path) rel() string {
	s := p.String()
	return s[len(p.Anchor()):]
}

// Relative returns the path stripped of its anchor, or "." when nothing
// remains.
func (p Path) Relative() Path {
	return Path{normalize(p.rel(), p.form), p.form}
}

// RelativeTo returns the remainder of p after the prefix other, and
// whether other actually prefixes p. The comparison converts other into
// p's format first.
func (p Path) RelativeTo(other Path) (Path, bool) {
	os := other.To(p.form).String()
	s := p.String()
	if os == "." {
		return p, true
	}
	if !strings.HasPrefix(s, os) {
		return Path{}, false
	}
	rest := s[len(os):]
	if rest == "" {
		return Path{".", p.form}, true
	}
	// A prefix ending in the separator (a bare anchor like "/" or
	// "C:\") already sits on a segment boundary.
	if os[len(os)-1] == p.Separator() {
		return Path{normalize(rest, p.form), p.form}, true
	}
	if rest[0] != p.Separator() {
		return Path{}, false
	}
	return Path{normalize(rest[1:], p.form), p.form}, true
}

// Name returns the last segment of the relative remainder, or "" when
// the path is a bare anchor or the current directory.
func (p Path) Name() string {
	r := p.rel()
	if r == "." {
		return ""
	}
	i := strings.LastIndexByte(r, p.Separator())
	return r[i+1:]
}

// HasName reports whether the path has a final named segment.
func (p Path) HasName() bool { return p.Name() != "" }

// Parent returns the path without its final segment: the anchor for a
// single-segment anchored path, "." for a single-segment relative one.
// A bare anchor or "." is its own parent.
func (p Path) Parent() Path {
	r := p.rel()
	i := strings.LastIndexByte(r, p.Separator())
	if i >= 0 {
		return Path{p.String()[:len(p.Anchor())+i], p.form}
	}
	a := p.Anchor()
	switch {
	case r == "" || r == ".":
		return p
	case a == "":
		return Path{".", p.form}
	default:
		return Path{normalize(a, p.form), p.form}
	}
}

// HasParent reports whether Parent differs from the path itself.
func (p Path) HasParent() bool {
	return p.Parent().String() != p.String()
}

// Suffix returns the last '.'-delimited extension of the whole relative
// remainder, including the dot, or "". Note the remainder, not the name:
// for "a.b/c" the suffix is ".b/c". [Path.Suffixes] and [Path.Stem]
// operate on the name only.
func (p Path) Suffix() string {
	r := p.rel()
	if r == "." {
		return ""
	}
	i := strings.LastIndexByte(r, '.')
	if i < 0 {
		return ""
	}
	return r[i:]
}

// Suffixes returns the extensions of the name, without dots, outermost
// last: "a.tar.gz" yields ["tar", "gz"]. A leading dot starts the name,
// not an extension, so ".bashrc" has none.
func (p Path) Suffixes() []string {
	name := p.Name()
	i := strings.IndexByte(name, '.')
	if i <= 0 {
		return nil
	}
	return strings.Split(name[i+1:], ".")
}

// HasSuffix reports whether the name carries at least one extension.
func (p Path) HasSuffix() bool { return len(p.Suffixes()) > 0 }

// Stem returns the name without its final extension, so that
// Stem + "." + last suffix reconstructs the name.
func (p Path) Stem() string {
	name := p.Name()
	sfx := p.Suffixes()
	if len(sfx) == 0 {
		return name
	}
	return name[:len(name)-len(sfx[len(sfx)-1])-1]
}

// IsAbs reports whether the path is absolute: rooted on POSIX, a UNC
// path or a drive with a root on Windows.
func (p Path) IsAbs() bool {
	s := p.String()
	if p.win() {
		if strings.HasPrefix(s, `\\`) {
			return true
		}
		return hasDrive(s) && len(s) > 2 && s[2] == '\\'
	}
	return s[0] == '/'
}

// Join appends q as a structural child of p, inserting a separator. If q
// carries an anchor (a root, or any drive on Windows), it replaces p
// entirely. Joining "." is a no-op; joining onto "." yields q. The
// result keeps p's format; q is converted first if it differs.
func (p Path) Join(q Path) Path {
	qs := q.To(p.form).String()
	if qs == "." {
		return p
	}
	if qs[0] == p.Separator() || (p.win() && hasDrive(qs)) {
		return Path{qs, p.form}
	}
	ps := p.String()
	if ps == "." {
		return Path{qs, p.form}
	}
	sep := string(p.Separator())
	if strings.HasSuffix(ps, sep) {
		return Path{ps + qs, p.form}
	}
	return Path{ps + sep + qs, p.form}
}

// Concat appends q's raw form to p's with only separator deduplication
// at the junction; there is no root override and no separator insertion:
// "a".Concat("b") is "ab".
func (p Path) Concat(q Path) Path {
	ps, qs := p.String(), q.String()
	if qs == "." {
		return p
	}
	if ps == "." {
		return Path{normalize(qs, p.form), p.form}
	}
	return Path{normalize(ps+qs, p.form), p.form}
}

// WithoutName returns the path with its final named segment removed. A
// path without a name is returned unchanged.
func (p Path) WithoutName() Path {
	n := p.Name()
	if n == "" {
		return p
	}
	s := p.String()
	return Path{normalize(s[:len(s)-len(n)], p.form), p.form}
}

// WithName replaces the final named segment.
func (p Path) WithName(name string) Path {
	return p.WithoutName().Join(New(name, p.form))
}

// WithSuffix replaces the [Path.Suffix] extension (or appends when there
// is none).
func (p Path) WithSuffix(sfx string) Path {
	s := p.String()
	old := p.Suffix()
	return Path{normalize(s[:len(s)-len(old)]+sfx, p.form), p.form}
}

// WithSuffixes replaces every extension of the name (or appends when
// there are none).
func (p Path) WithSuffixes(sfx string) Path {
	s := p.String()
	name := p.Name()
	if i := strings.IndexByte(name, '.'); i > 0 {
		s = s[:len(s)-(len(name)-i)]
	}
	return Path{normalize(s+sfx, p.form), p.form}
}

// To converts the path into the target format, rewriting separators. A
// leading UNC double separator becomes a single "/" when leaving Windows
// form. Converting between formats that resolve to the same convention
// only retags the value.
func (p Path) To(f Format) Path {
	if f.resolve() == p.form.resolve() {
		return Path{p.String(), f}
	}
	s := p.String()
	if p.win() {
		if strings.HasPrefix(s, `\\`) {
			s = s[1:]
		}
		s = strings.ReplaceAll(s, `\`, `/`)
	} else {
		s = strings.ReplaceAll(s, `/`, `\`)
	}
	return Path{normalize(s, f), f}
}

// Equal reports structural equality after translating q into p's format.
func (p Path) Equal(q Path) bool {
	return p.String() == q.To(p.form).String()
}

// Segments returns a lazy iterator over the path's segments in
// left-to-right order: the anchor first as one segment when present,
// then each component. Only one segment is materialized at a time; each
// step scans for the next separator in the remaining slice.
func (p Path) Segments() iter.Seq[string] {
	return func(yield func(string) bool) {
		s := p.String()
		rest := s
		if a := p.Anchor(); a != "" {
			if !yield(a) {
				return
			}
			rest = s[len(a):]
		}
		sep := p.Separator()
		for len(rest) > 0 {
			i := strings.IndexByte(rest, sep)
			if i < 0 {
				yield(rest)
				return
			}
			if !yield(rest[:i]) {
				return
			}
			rest = rest[i+1:]
		}
	}
}

// normalize produces the canonical raw form: separator runs collapsed to
// the format separator, "." segments dropped, trailing separator
// stripped unless the whole path is a root form ("/", "\", "\\" or
// "X:\"), empty canonicalized to ".". ".." segments pass through.
func normalize(s string, f Format) string {
	sep := f.Separator()
	win := f.resolve() == Windows
	var prefix string
	i := 0
	switch {
	case win && len(s) >= 2 && isSep(s[0], f) && isSep(s[1], f):
		// UNC prefix: exactly two separators, runs of three or more
		// collapse into it.
		prefix = string([]byte{sep, sep})
		i = 2
		for i < len(s) && isSep(s[i], f) {
			i++
		}
	case len(s) > 0 && isSep(s[0], f):
		prefix = string(sep)
		for i < len(s) && isSep(s[i], f) {
			i++
		}
	case win && hasDrive(s):
		prefix = s[:2]
		i = 2
		if i < len(s) && isSep(s[i], f) {
			prefix += string(sep)
			for i < len(s) && isSep(s[i], f) {
				i++
			}
		}
	}
	var segs []string
	for i < len(s) {
		j := i
		for j < len(s) && !isSep(s[j], f) {
			j++
		}
		if seg := s[i:j]; seg != "" && seg != "." {
			segs = append(segs, seg)
		}
		i = j + 1
	}
	out := prefix + strings.Join(segs, string(sep))
	if out == "" {
		return "."
	}
	return out
}
