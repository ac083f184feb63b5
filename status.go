package pathglob

import (
	iofs "io/fs"
	"os"

	"github.com/pathglob/pathglob/path"
)

// Kind is the file type of a directory entry. It is a closed set;
// anything the OS reports outside of it maps to KindUnknown.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRegular
	KindDirectory
	KindSymlink
	KindFIFO
	KindBlock
	KindChar
	KindSocket
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	case KindFIFO:
		return "fifo"
	case KindBlock:
		return "block"
	case KindChar:
		return "character"
	case KindSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// Status is the portable result of a metadata query: the file kind and
// the permission bits (including setuid, setgid and sticky). It is
// produced fresh on every query and never cached.
type Status struct {
	Kind Kind
	Perm iofs.FileMode
}

// IsDir reports whether the status describes a directory.
func (s Status) IsDir() bool { return s.Kind == KindDirectory }

// Stat queries metadata for p, following symbolic links.
func Stat(p path.Path) (Status, error) {
	if err := checkPath("stat", p); err != nil {
		return Status{}, err
	}
	info, err := os.Stat(p.String())
	if err != nil {
		return Status{}, classify("stat", p, err)
	}
	return statusOf(info.Mode()), nil
}

// Lstat queries metadata for p without following symbolic links.
func Lstat(p path.Path) (Status, error) {
	if err := checkPath("lstat", p); err != nil {
		return Status{}, err
	}
	info, err := os.Lstat(p.String())
	if err != nil {
		return Status{}, classify("lstat", p, err)
	}
	return statusOf(info.Mode()), nil
}

// statusOf translates mode bits into a Status, independent of the
// platform-specific bit layout underneath io/fs.FileMode.
func statusOf(m iofs.FileMode) Status {
	st := Status{
		Perm: m & (iofs.ModePerm | iofs.ModeSetuid | iofs.ModeSetgid | iofs.ModeSticky),
	}
	switch {
	case m.IsRegular():
		st.Kind = KindRegular
	case m&iofs.ModeDir != 0:
		st.Kind = KindDirectory
	case m&iofs.ModeSymlink != 0:
		st.Kind = KindSymlink
	case m&iofs.ModeNamedPipe != 0:
		st.Kind = KindFIFO
	case m&iofs.ModeSocket != 0:
		st.Kind = KindSocket
	case m&iofs.ModeCharDevice != 0:
		st.Kind = KindChar
	case m&iofs.ModeDevice != 0:
		st.Kind = KindBlock
	}
	return st
}
