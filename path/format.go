package path

import "runtime"

// Format selects the separator convention a [Path] is encoded with.
//
// Native resolves to Posix or Windows once at startup, based on the host
// platform. Posix and Windows can be used on any host for pure string
// manipulation; only operations that touch the filesystem require the
// format to match the host.
type Format uint8

const (
	Native Format = iota
	Posix
	Windows
)

// hostFormat is resolved exactly once; there is no mutable global
// separator state anywhere in this package.
var hostFormat = func() Format {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}()

// resolve maps Native to the host format and leaves the rest alone.
func (f Format) resolve() Format {
	if f == Native {
		return hostFormat
	}
	return f
}

// Separator returns the separator byte for the format: '/' for Posix,
// '\' for Windows, and whichever the host uses for Native.
func (f Format) Separator() byte {
	if f.resolve() == Windows {
		return '\\'
	}
	return '/'
}

func (f Format) String() string {
	switch f {
	case Posix:
		return "posix"
	case Windows:
		return "windows"
	default:
		return "native"
	}
}

// isSep reports whether c separates segments in format f. Windows paths
// accept both slash directions on input; POSIX paths treat backslash as
// an ordinary byte so it stays usable as an escape character in glob
// patterns.
func isSep(c byte, f Format) bool {
	if c == '/' {
		return true
	}
	return c == '\\' && f.resolve() == Windows
}

// hasDrive reports whether s begins with a Windows drive letter ("X:").
func hasDrive(s string) bool {
	if len(s) < 2 || s[1] != ':' {
		return false
	}
	c := s[0] | 0x20
	return c >= 'a' && c <= 'z'
}
