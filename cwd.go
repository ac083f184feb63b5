package pathglob

import (
	"os"

	"github.com/pathglob/pathglob/path"
)

// Cwd returns the process working directory as a native-format path.
// The working directory is the only process-wide state this package
// touches, and only ever to read it.
func Cwd() (path.Path, error) {
	s, err := os.Getwd()
	if err != nil {
		return path.Path{}, classify("getwd", path.New(".", path.Native), err)
	}
	return path.New(s, path.Native), nil
}

// Home returns the current user's home directory as a native-format
// path.
func Home() (path.Path, error) {
	s, err := os.UserHomeDir()
	if err != nil {
		return path.Path{}, classify("home", path.New(".", path.Native), err)
	}
	return path.New(s, path.Native), nil
}
