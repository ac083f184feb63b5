package pathglob

import (
	"errors"
	iofs "io/fs"
	"strings"
	"syscall"

	"github.com/pathglob/pathglob/path"
)

// Sentinel errors for the failure kinds this package reports. Every
// error returned by an OS-touching operation wraps one of these (or the
// raw OS error, for failures outside the taxonomy) in an
// *io/fs.PathError, so callers test with errors.Is.
var (
	ErrNotFound    = iofs.ErrNotExist
	ErrPermission  = iofs.ErrPermission
	ErrNotDir      = errors.New("not a directory")
	ErrInvalidPath = iofs.ErrInvalid
	ErrUnsupported = errors.ErrUnsupported
)

// classify wraps an OS error for path p into the package taxonomy.
func classify(op string, p path.Path, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, syscall.ENOTDIR):
		err = ErrNotDir
	case errors.Is(err, syscall.ENAMETOOLONG):
		err = ErrInvalidPath
	default:
		// os errors already satisfy errors.Is for ErrNotFound and
		// ErrPermission; keep the underlying code for the rest.
		var pe *iofs.PathError
		if errors.As(err, &pe) {
			err = pe.Err
		}
	}
	return &iofs.PathError{Op: op, Path: p.String(), Err: err}
}

// checkPath rejects paths the OS cannot represent before any syscall.
func checkPath(op string, p path.Path) error {
	if strings.IndexByte(p.String(), 0) >= 0 {
		return &iofs.PathError{Op: op, Path: p.String(), Err: ErrInvalidPath}
	}
	return nil
}
