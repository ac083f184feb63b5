package pathglob_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pathglob/pathglob/path"
)

func np(s string) path.Path { return path.New(s, path.Native) }

// mktree populates root with the named entries. An entry ending in "/"
// is a directory; anything else is an empty regular file with parent
// directories created as needed.
func mktree(t *testing.T, root string, entries ...string) {
	t.Helper()
	for _, e := range entries {
		full := filepath.Join(root, filepath.FromSlash(e))
		if strings.HasSuffix(e, "/") {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, nil, 0o644))
	}
}

// openFDs counts the file descriptors currently held by the process.
// Only meaningful where /proc is available.
func openFDs(t *testing.T) int {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("descriptor accounting needs /proc")
	}
	ents, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	return len(ents)
}
