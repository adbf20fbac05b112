package intake_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegSOI  = []byte{0xff, 0xd8}
	jpegEOI  = []byte{0xff, 0xd9}
)

// tempDir returns a symlink-free temporary directory. On some systems the
// default temp root itself sits behind a link (macOS /var).
func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func pngPayload(size int) []byte {
	if size < len(pngMagic) {
		size = len(pngMagic)
	}
	data := make([]byte, size)
	copy(data, pngMagic)
	return data
}

func jpegPayload(body int) []byte {
	return bytes.Join([][]byte{jpegSOI, make([]byte, body), jpegEOI}, nil)
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
