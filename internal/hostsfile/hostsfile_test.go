package hostsfile

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileReadMissing(t *testing.T) {
	f := File{Path: filepath.Join(t.TempDir(), "hosts")}
	content, err := f.Read()
	require.NoError(t, err)
	require.Empty(t, content)
}

func TestFileWriteRoundTrip(t *testing.T) {
	f := File{Path: filepath.Join(t.TempDir(), "hosts")}
	want := "127.0.0.1 localhost\n"

	require.NoError(t, f.Write(want))
	got, err := f.Read()
	require.NoError(t, err)
	require.Equal(t, want, got)

	info, err := os.Stat(f.Path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	}
}

func TestFileWritePreservesPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	path := filepath.Join(t.TempDir(), "hosts")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

	f := File{Path: path}
	require.NoError(t, f.Write("new\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := f.Read()
	require.NoError(t, err)
	require.Equal(t, "new\n", got)
}
