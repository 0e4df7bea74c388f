//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_SourceFiles(t *testing.T) {
	fs := NewFS()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "util"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0755))
	for _, name := range []string{
		"main.c",
		"README.md",
		filepath.Join("src", "b.cpp"),
		filepath.Join("src", "a.CC"),
		filepath.Join("src", "util", "c.cxx"),
		filepath.Join("src", "util", "c.h"),
		filepath.Join(".git", "hook.c"),
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("int x;\n"), 0644))
	}

	files, err := fs.SourceFiles(root)
	assert.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "main.c"),
		filepath.Join(root, "src", "a.CC"),
		filepath.Join(root, "src", "b.cpp"),
		filepath.Join(root, "src", "util", "c.cxx"),
	}, files)
}

func TestFS_SourceFiles_NotADirectory(t *testing.T) {
	fs := NewFS()
	file := filepath.Join(t.TempDir(), "main.c")
	require.NoError(t, os.WriteFile(file, []byte("int main() { return 0; }\n"), 0644))

	_, err := fs.SourceFiles(file)
	assert.ErrorIs(t, err, ErrNotADirectory)

	_, err = fs.SourceFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestIsSourceFile(t *testing.T) {
	assert.True(t, IsSourceFile("a.c"))
	assert.True(t, IsSourceFile("dir/a.CPP"))
	assert.False(t, IsSourceFile("a.h"))
	assert.False(t, IsSourceFile("Makefile"))
}
