package fs

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// SourceExtensions lists the file extensions treated as C/C++ translation units.
var SourceExtensions = []string{".c", ".cc", ".cpp", ".cxx"}

// IsSourceFile reports whether path has a C/C++ source extension.
func IsSourceFile(path string) bool {
	return slices.Contains(SourceExtensions, strings.ToLower(filepath.Ext(path)))
}

// SourceFiles lists the C/C++ source files below root, sorted by path.
func (f *realFS) SourceFiles(root string) ([]string, error) {
	isDir, err := f.IsDir(root)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip hidden directories such as .git
		if d.IsDir() && path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}

		if !d.IsDir() && IsSourceFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}
