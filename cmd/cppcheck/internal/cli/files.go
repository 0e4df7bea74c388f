package cli

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/lerenn/cppcheck-go/pkg/fs"
)

// CollectFiles expands the command line arguments into the list of files to
// check. Glob patterns are expanded first. Directories are walked for C/C++
// sources; files named explicitly are taken as given.
func CollectFiles(fsys fs.FS, args []string) ([]string, error) {
	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !slices.Contains(files, path) {
			files = append(files, path)
		}
	}

	for _, arg := range args {
		if fs.IsPattern(arg) {
			matches, err := fsys.Glob(arg)
			if err != nil {
				return nil, err
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, arg)
			}
			for _, m := range matches {
				sources, err := sourcesOf(fsys, m)
				if err != nil {
					return nil, err
				}
				for _, s := range sources {
					if fs.IsSourceFile(s) {
						add(s)
					}
				}
			}
			continue
		}

		exists, err := fsys.Exists(arg)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, arg)
		}

		sources, err := sourcesOf(fsys, arg)
		if err != nil {
			return nil, err
		}
		for _, s := range sources {
			add(s)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoSourceFiles, args)
	}
	return files, nil
}

// sourcesOf returns path itself, or the sources below it when it is a directory.
func sourcesOf(fsys fs.FS, path string) ([]string, error) {
	isDir, err := fsys.IsDir(path)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return []string{path}, nil
	}
	return fsys.SourceFiles(path)
}
