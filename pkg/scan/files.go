package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// discoverFiles expands the given paths into the list of files to scan.
// A path that is a file is taken as-is (subject to the extension
// filter); a directory is walked recursively.
func discoverFiles(paths []string, extensions []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat path %q: %w", path, err)
		}

		if !info.IsDir() {
			if validExtension(path, extensions) {
				files = append(files, path)
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if validExtension(p, extensions) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory %q: %w", path, err)
		}
	}
	return files, nil
}

// validExtension reports whether a filename passes the extension
// filter. An empty filter matches everything; comparison is
// case-insensitive suffix matching, so ".MD" files match a ".md"
// filter.
func validExtension(filename string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	lower := strings.ToLower(filename)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
