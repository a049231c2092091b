package sshconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveInclude expands an "Include <pattern>..." line into file paths.
//
// Relative patterns are resolved against baseDir, the directory of the file
// the line appeared in. A line without any pattern resolves to nothing. Paths
// are returned pattern by pattern, each pattern's matches in lexical order.
// A bad pattern does not stop the remaining patterns; its error is joined
// into the returned error alongside the paths that did resolve.
func ResolveInclude(line, baseDir string) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, nil
	}

	var (
		paths []string
		errs  []error
	)
	for _, pattern := range fields[1:] {
		matches, err := globPattern(pattern, baseDir)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, matches...)
	}

	return paths, errors.Join(errs...)
}

func globPattern(pattern, baseDir string) ([]string, error) {
	expanded, err := expandTilde(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand include pattern %q: %w", pattern, err)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(baseDir, expanded)
	}

	matches, err := filepath.Glob(expanded)
	if err != nil {
		return nil, fmt.Errorf("glob include pattern %q: %w", pattern, err)
	}
	return matches, nil
}

// expandTilde expands a leading ~ to the user's home directory.
func expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
