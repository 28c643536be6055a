package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivlev/lottie2gif/internal/convert"
)

// Kind classifies a resolved path.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

var (
	// ErrPathNotFound means an argument could not be resolved to an
	// existing path (missing, permission denied, dangling symlink).
	ErrPathNotFound = errors.New("path not found")

	// ErrNotAnInputFile means a file argument does not carry the
	// recognized animation extension.
	ErrNotAnInputFile = errors.New("not a lottie animation file")
)

// Classify resolves raw to an absolute canonical path (".", "..", and
// symlinks resolved) and reports whether it is a file or a directory.
// Canonical paths keep log lines and derived output paths unambiguous.
func Classify(raw string) (string, Kind, error) {
	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %s", ErrPathNotFound, raw)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %s", ErrPathNotFound, raw)
	}
	fi, err := os.Stat(canonical)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %s", ErrPathNotFound, raw)
	}
	if fi.IsDir() {
		return canonical, KindDirectory, nil
	}
	return canonical, KindFile, nil
}

// validInput reports whether the path's base name carries the recognized
// extension. Matching is case-sensitive ("b.JSON" is rejected) and the
// name must be longer than the extension itself.
func validInput(path string) bool {
	name := filepath.Base(path)
	return len(name) > len(convert.InputExt) && strings.HasSuffix(name, convert.InputExt)
}

// Discover expands one classified path into the set of input files.
//
// A file yields itself when it passes extension validation, otherwise
// ErrNotAnInputFile. A directory is walked recursively: entries whose name
// starts with "." are skipped (files and whole subtrees alike), regular
// files with the recognized extension are collected, and every other entry
// type is ignored. WalkDir does not follow directory symlinks, so symlink
// cycles cannot recurse. Order is enumeration order; callers must only
// rely on set membership.
func Discover(path string, kind Kind) ([]string, error) {
	if kind == KindFile {
		if !validInput(path) {
			return nil, fmt.Errorf("%w: %s", ErrNotAnInputFile, path)
		}
		return []string{path}, nil
	}

	var files []string
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != path && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if validInput(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
