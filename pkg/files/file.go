// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	yamlExts = []string{".yaml", ".yml"}
	jsonExts = []string{".json"}
	tomlExts = []string{".toml"}
)

type Type int

const (
	TypeUnknown Type = iota
	TypeYAML
	TypeJSON
	TypeTOML
)

func (t Type) String() string {
	switch t {
	case TypeYAML:
		return "yaml"
	case TypeJSON:
		return "json"
	case TypeTOML:
		return "toml"
	default:
		return "unknown"
	}
}

type File struct {
	src     Source
	relPath string
}

// Opts controls how NewFiles expands paths.
type Opts struct {
	// Recursive allows directories; their files are included in
	// lexical order.
	Recursive bool
	Symlinks  SymlinkAllowOpts
}

// NewFiles turns paths into files. "-" reads stdin and http(s) URLs are
// fetched lazily.
func NewFiles(paths []string, opts Opts) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		switch {
		case path == "-":
			fileSrcs = append(fileSrcs, NewStdinSource())

		case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
			fileSrcs = append(fileSrcs, NewCachedSource(NewHTTPSource(path)))

		default:
			fileInfo, err := os.Lstat(path)
			if err != nil {
				return nil, fmt.Errorf("Checking file '%s': %s", path, err)
			}

			if fileInfo.Mode()&os.ModeSymlink != 0 {
				err := Symlink{path}.IsAllowed(opts.Symlinks)
				if err != nil {
					return nil, err
				}
				fileInfo, err = os.Stat(path)
				if err != nil {
					return nil, fmt.Errorf("Checking file '%s': %s", path, err)
				}
			}

			if fileInfo.IsDir() {
				if !opts.Recursive {
					return nil, fmt.Errorf("Expected file '%s' to not be a directory", path)
				}

				selectedPaths, err := walkDir(path, opts.Symlinks)
				if err != nil {
					return nil, err
				}

				for _, selectedPath := range selectedPaths {
					fileSrcs = append(fileSrcs, NewLocalSource(selectedPath, path))
				}
			} else {
				fileSrcs = append(fileSrcs, NewLocalSource(path, ""))
			}
		}
	}

	var files []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(fileSrc)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func walkDir(dir string, symlinks SymlinkAllowOpts) ([]string, error) {
	var selectedPaths []string

	err := filepath.Walk(dir, func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		if fi.Mode()&os.ModeSymlink != 0 {
			if err := (Symlink{walkedPath}).IsAllowed(symlinks); err != nil {
				return err
			}
		}
		selectedPaths = append(selectedPaths, walkedPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Listing files '%s': %s", dir, err)
	}

	sort.Strings(selectedPaths)
	return selectedPaths, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc.Description(), err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

func (r *File) Type() Type {
	switch {
	case r.matchesExt(yamlExts):
		return TypeYAML
	case r.matchesExt(jsonExts):
		return TypeJSON
	case r.matchesExt(tomlExts):
		return TypeTOML
	default:
		return TypeUnknown
	}
}

// IsManifest reports whether the file can hold Kubernetes manifests.
// JSON is a subset of YAML so both go through the YAML parser.
func (r *File) IsManifest() bool {
	switch r.Type() {
	case TypeYAML, TypeJSON:
		return true
	default:
		return false
	}
}

func (r *File) matchesExt(exts []string) bool {
	filename := strings.ToLower(filepath.Base(r.RelativePath()))
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
