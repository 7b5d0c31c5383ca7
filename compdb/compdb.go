// Package compdb loads a compile_commands.json compilation database and
// locates a C/C++ project's root directory, the domain-specific analogue
// of the teacher's inspector/repository.Detector (which does the same
// for Go/Java/JS/Python/Rust projects via marker files). Load reads the
// database through github.com/viant/afs, the teacher's existing storage
// abstraction, the same way the teacher's Detector loads a go.mod;
// DetectRoot checks for marker files on the local filesystem with the
// os package.
package compdb

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/viant/afs"
)

// Entry is one compilation unit's compiler invocation, per the
// compile_commands.json schema spec.md §2 names as the compilation
// database's wire format.
type Entry struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Command   string   `json:"command,omitempty"`
	Arguments []string `json:"arguments,omitempty"`
	Output    string   `json:"output,omitempty"`
}

// Load reads and decodes the compile_commands.json file at path.
func Load(ctx context.Context, path string) ([]Entry, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("compdb: downloading %s: %w", path, err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("compdb: parsing %s: %w", path, err)
	}
	return entries, nil
}

// rootMarkers are files whose presence signals a C/C++ project root,
// the domain analogue of the teacher Detector's go.mod/pom.xml/
// package.json marker list.
var rootMarkers = []string{
	"compile_commands.json",
	"CMakeLists.txt",
	"conanfile.txt",
	"conanfile.py",
	"WORKSPACE",
	".git",
}

// DetectRoot walks upward from startDir looking for a root marker,
// returning startDir itself if none is found within the filesystem root.
func DetectRoot(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return startDir
	}
	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return startDir
		}
		dir = parent
	}
}
