package fsops

import (
	"path/filepath"

	"github.com/rs/zerolog"
)

// Dir resolves relative paths against an explicit working directory.
type Dir struct {
	// WorkDir is the directory relative paths are resolved against.
	WorkDir string
	// Logger receives debug output.
	Logger zerolog.Logger
}

// New creates a Dir rooted at workDir with logging discarded.
func New(workDir string) Dir {
	return Dir{WorkDir: workDir, Logger: zerolog.Nop()}
}

// Resolve returns path made absolute against the working directory.
func (d Dir) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(d.WorkDir, path)
}
