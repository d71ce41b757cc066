package walk

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/idelchi/dirkit/internal/fserr"
)

// Entry is one filesystem object as observed when it was visited.
type Entry struct {
	// Path is the root joined with the entry's root-relative path.
	Path string `json:"path"`
	// IsDir reports whether the entry is a directory.
	IsDir bool `json:"is_dir"`
	// Size is the size in bytes of a regular file, 0 for anything else.
	Size uint64 `json:"size"`
}

// Option configures a Walker.
type Option func(*Walker)

// WithLogger sets the logger used for debug output.
func WithLogger(log zerolog.Logger) Option {
	return func(w *Walker) {
		w.log = log
	}
}

// WithMaxDepth limits how deep the walk descends. Children of the root are at
// depth 1. Zero means unlimited.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		w.maxDepth = depth
	}
}

// Walker walks a single directory tree. It holds no state between runs, so
// every call to All re-reads the filesystem.
type Walker struct {
	root     string
	exclude  Excludes
	maxDepth int
	log      zerolog.Logger
}

// New creates a Walker for root. A nil exclude excludes nothing.
func New(root string, exclude Excludes, opts ...Option) *Walker {
	if root == "" {
		root = "."
	}

	w := &Walker{
		root:    filepath.Clean(root),
		exclude: exclude,
		log:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Walk is shorthand for New(root, exclude).All().
func Walk(root string, exclude Excludes) iter.Seq2[Entry, error] {
	return New(root, exclude).All()
}

// frame is a directory whose children are being visited.
type frame struct {
	path    string
	depth   int
	entries []fs.DirEntry
	next    int
}

// All returns the sequence of entries below the root, depth-first, in
// directory-enumeration order. The root itself is not part of the sequence.
//
// A missing, non-directory or unreadable root yields a single error matching
// fserr.ErrNotFound. A subdirectory that cannot be read yields an error
// (matching fserr.ErrPermission when access is denied) and is skipped.
// Stopping the range loop early stops the walk.
func (w *Walker) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		entries, err := w.openRoot()
		if err != nil {
			yield(Entry{}, err)

			return
		}

		stack := []*frame{{path: w.root, entries: entries}}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.next >= len(top.entries) {
				stack = stack[:len(stack)-1]

				continue
			}

			d := top.entries[top.next] //nolint:varnamelen // d is standard for DirEntry
			top.next++

			path := filepath.Join(top.path, d.Name())

			if d.IsDir() && w.exclude.Match(d.Name()) {
				w.log.Debug().Str("path", filepath.ToSlash(path)).Msg("excluding directory")

				continue
			}

			entry := Entry{Path: path, IsDir: d.IsDir()}
			if d.Type().IsRegular() {
				entry.Size = w.size(path, d)
			}

			if !yield(entry, nil) {
				return
			}

			if !d.IsDir() {
				continue
			}

			depth := top.depth + 1
			if w.maxDepth > 0 && depth >= w.maxDepth {
				continue
			}

			children, err := readDir(path)
			if err != nil {
				w.log.Debug().Err(err).Str("path", filepath.ToSlash(path)).Msg("skipping unreadable directory")

				if !yield(Entry{}, fserr.Classify("read directory", path, err)) {
					return
				}
			}

			if len(children) > 0 {
				stack = append(stack, &frame{path: path, depth: depth, entries: children})
			}
		}
	}
}

// openRoot validates the root and lists its children.
func (w *Walker) openRoot() ([]fs.DirEntry, error) {
	info, err := os.Stat(w.root)
	if err != nil {
		return nil, fserr.NotFound("walk", w.root, err)
	}

	if !info.IsDir() {
		return nil, fserr.NotFound("walk", w.root, errors.New("not a directory"))
	}

	entries, err := readDir(w.root)
	if err != nil {
		return nil, fserr.NotFound("walk", w.root, err)
	}

	return entries, nil
}

// size returns the file size, or 0 if it cannot be determined.
func (w *Walker) size(path string, d fs.DirEntry) uint64 {
	info, err := d.Info()
	if err != nil {
		w.log.Debug().Err(err).Str("path", filepath.ToSlash(path)).Msg("recording zero size")

		return 0
	}

	if info.Size() < 0 {
		return 0
	}

	return uint64(info.Size())
}

// readDir lists a directory without sorting. Entries read before an error
// are returned along with it.
func readDir(path string) ([]fs.DirEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}
