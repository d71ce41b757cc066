package fsops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/idelchi/dirkit/internal/fserr"
	"github.com/idelchi/dirkit/internal/walk"
)

// Remove deletes path and everything below it. A missing path fails with
// fserr.ErrNotFound and nothing is touched. A failure midway leaves whatever
// was already deleted deleted.
func (d Dir) Remove(path string) error {
	path = d.Resolve(path)

	if _, err := os.Lstat(path); err != nil {
		return fserr.Classify("remove", path, err)
	}

	d.Logger.Debug().Str("path", path).Msg("removing")

	if err := os.RemoveAll(path); err != nil {
		return fserr.Classify("remove", path, err)
	}

	return nil
}

// Symlink creates link pointing at target. Like ln -s, target is stored as
// given, so a relative target is relative to the link's directory. The target
// must exist and the link path must be free.
func (d Dir) Symlink(target, link string) error {
	link = d.Resolve(link)

	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(link), target)
	}

	if _, err := os.Stat(resolved); err != nil {
		return fserr.Classify("symlink", resolved, err)
	}

	if _, err := os.Lstat(link); err == nil {
		return &fserr.Error{Op: "symlink", Path: link, Kind: fserr.ErrExists}
	}

	d.Logger.Debug().Str("target", target).Str("link", link).Msg("linking")

	if err := os.Symlink(target, link); err != nil {
		return fserr.Classify("symlink", link, err)
	}

	return nil
}

// Rename gives path a new base name within the same directory.
func (d Dir) Rename(path, newName string) error {
	path = d.Resolve(path)

	if err := validName("rename", newName); err != nil {
		return err
	}

	if _, err := os.Lstat(path); err != nil {
		return fserr.Classify("rename", path, err)
	}

	target := filepath.Join(filepath.Dir(path), newName)
	if _, err := os.Lstat(target); err == nil {
		return &fserr.Error{Op: "rename", Path: target, Kind: fserr.ErrExists}
	}

	d.Logger.Debug().Str("from", path).Str("to", target).Msg("renaming")

	if err := os.Rename(path, target); err != nil {
		return fserr.Classify("rename", path, err)
	}

	return nil
}

// Move moves src to dst. If dst is an existing directory, src is moved into it.
// Moves across devices fall back to copy and remove.
func (d Dir) Move(src, dst string) error {
	src = d.Resolve(src)
	dst = d.destination(src, d.Resolve(dst))

	if _, err := os.Lstat(src); err != nil {
		return fserr.Classify("move", src, err)
	}

	d.Logger.Debug().Str("from", src).Str("to", dst).Msg("moving")

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	if !errors.Is(err, syscall.EXDEV) {
		return fserr.Classify("move", src, err)
	}

	d.Logger.Debug().Str("from", src).Msg("cross-device move, copying instead")

	if err := d.copy(src, dst); err != nil {
		return err
	}

	if err := os.RemoveAll(src); err != nil {
		return fserr.Classify("move", src, err)
	}

	return nil
}

// Copy copies src to dst. Directories are copied recursively. If dst is an
// existing directory, src is copied into it.
func (d Dir) Copy(src, dst string) error {
	src = d.Resolve(src)
	dst = d.destination(src, d.Resolve(dst))

	if _, err := os.Lstat(src); err != nil {
		return fserr.Classify("copy", src, err)
	}

	d.Logger.Debug().Str("from", src).Str("to", dst).Msg("copying")

	return d.copy(src, dst)
}

// destination places src inside dst when dst is an existing directory.
func (d Dir) destination(src, dst string) string {
	if info, err := os.Stat(dst); err == nil && info.IsDir() {
		return filepath.Join(dst, filepath.Base(src))
	}

	return dst
}

func (d Dir) copy(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return fserr.Classify("copy", src, err)
	}

	if !info.IsDir() {
		if sameFile(src, dst) {
			return fserr.Invalid("copy", dst, "source and destination are the same file")
		}

		return copyEntry(src, dst, info)
	}

	if dst == src || strings.HasPrefix(dst, src+string(filepath.Separator)) {
		return fserr.Invalid("copy", dst, "destination is inside the source directory")
	}

	if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return fserr.Classify("copy", dst, err)
	}

	for entry, err := range walk.New(src, nil, walk.WithLogger(d.Logger)).All() {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, entry.Path)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", entry.Path, err)
		}

		target := filepath.Join(dst, rel)

		info, err := os.Lstat(entry.Path)
		if err != nil {
			return fserr.Classify("copy", entry.Path, err)
		}

		if entry.IsDir {
			if err := os.MkdirAll(target, info.Mode().Perm()); err != nil {
				return fserr.Classify("copy", target, err)
			}

			continue
		}

		if err := copyEntry(entry.Path, target, info); err != nil {
			return err
		}
	}

	return nil
}

// sameFile reports whether src and dst resolve to the same existing file.
func sameFile(src, dst string) bool {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false
	}

	dstInfo, err := os.Stat(dst)
	if err != nil {
		return false
	}

	return os.SameFile(srcInfo, dstInfo)
}

// copyEntry copies a single non-directory. Symbolic links are recreated, not followed.
func copyEntry(src, dst string, info fs.FileInfo) error {
	if info.Mode()&fs.ModeSymlink != 0 {
		target, err := os.Readlink(src)
		if err != nil {
			return fserr.Classify("copy", src, err)
		}

		if err := os.Symlink(target, dst); err != nil {
			return fserr.Classify("copy", dst, err)
		}

		return nil
	}

	if !info.Mode().IsRegular() {
		return fserr.Invalid("copy", src, "not a regular file")
	}

	in, err := os.Open(src)
	if err != nil {
		return fserr.Classify("copy", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fserr.Classify("copy", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()

		return fmt.Errorf("copying %q to %q: %w", src, dst, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", dst, err)
	}

	return nil
}
