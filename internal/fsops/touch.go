package fsops

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/idelchi/dirkit/internal/fserr"
)

// validName rejects anything that is not a plain base name.
func validName(op, name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fserr.Invalid(op, name, "name is empty")
	case name == "." || name == "..":
		return fserr.Invalid(op, name, "name must not be . or ..")
	case strings.ContainsAny(name, `/\`):
		return fserr.Invalid(op, name, "name must not contain path separators")
	}

	return nil
}

// TouchNames returns the file names Touch would create.
func TouchNames(name, ext string, count int) ([]string, error) {
	if err := validName("touch", name); err != nil {
		return nil, err
	}

	if count < 1 {
		return nil, fserr.Invalid("touch", name, "count must be at least 1, got "+strconv.Itoa(count))
	}

	if ext != "" {
		if !strings.HasPrefix(ext, ".") || len(ext) == 1 {
			return nil, fserr.Invalid("touch", ext, "extension must start with '.' followed by a name")
		}

		if strings.ContainsAny(ext, `/\`) {
			return nil, fserr.Invalid("touch", ext, "extension must not contain path separators")
		}
	}

	if count == 1 {
		return []string{name + ext}, nil
	}

	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		names = append(names, name+strconv.Itoa(i)+ext)
	}

	return names, nil
}

// Touch creates count empty files named <name><i><ext> in the working
// directory, or <name><ext> when count is 1. Existing files are left as they are.
// It returns the paths it created or found.
func (d Dir) Touch(name, ext string, count int) ([]string, error) {
	names, err := TouchNames(name, ext, count)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(names))

	for _, n := range names {
		path := filepath.Join(d.WorkDir, n)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
		if err != nil {
			return paths, fserr.Classify("touch", path, err)
		}

		if err := f.Close(); err != nil {
			return paths, fserr.Classify("touch", path, err)
		}

		d.Logger.Debug().Str("path", path).Msg("touched")

		paths = append(paths, path)
	}

	return paths, nil
}
