package walk

import (
	"runtime"
	"strings"
)

// DefaultExcludes contains the directory names pruned when no exclusion set is given.
//
//nolint:gochecknoglobals // Config constant
var DefaultExcludes = []string{"node_modules", ".next", ".pnpm-store"}

// Excludes is a set of base names. Only the final path component is matched.
type Excludes map[string]struct{}

// foldCase reports whether the host filesystem compares names case-insensitively by default.
func foldCase() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}

func normalize(name string) string {
	if foldCase() {
		return strings.ToLower(name)
	}

	return name
}

// NewExcludes builds an exclusion set. Blank names are dropped.
func NewExcludes(names ...string) Excludes {
	set := make(Excludes, len(names))

	for _, name := range names {
		name = strings.TrimSpace(strings.Trim(name, "'\""))
		if name == "" {
			continue
		}

		set[normalize(name)] = struct{}{}
	}

	return set
}

// Match reports whether name is excluded.
func (e Excludes) Match(name string) bool {
	if len(e) == 0 {
		return false
	}

	_, ok := e[normalize(name)]

	return ok
}

// Names returns the members of the set in no particular order.
func (e Excludes) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}

	return names
}
