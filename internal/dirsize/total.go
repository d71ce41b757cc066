package dirsize

import (
	"errors"

	"github.com/idelchi/dirkit/internal/fserr"
	"github.com/idelchi/dirkit/internal/walk"
)

// Total returns the cumulative size of all regular files below root.
// Exclusions never apply: the result always covers the full subtree.
//
// A missing or non-directory root fails with fserr.ErrNotFound. Subtrees that
// cannot be read are left out of the sum and reported as a *PartialError
// alongside the partial total.
func Total(root string, opts ...walk.Option) (uint64, error) {
	var (
		total uint64
		seen  bool
		errs  []error
	)

	for entry, err := range walk.New(root, nil, opts...).All() {
		if err != nil {
			if !seen && errors.Is(err, fserr.ErrNotFound) {
				return 0, err
			}

			errs = append(errs, err)

			continue
		}

		seen = true

		if !entry.IsDir {
			total += entry.Size
		}
	}

	if len(errs) > 0 {
		return total, &PartialError{Errs: errs}
	}

	return total, nil
}

// PartialError lists the subtrees Total could not read.
type PartialError struct {
	Errs []error
}

func (e *PartialError) Error() string {
	return errors.Join(e.Errs...).Error()
}

// Unwrap returns the per-subtree errors.
func (e *PartialError) Unwrap() []error {
	return e.Errs
}
