package fserr

import (
	"errors"
	"fmt"
	"io/fs"
)

// Error kinds. Match them with errors.Is.
var (
	// ErrNotFound reports a missing path, or a non-directory where a directory was required.
	ErrNotFound = errors.New("not found")
	// ErrPermission reports missing rights to read or modify a path.
	ErrPermission = errors.New("permission denied")
	// ErrInvalidArgument reports a malformed name, extension or count.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrExists reports a destination that is already taken.
	ErrExists = errors.New("already exists")
)

// Error describes a failed filesystem operation.
type Error struct {
	// Op is the operation, e.g. "remove".
	Op string
	// Path is the path the operation failed on.
	Path string
	// Kind is one of the Err* sentinels.
	Kind error
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Kind)
	}

	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// NotFound returns an ErrNotFound error for path.
func NotFound(op, path string, cause error) error {
	return &Error{Op: op, Path: path, Kind: ErrNotFound, Err: cause}
}

// Invalid returns an ErrInvalidArgument error with a reason.
func Invalid(op, path, reason string) error {
	return &Error{Op: op, Path: path, Kind: ErrInvalidArgument, Err: errors.New(reason)}
}

// Classify maps err onto the taxonomy. Errors that fit no kind are returned
// wrapped with op and path only.
func Classify(op, path string, err error) error {
	if err == nil {
		return nil
	}

	var fsErr *Error
	if errors.As(err, &fsErr) {
		return err
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &Error{Op: op, Path: path, Kind: ErrNotFound, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &Error{Op: op, Path: path, Kind: ErrPermission, Err: err}
	case errors.Is(err, fs.ErrExist):
		return &Error{Op: op, Path: path, Kind: ErrExists, Err: err}
	default:
		return fmt.Errorf("%s %q: %w", op, path, err)
	}
}
