// Package fsops implements the small filesystem helpers of the toolkit: copy,
// move, rename, forced removal, symlink creation and batch file creation.
//
// Every helper is a method on Dir, which carries the working directory that
// relative arguments are resolved against. Nothing in this package reads or
// changes the process working directory.
package fsops
