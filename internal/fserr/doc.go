// Package fserr defines the error taxonomy shared by the walker and the
// filesystem helpers: not found, permission denied, invalid argument and
// already exists.
package fserr
