// Package dirsize computes and presents the size of directory trees.
//
// Total sums every regular file below a root using the walk package.
// Format renders a byte count the way the shell helpers always printed it.
// Usage attributes sizes to the direct children of a root using fastwalk,
// and reports the largest of them.
package dirsize
