// Package walk enumerates a directory tree depth-first as a lazy sequence.
//
// Directories whose base name is in the exclusion set are pruned together with
// their whole subtree. Symbolic links are reported as plain entries and never
// followed. Unreadable subdirectories are reported as errors in the sequence
// and the walk continues with their siblings.
package walk
