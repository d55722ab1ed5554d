package main

// WalkEntry holds information about one filesystem node discovered during a
// traversal. Paths are converted to root-relative form immediately so that
// downstream comparison, sorting, and display never see the absolute prefix.
type WalkEntry struct {
	AbsPath   string // absolute path on disk
	RelPath   string // slash-separated path relative to the scan root
	IsDir     bool
	IsRegular bool // regular file; symlinks and other node types are neither
}
