package main

import "unicode/utf8"

// isBinary reports whether data looks like binary rather than text content.
// A NUL byte or invalid UTF-8 disqualifies a file from the concatenated
// output, mirroring a strict read-as-text failure.
func isBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if !utf8.Valid(data) {
		return true
	}
	for _, b := range data {
		if b == 0 {
			return true
		}
	}
	return false
}
