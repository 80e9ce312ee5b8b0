//go:build !windows

package store

// hideFile is a no-op outside Windows; name the output file with a leading dot instead.
func hideFile(string) {}
