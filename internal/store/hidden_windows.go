//go:build windows

package store

import "golang.org/x/sys/windows"

// hideFile sets the hidden attribute on a file (Windows only)
func hideFile(filename string) {
	filenamePtr, err := windows.UTF16PtrFromString(filename)
	if err == nil {
		_ = windows.SetFileAttributes(filenamePtr, windows.FILE_ATTRIBUTE_HIDDEN)
	}
}
