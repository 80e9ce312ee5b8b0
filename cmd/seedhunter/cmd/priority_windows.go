//go:build windows

package cmd

import "golang.org/x/sys/windows"

// raisePriority moves the process to HIGH_PRIORITY_CLASS (not REALTIME, which
// can starve the system), falling back to ABOVE_NORMAL_PRIORITY_CLASS.
func raisePriority() error {
	h := windows.CurrentProcess()
	if err := windows.SetPriorityClass(h, windows.HIGH_PRIORITY_CLASS); err != nil {
		return windows.SetPriorityClass(h, windows.ABOVE_NORMAL_PRIORITY_CLASS)
	}
	return nil
}
