//go:build unix

package cmd

import "golang.org/x/sys/unix"

// niceness applied by --high-priority; negative values usually need root.
const niceness = -10

func raisePriority() error {
	return unix.Setpriority(unix.PRIO_PROCESS, 0, niceness)
}
