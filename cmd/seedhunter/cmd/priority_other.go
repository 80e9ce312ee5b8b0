//go:build !unix && !windows

package cmd

import "errors"

func raisePriority() error {
	return errors.New("process priority is not supported on this platform")
}
