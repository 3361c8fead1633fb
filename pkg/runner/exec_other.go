//go:build !linux

package runner

import (
	"os"
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

func interpretExit(state *os.ProcessState) (exit Exit, ok bool) {
	if state == nil {
		return Exit{}, false
	}

	code := int32(state.ExitCode())
	if code < 0 {
		// signaled or otherwise indeterminate on this platform
		return Exit{}, false
	}

	return ExitFromCode(code), true
}
