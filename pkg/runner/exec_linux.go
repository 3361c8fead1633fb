package runner

import (
	"os"
	"syscall"
)

// sysProcAttr puts the re-executed child in its own process group, so the
// stop protocol's signals reach it deterministically even after it has
// exec'd into the real target command.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

// interpretExit distinguishes a normal exit code from a terminating signal
// using standard Unix wait(2) semantics. ok is false when neither can be
// determined, the "neither known" sub-case from the data model.
func interpretExit(state *os.ProcessState) (exit Exit, ok bool) {
	if state == nil {
		return Exit{}, false
	}

	ws, isWaitStatus := state.Sys().(syscall.WaitStatus)
	if !isWaitStatus {
		return Exit{}, false
	}

	switch {
	case ws.Exited():
		return ExitFromCode(int32(ws.ExitStatus())), true
	case ws.Signaled():
		return ExitFromSignal(int32(ws.Signal())), true
	default:
		return Exit{}, false
	}
}
