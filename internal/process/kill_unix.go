//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// isolate starts cmd as the leader of a new process group.
func isolate(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// KillProcessGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID).
func KillProcessGroup(pid int) {
	// Best-effort; the group may already be gone.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
