// Package process manages the process trees of external tools.
package process

import "os/exec"

// Bind ties the lifetime of cmd's whole process tree to its context: cmd is
// started in its own process group and cancellation kills that group.
// cmd must come from exec.CommandContext and not be started yet.
func Bind(cmd *exec.Cmd) {
	isolate(cmd)
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		KillProcessGroup(cmd.Process.Pid)
		return nil
	}
}
