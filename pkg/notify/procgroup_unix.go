//go:build !windows

package notify

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// termGrace is how long a script group gets between SIGTERM and SIGKILL.
const termGrace = 100 * time.Millisecond

// killGroupOnCancel runs cmd in its own process group and makes context cancellation
// terminate the whole group, not just the script. Must be called before cmd starts.
func killGroupOnCancel(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		pgid := -cmd.Process.Pid
		if err := syscall.Kill(pgid, syscall.SIGTERM); err != nil {
			if errors.Is(err, syscall.ESRCH) {
				return os.ErrProcessDone
			}
			return fmt.Errorf("terminate process group %d: %w", -pgid, err)
		}

		time.Sleep(termGrace)
		if err := syscall.Kill(pgid, syscall.SIGKILL); err != nil && !errors.Is(err, syscall.ESRCH) {
			return fmt.Errorf("kill process group %d: %w", -pgid, err)
		}
		return nil
	}
}
