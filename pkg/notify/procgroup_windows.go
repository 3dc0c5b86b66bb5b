//go:build windows

package notify

import "os/exec"

// killGroupOnCancel keeps the default cancellation on windows, only the script is killed.
func killGroupOnCancel(*exec.Cmd) {}
