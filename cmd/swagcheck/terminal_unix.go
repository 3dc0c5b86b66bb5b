//go:build !windows

package main

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// quietInterrupt clears ECHOCTL so interrupting a run doesn't print "^C" into the
// progress output. The returned func restores the terminal.
func quietInterrupt() func() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}
	}

	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return func() {}
	}

	saved := *termios
	if termios.Lflag&unix.ECHOCTL == 0 {
		return func() {}
	}
	termios.Lflag &^= unix.ECHOCTL
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, termios); err != nil {
		return func() {}
	}

	return func() {
		_ = unix.IoctlSetTermios(fd, ioctlWriteTermios, &saved)
	}
}
