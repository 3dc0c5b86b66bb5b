//go:build windows

package main

// quietInterrupt does nothing on windows, the console has no ECHOCTL.
func quietInterrupt() func() {
	return func() {}
}
