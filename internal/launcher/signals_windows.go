//go:build windows

package launcher

import (
	"os"
	"syscall"
)

var relayedSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// Windows cannot deliver SIGTERM to another process; terminating it is the closest equivalent.
var terminateSignal os.Signal = os.Kill
