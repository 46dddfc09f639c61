//go:build unix

package launcher

import (
	"os"

	"golang.org/x/sys/unix"
)

// relayedSignals are the launcher signals that trigger Stop.
var relayedSignals = []os.Signal{unix.SIGINT, unix.SIGTERM}

// terminateSignal is sent to the server on Stop.
var terminateSignal os.Signal = unix.SIGTERM
