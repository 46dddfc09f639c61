package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteScript writes an executable shell script with body and returns its path.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return WriteScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// WriteTrapStub writes a stub that runs until it receives SIGTERM and then
// exits with exitCode. It creates readyFile once the trap is installed.
func WriteTrapStub(t *testing.T, dir string, name string, readyFile string, exitCode int) string {
	t.Helper()
	body := fmt.Sprintf("trap 'exit %d' TERM\n: > %q\nwhile :; do sleep 0.05; done\n", exitCode, readyFile)
	return WriteScript(t, dir, name, body)
}

// WriteRecorderStub writes a stub that stores its arguments, one per line,
// in argsFile and its environment in envFile, then exits with exitCode.
func WriteRecorderStub(t *testing.T, dir string, name string, argsFile string, envFile string, exitCode int) string {
	t.Helper()
	body := fmt.Sprintf("for arg in \"$@\"; do printf '%%s\\n' \"$arg\"; done > %q\nenv > %q\nexit %d\n", argsFile, envFile, exitCode)
	return WriteScript(t, dir, name, body)
}

// WaitForFile polls until path exists or the attempts are exhausted.
func WaitForFile(t *testing.T, path string) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if _, err := os.Stat(path); err == nil {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", path)
}
