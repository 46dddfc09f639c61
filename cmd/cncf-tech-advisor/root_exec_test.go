//go:build unix

package main

import (
	"bytes"
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/artifact"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/platform"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/testutil"
)

func TestRunServer_PropagatesServerExitCode(t *testing.T) {
	for _, want := range []int{0, 5} {
		dir := stubInstall(t, platform.NativeExecutable)
		testutil.WriteStubWithExit(t, dir, artifact.Filename(platform.NativeExecutable, runtime.GOOS), want)

		var stderr bytes.Buffer
		code := 0
		runMain([]string{"cncf-tech-advisor"}, io.Discard, &stderr, func(c int) { code = c })
		assert.Equal(t, want, code)
		if want != 0 {
			assert.Contains(t, stderr.String(), "Server exited with code: 5")
		}
	}
}

func TestRunServer_JarUsesConfiguredJava(t *testing.T) {
	dir := stubInstall(t, platform.InterpretedArchive)
	testutil.WriteScript(t, dir, artifact.Filename(platform.InterpretedArchive, runtime.GOOS), "")
	java := testutil.WriteStubWithExit(t, dir, "fake-java", 4)
	writeConfig(t, dir, "java_command = \""+java+"\"\n")

	code := 0
	runMain([]string{"cncf-tech-advisor"}, io.Discard, io.Discard, func(c int) { code = c })
	assert.Equal(t, 4, code)
}
