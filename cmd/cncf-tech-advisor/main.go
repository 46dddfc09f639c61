package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/artifact"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/config"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/launcher"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/messages"
)

var executeFunc = execute

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = config.Version
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// exitCoder is implemented by errors that carry the server's exit code.
type exitCoder interface {
	ExitCode() int
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and exits with the server's code on failure.
// Panics are reported as uncaught exceptions and exit 1.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(stderr, messages.UncaughtExceptionFmt+"\n", r)
			exit(1)
		}
	}()
	if err := executeFunc(args, stdout, stderr); err != nil {
		exit(exitCodeFor(err, stderr))
	}
}

// exitCodeFor maps err to a process exit code. Errors the launcher already
// reported on stderr are not printed again.
func exitCodeFor(err error, stderr io.Writer) int {
	var coder exitCoder
	if errors.As(err, &coder) {
		if code := coder.ExitCode(); code > 0 {
			return code
		}
		return 1
	}
	var spawnErr *launcher.SpawnError
	if errors.As(err, &spawnErr) || errors.Is(err, artifact.ErrArtifactNotFound) {
		return 1
	}
	_, _ = fmt.Fprintln(stderr, err)
	return 1
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
