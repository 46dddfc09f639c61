package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/artifact"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/config"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/launcher"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/messages"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/platform"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/probe"
)

const defaultTimeout = 30 * time.Second

// Seams for tests.
var (
	installDir = config.InstallDir
	detectKind = platform.DetectCurrent
	runProbe   = probe.Run
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	cmd := newRootCmd()
	cmd.SetArgs(args[1:])
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
	}
}

// newRootCmd probes the installed server artifact, or the command given
// after "--", with the same environment the launcher would use.
func newRootCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:           messages.ProbeUse,
		Short:         messages.ProbeShort,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if timeout <= 0 {
				return fmt.Errorf(messages.ProbeInvalidTimeoutFmt, timeout)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			spec, err := resolveSpec(args, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			transport, err := probe.CommandTransport(ctx, spec, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			res, err := runProbe(ctx, transport)
			if err != nil {
				return err
			}
			probe.Write(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", defaultTimeout, messages.ProbeTimeoutUsage)
	return cmd
}

// resolveSpec returns the explicit command when args are given, otherwise
// the installed artifact's launch spec.
func resolveSpec(args []string, stderr io.Writer) (launcher.Spec, error) {
	dir, err := installDir()
	if err != nil {
		return launcher.Spec{}, err
	}
	cfg, err := config.Load(config.DefaultPaths(dir).ConfigPath)
	if err != nil {
		return launcher.Spec{}, err
	}
	opts := launcher.SpecOptions{
		DefaultLogLevel: cfg.DefaultLogLevel,
		JavaCommand:     cfg.JavaCommand,
		GOOS:            runtime.GOOS,
	}
	if len(args) > 0 {
		spec := launcher.BuildSpec(platform.NativeExecutable, args[0], os.Environ(), opts)
		spec.Args = append(spec.Args, args[1:]...)
		return spec, nil
	}

	locator, err := artifact.NewLocator(dir, detectKind(), runtime.GOOS)
	if err != nil {
		return launcher.Spec{}, err
	}
	path, err := locator.Resolve()
	if err != nil {
		var notFound *artifact.NotFoundError
		if errors.As(err, &notFound) {
			artifact.WriteInstructions(stderr, notFound.Path)
		}
		return launcher.Spec{}, err
	}
	return launcher.BuildSpec(locator.Kind(), path, os.Environ(), opts), nil
}
