package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/artifact"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/config"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/env"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/launcher"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/logging"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/messages"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/platform"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/terminal"
)

// Seams for tests.
var (
	installDir      = config.InstallDir
	detectKind      = platform.DetectCurrent
	detectHost      = platform.DetectHost
	stdinIsTerminal = func() bool { return terminal.IsTerminal(os.Stdin) }
	newSystem       = func() launcher.System { return launcher.RealSystem{} }
)

const (
	flagHelp        = "help"
	flagVersion     = "version"
	flagDownloadURL = "download-url"
)

// newRootCmd builds the launcher command. Help, version, and download-url
// write to stdout and never spawn the server; unknown flags and positional
// arguments are ignored.
func newRootCmd() *cobra.Command {
	var showVersion, showDownloadURL bool
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case showVersion:
				writeVersion(cmd.Context(), cmd.OutOrStdout())
				return nil
			case showDownloadURL:
				writeDownloadURL(cmd.OutOrStdout())
				return nil
			}
			return runServer(cmd.Context(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.BoolP(flagHelp, "h", false, messages.FlagHelpUsage)
	flags.BoolVarP(&showVersion, flagVersion, "v", false, messages.FlagVersionUsage)
	flags.BoolVar(&showDownloadURL, flagDownloadURL, false, messages.FlagDownloadURLUsage)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		writeHelp(c.OutOrStdout())
	})
	return cmd
}

func writeHelp(w io.Writer) {
	_, _ = fmt.Fprintf(w, messages.HelpFmt, config.Repository)
}

func writeVersion(ctx context.Context, w io.Writer) {
	if ctx == nil {
		ctx = context.Background()
	}
	key := platform.Current()
	native := messages.VersionNativeNo
	if platform.DefaultSupportMatrix.Supports(key) {
		native = messages.VersionNativeYes
	}
	_, _ = fmt.Fprintf(w, messages.VersionBannerFmt, config.Version)
	_, _ = fmt.Fprintf(w, messages.VersionPlatformFmt, key.OS, key.Arch)
	_, _ = fmt.Fprintf(w, messages.VersionHostFmt, hostLine(detectHost(ctx)))
	_, _ = fmt.Fprintf(w, messages.VersionRuntimeFmt, runtime.Version())
	_, _ = fmt.Fprintf(w, messages.VersionLauncherFmt, versionString())
	_, _ = fmt.Fprintf(w, messages.VersionNativeFmt, native)
	_, _ = fmt.Fprintf(w, messages.VersionRepositoryFmt, config.Repository)
	_, _ = fmt.Fprintf(w, messages.VersionDocsFmt, config.Repository)
}

func hostLine(info platform.HostInfo) string {
	switch {
	case info.IsZero():
		return messages.VersionHostUnknown
	case info.Version == "":
		return fmt.Sprintf(messages.VersionHostNoVersion, info.Platform, info.Family)
	default:
		return fmt.Sprintf(messages.VersionHostDistroFmt, info.Platform, info.Version, info.Family)
	}
}

func writeDownloadURL(w io.Writer) {
	_, _ = fmt.Fprint(w, messages.DownloadTitle)
	_, _ = fmt.Fprint(w, messages.DownloadBinariesHdr)
	_, _ = fmt.Fprintf(w, messages.DownloadFromFmt, config.Repository)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprint(w, messages.DownloadDockerHdr)
	_, _ = fmt.Fprintf(w, messages.DownloadPullFmt, config.DockerImage)
}

// runServer locates the artifact for this platform and supervises it until exit.
func runServer(ctx context.Context, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	dir, err := installDir()
	if err != nil {
		return err
	}
	paths := config.DefaultPaths(dir)
	cfg, err := config.Load(paths.ConfigPath)
	if err != nil {
		return err
	}

	sys := newSystem()
	level := cfg.DefaultLogLevel
	if override, ok := env.Get(sys.Environ(), env.LogLevelOverride); ok && override != "" {
		level = override
	}
	logger := logging.New(stderr, level)

	kind := detectKind()
	locator, err := artifact.NewLocator(dir, kind, runtime.GOOS)
	if err != nil {
		return err
	}
	logger.Debug("launcher configured", "install_dir", dir, "kind", kind, "config", paths.ConfigPath)

	if stdinIsTerminal() {
		_, _ = fmt.Fprintln(stderr, messages.InteractiveHint)
	}

	l, err := launcher.New(launcher.Options{
		System:          sys,
		Resolver:        locator,
		Stderr:          stderr,
		Logger:          logger,
		DefaultLogLevel: cfg.DefaultLogLevel,
		JavaCommand:     cfg.JavaCommand,
	})
	if err != nil {
		return err
	}
	return l.Start(ctx)
}
