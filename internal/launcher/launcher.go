// Package launcher starts the server artifact as a child process with
// inherited stdio and supervises it until it exits.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/artifact"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/messages"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/platform"
)

// Resolver locates the artifact. *artifact.Locator implements it.
type Resolver interface {
	Kind() platform.ArtifactKind
	Path() string
	Resolve() (string, error)
}

// State is the launcher lifecycle position.
type State int

const (
	// NotStarted is the initial state.
	NotStarted State = iota
	// Running means a server process is alive and owned by the launcher.
	Running
	// Terminated is final; a launcher never runs a second process.
	Terminated
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Options configures a Launcher.
type Options struct {
	// System defaults to RealSystem.
	System   System
	Resolver Resolver
	// Stderr receives user-facing diagnostics. Defaults to os.Stderr.
	Stderr io.Writer
	// Logger receives debug traces. Defaults to a discarding logger.
	Logger *log.Logger
	// DefaultLogLevel and JavaCommand come from launcher.toml.
	DefaultLogLevel string
	JavaCommand     string
	// GOOS defaults to runtime.GOOS.
	GOOS string
}

// Launcher owns at most one server process for its lifetime.
type Launcher struct {
	sys      System
	resolver Resolver
	stderr   io.Writer
	logger   *log.Logger
	specOpts SpecOptions

	mu       sync.Mutex
	state    State
	started  bool
	proc     Process
	stopping bool
}

type waitResult struct {
	code int
	err  error
}

// New validates opts and returns a Launcher in the NotStarted state.
func New(opts Options) (*Launcher, error) {
	if opts.Resolver == nil {
		return nil, errors.New(messages.LauncherLocatorRequired)
	}
	sys := opts.System
	if sys == nil {
		sys = RealSystem{}
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	return &Launcher{
		sys:      sys,
		resolver: opts.Resolver,
		stderr:   stderr,
		logger:   logger,
		specOpts: SpecOptions{
			DefaultLogLevel: opts.DefaultLogLevel,
			JavaCommand:     opts.JavaCommand,
			GOOS:            goos,
		},
	}, nil
}

// State returns the current lifecycle state.
func (l *Launcher) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Start resolves the artifact, spawns it, and blocks until it exits.
//
// A missing artifact writes acquisition instructions to stderr and returns an
// error matching artifact.ErrArtifactNotFound; a spawn failure returns
// *SpawnError; a non-zero exit returns *ExitError with the server's code.
// Interrupt and terminate signals received while Start is running, and
// cancellation of ctx, call Stop; Start still waits for the exit.
func (l *Launcher) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return ErrAlreadyStarted
	}
	l.started = true
	l.mu.Unlock()

	path, err := l.resolver.Resolve()
	if err != nil {
		if errors.Is(err, artifact.ErrArtifactNotFound) {
			artifact.WriteInstructions(l.stderr, l.resolver.Path())
		}
		l.setState(Terminated)
		return err
	}

	spec := BuildSpec(l.resolver.Kind(), path, l.sys.Environ(), l.specOpts)
	l.logger.Debug("resolved artifact", "path", path, "kind", l.resolver.Kind(), "command", spec.Command, "args", spec.Args)

	// Registered before spawning so a signal that races the spawn is delivered once the handle exists.
	sigCh := make(chan os.Signal, len(relayedSignals))
	l.sys.Notify(sigCh, relayedSignals...)
	defer l.sys.StopNotify(sigCh)

	proc, err := l.sys.Start(spec)
	if err != nil {
		_, _ = fmt.Fprintf(l.stderr, messages.LauncherSpawnFailedFmt+"\n", err)
		l.setState(Terminated)
		return &SpawnError{Command: spec.Command, Err: err}
	}

	l.mu.Lock()
	l.proc = proc
	l.state = Running
	l.mu.Unlock()
	l.logger.Debug("server started", "pid", proc.Pid())

	done := make(chan waitResult, 1)
	go func() {
		code, err := proc.Wait()
		done <- waitResult{code: code, err: err}
	}()

	ctxDone := ctx.Done()
	for {
		select {
		case res := <-done:
			l.release()
			return l.handleExit(res)
		case sig := <-sigCh:
			l.logger.Debug("received signal", "signal", sig)
			l.Stop()
		case <-ctxDone:
			ctxDone = nil
			l.logger.Debug("context done", "err", ctx.Err())
			l.Stop()
		}
	}
}

// Stop asks the running server to terminate. It is a no-op when no server is
// running or a stop was already requested, and it does not wait for the exit.
// There is no forced-kill escalation: a server that ignores the signal keeps
// Start blocked.
func (l *Launcher) Stop() {
	l.mu.Lock()
	proc := l.proc
	if proc == nil || l.stopping {
		l.mu.Unlock()
		return
	}
	l.stopping = true
	l.mu.Unlock()

	_, _ = fmt.Fprintln(l.stderr, messages.LauncherShuttingDown)
	if err := proc.Signal(terminateSignal); err != nil && !errors.Is(err, os.ErrProcessDone) {
		l.logger.Warn(fmt.Errorf(messages.LauncherSignalFailedFmt, terminateSignal, err).Error())
		return
	}
	l.logger.Debug("relayed signal", "signal", terminateSignal, "pid", proc.Pid())
}

func (l *Launcher) handleExit(res waitResult) error {
	if res.err != nil {
		return fmt.Errorf(messages.LauncherWaitFailedFmt, res.err)
	}
	l.logger.Debug("server exited", "code", res.code)
	if res.code == 0 {
		return nil
	}
	_, _ = fmt.Fprintf(l.stderr, messages.LauncherExitedWithFmt+"\n", res.code)
	return &ExitError{Code: res.code}
}

// release drops the process handle once its exit has been observed.
func (l *Launcher) release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.proc = nil
	l.state = Terminated
}

func (l *Launcher) setState(state State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = state
}
