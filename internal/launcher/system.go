package launcher

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// Process is the handle to a started server.
type Process interface {
	Pid() int
	Signal(sig os.Signal) error
	// Wait blocks until exit and returns the exit code. The error is non-nil
	// only when waiting itself failed.
	Wait() (int, error)
}

// System abstracts OS operations needed by the launcher so tests can
// substitute a fake spawner and signal source.
type System interface {
	Environ() []string
	Start(spec Spec) (Process, error)
	Notify(c chan<- os.Signal, sigs ...os.Signal)
	StopNotify(c chan<- os.Signal)
}

// RealSystem implements System using os/exec and os/signal.
type RealSystem struct{}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// Start spawns spec.Command. With InheritStdio the child shares the
// launcher's stdin, stdout, and stderr file descriptors directly.
func (RealSystem) Start(spec Spec) (Process, error) {
	cmd := exec.Command(spec.Command, spec.Args...)
	cmd.Env = spec.Env
	if spec.InheritStdio {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}

// Notify relays incoming signals to c.
func (RealSystem) Notify(c chan<- os.Signal, sigs ...os.Signal) {
	signal.Notify(c, sigs...)
}

// StopNotify stops relaying signals to c.
func (RealSystem) StopNotify(c chan<- os.Signal) {
	signal.Stop(c)
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *execProcess) Signal(sig os.Signal) error {
	if sig == os.Kill {
		return p.cmd.Process.Kill()
	}
	return p.cmd.Process.Signal(sig)
}

func (p *execProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitCode(exitErr), nil
	}
	return 0, err
}

// exitCode maps a process exit to a shell-style code: the exit status, or
// 128+signal when the process was killed by a signal.
func exitCode(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return 1
}
