package launcher

import (
	"errors"
	"os"
	"sync"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/platform"
)

// fakeResolver implements Resolver with fixed results.
type fakeResolver struct {
	kind  platform.ArtifactKind
	path  string
	err   error
	calls int
}

func (r *fakeResolver) Kind() platform.ArtifactKind { return r.kind }
func (r *fakeResolver) Path() string                { return r.path }
func (r *fakeResolver) Resolve() (string, error) {
	r.calls++
	if r.err != nil {
		return "", r.err
	}
	return r.path, nil
}

// fakeProcess exits when exit is called or, with exitOnSignal, when signalled.
type fakeProcess struct {
	mu           sync.Mutex
	signals      []os.Signal
	exitOnSignal bool
	signalCode   int
	signalErr    error
	exitCh       chan waitResult
	once         sync.Once
}

func newFakeProcess() *fakeProcess {
	return &fakeProcess{exitCh: make(chan waitResult, 1)}
}

func (p *fakeProcess) Pid() int { return 4242 }

func (p *fakeProcess) Signal(sig os.Signal) error {
	p.mu.Lock()
	p.signals = append(p.signals, sig)
	exit := p.exitOnSignal
	p.mu.Unlock()
	if p.signalErr != nil {
		return p.signalErr
	}
	if exit {
		p.exit(p.signalCode, nil)
	}
	return nil
}

func (p *fakeProcess) Wait() (int, error) {
	res := <-p.exitCh
	return res.code, res.err
}

func (p *fakeProcess) exit(code int, err error) {
	p.once.Do(func() { p.exitCh <- waitResult{code: code, err: err} })
}

func (p *fakeProcess) received() []os.Signal {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]os.Signal(nil), p.signals...)
}

// fakeSystem records spawns and exposes the registered signal channel.
type fakeSystem struct {
	mu       sync.Mutex
	environ  []string
	proc     *fakeProcess
	startErr error
	specs    []Spec
	notified chan chan<- os.Signal
	stopped  bool
	onStart  func(Spec)
}

func newFakeSystem(proc *fakeProcess) *fakeSystem {
	return &fakeSystem{proc: proc, notified: make(chan chan<- os.Signal, 1)}
}

func (s *fakeSystem) Environ() []string { return append([]string(nil), s.environ...) }

func (s *fakeSystem) Start(spec Spec) (Process, error) {
	s.mu.Lock()
	s.specs = append(s.specs, spec)
	s.mu.Unlock()
	if s.onStart != nil {
		s.onStart(spec)
	}
	if s.startErr != nil {
		return nil, s.startErr
	}
	if s.proc == nil {
		return nil, errors.New("no fake process configured")
	}
	return s.proc, nil
}

func (s *fakeSystem) Notify(c chan<- os.Signal, sigs ...os.Signal) {
	s.notified <- c
}

func (s *fakeSystem) StopNotify(c chan<- os.Signal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
}

func (s *fakeSystem) spawned() []Spec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Spec(nil), s.specs...)
}

func (s *fakeSystem) notifyStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}
