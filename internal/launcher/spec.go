package launcher

import (
	"path/filepath"
	"strings"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/config"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/env"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/platform"
)

// Spec is everything needed to spawn the server. It is built once per Start
// and not modified after the process is created.
type Spec struct {
	Command      string
	Args         []string
	Env          []string
	InheritStdio bool
}

// BuildSpec selects the run command for kind and freezes the environment.
// Native artifacts run directly; archives run as `<java> -jar <path>`.
func BuildSpec(kind platform.ArtifactKind, path string, environ []string, opts SpecOptions) Spec {
	spec := Spec{
		Env:          env.Build(environ, opts.DefaultLogLevel),
		InheritStdio: true,
	}
	if kind.IsNative() {
		spec.Command = path
		spec.Args = []string{}
		return spec
	}
	spec.Command = Interpreter(environ, opts.JavaCommand, opts.GOOS)
	spec.Args = []string{"-jar", path}
	return spec
}

// SpecOptions carries the configurable parts of a Spec.
type SpecOptions struct {
	// DefaultLogLevel is used when CNCF_ADVISOR_LOG_LEVEL is unset.
	DefaultLogLevel string
	// JavaCommand overrides interpreter discovery when non-empty.
	JavaCommand string
	// GOOS selects the interpreter file name under JAVA_HOME.
	GOOS string
}

// Interpreter returns the java command: an explicit command, else
// $JAVA_HOME/bin/java, else "java" from PATH.
func Interpreter(environ []string, javaCommand string, goos string) string {
	if javaCommand != "" {
		return javaCommand
	}
	if home, ok := env.Get(environ, env.JavaHome); ok && strings.TrimSpace(home) != "" {
		name := config.DefaultJavaCommand
		if goos == "windows" {
			name += ".exe"
		}
		return filepath.Join(strings.TrimSpace(home), "bin", name)
	}
	return config.DefaultJavaCommand
}
