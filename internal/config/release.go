package config

// Release metadata for the server artifact this launcher runs.
const (
	Version        = "1.0.0"
	Repository     = "jeanlopezxyz/cncf-tech-advisor-mcp"
	ProjectName    = "cncf-tech-advisor-mcp"
	DockerImage    = "ghcr.io/jeanlopezxyz/cncf-tech-advisor-mcp"
	JarName        = "cncf-tech-advisor-mcp-1.0.0-runner.jar"
	NativeName     = "cncf-tech-advisor-mcp-1.0.0-runner"
	InstallDirName = ".cncf-tech-advisor-mcp"
	ConfigFileName = "launcher.toml"

	// DefaultLogLevel is forced into the server when nothing overrides it.
	DefaultLogLevel = "INFO"
	// DefaultJavaCommand runs the archive when JAVA_HOME is unset.
	DefaultJavaCommand = "java"
)
