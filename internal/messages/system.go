package messages

// System messages for internal operations.
const (
	// ArtifactNotFoundFmt is the error text for a missing artifact.
	ArtifactNotFoundFmt        = "artifact not found at %s"
	ArtifactCheckFmt           = "check artifact %s: %w"
	ArtifactResolveHomeDirFmt  = "resolve home dir: %w"
	ArtifactInstallDirRequired = "install directory is required"

	// InstructionsTitle opens the acquisition instructions.
	InstructionsTitle         = "# CNCF Tech Advisor MCP Server"
	InstructionsIntro         = "Binary not found. Please install using one of these methods:"
	InstructionsExpectedAtFmt = "Expected location: %s"
	InstructionsDockerHeading = "## Option 1: Docker (Recommended)"
	InstructionsSourceHeading = "## Option 2: Build from Source"
	InstructionsBinaryHeading = "## Option 3: Download Pre-built Binary"
	InstructionsFence         = "```"
	InstructionsFenceBash     = "```bash"
	InstructionsDockerRunFmt  = "docker run -i --rm -p 8080:8080 \\\n  %s"
	InstructionsCloneFmt      = "git clone https://github.com/%s.git"
	InstructionsCdFmt         = "cd %s"
	InstructionsMavenPackage  = "./mvnw package -DskipTests"
	InstructionsVisitFmt      = "Visit: https://github.com/%s/releases"

	LauncherLocatorRequired  = "launcher locator is required"
	LauncherAlreadyStarted   = "launcher already started"
	LauncherSpawnFailedFmt   = "Failed to start server: %v"
	LauncherSpawnErrorFmt    = "start %s: %v"
	LauncherExitedWithFmt    = "Server exited with code: %d"
	LauncherExitErrorFmt     = "server exited with code %d"
	LauncherShuttingDown     = "\nShutting down CNCF Tech Advisor MCP Server..."
	LauncherSignalFailedFmt  = "relay %s to server: %w"
	LauncherWaitFailedFmt    = "wait for server: %w"

	// ConfigReadFailedFmt formats launcher config read failures.
	ConfigReadFailedFmt       = "read %s: %w"
	ConfigInvalidFmt          = "invalid config %s: %w"
	ConfigEmptyJavaCommandFmt = "invalid config %s: java_command must not be blank"

	// ProbeCommandRequired indicates the probe has nothing to run.
	ProbeCommandRequired   = "probe command is required"
	ProbeConnectFailedFmt  = "connect to MCP server: %w"
	ProbeListToolsFmt      = "list tools: %w"
	ProbeTooManyPages      = "too many tools/list pages or cursor loop"
	ProbeInvalidTimeoutFmt = "invalid timeout %s: must be positive"
)
