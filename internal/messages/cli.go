package messages

// CLI messages for user-facing commands and static output.
const (
	// RootUse is the CLI command name.
	RootUse = "cncf-tech-advisor"
	// RootShort is the short description for the root command.
	RootShort = "CNCF Tech Advisor MCP Server launcher"

	FlagHelpUsage        = "Show this help message"
	FlagVersionUsage     = "Show version information"
	FlagDownloadURLUsage = "Show download URL for manual installation"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	// VersionBannerFmt is the first line of --version output.
	VersionBannerFmt      = "cncf-tech-advisor-mcp v%s\n"
	VersionPlatformFmt    = "Platform: %s %s\n"
	VersionHostFmt        = "Host: %s\n"
	VersionRuntimeFmt     = "Go: %s\n"
	VersionLauncherFmt    = "Launcher: %s\n"
	VersionNativeFmt      = "Native support: %s\n"
	VersionRepositoryFmt  = "Repository: https://github.com/%s\n"
	VersionDocsFmt        = "Documentation: https://github.com/%s#readme\n"
	VersionNativeYes      = "Yes"
	VersionNativeNo       = "No"
	VersionHostUnknown    = "unknown"
	VersionHostDistroFmt  = "%s %s (%s family)"
	VersionHostNoVersion  = "%s (%s family)"

	// DownloadTitle is the heading of --download-url output.
	DownloadTitle       = "# CNCF Tech Advisor MCP Server Download\n"
	DownloadBinariesHdr = "## Pre-built Binaries\n"
	DownloadFromFmt     = "Download from: https://github.com/%s/releases\n"
	DownloadDockerHdr   = "## Docker Image\n"
	DownloadPullFmt     = "Pull: docker pull %s\n"

	// InteractiveHint is written to stderr when stdin is a terminal.
	InteractiveHint = "cncf-tech-advisor speaks MCP (JSON-RPC) over stdio; configure it as a server in your MCP client instead of typing here. Press Ctrl+C to exit."

	// UncaughtExceptionFmt formats panics recovered at the top level.
	UncaughtExceptionFmt = "Uncaught exception: %v"

	// HelpFmt is the --help text; both placeholders take the repository slug.
	HelpFmt = `
CNCF Tech Advisor MCP Server

USAGE:
  cncf-tech-advisor [OPTIONS]

OPTIONS:
  --version, -v    Show version information
  --help, -h       Show this help message
  --download-url   Show download URL for manual installation

ENVIRONMENT VARIABLES:
  CNCF_ADVISOR_LOG_LEVEL    Set log level (DEBUG, INFO, WARN, ERROR)
  JAVA_HOME                 Java installation path (for JAR mode)

CONFIGURATION:
  ~/.cncf-tech-advisor-mcp/launcher.toml (optional)
    default_log_level = "INFO"
    java_command      = "/usr/lib/jvm/java-21/bin/java"

EXAMPLES:
  # Start the MCP server (stdio transport)
  cncf-tech-advisor

  # Start with debug logging
  CNCF_ADVISOR_LOG_LEVEL=DEBUG cncf-tech-advisor

  # Use with Claude Desktop
  # Add to claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "cncf-tech-advisor": {
  #       "command": "cncf-tech-advisor"
  #     }
  #   }
  # }

SERVER FEATURES:
  - Search CNCF projects and technologies
  - Get personalized technology recommendations
  - Compare technologies based on criteria
  - Analyze technology trends
  - View adoption patterns and best practices
  - Plan technology roadmaps

FOR MORE INFORMATION:
  https://github.com/%s#readme
`

	// ProbeUse is the mcp-probe command name.
	ProbeUse          = "mcp-probe [flags] [-- command [args...]]"
	ProbeShort        = "Smoke-test an MCP stdio server by initializing and listing its tools"
	ProbeTimeoutUsage = "Overall timeout for the probe"
	ProbeServerFmt    = "Server: %s %s\n"
	ProbeProtocolFmt  = "Protocol: %s\n"
	ProbeToolCountFmt = "Tools: %d\n"
	ProbeToolFmt      = "  - %s\n"
	ProbeToolDescFmt  = "  - %s: %s\n"
	ProbeOK           = "MCP server responded to initialize and tools/list"
)
