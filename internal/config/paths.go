package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/messages"
)

// Paths holds resolved paths under the install directory.
type Paths struct {
	InstallDir string
	ConfigPath string
}

// homeDir is a seam for tests.
var homeDir = homedir.Dir

// DefaultPaths returns the launcher paths for an install directory.
func DefaultPaths(installDir string) Paths {
	return Paths{
		InstallDir: installDir,
		ConfigPath: filepath.Join(installDir, ConfigFileName),
	}
}

// InstallDir returns the single canonical install directory, ~/.cncf-tech-advisor-mcp.
func InstallDir() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf(messages.ArtifactResolveHomeDirFmt, err)
	}
	return filepath.Join(home, InstallDirName), nil
}
