// Package artifact resolves the on-disk location of the server artifact.
package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/config"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/messages"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/platform"
)

// ErrArtifactNotFound is matched by every NotFoundError.
var ErrArtifactNotFound = errors.New("artifact not found")

// NotFoundError reports that nothing exists at the expected install path.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(messages.ArtifactNotFoundFmt, e.Path)
}

// Unwrap returns ErrArtifactNotFound so callers can use errors.Is.
func (e *NotFoundError) Unwrap() error { return ErrArtifactNotFound }

var osStat = os.Stat

// Filename returns the artifact filename for kind on goos. Only the active kind's name is used.
func Filename(kind platform.ArtifactKind, goos string) string {
	if !kind.IsNative() {
		return config.JarName
	}
	if goos == "windows" {
		return config.NativeName + ".exe"
	}
	return config.NativeName
}

// Locator computes and checks the single canonical artifact path.
type Locator struct {
	installDir string
	kind       platform.ArtifactKind
	goos       string
}

// NewLocator returns a Locator for kind under installDir on goos.
func NewLocator(installDir string, kind platform.ArtifactKind, goos string) (*Locator, error) {
	if installDir == "" {
		return nil, errors.New(messages.ArtifactInstallDirRequired)
	}
	return &Locator{installDir: installDir, kind: kind, goos: goos}, nil
}

// Kind returns the artifact kind this locator resolves.
func (l *Locator) Kind() platform.ArtifactKind {
	return l.kind
}

// Path returns the expected artifact path without touching the filesystem.
func (l *Locator) Path() string {
	return filepath.Join(l.installDir, Filename(l.kind, l.goos))
}

// Resolve returns Path() when something exists there.
// A miss returns *NotFoundError; there is no retry or fallback location.
func (l *Locator) Resolve() (string, error) {
	path := l.Path()
	if _, err := osStat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Path: path}
		}
		return "", fmt.Errorf(messages.ArtifactCheckFmt, path, err)
	}
	return path, nil
}
