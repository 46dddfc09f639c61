package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsInteractive(t *testing.T) {
	// Depends on how the test binary is run; only verify it does not panic.
	_ = IsInteractive()
}

func TestIsTerminalNil(t *testing.T) {
	if IsTerminal(nil) {
		t.Fatalf("expected nil file to be non-terminal")
	}
}

func TestIsTerminalRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer func() { _ = f.Close() }()
	if IsTerminal(f) {
		t.Fatalf("expected regular file to be non-terminal")
	}
}
