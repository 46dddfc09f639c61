// Package platform maps the host operating system and CPU architecture to the
// artifact kind the launcher should run.
package platform

import (
	"runtime"
	"slices"
)

// Key identifies a host by GOOS and GOARCH.
type Key struct {
	OS   string
	Arch string
}

// String returns the key in "os/arch" form.
func (k Key) String() string {
	return k.OS + "/" + k.Arch
}

// Current returns the key of the running process.
func Current() Key {
	return Key{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// SupportMatrix lists, per GOOS, the architectures a native executable is published for.
type SupportMatrix map[string][]string

// DefaultSupportMatrix is the set of platforms with a native release build.
var DefaultSupportMatrix = SupportMatrix{
	"linux":   {"amd64"},
	"darwin":  {"amd64", "arm64"},
	"windows": {"amd64"},
}

// Supports reports whether key has a native build. Unlisted operating systems are unsupported.
func (m SupportMatrix) Supports(key Key) bool {
	return slices.Contains(m[key.OS], key.Arch)
}

// ArtifactKind selects which form of the server is run.
type ArtifactKind int

const (
	// InterpretedArchive is the JVM archive, runnable anywhere a java interpreter exists.
	InterpretedArchive ArtifactKind = iota
	// NativeExecutable is the platform-compiled server.
	NativeExecutable
)

// String returns a short name for the kind.
func (k ArtifactKind) String() string {
	switch k {
	case NativeExecutable:
		return "native"
	case InterpretedArchive:
		return "jar"
	default:
		return "unknown"
	}
}

// IsNative reports whether k is NativeExecutable.
func (k ArtifactKind) IsNative() bool {
	return k == NativeExecutable
}

// Detect returns NativeExecutable when key is in the matrix and InterpretedArchive otherwise.
// A nil matrix uses DefaultSupportMatrix.
func Detect(matrix SupportMatrix, key Key) ArtifactKind {
	if matrix == nil {
		matrix = DefaultSupportMatrix
	}
	if matrix.Supports(key) {
		return NativeExecutable
	}
	return InterpretedArchive
}

// DetectCurrent runs Detect against the default matrix for the running process.
func DetectCurrent() ArtifactKind {
	return Detect(DefaultSupportMatrix, Current())
}
