package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrUnknownBackend = errors.New("unknown catalog backend")

type BackendKind string

const (
	BackendAuto   BackendKind = ""
	BackendYAML   BackendKind = "yaml"
	BackendSQLite BackendKind = "sqlite"
)

func ParseBackendKind(s string) (BackendKind, error) {
	switch kind := BackendKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case BackendAuto, BackendYAML, BackendSQLite:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// OpenBackend picks a backend for path. With BackendAuto the file extension
// decides and anything unrecognised is YAML.
func OpenBackend(kind BackendKind, path string) (Backend, error) {
	if kind == BackendAuto {
		kind = kindFromExt(path)
	}

	switch kind {
	case BackendYAML:
		return NewYAMLBackend(path)
	case BackendSQLite:
		return NewSQLiteBackend(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}

func kindFromExt(path string) BackendKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return BackendSQLite
	default:
		return BackendYAML
	}
}
