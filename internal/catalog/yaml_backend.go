package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const yamlFileVersion = 1

type yamlFile struct {
	Version int     `yaml:"version"`
	Movies  []Movie `yaml:"movies"`
}

type YAMLBackend struct {
	path string
}

func NewYAMLBackend(path string) (*YAMLBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &YAMLBackend{path: path}, nil
}

func (b *YAMLBackend) Path() string {
	return b.path
}

func (b *YAMLBackend) Load() ([]Movie, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrMissing
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %q: %v", ErrCorrupt, b.path, err)
	}
	if file.Version > yamlFileVersion {
		return nil, fmt.Errorf("%w: unsupported version %d in %q", ErrCorrupt, file.Version, b.path)
	}

	for i, m := range file.Movies {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("%w: movie %d in %q: %v", ErrCorrupt, i, b.path, err)
		}
	}
	return file.Movies, nil
}

func (b *YAMLBackend) Save(movies []Movie) error {
	file := yamlFile{
		Version: yamlFileVersion,
		Movies:  movies,
	}
	if file.Movies == nil {
		file.Movies = []Movie{}
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}

	lock := flock.New(b.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock catalog file: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	tmpPath := b.path + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, b.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
