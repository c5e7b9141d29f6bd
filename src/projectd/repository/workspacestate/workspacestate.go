// Package workspacestate persists which project was last active in a workspace.
package workspacestate

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/uber/projectd/src/projectd/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

const (
	_workspaceRootKey = "workspace.root"
	_stateDirKey      = "workspace.stateDir"
	_defaultStateDir  = ".projectd"
	_stateFileName    = "session.yaml"
)

// Module provides the workspace state repository.
var Module = fx.Provide(New)

// Repository reads and writes the state file of the workspace.
type Repository interface {
	// ManifestFilePath returns the absolute path of the remembered manifest, if there is one.
	ManifestFilePath() (string, bool, error)
	// SetManifestFilePath remembers manifestFilePath. An empty path forgets the manifest.
	SetManifestFilePath(manifestFilePath string) error
}

// Params are inbound parameters to initialize a new workspace state repository.
type Params struct {
	fx.In

	FS     fs.FS
	Config config.Provider
}

// State is the contents of the state file.
type State struct {
	RelativePathToManifest string `yaml:"relativePathToManifest"`
}

type repository struct {
	fs       fs.FS
	root     string
	stateDir string
}

// New creates a workspace state repository for the configured workspace root.
func New(p Params) (Repository, error) {
	root := "."
	if err := p.Config.Get(_workspaceRootKey).Populate(&root); err != nil || root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}
	stateDir := _defaultStateDir
	if err := p.Config.Get(_stateDirKey).Populate(&stateDir); err != nil {
		return nil, fmt.Errorf("reading %s: %w", _stateDirKey, err)
	}
	return NewRepository(p.FS, abs, stateDir), nil
}

// NewRepository creates a repository keeping its state under root/stateDir.
func NewRepository(fsys fs.FS, root, stateDir string) Repository {
	if stateDir == "" {
		stateDir = _defaultStateDir
	}
	return &repository{fs: fsys, root: root, stateDir: stateDir}
}

func (r *repository) path() string {
	return filepath.Join(r.root, r.stateDir, _stateFileName)
}

func (r *repository) ManifestFilePath() (string, bool, error) {
	exists, err := r.fs.FileExists(r.path())
	if err != nil || !exists {
		return "", false, err
	}
	data, err := r.fs.ReadFile(r.path())
	if err != nil {
		return "", false, fmt.Errorf("reading workspace state: %w", err)
	}

	var state State
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return "", false, fmt.Errorf("decoding workspace state %q: %w", r.path(), err)
	}
	if state.RelativePathToManifest == "" {
		return "", false, nil
	}
	return filepath.Join(r.root, filepath.FromSlash(state.RelativePathToManifest)), true, nil
}

func (r *repository) SetManifestFilePath(manifestFilePath string) error {
	var state State
	if manifestFilePath != "" {
		rel, err := filepath.Rel(r.root, manifestFilePath)
		if err != nil {
			return fmt.Errorf("relativizing %q: %w", manifestFilePath, err)
		}
		state.RelativePathToManifest = filepath.ToSlash(rel)
	}

	data, err := yaml.Marshal(&state)
	if err != nil {
		return fmt.Errorf("encoding workspace state: %w", err)
	}
	if err := r.fs.MkdirAll(filepath.Dir(r.path())); err != nil {
		return fmt.Errorf("creating %q: %w", filepath.Dir(r.path()), err)
	}
	if err := r.fs.WriteFile(r.path(), string(data)); err != nil {
		return fmt.Errorf("writing workspace state: %w", err)
	}
	return nil
}
