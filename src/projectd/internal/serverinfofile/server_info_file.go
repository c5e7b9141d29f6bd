package serverinfofile

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/uber/projectd/src/projectd/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyInfoFile      = "editor.serverInfoFile"
	_configKeyWorkspaceRoot = "workspace.root"
	_configKeyStateDir      = "workspace.stateDir"
	_defaultFileName        = "server.json"
)

//go:generate mockgen -destination=serverinfofilemock/server_info_file_mock.go -package=serverinfofilemock . ServerInfoFile

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// ServerInfoFile is an interface to manage contents of a single server info file.
// It is intended to be used to store connection info for reference by editors, and written to at service launch.
type ServerInfoFile interface {
	UpdateField(key string, value string) error
	// Path returns the location of the file.
	Path() string
}

type module struct {
	fs           fs.FS
	infofile     string
	logger       *zap.SugaredLogger
	fileContents map[string]string
	written      bool
	mu           sync.Mutex
}

// Params define values to be used by ServerInfoFile.
type Params struct {
	fx.In

	FS        fs.FS
	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

// New creates a new ServerInfoFile which manages contents of a single server info file.
// The file is removed at fx stop.
func New(p Params) (ServerInfoFile, error) {
	m := module{
		fs:           p.FS,
		logger:       p.Logger,
		fileContents: make(map[string]string),
	}

	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: m.OnStop,
	})

	return &m, nil
}

func (m *module) OnStop(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.written {
		return nil
	}
	if err := m.fs.Remove(m.infofile); err != nil {
		return err
	}
	m.written = false
	return nil
}

func (m *module) UpdateField(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fileContents[key] = value
	jsonOutput, err := json.Marshal(m.fileContents)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	if err := m.fs.MkdirAll(filepath.Dir(m.infofile)); err != nil {
		return fmt.Errorf("creating info file directory: %w", err)
	}
	if err := m.fs.WriteFile(m.infofile, string(jsonOutput)); err != nil {
		return fmt.Errorf("creating info file: %w", err)
	}
	m.written = true
	m.logger.Infow("connection info saved", zap.String("file", m.infofile), zap.String(key, value))
	return nil
}

func (m *module) Path() string {
	return m.infofile
}

func (m *module) processConfig(cfg config.Provider) error {
	val := cfg.Get(_configKeyInfoFile)
	if err := val.Populate(&m.infofile); err != nil {
		// incorrectly formatted config
		return fmt.Errorf("getting config field %q: %w", _configKeyInfoFile, err)
	}
	if m.infofile != "" {
		return nil
	}

	// Without an explicit location the file lives next to the workspace state.
	root, stateDir := ".", ".projectd"
	if err := cfg.Get(_configKeyWorkspaceRoot).Populate(&root); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyWorkspaceRoot, err)
	}
	if err := cfg.Get(_configKeyStateDir).Populate(&stateDir); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyStateDir, err)
	}
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(filepath.Join(root, stateDir, _defaultFileName))
	if err != nil {
		return fmt.Errorf("resolving info file path: %w", err)
	}
	m.infofile = abs
	return nil
}
