package app

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/uber/projectd/src/projectd/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Context describes where the process runs.
type Context struct {
	Environment        string `yaml:"environment"`
	RuntimeEnvironment string `yaml:"runtimeEnvironment"`
	// Role is either master or worker.
	Role string `yaml:"role"`
}

const (
	// EnvLocal indicates that the service is running locally.
	EnvLocal = "local"

	// EnvDevelopment indicates that the service is running in a development environment.
	EnvDevelopment = "development"

	// Environment variables
	_envProjectdEnvironment = "PROJECTD_ENVIRONMENT"

	_configKeyWorkspace = "workspace"
	_defaultStateDir    = ".projectd"
)

func decorateEnvContext(env Context) Context {
	envValue := EnvLocal
	if os.Getenv(_envProjectdEnvironment) == EnvDevelopment {
		envValue = EnvDevelopment
	}

	env.Environment = envValue
	env.RuntimeEnvironment = envValue
	return env
}

// DecorateConfigParams is the set of dependencies required to decorate the config.Provider.
type DecorateConfigParams struct {
	fx.In

	Env Context
	Cfg config.Provider
	FS  fs.FS
}

// decorateConfigProvider includes any steps that modify the config.Provider before it is used, or use its data for any startup related activities.
func decorateConfigProvider(p DecorateConfigParams) (config.Provider, error) {
	if err := ensureLogFolder(p.Cfg, p.FS); err != nil {
		return nil, fmt.Errorf("ensuring log folder: %v", err)
	}
	// Only the master writes workspace state.
	if p.Env.Role == _roleMaster {
		if err := ensureStateFolder(p.Cfg, p.FS); err != nil {
			return nil, fmt.Errorf("ensuring state folder: %v", err)
		}
	}
	return p.Cfg, nil
}

// ensureLogFolder creates the directories of every configured log file.
func ensureLogFolder(cfg config.Provider, fs fs.FS) error {
	var c zap.Config
	if err := cfg.Get("logging").Populate(&c); err != nil {
		return fmt.Errorf("loading logging config: %v", err)
	}

	for _, outputPath := range c.OutputPaths {
		if outputPath == "stderr" || outputPath == "stdout" {
			continue
		}
		if err := fs.MkdirAll(path.Dir(outputPath)); err != nil {
			return fmt.Errorf("creating logging directory: %v", err)
		}
	}
	return nil
}

// ensureStateFolder creates the workspace state directory, so that the server info file and the remembered project can be written to it.
func ensureStateFolder(cfg config.Provider, fs fs.FS) error {
	workspace := struct {
		Root     string `yaml:"root"`
		StateDir string `yaml:"stateDir"`
	}{Root: ".", StateDir: _defaultStateDir}
	if err := cfg.Get(_configKeyWorkspace).Populate(&workspace); err != nil {
		return fmt.Errorf("loading workspace config: %v", err)
	}
	if workspace.StateDir == "" {
		return nil
	}

	dir := workspace.StateDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(workspace.Root, dir)
	}
	return fs.MkdirAll(dir)
}
