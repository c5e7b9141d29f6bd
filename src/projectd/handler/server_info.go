package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/uber/projectd/src/projectd/internal/serverinfofile"
	"go.uber.org/config"
)

const (
	_configKeyWorkspaceRoot = "workspace.root"

	_infoKeyWorkspaceRoot = "workspace-root"
	_infoKeyPid           = "pid"
)

// Output the workspace served and the process id to the Server Info file, so that editors can find the right server.
// The JSON-RPC module adds its own address once it is listening.
func outputServerInfo(cfg config.Provider, infofile serverinfofile.ServerInfoFile) error {
	root := "."
	if err := cfg.Get(_configKeyWorkspaceRoot).Populate(&root); err != nil {
		return fmt.Errorf("loading workspace config: %v", err)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving workspace root: %w", err)
	}

	if err := infofile.UpdateField(_infoKeyWorkspaceRoot, abs); err != nil {
		return fmt.Errorf("outputting %q to info file: %w", _infoKeyWorkspaceRoot, err)
	}
	if err := infofile.UpdateField(_infoKeyPid, strconv.Itoa(os.Getpid())); err != nil {
		return fmt.Errorf("outputting %q to info file: %w", _infoKeyPid, err)
	}
	return nil
}
