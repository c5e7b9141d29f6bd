package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/uber/projectd/src/projectd/app"
	"github.com/uber/projectd/src/projectd/internal/core"
	"go.uber.org/fx"
)

const (
	_version = "(to be added by Bazel)"

	_envWorkspace = "PROJECTD_WORKSPACE"
)

var (
	workspace string
	configDir string

	rootCmd = &cobra.Command{
		Use:   "projectd",
		Short: "Keeps the analysis of a workspace's active project current for connected editors",
		// Paths are made absolute and exported, so that the worker, which runs from the workspace root, resolves the same ones.
		PersistentPreRunE: exportPaths,
		SilenceUsage:      true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve editors over JSON-RPC and start the analysis worker",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fx.New(masterOpts()).Run()
		},
	}

	workerCmd = &cobra.Command{
		Use:    "worker",
		Short:  "Run the analysis worker over stdin and stdout",
		Args:   cobra.NoArgs,
		Hidden: true,
		Run: func(cmd *cobra.Command, args []string) {
			fx.New(workerOpts()).Run()
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), _version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "workspace root, defaults to $"+_envWorkspace+" or the current directory")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory, defaults to $"+core.EnvConfigDir)
	rootCmd.AddCommand(serveCmd, workerCmd, versionCmd)
}

func masterOpts() fx.Option {
	return fx.Options(
		app.MasterModule,
	)
}

func workerOpts() fx.Option {
	return fx.Options(
		app.WorkerModule,
	)
}

func exportPaths(cmd *cobra.Command, args []string) error {
	if workspace == "" {
		workspace = os.Getenv(_envWorkspace)
	}
	if workspace != "" {
		abs, err := filepath.Abs(workspace)
		if err != nil {
			return fmt.Errorf("resolving workspace: %w", err)
		}
		if err := os.Setenv(_envWorkspace, abs); err != nil {
			return err
		}
	}

	if configDir == "" {
		configDir = core.ConfigDir()
	}
	abs, err := filepath.Abs(configDir)
	if err != nil {
		return fmt.Errorf("resolving configuration directory: %w", err)
	}
	return os.Setenv(core.EnvConfigDir, abs)
}

func main() {
	// New to Fx? Brush up at https://uber-go.github.io/fx/.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
