// Package logfilewriter collects the raw output of a child process into a file that editors can tail.
package logfilewriter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/uber/projectd/src/projectd/internal/fs"
	"github.com/uber/projectd/src/projectd/internal/serverinfofile"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	_fmtOutputKey = "output:%s"

	// WorkerOutputName names the output of the analysis worker.
	WorkerOutputName = "projectd-worker"
)

// Params define the dependencies for SetupOutputWriter.
type Params struct {
	fx.In

	FS             fs.FS
	Lifecycle      fx.Lifecycle
	ServerInfoFile serverinfofile.ServerInfoFile
}

// NewWorkerOutput is SetupOutputWriter for the analysis worker's stderr.
func NewWorkerOutput(p Params) (io.Writer, error) {
	return SetupOutputWriter(p, WorkerOutputName)
}

// SetupOutputWriter creates a writer that will be used to write human readable output to a temporary file for reference by the user.
// The file path will be stored in the server info file for reference by the editor.
func SetupOutputWriter(p Params, name string) (io.Writer, error) {
	logsDirPath := filepath.Join(os.TempDir(), name)
	if err := p.FS.MkdirAll(logsDirPath); err != nil {
		return nil, err
	}

	logFile, err := p.FS.TempFile(logsDirPath, "")
	if err != nil {
		return nil, err
	}

	// Editors can tail the file by getting the file path from the server info file.
	if err := p.ServerInfoFile.UpdateField(fmt.Sprintf(_fmtOutputKey, name), logFile.Name()); err != nil {
		return nil, multierr.Combine(err, logFile.Close(), p.FS.Remove(logFile.Name()))
	}

	// Write via a logger for formatting, timestamp, and performance/buffering.
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(logFile),
		zap.InfoLevel,
	)
	outputLogger := zap.New(core).Sugar()

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = outputLogger.Sync()
			return multierr.Combine(logFile.Close(), p.FS.Remove(logFile.Name()))
		},
	})

	return &loggerWriter{logger: outputLogger}, nil
}

type loggerWriter struct {
	logger *zap.SugaredLogger
}

// Write implements the io.Writer interface by sending data to the given logger.
func (o *loggerWriter) Write(p []byte) (n int, err error) {
	// Incoming data may contain multiple lines, including blank ones.
	for _, line := range strings.Split(string(p), "\n") {
		if len(line) > 0 {
			o.logger.Info(line)
		}
	}
	return len(p), nil
}
