package logfilewriter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/projectd/src/projectd/internal/fs/fsmock"
	"github.com/uber/projectd/src/projectd/internal/serverinfofile/serverinfofilemock"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSetupOutputWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverInfoFileMock := serverinfofilemock.NewMockServerInfoFile(ctrl)
	fsMock := fsmock.NewMockFS(ctrl)

	t.Run("success", func(t *testing.T) {
		lifecycle := fxtest.NewLifecycle(t)
		p := Params{Lifecycle: lifecycle, ServerInfoFile: serverInfoFileMock, FS: fsMock}

		fsMock.EXPECT().MkdirAll(gomock.Any()).Return(nil)
		file, err := os.CreateTemp(t.TempDir(), "")
		require.NoError(t, err)
		fsMock.EXPECT().TempFile(gomock.Any(), gomock.Any()).Return(file, nil)
		serverInfoFileMock.EXPECT().UpdateField(fmt.Sprintf(_fmtOutputKey, WorkerOutputName), file.Name()).Return(nil)

		writer, err := NewWorkerOutput(p)
		require.NoError(t, err)
		lifecycle.RequireStart()

		_, err = writer.Write([]byte("sample log message\n"))
		assert.NoError(t, err)

		fsMock.EXPECT().Remove(file.Name()).DoAndReturn(os.Remove)
		lifecycle.RequireStop()

		_, err = os.Stat(file.Name())
		assert.True(t, os.IsNotExist(err))
		assert.ErrorIs(t, file.Close(), os.ErrClosed)
	})

	t.Run("mkdir fail", func(t *testing.T) {
		p := Params{Lifecycle: fxtest.NewLifecycle(t), ServerInfoFile: serverInfoFileMock, FS: fsMock}
		fsMock.EXPECT().MkdirAll(gomock.Any()).Return(errors.New("sample"))
		_, err := SetupOutputWriter(p, "sample-key")
		assert.Error(t, err)
	})

	t.Run("tempfile fail", func(t *testing.T) {
		p := Params{Lifecycle: fxtest.NewLifecycle(t), ServerInfoFile: serverInfoFileMock, FS: fsMock}
		fsMock.EXPECT().MkdirAll(gomock.Any()).Return(nil)
		fsMock.EXPECT().TempFile(gomock.Any(), gomock.Any()).Return(nil, errors.New("sample"))
		_, err := SetupOutputWriter(p, "sample-key")
		assert.Error(t, err)
	})

	t.Run("server info fail", func(t *testing.T) {
		p := Params{Lifecycle: fxtest.NewLifecycle(t), ServerInfoFile: serverInfoFileMock, FS: fsMock}
		fsMock.EXPECT().MkdirAll(gomock.Any()).Return(nil)
		file, err := os.CreateTemp(t.TempDir(), "")
		require.NoError(t, err)
		fsMock.EXPECT().TempFile(gomock.Any(), gomock.Any()).Return(file, nil)
		serverInfoFileMock.EXPECT().UpdateField(gomock.Any(), file.Name()).Return(errors.New("sample"))
		fsMock.EXPECT().Remove(file.Name()).Return(nil)

		_, err = SetupOutputWriter(p, "sample-key")
		assert.Error(t, err)
	})
}

func TestWrite(t *testing.T) {
	// For testing purposes, collect logger results in a buffer.
	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(&buf),
		zap.InfoLevel,
	)
	sampleWriter := loggerWriter{zap.New(core).Sugar()}

	sampleMessage := "sample log message"

	n, err := sampleWriter.Write([]byte(sampleMessage + "\n" + sampleMessage + "\n\n"))
	assert.NoError(t, err)
	assert.Equal(t, len(sampleMessage)*2+3, n)
	assert.True(t, strings.Contains(buf.String(), "sample log message"))
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 2)
}
