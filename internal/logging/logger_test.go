package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("ERROR"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warning"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("info"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("nonsense"))
}

func TestSetup_FileOutput(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	dir := t.TempDir()
	base := filepath.Join(dir, "tracker")

	out := Setup(LoggerSetupParams{
		LogFileName:   base,
		LogLevel:      "debug",
		LogFormatJSON: true,
	})
	require.NotNil(t, out)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	logrus.Info("hello")

	data, err := os.ReadFile(base + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestSetup_StdoutOnly(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	out := Setup(LoggerSetupParams{LogLevel: "error"})
	assert.Equal(t, os.Stdout, out)
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())
}
