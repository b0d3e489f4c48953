package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Validation
// =============================================================================

func TestSetup_Validation(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "existing_file")
	require.NoError(t, os.WriteFile(tempFile, []byte("x"), 0644))

	tests := []struct {
		name        string
		opts        Options
		expectError string
	}{
		{name: "Missing Name", opts: Options{Dir: t.TempDir()}, expectError: "애플리케이션 식별자(Name)"},
		{name: "Dir Is File", opts: Options{Name: "app", Dir: tempFile}, expectError: "이미 파일로 존재합니다"},
		{name: "Negative MaxAge", opts: Options{Name: "app", MaxAge: -1}, expectError: "MaxAge"},
		{name: "Negative MaxSizeMB", opts: Options{Name: "app", MaxSizeMB: -1}, expectError: "MaxSizeMB"},
		{name: "Negative MaxBackups", opts: Options{Name: "app", MaxBackups: -1}, expectError: "MaxBackups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobalState()
			defer resetGlobalState()

			_, err := Setup(tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

// =============================================================================
// Setup
// =============================================================================

func TestSetup_WritesFilesAndConsole(t *testing.T) {
	resetGlobalState()
	defer resetGlobalState()

	var console bytes.Buffer
	consoleOutput = &console

	dir := t.TempDir()
	opts := NewProductionOptions("pop-notify-test")
	opts.Dir = dir
	opts.Level = TraceLevel
	opts.EnableConsoleLog = true

	c, err := Setup(opts)
	require.NoError(t, err)

	WithComponent("test").Info("info message")
	WithComponent("test").Debug("debug message")
	WithComponent("test").Error("error message")

	require.NoError(t, c.Close())
	require.NoError(t, c.Close(), "Close must be idempotent")

	mainLog, err := os.ReadFile(filepath.Join(dir, "pop-notify-test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "info message")
	assert.Contains(t, string(mainLog), "error message")
	assert.NotContains(t, string(mainLog), "debug message")

	criticalLog, err := os.ReadFile(filepath.Join(dir, "pop-notify-test.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(criticalLog), "error message")
	assert.NotContains(t, string(criticalLog), "info message")

	verboseLog, err := os.ReadFile(filepath.Join(dir, "pop-notify-test.verbose.log"))
	require.NoError(t, err)
	assert.Contains(t, string(verboseLog), "debug message")

	assert.Contains(t, console.String(), "info message")
	assert.Contains(t, console.String(), "debug message")
}

func TestSetup_DisableFileLog(t *testing.T) {
	resetGlobalState()
	defer resetGlobalState()

	var console bytes.Buffer
	consoleOutput = &console

	dir := filepath.Join(t.TempDir(), "logs")
	opts := NewProductionOptions("pop-notify-test")
	opts.Dir = dir
	opts.DisableFileLog = true
	opts.EnableConsoleLog = true

	c, err := Setup(opts)
	require.NoError(t, err)

	WithComponent("test").Info("console only")
	WithComponent("test").Error("console error")
	require.NoError(t, c.Close())

	assert.NoDirExists(t, dir)
	assert.Contains(t, console.String(), "console only")
	assert.Contains(t, console.String(), "console error")
}

func TestSetup_OnlyOnce(t *testing.T) {
	resetGlobalState()
	defer resetGlobalState()

	first, err := Setup(Options{Name: "once", Dir: t.TempDir()})
	require.NoError(t, err)
	defer first.Close()

	second, err := Setup(Options{Name: "ignored", Dir: t.TempDir()})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel(), "zero Level falls back to Info")
}
