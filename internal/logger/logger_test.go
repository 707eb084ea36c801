package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/bizbook/internal/logger"
)

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bizbook.log")

	log, err := logger.New(&logger.Config{Level: "info", Output: path})
	assert.NilError(t, err)
	assert.Equal(t, log.Level(), zerolog.InfoLevel)

	log.WithComponent("logic").Info().Msg("address book loaded")
	log.Debug().Msg("hidden below info")

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(data), `"component":"logic"`))
	assert.Check(t, is.Contains(string(data), "address book loaded"))
	assert.Check(t, !strings.Contains(string(data), "hidden below info"))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(&logger.Config{Level: "loud", Output: "stderr"})
	assert.ErrorContains(t, err, "invalid log level")
}

func TestNop_Disabled(t *testing.T) {
	assert.Equal(t, logger.Nop().Level(), zerolog.Disabled)
}
