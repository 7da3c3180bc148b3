package runlog

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lineRe = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] `)

func TestHandle_AppendsTimestampedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	log := slog.New(New(path, nil))

	log.Info("check-in started")
	log.Info("check-in succeeded", "incr_point", 5, "sum_point", 105)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Regexp(t, lineRe, lines[0])
	assert.Contains(t, lines[0], "check-in started")
	assert.Contains(t, lines[1], "check-in succeeded incr_point=5 sum_point=105")
}

func TestHandle_MirrorsToConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	var console bytes.Buffer
	log := slog.New(New(path, &console))

	log.Error("cookie rejected", "err_no", 403)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, console.String(), string(data))
	assert.Contains(t, console.String(), "cookie rejected err_no=403")
}

func TestHandle_AppendsAcrossHandlers(t *testing.T) {
	// two separate handlers on the same path must not truncate each other
	path := filepath.Join(t.TempDir(), "run.log")

	slog.New(New(path, nil)).Info("first run")
	slog.New(New(path, nil)).Info("second run")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestWithAttrs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	log := slog.New(New(path, nil)).With("run", "daily")

	log.Info("done")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "done run=daily")
}

func TestEnabled_FiltersDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	log := slog.New(New(path, nil))

	log.Debug("noise")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
