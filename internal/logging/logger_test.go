package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func jsonLogger(level LogLevel) (*PressroomLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Level: level, Format: "json", Output: &buf})
	return logger, &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]interface{}
	assert.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}

func TestLogger_InfoWithFields(t *testing.T) {
	logger, buf := jsonLogger(LevelInfo)

	logger.Info(context.Background(), "document loaded", "path", "report.yaml", "nodes", 4)

	entry := lastEntry(t, buf)
	assert.Equal(t, "document loaded", entry["msg"])
	assert.Equal(t, "report.yaml", entry["path"])
	assert.Equal(t, float64(4), entry["nodes"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := jsonLogger(LevelWarn)

	logger.Debug(context.Background(), "not shown")
	logger.Info(context.Background(), "not shown either")

	assert.Zero(t, buf.Len())
}

func TestLogger_ErrorField(t *testing.T) {
	logger, buf := jsonLogger(LevelInfo)

	logger.Error(context.Background(), assert.AnError, "operation failed")

	entry := lastEntry(t, buf)
	assert.Equal(t, assert.AnError.Error(), entry["error"])
}

func TestLogger_WithComponent(t *testing.T) {
	logger, buf := jsonLogger(LevelInfo)

	logger.WithComponent("watcher").Info(context.Background(), "started")

	entry := lastEntry(t, buf)
	assert.Equal(t, "watcher", entry["component"])
}

func TestLogger_WithPersistentFields(t *testing.T) {
	logger, buf := jsonLogger(LevelInfo)

	scoped := logger.With("template", "tpl-1")
	scoped.Info(context.Background(), "first")
	scoped.Info(context.Background(), "second")

	entry := lastEntry(t, buf)
	assert.Equal(t, "tpl-1", entry["template"])
}
