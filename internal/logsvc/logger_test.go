package logsvc

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(log.New(&buf, "", 0), false)

	l.Debug("hidden")
	l.Info("started", map[string]any{"port": "8000"})
	l.Error("failed", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO started")
	assert.Contains(t, out, "port:8000")
	assert.Contains(t, out, "ERROR failed")
	assert.Contains(t, out, "boom")
}

func TestNewWithoutToken(t *testing.T) {
	_, ok := New("", "test", true).(*StdLogger)
	assert.True(t, ok)
}
