package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferLogger(level string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(Config{Level: level, Format: "json", Output: &buf}), &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARNING "))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestLogger_FieldsAndCaller(t *testing.T) {
	l, buf := newBufferLogger("debug")

	l.Info("Product created", Fields{"product_id": "p-1"}, Fields{"category": "coffee"})
	l.Error("Write failed", errors.New("connection refused"), Fields{"operation": "create product"})

	entries := lines(t, buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "Product created", entries[0]["message"])
	assert.Equal(t, "p-1", entries[0]["product_id"])
	assert.Equal(t, "coffee", entries[0]["category"])
	assert.Contains(t, entries[0]["caller"], "logger_test.go")

	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "connection refused", entries[1]["error"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger("warn")

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	entries := lines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])
	assert.False(t, l.Enabled(zerolog.InfoLevel))
	assert.True(t, l.Enabled(zerolog.ErrorLevel))
}

func TestLogger_WithContext(t *testing.T) {
	l, buf := newBufferLogger("info")

	child := l.WithContext(Fields{"request_id": "req-1"})
	child.Info("Request completed", Fields{"status_code": 200})

	entries := lines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1", entries[0]["request_id"])
	assert.Equal(t, float64(200), entries[0]["status_code"])
}

func TestGormLogger_Trace(t *testing.T) {
	l, buf := newBufferLogger("debug")
	g := NewGormLogger(l, 50*time.Millisecond)

	ctx := context.Background()
	query := func() (string, int64) { return "SELECT * FROM products", 3 }

	g.Trace(ctx, time.Now(), query, nil)
	assert.Empty(t, buf.String(), "fast successful queries are not logged at warn level")

	g.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is not an error")

	g.Trace(ctx, time.Now().Add(-time.Second), query, nil)
	g.Trace(ctx, time.Now(), query, errors.New("relation does not exist"))

	entries := lines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "Slow query", entries[0]["message"])
	assert.Equal(t, "SELECT * FROM products", entries[0]["sql"])
	assert.Equal(t, "Query failed", entries[1]["message"])

	buf.Reset()
	g.LogMode(gormlogger.Silent).Trace(ctx, time.Now(), query, errors.New("ignored"))
	assert.Empty(t, buf.String())
}
