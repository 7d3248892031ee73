package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogSQLQuery(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	LogSQLQuery(zap.New(core), `
		SELECT id, name
		FROM stores
		WHERE id=$1
	`, "starbucks-jp-nagar")

	entries := logs.All()
	require.Len(t, entries, 1)

	assert.Equal(t, "SELECT id, name FROM stores WHERE id=$1", entries[0].Message)
	assert.Equal(t, []any{"starbucks-jp-nagar"}, entries[0].ContextMap()["args"])
}
