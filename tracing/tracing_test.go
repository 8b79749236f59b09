package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span.txt")
	require.NoError(t, Init("repl", "0.0.1", fname))

	ctx, block := StartSpan(context.Background(), "repl.block", "INTERNAL")
	block.WithAttributes(map[string]string{"session.id": "s-1", "empty": ""})
	_, aTask := StartSpan(ctx, "repl.task", "INTERNAL")
	EndSpan(aTask, errors.New("ReferenceError: x is not defined"))
	EndSpan(block, nil)

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "repl.block")
	assert.Contains(t, string(data), "repl.task")
	assert.Contains(t, string(data), "s-1")
}

func TestSpan_NilSafe(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]string{"k": "v"}))
	span.SetStatus(nil)
	EndSpan(span, nil)
}
