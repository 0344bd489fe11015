package tools

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTool struct {
	name string
	fail bool
}

func (t *stubTool) Name() string             { return t.name }
func (t *stubTool) Description() string      { return "stub" }
func (t *stubTool) Schema() json.RawMessage  { return json.RawMessage(`{"type":"object"}`) }
func (t *stubTool) Execute(json.RawMessage) (any, error) {
	if t.fail {
		return nil, errors.New("boom")
	}
	return "ok", nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubTool{name: "a"}))
	require.NoError(t, r.Register(&stubTool{name: "b"}))

	err := r.Register(&stubTool{name: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	_, ok := r.Get("a")
	assert.True(t, ok)
	_, ok = r.Get("missing")
	assert.False(t, ok)

	assert.ElementsMatch(t, []string{"a", "b"}, r.Names())
	assert.Len(t, r.List(), 2)
}

func TestRegistryListSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, r.Register(&stubTool{name: name}))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())

	listed := make([]string, 0, 3)
	for _, tool := range r.List() {
		listed = append(listed, tool.Name())
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, listed)
}

func TestRegistryExecute(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubTool{name: "ok"}))
	require.NoError(t, r.Register(&stubTool{name: "fail", fail: true}))

	result, err := r.Execute("ok", json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "ok", result)

	_, err = r.Execute("missing", json.RawMessage(`{}`))
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, -32601, toolErr.Code)

	_, err = r.Execute("fail", json.RawMessage(`{}`))
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, -32603, toolErr.Code)
	assert.Contains(t, toolErr.Message, "boom")
}
