package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_PreservesArityAndOrder(t *testing.T) {
	b, err := encodeEvent("layer-update", []string{"l1", "l2"}, map[string]any{"l1": 1})
	require.NoError(t, err)

	env, err := decodeEnvelope(b)
	require.NoError(t, err)
	assert.Equal(t, "layer-update", env.Event)
	require.Len(t, env.Args, 2)
	assert.JSONEq(t, `["l1","l2"]`, string(env.Args[0]))
	assert.JSONEq(t, `{"l1":1}`, string(env.Args[1]))
}

func TestStringArg(t *testing.T) {
	b, err := encodeEvent("register", "u1", 42)
	require.NoError(t, err)
	env, err := decodeEnvelope(b)
	require.NoError(t, err)

	assert.Equal(t, "u1", stringArg(env.Args, 0))
	assert.Empty(t, stringArg(env.Args, 1), "non-string arg decodes to empty")
	assert.Empty(t, stringArg(env.Args, 5), "missing arg decodes to empty")
}

func TestRawArg(t *testing.T) {
	b, err := encodeEvent("presence", map[string]int{"x": 1}, "u1")
	require.NoError(t, err)
	env, err := decodeEnvelope(b)
	require.NoError(t, err)

	assert.JSONEq(t, `{"x":1}`, string(rawArg(env.Args, 0)))
	assert.Nil(t, rawArg(env.Args, 9))
}
