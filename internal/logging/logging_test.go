package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "todo.log")

	l, closer, err := New("info", file)
	require.NoError(t, err)
	l.Debug().Msg("hidden")
	l.Info().Str("op", "list").Msg("visible")
	closer()

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"op":"list"`)
	assert.Contains(t, string(b), "visible")
	assert.NotContains(t, string(b), "hidden")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New("loud", "")
	require.Error(t, err)
}

func TestNew_EmptyFileDiscards(t *testing.T) {
	l, closer, err := New("debug", "")
	require.NoError(t, err)
	defer closer()
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

func TestComponent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "todo.log")
	l, closer, err := New("info", file)
	require.NoError(t, err)

	prev := log.Logger
	log.Logger = l
	t.Cleanup(func() { log.Logger = prev })

	cl := Component("client")
	cl.Info().Msg("hello")
	closer()

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"cmp":"client"`)
}

func TestDefaultFile(t *testing.T) {
	assert.Equal(t, "todo.log", filepath.Base(DefaultFile()))
}
