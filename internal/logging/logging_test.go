package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestInit_DoesNotPanic(t *testing.T) {
	defer SetLogger(L())

	Init(false, false)
	l := L()
	l.Info().Msg("test json info")

	Init(true, true)
	l = L()
	require.Equal(t, zerolog.DebugLevel, l.GetLevel())
	l.Debug().Msg("test human debug")
}

func TestWithPhase(t *testing.T) {
	defer SetLogger(L())

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	l := WithPhase("dense")
	l.Info().Msg("test message")

	require.Contains(t, buf.String(), `"phase":"dense"`)
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(L())

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).With().Str("custom", "field").Logger())

	l := L()
	l.Info().Msg("test")

	require.Contains(t, buf.String(), `"custom":"field"`)
}
