package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	level     int
	chunkSize int
	name      string
}

func withLevel(level int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if level < 0 {
			return errors.New("level cannot be negative")
		}
		c.level = level

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &testConfig{chunkSize: 64}

	err := Apply(cfg, withLevel(3), withName("first"), withName("second"))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.level)
	require.Equal(t, "second", cfg.name)
	require.Equal(t, 64, cfg.chunkSize)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withName("kept"), withLevel(-1), withName("skipped"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "level cannot be negative")
	require.Equal(t, "kept", cfg.name)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &testConfig{}

	var opt Option[*testConfig]
	require.NoError(t, Apply(cfg, opt, withLevel(5)))
	require.Equal(t, 5, cfg.level)
}

func TestApply_Empty(t *testing.T) {
	cfg := &testConfig{level: 7}
	require.NoError(t, Apply(cfg))
	require.Equal(t, 7, cfg.level)
}
