package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Order    string
	Level    int
	LastCall string
}

func (c *testConfig) setLevel(level int) error {
	if level < 0 {
		return errors.New("level cannot be negative")
	}
	c.Level = level
	c.LastCall = "setLevel"

	return nil
}

func TestNew(t *testing.T) {
	cfg := &testConfig{}

	t.Run("applies function", func(t *testing.T) {
		opt := New(func(c *testConfig) error { return c.setLevel(3) })

		require.NoError(t, opt.apply(cfg))
		require.Equal(t, 3, cfg.Level)
		require.Equal(t, "setLevel", cfg.LastCall)
	})

	t.Run("propagates error", func(t *testing.T) {
		opt := New(func(c *testConfig) error { return c.setLevel(-1) })

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "level cannot be negative")
	})
}

func TestNoError(t *testing.T) {
	cfg := &testConfig{}
	opt := NoError(func(c *testConfig) { c.Order = "big" })

	require.NoError(t, opt.apply(cfg))
	require.Equal(t, "big", cfg.Order)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg,
			Option[*testConfig](NoError(func(c *testConfig) { c.Order = "little" })),
			Option[*testConfig](NoError(func(c *testConfig) { c.Order = "big" })),
		)

		require.NoError(t, err)
		require.Equal(t, "big", cfg.Order, "later options win")
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		called := false

		err := Apply(cfg,
			Option[*testConfig](New(func(c *testConfig) error { return c.setLevel(-5) })),
			Option[*testConfig](NoError(func(*testConfig) { called = true })),
		)

		require.Error(t, err)
		require.False(t, called, "options after a failure must not run")
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, nil, Option[*testConfig](NoError(func(c *testConfig) { c.Level = 9 })))

		require.NoError(t, err)
		require.Equal(t, 9, cfg.Level)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{Level: 1}

		require.NoError(t, Apply(cfg))
		require.Equal(t, 1, cfg.Level)
	})
}
