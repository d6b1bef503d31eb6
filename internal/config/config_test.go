package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaURL(t *testing.T) {
	assert.Equal(t, "https://media.example", MediaURL(true, "media.example"))
	assert.Equal(t, "http://media.example", MediaURL(false, "media.example"))
}

func TestParse(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		cfg, err := Parse("chatsync", []string{"-a", ":9090", "-https=false", "-media-host", "cdn.local"})
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.RunAddr)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "http://cdn.local", cfg.MediaURL())
	})

	t.Run("env_overrides_flags", func(t *testing.T) {
		t.Setenv("RUN_ADDR", ":7070")
		t.Setenv("LINE_USE_HTTPS", "true")
		t.Setenv("LINE_MEDIA_HOST", "env.cdn")

		cfg, err := Parse("chatsync", []string{"-a", ":9090", "-https=false"})
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.RunAddr)
		assert.Equal(t, "https://env.cdn", cfg.MediaURL())
	})

	t.Run("bad_env", func(t *testing.T) {
		t.Setenv("LINE_USE_HTTPS", "maybe")

		_, err := Parse("chatsync", nil)
		assert.Error(t, err)
	})

	t.Run("unknown_flag", func(t *testing.T) {
		_, err := Parse("chatsync", []string{"-nope"})
		assert.Error(t, err)
	})
}
