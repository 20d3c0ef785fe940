package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "handling.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultHandlingIsValid(t *testing.T) {
	assert.NoError(t, DefaultHandling().Validate())
}

func TestLoadHandling(t *testing.T) {
	t.Run("partial override keeps defaults", func(t *testing.T) {
		path := writeProfile(t, "engine = 320.0\nhandbrake_grip_mul = 0.35\ntyre_drag = 0.995\n")
		h, err := LoadHandling(path)
		require.NoError(t, err)

		want := DefaultHandling()
		want.Engine = 320
		want.HandbrakeGripMul = 0.35
		want.TyreDrag = 0.995
		assert.Equal(t, want, h)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeProfile(t, "engine = 1.0\nnitro = 9.0\n")
		_, err := LoadHandling(path)
		require.ErrorIs(t, err, ErrBadHandling)
		assert.Contains(t, err.Error(), "nitro")
	})

	t.Run("damping out of range", func(t *testing.T) {
		path := writeProfile(t, "air_friction = 1.2\n")
		_, err := LoadHandling(path)
		require.ErrorIs(t, err, ErrBadHandling)
		assert.Contains(t, err.Error(), "air_friction")
	})

	t.Run("negative grip", func(t *testing.T) {
		path := writeProfile(t, "base_grip = -0.1\n")
		_, err := LoadHandling(path)
		assert.ErrorIs(t, err, ErrBadHandling)
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeProfile(t, "engine = = 3\n")
		_, err := LoadHandling(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadHandling(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestHandlingPath(t *testing.T) {
	t.Setenv(HandlingEnv, "/etc/drift/env.toml")
	assert.Equal(t, "flag.toml", HandlingPath("flag.toml"))
	assert.Equal(t, "/etc/drift/env.toml", HandlingPath(""))

	t.Setenv(HandlingEnv, "")
	assert.Equal(t, "", HandlingPath(""))
}

func TestResolveHandling(t *testing.T) {
	h, err := ResolveHandling("")
	require.NoError(t, err)
	assert.Equal(t, DefaultHandling(), h)

	path := writeProfile(t, "engine = 250.0\n")
	h, err = ResolveHandling(path)
	require.NoError(t, err)
	assert.Equal(t, 250.0, h.Engine)

	_, err = ResolveHandling(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestShippedProfileMatchesDefaults(t *testing.T) {
	h, err := LoadHandling(filepath.Join("..", "..", "configs", "handling.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultHandling(), h)
}
