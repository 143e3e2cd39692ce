package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	t.Setenv(pathVar, "")
	assert.Equal(t, "default.env", ResolvePath("default.env"))

	t.Setenv(pathVar, "/etc/calc.env")
	assert.Equal(t, "/etc/calc.env", ResolvePath("default.env"))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(file, []byte("CALC_TEST_A=from-file\nCALC_TEST_B=from-file\n"), 0o600))

	t.Run("loads without overriding", func(t *testing.T) {
		t.Setenv(pathVar, "")
		t.Setenv("CALC_TEST_B", "from-process")
		t.Cleanup(func() { _ = os.Unsetenv("CALC_TEST_A") })

		require.NoError(t, LoadDotEnv("local", file))
		assert.Equal(t, "from-file", os.Getenv("CALC_TEST_A"))
		assert.Equal(t, "from-process", os.Getenv("CALC_TEST_B"))
	})

	missing := filepath.Join(dir, "missing.env")

	t.Run("missing file is an error locally", func(t *testing.T) {
		t.Setenv(pathVar, "")
		assert.Error(t, LoadDotEnv("", missing))
		assert.Error(t, LoadDotEnv("local", missing))
	})

	t.Run("missing file is ignored elsewhere", func(t *testing.T) {
		t.Setenv(pathVar, missing)
		assert.NoError(t, LoadDotEnv("production", "unused.env"))
	})
}
