package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 100, cfg.LineLength)
	assert.Equal(t, LayoutAuto, cfg.Function.Args)
	assert.Equal(t, "Bindings", cfg.InterfaceName())
	assert.False(t, cfg.IncludeVersion)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "cbindgen.toml", `
header = "/* License */"
autogen_warning = "/* DO NOT EDIT */"
include_version = true
line_length = 80

[function]
args = "vertical"

[java]
package = "com.example.ffi"
interface_name = "NativeLib"
extra_defs = "long version();"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/* License */", cfg.Header)
	assert.Equal(t, "/* DO NOT EDIT */", cfg.AutogenWarning)
	assert.True(t, cfg.IncludeVersion)
	assert.Equal(t, 80, cfg.LineLength)
	assert.Equal(t, LayoutVertical, cfg.Function.Args)
	assert.Equal(t, "com.example.ffi", cfg.Java.Package)
	assert.Equal(t, "NativeLib", cfg.InterfaceName())
	assert.Equal(t, "long version();", cfg.Java.ExtraDefs)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "cbindgen.yaml", `
line_length: 60
function:
  args: horizontal
java:
  package: org.demo
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.LineLength)
	assert.Equal(t, LayoutHorizontal, cfg.Function.Args)
	assert.Equal(t, "org.demo", cfg.Java.Package)
	// Unset fields keep defaults.
	assert.Equal(t, "Bindings", cfg.InterfaceName())
}

func TestLoadAppliesDefaultsForUnsetFields(t *testing.T) {
	path := writeConfig(t, "cbindgen.toml", `header = "/* x */"`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.LineLength)
	assert.Equal(t, LayoutAuto, cfg.Function.Args)
}

func TestLoadRejectsInvalidLayout(t *testing.T) {
	path := writeConfig(t, "cbindgen.toml", `
[function]
args = "diagonal"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "function.args")
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeConfig(t, "cbindgen.json", `{}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Function.Args = "sideways"
	assert.Error(t, cfg.Validate())
}
