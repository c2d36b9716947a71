package optset

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
[volume]
default = 5
options = [0, 5, 10]

[size]
default = "large"
options = [{large = "L"}, {small = "S"}]

[toggle]
default = true
options = [true, false]
`

type testEnv struct {
	dir      string
	schema   string
	settings string
}

// setupEnv points optset at a fresh config directory holding the test schema
func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("OPTSET_CONFIG_DIR", dir)
	t.Setenv("OPTSET_STATE_DIR", filepath.Join(dir, "state"))
	t.Setenv("NO_COLOR", "1")
	for _, key := range []string{"OPTSET_SCHEMA", "OPTSET_FILE", "OPTSET_ON_CONFLICT", "OPTSET_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	env := &testEnv{
		dir:      dir,
		schema:   filepath.Join(dir, "schema.toml"),
		settings: filepath.Join(dir, "settings.json"),
	}
	require.NoError(t, os.WriteFile(env.schema, []byte(testSchema), 0644))
	return env
}

// run executes the command line with text output and returns stdout
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	rootCmd := NewRootCmd()
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--format", "text"}, args...))

	err := rootCmd.Execute()
	return stdout.String(), err
}

func (e *testEnv) readSettings(t *testing.T) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(e.settings)
	require.NoError(t, err)
	if len(data) == 0 {
		return nil
	}
	var values map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &values))
	return values
}

func (e *testEnv) writeSettings(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(e.settings, []byte(content), 0644))
}

func TestListCommand_Defaults(t *testing.T) {
	env := setupEnv(t)

	out, err := run(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "size = L\ntoggle = true\nvolume = 5\n", out)

	_, statErr := os.Stat(env.settings)
	assert.True(t, os.IsNotExist(statErr), "list must not create the settings file")
}

func TestListCommand_WithOptions(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "list", "--options")
	require.NoError(t, err)
	assert.Contains(t, out, "size = L\n  * [0] large => L\n    [1] small => S\n")
}

func TestSetAndGet(t *testing.T) {
	env := setupEnv(t)

	out, err := run(t, "", "set", "volume", "10")
	require.NoError(t, err)
	assert.Equal(t, "volume = 10\n", out)

	_, err = run(t, "", "set", "size", "small")
	require.NoError(t, err)

	_, err = run(t, "", "set", "toggle", "false")
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"volume": float64(10),
		"size":   "small",
		"toggle": false,
	}, env.readSettings(t))

	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"get", "volume"}, "10\n"},
		{[]string{"get", "size"}, "S\n"},
		{[]string{"get", "size", "--literal"}, "small\n"},
		{[]string{"get", "toggle"}, "false\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestSetCommand_Errors(t *testing.T) {
	env := setupEnv(t)

	_, err := run(t, "", "set", "volume", "7")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidValue))

	_, err = run(t, "", "set", "size", "L")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidValue), "effective values are not accepted")

	_, err = run(t, "", "set", "missing", "1")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownSetting))

	assert.Nil(t, env.readSettings(t), "failed sets leave the new file empty")
}

func TestGetCommand_Unknown(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "", "get", "missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownSetting))
}

func TestOptionsCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "options", "size")
	require.NoError(t, err)
	assert.Equal(t, "* [0] large => L\n  [1] small => S\n", out)

	out, err = run(t, "", "options", "size", "--literal")
	require.NoError(t, err)
	assert.Equal(t, "* [0] large\n  [1] small\n", out)
}

func TestResetCommand(t *testing.T) {
	env := setupEnv(t)

	_, err := run(t, "", "set", "volume", "0")
	require.NoError(t, err)

	out, err := run(t, "", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "reset to defaults")
	assert.Nil(t, env.readSettings(t))

	out, err = run(t, "", "get", "volume")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestConflictPolicies(t *testing.T) {
	t.Run("reset clears the file and restores defaults", func(t *testing.T) {
		env := setupEnv(t)
		env.writeSettings(t, `{"size": "small", "volume": 11}`)

		out, err := run(t, "", "--on-conflict", "reset", "list")
		require.NoError(t, err)
		assert.Equal(t, "size = L\ntoggle = true\nvolume = 5\n", out)
		assert.Nil(t, env.readSettings(t))
	})

	t.Run("keep skips bad entries", func(t *testing.T) {
		env := setupEnv(t)
		env.writeSettings(t, `{"size": "small", "volume": 11}`)

		out, err := run(t, "", "--on-conflict", "keep", "list")
		require.NoError(t, err)
		assert.Equal(t, "size = S (modified)\ntoggle = true\nvolume = 5\n", out)
		assert.Equal(t, map[string]interface{}{"size": "small", "volume": float64(11)}, env.readSettings(t))
	})

	t.Run("prompt reads the answer from stdin", func(t *testing.T) {
		env := setupEnv(t)
		env.writeSettings(t, `{"colour": "red"}`)

		_, err := run(t, "yes\n", "list")
		require.NoError(t, err)
		assert.Nil(t, env.readSettings(t))
	})

	t.Run("prompt declined on end of input", func(t *testing.T) {
		env := setupEnv(t)
		env.writeSettings(t, `not json`)

		out, err := run(t, "", "list")
		require.NoError(t, err)
		assert.Equal(t, "size = L\ntoggle = true\nvolume = 5\n", out)

		data, err := os.ReadFile(env.settings)
		require.NoError(t, err)
		assert.Equal(t, "not json", string(data))
	})

	t.Run("configured in config.toml", func(t *testing.T) {
		env := setupEnv(t)
		require.NoError(t, os.WriteFile(filepath.Join(env.dir, "config.toml"), []byte(`on_conflict = "reset"`), 0644))
		env.writeSettings(t, `{"volume": 11}`)

		_, err := run(t, "", "list")
		require.NoError(t, err)
		assert.Nil(t, env.readSettings(t))
	})
}

func TestDescribeCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "describe")
	require.NoError(t, err)
	assert.Contains(t, out, "# Settings")
	assert.Contains(t, out, "## volume")
	assert.Contains(t, out, "| 1 | `small` | `S` |  |")
}

func TestJSONFormat(t *testing.T) {
	setupEnv(t)

	var stdout bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"--format", "json", "get", "size"})
	require.NoError(t, rootCmd.Execute())

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
	assert.Equal(t, "size", decoded["name"])
	assert.Equal(t, "L", decoded["value"])
	assert.Equal(t, false, decoded["literal"])
}

func TestFlagsOverrideConfig(t *testing.T) {
	env := setupEnv(t)
	other := filepath.Join(env.dir, "other.json")

	_, err := run(t, "", "--file", other, "set", "volume", "0")
	require.NoError(t, err)

	_, err = os.Stat(other)
	require.NoError(t, err)
	_, err = os.Stat(env.settings)
	assert.True(t, os.IsNotExist(err))
}

func TestSchemaErrors(t *testing.T) {
	env := setupEnv(t)

	_, err := run(t, "", "--schema", filepath.Join(env.dir, "missing.toml"), "list")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))

	require.NoError(t, os.WriteFile(env.schema, []byte("[volume]\ndefault = 3\noptions = [1, 2]\n"), 0644))
	_, err = run(t, "", "list")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidOption))
	assert.Equal(t, errors.ReasonDefaultNotInOpts, errors.GetErrorDetail(err, errors.DetailReason))
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OPTSET_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("OPTSET_STATE_DIR", filepath.Join(dir, "state"))

	out, err := run(t, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+filepath.Join(dir, "config", "schema.toml"))
	assert.Contains(t, out, "Created "+filepath.Join(dir, "config", "settings.json"))

	out, err = run(t, "", "get", "img_size")
	require.NoError(t, err)
	assert.Equal(t, "1920x1080\n", out)

	out, err = run(t, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
}

func TestGenSchemaCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "gen-schema")
	require.NoError(t, err)
	assert.Contains(t, out, "volume_level")

	path := filepath.Join(t.TempDir(), "schema.yaml")
	out, err = run(t, "", "gen-schema", "--format", "yaml", "-w", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "img_size:")
}

func TestRootCommand(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	out, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")

	out, err = run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "optset")
}

func TestCommandLogging(t *testing.T) {
	env := setupEnv(t)

	_, err := run(t, "", "-vv", "list")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(env.dir, "state", "optset.log"))
	require.NoError(t, err)
	logged := string(data)
	assert.Contains(t, logged, `"message":"Executing command"`)
	assert.Contains(t, logged, `"command":"list"`)
	assert.Contains(t, logged, `"component":"cmd"`, "session logger carries its fields")
	assert.Contains(t, logged, "Settings file missing, using defaults")
}
