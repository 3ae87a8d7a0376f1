package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kit/pkg/config"
	"github.com/dmitrymomot/kit/pkg/enum"
	"github.com/dmitrymomot/kit/pkg/input"
)

// execute runs the command tree with a clean configuration.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdout  string
		stderr  string
		wantErr error
	}{
		{
			name:   "accepted text",
			args:   []string{"validate", "--modifier", "length:min=5,max=10", "hello"},
			stdout: "hello\n",
		},
		{
			name:    "rejected text",
			args:    []string{"validate", "-m", "length:min=5,max=10", "hi"},
			stderr:  "must be between 5 and 10 characters long\n",
			wantErr: ErrRejected,
		},
		{
			name:    "german message",
			args:    []string{"--lang", "de", "validate", "-m", "length:min=5,max=10", "hi"},
			stderr:  "muss zwischen 5 und 10 Zeichen lang sein\n",
			wantErr: ErrRejected,
		},
		{
			name:    "technical level",
			args:    []string{"--level", "technical", "validate", "-m", "length:min=5,max=10", "hi"},
			stderr:  "length: must be between 5 and 10 characters long\n",
			wantErr: ErrRejected,
		},
		{
			name:   "filters run before semantic checks",
			args:   []string{"validate", "-m", "trim", "-m", "uri:schemes=http,https", " https://example.com "},
			stdout: "https://example.com\n",
		},
		{
			name:    "scheme not allowed",
			args:    []string{"validate", "-m", "uri:schemes=https", "ftp://example.com"},
			wantErr: ErrRejected,
		},
		{
			name:   "integer",
			args:   []string{"validate", "--type", "integer", "-m", "range:min=1,max=100", "42"},
			stdout: "42\n",
		},
		{
			name:    "integer out of range",
			args:    []string{"validate", "--type", "integer", "-m", "range:min=1,max=10", "11"},
			stderr:  "must be between 1 and 10\n",
			wantErr: ErrRejected,
		},
		{
			name:    "not an integer",
			args:    []string{"validate", "-t", "integer", "abc"},
			stderr:  "must be an integer\n",
			wantErr: ErrRejected,
		},
		{
			name:   "boolean",
			args:   []string{"validate", "-t", "boolean", "yes"},
			stdout: "true\n",
		},
		{
			name:   "datetime",
			args:   []string{"validate", "-t", "datetime", "-m", "utc", "2024-05-01T12:00:00+02:00"},
			stdout: "2024-05-01T10:00:00Z\n",
		},
		{
			name:   "uuid",
			args:   []string{"validate", "-t", "uuid", "6BA7B810-9DAD-11D1-80B4-00C04FD430C8"},
			stdout: "6ba7b810-9dad-11d1-80b4-00c04fd430c8\n",
		},
		{
			name:   "nullable without value",
			args:   []string{"validate", "--nullable"},
			stdout: "null\n",
		},
		{
			name:    "required without value",
			args:    []string{"validate"},
			stderr:  "value is required\n",
			wantErr: ErrRejected,
		},
		{
			name:    "unknown modifier",
			args:    []string{"validate", "-m", "nope", "x"},
			wantErr: input.ErrUnknownModifier,
		},
		{
			name:    "bad modifier props",
			args:    []string{"validate", "-m", "length:min=x", "x"},
			wantErr: input.ErrInvalidProps,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tt.stdout != "" || tt.wantErr == nil {
				assert.Equal(t, tt.stdout, stdout)
			}
			if tt.stderr != "" {
				assert.Equal(t, tt.stderr, stderr)
			}
		})
	}
}

func TestValidateCommand_UnknownType(t *testing.T) {
	_, _, err := execute(t, "validate", "--type", "money", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown type "money"`)
}

func TestValidateCommand_LangFromEnv(t *testing.T) {
	t.Setenv("KIT_LANG", "de-CH,de;q=0.9")

	_, stderr, err := execute(t, "validate", "-t", "uuid", "nope")
	require.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "muss eine gültige UUID sein\n", stderr)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	t.Setenv("KIT_LOG_FORMAT", "xml")

	_, _, err := execute(t, "enum", "list")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	t.Setenv("KIT_LOG_FORMAT", "text")
	_, _, err = execute(t, "--level", "loud", "enum", "list")
	assert.Error(t, err)
}

func TestEnumCommand(t *testing.T) {
	t.Run("list tables", func(t *testing.T) {
		stdout, _, err := execute(t, "enum", "list")
		require.NoError(t, err)
		assert.Contains(t, stdout, "rfc3986\t")
		assert.Contains(t, stdout, "rfc5234\t16\n")
	})

	t.Run("list entries", func(t *testing.T) {
		stdout, _, err := execute(t, "enum", "list", "rfc5234")
		require.NoError(t, err)
		assert.Contains(t, stdout, "DIGIT\t[0-9]\n")
	})

	t.Run("lookup", func(t *testing.T) {
		stdout, _, err := execute(t, "enum", "lookup", "rfc5234", "HEXDIG")
		require.NoError(t, err)
		assert.Equal(t, "[0-9A-Fa-f]\n", stdout)
	})

	t.Run("unknown table", func(t *testing.T) {
		_, _, err := execute(t, "enum", "list", "rfc0000")
		assert.ErrorIs(t, err, enum.ErrUnknownEnumeration)
	})

	t.Run("unknown entry", func(t *testing.T) {
		_, _, err := execute(t, "enum", "lookup", "rfc5234", "NOPE")
		assert.ErrorIs(t, err, enum.ErrUnknownName)
	})
}

func TestTextCommand(t *testing.T) {
	t.Run("render with params", func(t *testing.T) {
		stdout, _, err := execute(t, "text", "render", "constraint.length.range", "min=5", "max=10")
		require.NoError(t, err)
		assert.Equal(t, "must be between 5 and 10 characters long\n", stdout)
	})

	t.Run("render in german", func(t *testing.T) {
		stdout, _, err := execute(t, "--lang", "de", "text", "render", "input.required")
		require.NoError(t, err)
		assert.Equal(t, "Wert ist erforderlich\n", stdout)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, _, err := execute(t, "text", "render", "no.such.key")
		assert.ErrorIs(t, err, errUnknownKey)
	})

	t.Run("malformed param", func(t *testing.T) {
		_, _, err := execute(t, "text", "render", "input.required", "oops")
		assert.ErrorIs(t, err, errMalformedProperty)
	})

	t.Run("extra translations", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.yaml"), []byte(
			"en:\n  greeting: \"Hi %{name}\"\n  input:\n    required: \"please fill in\"\n",
		), 0o600))
		t.Setenv("KIT_TRANSLATIONS_DIR", dir)

		stdout, _, err := execute(t, "text", "render", "greeting", "name=Bob")
		require.NoError(t, err)
		assert.Equal(t, "Hi Bob\n", stdout)

		_, stderr, err := execute(t, "validate")
		require.ErrorIs(t, err, ErrRejected)
		assert.Equal(t, "please fill in\n", stderr)
	})
}

func TestParseModifier(t *testing.T) {
	tests := []struct {
		spec  string
		name  string
		props map[string]any
		err   error
	}{
		{spec: "trim", name: "trim", props: map[string]any{}},
		{spec: " length : min=1,max=3", name: "length", props: map[string]any{"min": "1", "max": "3"}},
		{spec: "uri:schemes=http,https", name: "uri", props: map[string]any{"schemes": "http,https"}},
		{spec: "choice:values=a,b,c,strict=x", name: "choice", props: map[string]any{"values": "a,b,c", "strict": "x"}},
		{spec: "pattern:expr=^a=b$", name: "pattern", props: map[string]any{"expr": "^a=b$"}},
		{spec: ":min=1", err: errEmptyModifierName},
		{spec: "length:min", err: errMalformedProperty},
		{spec: "length:=1", err: errMalformedProperty},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			name, props, err := parseModifier(tt.spec)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.props, props)
		})
	}
}
