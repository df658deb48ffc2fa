package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCmd(t *testing.T) {
	tests := []struct {
		name     string
		seed     map[string]any
		stdin    string
		args     []string
		expected string
	}{
		{"line breaks", nil, "", []string{"clean", "<p>Tom &amp; Jerry</p>\nend"}, "Tom & Jerry<br />end\n"},
		{"single line", nil, "", []string{"clean", "-s", "<p>Tom &amp; Jerry</p>\nend"}, "Tom & Jerry end\n"},
		{"stdin", nil, "<b>piped</b>\n", []string{"clean"}, "piped\n"},
		{"strict renderer", map[string]any{"format.renderer": "strict"}, "", []string{"clean", "<i>a &lt; b</i>"}, "a < b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t, tt.seed)

			out, err := run(t, tt.stdin, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestNewLinesCmd(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "", "newlines", "a\r\nb\rc\nd", "--with", "|")

	require.NoError(t, err)
	assert.Equal(t, "a|b|c|d\n", out)
}

func TestNewLinesCmd_DefaultReplacement(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "one\ntwo\n", "newlines")

	require.NoError(t, err)
	assert.Equal(t, "one two\n", out)
}

func TestShortenCmd(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "", "shorten", "hello world", "-n", "8")

	require.NoError(t, err)
	assert.Equal(t, "hello&hellip;\n", out)
}

func TestShortenCmd_ShortTextUnchanged(t *testing.T) {
	setupTestServices(t, nil)

	out, err := run(t, "", "shorten", "short", "--length", "10")

	require.NoError(t, err)
	assert.Equal(t, "short\n", out)
}

func TestShortenCmd_RequiresLength(t *testing.T) {
	setupTestServices(t, nil)

	_, err := run(t, "", "shorten", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "length" not set`)
}

func TestTextCmds_RejectExtraArgs(t *testing.T) {
	for _, name := range []string{"clean", "newlines", "format", "multilang"} {
		t.Run(name, func(t *testing.T) {
			setupTestServices(t, nil)

			_, err := run(t, "", name, "one", "two")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
		})
	}
}
