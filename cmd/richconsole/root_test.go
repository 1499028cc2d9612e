package richconsole_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/richconsole/cmd/richconsole"
	"github.com/arthur-debert/richconsole/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the commands away from the user's config and state dirs.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := richconsole.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	isolate(t)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "terminal",
			args:     []string{"render", "--format", "term", "<Fore.red>x</Fore.red> y"},
			expected: "\x1b[31mx\x1b[39m y\n",
		},
		{
			name:     "arguments back to back",
			args:     []string{"render", "--format", "term", "<Fore.red>a</Fore.red>", "<Back.lightgreenEx>b</Back.lightgreenEx>"},
			expected: "\x1b[31ma\x1b[39;102mb\x1b[49m\n",
		},
		{
			name:     "no merge",
			args:     []string{"render", "--format", "term", "--no-merge", "<Fore.red>a</Fore.red>", "<Back.lightgreenEx>b</Back.lightgreenEx>"},
			expected: "\x1b[31ma\x1b[39m\x1b[102mb\x1b[49m\n",
		},
		{
			name:     "text format",
			args:     []string{"render", "--format", "text", "<Fore.red>x</Fore.red> y"},
			expected: "x y\n",
		},
		{
			name:     "plain command",
			args:     []string{"plain", "<style fore=\"red\" decor=\"italic\">x</style>", "y"},
			expected: "xy\n",
		},
		{
			name:     "html command",
			args:     []string{"html", "<Decor.italic>i</Decor.italic>"},
			expected: "<span><span style='font-style:italic'>i</span></span>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestPlainCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "plain", "<Fore.nope>a</Fore.nope> &lt;b&gt;", "<span>c</span>")
	require.NoError(t, err)
	assert.Equal(t, "a <b>c\n", out, "style names are not resolved")

	out, err = run(t, "<Decor.italic>from stdin</Decor.italic>\n", "plain")
	require.NoError(t, err)
	assert.Equal(t, "from stdin\n", out)

	_, err = run(t, "", "plain", "<Fore.red>x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrMarkupParse))
}

func TestRenderFromStdin(t *testing.T) {
	isolate(t)

	out, err := run(t, "<Brightness.bright>b</Brightness.bright>\n", "render", "--format", "term")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1mb\x1b[21m\n", out)
}

func TestRenderErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{name: "unknown style", args: []string{"render", "<Fore.nope>x</Fore.nope>"}, code: errors.ErrUnknownStyle},
		{name: "unknown group", args: []string{"render", "<Nope.red>x</Nope.red>"}, code: errors.ErrUnknownGroup},
		{name: "malformed", args: []string{"render", "<Fore.red>x"}, code: errors.ErrMarkupParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestInvalidFormatFlag(t *testing.T) {
	isolate(t)

	_, err := run(t, "", "render", "--format", "pdf", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestConfigFileSettings(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "richconsole", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("[render]\nformat = \"text\"\n"), 0644))

	out, err := run(t, "", "render", "<Fore.red>x</Fore.red>")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)
}

func TestPaletteFlag(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "brand.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  - name: brand_accent\n    index: 208\n"), 0644))

	out, err := run(t, "", "render", "--format", "term", "--palette", path, "<Fore.brandAccent>x</Fore.brandAccent>")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[38;5;208mx\x1b[39m\n", out)

	// a missing palette file is skipped
	out, err = run(t, "", "render", "--format", "term", "--palette", filepath.Join(dir, "absent.yaml"), "<Fore.red>x</Fore.red>")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31mx\x1b[39m\n", out)

	// a broken one is not
	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("colors: ["), 0644))
	_, err = run(t, "", "render", "--palette", broken, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to import palettes")
}

func TestCatalogCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "catalog", "--format", "text", "Brightness", "Decor")
	require.NoError(t, err)
	assert.Contains(t, out, "Style catalog")
	assert.Contains(t, out, "Brightness")
	assert.Contains(t, out, "bright")
	assert.Contains(t, out, "fraktur")
	assert.NotContains(t, out, "Underline")
	assert.NotContains(t, out, "\x1b[1msample")

	out, err = run(t, "", "catalog", "--format", "text", "-n", "2", "Fore")
	require.NoError(t, err)
	assert.Contains(t, out, "reset")
	assert.Contains(t, out, "more")

	assert.True(t, pterm.PrintColor, "colour output is restored after a plain listing")

	_, err = run(t, "", "catalog", "Nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownGroup))
}

func TestSyntaxCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "syntax", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, richconsole.MsgSyntax, out)
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "richconsole version")
}

func TestCompletionCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "richconsole")

	_, err = run(t, "", "completion", "tcsh")
	assert.Error(t, err)
}

func TestNoCommand(t *testing.T) {
	isolate(t)

	_, err := run(t, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
