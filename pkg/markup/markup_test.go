package markup_test

import (
	"testing"

	"github.com/arthur-debert/richconsole/pkg/errors"
	"github.com/arthur-debert/richconsole/pkg/markup"
	"github.com/arthur-debert/richconsole/pkg/richstr"
	"github.com/arthur-debert/richconsole/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *style.Catalog {
	t.Helper()
	cat := style.NewCatalog()
	for _, c := range []style.Style{
		style.NewBasicColor("red", 1, false, false),
		style.NewBasicColor("lightgreenEx", 2, true, false),
	} {
		_, err := cat.Fore().Add(c)
		require.NoError(t, err)
		_, err = cat.Back().Add(c)
		require.NoError(t, err)
	}
	return cat
}

func TestParse(t *testing.T) {
	cat := testCatalog(t)
	p := markup.NewParser(cat)
	r := richstr.NewRenderer(cat)

	tests := []struct {
		name     string
		input    string
		expected string
		plain    string
	}{
		{
			name:     "nested group tags",
			input:    "DDD<Fore.red>RRR<Back.lightgreenEx>GGG</Back.lightgreenEx>rrr</Fore.red>ddd",
			expected: "DDD\x1b[31mRRR\x1b[102mGGG\x1b[49mrrr\x1b[39mddd",
			plain:    "DDDRRRGGGrrrddd",
		},
		{
			name:     "style attributes",
			input:    `<style fore="red" Brightness="bright">x</style>`,
			expected: "\x1b[31;1mx\x1b[39;21m",
			plain:    "x",
		},
		{
			name:     "group names ignore case",
			input:    "<fore.red>x</fore.red>",
			expected: "\x1b[31mx\x1b[39m",
			plain:    "x",
		},
		{
			name:     "span and references",
			input:    "<span>a &lt; b</span>",
			expected: "a < b",
			plain:    "a < b",
		},
		{
			name:     "plain text",
			input:    "just text",
			expected: "just text",
			plain:    "just text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := p.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r.Render(n))
			assert.Equal(t, tt.plain, n.Plain())

			stripped, err := markup.Strip(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, stripped)
		})
	}
}

func TestParseErrors(t *testing.T) {
	p := markup.NewParser(testCatalog(t))

	tests := []struct {
		name  string
		input string
		code  errors.ErrorCode
	}{
		{name: "unclosed tag", input: "<Fore.red>x", code: errors.ErrMarkupParse},
		{name: "mismatched tags", input: "<Fore.red>x</Back.red>", code: errors.ErrMarkupParse},
		{name: "unknown tag", input: "<bold>x</bold>", code: errors.ErrMarkupParse},
		{name: "unknown group", input: "<Sparkle.on>x</Sparkle.on>", code: errors.ErrUnknownGroup},
		{name: "unknown style", input: "<Fore.mauve>x</Fore.mauve>", code: errors.ErrUnknownStyle},
		{name: "unknown attribute group", input: `<style glow="on">x</style>`, code: errors.ErrUnknownGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestParseDefaultCatalog(t *testing.T) {
	n, err := markup.Parse("<Underline.underline>u</Underline.underline>")
	require.NoError(t, err)

	assert.Equal(t, "\x1b[4mu\x1b[24m", n.String())
}
