package sgr_test

import (
	"slices"
	"testing"

	"github.com/arthur-debert/richconsole/pkg/sgr"
	"github.com/stretchr/testify/assert"
)

func TestCodesString(t *testing.T) {
	tests := []struct {
		name     string
		codes    sgr.Codes
		expected string
	}{
		{name: "nil", codes: nil, expected: ""},
		{name: "empty", codes: sgr.Of(), expected: ""},
		{name: "single", codes: sgr.Of(31), expected: "\x1b[31m"},
		{name: "full reset", codes: sgr.Of(0), expected: "\x1b[0m"},
		{name: "true colour", codes: sgr.Of(48, 2, 255, 0, 0), expected: "\x1b[48;2;255;0;0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.codes.String())
		})
	}
}

func TestCodesParams(t *testing.T) {
	assert.Equal(t, "", sgr.Of().Params())
	assert.Equal(t, "38;5;208", sgr.Of(38, 5, 208).Params())
}

func TestCodesConcat(t *testing.T) {
	a := sgr.Of(31)
	b := sgr.Of(44, 1)

	joined := a.Concat(b)

	assert.Equal(t, sgr.Of(31, 44, 1), joined)
	assert.Equal(t, sgr.Of(31), a, "receiver must not be modified")
	assert.True(t, joined.Equal(sgr.Of(31, 44, 1)))
	assert.False(t, joined.Equal(sgr.Of(44, 1, 31)))
	assert.True(t, sgr.Codes(nil).Equal(sgr.Of()))
}

func TestMerge(t *testing.T) {
	red, blue, green := sgr.Of(31), sgr.Of(44), sgr.Of(102)
	foreReset, backReset := sgr.Of(39), sgr.Of(49)

	input := []sgr.Token{
		sgr.Text("1"), sgr.Code(red), sgr.Code(blue),
		sgr.Text("2"), sgr.Code(green),
		sgr.Text("3"), sgr.Code(blue),
		sgr.Text("4"), sgr.Code(foreReset), sgr.Code(backReset),
		sgr.Text("5"),
	}
	expected := []sgr.Token{
		sgr.Text("1"), sgr.Code(red.Concat(blue)),
		sgr.Text("2"), sgr.Code(green),
		sgr.Text("3"), sgr.Code(blue),
		sgr.Text("4"), sgr.Code(foreReset.Concat(backReset)),
		sgr.Text("5"),
	}

	merged := slices.Collect(sgr.Merge(slices.Values(input)))

	assert.Equal(t, expected, merged)
	assert.Equal(t, sgr.Join(slices.Values(input)), "1\x1b[31m\x1b[44m2\x1b[102m3\x1b[44m4\x1b[39m\x1b[49m5")
	assert.Equal(t, "1\x1b[31;44m2\x1b[102m3\x1b[44m4\x1b[39;49m5", sgr.Join(slices.Values(merged)))
}

func TestMergeTrailingCodes(t *testing.T) {
	input := []sgr.Token{sgr.Text("x"), sgr.Code(sgr.Of(39)), sgr.Code(sgr.Of(49))}

	merged := slices.Collect(sgr.Merge(slices.Values(input)))

	assert.Equal(t, []sgr.Token{sgr.Text("x"), sgr.Code(sgr.Of(39, 49))}, merged)
}

func TestMergeDoesNotAliasInput(t *testing.T) {
	first := sgr.Of(31)
	input := []sgr.Token{sgr.Code(first), sgr.Code(sgr.Of(44))}

	_ = slices.Collect(sgr.Merge(slices.Values(input)))

	assert.Equal(t, sgr.Of(31), first)
}

func TestMergeStopsEarly(t *testing.T) {
	input := []sgr.Token{sgr.Code(sgr.Of(1)), sgr.Text("a"), sgr.Text("b")}

	var got []sgr.Token
	for tok := range sgr.Merge(slices.Values(input)) {
		got = append(got, tok)
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []sgr.Token{sgr.Code(sgr.Of(1)), sgr.Text("a")}, got)
}
