package tokengraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToKebab(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"primaryForeground", "primary-foreground"},
		{"buttonGhostBackground", "button-ghost-background"},
		{"background", "background"},
		{"primary-500", "primary-500"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToKebab(tt.input))
		})
	}
}

func TestToCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"primary-foreground", "primaryForeground"},
		{"button-ghost-background", "buttonGhostBackground"},
		{"background", "background"},
		{"trailing-", "trailing"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToCamel(tt.input))
		})
	}
}

func TestSplitPrefixSuffix(t *testing.T) {
	tests := []struct {
		input  string
		prefix string
		suffix string
		ok     bool
	}{
		{"primary-500", "primary", "500", true},
		{"outline-ring", "outline", "ring", true},
		{"button-ghost-background", "button-ghost", "background", true},
		{"background", "", "", false},
		{"-leading", "", "", false},
		{"trailing-", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prefix, suffix, ok := SplitPrefixSuffix(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.suffix, suffix)
		})
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric("200"))
	assert.True(t, isNumeric("50"))
	assert.False(t, isNumeric(""))
	assert.False(t, isNumeric("5a0"))
	assert.False(t, isNumeric("-50"))
}
