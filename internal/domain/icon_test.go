package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIconEmpty(t *testing.T) {
	icon, err := ParseIcon("")
	assert.NoError(t, err)
	assert.Equal(t, IconNone, icon.Kind)

	icon, err = ParseIcon("   ")
	assert.NoError(t, err)
	assert.Equal(t, IconNone, icon.Kind)
}

func TestParseIconEmoji(t *testing.T) {
	icon, err := ParseIcon("🛒")
	assert.NoError(t, err)
	assert.Equal(t, IconEmoji, icon.Kind)
	assert.Equal(t, "🛒", icon.Value)

	// multi-rune glyphs still under the limit
	assert.True(t, IsValidIcon("👨‍👩‍👦"))

	// long plain text is neither a URL nor an emoji
	assert.False(t, IsValidIcon("not a url, way too long to be an emoji"))
}

func TestParseIconImageURL(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/logo.png":          true,
		"https://example.com/logo.svg":          true,
		"https://example.com/assets/image/x":    true,
		"https://example.com/favicon-icons/x":   true,
		"https://i.imgur.com/abcd":              true,
		"https://raw.githubusercontent.com/a/b": true,
		"http://example.com/logo.png":           false, // wrong scheme
		"https://example.com/page.html":         false,
		"ftp://example.com/logo.png":            false,
	}
	for value, want := range cases {
		assert.Equal(t, want, IsValidIcon(value), value)
	}
}
