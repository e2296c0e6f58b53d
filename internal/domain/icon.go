package domain

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// IconKind distinguishes the two accepted icon forms.
type IconKind int

const (
	IconNone IconKind = iota
	IconEmoji
	IconImageURL
)

// Icon is a validated category/platform icon: either a short emoji
// glyph or an https image URL. The raw string is kept for storage.
type Icon struct {
	Kind  IconKind
	Value string
}

var ErrInvalidIcon = errors.New("icon must be an emoji or a secure HTTPS URL pointing to an image (PNG, JPG, SVG, WebP)")

var iconImageExtensions = []string{".png", ".jpg", ".jpeg", ".svg", ".webp", ".gif"}

var iconTrustedDomains = []string{"imgur.com", "github.com", "githubusercontent.com", "unsplash.com", "pexels.com"}

// ParseIcon classifies an icon value. Empty input is valid and yields
// IconNone. An https URL is accepted when its path carries an image
// extension, its host ends with a trusted domain, or the path contains
// "image" or "icon". Anything that does not parse as a URL is treated
// as an emoji and accepted up to 10 characters. The length check is a
// deliberate heuristic, not grapheme-aware emoji detection.
func ParseIcon(value string) (Icon, error) {
	if strings.TrimSpace(value) == "" {
		return Icon{Kind: IconNone}, nil
	}

	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		// not a URL, treat as emoji glyph
		if len([]rune(value)) <= 10 {
			return Icon{Kind: IconEmoji, Value: value}, nil
		}
		return Icon{}, ErrInvalidIcon
	}

	if u.Scheme != "https" {
		return Icon{}, ErrInvalidIcon
	}

	pathname := strings.ToLower(u.Path)
	for _, ext := range iconImageExtensions {
		if strings.HasSuffix(pathname, ext) {
			return Icon{Kind: IconImageURL, Value: value}, nil
		}
	}
	host := strings.ToLower(u.Hostname())
	for _, domain := range iconTrustedDomains {
		if strings.HasSuffix(host, domain) {
			return Icon{Kind: IconImageURL, Value: value}, nil
		}
	}
	if strings.Contains(pathname, "image") || strings.Contains(pathname, "icon") {
		return Icon{Kind: IconImageURL, Value: value}, nil
	}
	return Icon{}, ErrInvalidIcon
}

// IsValidIcon reports whether the value passes ParseIcon.
func IsValidIcon(value string) bool {
	_, err := ParseIcon(value)
	return err == nil
}
