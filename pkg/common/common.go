package common

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

// UUID returns a new random uuid string, the primary key format for
// every persisted entity.
func UUID() string {
	return uuid.NewString()
}

// ParseFloat64 parses text-encoded decimal values (prices, ratings,
// review counts). Empty or malformed input yields 0 rather than an
// error, matching the permissive storefront behavior.
func ParseFloat64(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
