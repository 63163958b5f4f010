package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeToken canonicalizes an enumerated value as written in files or forms:
// surrounding space is trimmed, letters are upper-cased and hyphens or inner spaces
// become underscores ("zip-up" and "Zip up" both yield "ZIP_UP").
func NormalizeToken(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return '_'
		}
		return r
	}, s)
}

// SplitList splits s on sep, trims each element and drops empty ones.
func SplitList(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ToFloat parses a decimal number, rejecting NaN and infinities.
func ToFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}
