package util

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// SwapHexBytes reverses the order of the two-character byte groups of the
// given hex string, converting a little-endian rendering of an integer to a
// big-endian one and vice versa. The result is upper case.
func SwapHexBytes(s string) (string, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return strings.ToUpper(hex.EncodeToString(ArrayReverse(b))), nil
}

// Uint64FromHexLE parses a little-endian hex rendering of an unsigned integer
// of at most 8 bytes.
func Uint64FromHexLE(s string) (uint64, error) {
	if len(s) > 16 {
		return 0, fmt.Errorf("%d hex characters is too wide for uint64", len(s))
	}
	be, err := SwapHexBytes(s)
	if err != nil {
		return 0, err
	}
	if be == "" {
		return 0, nil
	}
	return strconv.ParseUint(be, 16, 64)
}

// NormalizeHex trims surrounding whitespace and an optional 0x prefix from s
// and upper-cases it. It fails if anything but hex digits remain.
func NormalizeHex(s string) (string, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	for i, c := range s {
		if !isHexDigit(c) {
			return "", fmt.Errorf("invalid hex character %q at position %d", c, i)
		}
	}
	return strings.ToUpper(s), nil
}

func isHexDigit(c rune) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
