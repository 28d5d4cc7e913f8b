package parser

import "strconv"

// parseUint64 converts a decimal digit string into a uint64. The
// lexer has already verified the magnitude fits within
// 0..=9223372036854775807, so this only guards against a change in
// that invariant.
func parseUint64(digits string) (uint64, error) {
	return strconv.ParseUint(digits, 10, 64)
}
