//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"strconv"
)

// FormatBits formats v as an n-digit natural (MSB-first) binary string.
// Register cell index i corresponds to the character at position n-1-i
// of the natural string; both the encoder and the outcome formatting in
// Compute derive their bit order from this mapping.
func FormatBits(v, n int) string {
	return fmt.Sprintf("%0*b", n, v)
}

// ParseBits parses a natural (MSB-first) binary string into its integer
// value.
func ParseBits(s string) (int, error) {
	v, err := strconv.ParseUint(s, 2, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid outcome %q: %w", s, err)
	}
	return int(v), nil
}
