package localtoken

import (
	"fmt"
	"strconv"
)

// obfuscateTimestamp renders a millisecond timestamp with its decimal digits
// reversed so the high-entropy low-order digits lead the plaintext. This
// defeats casual recognition of sequential issuance; the cipher, not this
// transform, is the security boundary.
func obfuscateTimestamp(millis int64) string {
	return reverseString(strconv.FormatInt(millis, 10))
}

// deobfuscateTimestamp is the exact inverse of obfuscateTimestamp. A value
// whose decimal form ends in zeros arrives with leading zeros here and
// still parses back to the original integer.
func deobfuscateTimestamp(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty timestamp field")
	}
	millis, err := strconv.ParseInt(reverseString(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric timestamp field: %w", err)
	}
	if millis < 0 {
		return 0, fmt.Errorf("negative timestamp: %d", millis)
	}
	return millis, nil
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
