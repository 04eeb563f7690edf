package localtoken

import (
	"fmt"
	"strings"
)

// fieldSeparator delimits wire fields in the plaintext before encryption.
const fieldSeparator = "\t"

// sealFields joins the wire fields with the tab separator and encrypts the
// result under the issuer-derived key. A field value containing the
// separator is rejected here rather than producing a payload that would
// only fail the count check on parse.
func sealFields(fields []string, masterKey, issuer string) (string, error) {
	for i, f := range fields {
		if strings.Contains(f, fieldSeparator) {
			return "", fmt.Errorf("field %d contains the field separator", i)
		}
	}
	return seal(strings.Join(fields, fieldSeparator), masterKey, issuer)
}

// openFields decrypts a sealed payload and splits it into exactly wantCount
// fields. strings.Split keeps empty trailing fields, so an empty schema or
// role slot survives the round trip instead of being coalesced away.
func openFields(encoded, masterKey, issuer string, wantCount int) ([]string, error) {
	plain, err := open(encoded, masterKey, issuer)
	if err != nil {
		return nil, err
	}
	fields := strings.Split(plain, fieldSeparator)
	if len(fields) != wantCount {
		return nil, fmt.Errorf("%w: got %d fields, want %d", ErrFieldCountMismatch, len(fields), wantCount)
	}
	return fields, nil
}
