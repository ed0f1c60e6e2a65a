package validator

import (
	"fmt"
	"strings"

	apperrors "zip2mp/pkg/errors"
)

// Letters never assigned as the leading letter of a Canadian postal code.
var forbiddenFirstLetters = map[byte]struct{}{
	'D': {}, 'F': {}, 'I': {}, 'O': {}, 'Q': {}, 'U': {}, 'W': {}, 'Z': {},
}

// Letters never assigned in the third and fifth positions.
var forbiddenInnerLetters = map[byte]struct{}{
	'D': {}, 'F': {}, 'I': {}, 'O': {}, 'Q': {}, 'U': {},
}

// CanadianPostalCode canonicalizes a raw Canadian postal code to its 6-char
// uppercase form (letter-digit alternation, no separator) or rejects it with
// an INVALID_FORMAT failure. Input may carry spaces or hyphens in any
// position and any casing.
func CanadianPostalCode(raw string) (string, error) {
	code := strings.ToUpper(strings.NewReplacer(" ", "", "-", "").Replace(raw))

	if len(code) != 6 || !matchesPostalPattern(code) {
		return "", invalidCanadianCode(raw)
	}
	if _, forbidden := forbiddenFirstLetters[code[0]]; forbidden {
		return "", invalidCanadianCode(raw)
	}
	if _, forbidden := forbiddenInnerLetters[code[2]]; forbidden {
		return "", invalidCanadianCode(raw)
	}
	if _, forbidden := forbiddenInnerLetters[code[4]]; forbidden {
		return "", invalidCanadianCode(raw)
	}

	return code, nil
}

// SpacedCanadianPostalCode renders a canonical code as "ANA NAN" for APIs
// that require the spaced representation.
func SpacedCanadianPostalCode(code string) string {
	if len(code) != 6 {
		return code
	}
	return code[:3] + " " + code[3:]
}

func matchesPostalPattern(code string) bool {
	for i := 0; i < 6; i++ {
		c := code[i]
		if i%2 == 0 {
			if c < 'A' || c > 'Z' {
				return false
			}
		} else {
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}

func invalidCanadianCode(raw string) error {
	return apperrors.InvalidFormat(fmt.Sprintf(
		"Invalid Canadian postal code format: '%s'. Expected format: Letter-Digit-Letter Digit-Letter-Digit (e.g., K1A 0A6)",
		raw,
	))
}

// USZipCode canonicalizes a raw US ZIP code to its 5-digit form. Every
// non-digit character is dropped, which accepts ZIP+4 inputs uniformly and
// discards the +4 suffix. "00000" is a blocked placeholder.
func USZipCode(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() < 5 {
		return "", invalidUSZip(raw)
	}

	zip := digits.String()[:5]
	if zip == "00000" {
		return "", invalidUSZip(raw)
	}
	return zip, nil
}

func invalidUSZip(raw string) error {
	return apperrors.InvalidFormat(fmt.Sprintf(
		"Invalid US ZIP code format: '%s'. Expected format: 5 digits (e.g., 90210) or 5+4 format (e.g., 90210-1234)",
		raw,
	))
}
