// Package sharetoken converts URLs to and from the "u!" sharing tokens
// accepted by the Microsoft Graph /shares/{encodedSharingUrl} endpoint.
package sharetoken

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/recapurl/internal/common/errorwrapper"
)

// Prefix marks a token as an encoded sharing URL.
const Prefix = "u!"

var (
	// ErrEncodingPrecondition is returned when the input is not valid UTF-8 text.
	ErrEncodingPrecondition = fmt.Errorf("sharing url is not valid UTF-8: %w", errorwrapper.ErrInvalidInput)
	// ErrCorruptToken is returned when a token cannot be valid unpadded base64.
	ErrCorruptToken = fmt.Errorf("corrupt sharing token: %w", errorwrapper.ErrInvalidInput)
)

// Encode returns "u!" followed by the unpadded URL-safe base64 of sharingURL.
func Encode(sharingURL string) (string, error) {
	if !utf8.ValidString(sharingURL) {
		return "", ErrEncodingPrecondition
	}
	return Prefix + base64.RawURLEncoding.EncodeToString([]byte(sharingURL)), nil
}

// RestorePadding re-appends the '=' padding stripped by Encode.
// A length of 1 mod 4 can never come from base64 and is rejected.
func RestorePadding(encoded string) (string, error) {
	switch len(encoded) % 4 {
	case 0:
		return encoded, nil
	case 2:
		return encoded + "==", nil
	case 3:
		return encoded + "=", nil
	default:
		return "", errorwrapper.WrapError(ErrCorruptToken, "invalid length")
	}
}

// Decode reverses Encode. The "u!" prefix is optional.
func Decode(token string) (string, error) {
	padded, err := RestorePadding(strings.TrimPrefix(token, Prefix))
	if err != nil {
		return "", err
	}

	raw, err := base64.URLEncoding.DecodeString(padded)
	if err != nil {
		return "", errorwrapper.WrapError(ErrCorruptToken, err.Error())
	}
	if !utf8.Valid(raw) {
		return "", errorwrapper.WrapError(ErrCorruptToken, "decoded bytes are not UTF-8")
	}
	return string(raw), nil
}
