// Package sessiontoken decodes the session tokens Shopify issues to the
// embedded admin UI.
//
// SECURITY NOTE: Decode deliberately skips signature and expiry
// verification, matching the service's existing contract with the admin UI.
// The trust boundary is therefore the shop lookup that follows the decode;
// enabling HS256 verification against the app secret is a pending product
// decision. The TrustedDecode name keeps that assumption visible at call
// sites.
package sessiontoken

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrMissingDest  = errors.New("session token has no dest claim")
)

// Decoder extracts the shop domain from a platform session token.
type Decoder struct {
	parser *jwt.Parser
}

func NewDecoder() *Decoder {
	return &Decoder{parser: jwt.NewParser()}
}

// TrustedDecode returns the shop domain asserted by the token's dest claim.
// The token signature and expiry are NOT verified (see package doc).
func (d *Decoder) TrustedDecode(tokenString string) (string, error) {
	token, _, err := d.parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	dest, ok := claims["dest"].(string)
	if !ok || dest == "" {
		return "", ErrMissingDest
	}

	return strings.TrimPrefix(dest, "https://"), nil
}
