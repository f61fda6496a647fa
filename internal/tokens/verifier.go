package tokens

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/settleview/settleview-api/internal/sessions"
	"github.com/settleview/settleview-api/pkg/middleware"
)

var ErrTokenRevoked = errors.New("token has been revoked")

// verifiedToken exposes the parsed claims through the middleware.Token
// interface.
type verifiedToken struct {
	claims jwt.MapClaims
}

func (t *verifiedToken) Claims(v interface{}) error {
	b, err := json.Marshal(t.claims)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// Verifier validates locally issued HS256 access tokens and consults the
// revocation blacklist. It satisfies middleware.Verifier.
type Verifier struct {
	secret    []byte
	blacklist *sessions.Blacklist
}

// NewVerifier builds a verifier for tokens signed with the given secret.
// blacklist may be nil, in which case revocation checks are skipped.
func NewVerifier(secret string, blacklist *sessions.Blacklist) *Verifier {
	return &Verifier{secret: []byte(secret), blacklist: blacklist}
}

// Verify parses and validates the raw token, rejecting revoked tokens.
func (v *Verifier) Verify(ctx context.Context, raw string) (middleware.Token, error) {
	revoked, err := v.blacklist.Contains(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("revocation check failed: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	parsed, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return &verifiedToken{claims: claims}, nil
}
