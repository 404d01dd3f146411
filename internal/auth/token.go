package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("token expired")

// Claims we read from backend tokens. Missing fields stay empty.
type Claims struct {
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenParser checks backend tokens. With a secret, tokens must be HS256
// signed with it. Without one, claims are read unverified and a token that
// is not a JWT at all is accepted as opaque.
type TokenParser struct {
	secret []byte
	now    func() time.Time
}

func NewTokenParser(secret string) *TokenParser {
	p := &TokenParser{now: time.Now}
	if secret != "" {
		p.secret = []byte(secret)
	}
	return p
}

func (p *TokenParser) Verifying() bool { return len(p.secret) > 0 }

// Parse returns the token's claims. Opaque tokens yield nil claims and no error.
func (p *TokenParser) Parse(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	if p.Verifying() {
		return p.parseVerified(token)
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, nil
	}
	if claims.ExpiresAt != nil && !p.now().Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

func (p *TokenParser) parseVerified(token string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(p.now))
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, ErrTokenExpired
	}
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
