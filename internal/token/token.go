// Package token issues and verifies the signed identity token. Verification
// is self-contained: it checks the signature and expiry and never touches
// storage.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/slooze/foodorder/internal/apperr"
	"github.com/slooze/foodorder/internal/models"
)

type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue builds a signed token for the given identity. countryID is omitted
// from the claims when nil (ADMIN users carry no country).
func (c *Codec) Issue(username string, role models.Role, countryID *int) (string, error) {
	now := time.Now()
	claims := models.Claims{
		Role:      role,
		CountryID: countryID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify validates the signature and expiry and decodes the claims. Expiry is
// a hard boundary: no leeway is granted.
func (c *Codec) Verify(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return nil, apperr.New(apperr.KindUnauthenticated, "invalid token")
	}

	return claims, nil
}
