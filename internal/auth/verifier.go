// Package auth validates bearer tokens issued by the external identity
// provider. The application never issues tokens itself.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"tripfolio/internal/config"
	"tripfolio/internal/domain"
)

// Verifier checks a bearer token and returns the subject it was issued to.
type Verifier interface {
	Verify(tokenString string) (string, error)
}

type hmacVerifier struct {
	secret string
	issuer string
}

// NewVerifier creates a Verifier for HS256 tokens signed with the shared
// secret configured for the identity provider.
func NewVerifier(cfg config.AuthConfig) Verifier {
	return &hmacVerifier{secret: cfg.Secret, issuer: cfg.Issuer}
}

func (v *hmacVerifier) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.secret), nil
	}, jwt.WithIssuer(v.issuer), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}
