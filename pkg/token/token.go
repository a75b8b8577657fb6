// pkg/token/token.go
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "scoreboard"

// Claims carries the officer a session belongs to. Officers have no password;
// the token only saves clients from resending their name on every request.
type Claims struct {
	OfficerName string `json:"officer_name"`
	jwt.RegisteredClaims
}

// GenerateJWT issues a session token for the named officer.
func GenerateJWT(officerName, secretKey string, ttl time.Duration) (string, error) {
	if officerName == "" {
		return "", errors.New("officer name is empty")
	}
	if secretKey == "" {
		return "", errors.New("jwt secret key is empty")
	}
	now := time.Now()
	claims := &Claims{
		OfficerName: officerName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   officerName,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secretKey))
}

// ValidateJWT parses, validates, and returns claims from a JWT string.
func ValidateJWT(tokenString, secretKey string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token string is empty")
	}
	if secretKey == "" {
		return nil, errors.New("jwt secret key is empty")
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secretKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, errors.New("token has expired")
		case errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, errors.New("token signature is invalid")
		}
		return nil, fmt.Errorf("could not parse token: %w", err)
	}
	if !tok.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.OfficerName == "" {
		return nil, errors.New("officer_name claim is missing")
	}
	return claims, nil
}
