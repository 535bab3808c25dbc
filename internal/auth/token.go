package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is how long an issued token stays valid. There is no
// revocation list: a leaked token is usable until it expires.
const TokenLifetime = time.Hour

var (
	// ErrTokenInvalid covers malformed tokens, signature mismatches, and
	// unexpected signing methods.
	ErrTokenInvalid = errors.New("auth: invalid token")
	// ErrTokenExpired means the signature checked out but the token is past
	// its expiry.
	ErrTokenExpired = errors.New("auth: token expired")
)

type claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"userId"`
}

// IssueToken signs a bearer token binding userID with an absolute expiry of
// now + TokenLifetime.
func IssueToken(userID int64, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
		UserID: userID,
	})
	return token.SignedString(secret)
}

// VerifyToken validates the signature and expiry of a bearer token and
// returns the user id it binds. It returns ErrTokenExpired for a
// well-signed but stale token and ErrTokenInvalid for everything else.
func VerifyToken(tokenString string, secret []byte) (int64, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}
	return c.UserID, nil
}
