package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// NewSessionToken generates an opaque bearer token for a session. The
// token carries no claims; it is only ever resolved by lookup against
// the session store.
func NewSessionToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// Action token purposes
const (
	PurposeVerifyEmail   = "verify_email"
	PurposeResetPassword = "reset_password"
)

// ActionClaims are the claims of a short-lived signed action token
// (email verification, password reset). Unlike session tokens these are
// stateless: nothing is stored server-side.
type ActionClaims struct {
	UserID  uint   `json:"user_id"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateActionToken generates a signed single-purpose token
func GenerateActionToken(userID uint, purpose, secret string, expiryMinutes int) (string, error) {
	claims := ActionClaims{
		UserID:  userID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "crewledger",
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ValidateActionToken validates a signed action token for the given purpose
func ValidateActionToken(tokenString, purpose, secret string) (*ActionClaims, error) {
	t, err := jwt.ParseWithClaims(tokenString, &ActionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := t.Claims.(*ActionClaims)
	if !ok || !t.Valid || claims.Purpose != purpose {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
