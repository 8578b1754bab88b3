// Package auth implements issuing and verifying the signed identity tokens
// used by the API. The signing secret is an explicit dependency of the
// codec rather than process-wide state.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"devconnect/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failure modes. Callers that only need "did it verify" can
// treat all three the same; the auth middleware reports them uniformly.
var (
	// ErrTokenMalformed indicates the token is structurally not a token.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenExpired indicates the token was valid but is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid indicates a bad signature or otherwise unverifiable token.
	ErrTokenInvalid = errors.New("token is not valid")
)

// DefaultTTL is the validity window of issued tokens. There is no refresh
// mechanism; expiry forces re-login.
const DefaultTTL = 24 * time.Hour

// Identity is the decoded subject of a verified token.
type Identity struct {
	UserID uint
	Name   string
	Email  string
	Role   string
}

// IsAdmin reports whether the identity carries the admin role claim.
func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// Codec signs and verifies identity tokens with an HMAC secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a codec signing with secret and the given ttl.
// A zero ttl falls back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the identity. The role claim is included
// only when identity.Role is set: login-issued tokens always carry it,
// registration-issued tokens omit it.
func (c *Codec) Issue(identity Identity) (string, error) {
	if len(c.secret) == 0 {
		return "", fmt.Errorf("signing secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(identity.UserID), 10),
		"name":  identity.Name,
		"email": identity.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(c.ttl).Unix(),
		"jti":   uuid.NewString(),
	}
	if identity.Role != "" {
		claims["role"] = identity.Role
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify parses and validates a token string and returns the embedded
// identity. An absent role claim implies the default "user" privilege.
func (c *Codec) Verify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Identity{}, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, ErrTokenExpired
		default:
			return Identity{}, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return Identity{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrTokenMalformed
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, ErrTokenMalformed
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return Identity{}, ErrTokenMalformed
	}

	identity := Identity{
		UserID: uint(userID),
		Role:   models.RoleUser,
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		identity.Role = role
	}

	return identity, nil
}
