package crypto

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dogwalk/dogwalk-go/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenIssuer signs and validates JWT tokens for the API. Issuer and audience
// come from configuration and are enforced on validation.
type TokenIssuer struct {
	secret   string
	issuer   string
	audience string
	expiry   time.Duration
}

// Claims represents the JWT claims for an authenticated user. The subject is
// the user ID; the registered ID claim (jti) is unique per issued token.
type Claims struct {
	jwt.RegisteredClaims
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

// UserID returns the subject claim parsed as a user ID.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// NewTokenIssuer creates a TokenIssuer with the given signing parameters.
func NewTokenIssuer(secret, issuer, audience string, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
	}
}

// Generate creates a signed token for the given user.
func (ti *TokenIssuer) Generate(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        uuid.NewString(),
			Issuer:    ti.issuer,
			Audience:  jwt.ClaimStrings{ti.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: user.Email,
		Role:  user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ti.secret))
}

// Validate parses and validates a token string, returning the claims if the
// signature, issuer, audience, and expiry all check out.
func (ti *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(ti.secret), nil
	}, jwt.WithIssuer(ti.issuer), jwt.WithAudience(ti.audience))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
