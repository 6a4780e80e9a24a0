package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/traineme-api/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is what a verified bearer token maps to.
type Identity struct {
	UserID uint
	Role   models.Role
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *TokenIssuer) Issue(userID uint, role models.Role) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)

	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify collapses every failure (malformed, expired, bad signature,
// bad payload) into ErrInvalidToken.
func (i *TokenIssuer) Verify(token string) (Identity, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return i.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(i.now))
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return Identity{}, ErrInvalidToken
	}

	role := models.Role(claims.Role)
	if role != models.RoleUser && role != models.RoleTrainer {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: uint(id), Role: role}, nil
}
