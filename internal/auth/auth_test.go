package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/traineme-api/internal/models"
)

func TestHasher(t *testing.T) {
	h := NewHasher(4)

	hash, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.NoError(t, h.Compare(hash, "s3cret!"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), ErrPasswordMismatch)
	h.CompareDummy("anything")
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	iss := NewTokenIssuer("secret", time.Hour)

	tok, exp, err := iss.Issue(42, models.RoleTrainer)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	id, err := iss.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id.UserID)
	assert.Equal(t, models.RoleTrainer, id.Role)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	iss := NewTokenIssuer("secret", time.Hour)
	good, _, err := iss.Issue(1, models.RoleUser)
	require.NoError(t, err)

	expired := NewTokenIssuer("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.Issue(1, models.RoleUser)
	require.NoError(t, err)

	other := NewTokenIssuer("another-secret", time.Hour)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1", "role": "USER"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1", "role": "ADMIN", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]struct {
		issuer *TokenIssuer
		token  string
	}{
		"malformed":      {iss, "not.a.jwt"},
		"empty":          {iss, ""},
		"expired":        {iss, old},
		"wrong secret":   {other, good},
		"none algorithm": {iss, noneAlg},
		"unknown role":   {iss, badRole},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.issuer.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
