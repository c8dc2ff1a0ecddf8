package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartnerSessionVerifier(t *testing.T) {
	v := NewPartnerSessionVerifier("test-secret", "qrmenu-dashboard")

	token, err := v.Sign("ptn_1", time.Hour)
	require.NoError(t, err)

	claims, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ptn_1", claims.PartnerID)
}

func TestPartnerSessionVerifier_Rejects(t *testing.T) {
	v := NewPartnerSessionVerifier("test-secret", "qrmenu-dashboard")

	t.Run("expired", func(t *testing.T) {
		token, err := v.Sign("ptn_1", time.Minute)
		require.NoError(t, err)

		later := *v
		later.now = func() time.Time { return time.Now().Add(time.Hour) }
		_, err = later.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewPartnerSessionVerifier("other-secret", "qrmenu-dashboard")
		token, err := other.Sign("ptn_1", time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewPartnerSessionVerifier("test-secret", "someone-else")
		token, err := other.Sign("ptn_1", time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("refresh token", func(t *testing.T) {
		claims := &PartnerClaims{
			PartnerID: "ptn_1",
			TokenType: "refresh",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "qrmenu-dashboard",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = v.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}
