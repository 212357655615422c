package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "unit-test-signing-key"

func TestIssueThenVerifyRoundTrip(t *testing.T) {
	token, err := Issue("user-1", "admin@iqmath.in", "admin", testKey)
	require.NoError(t, err)

	claims := Verify(token, testKey)
	require.NotNil(t, claims)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@iqmath.in", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	token, err := Issue("user-1", "admin@iqmath.in", "admin", testKey)
	require.NoError(t, err)

	assert.Nil(t, Verify(token, "a-different-key"))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	claims := Claims{
		UserID: "user-1",
		Email:  "admin@iqmath.in",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	require.NoError(t, err)

	assert.Nil(t, Verify(token, testKey))
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	assert.Nil(t, Verify("", testKey))
	assert.Nil(t, Verify("not-a-token", testKey))
	assert.Nil(t, Verify("aaaa.bbbb.cccc", testKey))
}

func TestVerifyRejectsUnexpectedSigningMethod(t *testing.T) {
	// alg=none tokens must never verify
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.Nil(t, Verify(token, testKey))
}

func TestDecodeIsUnchecked(t *testing.T) {
	token, err := Issue("user-1", "admin@iqmath.in", "editor", testKey)
	require.NoError(t, err)

	// Decode ignores the signature entirely
	claims := Decode(token)
	require.NotNil(t, claims)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "editor", claims.Role)

	assert.Nil(t, Decode("garbage"))
}
