package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenRoundTrip(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	passwordHash, err := hasher.Hash([]byte("barbarbar"))
	require.NoError(t, err)

	t.Run("выданный токен проходит проверку", func(t *testing.T) {
		token, err := hasher.DeriveToken("alice123", passwordHash)
		require.NoError(t, err)
		assert.True(t, hasher.VerifyToken("alice123", passwordHash, token))
	})

	t.Run("каждый вызов выдаёт новый токен, оба валидны", func(t *testing.T) {
		first, err := hasher.DeriveToken("alice123", passwordHash)
		require.NoError(t, err)
		second, err := hasher.DeriveToken("alice123", passwordHash)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, hasher.VerifyToken("alice123", passwordHash, first))
		assert.True(t, hasher.VerifyToken("alice123", passwordHash, second))
	})

	t.Run("токен другого пользователя не подходит", func(t *testing.T) {
		token, err := hasher.DeriveToken("alice123", passwordHash)
		require.NoError(t, err)
		assert.False(t, hasher.VerifyToken("bob456", passwordHash, token))
	})

	t.Run("смена пароля инвалидирует токен", func(t *testing.T) {
		token, err := hasher.DeriveToken("alice123", passwordHash)
		require.NoError(t, err)

		newHash, err := hasher.Hash([]byte("newpassword"))
		require.NoError(t, err)
		assert.False(t, hasher.VerifyToken("alice123", newHash, token))
	})
}
