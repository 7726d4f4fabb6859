package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	k1 := DeriveKey([]byte("monstera"), []byte("fixed-salt"))
	k2 := DeriveKey([]byte("monstera"), []byte("fixed-salt"))

	require.Len(t, k1, 32)
	assert.True(t, bytes.Equal(k1, k2))
}

func TestDeriveKey_SaltMatters(t *testing.T) {
	k1 := DeriveKey([]byte("monstera"), []byte("salt-1"))
	k2 := DeriveKey([]byte("monstera"), []byte("salt-2"))
	assert.False(t, bytes.Equal(k1, k2))
}

func TestHashAndVerify(t *testing.T) {
	salt, verifier := HashPassword("ficus-123")
	require.Len(t, salt, SaltSize)
	require.Len(t, verifier, 32)

	assert.True(t, VerifyPassword("ficus-123", salt, verifier))
	assert.False(t, VerifyPassword("ficus-124", salt, verifier))
	assert.False(t, VerifyPassword("ficus-123", []byte("other-salt-00000"), verifier))
}

func TestHashPassword_FreshSalt(t *testing.T) {
	s1, v1 := HashPassword("same")
	s2, v2 := HashPassword("same")
	assert.NotEqual(t, s1, s2)
	assert.NotEqual(t, v1, v2)
}
