package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPasswordPolicy_Accepts(t *testing.T) {
	policy := DefaultPasswordPolicy(6)

	assert.Empty(t, policy("abc!23"))
	assert.Empty(t, policy("longer-password-1"))
	assert.Empty(t, policy("hello, world"))
}

func TestDefaultPasswordPolicy_TooShort(t *testing.T) {
	policy := DefaultPasswordPolicy(8)

	issues := policy("ab!2")

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "at least 8 characters")
}

func TestDefaultPasswordPolicy_MissingLowercase(t *testing.T) {
	policy := DefaultPasswordPolicy(6)

	issues := policy("ABCDE!23")

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "lowercase")
}

func TestDefaultPasswordPolicy_MissingSpecial(t *testing.T) {
	policy := DefaultPasswordPolicy(6)

	issues := policy("abcdef123")

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "special character")
}

func TestDefaultPasswordPolicy_ReportsEveryViolation(t *testing.T) {
	policy := DefaultPasswordPolicy(8)

	issues := policy("ABC")

	assert.Len(t, issues, 3)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("abc!23")

	require.NoError(t, err)
	assert.NotEqual(t, "abc!23", hash)
	assert.True(t, CheckPassword("abc!23", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("abc!23", "not-a-bcrypt-hash"))
}
