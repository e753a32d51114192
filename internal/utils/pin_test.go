package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPin(t *testing.T) {
	hash, err := HashPin("1234", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)

	assert.True(t, VerifyPin(hash, "1234"))
	assert.False(t, VerifyPin(hash, "9999"))
	assert.False(t, VerifyPin("not-a-hash", "1234"))
}
