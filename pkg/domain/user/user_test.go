package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPIN(t *testing.T) {
	hash, err := HashPIN("1234")
	require.NoError(t, err)
	require.NotEqual(t, "1234", hash, "PIN must never be stored in plaintext")

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 14, cost)
}

func TestCheckPIN(t *testing.T) {
	// A fixed low-cost hash of "1234" keeps the test fast; cost does not
	// affect comparison semantics.
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &User{HashedPin: string(hash)}

	assert.True(t, u.CheckPIN("1234"))
	assert.False(t, u.CheckPIN("4321"))
	assert.False(t, u.CheckPIN(""))
	assert.False(t, CheckPIN("not-a-bcrypt-hash", "1234"))
}
