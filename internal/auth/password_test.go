package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Secret12")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret12", hash)

	assert.NoError(t, h.Compare(hash, "Secret12"))
	assert.Error(t, h.Compare(hash, "secret12"))
}

func TestBcryptHasherLongPasswords(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	long := "Secret12" + strings.Repeat("x", 92)
	require.Len(t, long, 100)

	hash, err := h.Hash(long)
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, long))

	// differs only past byte 72, which plain bcrypt would ignore
	assert.Error(t, h.Compare(hash, long[:99]+"y"))
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}
