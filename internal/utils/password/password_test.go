package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testCost ускоряет тесты
const testCost = bcrypt.MinCost

func TestBCryptHasher_Hash(t *testing.T) {
	hasher := NewBCryptHasher(testCost)

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "Plain password", password: "rahasia123"},
		{name: "Special characters", password: "p@ssw0rd!#$%"},
		{name: "Empty password", password: "", wantErr: ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
		})
	}
}

func TestBCryptHasher_Check(t *testing.T) {
	hasher := NewBCryptHasher(testCost)
	hash, err := hasher.Hash("rahasia123")
	require.NoError(t, err)

	assert.NoError(t, hasher.Check(hash, "rahasia123"))
	assert.ErrorIs(t, hasher.Check(hash, "salah"), ErrMismatch)
	assert.ErrorIs(t, hasher.Check("", "rahasia123"), ErrEmptyPassword)
	assert.ErrorIs(t, hasher.Check(hash, ""), ErrEmptyPassword)

	err = hasher.Check("not-a-bcrypt-hash", "rahasia123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}

func TestBCryptHasher_Cost(t *testing.T) {
	assert.Equal(t, testCost, NewBCryptHasher(testCost).Cost())
	assert.Equal(t, DefaultCost, NewBCryptHasher(0).Cost())
	assert.Equal(t, DefaultCost, NewBCryptHasher(bcrypt.MaxCost+1).Cost())
}

func TestBCryptHasher_UniqueHashes(t *testing.T) {
	hasher := NewBCryptHasher(testCost)

	first, err := hasher.Hash("sama")
	require.NoError(t, err)
	second, err := hasher.Hash("sama")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
