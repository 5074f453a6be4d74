package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPass(t *testing.T) {
	hash, err := HashPass("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, CompareHashPass(hash, "correct horse battery staple"))
	assert.Error(t, CompareHashPass(hash, "wrong password"))
}

func TestRandomToken(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		token, err := RandomToken(12)
		require.NoError(t, err)
		require.Len(t, token, 12)
		for _, c := range token {
			assert.Contains(t, tokenAlphabet, string(c))
		}
		assert.False(t, seen[token], "token %s generated twice", token)
		seen[token] = true
	}
}
