package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode_Length(t *testing.T) {
	for _, n := range []int{1, 4, 16} {
		code, err := GenerateCode(n)
		require.NoError(t, err)
		assert.Len(t, code, 2*n)
	}
}

func TestGenerateCode_Uppercase(t *testing.T) {
	code, err := GenerateCode(8)
	require.NoError(t, err)

	for _, r := range code {
		assert.Contains(t, "0123456789ABCDEF", string(r))
	}
}

func TestGenerateCode_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateCode(8)
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
