package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHash(t *testing.T) {
	t.Run("returns consistent hash for same content", func(t *testing.T) {
		hash := ContentHash([]byte("Hello, World!"))
		assert.Equal(t, hash, ContentHash([]byte("Hello, World!")))
		assert.Len(t, hash, 64)
	})

	t.Run("returns different hash for different content", func(t *testing.T) {
		assert.NotEqual(t, ContentHash([]byte("Content A")), ContentHash([]byte("Content B")))
	})

	t.Run("returns lowercase hash", func(t *testing.T) {
		hash := ContentHash([]byte("test"))
		assert.Equal(t, strings.ToLower(hash), hash)
	})
}
