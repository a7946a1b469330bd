package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 7))
	assert.Equal(t, "e0b2c4f", truncate("e0b2c4f9a81d", 7))
	assert.Equal(t, "", truncate("", 7))
}
