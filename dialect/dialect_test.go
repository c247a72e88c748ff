package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid(MySQL))
	assert.True(t, Valid(SQLite))
	assert.False(t, Valid("postgres"))
	assert.False(t, Valid(""))
}
