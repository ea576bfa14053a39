package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	err := New(CodeChainNotSupported, "chain nope")
	assert.Equal(t, CodeChainNotSupported, CodeOf(err))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.Equal(t, CodeChainNotSupported, CodeOf(wrapped))

	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
	assert.Equal(t, Code(""), CodeOf(nil))
}

func TestHasCode(t *testing.T) {
	err := Wrap(CodeCacheWriteFailed, "set failed", errors.New("connection refused"))

	assert.True(t, HasCode(err, CodeCacheWriteFailed))
	assert.False(t, HasCode(err, CodeNotFound))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeCacheWriteFailed, "set failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "cache_write_failed")
	assert.Contains(t, err.Error(), "connection refused")
}
