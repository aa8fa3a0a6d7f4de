package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderErrorMatchesSentinel(t *testing.T) {
	err := &ProviderError{StatusCode: 429, Message: "slow down", RateLimited: true, Attempts: 3}

	assert.True(t, errors.Is(err, ErrProviderUnavailable))
	assert.False(t, errors.Is(err, ErrInvalidInput))

	var target *ProviderError
	require.True(t, errors.As(error(err), &target))
	assert.Equal(t, 3, target.Attempts)

	assert.Contains(t, err.Error(), "rate limited after 3 attempts")
	assert.Contains(t, err.Error(), "slow down")
}

func TestProviderErrorNonRateLimitedMessage(t *testing.T) {
	err := &ProviderError{StatusCode: 500, Message: "boom", Attempts: 3}
	assert.Contains(t, err.Error(), "failed after 3 attempts")
	assert.NotContains(t, err.Error(), "rate limited")
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := PersistenceError("save student response", cause)

	assert.True(t, errors.Is(err, ErrPersistence))
	assert.Contains(t, err.Error(), "save student response")
	assert.Contains(t, err.Error(), "connection refused")
}
