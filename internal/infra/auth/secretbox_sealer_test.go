package auth

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSealer(t *testing.T, key string) *secretboxSealer {
	t.Helper()

	s, err := newSecretboxSealer([]byte(key))
	require.NoError(t, err)

	return s
}

func TestSecretboxSealer_RoundTrip(t *testing.T) {
	sealer := newTestSealer(t, "test-seal-key")

	sealed, err := sealer.Seal([]byte("Temp#Pass1"))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "Temp#Pass1")

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "Temp#Pass1", string(opened))
}

func TestSecretboxSealer_RandomNonce(t *testing.T) {
	sealer := newTestSealer(t, "test-seal-key")

	first, err := sealer.Seal([]byte("same"))
	require.NoError(t, err)
	second, err := sealer.Seal([]byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSecretboxSealer_RejectsForeignOrTamperedValues(t *testing.T) {
	sealer := newTestSealer(t, "test-seal-key")
	other := newTestSealer(t, "another-key")

	sealed, err := other.Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = sealer.Open(sealed)
	assert.ErrorIs(t, err, ErrSealedValueInvalid)

	mine, err := sealer.Seal([]byte("secret"))
	require.NoError(t, err)
	mine[len(mine)-1] ^= 0xff

	_, err = sealer.Open(mine)
	assert.ErrorIs(t, err, ErrSealedValueInvalid)

	_, err = sealer.Open([]byte("short"))
	assert.ErrorIs(t, err, ErrSealedValueInvalid)
}

func TestNewSecretboxSealer_RequiresKey(t *testing.T) {
	_, err := NewSecretboxSealer(&config.Config{Session: &config.SessionConfig{}})
	assert.Error(t, err)
}
