package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	_, err := store.Get(ctx, "profile_data_ana@example.com")
	assert.ErrorIs(t, err, repository.ErrLocalKeyNotFound)

	require.NoError(t, store.Set(ctx, "profile_data_ana@example.com", []byte(`{"firstName":"Ana"}`)))
	got, err := store.Get(ctx, "profile_data_ana@example.com")
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstName":"Ana"}`, string(got))

	require.NoError(t, store.Set(ctx, "profile_data_ana@example.com", []byte(`{"firstName":"Ana María"}`)))
	got, err = store.Get(ctx, "profile_data_ana@example.com")
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstName":"Ana María"}`, string(got))

	require.NoError(t, store.Delete(ctx, "profile_data_ana@example.com"))
	_, err = store.Get(ctx, "profile_data_ana@example.com")
	assert.ErrorIs(t, err, repository.ErrLocalKeyNotFound)

	assert.NoError(t, store.Delete(ctx, "missing"))
}

func TestStore_EmptyValue(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Set(ctx, "k", nil))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.Error(t, store.Set(ctx, "", []byte("x")))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "local.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "public_identifiers_s1", []byte(`["+51987654321"]`)))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, "public_identifiers_s1")
	require.NoError(t, err)
	assert.Equal(t, `["+51987654321"]`, string(got))
}
