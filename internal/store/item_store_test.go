package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatgo/internal/domain"
	"eatgo/internal/store"
)

func TestItemStore_SaveLoadRemove(t *testing.T) {
	home := t.TempDir()
	var items domain.TokenStore = store.NewItemFileStore(home)

	_, ok, err := items.LoadItem(domain.AccessTokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, items.SaveItem(domain.AccessTokenKey, "ACCESS_TOKEN"))

	got, ok, err := items.LoadItem(domain.AccessTokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ACCESS_TOKEN", got)

	// A fresh instance sees the persisted value.
	got, ok, err = store.NewItemFileStore(home).LoadItem(domain.AccessTokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ACCESS_TOKEN", got)

	require.NoError(t, items.RemoveItem(domain.AccessTokenKey))
	require.NoError(t, items.RemoveItem(domain.AccessTokenKey))

	_, ok, err = items.LoadItem(domain.AccessTokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestItemStore_CreatesMissingDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "home")
	items := store.NewItemFileStore(home)
	require.NoError(t, items.SaveItem("k", "v"))

	info, err := os.Stat(filepath.Join(home, "items.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestItemStore_Sealed(t *testing.T) {
	home := t.TempDir()
	sealed := store.NewItemFileStore(home, store.WithPassphrase("correct horse"), store.WithCheapKDF)

	require.NoError(t, sealed.SaveItem(domain.AccessTokenKey, "ACCESS_TOKEN"))

	raw, err := os.ReadFile(filepath.Join(home, "items.json"))
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "ACCESS_TOKEN"), "token must not be stored in the clear")

	got, ok, err := sealed.LoadItem(domain.AccessTokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ACCESS_TOKEN", got)

	_, _, err = store.NewItemFileStore(home, store.WithPassphrase("wrong"), store.WithCheapKDF).LoadItem(domain.AccessTokenKey)
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)

	_, _, err = store.NewItemFileStore(home).LoadItem(domain.AccessTokenKey)
	assert.ErrorIs(t, err, store.ErrSealed)
}
