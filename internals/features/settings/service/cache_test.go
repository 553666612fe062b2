package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preloadedCache(values map[string]string) *SettingCache {
	return &SettingCache{values: values, loaded: true}
}

func TestSettingCacheAllReturnsCopy(t *testing.T) {
	sc := preloadedCache(map[string]string{"nama_bimbel": "Bimbelku"})

	all, err := sc.All(nil)
	require.NoError(t, err)
	assert.Equal(t, "Bimbelku", all["nama_bimbel"])

	// Mutasi hasil tidak boleh bocor ke cache.
	all["nama_bimbel"] = "Diubah"
	again, err := sc.All(nil)
	require.NoError(t, err)
	assert.Equal(t, "Bimbelku", again["nama_bimbel"])
}

func TestSettingCacheGet(t *testing.T) {
	sc := preloadedCache(map[string]string{"telepon": "0812"})

	v, ok, err := sc.Get(nil, "telepon")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "0812", v)

	_, ok, err = sc.Get(nil, "tidak_ada")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSettingCacheInvalidate(t *testing.T) {
	sc := preloadedCache(map[string]string{"k": "v"})
	assert.True(t, sc.loaded)

	sc.Invalidate()

	assert.False(t, sc.loaded)
	assert.Nil(t, sc.values)
}
