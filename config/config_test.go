package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigurationDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := GetConfiguration()
	require.NoError(t, err)

	assert.Empty(t, cfg.Profiles)
	assert.Empty(t, cfg.Profile)
}

func TestStoreAndReloadConfiguration(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	stored := &Configuration{
		Profiles: []Profile{
			{Name: "local", Endpoint: "http://localhost:3000", ApiKey: "secret"},
			{Name: "prod", Endpoint: "http://publisher:3000"},
		},
		Profile: "prod",
	}
	require.NoError(t, StoreConfiguration(stored))

	loaded, err := GetConfiguration()
	require.NoError(t, err)

	assert.Equal(t, stored.Profiles, loaded.Profiles)
	assert.Equal(t, "prod", loaded.Profile)
}

func TestGetProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("no profiles stored", func(t *testing.T) {
		profile, err := GetProfile()
		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	require.NoError(t, StoreConfiguration(&Configuration{
		Profiles: []Profile{
			{Name: "a", Endpoint: "http://a"},
			{Name: "b", Endpoint: "http://b"},
		},
		Profile: "b",
	}))

	t.Run("active profile wins", func(t *testing.T) {
		profile, err := GetProfile()
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "b", profile.Name)
	})

	require.NoError(t, StoreConfiguration(&Configuration{
		Profiles: []Profile{
			{Name: "a", Endpoint: "http://a"},
		},
		Profile: "gone",
	}))

	t.Run("falls back to first profile", func(t *testing.T) {
		profile, err := GetProfile()
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "a", profile.Name)
	})
}
