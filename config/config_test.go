package config

import (
	"testing"

	"github.com/gotify/configor"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "7000")
	t.Setenv("AUTH_REQUIRED", "true")
	conf := new(Configuration)
	require.NoError(t, configor.New(&configor.Config{}).Load(conf))
	require.Equal(t, 7000, conf.App.Port)
	require.Equal(t, "http://localhost:5000/", conf.App.PublicURL)
	require.Equal(t, "*", conf.App.CorsOrigin)
	require.Equal(t, "local", conf.Storage.Kind)
	require.Equal(t, "uploads", conf.Storage.UploadDir)
	require.NotNil(t, conf.Auth.Required)
	require.True(t, *conf.Auth.Required)
	require.NotNil(t, conf.Database.MigrateOnStart)
	require.True(t, *conf.Database.MigrateOnStart)
	require.Equal(t, 10, conf.Database.MigrateRetrySec)
	require.Equal(t, 168, conf.Push.PendingTTLHours)
}
