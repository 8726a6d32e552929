package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresSecretKey(t *testing.T) {
	t.Setenv("SHOP_SECRET_KEY", "")

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrMissingSecretKey)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SHOP_SECRET_KEY", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "HS256", cfg.Algorithm)
	require.Equal(t, "emporium", cfg.Issuer)
	require.Equal(t, 400*time.Minute, cfg.TokenTTL)
	require.Equal(t, "shop.db", cfg.DatabaseFile)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SHOP_SECRET_KEY", "test-secret")
	t.Setenv("SHOP_ALGORITHM", "HS512")
	t.Setenv("SHOP_TOKEN_TTL", "30m")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "HS512", cfg.Algorithm)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.Equal(t, 9090, cfg.Port)
}

func TestLoadConfigDurationAsMinutes(t *testing.T) {
	t.Setenv("SHOP_SECRET_KEY", "test-secret")
	t.Setenv("SHOP_TOKEN_TTL", "400")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 400*time.Minute, cfg.TokenTTL)
}
