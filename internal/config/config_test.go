package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"xlookup/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	t.Setenv("TC_AUTH_TOKEN", "test-token")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("IN", cfg.App.DefaultCountry)
	rq.Len(cfg.Truecaller.Endpoints, 3)
	rq.Equal(15*time.Second, cfg.Truecaller.RequestTimeout)
	rq.Equal(1500*time.Millisecond, cfg.Bulk.RequestDelay)
	rq.Equal(3, cfg.Bulk.BurstEvery)
	rq.Equal(3*time.Second, cfg.Bulk.BurstPause)
	rq.Equal("results", cfg.Storage.ResultsDir)
}

func TestLoadOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("TC_AUTH_TOKEN", "test-token")
	t.Setenv("TC_ENDPOINTS", "https://a.example.com/search,https://b.example.com/search")
	t.Setenv("DEFAULT_COUNTRY", "BD")
	t.Setenv("BULK_REQUEST_DELAY", "2s")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal([]string{"https://a.example.com/search", "https://b.example.com/search"}, cfg.Truecaller.Endpoints)
	rq.Equal("BD", cfg.App.DefaultCountry)
	rq.Equal(2*time.Second, cfg.Bulk.RequestDelay)
}

func TestLoadMissingToken(t *testing.T) {
	rq := require.New(t)

	t.Setenv("TC_AUTH_TOKEN", "")

	_, err := config.Load()
	rq.Error(err)
}
