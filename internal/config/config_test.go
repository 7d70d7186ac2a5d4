package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg := Load()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Equal(t, DefaultMonths, cfg.Months)
	assert.Equal(t, DefaultRecentLimit, cfg.RecentLimit)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	viper.Set("api.base_url", "https://budget.example.com/api/")
	viper.Set("api.timeout", 5*time.Second)
	viper.Set("ui.page_size", 25)

	cfg := Load()
	// Trailing slashes are stripped so path joins stay clean.
	assert.Equal(t, "https://budget.example.com/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 25, cfg.PageSize)
}

func TestLoadRejectsNonsenseValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	viper.Set("ui.page_size", -3)
	viper.Set("ui.months", 0)

	cfg := Load()
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Equal(t, DefaultMonths, cfg.Months)
}

func TestTokenPathOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("session.token_file", "/tmp/vlb-test-token")
	path, err := TokenPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/vlb-test-token", path)
}

func TestTokenPathDefault(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path, err := TokenPath()
	require.NoError(t, err)
	assert.Contains(t, path, ".config/vlb/token")
}

func TestExpandPath(t *testing.T) {
	t.Setenv("VLB_TEST_DIR", "/data")

	assert.Equal(t, "/data/token", ExpandPath("$VLB_TEST_DIR/token"))
	assert.Equal(t, "", ExpandPath(""))
	assert.NotContains(t, ExpandPath("~/x"), "~")
}
