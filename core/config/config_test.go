package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionguard/core/config"
)

type timeoutsEnv struct {
	Timeout  time.Duration `env:"TEST_CONFIG_TIMEOUT" envDefault:"2h"`
	LeadTime time.Duration `env:"TEST_CONFIG_LEAD_TIME" envDefault:"5m"`
}

type pathsEnv struct {
	LoginPath   string `env:"TEST_CONFIG_LOGIN_PATH" envDefault:"/login"`
	ProfilePath string `env:"TEST_CONFIG_PROFILE_PATH,required"`
}

type cachedEnv struct {
	Value string `env:"TEST_CONFIG_CACHED" envDefault:"first"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg timeoutsEnv
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 2*time.Hour, cfg.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.LeadTime)
}

func TestLoad_RequiredMissing(t *testing.T) {
	var cfg pathsEnv
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParseFailed)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("TEST_CONFIG_CACHED", "from-env")

	var cfg1 cachedEnv
	require.NoError(t, config.Load(&cfg1))
	require.Equal(t, "from-env", cfg1.Value)

	// Changing the environment after the first load has no effect: the
	// cached value wins.
	t.Setenv("TEST_CONFIG_CACHED", "changed")

	var cfg2 cachedEnv
	require.NoError(t, config.Load(&cfg2))
	assert.Equal(t, cfg1, cfg2)
}

func TestLoad_NilTarget(t *testing.T) {
	var cfg *timeoutsEnv
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		var cfg pathsEnv
		config.MustLoad(&cfg)
	})
}
