package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "investrack.db", c.DatabaseDSN)
	assert.Equal(t, "BRL", c.CurrencyCode)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "investrack.db", cfg.DatabaseDSN)
	assert.Equal(t, "BRL", cfg.CurrencyCode)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("INVESTRACK_DSN", "env.db")
	os.Args = []string{"testbin", "-d", "flag.db"}

	cfg := LoadConfig()
	assert.Equal(t, "flag.db", cfg.DatabaseDSN)
}

func Test_parseEnv(t *testing.T) {
	t.Setenv("INVESTRACK_DSN", "custom.db")
	t.Setenv("INVESTRACK_CURRENCY", "USD")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "custom.db", cfg.DatabaseDSN)
	assert.Equal(t, "USD", cfg.CurrencyCode)
}
