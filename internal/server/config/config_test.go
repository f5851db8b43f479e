package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 24*time.Hour, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, "screenshots", cfg.S3Bucket)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"server", "-a", ":60000", "-d", "postgres://h/wf", "-t", "5"}

	cfg := LoadConfig()

	assert.Equal(t, ":60000", cfg.EndpointAddrGRPC)
	assert.Equal(t, "postgres://h/wf", cfg.DatabaseDSN)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenValidityDuration)
	// untouched values keep their defaults
	assert.Equal(t, "admin", cfg.S3RootUser)
}
