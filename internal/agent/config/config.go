package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Workfolio agent.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - ScreenshotInterval: how often an open session captures the desktop.
//   - ScreenshotDir: base directory for the capture scratch space.
//
// Units: ScreenshotInterval is a time.Duration (e.g., 5*time.Minute).
type Config struct {
	ServerEndpointAddr string
	ScreenshotDir      string
	ScreenshotInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.ScreenshotInterval = 5 * time.Minute
	c.ScreenshotDir = os.TempDir()
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
