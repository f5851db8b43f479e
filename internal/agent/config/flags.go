package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server (default from Config)
//	-i int      screenshot capture interval in seconds (default from Config)
//	-d string   base directory for the capture scratch space (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	screenshotInterval := fs.Int("i", int(cfg.ScreenshotInterval.Seconds()), "screenshot capture interval (in seconds)")
	fs.StringVar(&cfg.ScreenshotDir, "d", cfg.ScreenshotDir, "base directory for the capture scratch space")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ScreenshotInterval = time.Duration(*screenshotInterval) * time.Second
}
