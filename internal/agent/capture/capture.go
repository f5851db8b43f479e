// Package capture grabs screenshots of the employee's display. The
// orchestrator pulls a capture on every tick; implementations return the
// raw PNG bytes.
package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/filex"
	"github.com/google/uuid"
)

// ErrUnsupportedPlatform is returned when no screenshot tool is known for
// the current OS.
var ErrUnsupportedPlatform = errors.New("screen capture not supported on this platform")

// Capturer produces one screenshot per call.
type Capturer interface {
	Capture(ctx context.Context) ([]byte, error)
}

// seams for tests
var (
	runCommand = func(ctx context.Context, name string, args ...string) error {
		return exec.CommandContext(ctx, name, args...).Run()
	}
	lookPath = exec.LookPath
	goos     = runtime.GOOS
)

// ExecCapturer shells out to the platform screenshot tool, writing into a
// scratch directory that is cleaned up after each capture.
type ExecCapturer struct {
	scratchDir string
}

// NewExecCapturer prepares a scratch directory under baseDir for temporary
// screenshot files.
func NewExecCapturer(baseDir string) (*ExecCapturer, error) {
	dir, err := filex.EnsureDir(baseDir, "screenshots")
	if err != nil {
		return nil, err
	}
	return &ExecCapturer{scratchDir: dir}, nil
}

// command picks the screenshot tool for the current OS. Linux prefers scrot
// and falls back to gnome-screenshot.
func (c *ExecCapturer) command(path string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "screencapture", []string{"-x", "-t", "png", path}, nil
	case "linux":
		if _, err := lookPath("scrot"); err == nil {
			return "scrot", []string{"-o", path}, nil
		}
		if _, err := lookPath("gnome-screenshot"); err == nil {
			return "gnome-screenshot", []string{"-f", path}, nil
		}
		return "", nil, errors.New("no screenshot tool found (tried scrot, gnome-screenshot)")
	default:
		return "", nil, ErrUnsupportedPlatform
	}
}

// Capture takes one screenshot and returns its PNG bytes.
func (c *ExecCapturer) Capture(ctx context.Context) ([]byte, error) {
	path := filepath.Join(c.scratchDir, fmt.Sprintf("%d_%v.png", time.Now().Unix(), uuid.New()))
	defer os.Remove(path)

	name, args, err := c.command(path)
	if err != nil {
		return nil, err
	}

	if err := runCommand(ctx, name, args...); err != nil {
		return nil, fmt.Errorf("capture failed: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading capture: %w", err)
	}
	return data, nil
}
