//go:build linux
// +build linux

package executor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// displayTools is the ordered list of display configuration tools to try
var displayTools = []string{"xrandr"}

// XrandrRunner runs the display configuration tool for settings the X
// protocol client does not cover (output scaling and transforms)
type XrandrRunner struct {
	logger *zap.Logger
	binary string
}

// NewRunner creates a new platform-specific command runner (Linux implementation)
func NewRunner(logger *zap.Logger) (*XrandrRunner, error) {
	binary := detectTool(logger)
	if binary == "" {
		return nil, fmt.Errorf("no supported display configuration tool found on this system")
	}

	logger.Info("Display configuration tool detected", zap.String("binary", binary))

	return &XrandrRunner{
		logger: logger,
		binary: binary,
	}, nil
}

// detectTool returns the path of the first available tool
func detectTool(logger *zap.Logger) string {
	for _, name := range displayTools {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
		logger.Debug("Display tool not found", zap.String("name", name))
	}
	return ""
}

// Run executes the tool with the given arguments
func (r *XrandrRunner) Run(ctx context.Context, args ...string) error {
	r.logger.Debug("Running display tool",
		zap.String("command", r.binary),
		zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, r.binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s failed: %w (output: %s)",
			r.binary, strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}
