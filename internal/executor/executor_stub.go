//go:build !linux
// +build !linux

package executor

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// StubRunner is a placeholder for platforms without xrandr
type StubRunner struct {
	logger *zap.Logger
}

// NewRunner creates a stub runner for unsupported platforms
func NewRunner(logger *zap.Logger) (*StubRunner, error) {
	logger.Warn("Display configuration commands are not implemented for this platform")
	return &StubRunner{logger: logger}, nil
}

// Run returns an error indicating the platform is not supported
func (r *StubRunner) Run(ctx context.Context, args ...string) error {
	return fmt.Errorf("display configuration commands not implemented for this platform")
}
