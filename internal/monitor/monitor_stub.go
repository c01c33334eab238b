//go:build !linux
// +build !linux

package monitor

import (
	"context"
	"fmt"

	"github.com/genricoloni/screend/internal/domain"
	"go.uber.org/zap"
)

// LogindMonitor stub for non-Linux platforms
type LogindMonitor struct {
	logger *zap.Logger
}

// NewLogindMonitor creates a stub monitor that returns an error on non-Linux platforms
func NewLogindMonitor(logger *zap.Logger) *LogindMonitor {
	return &LogindMonitor{logger: logger}
}

// Start returns an error indicating logind monitoring is not supported on this platform
func (m *LogindMonitor) Start(ctx context.Context) error {
	return fmt.Errorf("logind monitoring is only supported on Linux systems")
}

// Events returns a closed channel since monitoring is not available
func (m *LogindMonitor) Events() <-chan domain.PowerEvent {
	ch := make(chan domain.PowerEvent)
	close(ch)
	return ch
}

// Stop is a no-op on non-Linux platforms
func (m *LogindMonitor) Stop(ctx context.Context) error {
	return nil
}
