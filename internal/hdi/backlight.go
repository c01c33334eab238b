package hdi

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	logindService    = "org.freedesktop.login1"
	logindSession    = "/org/freedesktop/login1/session/auto"
	setBrightnessRPC = "org.freedesktop.login1.Session.SetBrightness"

	defaultSysfsRoot = "/sys/class"
)

// Backlight controls a panel backlight outside of the display server
type Backlight interface {
	Get() (uint32, error)
	Set(level uint32) error
}

// BusCaller invokes a method on a D-Bus object
type BusCaller interface {
	Call(dest, path, method string, args ...any) error
}

// LogindBacklight reads the level from sysfs and writes it through logind,
// which lets an unprivileged session change the brightness.
type LogindBacklight struct {
	logger    *zap.Logger
	subsystem string
	device    string
	sysfsRoot string
	dial      func() (BusCaller, error)

	mu  sync.Mutex
	bus BusCaller
}

// NewLogindBacklight creates a backlight for subsystem/device. An empty
// device selects the first one found under the subsystem.
func NewLogindBacklight(logger *zap.Logger, subsystem, device string, dial func() (BusCaller, error)) *LogindBacklight {
	if subsystem == "" {
		subsystem = "backlight"
	}
	return &LogindBacklight{
		logger:    logger,
		subsystem: subsystem,
		device:    device,
		sysfsRoot: defaultSysfsRoot,
		dial:      dial,
	}
}

// resolveDevice picks the configured device or the first one in sysfs
func (b *LogindBacklight) resolveDevice() (string, error) {
	if b.device != "" {
		return b.device, nil
	}
	entries, err := os.ReadDir(filepath.Join(b.sysfsRoot, b.subsystem))
	if err != nil {
		return "", fmt.Errorf("failed to list %s devices: %w", b.subsystem, err)
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("no %s device found", b.subsystem)
	}
	b.device = entries[0].Name()
	b.logger.Info("Backlight device detected",
		zap.String("subsystem", b.subsystem),
		zap.String("device", b.device))
	return b.device, nil
}

// Get reads the current brightness from sysfs
func (b *LogindBacklight) Get() (uint32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	device, err := b.resolveDevice()
	if err != nil {
		return 0, err
	}
	raw, err := os.ReadFile(filepath.Join(b.sysfsRoot, b.subsystem, device, "brightness"))
	if err != nil {
		return 0, fmt.Errorf("failed to read brightness: %w", err)
	}
	level, err := strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid brightness %q: %w", raw, err)
	}
	return uint32(level), nil
}

// Set asks logind to change the brightness of the session's seat
func (b *LogindBacklight) Set(level uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	device, err := b.resolveDevice()
	if err != nil {
		return err
	}
	if b.bus == nil {
		bus, err := b.dial()
		if err != nil {
			return fmt.Errorf("failed to connect to system bus: %w", err)
		}
		b.bus = bus
	}
	if err := b.bus.Call(logindService, logindSession, setBrightnessRPC, b.subsystem, device, level); err != nil {
		return fmt.Errorf("logind SetBrightness failed: %w", err)
	}
	return nil
}

// Close releases the bus connection if one was opened
func (b *LogindBacklight) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	closer, ok := b.bus.(io.Closer)
	b.bus = nil
	if !ok {
		return nil
	}
	return closer.Close()
}
