//go:build linux
// +build linux

package monitor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/genricoloni/screend/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	logindService     = "org.freedesktop.login1"
	logindPath        = "/org/freedesktop/login1"
	managerInterface  = "org.freedesktop.login1.Manager"
	sessionInterface  = "org.freedesktop.login1.Session"
	autoSessionPath   = "/org/freedesktop/login1/session/auto"
	sessionPathPrefix = "/org/freedesktop/login1/session/"

	prepareForSleepSignal   = managerInterface + ".PrepareForSleep"
	propertiesChangedSignal = "org.freedesktop.DBus.Properties.PropertiesChanged"
)

// LogindMonitor turns logind sleep and idle notifications into power events
type LogindMonitor struct {
	logger          *zap.Logger
	events          chan domain.PowerEvent
	mu              sync.RWMutex
	running         bool
	cancel          context.CancelFunc
	conn            DBusClient // Interface for testability
	dial            func() (DBusClient, error)
	sessionPath     string
	lastDropWarning time.Time      // Rate limiting for "channel full" warnings
	wg              sync.WaitGroup // Tracks active producer goroutines
}

// NewLogindMonitor creates a new logind monitor instance
func NewLogindMonitor(logger *zap.Logger) *LogindMonitor {
	return &LogindMonitor{
		logger: logger,
		events: make(chan domain.PowerEvent, 10),
		dial: func() (DBusClient, error) {
			conn, err := NewStdDBusClient()
			if err != nil {
				return nil, err
			}
			return conn, nil
		},
	}
}

// Start begins monitoring for power events
func (m *LogindMonitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = true

	monitorCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.mu.Unlock()

	m.logger.Info("Logind monitor started")

	// Connect to System Bus (this may block)
	conn, err := m.dial()
	if err != nil {
		m.logger.Error("Failed to connect to system bus", zap.Error(err))
		// Reset running state on failure
		m.mu.Lock()
		defer m.mu.Unlock()
		m.running = false
		m.cancel = nil
		return fmt.Errorf("system bus connection failed: %w", err)
	}

	// Check if we were stopped while connecting to D-Bus. The check and the
	// wg.Add share the lock with Stop, so Stop either cancels first or waits
	// for the setup below before closing the events channel.
	m.mu.Lock()
	if err := monitorCtx.Err(); err != nil {
		m.mu.Unlock()
		m.logger.Info("Monitor stopped during D-Bus connection")
		if err := conn.Close(); err != nil {
			m.logger.Warn("Failed to close D-Bus connection", zap.Error(err))
		}
		return err
	}
	m.conn = conn
	m.wg.Add(1)
	m.mu.Unlock()

	if err := m.subscribe(monitorCtx, conn); err != nil {
		return err
	}

	// Block until context is cancelled
	<-monitorCtx.Done()

	m.logger.Info("Logind monitor stopped")
	return monitorCtx.Err()
}

// subscribe resolves the session, registers the signal matches and starts
// the signal goroutine. The caller has added one to wg for it.
func (m *LogindMonitor) subscribe(ctx context.Context, conn DBusClient) error {
	defer m.wg.Done()

	if err := m.detectSession(); err != nil {
		m.logger.Warn("Failed to resolve logind session, idle tracking disabled", zap.Error(err))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(logindPath),
		dbus.WithMatchInterface(managerInterface),
		dbus.WithMatchMember("PrepareForSleep"),
	); err != nil {
		m.logger.Error("Failed to add match signal", zap.Error(err))
		return fmt.Errorf("failed to add match signal: %w", err)
	}

	if path := m.session(); path != "" {
		if err := conn.AddMatchSignal(
			dbus.WithMatchObjectPath(dbus.ObjectPath(path)),
			dbus.WithMatchInterface("org.freedesktop.DBus.Properties"),
			dbus.WithMatchMember("PropertiesChanged"),
		); err != nil {
			// Non-fatal, continue with sleep notifications only
			m.logger.Warn("Failed to add PropertiesChanged match signal", zap.Error(err))
		} else {
			m.logger.Info("Idle tracking enabled", zap.String("session", path))
		}
	}

	// Start signal monitoring goroutine
	m.wg.Add(1)
	go m.monitorSignals(ctx)
	return nil
}

// Stop gracefully stops the monitor
func (m *LogindMonitor) Stop(ctx context.Context) error {
	m.mu.Lock()

	if !m.running {
		m.mu.Unlock()
		return nil
	}

	if m.cancel != nil {
		m.cancel()
	}

	m.running = false
	m.mu.Unlock()

	// Wait for all producer goroutines to terminate before closing channel
	m.logger.Debug("Waiting for monitoring goroutines to finish")
	m.wg.Wait()

	close(m.events)

	m.mu.Lock()
	if m.conn != nil {
		if err := m.conn.Close(); err != nil {
			m.logger.Warn("Failed to close D-Bus connection", zap.Error(err))
		}
	}
	m.mu.Unlock()

	m.logger.Info("Logind monitor shutdown complete")
	return nil
}

// Events returns a read-only channel that emits power transitions
func (m *LogindMonitor) Events() <-chan domain.PowerEvent {
	return m.events
}

// detectSession resolves the object path of the caller's session and
// emits its current idle state
func (m *LogindMonitor) detectSession() error {
	variant, err := m.conn.GetProperty(logindService, autoSessionPath, sessionInterface+".Id")
	if err != nil {
		return fmt.Errorf("failed to get session id: %w", err)
	}
	id, ok := variant.Value().(string)
	if !ok || id == "" {
		return fmt.Errorf("invalid session id %v", variant.Value())
	}
	path := sessionPath(id)

	m.mu.Lock()
	m.sessionPath = path
	m.mu.Unlock()

	m.logger.Info("Logind session detected", zap.String("id", id), zap.String("path", path))

	idle, err := m.conn.GetProperty(logindService, path, sessionInterface+".IdleHint")
	if err != nil {
		return fmt.Errorf("failed to get idle hint: %w", err)
	}
	if hint, ok := idle.Value().(bool); ok && hint {
		m.emit(domain.PowerEvent{Status: domain.PowerStatusStandby, Reason: "idle"})
	}
	return nil
}

// sessionPath encodes a session id into its logind object path. Every byte
// that is not a letter, or a digit past the first position, becomes _xx.
func sessionPath(id string) string {
	var b strings.Builder
	b.WriteString(sessionPathPrefix)
	for i := 0; i < len(id); i++ {
		c := id[i]
		letter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		digit := c >= '0' && c <= '9'
		if letter || (digit && i > 0) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "_%02x", c)
	}
	return b.String()
}

func (m *LogindMonitor) session() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessionPath
}

// monitorSignals listens for D-Bus signals and processes them
func (m *LogindMonitor) monitorSignals(ctx context.Context) {
	defer m.wg.Done() // Signal completion when goroutine exits

	signals := make(chan *dbus.Signal, 10)
	m.conn.Signal(signals)

	m.logger.Info("Signal monitoring goroutine started")

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Signal monitoring goroutine stopped")
			return
		case sig := <-signals:
			if sig == nil {
				continue
			}
			if event, ok := m.parseSignal(sig); ok {
				m.emit(event)
			}
		}
	}
}

// parseSignal maps a logind signal to a power event
func (m *LogindMonitor) parseSignal(sig *dbus.Signal) (domain.PowerEvent, bool) {
	switch sig.Name {
	case prepareForSleepSignal:
		if len(sig.Body) < 1 {
			return domain.PowerEvent{}, false
		}
		sleeping, ok := sig.Body[0].(bool)
		if !ok {
			return domain.PowerEvent{}, false
		}
		if sleeping {
			return domain.PowerEvent{Status: domain.PowerStatusSuspend, Reason: "sleep"}, true
		}
		return domain.PowerEvent{Status: domain.PowerStatusOn, Reason: "resume"}, true

	case propertiesChangedSignal:
		// PropertiesChanged signal has 3 arguments:
		// 1. Interface name (string)
		// 2. Changed properties (map[string]Variant)
		// 3. Invalidated properties ([]string)
		if len(sig.Body) < 2 {
			return domain.PowerEvent{}, false
		}
		if path := m.session(); path != "" && string(sig.Path) != path {
			return domain.PowerEvent{}, false
		}
		interfaceName, ok := sig.Body[0].(string)
		if !ok || interfaceName != sessionInterface {
			return domain.PowerEvent{}, false
		}
		changed, ok := sig.Body[1].(map[string]dbus.Variant)
		if !ok {
			return domain.PowerEvent{}, false
		}
		variant, ok := changed["IdleHint"]
		if !ok {
			return domain.PowerEvent{}, false
		}
		idle, ok := variant.Value().(bool)
		if !ok {
			m.logger.Warn("Invalid IdleHint format in signal, ignoring")
			return domain.PowerEvent{}, false
		}
		if idle {
			return domain.PowerEvent{Status: domain.PowerStatusStandby, Reason: "idle"}, true
		}
		return domain.PowerEvent{Status: domain.PowerStatusOn, Reason: "active"}, true
	}
	return domain.PowerEvent{}, false
}

// emit sends without blocking; a slow consumer only misses intermediate states
func (m *LogindMonitor) emit(event domain.PowerEvent) {
	select {
	case m.events <- event:
		m.logger.Info("Power change detected",
			zap.Stringer("status", event.Status),
			zap.String("reason", event.Reason))
	default:
		m.logChannelFullWarning()
	}
}

// logChannelFullWarning logs a warning about channel being full, but rate-limited
func (m *LogindMonitor) logChannelFullWarning() {
	m.mu.Lock()
	defer m.mu.Unlock()

	const warningInterval = 5 * time.Second
	now := time.Now()

	if now.Sub(m.lastDropWarning) >= warningInterval {
		m.logger.Warn("Events channel full, dropping power event")
		m.lastDropWarning = now
	}
}
