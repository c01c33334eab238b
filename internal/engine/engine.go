package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/genricoloni/screend/internal/domain"
	"github.com/genricoloni/screend/internal/screen"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	defaultDebounce = 500 * time.Millisecond

	// virtualIDBase is the first id handed out to virtual screens created
	// without an explicit one
	virtualIDBase domain.ScreenID = 1000
)

// Manager owns every screen. It routes operations to them, applies power
// events from the monitor and persists the screens' state once their
// property changes settle.
type Manager struct {
	logger     *zap.Logger
	opts       domain.ScreenOptions
	debounce   time.Duration
	defaultRes *domain.ScreenResolution
	backend    domain.DisplayBackend
	monitor    domain.PowerMonitor
	store      domain.StateStore
	fetcher    domain.Fetcher
	renderer   domain.MaskRenderer

	mu      sync.Mutex
	screens map[domain.ScreenID]screen.Screen

	// pending holds the latest unsaved state per screen; wake signals the
	// loop that it changed
	pendingMu sync.Mutex
	pending   map[domain.ScreenID]domain.ScreenInfo
	wake      chan struct{}

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager creates a new screen manager
func NewManager(
	logger *zap.Logger,
	cfg domain.Config,
	res *domain.ScreenResolution,
	backend domain.DisplayBackend,
	mon domain.PowerMonitor,
	store domain.StateStore,
	fetch domain.Fetcher,
	renderer domain.MaskRenderer,
) *Manager {
	debounce := cfg.Debounce()
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Manager{
		logger:     logger,
		opts:       cfg.ScreenOptions(),
		debounce:   debounce,
		defaultRes: res,
		backend:    backend,
		monitor:    mon,
		store:      store,
		fetcher:    fetch,
		renderer:   renderer,
		screens:    make(map[domain.ScreenID]screen.Screen),
		pending:    make(map[domain.ScreenID]domain.ScreenInfo),
		wake:       make(chan struct{}, 1),
	}
}

// Start probes the backend for physical screens and launches the event
// loop and the power monitor. It returns immediately (non-blocking).
func (m *Manager) Start(ctx context.Context) error {
	m.logger.Info("Screen manager starting...")

	if outputs, err := m.backend.Outputs(ctx); err != nil {
		m.logger.Error("Failed to probe display backend, continuing with virtual screens only", zap.Error(err))
	} else {
		for _, output := range outputs {
			if _, err := m.AddPhysicalScreen(ctx, output); err != nil {
				m.logger.Error("Failed to add physical screen", zap.Error(err))
			}
		}
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.wg.Add(2)
	go func() {
		defer m.wg.Done()
		if err := m.monitor.Start(loopCtx); err != nil && !errors.Is(err, context.Canceled) {
			m.logger.Warn("Power monitor unavailable, power events disabled", zap.Error(err))
		}
	}()
	go m.runLoop(loopCtx)
	return nil
}

// runLoop applies power events and persists property changes after the
// debounce window has passed without further changes
func (m *Manager) runLoop(ctx context.Context) {
	defer m.wg.Done()

	events := m.monitor.Events()

	timer := time.NewTimer(m.debounce)
	timer.Stop() // Start with stopped timer

	for {
		select {
		case <-ctx.Done():
			m.flush(context.WithoutCancel(ctx))
			m.logger.Info("Screen manager loop stopped")
			return

		case event, ok := <-events:
			if !ok {
				m.logger.Info("Monitor events channel closed")
				events = nil
				continue
			}
			m.applyPowerEvent(event)

		case <-m.wake:
			// Reset the debounce timer on every change
			timer.Reset(m.debounce)

		case <-timer.C:
			m.flush(ctx)
		}
	}
}

// takePending swaps out the pending states
func (m *Manager) takePending() map[domain.ScreenID]domain.ScreenInfo {
	m.pendingMu.Lock()
	defer m.pendingMu.Unlock()
	if len(m.pending) == 0 {
		return nil
	}
	taken := m.pending
	m.pending = make(map[domain.ScreenID]domain.ScreenInfo)
	return taken
}

// flush saves the pending states. Changes made while saving stay pending
// for the next flush.
func (m *Manager) flush(ctx context.Context) {
	for id, info := range m.takePending() {
		if err := m.store.Save(ctx, info); err != nil {
			m.logger.Error("Failed to persist screen state", zap.Uint64("screenID", uint64(id)), zap.Error(err))
		}
	}
}

// applyPowerEvent sets the event's power status on every physical screen
func (m *Manager) applyPowerEvent(event domain.PowerEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Applying power event",
		zap.Stringer("status", event.Status),
		zap.String("reason", event.Reason))

	for _, id := range m.sortedIDs() {
		s := m.screens[id]
		if s.IsVirtual() {
			continue
		}
		if code := s.SetPowerStatus(event.Status); code != domain.StatusSuccess {
			m.logger.Warn("Failed to apply power event",
				zap.Uint64("screenID", uint64(id)),
				zap.Stringer("code", code))
		}
	}
}

// onPropertyChanged records the new state as the latest pending one for its
// screen and wakes the loop without blocking the setter
func (m *Manager) onPropertyChanged(p *screen.Property) {
	info := p.Info()

	m.pendingMu.Lock()
	m.pending[info.ID] = info
	m.pendingMu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Stop stops the loop and the monitor, then releases the backend and the store
func (m *Manager) Stop(ctx context.Context) error {
	m.logger.Info("Screen manager stopping...")

	var err error
	if m.cancel != nil {
		m.cancel()
	}
	err = multierr.Append(err, m.monitor.Stop(ctx))
	m.wg.Wait()

	err = multierr.Append(err, m.backend.Close())
	err = multierr.Append(err, m.store.Close())
	return err
}

// AddPhysicalScreen probes output and registers the resulting screen. A
// color gamut stored for the same id is applied again when still supported.
func (m *Manager) AddPhysicalScreen(ctx context.Context, output domain.HdiOutput) (domain.ScreenID, error) {
	s := screen.NewPhysicalScreen(m.logger, m.opts, output)
	id := s.ID()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.screens[id]; exists {
		return domain.InvalidScreenID, fmt.Errorf("screen %d already exists", id)
	}
	m.restoreColorGamut(ctx, s)
	s.SetOnPropertyChangedCallback(m.onPropertyChanged)
	m.screens[id] = s

	m.logger.Info("Physical screen added", zap.Uint64("screenID", uint64(id)))
	return id, nil
}

func (m *Manager) restoreColorGamut(ctx context.Context, s screen.Screen) {
	stored, ok, err := m.store.Load(ctx, s.ID())
	if err != nil {
		m.logger.Warn("Failed to load stored screen state", zap.Uint64("screenID", uint64(s.ID())), zap.Error(err))
		return
	}
	if !ok {
		return
	}
	gamuts, code := s.GetScreenSupportedColorGamuts()
	if code != domain.StatusSuccess {
		return
	}
	idx := slices.Index(gamuts, stored.ColorGamut)
	if current, _ := s.GetScreenColorGamut(); idx < 0 || current == stored.ColorGamut {
		return
	}
	if code := s.SetScreenColorGamut(int32(idx)); code != domain.StatusSuccess {
		m.logger.Warn("Failed to restore color gamut",
			zap.Uint64("screenID", uint64(s.ID())),
			zap.Stringer("gamut", stored.ColorGamut),
			zap.Stringer("code", code))
		return
	}
	m.logger.Info("Color gamut restored",
		zap.Uint64("screenID", uint64(s.ID())),
		zap.Stringer("gamut", stored.ColorGamut))
}

// AddVirtualScreen registers a virtual screen. A zero size takes the default
// virtual resolution; domain.InvalidScreenID as id picks a free one.
func (m *Manager) AddVirtualScreen(cfg domain.VirtualScreenConfigs) (domain.ScreenID, error) {
	if cfg.Width == 0 || cfg.Height == 0 {
		cfg.Width = uint32(m.defaultRes.Width)
		cfg.Height = uint32(m.defaultRes.Height)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg.ID == domain.InvalidScreenID {
		cfg.ID = virtualIDBase
		for {
			if _, taken := m.screens[cfg.ID]; !taken {
				break
			}
			cfg.ID++
		}
	} else if _, exists := m.screens[cfg.ID]; exists {
		return domain.InvalidScreenID, fmt.Errorf("screen %d already exists", cfg.ID)
	}

	s := screen.NewVirtualScreen(m.logger, m.opts, cfg)
	s.SetOnPropertyChangedCallback(m.onPropertyChanged)
	m.screens[cfg.ID] = s

	m.logger.Info("Virtual screen added",
		zap.Uint64("screenID", uint64(cfg.ID)),
		zap.String("name", cfg.Name))
	return cfg.ID, nil
}

// RemoveScreen forgets the screen
func (m *Manager) RemoveScreen(id domain.ScreenID) domain.StatusCode {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.screens[id]
	if !ok {
		return domain.StatusScreenNotFound
	}
	s.SetOnPropertyChangedCallback(nil)
	delete(m.screens, id)
	m.logger.Info("Screen removed", zap.Uint64("screenID", uint64(id)))
	return domain.StatusSuccess
}

// Screen returns the screen registered under id. Callers must not mutate it
// outside of the manager.
func (m *Manager) Screen(id domain.ScreenID) (screen.Screen, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.screens[id]
	return s, ok
}

// ScreenIDs returns the registered ids in ascending order
func (m *Manager) ScreenIDs() []domain.ScreenID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedIDs()
}

func (m *Manager) sortedIDs() []domain.ScreenID {
	ids := make([]domain.ScreenID, 0, len(m.screens))
	for id := range m.screens {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// withScreen runs fn on the screen under the manager lock
func (m *Manager) withScreen(id domain.ScreenID, fn func(screen.Screen) domain.StatusCode) domain.StatusCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.screens[id]
	if !ok {
		return domain.StatusScreenNotFound
	}
	return fn(s)
}

// withPhysical is withScreen for operations only physical screens support
func (m *Manager) withPhysical(id domain.ScreenID, fn func(*screen.PhysicalScreen) domain.StatusCode) domain.StatusCode {
	return m.withScreen(id, func(s screen.Screen) domain.StatusCode {
		ps, ok := s.(*screen.PhysicalScreen)
		if !ok {
			return domain.StatusVirtualScreen
		}
		return fn(ps)
	})
}

func (m *Manager) SetResolution(id domain.ScreenID, width, height uint32) domain.StatusCode {
	return m.withScreen(id, func(s screen.Screen) domain.StatusCode {
		return s.SetResolution(width, height)
	})
}

func (m *Manager) SetPowerStatus(id domain.ScreenID, status domain.PowerStatus) domain.StatusCode {
	return m.withScreen(id, func(s screen.Screen) domain.StatusCode {
		return s.SetPowerStatus(status)
	})
}

func (m *Manager) SetActiveMode(id domain.ScreenID, index uint32) domain.StatusCode {
	return m.withPhysical(id, func(s *screen.PhysicalScreen) domain.StatusCode {
		return s.SetActiveMode(index)
	})
}

func (m *Manager) SetScreenActiveRect(id domain.ScreenID, rect domain.Rect) domain.StatusCode {
	return m.withPhysical(id, func(s *screen.PhysicalScreen) domain.StatusCode {
		return s.SetScreenActiveRect(rect)
	})
}

func (m *Manager) SetScreenLinearMatrix(id domain.ScreenID, matrix []float32) domain.StatusCode {
	return m.withPhysical(id, func(s *screen.PhysicalScreen) domain.StatusCode {
		return s.SetScreenLinearMatrix(matrix)
	})
}

func (m *Manager) SetDualScreenState(id domain.ScreenID, status domain.DualScreenStatus) domain.StatusCode {
	return m.withPhysical(id, func(s *screen.PhysicalScreen) domain.StatusCode {
		return s.SetDualScreenState(status)
	})
}

func (m *Manager) SetRogResolution(id domain.ScreenID, width, height uint32) domain.StatusCode {
	return m.withPhysical(id, func(s *screen.PhysicalScreen) domain.StatusCode {
		return s.SetRogResolution(width, height)
	})
}

func (m *Manager) SetScreenBacklight(id domain.ScreenID, level uint32) domain.StatusCode {
	return m.withPhysical(id, func(s *screen.PhysicalScreen) domain.StatusCode {
		return s.SetScreenBacklight(level)
	})
}

// SetSecurityMask loads the image at source, fits it to the screen and
// installs it as the screen's security mask. An empty source clears the mask.
func (m *Manager) SetSecurityMask(ctx context.Context, id domain.ScreenID, source string) error {
	s, ok := m.Screen(id)
	if !ok {
		return domain.StatusScreenNotFound.Err()
	}

	var mask *domain.PixelMap
	if source != "" {
		data, err := m.fetcher.Fetch(ctx, source)
		if err != nil {
			return fmt.Errorf("failed to fetch security mask: %w", err)
		}
		m.mu.Lock()
		info := s.Info()
		m.mu.Unlock()
		mask, err = m.renderer.Render(ctx, data, int(info.Width), int(info.Height))
		if err != nil {
			return fmt.Errorf("failed to render security mask: %w", err)
		}
	}

	code := m.withScreen(id, func(s screen.Screen) domain.StatusCode {
		return s.SetSecurityMask(mask)
	})
	if code == domain.StatusSuccess {
		m.logger.Info("Security mask updated",
			zap.Uint64("screenID", uint64(id)),
			zap.String("source", source))
	}
	return code.Err()
}

// Dump writes the display dump of every screen in id order
func (m *Manager) Dump(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, id := range m.sortedIDs() {
		m.screens[id].DisplayDump(w, i)
	}
}
