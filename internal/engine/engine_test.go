package engine

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/genricoloni/screend/internal/domain"
	"github.com/genricoloni/screend/internal/domain/mocks"
	"github.com/genricoloni/screend/internal/fetcher"
	"github.com/genricoloni/screend/internal/processor"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type testDeps struct {
	backend  *mocks.MockDisplayBackend
	monitor  *mocks.MockPowerMonitor
	store    *mocks.MockStateStore
	fetcher  *mocks.MockFetcher
	renderer *mocks.MockMaskRenderer
}

func newTestManager(ctrl *gomock.Controller, debounce time.Duration) (*Manager, *testDeps) {
	cfg := mocks.NewMockConfig(ctrl)
	cfg.EXPECT().Debounce().Return(debounce).AnyTimes()
	cfg.EXPECT().ScreenOptions().Return(domain.DefaultScreenOptions()).AnyTimes()

	deps := &testDeps{
		backend:  mocks.NewMockDisplayBackend(ctrl),
		monitor:  mocks.NewMockPowerMonitor(ctrl),
		store:    mocks.NewMockStateStore(ctrl),
		fetcher:  mocks.NewMockFetcher(ctrl),
		renderer: mocks.NewMockMaskRenderer(ctrl),
	}
	m := NewManager(zap.NewNop(), cfg, &domain.ScreenResolution{Width: 1920, Height: 1080},
		deps.backend, deps.monitor, deps.store, deps.fetcher, deps.renderer)
	return m, deps
}

// newTestOutput returns an output whose device answers every probe call.
// The device supports DisplayP3 and sRGB and starts on sRGB.
func newTestOutput(ctrl *gomock.Controller, id domain.ScreenID) (*mocks.MockHdiOutput, *mocks.MockHdiDevice) {
	out := mocks.NewMockHdiOutput(ctrl)
	dev := mocks.NewMockHdiDevice(ctrl)

	out.EXPECT().ScreenID().Return(id).AnyTimes()
	out.EXPECT().CreateDevice().Return(dev, nil).AnyTimes()
	dev.EXPECT().GetScreenSupportedModes().Return([]domain.ScreenMode{
		{ID: 0, Width: 1920, Height: 1080, RefreshRate: 60},
	}, nil).AnyTimes()
	dev.EXPECT().GetHDRCapabilityInfos().Return(domain.HDRCapability{}, nil).AnyTimes()
	dev.EXPECT().SetScreenPowerStatus(domain.PowerStatusOn).Return(nil).AnyTimes()
	dev.EXPECT().GetScreenMode().Return(uint32(0), nil).AnyTimes()
	dev.EXPECT().GetScreenPowerStatus().Return(domain.PowerStatusOn, nil).AnyTimes()
	dev.EXPECT().GetScreenCapability().Return(domain.Capability{
		Name:      "eDP-1",
		Type:      domain.InterfaceLCD,
		PhyWidth:  344,
		PhyHeight: 193,
	}, nil).AnyTimes()
	dev.EXPECT().GetScreenConnectionType().Return(domain.ConnectionInternal, nil).AnyTimes()
	dev.EXPECT().GetScreenSupportedColorGamuts().
		Return([]domain.ColorGamut{domain.ColorGamutDisplayP3, domain.ColorGamutSRGB}, nil).AnyTimes()
	dev.EXPECT().GetScreenBacklight().Return(uint32(80), nil).AnyTimes()
	return out, dev
}

func TestAddVirtualScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestManager(ctrl, 0)

	tests := []struct {
		name       string
		cfg        domain.VirtualScreenConfigs
		wantID     domain.ScreenID
		wantWidth  uint32
		wantHeight uint32
		wantErr    bool
	}{
		{
			name:       "Auto id and default size",
			cfg:        domain.VirtualScreenConfigs{ID: domain.InvalidScreenID, Name: "cast"},
			wantID:     1000,
			wantWidth:  1920,
			wantHeight: 1080,
		},
		{
			name:       "Next auto id",
			cfg:        domain.VirtualScreenConfigs{ID: domain.InvalidScreenID, Width: 640, Height: 480},
			wantID:     1001,
			wantWidth:  640,
			wantHeight: 480,
		},
		{
			name:       "Explicit id",
			cfg:        domain.VirtualScreenConfigs{ID: 5, Width: 800, Height: 600},
			wantID:     5,
			wantWidth:  800,
			wantHeight: 600,
		},
		{
			name:    "Duplicate id",
			cfg:     domain.VirtualScreenConfigs{ID: 5, Width: 800, Height: 600},
			wantErr: true,
		},
		{
			name:       "Zero height takes the default size",
			cfg:        domain.VirtualScreenConfigs{ID: 6, Width: 800},
			wantID:     6,
			wantWidth:  1920,
			wantHeight: 1080,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := m.AddVirtualScreen(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if id != domain.InvalidScreenID {
					t.Errorf("failed add should return an invalid id, got %d", id)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("id: want %d, got %d", tt.wantID, id)
			}
			s, ok := m.Screen(id)
			if !ok {
				t.Fatal("screen not registered")
			}
			info := s.Info()
			if info.Width != tt.wantWidth || info.Height != tt.wantHeight {
				t.Errorf("size: want %dx%d, got %dx%d", tt.wantWidth, tt.wantHeight, info.Width, info.Height)
			}
			if !info.IsVirtual {
				t.Error("screen should be virtual")
			}
		})
	}

	ids := m.ScreenIDs()
	want := []domain.ScreenID{5, 6, 1000, 1001}
	if len(ids) != len(want) {
		t.Fatalf("ScreenIDs: want %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ScreenIDs: want %v, got %v", want, ids)
			break
		}
	}
}

func TestAddPhysicalScreenRestoresColorGamut(t *testing.T) {
	tests := []struct {
		name      string
		stored    domain.ScreenInfo
		found     bool
		loadErr   error
		wantGamut domain.ColorGamut
		setCalls  int
	}{
		{
			name:      "Nothing stored",
			wantGamut: domain.ColorGamutSRGB,
		},
		{
			name:      "Stored gamut is applied",
			stored:    domain.ScreenInfo{ColorGamut: domain.ColorGamutDisplayP3},
			found:     true,
			wantGamut: domain.ColorGamutDisplayP3,
			setCalls:  1,
		},
		{
			name:      "Stored gamut already active",
			stored:    domain.ScreenInfo{ColorGamut: domain.ColorGamutSRGB},
			found:     true,
			wantGamut: domain.ColorGamutSRGB,
		},
		{
			name:      "Stored gamut no longer supported",
			stored:    domain.ScreenInfo{ColorGamut: domain.ColorGamutBT2020},
			found:     true,
			wantGamut: domain.ColorGamutSRGB,
		},
		{
			name:      "Store error",
			loadErr:   errors.New("database is locked"),
			wantGamut: domain.ColorGamutSRGB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m, deps := newTestManager(ctrl, 0)
			out, dev := newTestOutput(ctrl, 0)
			deps.store.EXPECT().Load(gomock.Any(), domain.ScreenID(0)).Return(tt.stored, tt.found, tt.loadErr)
			dev.EXPECT().SetScreenColorGamut(domain.ColorGamutDisplayP3).Return(nil).Times(tt.setCalls)

			id, err := m.AddPhysicalScreen(context.Background(), out)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			s, _ := m.Screen(id)
			if gamut, _ := s.GetScreenColorGamut(); gamut != tt.wantGamut {
				t.Errorf("gamut: want %v, got %v", tt.wantGamut, gamut)
			}
		})
	}
}

func TestAddPhysicalScreenDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestManager(ctrl, 0)
	out, _ := newTestOutput(ctrl, 2)
	deps.store.EXPECT().Load(gomock.Any(), domain.ScreenID(2)).Return(domain.ScreenInfo{}, false, nil)

	if _, err := m.AddPhysicalScreen(context.Background(), out); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := m.AddPhysicalScreen(context.Background(), out); err == nil {
		t.Error("second add of the same output should fail")
	}
}

func TestManagerRouting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestManager(ctrl, 0)
	out, dev := newTestOutput(ctrl, 0)
	deps.store.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.ScreenInfo{}, false, nil)
	dev.EXPECT().SetScreenBacklight(uint32(50)).Return(nil)
	dev.EXPECT().SetDisplayProperty(uint64(domain.DualScreenEnter)).Return(nil)

	if _, err := m.AddPhysicalScreen(context.Background(), out); err != nil {
		t.Fatalf("AddPhysicalScreen: %v", err)
	}
	virtualID, err := m.AddVirtualScreen(domain.VirtualScreenConfigs{ID: domain.InvalidScreenID, Width: 640, Height: 480})
	if err != nil {
		t.Fatalf("AddVirtualScreen: %v", err)
	}
	const unknown domain.ScreenID = 7

	tests := []struct {
		name string
		call func() domain.StatusCode
		want domain.StatusCode
	}{
		{
			name: "SetResolution on unknown screen",
			call: func() domain.StatusCode { return m.SetResolution(unknown, 100, 100) },
			want: domain.StatusScreenNotFound,
		},
		{
			name: "SetResolution on virtual screen",
			call: func() domain.StatusCode { return m.SetResolution(virtualID, 800, 600) },
			want: domain.StatusSuccess,
		},
		{
			name: "SetPowerStatus on unknown screen",
			call: func() domain.StatusCode { return m.SetPowerStatus(unknown, domain.PowerStatusOff) },
			want: domain.StatusScreenNotFound,
		},
		{
			name: "SetActiveMode on virtual screen",
			call: func() domain.StatusCode { return m.SetActiveMode(virtualID, 0) },
			want: domain.StatusVirtualScreen,
		},
		{
			name: "SetActiveMode out of range",
			call: func() domain.StatusCode { return m.SetActiveMode(0, 5) },
			want: domain.StatusInvalidArguments,
		},
		{
			name: "SetScreenActiveRect on virtual screen",
			call: func() domain.StatusCode { return m.SetScreenActiveRect(virtualID, domain.Rect{W: 10, H: 10}) },
			want: domain.StatusVirtualScreen,
		},
		{
			name: "SetScreenLinearMatrix on unknown screen",
			call: func() domain.StatusCode { return m.SetScreenLinearMatrix(unknown, make([]float32, 9)) },
			want: domain.StatusScreenNotFound,
		},
		{
			name: "SetRogResolution on virtual screen",
			call: func() domain.StatusCode { return m.SetRogResolution(virtualID, 800, 600) },
			want: domain.StatusVirtualScreen,
		},
		{
			name: "SetScreenBacklight on physical screen",
			call: func() domain.StatusCode { return m.SetScreenBacklight(0, 50) },
			want: domain.StatusSuccess,
		},
		{
			name: "SetDualScreenState on physical screen",
			call: func() domain.StatusCode { return m.SetDualScreenState(0, domain.DualScreenEnter) },
			want: domain.StatusSuccess,
		},
		{
			name: "SetDualScreenState on virtual screen",
			call: func() domain.StatusCode { return m.SetDualScreenState(virtualID, domain.DualScreenEnter) },
			want: domain.StatusVirtualScreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.call(); got != tt.want {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}

	if code := m.RemoveScreen(virtualID); code != domain.StatusSuccess {
		t.Errorf("RemoveScreen: want SUCCESS, got %v", code)
	}
	if code := m.RemoveScreen(virtualID); code != domain.StatusScreenNotFound {
		t.Errorf("second RemoveScreen: want SCREEN_NOT_FOUND, got %v", code)
	}
}

func TestSetSecurityMask(t *testing.T) {
	mask := &domain.PixelMap{Width: 640, Height: 480, Image: image.NewRGBA(image.Rect(0, 0, 640, 480))}

	tests := []struct {
		name      string
		id        domain.ScreenID
		source    string
		setupMock func(*testDeps)
		wantErr   string
		wantMask  bool
	}{
		{
			name:      "Unknown screen",
			id:        42,
			source:    "mask.png",
			setupMock: func(d *testDeps) {},
			wantErr:   "SCREEN_NOT_FOUND",
		},
		{
			name:   "Fetch failure",
			id:     1000,
			source: "https://example.com/mask.png",
			setupMock: func(d *testDeps) {
				d.fetcher.EXPECT().Fetch(gomock.Any(), "https://example.com/mask.png").Return(nil, errors.New("connection refused"))
			},
			wantErr: "failed to fetch security mask",
		},
		{
			name:   "Render failure",
			id:     1000,
			source: "mask.png",
			setupMock: func(d *testDeps) {
				d.fetcher.EXPECT().Fetch(gomock.Any(), "mask.png").Return([]byte("garbage"), nil)
				d.renderer.EXPECT().Render(gomock.Any(), []byte("garbage"), 640, 480).Return(nil, errors.New("failed to decode image"))
			},
			wantErr: "failed to render security mask",
		},
		{
			name:   "Success",
			id:     1000,
			source: "mask.png",
			setupMock: func(d *testDeps) {
				d.fetcher.EXPECT().Fetch(gomock.Any(), "mask.png").Return([]byte("png"), nil)
				d.renderer.EXPECT().Render(gomock.Any(), []byte("png"), 640, 480).Return(mask, nil)
			},
			wantMask: true,
		},
		{
			name:      "Empty source clears the mask",
			id:        1000,
			source:    "",
			setupMock: func(d *testDeps) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m, deps := newTestManager(ctrl, 0)
			if _, err := m.AddVirtualScreen(domain.VirtualScreenConfigs{ID: 1000, Width: 640, Height: 480}); err != nil {
				t.Fatalf("AddVirtualScreen: %v", err)
			}
			s, _ := m.Screen(1000)
			s.SetSecurityMask(&domain.PixelMap{Width: 1, Height: 1})
			tt.setupMock(deps)

			err := m.SetSecurityMask(context.Background(), tt.id, tt.source)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			got := s.GetSecurityMask()
			if tt.wantMask && got != mask {
				t.Errorf("mask not installed: got %+v", got)
			}
			if !tt.wantMask && got != nil {
				t.Errorf("mask should be cleared, got %+v", got)
			}
		})
	}
}

// TestSetSecurityMaskFromMaskDir resolves a relative source against the mask
// directory and installs the blurred mask at the screen size
func TestSetSecurityMaskFromMaskDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 200, 100))); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lock.png"), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := mocks.NewMockConfig(ctrl)
	cfg.EXPECT().Debounce().Return(time.Hour).AnyTimes()
	cfg.EXPECT().ScreenOptions().Return(domain.DefaultScreenOptions()).AnyTimes()
	cfg.EXPECT().MaskDir().Return(dir)
	cfg.EXPECT().MaskBlurRadius().Return(2.0)

	m := NewManager(zap.NewNop(), cfg, &domain.ScreenResolution{Width: 1920, Height: 1080},
		mocks.NewMockDisplayBackend(ctrl), mocks.NewMockPowerMonitor(ctrl), mocks.NewMockStateStore(ctrl),
		fetcher.NewMaskFetcher(zap.NewNop(), cfg), processor.NewMaskProcessor(zap.NewNop(), cfg))

	id, err := m.AddVirtualScreen(domain.VirtualScreenConfigs{ID: domain.InvalidScreenID, Width: 640, Height: 480})
	if err != nil {
		t.Fatalf("AddVirtualScreen: %v", err)
	}

	if err := m.SetSecurityMask(context.Background(), id, "lock.png"); err != nil {
		t.Fatalf("SetSecurityMask: %v", err)
	}
	s, _ := m.Screen(id)
	mask := s.GetSecurityMask()
	if mask == nil {
		t.Fatal("mask not installed")
	}
	if mask.Width != 640 || mask.Height != 480 || mask.Image.Bounds().Dx() != 640 || mask.Image.Bounds().Dy() != 480 {
		t.Errorf("mask size: want 640x480, got %dx%d (image %v)", mask.Width, mask.Height, mask.Image.Bounds())
	}

	err = m.SetSecurityMask(context.Background(), id, "missing.png")
	if err == nil || !strings.Contains(err.Error(), "failed to fetch security mask") {
		t.Errorf("expected fetch error for a missing mask, got %v", err)
	}
	if s.GetSecurityMask() != mask {
		t.Error("a failed update must keep the installed mask")
	}
}

func TestSetSecurityMaskStatusError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestManager(ctrl, 0)
	err := m.SetSecurityMask(context.Background(), 3, "")

	var statusErr *domain.StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != domain.StatusScreenNotFound {
		t.Errorf("want SCREEN_NOT_FOUND status error, got %v", err)
	}
}

// TestManagerLifecycle starts the manager against a mocked backend, checks
// that power events reach physical screens only, that property changes are
// persisted after the debounce window and that Stop releases everything
func TestManagerLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestManager(ctrl, 20*time.Millisecond)
	out, dev := newTestOutput(ctrl, 0)

	events := make(chan domain.PowerEvent, 1)
	suspended := make(chan struct{}, 1)
	saved := make(chan domain.ScreenInfo, 16)

	deps.backend.EXPECT().Outputs(gomock.Any()).Return([]domain.HdiOutput{out}, nil)
	deps.store.EXPECT().Load(gomock.Any(), domain.ScreenID(0)).Return(domain.ScreenInfo{}, false, nil)
	deps.monitor.EXPECT().Events().Return((<-chan domain.PowerEvent)(events))
	deps.monitor.EXPECT().Start(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	dev.EXPECT().SetScreenPowerStatus(domain.PowerStatusSuspend).DoAndReturn(func(domain.PowerStatus) error {
		suspended <- struct{}{}
		return nil
	})
	deps.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, info domain.ScreenInfo) error {
		saved <- info
		return nil
	}).AnyTimes()
	deps.monitor.EXPECT().Stop(gomock.Any()).Return(nil)
	deps.backend.EXPECT().Close().Return(nil)
	deps.store.EXPECT().Close().Return(nil)

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	virtualID, err := m.AddVirtualScreen(domain.VirtualScreenConfigs{ID: domain.InvalidScreenID, Width: 640, Height: 480})
	if err != nil {
		t.Fatalf("AddVirtualScreen: %v", err)
	}

	events <- domain.PowerEvent{Status: domain.PowerStatusSuspend, Reason: "sleep"}
	select {
	case <-suspended:
	case <-time.After(time.Second):
		t.Fatal("Timeout: power event was not applied to the physical screen")
	}

	for _, w := range []uint32{700, 750, 800} {
		if code := m.SetResolution(virtualID, w, 600); code != domain.StatusSuccess {
			t.Fatalf("SetResolution: %v", code)
		}
	}

	deadline := time.After(2 * time.Second)
	for {
		var info domain.ScreenInfo
		select {
		case info = <-saved:
		case <-deadline:
			t.Fatal("Timeout: virtual screen state was not persisted")
		}
		if info.ID == virtualID && info.Width == 800 {
			break
		}
	}

	vs, _ := m.Screen(virtualID)
	if vs.GetPowerStatus() == domain.PowerStatusSuspend {
		t.Error("power events must not reach virtual screens")
	}

	if err := m.Stop(context.Background()); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestPropertyChangesCoalescePerScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestManager(ctrl, 0)
	first, _ := m.AddVirtualScreen(domain.VirtualScreenConfigs{ID: domain.InvalidScreenID, Width: 640, Height: 480})
	second, _ := m.AddVirtualScreen(domain.VirtualScreenConfigs{ID: domain.InvalidScreenID, Width: 640, Height: 480})

	// Far more changes than any queue would hold, with nobody consuming them
	for w := uint32(1); w <= 500; w++ {
		m.SetResolution(first, w, 480)
	}
	m.SetResolution(second, 320, 240)

	pending := m.takePending()
	if len(pending) != 2 {
		t.Fatalf("want one pending state per screen, got %d", len(pending))
	}
	if got := pending[first].Width; got != 500 {
		t.Errorf("screen %d: want latest width 500, got %d", first, got)
	}
	if got := pending[second].Width; got != 320 {
		t.Errorf("screen %d: want latest width 320, got %d", second, got)
	}
	if len(m.wake) != 1 {
		t.Errorf("want a single wake-up signal, got %d", len(m.wake))
	}
	if again := m.takePending(); again != nil {
		t.Errorf("pending states should be cleared once taken, got %v", again)
	}
}

// TestLatestStatePersistedAfterSlowSave keeps the first Save blocked while
// the screen keeps changing; once the store is responsive again the final
// state must be the one persisted
func TestLatestStatePersistedAfterSlowSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestManager(ctrl, time.Millisecond)

	entered := make(chan struct{})
	release := make(chan struct{})
	var (
		once      sync.Once
		mu        sync.Mutex
		lastWidth uint32
	)

	deps.backend.EXPECT().Outputs(gomock.Any()).Return(nil, nil)
	deps.monitor.EXPECT().Events().Return(nil)
	deps.monitor.EXPECT().Start(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	deps.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, info domain.ScreenInfo) error {
		once.Do(func() {
			close(entered)
			<-release
		})
		mu.Lock()
		lastWidth = info.Width
		mu.Unlock()
		return nil
	}).AnyTimes()
	deps.monitor.EXPECT().Stop(gomock.Any()).Return(nil)
	deps.backend.EXPECT().Close().Return(nil)
	deps.store.EXPECT().Close().Return(nil)

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	id, err := m.AddVirtualScreen(domain.VirtualScreenConfigs{ID: domain.InvalidScreenID, Width: 640, Height: 480})
	if err != nil {
		t.Fatalf("AddVirtualScreen: %v", err)
	}

	m.SetResolution(id, 1, 480)
	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout: first state was never saved")
	}

	for w := uint32(2); w <= 100; w++ {
		m.SetResolution(id, w, 480)
	}
	close(release)

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		got := lastWidth
		mu.Unlock()
		if got == 100 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("persisted state is stale: store has width %d, screen has 100", got)
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := m.Stop(context.Background()); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestManagerStartWithoutBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestManager(ctrl, 0)
	deps.backend.EXPECT().Outputs(gomock.Any()).Return(nil, errors.New("cannot open display"))
	deps.monitor.EXPECT().Events().Return(nil)
	deps.monitor.EXPECT().Start(gomock.Any()).Return(errors.New("no system bus"))
	deps.monitor.EXPECT().Stop(gomock.Any()).Return(errors.New("monitor not running"))
	deps.backend.EXPECT().Close().Return(errors.New("display already closed"))
	deps.store.EXPECT().Close().Return(nil)

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start should not fail without a backend: %v", err)
	}
	if ids := m.ScreenIDs(); len(ids) != 0 {
		t.Errorf("want no screens, got %v", ids)
	}

	err := m.Stop(context.Background())
	if err == nil {
		t.Fatal("Expected aggregated error, got nil")
	}
	for _, msg := range []string{"monitor not running", "display already closed"} {
		if !strings.Contains(err.Error(), msg) {
			t.Errorf("error %q should contain %q", err, msg)
		}
	}
}

func TestManagerDump(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestManager(ctrl, 0)
	for _, id := range []domain.ScreenID{1001, 1000} {
		if _, err := m.AddVirtualScreen(domain.VirtualScreenConfigs{ID: id, Width: 640, Height: 480}); err != nil {
			t.Fatalf("AddVirtualScreen: %v", err)
		}
	}

	var buf bytes.Buffer
	m.Dump(&buf)
	dump := buf.String()

	first := strings.Index(dump, "screen[0]: id=1000")
	second := strings.Index(dump, "screen[1]: id=1001")
	if first < 0 || second < 0 || first > second {
		t.Errorf("screens should be dumped in id order:\n%s", dump)
	}
}
