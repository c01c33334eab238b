package screen

import (
	"testing"

	"github.com/genricoloni/screend/internal/domain"
	"go.uber.org/zap"
)

type fakeSurface struct {
	id   uint64
	name string
}

func (f *fakeSurface) UniqueID() uint64 { return f.id }
func (f *fakeSurface) Name() string     { return f.name }

func newTestVirtual(opts domain.ScreenOptions, surface domain.ProducerSurface) *VirtualScreen {
	return NewVirtualScreen(zap.NewNop(), opts, domain.VirtualScreenConfigs{
		ID:                 7,
		AssociatedScreenID: 0,
		Name:               "cast",
		Width:              1280,
		Height:             720,
		Surface:            surface,
		WhiteList:          []domain.NodeID{11, 12},
	})
}

func TestNewVirtualScreen(t *testing.T) {
	s := newTestVirtual(domain.DefaultScreenOptions(), &fakeSurface{id: 1, name: "encoder"})
	p := s.Property()

	if !s.IsVirtual() || s.ID() != 7 || s.Name() != "cast" {
		t.Errorf("identity mismatch: id=%d name=%s virtual=%v", s.ID(), s.Name(), s.IsVirtual())
	}
	if p.Width() != 1280 || p.Height() != 720 {
		t.Errorf("size: want 1280x720, got %dx%d", p.Width(), p.Height())
	}
	if p.ScreenType() != domain.ScreenTypeVirtual {
		t.Errorf("screen type: want VIRTUAL, got %v", p.ScreenType())
	}
	if p.State() != domain.ScreenStateProducerSurfaceEnable {
		t.Errorf("state: want producer surface enabled, got %v", p.State())
	}
	if p.PixelFormat() != domain.PixelFormatRGBA8888 {
		t.Errorf("pixel format: want RGBA8888 default, got %v", p.PixelFormat())
	}
	if len(p.WhiteList()) != 2 {
		t.Errorf("white list: want 2 ids, got %v", p.WhiteList())
	}
	if p.GetAndResetWhiteListChange() {
		t.Error("construction should not mark the white list as changed")
	}
	if p.ColorGamut() != domain.ColorGamutSRGB {
		t.Errorf("initial gamut: want SRGB, got %v", p.ColorGamut())
	}
}

func TestVirtualScreenColorGamut(t *testing.T) {
	opts := domain.ScreenOptions{
		VirtualColorGamuts: []domain.ColorGamut{domain.ColorGamutSRGB, domain.ColorGamutDisplayP3},
	}
	s := newTestVirtual(opts, nil)

	tests := []struct {
		name        string
		index       int32
		expectCode  domain.StatusCode
		expectGamut domain.ColorGamut
	}{
		{name: "First gamut", index: 0, expectCode: domain.StatusSuccess, expectGamut: domain.ColorGamutSRGB},
		{name: "Second gamut", index: 1, expectCode: domain.StatusSuccess, expectGamut: domain.ColorGamutDisplayP3},
		{name: "Past the list", index: 2, expectCode: domain.StatusInvalidArguments, expectGamut: domain.ColorGamutDisplayP3},
		{name: "Negative", index: -1, expectCode: domain.StatusInvalidArguments, expectGamut: domain.ColorGamutDisplayP3},
	}

	// cases run in order and build on each other
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := s.SetScreenColorGamut(tt.index); code != tt.expectCode {
				t.Fatalf("code: want %v, got %v", tt.expectCode, code)
			}
			gamut, code := s.GetScreenColorGamut()
			if code != domain.StatusSuccess || gamut != tt.expectGamut {
				t.Errorf("gamut: want %v, got %v (%v)", tt.expectGamut, gamut, code)
			}
		})
	}

	if cs, _ := s.GetScreenColorSpace(); cs != domain.ColorSpaceP3Full {
		t.Errorf("color space: want P3, got %v", cs)
	}
	if code := s.SetScreenColorSpace(domain.ColorSpaceSRGBFull); code != domain.StatusSuccess {
		t.Errorf("SetScreenColorSpace(SRGB): want SUCCESS, got %v", code)
	}
	if code := s.SetScreenColorSpace(domain.ColorSpaceBT2020HLGFull); code != domain.StatusInvalidArguments {
		t.Errorf("SetScreenColorSpace(HLG): want INVALID_ARGUMENTS, got %v", code)
	}
	spaces, code := s.GetScreenSupportedColorSpaces()
	if code != domain.StatusSuccess || len(spaces) != 2 {
		t.Errorf("supported color spaces: got %v (%v)", spaces, code)
	}
}

func TestVirtualScreenWithoutCapabilities(t *testing.T) {
	s := newTestVirtual(domain.ScreenOptions{}, nil)

	if _, code := s.GetScreenColorGamut(); code != domain.StatusHdiError {
		t.Errorf("GetScreenColorGamut: want HDI_ERROR, got %v", code)
	}
	if _, code := s.GetScreenSupportedColorGamuts(); code != domain.StatusHdiError {
		t.Errorf("GetScreenSupportedColorGamuts: want HDI_ERROR, got %v", code)
	}
	if _, code := s.GetScreenHDRFormat(); code != domain.StatusHdiError {
		t.Errorf("GetScreenHDRFormat: want HDI_ERROR, got %v", code)
	}
	if code := s.SetScreenHDRFormat(0); code != domain.StatusInvalidArguments {
		t.Errorf("SetScreenHDRFormat: want INVALID_ARGUMENTS, got %v", code)
	}
	if s.Property().State() != domain.ScreenStateDisabled {
		t.Errorf("state without surface: want DISABLED, got %v", s.Property().State())
	}
}

func TestVirtualScreenHDRFormat(t *testing.T) {
	s := newTestVirtual(domain.DefaultScreenOptions(), nil)

	if code := s.SetScreenHDRFormat(2); code != domain.StatusSuccess {
		t.Fatalf("want SUCCESS, got %v", code)
	}
	if f, _ := s.GetScreenHDRFormat(); f != domain.HDRVideoHDR10 {
		t.Errorf("want VIDEO_HDR10, got %v", f)
	}
	if code := s.SetScreenHDRFormat(4); code != domain.StatusInvalidArguments {
		t.Errorf("want INVALID_ARGUMENTS, got %v", code)
	}
	hdr := s.GetHDRCapability()
	if hdr.MaxLum != maxLuminance || len(hdr.Formats) != 4 {
		t.Errorf("capability: got %+v", hdr)
	}
}

func TestVirtualScreenPowerStatusIsLocal(t *testing.T) {
	s := newTestVirtual(domain.DefaultScreenOptions(), nil)
	notified := countNotifications(s)

	if code := s.SetPowerStatus(domain.PowerStatusOff); code != domain.StatusSuccess {
		t.Fatalf("want SUCCESS, got %v", code)
	}
	if s.GetPowerStatus() != domain.PowerStatusOff {
		t.Errorf("want OFF, got %v", s.GetPowerStatus())
	}
	if *notified != 1 {
		t.Errorf("want 1 notification, got %d", *notified)
	}
}

func TestVirtualScreenSetResolution(t *testing.T) {
	s := newTestVirtual(domain.DefaultScreenOptions(), nil)

	if code := s.SetResolution(640, 480); code != domain.StatusSuccess {
		t.Fatalf("want SUCCESS, got %v", code)
	}
	if s.Property().IsSamplingOn() {
		t.Error("virtual screens never sample")
	}
	s.ResizeVirtualScreen(320, 240)
	if s.Property().Width() != 320 || s.Property().Height() != 240 {
		t.Errorf("resize: got %dx%d", s.Property().Width(), s.Property().Height())
	}
}

func TestVirtualScreenSupportedModes(t *testing.T) {
	tests := []struct {
		name   string
		resize func(*VirtualScreen)
		width  uint32
		height uint32
	}{
		{
			name:   "Size from the configuration",
			resize: func(*VirtualScreen) {},
			width:  1280,
			height: 720,
		},
		{
			name:   "Follows SetResolution",
			resize: func(s *VirtualScreen) { s.SetResolution(1920, 1080) },
			width:  1920,
			height: 1080,
		},
		{
			name:   "Follows ResizeVirtualScreen",
			resize: func(s *VirtualScreen) { s.ResizeVirtualScreen(640, 480) },
			width:  640,
			height: 480,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestVirtual(domain.DefaultScreenOptions(), nil)
			tt.resize(s)

			modes := s.SupportedModes()
			if len(modes) != 1 {
				t.Fatalf("want a single mode, got %d", len(modes))
			}
			if m := modes[0]; m.ID != 0 || m.Width != tt.width || m.Height != tt.height {
				t.Errorf("mode: want id 0 %dx%d, got id %d %dx%d", tt.width, tt.height, m.ID, m.Width, m.Height)
			}
		})
	}
}

func TestVirtualScreenProducerSurface(t *testing.T) {
	s := newTestVirtual(domain.DefaultScreenOptions(), nil)
	surface := &fakeSurface{id: 42, name: "recorder"}

	s.SetProducerSurface(surface)
	if s.ProducerSurface() != surface {
		t.Fatal("surface not stored")
	}
	if s.Property().State() != domain.ScreenStateProducerSurfaceEnable {
		t.Errorf("state: want producer surface enabled, got %v", s.Property().State())
	}
	if !s.Property().GetAndResetPSurfaceChange() {
		t.Error("surface change flag not set")
	}
	if s.Property().GetAndResetPSurfaceChange() {
		t.Error("surface change flag should reset after one read")
	}

	s.SetProducerSurface(nil)
	if s.Property().State() != domain.ScreenStateDisabled {
		t.Errorf("state after removing surface: want DISABLED, got %v", s.Property().State())
	}
}

func TestVirtualScreenStatus(t *testing.T) {
	s := newTestVirtual(domain.DefaultScreenOptions(), nil)

	s.SetVirtualScreenStatus(domain.VirtualScreenPause)
	if s.Property().GetAndResetVirtualScreenPlay() {
		t.Error("pause should not raise the play flag")
	}
	s.SetVirtualScreenStatus(domain.VirtualScreenPlay)
	if !s.Property().GetAndResetVirtualScreenPlay() {
		t.Error("play flag not raised")
	}
	if s.Property().VirtualScreenStatus() != domain.VirtualScreenPlay {
		t.Errorf("status: want PLAY, got %v", s.Property().VirtualScreenStatus())
	}
}

func TestVirtualScreenRenderingToggles(t *testing.T) {
	s := newTestVirtual(domain.DefaultScreenOptions(), nil)
	notified := countNotifications(s)

	s.SetCanvasRotation(true)
	s.SetAutoRotation(true)
	s.SetScaleMode(domain.ScaleModeUniform)

	p := s.Property()
	if !p.CanvasRotation() || !p.AutoBufferRotation() || p.ScaleMode() != domain.ScaleModeUniform {
		t.Errorf("toggles not applied: canvas=%v auto=%v scale=%v", p.CanvasRotation(), p.AutoBufferRotation(), p.ScaleMode())
	}
	if *notified != 3 {
		t.Errorf("want 3 notifications, got %d", *notified)
	}
}

func TestVirtualScreenLocalOnlyOperations(t *testing.T) {
	s := newTestVirtual(domain.DefaultScreenOptions(), nil)

	if code := s.SetScreenGamutMap(domain.GamutMapHDRExpansion); code != domain.StatusSuccess {
		t.Fatalf("want SUCCESS, got %v", code)
	}
	if m, _ := s.GetScreenGamutMap(); m != domain.GamutMapHDRExpansion {
		t.Errorf("gamut map: want HDR_EXPANSION, got %v", m)
	}
	if code := s.SetScreenConstraint(1, 1000, domain.ConstraintAdaptive); code != domain.StatusSuccess {
		t.Errorf("constraint: want SUCCESS, got %v", code)
	}
	if s.AssociatedScreenID() != 0 {
		t.Errorf("associated screen: want 0, got %d", s.AssociatedScreenID())
	}
}
