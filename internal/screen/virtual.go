package screen

import (
	"slices"

	"github.com/genricoloni/screend/internal/domain"
	"go.uber.org/zap"
)

// VirtualScreen is a software screen rendering into a producer surface.
// Its color and HDR capabilities come from the screen options.
type VirtualScreen struct {
	base

	associatedScreenID domain.ScreenID
	colorGamutIdx      int
	hdrFormatIdx       int
}

// NewVirtualScreen builds a virtual screen from cfg
func NewVirtualScreen(logger *zap.Logger, opts domain.ScreenOptions, cfg domain.VirtualScreenConfigs) *VirtualScreen {
	s := &VirtualScreen{
		base:               newBase(logger, opts, cfg.ID, true),
		associatedScreenID: cfg.AssociatedScreenID,
	}
	p := s.property
	p.s.name = cfg.Name
	p.s.width = cfg.Width
	p.s.height = cfg.Height
	p.s.virtualSecLayerFlags = cfg.Flags
	p.s.surface = cfg.Surface
	if cfg.PixelFormat != 0 {
		p.s.pixelFormat = cfg.PixelFormat
	}
	p.s.screenType = domain.ScreenTypeVirtual
	addNodes(p.s.whiteList, cfg.WhiteList)
	if cfg.Surface != nil {
		p.s.state = domain.ScreenStateProducerSurfaceEnable
	}
	p.s.supportedColorGamuts = slices.Clone(opts.VirtualColorGamuts)
	if len(opts.VirtualColorGamuts) > 0 {
		p.s.colorGamut = opts.VirtualColorGamuts[0]
	}
	if len(opts.VirtualHDRFormats) > 0 {
		p.s.hdrFormat = opts.VirtualHDRFormats[0]
	}

	s.logger.Info("Virtual screen initialized",
		zap.Uint64("associatedScreenID", uint64(cfg.AssociatedScreenID)),
		zap.Uint32("width", cfg.Width),
		zap.Uint32("height", cfg.Height),
		zap.String("name", cfg.Name),
		zap.Int("whiteList", len(cfg.WhiteList)))
	return s
}

// AssociatedScreenID returns the physical screen this one mirrors
func (s *VirtualScreen) AssociatedScreenID() domain.ScreenID {
	return s.associatedScreenID
}

// SetResolution resizes the render target. There is no panel to sample for.
func (s *VirtualScreen) SetResolution(width, height uint32) domain.StatusCode {
	s.logger.Info("SetResolution", zap.Uint32("width", width), zap.Uint32("height", height))
	s.property.setResolution(width, height)
	s.notify()
	return domain.StatusSuccess
}

// SupportedModes returns the single mode of a virtual screen, its current size
func (s *VirtualScreen) SupportedModes() []domain.ScreenMode {
	p := s.property
	return []domain.ScreenMode{{ID: 0, Width: p.Width(), Height: p.Height(), RefreshRate: p.RefreshRate()}}
}

// ResizeVirtualScreen changes the size of the producer buffers
func (s *VirtualScreen) ResizeVirtualScreen(width, height uint32) {
	s.property.setResolution(width, height)
	s.notify()
}

// SetPowerStatus is accepted locally; there is no driver to consult
func (s *VirtualScreen) SetPowerStatus(status domain.PowerStatus) domain.StatusCode {
	s.property.s.powerStatus = status
	s.notify()
	return domain.StatusSuccess
}

func (s *VirtualScreen) GetPowerStatus() domain.PowerStatus {
	return s.property.PowerStatus()
}

// ProducerSurface returns the surface frames are rendered into
func (s *VirtualScreen) ProducerSurface() domain.ProducerSurface {
	return s.property.ProducerSurface()
}

// SetProducerSurface replaces the render target. A nil surface disables
// the screen.
func (s *VirtualScreen) SetProducerSurface(surface domain.ProducerSurface) {
	s.property.s.surface = surface
	if surface != nil {
		s.property.s.state = domain.ScreenStateProducerSurfaceEnable
	} else {
		s.property.s.state = domain.ScreenStateDisabled
	}
	s.property.pSurfaceChanged.Store(true)
	s.notify()
}

// SetVirtualScreenStatus pauses or resumes the screen
func (s *VirtualScreen) SetVirtualScreenStatus(status domain.VirtualScreenStatus) {
	s.property.s.virtualStatus = status
	s.notify()
	if status == domain.VirtualScreenPlay {
		s.property.virtualScreenPlay.Store(true)
	}
}

func (s *VirtualScreen) SetCanvasRotation(rotation bool) {
	s.property.s.canvasRotation = rotation
	s.notify()
}

func (s *VirtualScreen) SetAutoRotation(auto bool) {
	s.property.s.autoBufferRotation = auto
	s.notify()
}

func (s *VirtualScreen) SetScaleMode(mode domain.ScreenScaleMode) {
	s.property.s.scaleMode = mode
	s.notify()
}

// SetScreenColorGamut selects a gamut from the configured virtual list
func (s *VirtualScreen) SetScreenColorGamut(index int32) domain.StatusCode {
	gamuts := s.opts.VirtualColorGamuts
	if index < 0 || int(index) >= len(gamuts) {
		return domain.StatusInvalidArguments
	}
	s.colorGamutIdx = int(index)
	s.property.s.colorGamut = gamuts[index]
	s.notify()
	return domain.StatusSuccess
}

func (s *VirtualScreen) GetScreenColorGamut() (domain.ColorGamut, domain.StatusCode) {
	if len(s.opts.VirtualColorGamuts) == 0 {
		return domain.ColorGamutInvalid, domain.StatusHdiError
	}
	return s.opts.VirtualColorGamuts[s.colorGamutIdx], domain.StatusSuccess
}

func (s *VirtualScreen) GetScreenSupportedColorGamuts() ([]domain.ColorGamut, domain.StatusCode) {
	if len(s.opts.VirtualColorGamuts) == 0 {
		return nil, domain.StatusHdiError
	}
	return slices.Clone(s.opts.VirtualColorGamuts), domain.StatusSuccess
}

func (s *VirtualScreen) SetScreenGamutMap(gamutMap domain.GamutMap) domain.StatusCode {
	s.property.s.gamutMap = gamutMap
	s.notify()
	return domain.StatusSuccess
}

func (s *VirtualScreen) GetScreenGamutMap() (domain.GamutMap, domain.StatusCode) {
	return s.property.GamutMap(), domain.StatusSuccess
}

// SetScreenColorSpace selects the configured gamut matching colorSpace
func (s *VirtualScreen) SetScreenColorSpace(colorSpace domain.ColorSpaceType) domain.StatusCode {
	target, ok := domain.GamutForColorSpace(colorSpace)
	if !ok {
		return domain.StatusInvalidArguments
	}
	idx := gamutIndex(s.opts.VirtualColorGamuts, target)
	if idx < 0 {
		return domain.StatusInvalidArguments
	}
	return s.SetScreenColorGamut(int32(idx))
}

func (s *VirtualScreen) GetScreenColorSpace() (domain.ColorSpaceType, domain.StatusCode) {
	gamut, code := s.GetScreenColorGamut()
	return domain.ColorSpaceForGamut(gamut), code
}

func (s *VirtualScreen) GetScreenSupportedColorSpaces() ([]domain.ColorSpaceType, domain.StatusCode) {
	if len(s.opts.VirtualColorGamuts) == 0 {
		return nil, domain.StatusHdiError
	}
	return colorSpaces(s.opts.VirtualColorGamuts), domain.StatusSuccess
}

// SetScreenHDRFormat selects an HDR format from the configured virtual list
func (s *VirtualScreen) SetScreenHDRFormat(index int32) domain.StatusCode {
	formats := s.opts.VirtualHDRFormats
	if index < 0 || int(index) >= len(formats) {
		return domain.StatusInvalidArguments
	}
	s.hdrFormatIdx = int(index)
	s.property.s.hdrFormat = formats[index]
	s.notify()
	return domain.StatusSuccess
}

func (s *VirtualScreen) GetScreenHDRFormat() (domain.HDRFormat, domain.StatusCode) {
	if len(s.opts.VirtualHDRFormats) == 0 {
		return domain.HDRNotSupport, domain.StatusHdiError
	}
	return s.opts.VirtualHDRFormats[s.hdrFormatIdx], domain.StatusSuccess
}

func (s *VirtualScreen) GetScreenSupportedHDRFormats() ([]domain.HDRFormat, domain.StatusCode) {
	if len(s.opts.VirtualHDRFormats) == 0 {
		return nil, domain.StatusHdiError
	}
	return slices.Clone(s.opts.VirtualHDRFormats), domain.StatusSuccess
}

func (s *VirtualScreen) GetHDRCapability() domain.HDRCapability {
	hdr := domain.HDRCapability{MaxLum: maxLuminance}
	for _, f := range s.opts.VirtualHDRFormats {
		hdr.Formats = append(hdr.Formats, domain.DriverHDRFormatOf(f))
	}
	return hdr
}

// SetScreenConstraint has nothing to pace on a virtual screen
func (s *VirtualScreen) SetScreenConstraint(frameID, timestamp uint64, kind domain.ScreenConstraintType) domain.StatusCode {
	return domain.StatusSuccess
}
