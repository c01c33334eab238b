package screen

import (
	"errors"
	"fmt"
	"slices"

	"github.com/genricoloni/screend/internal/domain"
	"go.uber.org/zap"
)

// PhysicalScreen is a screen backed by a driver handle
type PhysicalScreen struct {
	base

	output domain.HdiOutput
	device domain.HdiDevice

	capability     domain.Capability
	supportedModes []domain.ScreenMode

	hdrCapability domain.HDRCapability
	hdrFormats    []domain.HDRFormat
	hdrFormatIdx  int

	colorGamuts   []domain.ColorGamut
	colorGamutIdx int

	backlight       int32
	backlightLogged bool

	isRogResolution bool
	linearMatrix    []float32
}

// NewPhysicalScreen builds a screen for output and probes the driver.
// A nil output, or one whose device cannot be opened, yields a screen
// without a driver handle whose driver operations return StatusHdiError.
func NewPhysicalScreen(logger *zap.Logger, opts domain.ScreenOptions, output domain.HdiOutput) *PhysicalScreen {
	id := domain.InvalidScreenID
	if output != nil {
		id = output.ScreenID()
	}

	s := &PhysicalScreen{
		base:      newBase(logger, opts, id, false),
		output:    output,
		backlight: domain.InvalidBacklight,
	}
	s.property.s.name = fmt.Sprintf("Screen_%d", uint64(id))
	if output != nil {
		s.property.s.state = domain.ScreenStateHdiOutputEnable
	}

	s.init()

	s.logger.Info("Physical screen initialized",
		zap.Uint32("width", s.property.Width()),
		zap.Uint32("height", s.property.Height()),
		zap.Stringer("screenType", s.property.ScreenType()))
	return s
}

// init probes the driver. Each step logs and continues on failure so a
// partially working panel still yields a usable screen.
func (s *PhysicalScreen) init() {
	if s.output == nil {
		return
	}
	device, err := s.output.CreateDevice()
	if err != nil {
		s.logger.Error("Failed to create HDI device", zap.Error(err))
		return
	}
	s.device = device
	id := s.property.ID()

	if modes, err := device.GetScreenSupportedModes(); err != nil {
		s.logger.Error("Failed to get supported modes", zap.Error(err))
	} else {
		s.supportedModes = modes
		for i, m := range modes {
			s.logger.Debug("Supported mode",
				zap.Int("index", i),
				zap.Uint32("width", m.Width),
				zap.Uint32("height", m.Height),
				zap.Uint32("refreshRate", m.RefreshRate),
				zap.Int32("modeID", m.ID))
		}
	}

	if hdr, err := device.GetHDRCapabilityInfos(); err != nil {
		s.logger.Error("Failed to get HDR capability", zap.Error(err))
	} else {
		s.setHDRCapability(hdr)
	}

	if s.opts.PowerOnAtInit || id == 0 {
		if err := device.SetScreenPowerStatus(domain.PowerStatusOn); err != nil {
			s.logger.Error("Failed to power on screen at init", zap.Error(err))
		} else {
			s.logger.Info("Screen powered on at init")
		}
	}

	if mode, ok := s.GetActiveMode(); ok {
		s.property.s.width = mode.Width
		s.property.s.height = mode.Height
		s.property.setPhysicalResolution(mode.Width, mode.Height)
		s.property.s.refreshRate = mode.RefreshRate
		s.logger.Info("Active mode",
			zap.Int32("modeID", mode.ID),
			zap.Uint32("width", mode.Width),
			zap.Uint32("height", mode.Height),
			zap.Uint32("refreshRate", mode.RefreshRate))
	}

	if status, err := device.GetScreenPowerStatus(); err != nil {
		s.logger.Error("Failed to get power status", zap.Error(err))
		s.property.s.powerStatus = domain.PowerStatusInvalid
	} else {
		s.property.s.powerStatus = status
	}

	s.initCapability()
	switch s.capability.Type {
	case domain.InterfaceMIPI, domain.InterfaceLCD:
		s.property.s.screenType = domain.ScreenTypeBuiltIn
	default:
		s.property.s.screenType = domain.ScreenTypeExternal
	}

	if conn, err := device.GetScreenConnectionType(); err != nil {
		s.logger.Info("Failed to get connection type", zap.Error(err))
		s.property.s.connectionType = domain.ConnectionInvalid
	} else {
		s.property.s.connectionType = conn
	}

	if gamuts, err := device.GetScreenSupportedColorGamuts(); err != nil {
		s.logger.Error("Failed to get supported color gamuts", zap.Error(err))
	} else {
		s.colorGamuts = gamuts
		if idx := slices.Index(gamuts, domain.ColorGamutSRGB); idx >= 0 {
			s.colorGamutIdx = idx
		}
		if len(gamuts) > 0 {
			s.property.s.colorGamut = gamuts[s.colorGamutIdx]
		}
	}
	s.property.s.supportedColorGamuts = slices.Clone(s.colorGamuts)

	s.backlight = s.GetScreenBacklight()

	if s.property.ConnectionType() == domain.ConnectionExternal {
		s.property.s.skipFrameStrategy = domain.SkipFrameByActiveRefreshRate
	}
}

// initCapability reads the static capability, falling back to a default
// HDMI description when the driver cannot provide one
func (s *PhysicalScreen) initCapability() {
	capability, err := s.device.GetScreenCapability()
	if err == nil {
		s.capability = capability
		return
	}
	s.logger.Error("Failed to get capability, using default", zap.Error(err))
	s.capability = domain.Capability{
		Name:             s.property.Name(),
		Type:             domain.InterfaceHDMI,
		PhyWidth:         s.property.PhyWidth(),
		PhyHeight:        s.property.PhyHeight(),
		SupportWriteBack: true,
	}
}

func (s *PhysicalScreen) setHDRCapability(hdr domain.HDRCapability) {
	s.hdrCapability = hdr
	s.hdrFormats = make([]domain.HDRFormat, 0, len(hdr.Formats))
	for _, f := range hdr.Formats {
		s.hdrFormats = append(s.hdrFormats, domain.HDRFormatFromDriver(f))
	}
	if s.hdrFormatIdx >= len(s.hdrFormats) {
		s.hdrFormatIdx = 0
	}
}

// Output returns the backend output the screen was built from
func (s *PhysicalScreen) Output() domain.HdiOutput {
	return s.output
}

// Capability returns the capability probed at construction
func (s *PhysicalScreen) Capability() domain.Capability {
	c := s.capability
	c.Props = slices.Clone(s.capability.Props)
	return c
}

// SupportedModes returns a copy of the modes reported by the driver
func (s *PhysicalScreen) SupportedModes() []domain.ScreenMode {
	return slices.Clone(s.supportedModes)
}

// GetActiveModePosByModeID returns the position of the mode with the given
// driver id in SupportedModes, or -1
func (s *PhysicalScreen) GetActiveModePosByModeID(modeID int32) int {
	for i, m := range s.supportedModes {
		if m.ID == modeID {
			return i
		}
	}
	return -1
}

// GetActiveMode asks the driver for the active mode and resolves it
// against the supported modes
func (s *PhysicalScreen) GetActiveMode() (domain.ScreenMode, bool) {
	if s.device == nil {
		return domain.ScreenMode{}, false
	}
	modeID, err := s.device.GetScreenMode()
	if err != nil {
		s.logger.Error("Failed to get screen mode", zap.Error(err))
		return domain.ScreenMode{}, false
	}
	for _, m := range s.supportedModes {
		if uint32(m.ID) == modeID {
			return m, true
		}
	}
	return domain.ScreenMode{}, false
}

// ActiveRefreshRate returns the refresh rate of the last confirmed mode
func (s *PhysicalScreen) ActiveRefreshRate() uint32 {
	return s.property.RefreshRate()
}

// SetActiveMode switches to SupportedModes()[index]. The cache only moves
// to the new geometry once the driver accepted the switch and reports a
// known mode back.
func (s *PhysicalScreen) SetActiveMode(index uint32) domain.StatusCode {
	if s.device == nil {
		s.logger.Error("SetActiveMode failed: no HDI device")
		return domain.StatusHdiError
	}
	if int(index) >= len(s.supportedModes) {
		s.logger.Warn("SetActiveMode: index out of bounds",
			zap.Uint32("index", index),
			zap.Int("modes", len(s.supportedModes)))
		return domain.StatusInvalidArguments
	}

	target := s.supportedModes[index]
	s.logger.Debug("Setting active mode",
		zap.Uint32("index", index),
		zap.Int32("modeID", target.ID),
		zap.Uint32("width", target.Width),
		zap.Uint32("height", target.Height),
		zap.Uint32("refreshRate", target.RefreshRate))

	if err := s.device.SetScreenMode(uint32(target.ID)); err != nil {
		if errors.Is(err, domain.ErrHdiNotSupported) {
			s.logger.Warn("SetActiveMode: mode not supported by driver", zap.Error(err))
			return domain.StatusHdiErrNotSupport
		}
		s.logger.Error("SetActiveMode: driver rejected mode", zap.Error(err))
		return domain.StatusHdiError
	}

	active, ok := s.GetActiveMode()
	if !ok {
		s.logger.Warn("SetActiveMode: driver reported an unknown active mode, keeping cached geometry")
		return domain.StatusSuccess
	}
	s.property.setPhysicalResolution(active.Width, active.Height)
	s.property.s.refreshRate = active.RefreshRate
	s.logger.Info("Active mode changed",
		zap.Int32("modeID", active.ID),
		zap.Uint32("width", active.Width),
		zap.Uint32("height", active.Height),
		zap.Uint32("refreshRate", active.RefreshRate))
	s.notify()
	return domain.StatusSuccess
}

// SetResolution sets the logical frame size. Frames larger than the panel
// are sampled down to it; frames smaller than the panel are rejected.
func (s *PhysicalScreen) SetResolution(width, height uint32) domain.StatusCode {
	phyWidth, phyHeight := s.property.PhyWidth(), s.property.PhyHeight()
	s.logger.Info("SetResolution",
		zap.Uint32("width", width),
		zap.Uint32("height", height),
		zap.Uint32("phyWidth", phyWidth),
		zap.Uint32("phyHeight", phyHeight))

	if phyWidth == 0 || phyHeight == 0 || width == 0 || height == 0 ||
		width < phyWidth || height < phyHeight {
		s.logger.Warn("SetResolution: resolution not achievable on this panel")
		return domain.StatusInvalidArguments
	}

	s.property.setResolution(width, height)
	if s.property.IsSamplingOn() {
		s.logger.Info("Sampling enabled",
			zap.Float32("scale", s.property.SamplingScale()),
			zap.Float32("translateX", s.property.SamplingTranslateX()),
			zap.Float32("translateY", s.property.SamplingTranslateY()))
	}
	s.notify()
	return domain.StatusSuccess
}

// SetRogResolution sets the resolution of the overlay plane. The driver is
// only involved when the overlay is smaller than the panel in both axes.
func (s *PhysicalScreen) SetRogResolution(width, height uint32) domain.StatusCode {
	if s.device == nil {
		s.logger.Error("SetRogResolution failed: no HDI device")
		return domain.StatusHdiError
	}
	if width == 0 || height == 0 {
		return domain.StatusInvalidArguments
	}
	if width == s.property.Width() && height == s.property.Height() {
		return domain.StatusSuccess
	}

	if width < s.property.PhyWidth() && height < s.property.PhyHeight() {
		if err := s.device.SetScreenOverlayResolution(width, height); err != nil {
			s.logger.Error("SetRogResolution: driver rejected overlay resolution", zap.Error(err))
			return domain.StatusHdiError
		}
	}

	s.isRogResolution = true
	s.property.setResolution(width, height)
	s.logger.Info("Rog resolution changed",
		zap.Uint32("width", width),
		zap.Uint32("height", height))
	s.notify()
	return domain.StatusSuccess
}

// GetRogResolution returns the overlay resolution, StatusInvalidArguments
// if none was ever set
func (s *PhysicalScreen) GetRogResolution() (uint32, uint32, domain.StatusCode) {
	if !s.isRogResolution {
		return 0, 0, domain.StatusInvalidArguments
	}
	return s.property.Width(), s.property.Height(), domain.StatusSuccess
}

// SetPowerStatus forwards status to the driver. The cache only changes
// when the driver accepted it; the value itself is not range checked.
func (s *PhysicalScreen) SetPowerStatus(status domain.PowerStatus) domain.StatusCode {
	if s.device == nil {
		s.logger.Error("SetPowerStatus failed: no HDI device")
		return domain.StatusHdiError
	}
	s.logger.Info("SetPowerStatus", zap.Stringer("status", status))
	s.backlightLogged = false

	if err := s.device.SetScreenPowerStatus(status); err != nil {
		s.logger.Warn("SetPowerStatus: driver rejected power status",
			zap.Stringer("status", status),
			zap.Error(err))
		return domain.StatusHdiError
	}

	s.property.s.powerStatus = status
	s.notify()
	s.logger.Info("SetPowerStatus done", zap.Stringer("status", status))
	return domain.StatusSuccess
}

// GetPowerStatus returns the cached status, asking the driver when the
// cache holds no valid value
func (s *PhysicalScreen) GetPowerStatus() domain.PowerStatus {
	if s.device == nil {
		return domain.PowerStatusInvalid
	}
	if cur := s.property.PowerStatus(); cur != domain.PowerStatusInvalid {
		return cur
	}
	status, err := s.device.GetScreenPowerStatus()
	if err != nil {
		s.logger.Error("Failed to get power status", zap.Error(err))
		return domain.PowerStatusInvalid
	}
	s.property.s.powerStatus = status
	s.notify()
	s.logger.Warn("Cached power status was invalid, refreshed from driver", zap.Stringer("status", status))
	return status
}

// GetPanelPowerStatus mirrors the panel power reported by the driver
func (s *PhysicalScreen) GetPanelPowerStatus() domain.PanelPowerStatus {
	if s.device == nil {
		return domain.PanelPowerInvalid
	}
	status, err := s.device.GetPanelPowerStatus()
	if err != nil || status >= domain.PanelPowerInvalid {
		s.logger.Error("Failed to get panel power status", zap.Error(err))
		return domain.PanelPowerInvalid
	}
	return status
}

// SetScreenBacklight forwards the level to the driver. Only the first
// update after a power change is logged at Info.
func (s *PhysicalScreen) SetScreenBacklight(level uint32) domain.StatusCode {
	if s.device == nil {
		s.logger.Error("SetScreenBacklight failed: no HDI device")
		return domain.StatusHdiError
	}
	if !s.backlightLogged {
		s.logger.Info("SetScreenBacklight",
			zap.Uint32("level", level),
			zap.Int32("current", s.backlight))
	}
	s.logger.Debug("SetScreenBacklight", zap.Uint32("level", level))

	if err := s.device.SetScreenBacklight(level); err != nil {
		s.logger.Error("SetScreenBacklight: driver rejected level", zap.Error(err))
		return domain.StatusHdiError
	}
	if !s.backlightLogged {
		s.logger.Info("SetScreenBacklight done",
			zap.Uint32("level", level),
			zap.Int32("last", s.backlight))
		s.backlightLogged = true
	}
	s.backlight = int32(level)
	return domain.StatusSuccess
}

// GetScreenBacklight returns the cached level or asks the driver when none
// is cached. domain.InvalidBacklight means unknown.
func (s *PhysicalScreen) GetScreenBacklight() int32 {
	if s.backlight != domain.InvalidBacklight {
		return s.backlight
	}
	if s.device == nil {
		return domain.InvalidBacklight
	}
	level, err := s.device.GetScreenBacklight()
	if err != nil {
		s.logger.Error("Failed to get backlight", zap.Error(err))
		return domain.InvalidBacklight
	}
	return int32(level)
}

// SetScreenActiveRect restricts scan-out to rect. The part of the screen
// outside it becomes the mask rect.
func (s *PhysicalScreen) SetScreenActiveRect(rect domain.Rect) domain.StatusCode {
	if s.device == nil {
		s.logger.Error("SetScreenActiveRect failed: no HDI device")
		return domain.StatusHdiError
	}
	width, height := int64(s.property.Width()), int64(s.property.Height())
	if rect.X < 0 || rect.Y < 0 || rect.W <= 0 || rect.H <= 0 ||
		int64(rect.X)+int64(rect.W) > width || int64(rect.Y)+int64(rect.H) > height {
		s.logger.Warn("SetScreenActiveRect: rect outside screen", zap.Stringer("rect", rect))
		return domain.StatusInvalidArguments
	}

	mask := maskRect(rect, int32(width), int32(height))
	revise := rect
	if s.opts.ReviseActiveRect {
		revise = rect.Union(mask)
	}

	if err := s.device.SetScreenActiveRect(revise); err != nil {
		s.logger.Error("SetScreenActiveRect: driver rejected rect",
			zap.Stringer("rect", revise),
			zap.Error(err))
		return domain.StatusHdiError
	}

	s.property.s.activeRect = rect
	s.property.s.maskRect = mask
	s.property.s.reviseRect = revise
	s.logger.Info("Active rect changed",
		zap.Stringer("activeRect", rect),
		zap.Stringer("maskRect", mask),
		zap.Stringer("reviseRect", revise))
	s.notify()
	return domain.StatusSuccess
}

// maskRect returns the largest strip of the screen outside active,
// preferring below, above, right then left on ties
func maskRect(active domain.Rect, width, height int32) domain.Rect {
	candidates := []domain.Rect{
		{X: 0, Y: active.Y + active.H, W: width, H: height - active.Y - active.H},
		{X: 0, Y: 0, W: width, H: active.Y},
		{X: active.X + active.W, Y: 0, W: width - active.X - active.W, H: height},
		{X: 0, Y: 0, W: active.X, H: height},
	}
	var best domain.Rect
	var bestArea int64
	for _, c := range candidates {
		if c.IsEmpty() {
			continue
		}
		if area := int64(c.W) * int64(c.H); area > bestArea {
			best, bestArea = c, area
		}
	}
	return best
}

// SetScreenLinearMatrix applies a 3x3 color matrix. An unchanged matrix is
// not sent again.
func (s *PhysicalScreen) SetScreenLinearMatrix(matrix []float32) domain.StatusCode {
	if s.device == nil {
		s.logger.Error("SetScreenLinearMatrix failed: no HDI device")
		return domain.StatusHdiError
	}
	if len(matrix) != domain.LinearMatrixSize {
		s.logger.Warn("SetScreenLinearMatrix: wrong matrix size", zap.Int("size", len(matrix)))
		return domain.StatusInvalidArguments
	}
	if slices.Equal(s.linearMatrix, matrix) {
		return domain.StatusSuccess
	}
	if err := s.device.SetScreenLinearMatrix(matrix); err != nil {
		s.logger.Error("SetScreenLinearMatrix: driver rejected matrix", zap.Error(err))
		return domain.StatusHdiError
	}
	s.linearMatrix = slices.Clone(matrix)
	return domain.StatusSuccess
}

// LinearMatrix returns the last matrix the driver accepted
func (s *PhysicalScreen) LinearMatrix() []float32 {
	return slices.Clone(s.linearMatrix)
}

// SetDualScreenState forwards the dual screen state as a display property
func (s *PhysicalScreen) SetDualScreenState(status domain.DualScreenStatus) domain.StatusCode {
	if s.device == nil {
		s.logger.Error("SetDualScreenState failed: no HDI device")
		return domain.StatusHdiError
	}
	if err := s.device.SetDisplayProperty(uint64(status)); err != nil {
		s.logger.Error("SetDualScreenState: driver rejected state", zap.Error(err))
		return domain.StatusHdiError
	}
	return domain.StatusSuccess
}

// GetDisplayIdentificationData returns the port and EDID blob of the panel
func (s *PhysicalScreen) GetDisplayIdentificationData() (uint8, []byte, domain.StatusCode) {
	if s.device == nil {
		s.logger.Error("GetDisplayIdentificationData failed: no HDI device")
		return 0, nil, domain.StatusHdiError
	}
	port, edid, err := s.device.GetDisplayIdentificationData()
	if err != nil {
		s.logger.Error("Failed to get display identification data", zap.Error(err))
		return 0, nil, domain.StatusHdiError
	}
	s.logger.Debug("Display identification data", zap.Int("edidSize", len(edid)))
	return port, edid, domain.StatusSuccess
}

// SetScreenConstraint paces the presentation of a frame
func (s *PhysicalScreen) SetScreenConstraint(frameID, timestamp uint64, kind domain.ScreenConstraintType) domain.StatusCode {
	if s.device == nil {
		return domain.StatusHdiError
	}
	if err := s.device.SetScreenConstraint(frameID, timestamp, kind); err != nil {
		return domain.StatusHdiError
	}
	return domain.StatusSuccess
}

// SetScreenColorGamut selects a gamut by its index in the list the driver
// currently reports
func (s *PhysicalScreen) SetScreenColorGamut(index int32) domain.StatusCode {
	if index < 0 {
		return domain.StatusInvalidArguments
	}
	if s.device == nil {
		s.logger.Error("SetScreenColorGamut failed: no HDI device")
		return domain.StatusHdiError
	}
	gamuts, err := s.device.GetScreenSupportedColorGamuts()
	if err != nil {
		s.logger.Error("Failed to get supported color gamuts", zap.Error(err))
		return domain.StatusHdiError
	}
	if int(index) >= len(gamuts) {
		return domain.StatusInvalidArguments
	}
	return s.applyColorGamut(gamuts, int(index))
}

func (s *PhysicalScreen) applyColorGamut(gamuts []domain.ColorGamut, index int) domain.StatusCode {
	if err := s.device.SetScreenColorGamut(gamuts[index]); err != nil {
		s.logger.Error("SetScreenColorGamut: driver rejected gamut",
			zap.Stringer("gamut", gamuts[index]),
			zap.Error(err))
		return domain.StatusHdiError
	}
	s.colorGamuts = gamuts
	s.colorGamutIdx = index
	s.property.s.colorGamut = gamuts[index]
	s.property.s.supportedColorGamuts = slices.Clone(gamuts)
	s.notify()
	return domain.StatusSuccess
}

func (s *PhysicalScreen) GetScreenColorGamut() (domain.ColorGamut, domain.StatusCode) {
	if len(s.colorGamuts) == 0 {
		return domain.ColorGamutInvalid, domain.StatusHdiError
	}
	return s.colorGamuts[s.colorGamutIdx], domain.StatusSuccess
}

func (s *PhysicalScreen) GetScreenSupportedColorGamuts() ([]domain.ColorGamut, domain.StatusCode) {
	if len(s.colorGamuts) == 0 {
		return nil, domain.StatusHdiError
	}
	return slices.Clone(s.colorGamuts), domain.StatusSuccess
}

func (s *PhysicalScreen) SetScreenGamutMap(gamutMap domain.GamutMap) domain.StatusCode {
	if s.device == nil {
		return domain.StatusHdiError
	}
	if err := s.device.SetScreenGamutMap(gamutMap); err != nil {
		s.logger.Error("SetScreenGamutMap: driver rejected gamut map", zap.Error(err))
		return domain.StatusHdiError
	}
	s.property.s.gamutMap = gamutMap
	s.notify()
	return domain.StatusSuccess
}

func (s *PhysicalScreen) GetScreenGamutMap() (domain.GamutMap, domain.StatusCode) {
	if s.device == nil {
		return 0, domain.StatusHdiError
	}
	gamutMap, err := s.device.GetScreenGamutMap()
	if err != nil {
		return 0, domain.StatusHdiError
	}
	return gamutMap, domain.StatusSuccess
}

// SetScreenColorSpace selects the gamut matching colorSpace among those the
// driver reports
func (s *PhysicalScreen) SetScreenColorSpace(colorSpace domain.ColorSpaceType) domain.StatusCode {
	target, ok := domain.GamutForColorSpace(colorSpace)
	if !ok {
		return domain.StatusInvalidArguments
	}
	if s.device == nil {
		s.logger.Error("SetScreenColorSpace failed: no HDI device")
		return domain.StatusHdiError
	}
	gamuts, err := s.device.GetScreenSupportedColorGamuts()
	if err != nil {
		s.logger.Error("Failed to get supported color gamuts", zap.Error(err))
		return domain.StatusHdiError
	}
	idx := gamutIndex(gamuts, target)
	if idx < 0 {
		return domain.StatusInvalidArguments
	}
	return s.applyColorGamut(gamuts, idx)
}

func (s *PhysicalScreen) GetScreenColorSpace() (domain.ColorSpaceType, domain.StatusCode) {
	gamut, code := s.GetScreenColorGamut()
	return domain.ColorSpaceForGamut(gamut), code
}

func (s *PhysicalScreen) GetScreenSupportedColorSpaces() ([]domain.ColorSpaceType, domain.StatusCode) {
	if len(s.colorGamuts) == 0 {
		return nil, domain.StatusHdiError
	}
	return colorSpaces(s.colorGamuts), domain.StatusSuccess
}

// SetScreenHDRFormat selects an HDR format by its index in the list the
// driver currently reports
func (s *PhysicalScreen) SetScreenHDRFormat(index int32) domain.StatusCode {
	if index < 0 {
		return domain.StatusInvalidArguments
	}
	if s.device == nil {
		s.logger.Error("SetScreenHDRFormat failed: no HDI device")
		return domain.StatusHdiError
	}
	hdr, err := s.device.GetHDRCapabilityInfos()
	if err != nil {
		s.logger.Error("Failed to get HDR capability", zap.Error(err))
		return domain.StatusHdiError
	}
	if int(index) >= len(hdr.Formats) {
		return domain.StatusInvalidArguments
	}
	s.setHDRCapability(hdr)
	s.hdrFormatIdx = int(index)
	s.property.s.hdrFormat = s.hdrFormats[index]
	s.notify()
	return domain.StatusSuccess
}

func (s *PhysicalScreen) GetScreenHDRFormat() (domain.HDRFormat, domain.StatusCode) {
	if len(s.hdrFormats) == 0 {
		return domain.HDRNotSupport, domain.StatusHdiError
	}
	return s.hdrFormats[s.hdrFormatIdx], domain.StatusSuccess
}

func (s *PhysicalScreen) GetScreenSupportedHDRFormats() ([]domain.HDRFormat, domain.StatusCode) {
	if len(s.hdrFormats) == 0 {
		return nil, domain.StatusHdiError
	}
	return slices.Clone(s.hdrFormats), domain.StatusSuccess
}

func (s *PhysicalScreen) GetHDRCapability() domain.HDRCapability {
	hdr := s.hdrCapability
	hdr.Formats = slices.Clone(s.hdrCapability.Formats)
	hdr.MaxLum = maxLuminance
	return hdr
}

// GetScreenSupportedMetaDataKeys lists the static HDR metadata keys
func (s *PhysicalScreen) GetScreenSupportedMetaDataKeys() ([]domain.HDRMetadataKey, domain.StatusCode) {
	keys := make([]domain.HDRMetadataKey, 0, domain.MetadataHDRVivid+1)
	for k := domain.MetadataRedPrimaryX; k <= domain.MetadataHDRVivid; k++ {
		keys = append(keys, k)
	}
	return keys, domain.StatusSuccess
}
