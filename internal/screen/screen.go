package screen

import (
	"fmt"
	"io"
	"slices"

	"github.com/genricoloni/screend/internal/domain"
	"go.uber.org/zap"
)

// maxLuminance is reported for every screen until panels expose a real value
const maxLuminance = 1000

// Screen is the operation set shared by physical and virtual screens.
// Operations that only make sense for one variant live on that variant's type.
type Screen interface {
	ID() domain.ScreenID
	Name() string
	IsVirtual() bool

	// Property returns the live cached state; it must only be read
	Property() *Property
	Info() domain.ScreenInfo
	SetOnPropertyChangedCallback(fn func(*Property))
	SupportedModes() []domain.ScreenMode

	SetResolution(width, height uint32) domain.StatusCode
	SetPowerStatus(status domain.PowerStatus) domain.StatusCode
	GetPowerStatus() domain.PowerStatus

	SetScreenOffset(x, y int32)
	SetScreenCorrection(rotation domain.ScreenRotation)
	SetPixelFormat(format domain.PixelFormat) domain.StatusCode
	GetPixelFormat() domain.PixelFormat

	SetScreenColorGamut(index int32) domain.StatusCode
	GetScreenColorGamut() (domain.ColorGamut, domain.StatusCode)
	GetScreenSupportedColorGamuts() ([]domain.ColorGamut, domain.StatusCode)
	SetScreenGamutMap(gamutMap domain.GamutMap) domain.StatusCode
	GetScreenGamutMap() (domain.GamutMap, domain.StatusCode)
	SetScreenColorSpace(colorSpace domain.ColorSpaceType) domain.StatusCode
	GetScreenColorSpace() (domain.ColorSpaceType, domain.StatusCode)
	GetScreenSupportedColorSpaces() ([]domain.ColorSpaceType, domain.StatusCode)
	SetScreenHDRFormat(index int32) domain.StatusCode
	GetScreenHDRFormat() (domain.HDRFormat, domain.StatusCode)
	GetScreenSupportedHDRFormats() ([]domain.HDRFormat, domain.StatusCode)
	GetHDRCapability() domain.HDRCapability
	SetScreenConstraint(frameID, timestamp uint64, kind domain.ScreenConstraintType) domain.StatusCode

	SetBlackList(ids []domain.NodeID)
	AddBlackList(ids []domain.NodeID)
	RemoveBlackList(ids []domain.NodeID)
	SetTypeBlackList(types []uint8)
	SetWhiteList(ids []domain.NodeID)
	AddWhiteList(ids []domain.NodeID)
	RemoveWhiteList(ids []domain.NodeID)
	SetCastScreenEnableSkipWindow(enable bool)
	SetSecurityExemptionList(ids []domain.NodeID)
	SetSecurityMask(mask *domain.PixelMap) domain.StatusCode
	GetSecurityMask() *domain.PixelMap
	SetHasProtectedLayer(has bool)
	GetHasProtectedLayer() bool
	SetEnableVisibleRect(enable bool)
	SetMainScreenVisibleRect(rect domain.Rect)
	SetVisibleRectSupportRotation(support bool)

	SetScreenSkipFrameInterval(interval uint32)
	SetScreenExpectedRefreshRate(rate uint32)

	RecordPresentTime(timestamp int64)
	DisplayDump(w io.Writer, index int)
	SurfaceDump(w io.Writer)
	ScreenTypeDump(w io.Writer)
	FpsDump(w io.Writer, index int)
	ClearFpsDump(w io.Writer, index int)
}

var (
	_ Screen = (*PhysicalScreen)(nil)
	_ Screen = (*VirtualScreen)(nil)
)

// base holds what both variants share: the cached property, the change
// hook and the diagnostic counters.
type base struct {
	logger           *zap.Logger
	opts             domain.ScreenOptions
	property         *Property
	onPropertyChange func(*Property)
	fps              *fpsRecorder

	// hasProtectedLayer is a composition hint and is not part of the snapshot
	hasProtectedLayer bool
}

func newBase(logger *zap.Logger, opts domain.ScreenOptions, id domain.ScreenID, isVirtual bool) base {
	return base{
		logger:   logger.With(zap.Uint64("screenID", uint64(id))),
		opts:     opts,
		property: newProperty(id, isVirtual),
		fps:      newFpsRecorder(),
	}
}

// notify hands a clone of the property to the registered callback
func (b *base) notify() {
	if b.onPropertyChange != nil {
		b.onPropertyChange(b.property.Clone())
	}
}

func (b *base) ID() domain.ScreenID { return b.property.ID() }
func (b *base) Name() string        { return b.property.Name() }
func (b *base) IsVirtual() bool     { return b.property.IsVirtual() }
func (b *base) Property() *Property { return b.property }

// Info returns a snapshot of the cached state
func (b *base) Info() domain.ScreenInfo {
	return b.property.Info()
}

// SetOnPropertyChangedCallback registers fn to be called synchronously after
// every change with a clone of the property. fn must not block.
func (b *base) SetOnPropertyChangedCallback(fn func(*Property)) {
	b.onPropertyChange = fn
}

func (b *base) SetScreenOffset(x, y int32) {
	b.logger.Info("Screen offset changed", zap.Int32("x", x), zap.Int32("y", y))
	b.property.s.offsetX = x
	b.property.s.offsetY = y
	b.notify()
}

func (b *base) SetScreenCorrection(rotation domain.ScreenRotation) {
	b.logger.Info("Screen correction changed", zap.Uint32("rotation", uint32(rotation)))
	b.property.s.rotation = rotation
	b.notify()
}

func (b *base) SetPixelFormat(format domain.PixelFormat) domain.StatusCode {
	b.property.s.pixelFormat = format
	b.notify()
	return domain.StatusSuccess
}

func (b *base) GetPixelFormat() domain.PixelFormat {
	return b.property.PixelFormat()
}

// SetBlackList replaces the set of nodes this screen must not show
func (b *base) SetBlackList(ids []domain.NodeID) {
	b.property.setBlackList(ids)
	b.notify()
}

// AddBlackList adds nodes to the black list
func (b *base) AddBlackList(ids []domain.NodeID) {
	b.property.addBlackList(ids)
	b.notify()
}

// RemoveBlackList removes nodes from the black list
func (b *base) RemoveBlackList(ids []domain.NodeID) {
	b.property.removeBlackList(ids)
	b.notify()
}

// SetTypeBlackList replaces the set of node types this screen must not show
func (b *base) SetTypeBlackList(types []uint8) {
	b.property.setTypeBlackList(types)
	b.notify()
}

// SetWhiteList replaces the set of nodes this screen is restricted to
func (b *base) SetWhiteList(ids []domain.NodeID) {
	b.property.setWhiteList(ids)
	b.notify()
}

func (b *base) AddWhiteList(ids []domain.NodeID) {
	b.property.addWhiteList(ids)
	b.notify()
}

func (b *base) RemoveWhiteList(ids []domain.NodeID) {
	b.property.removeWhiteList(ids)
	b.notify()
}

func (b *base) SetCastScreenEnableSkipWindow(enable bool) {
	b.property.s.castScreenEnableSkipWindow = enable
	b.notify()
}

func (b *base) SetSecurityExemptionList(ids []domain.NodeID) {
	b.property.s.securityExemptionList = slices.Clone(ids)
	b.notify()
}

// SetSecurityMask attaches the image drawn over content hidden from this screen
func (b *base) SetSecurityMask(mask *domain.PixelMap) domain.StatusCode {
	b.property.s.securityMask = mask
	b.notify()
	return domain.StatusSuccess
}

func (b *base) GetSecurityMask() *domain.PixelMap {
	return b.property.SecurityMask()
}

func (b *base) SetHasProtectedLayer(has bool) {
	b.hasProtectedLayer = has
}

func (b *base) GetHasProtectedLayer() bool {
	return b.hasProtectedLayer
}

func (b *base) SetEnableVisibleRect(enable bool) {
	b.property.s.enableVisibleRect = enable
	b.notify()
}

func (b *base) SetMainScreenVisibleRect(rect domain.Rect) {
	b.property.s.mainScreenVisibleRect = rect
	b.notify()
}

func (b *base) SetVisibleRectSupportRotation(support bool) {
	b.property.s.visibleRectSupportRotation = support
	b.notify()
}

// SetScreenSkipFrameInterval throttles the screen to every n-th frame
func (b *base) SetScreenSkipFrameInterval(interval uint32) {
	b.property.s.skipFrameInterval = interval
	b.property.s.skipFrameStrategy = domain.SkipFrameByInterval
	b.notify()
}

// SetScreenExpectedRefreshRate throttles the screen to a target refresh rate
func (b *base) SetScreenExpectedRefreshRate(rate uint32) {
	b.property.s.expectedRefreshRate = rate
	b.property.s.skipFrameStrategy = domain.SkipFrameByRefreshRate
	b.notify()
}

// RecordPresentTime stores the presentation timestamp (ns) of a frame
func (b *base) RecordPresentTime(timestamp int64) {
	b.fps.record(timestamp)
}

func (b *base) FpsDump(w io.Writer, index int) {
	fmt.Fprintf(w, "\n-- The recently fps records info of screens:\n")
	fmt.Fprintf(w, "The fps of screen [%s] (index %d) is:\n", b.property.Name(), index)
	b.fps.dump(w)
}

func (b *base) ClearFpsDump(w io.Writer, index int) {
	b.fps.clear()
	fmt.Fprintf(w, "The fps info of screen [%s] (index %d) is cleared.\n", b.property.Name(), index)
}

func (b *base) ScreenTypeDump(w io.Writer) {
	fmt.Fprintf(w, "screenType=%s", b.property.ScreenType())
}

// gamutIndex returns the position of target in gamuts or -1
func gamutIndex(gamuts []domain.ColorGamut, target domain.ColorGamut) int {
	return slices.Index(gamuts, target)
}

// colorSpaces converts a gamut list for consumers that speak color spaces
func colorSpaces(gamuts []domain.ColorGamut) []domain.ColorSpaceType {
	out := make([]domain.ColorSpaceType, 0, len(gamuts))
	for _, g := range gamuts {
		out = append(out, domain.ColorSpaceForGamut(g))
	}
	return out
}

func idString(id domain.ScreenID) string {
	if id == domain.InvalidScreenID {
		return "INVALID_SCREEN_ID"
	}
	return fmt.Sprintf("%d", uint64(id))
}
