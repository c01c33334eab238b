package screen

import (
	"maps"
	"slices"
	"sync/atomic"

	"github.com/genricoloni/screend/internal/domain"
)

// propertyState is the plain, copyable part of a Property
type propertyState struct {
	id        domain.ScreenID
	isVirtual bool
	name      string

	width     uint32
	height    uint32
	phyWidth  uint32
	phyHeight uint32
	offsetX   int32
	offsetY   int32

	isSamplingOn       bool
	samplingScale      float32
	samplingTranslateX float32
	samplingTranslateY float32

	refreshRate uint32
	activeRect  domain.Rect
	maskRect    domain.Rect
	reviseRect  domain.Rect

	powerStatus    domain.PowerStatus
	state          domain.ScreenState
	screenType     domain.ScreenType
	connectionType domain.ConnectionType

	pixelFormat          domain.PixelFormat
	colorGamut           domain.ColorGamut
	gamutMap             domain.GamutMap
	hdrFormat            domain.HDRFormat
	supportedColorGamuts []domain.ColorGamut
	rotation             domain.ScreenRotation

	blackList                  map[domain.NodeID]struct{}
	whiteList                  map[domain.NodeID]struct{}
	typeBlackList              map[uint8]struct{}
	securityExemptionList      []domain.NodeID
	castScreenEnableSkipWindow bool
	securityMask               *domain.PixelMap
	enableVisibleRect          bool
	mainScreenVisibleRect      domain.Rect
	visibleRectSupportRotation bool

	skipFrameStrategy   domain.SkipFrameStrategy
	skipFrameInterval   uint32
	expectedRefreshRate uint32

	surface              domain.ProducerSurface
	virtualSecLayerFlags int32
	virtualStatus        domain.VirtualScreenStatus
	canvasRotation       bool
	autoBufferRotation   bool
	scaleMode            domain.ScreenScaleMode
}

// Property is the cached state of one screen. It is mutated only by the
// owning screen; consumers receive clones through the change callback.
type Property struct {
	s propertyState

	whiteListChanged  atomic.Bool
	blackListChanged  atomic.Bool
	pSurfaceChanged   atomic.Bool
	virtualScreenPlay atomic.Bool
}

func newProperty(id domain.ScreenID, isVirtual bool) *Property {
	return &Property{s: propertyState{
		id:                id,
		isVirtual:         isVirtual,
		samplingScale:     1,
		powerStatus:       domain.PowerStatusInvalid,
		state:             domain.ScreenStateDisabled,
		screenType:        domain.ScreenTypeUnknown,
		connectionType:    domain.ConnectionInvalid,
		pixelFormat:       domain.PixelFormatRGBA8888,
		colorGamut:        domain.ColorGamutSRGB,
		hdrFormat:         domain.HDRNotSupport,
		rotation:          domain.Rotation0,
		skipFrameInterval: 1,
		blackList:         make(map[domain.NodeID]struct{}),
		whiteList:         make(map[domain.NodeID]struct{}),
		typeBlackList:     make(map[uint8]struct{}),
		virtualStatus:     domain.VirtualScreenInvalid,
		skipFrameStrategy: domain.SkipFrameByInterval,
	}}
}

// Clone returns a deep copy of the cached state. Dirty flags are not copied.
func (p *Property) Clone() *Property {
	c := &Property{s: p.s}
	c.s.blackList = maps.Clone(p.s.blackList)
	c.s.whiteList = maps.Clone(p.s.whiteList)
	c.s.typeBlackList = maps.Clone(p.s.typeBlackList)
	c.s.securityExemptionList = slices.Clone(p.s.securityExemptionList)
	c.s.supportedColorGamuts = slices.Clone(p.s.supportedColorGamuts)
	return c
}

func (p *Property) ID() domain.ScreenID { return p.s.id }
func (p *Property) IsVirtual() bool     { return p.s.isVirtual }
func (p *Property) Name() string        { return p.s.name }
func (p *Property) Width() uint32       { return p.s.width }
func (p *Property) Height() uint32      { return p.s.height }
func (p *Property) PhyWidth() uint32    { return p.s.phyWidth }
func (p *Property) PhyHeight() uint32   { return p.s.phyHeight }
func (p *Property) OffsetX() int32      { return p.s.offsetX }
func (p *Property) OffsetY() int32      { return p.s.offsetY }

func (p *Property) IsSamplingOn() bool          { return p.s.isSamplingOn }
func (p *Property) SamplingScale() float32      { return p.s.samplingScale }
func (p *Property) SamplingTranslateX() float32 { return p.s.samplingTranslateX }
func (p *Property) SamplingTranslateY() float32 { return p.s.samplingTranslateY }

func (p *Property) RefreshRate() uint32     { return p.s.refreshRate }
func (p *Property) ActiveRect() domain.Rect { return p.s.activeRect }
func (p *Property) MaskRect() domain.Rect   { return p.s.maskRect }
func (p *Property) ReviseRect() domain.Rect { return p.s.reviseRect }

func (p *Property) PowerStatus() domain.PowerStatus       { return p.s.powerStatus }
func (p *Property) State() domain.ScreenState             { return p.s.state }
func (p *Property) ScreenType() domain.ScreenType         { return p.s.screenType }
func (p *Property) ConnectionType() domain.ConnectionType { return p.s.connectionType }

func (p *Property) PixelFormat() domain.PixelFormat { return p.s.pixelFormat }
func (p *Property) ColorGamut() domain.ColorGamut   { return p.s.colorGamut }
func (p *Property) GamutMap() domain.GamutMap       { return p.s.gamutMap }
func (p *Property) HDRFormat() domain.HDRFormat     { return p.s.hdrFormat }
func (p *Property) Rotation() domain.ScreenRotation { return p.s.rotation }

// SupportedColorGamuts returns a copy of the gamuts the screen can switch to
func (p *Property) SupportedColorGamuts() []domain.ColorGamut {
	return slices.Clone(p.s.supportedColorGamuts)
}

// BlackList returns a copy of the excluded node set
func (p *Property) BlackList() map[domain.NodeID]struct{} { return maps.Clone(p.s.blackList) }

// WhiteList returns a copy of the included node set
func (p *Property) WhiteList() map[domain.NodeID]struct{} { return maps.Clone(p.s.whiteList) }

// TypeBlackList returns a copy of the excluded node type set
func (p *Property) TypeBlackList() map[uint8]struct{} { return maps.Clone(p.s.typeBlackList) }

func (p *Property) SecurityExemptionList() []domain.NodeID {
	return slices.Clone(p.s.securityExemptionList)
}

func (p *Property) CastScreenEnableSkipWindow() bool            { return p.s.castScreenEnableSkipWindow }
func (p *Property) SecurityMask() *domain.PixelMap              { return p.s.securityMask }
func (p *Property) EnableVisibleRect() bool                     { return p.s.enableVisibleRect }
func (p *Property) MainScreenVisibleRect() domain.Rect          { return p.s.mainScreenVisibleRect }
func (p *Property) VisibleRectSupportRotation() bool            { return p.s.visibleRectSupportRotation }
func (p *Property) SkipFrameStrategy() domain.SkipFrameStrategy { return p.s.skipFrameStrategy }
func (p *Property) SkipFrameInterval() uint32                   { return p.s.skipFrameInterval }
func (p *Property) ExpectedRefreshRate() uint32                 { return p.s.expectedRefreshRate }

func (p *Property) ProducerSurface() domain.ProducerSurface         { return p.s.surface }
func (p *Property) VirtualSecLayerFlags() int32                     { return p.s.virtualSecLayerFlags }
func (p *Property) VirtualScreenStatus() domain.VirtualScreenStatus { return p.s.virtualStatus }
func (p *Property) CanvasRotation() bool                            { return p.s.canvasRotation }
func (p *Property) AutoBufferRotation() bool                        { return p.s.autoBufferRotation }
func (p *Property) ScaleMode() domain.ScreenScaleMode               { return p.s.scaleMode }

// GetAndResetWhiteListChange reports whether the white list changed since the last call
func (p *Property) GetAndResetWhiteListChange() bool {
	return p.whiteListChanged.CompareAndSwap(true, false)
}

// GetAndResetBlackListChange reports whether the black or type black list changed since the last call
func (p *Property) GetAndResetBlackListChange() bool {
	return p.blackListChanged.CompareAndSwap(true, false)
}

// GetAndResetPSurfaceChange reports whether the producer surface was replaced since the last call
func (p *Property) GetAndResetPSurfaceChange() bool {
	return p.pSurfaceChanged.CompareAndSwap(true, false)
}

// GetAndResetVirtualScreenPlay reports whether playback was requested since the last call
func (p *Property) GetAndResetVirtualScreenPlay() bool {
	return p.virtualScreenPlay.CompareAndSwap(true, false)
}

// Info builds the snapshot handed to consumers
func (p *Property) Info() domain.ScreenInfo {
	return domain.ScreenInfo{
		ID:                 p.s.id,
		Name:               p.s.name,
		IsVirtual:          p.s.isVirtual,
		Width:              p.s.width,
		Height:             p.s.height,
		PhyWidth:           p.s.phyWidth,
		PhyHeight:          p.s.phyHeight,
		OffsetX:            p.s.offsetX,
		OffsetY:            p.s.offsetY,
		IsSamplingOn:       p.s.isSamplingOn,
		SamplingScale:      p.s.samplingScale,
		SamplingTranslateX: p.s.samplingTranslateX,
		SamplingTranslateY: p.s.samplingTranslateY,
		RefreshRate:        p.s.refreshRate,
		ActiveRect:         p.s.activeRect,
		MaskRect:           p.s.maskRect,
		ReviseRect:         p.s.reviseRect,
		PowerStatus:        p.s.powerStatus,
		State:              p.s.state,
		ScreenType:         p.s.screenType,
		ConnectionType:     p.s.connectionType,
		ColorGamut:         p.s.colorGamut,
		GamutMap:           p.s.gamutMap,
		HDRFormat:          p.s.hdrFormat,
		PixelFormat:        p.s.pixelFormat,
		Rotation:           p.s.rotation,
		SkipFrameStrategy:  p.s.skipFrameStrategy,
		SkipFrameInterval:  p.s.skipFrameInterval,
		ExpectedRefresh:    p.s.expectedRefreshRate,
	}
}

// setResolution stores the logical size and recomputes sampling
func (p *Property) setResolution(width, height uint32) {
	p.s.width = width
	p.s.height = height
	p.updateSampling()
}

// setPhysicalResolution stores the panel size and recomputes sampling
func (p *Property) setPhysicalResolution(width, height uint32) {
	p.s.phyWidth = width
	p.s.phyHeight = height
	p.updateSampling()
}

// updateSampling derives the downscale transform used when the logical
// frame is larger than the panel. The output is centered on the panel.
func (p *Property) updateSampling() {
	w, h := p.s.width, p.s.height
	pw, ph := p.s.phyWidth, p.s.phyHeight
	on := (w > pw || h > ph) && w > 0 && h > 0 && pw > 0 && ph > 0
	p.s.isSamplingOn = on
	if !on {
		p.s.samplingScale = 1
		p.s.samplingTranslateX = 0
		p.s.samplingTranslateY = 0
		return
	}
	scale := min(float32(pw)/float32(w), float32(ph)/float32(h))
	p.s.samplingScale = scale
	p.s.samplingTranslateX = (float32(pw) - float32(w)*scale) / 2
	p.s.samplingTranslateY = (float32(ph) - float32(h)*scale) / 2
}

func (p *Property) setBlackList(ids []domain.NodeID) {
	p.s.blackList = make(map[domain.NodeID]struct{}, len(ids))
	addNodes(p.s.blackList, ids)
	p.blackListChanged.Store(true)
}

func (p *Property) addBlackList(ids []domain.NodeID) {
	addNodes(p.s.blackList, ids)
	p.blackListChanged.Store(true)
}

func (p *Property) removeBlackList(ids []domain.NodeID) {
	removeNodes(p.s.blackList, ids)
	p.blackListChanged.Store(true)
}

func (p *Property) setTypeBlackList(types []uint8) {
	p.s.typeBlackList = make(map[uint8]struct{}, len(types))
	for _, t := range types {
		p.s.typeBlackList[t] = struct{}{}
	}
	p.blackListChanged.Store(true)
}

func (p *Property) setWhiteList(ids []domain.NodeID) {
	p.s.whiteList = make(map[domain.NodeID]struct{}, len(ids))
	addNodes(p.s.whiteList, ids)
	p.whiteListChanged.Store(true)
}

func (p *Property) addWhiteList(ids []domain.NodeID) {
	addNodes(p.s.whiteList, ids)
	p.whiteListChanged.Store(true)
}

func (p *Property) removeWhiteList(ids []domain.NodeID) {
	removeNodes(p.s.whiteList, ids)
	p.whiteListChanged.Store(true)
}

func addNodes(set map[domain.NodeID]struct{}, ids []domain.NodeID) {
	for _, id := range ids {
		set[id] = struct{}{}
	}
}

func removeNodes(set map[domain.NodeID]struct{}, ids []domain.NodeID) {
	for _, id := range ids {
		delete(set, id)
	}
}
