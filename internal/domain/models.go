package domain

import (
	"fmt"
	"image"
	"math"
)

// ScreenID identifies a screen across the daemon
type ScreenID uint64

// InvalidScreenID marks a screen without a backing output
const InvalidScreenID ScreenID = math.MaxUint64

// NodeID identifies a renderable node of the compositor
type NodeID uint64

// InvalidBacklight is reported when no backlight level is known
const InvalidBacklight int32 = -1

// LinearMatrixSize is the number of elements of a 3x3 color correction matrix
const LinearMatrixSize = 9

// Rect is an axis-aligned rectangle in screen pixels
type Rect struct {
	X int32
	Y int32
	W int32
	H int32
}

// IsEmpty reports whether the rectangle covers no pixels
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Union returns the smallest rectangle containing both r and o.
// Empty rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	right := max(r.X+r.W, o.X+o.W)
	bottom := max(r.Y+r.H, o.Y+o.H)
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", r.X, r.Y, r.W, r.H)
}

// ScreenMode is one display mode reported by the driver
type ScreenMode struct {
	ID          int32
	Width       uint32
	Height      uint32
	RefreshRate uint32
}

// VendorProperty is a driver specific key/value exposed in the capability
type VendorProperty struct {
	Name   string
	PropID uint32
	Value  uint64
}

// Capability describes what a physical output supports. It is probed once.
type Capability struct {
	Name             string
	Type             InterfaceType
	PhyWidth         uint32
	PhyHeight        uint32
	SupportLayers    uint32
	VirtualDispCount uint32
	SupportWriteBack bool
	Props            []VendorProperty
}

// DisplayOutput is a connector as reported by the display server
type DisplayOutput struct {
	ID        uint32
	Name      string
	Connected bool
	MmWidth   uint32
	MmHeight  uint32
	Modes     []ScreenMode
}

// HDRCapability lists the HDR formats of a panel and its luminance range
type HDRCapability struct {
	Formats       []DriverHDRFormat
	MaxLum        float32
	MaxAverageLum float32
	MinLum        float32
}

// ScreenResolution holds the display dimensions
type ScreenResolution struct {
	Width  int
	Height int
}

// PixelMap is a decoded image attached to a screen (e.g. the security mask)
type PixelMap struct {
	Width  int
	Height int
	Image  image.Image
}

// VirtualScreenConfigs carries everything needed to create a virtual screen
type VirtualScreenConfigs struct {
	ID                 ScreenID
	AssociatedScreenID ScreenID
	Name               string
	Width              uint32
	Height             uint32
	Surface            ProducerSurface
	PixelFormat        PixelFormat
	// Flags is the virtual secure layer option
	Flags     int32
	WhiteList []NodeID
}

// ScreenOptions are the process-wide screen settings, built once from the configuration
type ScreenOptions struct {
	// PowerOnAtInit powers every physical screen on during its probe (screen 0 always is)
	PowerOnAtInit bool
	// ReviseActiveRect sends the union of active and mask rect to the driver
	ReviseActiveRect   bool
	VirtualColorGamuts []ColorGamut
	VirtualHDRFormats  []HDRFormat
}

// DefaultScreenOptions returns the options used when nothing is configured
func DefaultScreenOptions() ScreenOptions {
	return ScreenOptions{
		VirtualColorGamuts: []ColorGamut{
			ColorGamutSRGB,
			ColorGamutDCIP3,
			ColorGamutAdobeRGB,
			ColorGamutDisplayP3,
		},
		VirtualHDRFormats: []HDRFormat{
			HDRNotSupport,
			HDRVideoHLG,
			HDRVideoHDR10,
			HDRVideoVivid,
		},
	}
}

// ScreenInfo is a read-only snapshot of a screen handed to consumers
type ScreenInfo struct {
	ID                 ScreenID
	Name               string
	IsVirtual          bool
	Width              uint32
	Height             uint32
	PhyWidth           uint32
	PhyHeight          uint32
	OffsetX            int32
	OffsetY            int32
	IsSamplingOn       bool
	SamplingScale      float32
	SamplingTranslateX float32
	SamplingTranslateY float32
	RefreshRate        uint32
	ActiveRect         Rect
	MaskRect           Rect
	ReviseRect         Rect
	PowerStatus        PowerStatus
	State              ScreenState
	ScreenType         ScreenType
	ConnectionType     ConnectionType
	ColorGamut         ColorGamut
	GamutMap           GamutMap
	HDRFormat          HDRFormat
	PixelFormat        PixelFormat
	Rotation           ScreenRotation
	SkipFrameStrategy  SkipFrameStrategy
	SkipFrameInterval  uint32
	ExpectedRefresh    uint32
}

// PowerEvent is emitted by a power monitor when the session changes power state
type PowerEvent struct {
	Status PowerStatus
	Reason string
}
