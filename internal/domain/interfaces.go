package domain

import (
	"context"
	"io"
	"time"
)

// HdiDevice is the call surface of the vendor display driver for one output.
// Every method is a synchronous round trip; ErrHdiNotSupported (possibly
// wrapped) signals a call the hardware cannot perform at all.
//
//go:generate mockgen -destination=mocks/hdi_mock.go -package=mocks github.com/genricoloni/screend/internal/domain HdiDevice,HdiOutput
type HdiDevice interface {
	// GetScreenCapability returns the static capability of the output
	GetScreenCapability() (Capability, error)

	// GetScreenSupportedModes lists the modes the output can be switched to
	GetScreenSupportedModes() ([]ScreenMode, error)

	// GetScreenMode returns the id of the active mode
	GetScreenMode() (uint32, error)

	// SetScreenMode switches the output to the mode with the given id
	SetScreenMode(modeID uint32) error

	// SetScreenOverlayResolution sets the resolution of the overlay plane
	SetScreenOverlayResolution(width, height uint32) error

	GetScreenPowerStatus() (PowerStatus, error)
	SetScreenPowerStatus(status PowerStatus) error
	GetPanelPowerStatus() (PanelPowerStatus, error)

	GetScreenBacklight() (uint32, error)
	SetScreenBacklight(level uint32) error

	GetScreenSupportedColorGamuts() ([]ColorGamut, error)
	SetScreenColorGamut(gamut ColorGamut) error
	GetScreenGamutMap() (GamutMap, error)
	SetScreenGamutMap(gamutMap GamutMap) error
	GetHDRCapabilityInfos() (HDRCapability, error)

	// SetScreenActiveRect restricts scan-out to the given rectangle
	SetScreenActiveRect(rect Rect) error

	// SetScreenConstraint paces the presentation of a frame
	SetScreenConstraint(frameID, timestamp uint64, kind ScreenConstraintType) error

	// SetScreenLinearMatrix applies a 3x3 color correction matrix through
	// the per-frame parameter channel
	SetScreenLinearMatrix(matrix []float32) error

	// SetDisplayProperty forwards a dual screen state value
	SetDisplayProperty(value uint64) error

	// GetDisplayIdentificationData returns the port and the raw EDID blob
	GetDisplayIdentificationData() (uint8, []byte, error)

	GetScreenConnectionType() (ConnectionType, error)
}

// HdiOutput is one output exposed by a display backend
type HdiOutput interface {
	// ScreenID returns the id the output is known by
	ScreenID() ScreenID

	// CreateDevice opens the driver handle for the output
	CreateDevice() (HdiDevice, error)

	// Dump writes the output state for diagnostics
	Dump(w io.Writer)
}

// DisplayBackend discovers physical outputs
//
//go:generate mockgen -destination=mocks/services_mock.go -package=mocks github.com/genricoloni/screend/internal/domain DisplayBackend,PowerMonitor,StateStore,Fetcher,MaskRenderer,Config
type DisplayBackend interface {
	// Outputs returns the currently connected outputs
	Outputs(ctx context.Context) ([]HdiOutput, error)

	// Close releases the backend connection
	Close() error
}

// ProducerSurface is the buffer queue a virtual screen renders into
type ProducerSurface interface {
	// UniqueID identifies the surface
	UniqueID() uint64

	// Name returns a human readable name
	Name() string
}

// PowerMonitor defines the interface for observing session power changes
type PowerMonitor interface {
	// Start begins monitoring; it blocks until the context is cancelled
	Start(ctx context.Context) error

	// Stop gracefully stops the monitor
	Stop(ctx context.Context) error

	// Events returns a read-only channel of power transitions
	Events() <-chan PowerEvent
}

// StateStore persists the last confirmed state of each screen
type StateStore interface {
	Save(ctx context.Context, info ScreenInfo) error
	Load(ctx context.Context, id ScreenID) (ScreenInfo, bool, error)
	Close() error
}

// Fetcher defines the interface for retrieving mask images
type Fetcher interface {
	// Fetch downloads or reads image data from a URL or local path
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// MaskRenderer turns raw image data into a mask fitted to a screen
type MaskRenderer interface {
	Render(ctx context.Context, imageData []byte, width, height int) (*PixelMap, error)
}

// Config defines the interface for application configuration
type Config interface {
	// Display returns the X display the backend connects to
	Display() string

	// StateDBPath returns the location of the screen state database
	StateDBPath() string

	// Debounce returns how long property changes settle before being persisted
	Debounce() time.Duration

	// ScreenOptions returns the immutable screen settings
	ScreenOptions() ScreenOptions

	// VirtualResolution returns the default size of virtual screens
	VirtualResolution() ScreenResolution

	// Backlight returns the sysfs subsystem and device used when the
	// display server exposes no backlight property
	Backlight() (subsystem, device string)

	// MaskDir returns the directory relative mask sources are resolved against
	MaskDir() string

	// MaskBlurRadius returns the blur sigma applied to security masks, 0 for none
	MaskBlurRadius() float64
}
