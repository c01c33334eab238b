package domain

import (
	"fmt"
	"strings"
)

// PowerStatus is the power state of a screen as understood by the driver
type PowerStatus uint32

const (
	PowerStatusOn PowerStatus = iota
	PowerStatusStandby
	PowerStatusSuspend
	PowerStatusOff
	PowerStatusOffFake
	PowerStatusOnAdvanced
	PowerStatusOffAdvanced
	PowerStatusDoze
	PowerStatusDozeSuspend
	PowerStatusButt
	PowerStatusInvalid
)

var powerStatusNames = map[PowerStatus]string{
	PowerStatusOn:          "POWER_STATUS_ON",
	PowerStatusStandby:     "POWER_STATUS_STANDBY",
	PowerStatusSuspend:     "POWER_STATUS_SUSPEND",
	PowerStatusOff:         "POWER_STATUS_OFF",
	PowerStatusOffFake:     "POWER_STATUS_OFF_FAKE",
	PowerStatusOnAdvanced:  "POWER_STATUS_ON_ADVANCED",
	PowerStatusOffAdvanced: "POWER_STATUS_OFF_ADVANCED",
	PowerStatusDoze:        "POWER_STATUS_DOZE",
	PowerStatusDozeSuspend: "POWER_STATUS_DOZE_SUSPEND",
	PowerStatusButt:        "POWER_STATUS_BUTT",
}

func (s PowerStatus) String() string {
	if name, ok := powerStatusNames[s]; ok {
		return name
	}
	return "INVALID_POWER_STATUS"
}

// PanelPowerStatus mirrors the panel power reported by the driver
type PanelPowerStatus uint32

const (
	PanelPowerOn PanelPowerStatus = iota
	PanelPowerOff
	PanelPowerInvalid
)

// ScreenType classifies a screen
type ScreenType uint32

const (
	ScreenTypeBuiltIn ScreenType = iota
	ScreenTypeExternal
	ScreenTypeVirtual
	ScreenTypeUnknown
)

func (t ScreenType) String() string {
	switch t {
	case ScreenTypeBuiltIn:
		return "BUILT_IN_TYPE"
	case ScreenTypeExternal:
		return "EXTERNAL_TYPE"
	case ScreenTypeVirtual:
		return "VIRTUAL_TYPE"
	default:
		return "UNKNOWN_TYPE"
	}
}

// ConnectionType tells whether a physical screen is wired internally
type ConnectionType uint32

const (
	ConnectionInternal ConnectionType = iota
	ConnectionExternal
	ConnectionInvalid
)

// InterfaceType is the physical link of an output
type InterfaceType uint32

const (
	InterfaceHDMI InterfaceType = iota
	InterfaceLCD
	InterfaceBT1120
	InterfaceBT656
	InterfaceMIPI
	InterfaceInvalid
)

func (t InterfaceType) String() string {
	switch t {
	case InterfaceHDMI:
		return "DISP_INTF_HDMI"
	case InterfaceLCD:
		return "DISP_INTF_LCD"
	case InterfaceBT1120:
		return "DISP_INTF_BT1120"
	case InterfaceBT656:
		return "DISP_INTF_BT656"
	case InterfaceMIPI:
		return "DISP_INTF_MIPI"
	default:
		return "INVALID_DISP_INTF"
	}
}

// ScreenState tracks which backing resource a screen currently has
type ScreenState uint32

const (
	ScreenStateHdiOutputEnable ScreenState = iota
	ScreenStateProducerSurfaceEnable
	ScreenStateDisabled
)

// ColorGamut is a color gamut identifier shared with the driver
type ColorGamut int32

const (
	ColorGamutInvalid ColorGamut = iota - 1
	ColorGamutNative
	ColorGamutStandardBT601
	ColorGamutStandardBT709
	ColorGamutDCIP3
	ColorGamutSRGB
	ColorGamutAdobeRGB
	ColorGamutDisplayP3
	ColorGamutBT2020
	ColorGamutBT2100PQ
	ColorGamutBT2100HLG
	ColorGamutDisplayBT2020
)

var colorGamutNames = map[ColorGamut]string{
	ColorGamutNative:        "NATIVE",
	ColorGamutStandardBT601: "STANDARD_BT601",
	ColorGamutStandardBT709: "STANDARD_BT709",
	ColorGamutDCIP3:         "DCI_P3",
	ColorGamutSRGB:          "SRGB",
	ColorGamutAdobeRGB:      "ADOBE_RGB",
	ColorGamutDisplayP3:     "DISPLAY_P3",
	ColorGamutBT2020:        "BT2020",
	ColorGamutBT2100PQ:      "BT2100_PQ",
	ColorGamutBT2100HLG:     "BT2100_HLG",
	ColorGamutDisplayBT2020: "DISPLAY_BT2020",
}

func (g ColorGamut) String() string {
	if name, ok := colorGamutNames[g]; ok {
		return name
	}
	return "INVALID"
}

// ParseColorGamut resolves a gamut by its name (case insensitive)
func ParseColorGamut(name string) (ColorGamut, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for gamut, n := range colorGamutNames {
		if n == upper {
			return gamut, nil
		}
	}
	return ColorGamutInvalid, fmt.Errorf("unknown color gamut %q", name)
}

// GamutMap is the policy used to compress out-of-gamut colors
type GamutMap uint32

const (
	GamutMapConstant GamutMap = iota
	GamutMapExpansion
	GamutMapHDRConstant
	GamutMapHDRExpansion
)

// HDRFormat is the HDR format as seen by screen consumers
type HDRFormat uint32

const (
	HDRNotSupport HDRFormat = iota
	HDRVideoHLG
	HDRVideoHDR10
	HDRVideoVivid
	HDRImageVividDual
	HDRImageVividSingle
	HDRImageISODual
	HDRImageISOSingle
)

var hdrFormatNames = map[HDRFormat]string{
	HDRNotSupport:       "NOT_SUPPORT_HDR",
	HDRVideoHLG:         "VIDEO_HLG",
	HDRVideoHDR10:       "VIDEO_HDR10",
	HDRVideoVivid:       "VIDEO_HDR_VIVID",
	HDRImageVividDual:   "IMAGE_HDR_VIVID_DUAL",
	HDRImageVividSingle: "IMAGE_HDR_VIVID_SINGLE",
	HDRImageISODual:     "IMAGE_HDR_ISO_DUAL",
	HDRImageISOSingle:   "IMAGE_HDR_ISO_SINGLE",
}

func (f HDRFormat) String() string {
	if name, ok := hdrFormatNames[f]; ok {
		return name
	}
	return "INVALID_HDR"
}

// ParseHDRFormat resolves an HDR format by its name (case insensitive)
func ParseHDRFormat(name string) (HDRFormat, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for format, n := range hdrFormatNames {
		if n == upper {
			return format, nil
		}
	}
	return HDRNotSupport, fmt.Errorf("unknown hdr format %q", name)
}

// DriverHDRFormat is the HDR format as reported by the driver
type DriverHDRFormat uint32

const (
	DriverHDRNotSupport DriverHDRFormat = iota
	DriverHDRDolbyVision
	DriverHDR10
	DriverHDRHLG
	DriverHDR10Plus
	DriverHDRVivid
)

// HDRMetadataKey names a static HDR metadata field
type HDRMetadataKey uint32

const (
	MetadataRedPrimaryX HDRMetadataKey = iota
	MetadataRedPrimaryY
	MetadataGreenPrimaryX
	MetadataGreenPrimaryY
	MetadataBluePrimaryX
	MetadataBluePrimaryY
	MetadataWhitePrimaryX
	MetadataWhitePrimaryY
	MetadataMaxLuminance
	MetadataMinLuminance
	MetadataMaxContentLightLevel
	MetadataMaxFrameAverageLightLevel
	MetadataHDR10Plus
	MetadataHDRVivid
)

// PixelFormat is a buffer pixel layout
type PixelFormat int32

const (
	PixelFormatRGBA8888    PixelFormat = 12
	PixelFormatBGRA8888    PixelFormat = 20
	PixelFormatYCbCr420SP  PixelFormat = 24
	PixelFormatRGBA1010102 PixelFormat = 35
)

// SkipFrameStrategy selects how the compositor throttles a screen
type SkipFrameStrategy uint32

const (
	SkipFrameByInterval SkipFrameStrategy = iota
	SkipFrameByRefreshRate
	SkipFrameByActiveRefreshRate
)

// DualScreenStatus is forwarded to the driver as a display property
type DualScreenStatus uint64

const (
	DualScreenEnter DualScreenStatus = iota
	DualScreenExit
)

// ScreenConstraintType tells the driver how to pace a frame
type ScreenConstraintType uint32

const (
	ConstraintNone ScreenConstraintType = iota
	ConstraintAbsolute
	ConstraintRelative
	ConstraintAdaptive
)

// VirtualScreenStatus is the playback state of a virtual screen
type VirtualScreenStatus uint32

const (
	VirtualScreenPlay VirtualScreenStatus = iota
	VirtualScreenPause
	VirtualScreenInvalid
)

// ScreenRotation is a correction applied to the screen output
type ScreenRotation uint32

const (
	Rotation0 ScreenRotation = iota
	Rotation90
	Rotation180
	Rotation270
	RotationInvalid
)

// ScreenScaleMode controls how a mirrored image fits a virtual screen
type ScreenScaleMode uint32

const (
	ScaleModeFill ScreenScaleMode = iota
	ScaleModeUniform
)
