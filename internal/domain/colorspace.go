package domain

// ColorSpaceType packs primaries, transfer function, matrix and range into
// one identifier: primaries | transfer<<8 | matrix<<16 | range<<21.
type ColorSpaceType uint32

const (
	primariesBT709    = 1
	primariesBT601P   = 2
	primariesBT2020   = 4
	primariesP3D65    = 6
	primariesAdobeRGB = 23

	transferBT709 = 1
	transferSRGB  = 2
	transferPQ    = 5
	transferHLG   = 6

	matrixBT709  = 1
	matrixBT601P = 2
	matrixBT2020 = 4

	rangeFull = 1
)

const (
	ColorSpaceNone              ColorSpaceType = 0
	ColorSpaceBT601EBUFull      ColorSpaceType = primariesBT601P | transferBT709<<8 | matrixBT601P<<16 | rangeFull<<21
	ColorSpaceBT709Full         ColorSpaceType = primariesBT709 | transferBT709<<8 | matrixBT709<<16 | rangeFull<<21
	ColorSpaceSRGBFull          ColorSpaceType = primariesBT709 | transferSRGB<<8 | matrixBT601P<<16 | rangeFull<<21
	ColorSpaceAdobeRGBFull      ColorSpaceType = primariesAdobeRGB | transferSRGB<<8 | matrixBT709<<16 | rangeFull<<21
	ColorSpaceP3Full            ColorSpaceType = primariesP3D65 | transferSRGB<<8 | matrixBT601P<<16 | rangeFull<<21
	ColorSpaceDisplayBT2020SRGB ColorSpaceType = primariesBT2020 | transferSRGB<<8 | matrixBT2020<<16 | rangeFull<<21
	ColorSpaceBT2020PQFull      ColorSpaceType = primariesBT2020 | transferPQ<<8 | matrixBT2020<<16 | rangeFull<<21
	ColorSpaceBT2020HLGFull     ColorSpaceType = primariesBT2020 | transferHLG<<8 | matrixBT2020<<16 | rangeFull<<21
)

var gamutToColorSpace = map[ColorGamut]ColorSpaceType{
	ColorGamutStandardBT601: ColorSpaceBT601EBUFull,
	ColorGamutStandardBT709: ColorSpaceBT709Full,
	ColorGamutSRGB:          ColorSpaceSRGBFull,
	ColorGamutAdobeRGB:      ColorSpaceAdobeRGBFull,
	ColorGamutDisplayP3:     ColorSpaceP3Full,
	ColorGamutBT2020:        ColorSpaceDisplayBT2020SRGB,
	ColorGamutBT2100PQ:      ColorSpaceBT2020PQFull,
	ColorGamutBT2100HLG:     ColorSpaceBT2020HLGFull,
	ColorGamutDisplayBT2020: ColorSpaceDisplayBT2020SRGB,
	ColorGamutNative:        ColorSpaceNone,
}

// Display BT2020 and BT2020 share a color space; the reverse lookup picks BT2020.
var colorSpaceToGamut = map[ColorSpaceType]ColorGamut{
	ColorSpaceBT601EBUFull:      ColorGamutStandardBT601,
	ColorSpaceBT709Full:         ColorGamutStandardBT709,
	ColorSpaceSRGBFull:          ColorGamutSRGB,
	ColorSpaceAdobeRGBFull:      ColorGamutAdobeRGB,
	ColorSpaceP3Full:            ColorGamutDisplayP3,
	ColorSpaceDisplayBT2020SRGB: ColorGamutBT2020,
	ColorSpaceBT2020PQFull:      ColorGamutBT2100PQ,
	ColorSpaceBT2020HLGFull:     ColorGamutBT2100HLG,
	ColorSpaceNone:              ColorGamutNative,
}

// ColorSpaceForGamut maps a gamut to its encoded color space.
// Unmapped gamuts yield ColorSpaceNone.
func ColorSpaceForGamut(g ColorGamut) ColorSpaceType {
	return gamutToColorSpace[g]
}

// GamutForColorSpace resolves an encoded color space to a gamut
func GamutForColorSpace(cs ColorSpaceType) (ColorGamut, bool) {
	g, ok := colorSpaceToGamut[cs]
	return g, ok
}

var driverToHDRFormat = map[DriverHDRFormat]HDRFormat{
	DriverHDRNotSupport:  HDRNotSupport,
	DriverHDRDolbyVision: HDRNotSupport,
	DriverHDR10:          HDRVideoHDR10,
	DriverHDRHLG:         HDRVideoHLG,
	DriverHDR10Plus:      HDRNotSupport,
	DriverHDRVivid:       HDRVideoVivid,
}

var hdrFormatToDriver = map[HDRFormat]DriverHDRFormat{
	HDRNotSupport:       DriverHDRNotSupport,
	HDRVideoHLG:         DriverHDRHLG,
	HDRVideoHDR10:       DriverHDR10,
	HDRVideoVivid:       DriverHDRVivid,
	HDRImageVividDual:   DriverHDRVivid,
	HDRImageVividSingle: DriverHDRVivid,
	HDRImageISODual:     DriverHDRNotSupport,
	HDRImageISOSingle:   DriverHDRNotSupport,
}

// HDRFormatFromDriver converts a driver HDR format
func HDRFormatFromDriver(f DriverHDRFormat) HDRFormat {
	return driverToHDRFormat[f]
}

// DriverHDRFormatOf converts a consumer HDR format for the driver
func DriverHDRFormatOf(f HDRFormat) DriverHDRFormat {
	return hdrFormatToDriver[f]
}
