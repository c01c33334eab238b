package screen

import (
	"fmt"
	"io"
)

func boolDigit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// DisplayDump writes the state of the screen for diagnostics
func (s *PhysicalScreen) DisplayDump(w io.Writer, index int) {
	p := s.property
	fmt.Fprintf(w, "-- ScreenInfo\n")
	fmt.Fprintf(w, "screen[%d]: id=%s, ", index, idString(p.ID()))
	s.PowerStatusDump(w)
	fmt.Fprintf(w, ", backlight=%d, ", s.GetScreenBacklight())
	s.ScreenTypeDump(w)
	fmt.Fprintf(w, ", render resolution=%dx%d, physical resolution=%dx%d, isVirtual=false, skipFrameInterval=%d"+
		", expectedRefreshRate=%d, skipFrameStrategy=%d\n",
		p.Width(), p.Height(), p.PhyWidth(), p.PhyHeight(),
		p.SkipFrameInterval(), p.ExpectedRefreshRate(), p.SkipFrameStrategy())
	s.ModeInfoDump(w)
	s.CapabilityDump(w)
	fmt.Fprintf(w, "isSamplingOn=%d, samplingScale=%.2f, samplingTranslateX=%.2f, samplingTranslateY=%.2f\n",
		boolDigit(p.IsSamplingOn()), p.SamplingScale(), p.SamplingTranslateX(), p.SamplingTranslateY())
	r := p.MainScreenVisibleRect()
	fmt.Fprintf(w, "enableVisibleRect=%d, mainScreenVisibleRect=[%d,%d,%d,%d]\n",
		boolDigit(p.EnableVisibleRect()), r.X, r.Y, r.W, r.H)
}

// PowerStatusDump writes the power status without querying the driver
// unless the cached value is invalid
func (s *PhysicalScreen) PowerStatusDump(w io.Writer) {
	fmt.Fprintf(w, "powerStatus=%s", s.GetPowerStatus())
}

func (s *PhysicalScreen) ModeInfoDump(w io.Writer) {
	for i, m := range s.supportedModes {
		fmt.Fprintf(w, "supportedMode[%d]: %dx%d, refreshRate=%d\n", i, m.Width, m.Height, m.RefreshRate)
	}
	if m, ok := s.GetActiveMode(); ok {
		fmt.Fprintf(w, "activeMode: %dx%d, refreshRate=%d\n", m.Width, m.Height, m.RefreshRate)
	}
}

func (s *PhysicalScreen) CapabilityDump(w io.Writer) {
	c := s.capability
	fmt.Fprintf(w, "name=%s, phyWidth=%d, phyHeight=%d, supportLayers=%d, virtualDispCount=%d, propertyCount=%d, ",
		c.Name, c.PhyWidth, c.PhyHeight, c.SupportLayers, c.VirtualDispCount, len(c.Props))
	s.CapabilityTypeDump(w)
	fmt.Fprintf(w, "supportWriteBack=%t\n", c.SupportWriteBack)
	s.PropDump(w)
}

func (s *PhysicalScreen) CapabilityTypeDump(w io.Writer) {
	fmt.Fprintf(w, "type=%s, ", s.capability.Type)
}

func (s *PhysicalScreen) PropDump(w io.Writer) {
	for i, prop := range s.capability.Props {
		fmt.Fprintf(w, "prop[%d]: name=%s, propid=%d, value=%d\n", i, prop.Name, prop.PropID, prop.Value)
	}
}

// SurfaceDump delegates to the backend output
func (s *PhysicalScreen) SurfaceDump(w io.Writer) {
	if s.output == nil {
		s.logger.Warn("SurfaceDump: no output")
		return
	}
	s.output.Dump(w)
}

// DisplayDump writes the state of the screen for diagnostics
func (s *VirtualScreen) DisplayDump(w io.Writer, index int) {
	p := s.property
	fmt.Fprintf(w, "-- ScreenInfo\n")
	fmt.Fprintf(w, "screen[%d]: id=%s, associatedScreenId=%s, render resolution=%dx%d, isVirtual=true"+
		", skipFrameInterval=%d, expectedRefreshRate=%d, skipFrameStrategy=%d\n",
		index, idString(p.ID()), idString(s.associatedScreenID), p.Width(), p.Height(),
		p.SkipFrameInterval(), p.ExpectedRefreshRate(), p.SkipFrameStrategy())
}

// SurfaceDump names the producer surface, if any
func (s *VirtualScreen) SurfaceDump(w io.Writer) {
	surface := s.property.ProducerSurface()
	if surface == nil {
		fmt.Fprintf(w, "surface: none\n")
		return
	}
	fmt.Fprintf(w, "surface: name=%s, uniqueId=%d\n", surface.Name(), surface.UniqueID())
}
