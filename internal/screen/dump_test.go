package screen

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/genricoloni/screend/internal/domain"
	"github.com/genricoloni/screend/internal/domain/mocks"
	"go.uber.org/mock/gomock"
)

func TestPhysicalDisplayDump(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dev := mocks.NewMockHdiDevice(ctrl)
	dev.EXPECT().GetScreenMode().Return(uint32(0), nil)

	s := newTestPhysical(dev, 1920, 1080)
	s.supportedModes = []domain.ScreenMode{{ID: 0, Width: 1920, Height: 1080, RefreshRate: 60}}
	s.capability = domain.Capability{
		Name:      "HDMI-1",
		Type:      domain.InterfaceHDMI,
		PhyWidth:  527,
		PhyHeight: 296,
		Props:     []domain.VendorProperty{{Name: "EDID", PropID: 3, Value: 128}},
	}
	s.property.s.powerStatus = domain.PowerStatusOn
	s.property.s.screenType = domain.ScreenTypeExternal
	s.backlight = 50

	var buf bytes.Buffer
	s.DisplayDump(&buf, 0)
	out := buf.String()

	for _, want := range []string{
		"-- ScreenInfo",
		"screen[0]: id=0, powerStatus=POWER_STATUS_ON, backlight=50, screenType=EXTERNAL_TYPE",
		"render resolution=1920x1080, physical resolution=1920x1080, isVirtual=false",
		"supportedMode[0]: 1920x1080, refreshRate=60",
		"activeMode: 1920x1080, refreshRate=60",
		"name=HDMI-1, phyWidth=527, phyHeight=296",
		"type=DISP_INTF_HDMI, supportWriteBack=false",
		"prop[0]: name=EDID, propid=3, value=128",
		"isSamplingOn=0, samplingScale=1.00",
		"enableVisibleRect=0, mainScreenVisibleRect=[0,0,0,0]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q\n%s", want, out)
		}
	}
}

func TestPhysicalSurfaceDump(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	out := mocks.NewMockHdiOutput(ctrl)
	out.EXPECT().Dump(gomock.Any()).Do(func(w any) {
		fmt.Fprint(w.(*bytes.Buffer), "layers=2\n")
	})

	s := newTestPhysical(nil, 100, 100)
	var buf bytes.Buffer
	s.SurfaceDump(&buf)
	if buf.Len() != 0 {
		t.Errorf("screen without output should dump nothing, got %q", buf.String())
	}

	s.output = out
	s.SurfaceDump(&buf)
	if buf.String() != "layers=2\n" {
		t.Errorf("want output dump, got %q", buf.String())
	}
}

func TestVirtualDisplayDump(t *testing.T) {
	s := newTestVirtual(domain.DefaultScreenOptions(), &fakeSurface{id: 9, name: "mirror"})

	var buf bytes.Buffer
	s.DisplayDump(&buf, 3)
	s.SurfaceDump(&buf)
	out := buf.String()

	for _, want := range []string{
		"screen[3]: id=7, associatedScreenId=0, render resolution=1280x720, isVirtual=true",
		"surface: name=mirror, uniqueId=9",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q\n%s", want, out)
		}
	}
}

func TestInvalidScreenIDDump(t *testing.T) {
	if got := idString(domain.InvalidScreenID); got != "INVALID_SCREEN_ID" {
		t.Errorf("want INVALID_SCREEN_ID, got %s", got)
	}
	if got := idString(12); got != "12" {
		t.Errorf("want 12, got %s", got)
	}
}

func TestFpsRecorder(t *testing.T) {
	tests := []struct {
		name        string
		frames      int
		interval    time.Duration
		expectCount int
		expectFps   float64
	}{
		{name: "Empty", frames: 0, interval: time.Second, expectCount: 0, expectFps: 0},
		{name: "Single frame", frames: 1, interval: time.Second, expectCount: 1, expectFps: 0},
		{name: "Sixty hertz", frames: 61, interval: time.Second / 60, expectCount: 61, expectFps: 60},
		{name: "Ring wraps", frames: fpsRecordSize + 10, interval: 10 * time.Millisecond, expectCount: fpsRecordSize, expectFps: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFpsRecorder()
			for i := 0; i < tt.frames; i++ {
				r.record(int64(i) * int64(tt.interval))
			}
			stamps := r.ordered()
			if len(stamps) != tt.expectCount {
				t.Fatalf("count: want %d, got %d", tt.expectCount, len(stamps))
			}
			for i := 1; i < len(stamps); i++ {
				if stamps[i] <= stamps[i-1] {
					t.Fatalf("stamps not ordered at %d: %v", i, stamps[i-1:i+1])
				}
			}
			if got := r.average(); got < tt.expectFps-0.5 || got > tt.expectFps+0.5 {
				t.Errorf("average: want ~%v, got %v", tt.expectFps, got)
			}
		})
	}
}

func TestFpsDumpAndClear(t *testing.T) {
	s := newTestPhysical(nil, 100, 100)
	for i := int64(0); i < 3; i++ {
		s.RecordPresentTime(i * int64(time.Second))
	}

	var buf bytes.Buffer
	s.FpsDump(&buf, 0)
	if !strings.Contains(buf.String(), "The fps of screen [Screen_0] (index 0) is:") ||
		!strings.Contains(buf.String(), "average fps=1.00") {
		t.Errorf("unexpected fps dump:\n%s", buf.String())
	}

	buf.Reset()
	s.ClearFpsDump(&buf, 0)
	if !strings.Contains(buf.String(), "is cleared") {
		t.Errorf("unexpected clear output: %q", buf.String())
	}
	if len(s.fps.ordered()) != 0 {
		t.Error("records not cleared")
	}
}
