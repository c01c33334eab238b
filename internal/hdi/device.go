package hdi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/genricoloni/screend/internal/domain"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/dpms"
	"go.uber.org/zap"
)

const (
	backlightProperty = "Backlight"
	edidProperty      = "EDID"

	commandTimeout = 5 * time.Second
)

// CommandRunner runs the display configuration tool with the given arguments
type CommandRunner interface {
	Run(ctx context.Context, args ...string) error
}

var dpmsLevels = map[domain.PowerStatus]uint16{
	domain.PowerStatusOn:      dpms.DPMSModeOn,
	domain.PowerStatusStandby: dpms.DPMSModeStandby,
	domain.PowerStatusSuspend: dpms.DPMSModeSuspend,
	domain.PowerStatusOff:     dpms.DPMSModeOff,
}

// Device implements domain.HdiDevice for one RandR output
type Device struct {
	logger    *zap.Logger
	client    XClient
	runner    CommandRunner
	backlight Backlight
	port      uint8
	output    domain.DisplayOutput
}

var _ domain.HdiDevice = (*Device)(nil)

// interfaceType guesses the physical link from the connector name
func interfaceType(name string) domain.InterfaceType {
	upper := strings.ToUpper(name)
	switch {
	case strings.HasPrefix(upper, "EDP"), strings.HasPrefix(upper, "LVDS"):
		return domain.InterfaceLCD
	case strings.HasPrefix(upper, "DSI"):
		return domain.InterfaceMIPI
	default:
		return domain.InterfaceHDMI
	}
}

func (d *Device) GetScreenCapability() (domain.Capability, error) {
	props, err := d.client.OutputProperties(d.output.ID)
	if err != nil {
		d.logger.Warn("Failed to list output properties", zap.Error(err))
	}
	return domain.Capability{
		Name:          d.output.Name,
		Type:          interfaceType(d.output.Name),
		PhyWidth:      d.output.MmWidth,
		PhyHeight:     d.output.MmHeight,
		SupportLayers: 1,
		Props:         props,
	}, nil
}

func (d *Device) GetScreenSupportedModes() ([]domain.ScreenMode, error) {
	return d.output.Modes, nil
}

func (d *Device) GetScreenMode() (uint32, error) {
	return d.client.CurrentMode(d.output.ID)
}

// SetScreenMode switches the output's CRTC to the mode with the given id
func (d *Device) SetScreenMode(modeID uint32) error {
	known := false
	for _, m := range d.output.Modes {
		if uint32(m.ID) == modeID {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("mode %d not offered by %s: %w", modeID, d.output.Name, domain.ErrHdiNotSupported)
	}
	return d.client.SetMode(d.output.ID, modeID)
}

// SetScreenOverlayResolution renders at width x height and lets the server scale
func (d *Device) SetScreenOverlayResolution(width, height uint32) error {
	return d.run("--output", d.output.Name, "--scale-from", fmt.Sprintf("%dx%d", width, height))
}

func (d *Device) run(args ...string) error {
	if d.runner == nil {
		return fmt.Errorf("no command runner: %w", domain.ErrHdiNotSupported)
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	return d.runner.Run(ctx, args...)
}

func (d *Device) GetScreenPowerStatus() (domain.PowerStatus, error) {
	level, enabled, err := d.client.DPMSLevel()
	if err != nil {
		return domain.PowerStatusInvalid, err
	}
	if !enabled {
		return domain.PowerStatusOn, nil
	}
	for status, l := range dpmsLevels {
		if l == level {
			return status, nil
		}
	}
	return domain.PowerStatusInvalid, fmt.Errorf("unknown dpms level %d", level)
}

func (d *Device) SetScreenPowerStatus(status domain.PowerStatus) error {
	level, ok := dpmsLevels[status]
	if !ok {
		return fmt.Errorf("power status %s: %w", status, domain.ErrHdiNotSupported)
	}
	return d.client.ForceDPMSLevel(level)
}

func (d *Device) GetPanelPowerStatus() (domain.PanelPowerStatus, error) {
	status, err := d.GetScreenPowerStatus()
	if err != nil {
		return domain.PanelPowerInvalid, err
	}
	if status == domain.PowerStatusOn {
		return domain.PanelPowerOn, nil
	}
	return domain.PanelPowerOff, nil
}

// GetScreenBacklight reads the output's Backlight property, falling back to
// the sysfs backlight when the driver does not expose one
func (d *Device) GetScreenBacklight() (uint32, error) {
	data, err := d.client.OutputProperty(d.output.ID, backlightProperty)
	switch {
	case err == nil && len(data) >= 4:
		return xgb.Get32(data), nil
	case err == nil:
		return 0, fmt.Errorf("short backlight property (%d bytes)", len(data))
	case errors.Is(err, ErrPropertyNotFound) && d.backlight != nil:
		return d.backlight.Get()
	}
	return 0, err
}

func (d *Device) SetScreenBacklight(level uint32) error {
	err := d.client.SetOutputProperty(d.output.ID, backlightProperty, level)
	if errors.Is(err, ErrPropertyNotFound) && d.backlight != nil {
		return d.backlight.Set(level)
	}
	return err
}

// GetScreenSupportedColorGamuts reports sRGB only; X11 has no gamut control
func (d *Device) GetScreenSupportedColorGamuts() ([]domain.ColorGamut, error) {
	return []domain.ColorGamut{domain.ColorGamutSRGB}, nil
}

func (d *Device) SetScreenColorGamut(gamut domain.ColorGamut) error {
	if gamut != domain.ColorGamutSRGB {
		return fmt.Errorf("color gamut %s: %w", gamut, domain.ErrHdiNotSupported)
	}
	return nil
}

func (d *Device) GetScreenGamutMap() (domain.GamutMap, error) {
	return domain.GamutMapConstant, nil
}

func (d *Device) SetScreenGamutMap(gamutMap domain.GamutMap) error {
	if gamutMap != domain.GamutMapConstant {
		return fmt.Errorf("gamut map %d: %w", gamutMap, domain.ErrHdiNotSupported)
	}
	return nil
}

func (d *Device) GetHDRCapabilityInfos() (domain.HDRCapability, error) {
	return domain.HDRCapability{}, nil
}

func (d *Device) SetScreenActiveRect(rect domain.Rect) error {
	return fmt.Errorf("active rect: %w", domain.ErrHdiNotSupported)
}

func (d *Device) SetScreenConstraint(frameID, timestamp uint64, kind domain.ScreenConstraintType) error {
	return fmt.Errorf("screen constraint: %w", domain.ErrHdiNotSupported)
}

// SetScreenLinearMatrix installs the matrix as the output's transform
func (d *Device) SetScreenLinearMatrix(matrix []float32) error {
	if len(matrix) != domain.LinearMatrixSize {
		return fmt.Errorf("matrix has %d elements, want %d", len(matrix), domain.LinearMatrixSize)
	}
	values := make([]string, len(matrix))
	for i, v := range matrix {
		values[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return d.run("--output", d.output.Name, "--transform", strings.Join(values, ","))
}

func (d *Device) SetDisplayProperty(value uint64) error {
	return fmt.Errorf("display property: %w", domain.ErrHdiNotSupported)
}

// GetDisplayIdentificationData returns the output index as port and its EDID
func (d *Device) GetDisplayIdentificationData() (uint8, []byte, error) {
	edid, err := d.client.OutputProperty(d.output.ID, edidProperty)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read EDID of %s: %w", d.output.Name, err)
	}
	return d.port, edid, nil
}

func (d *Device) GetScreenConnectionType() (domain.ConnectionType, error) {
	switch interfaceType(d.output.Name) {
	case domain.InterfaceLCD, domain.InterfaceMIPI:
		return domain.ConnectionInternal, nil
	default:
		return domain.ConnectionExternal, nil
	}
}
