package hdi

import (
	"errors"
	"fmt"
	"sync"

	"github.com/genricoloni/screend/internal/domain"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/dpms"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// ErrPropertyNotFound is returned when an output does not carry the property
var ErrPropertyNotFound = errors.New("output property not found")

// maxPropertyLength bounds property reads, in 32-bit units
const maxPropertyLength = 1024

// XClient is the subset of the X protocol the backend relies on.
// This abstraction allows us to mock the display server in tests.
//
//go:generate mockgen -destination=mocks/hdi_mock.go -package=mocks github.com/genricoloni/screend/internal/hdi XClient,Backlight,CommandRunner,BusCaller
type XClient interface {
	// Close closes the X connection
	Close() error

	// Outputs lists every RandR output with its modes resolved
	Outputs() ([]domain.DisplayOutput, error)

	// CurrentMode returns the mode id driving the output, 0 when it is off
	CurrentMode(output uint32) (uint32, error)

	// SetMode drives the output's CRTC with the given mode
	SetMode(output, mode uint32) error

	// OutputProperty returns the raw value of a named output property
	OutputProperty(output uint32, name string) ([]byte, error)

	// SetOutputProperty replaces a named 32-bit integer output property
	SetOutputProperty(output uint32, name string, value uint32) error

	// OutputProperties lists every property of the output with its first value
	OutputProperties(output uint32) ([]domain.VendorProperty, error)

	// DPMSLevel returns the current DPMS level and whether DPMS is enabled
	DPMSLevel() (uint16, bool, error)

	// ForceDPMSLevel enables DPMS and forces the given level
	ForceDPMSLevel(level uint16) error
}

// xgbClient talks to the X server through jezek/xgb
type xgbClient struct {
	conn *xgb.Conn
	root xproto.Window
	dpms bool

	mu    sync.Mutex
	atoms map[string]xproto.Atom
}

// DialX connects to display ("" means $DISPLAY) and initialises RandR.
// DPMS is optional; power calls fail with ErrHdiNotSupported without it.
func DialX(display string) (XClient, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X display %q: %w", display, err)
	}
	if err := randr.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	c := &xgbClient{
		conn:  conn,
		root:  xproto.Setup(conn).DefaultScreen(conn).Root,
		atoms: make(map[string]xproto.Atom),
	}
	if err := dpms.Init(conn); err == nil {
		c.dpms = true
	}
	return c, nil
}

func (c *xgbClient) Close() error {
	c.conn.Close()
	return nil
}

func (c *xgbClient) Outputs() ([]domain.DisplayOutput, error) {
	res, err := randr.GetScreenResourcesCurrent(c.conn, c.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	modes := make(map[randr.Mode]randr.ModeInfo, len(res.Modes))
	for _, m := range res.Modes {
		modes[randr.Mode(m.Id)] = m
	}

	outputs := make([]domain.DisplayOutput, 0, len(res.Outputs))
	for _, o := range res.Outputs {
		info, err := randr.GetOutputInfo(c.conn, o, res.ConfigTimestamp).Reply()
		if err != nil {
			return nil, fmt.Errorf("failed to get info of output %d: %w", o, err)
		}
		out := domain.DisplayOutput{
			ID:        uint32(o),
			Name:      string(info.Name),
			Connected: info.Connection == randr.ConnectionConnected,
			MmWidth:   info.MmWidth,
			MmHeight:  info.MmHeight,
		}
		for _, id := range info.Modes {
			if m, ok := modes[id]; ok {
				out.Modes = append(out.Modes, toScreenMode(m))
			}
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// toScreenMode converts a RandR mode, deriving the refresh rate from the timings
func toScreenMode(m randr.ModeInfo) domain.ScreenMode {
	return domain.ScreenMode{
		ID:          int32(m.Id),
		Width:       uint32(m.Width),
		Height:      uint32(m.Height),
		RefreshRate: refreshRate(m.DotClock, m.Htotal, m.Vtotal),
	}
}

func refreshRate(dotClock uint32, htotal, vtotal uint16) uint32 {
	if htotal == 0 || vtotal == 0 {
		return 0
	}
	total := float64(htotal) * float64(vtotal)
	return uint32(float64(dotClock)/total + 0.5)
}

func (c *xgbClient) crtcOf(output uint32) (randr.Crtc, error) {
	info, err := randr.GetOutputInfo(c.conn, randr.Output(output), xproto.TimeCurrentTime).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to get info of output %d: %w", output, err)
	}
	return info.Crtc, nil
}

func (c *xgbClient) CurrentMode(output uint32) (uint32, error) {
	crtc, err := c.crtcOf(output)
	if err != nil || crtc == 0 {
		return 0, err
	}
	info, err := randr.GetCrtcInfo(c.conn, crtc, xproto.TimeCurrentTime).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to get crtc %d: %w", crtc, err)
	}
	return uint32(info.Mode), nil
}

func (c *xgbClient) SetMode(output, mode uint32) error {
	crtc, err := c.crtcOf(output)
	if err != nil {
		return err
	}
	if crtc == 0 {
		return fmt.Errorf("output %d has no crtc: %w", output, domain.ErrHdiNotSupported)
	}
	res, err := randr.GetScreenResourcesCurrent(c.conn, c.root).Reply()
	if err != nil {
		return fmt.Errorf("failed to get screen resources: %w", err)
	}
	info, err := randr.GetCrtcInfo(c.conn, crtc, res.ConfigTimestamp).Reply()
	if err != nil {
		return fmt.Errorf("failed to get crtc %d: %w", crtc, err)
	}

	reply, err := randr.SetCrtcConfig(c.conn, crtc, xproto.TimeCurrentTime, res.ConfigTimestamp,
		info.X, info.Y, randr.Mode(mode), info.Rotation, info.Outputs).Reply()
	if err != nil {
		return fmt.Errorf("failed to set crtc config: %w", err)
	}
	if reply.Status != randr.SetConfigSuccess {
		return fmt.Errorf("set crtc config returned status %d", reply.Status)
	}
	return nil
}

// atom resolves an existing atom, caching the result
func (c *xgbClient) atom(name string) (xproto.Atom, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if a, ok := c.atoms[name]; ok {
		return a, nil
	}
	reply, err := xproto.InternAtom(c.conn, true, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to intern atom %s: %w", name, err)
	}
	if reply.Atom == xproto.AtomNone {
		return 0, fmt.Errorf("%s: %w", name, ErrPropertyNotFound)
	}
	c.atoms[name] = reply.Atom
	return reply.Atom, nil
}

func (c *xgbClient) property(output uint32, atom xproto.Atom) (*randr.GetOutputPropertyReply, error) {
	reply, err := randr.GetOutputProperty(c.conn, randr.Output(output), atom, xproto.AtomAny,
		0, maxPropertyLength, false, false).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get output property: %w", err)
	}
	if reply.Format == 0 || reply.NumItems == 0 {
		return nil, ErrPropertyNotFound
	}
	return reply, nil
}

func (c *xgbClient) OutputProperty(output uint32, name string) ([]byte, error) {
	atom, err := c.atom(name)
	if err != nil {
		return nil, err
	}
	reply, err := c.property(output, atom)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return reply.Data, nil
}

func (c *xgbClient) SetOutputProperty(output uint32, name string, value uint32) error {
	atom, err := c.atom(name)
	if err != nil {
		return err
	}
	if _, err := c.property(output, atom); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	buf := make([]byte, 4)
	xgb.Put32(buf, value)
	err = randr.ChangeOutputPropertyChecked(c.conn, randr.Output(output), atom, xproto.AtomInteger,
		32, xproto.PropModeReplace, 1, buf).Check()
	if err != nil {
		return fmt.Errorf("failed to change property %s: %w", name, err)
	}
	return nil
}

func (c *xgbClient) OutputProperties(output uint32) ([]domain.VendorProperty, error) {
	list, err := randr.ListOutputProperties(c.conn, randr.Output(output)).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to list output properties: %w", err)
	}

	props := make([]domain.VendorProperty, 0, len(list.Atoms))
	for _, atom := range list.Atoms {
		name, err := xproto.GetAtomName(c.conn, atom).Reply()
		if err != nil {
			return nil, fmt.Errorf("failed to get atom name %d: %w", atom, err)
		}
		prop := domain.VendorProperty{Name: name.Name, PropID: uint32(atom)}
		if reply, err := c.property(output, atom); err == nil {
			prop.Value = firstValue(reply.Format, reply.Data)
		}
		props = append(props, prop)
	}
	return props, nil
}

// firstValue decodes the first item of a property with the given bit format
func firstValue(format byte, data []byte) uint64 {
	switch {
	case format == 32 && len(data) >= 4:
		return uint64(xgb.Get32(data))
	case format == 16 && len(data) >= 2:
		return uint64(xgb.Get16(data))
	case len(data) >= 1:
		return uint64(data[0])
	}
	return 0
}

func (c *xgbClient) DPMSLevel() (uint16, bool, error) {
	if !c.dpms {
		return 0, false, fmt.Errorf("dpms: %w", domain.ErrHdiNotSupported)
	}
	info, err := dpms.Info(c.conn).Reply()
	if err != nil {
		return 0, false, fmt.Errorf("failed to query dpms: %w", err)
	}
	return info.PowerLevel, info.State, nil
}

func (c *xgbClient) ForceDPMSLevel(level uint16) error {
	if !c.dpms {
		return fmt.Errorf("dpms: %w", domain.ErrHdiNotSupported)
	}
	if err := dpms.EnableChecked(c.conn).Check(); err != nil {
		return fmt.Errorf("failed to enable dpms: %w", err)
	}
	if err := dpms.ForceLevelChecked(c.conn, level).Check(); err != nil {
		return fmt.Errorf("failed to force dpms level %d: %w", level, err)
	}
	return nil
}
