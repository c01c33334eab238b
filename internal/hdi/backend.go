package hdi

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/genricoloni/screend/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// X11Backend discovers physical outputs through RandR. The display
// connection is opened on first use.
type X11Backend struct {
	logger    *zap.Logger
	display   string
	runner    CommandRunner
	backlight Backlight
	dial      func(display string) (XClient, error)

	mu     sync.Mutex
	client XClient
}

var _ domain.DisplayBackend = (*X11Backend)(nil)

// NewX11Backend creates a backend for the configured display
func NewX11Backend(logger *zap.Logger, cfg domain.Config, runner CommandRunner, backlight Backlight) *X11Backend {
	return &X11Backend{
		logger:    logger,
		display:   cfg.Display(),
		runner:    runner,
		backlight: backlight,
		dial:      DialX,
	}
}

func (b *X11Backend) connect() (XClient, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.client != nil {
		return b.client, nil
	}
	client, err := b.dial(b.display)
	if err != nil {
		return nil, err
	}
	b.client = client
	b.logger.Info("Connected to display server", zap.String("display", b.display))
	return client, nil
}

// Outputs returns the connected outputs. Screen ids follow their order.
func (b *X11Backend) Outputs(ctx context.Context) ([]domain.HdiOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	client, err := b.connect()
	if err != nil {
		return nil, err
	}
	all, err := client.Outputs()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate outputs: %w", err)
	}

	var outputs []domain.HdiOutput
	for _, o := range all {
		if !o.Connected {
			b.logger.Debug("Skipping disconnected output", zap.String("name", o.Name))
			continue
		}
		out := &Output{backend: b, index: len(outputs), info: o}
		b.logger.Info("Output found",
			zap.Int("index", out.index),
			zap.String("name", o.Name),
			zap.Int("modes", len(o.Modes)))
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// Close releases the display connection and the backlight bus
func (b *X11Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	if b.client != nil {
		err = multierr.Append(err, b.client.Close())
		b.client = nil
	}
	if closer, ok := b.backlight.(io.Closer); ok {
		err = multierr.Append(err, closer.Close())
	}
	return err
}

// Output is one connected RandR output
type Output struct {
	backend *X11Backend
	index   int
	info    domain.DisplayOutput
}

var _ domain.HdiOutput = (*Output)(nil)

func (o *Output) ScreenID() domain.ScreenID {
	return domain.ScreenID(o.index)
}

// CreateDevice returns a driver handle bound to the backend connection
func (o *Output) CreateDevice() (domain.HdiDevice, error) {
	client, err := o.backend.connect()
	if err != nil {
		return nil, err
	}
	return &Device{
		logger:    o.backend.logger.With(zap.String("output", o.info.Name)),
		client:    client,
		runner:    o.backend.runner,
		backlight: o.backend.backlight,
		port:      uint8(o.index),
		output:    o.info,
	}, nil
}

func (o *Output) Dump(w io.Writer) {
	fmt.Fprintf(w, "output[%d]: name=%s, xid=%d, connected=%t, physical size=%dx%dmm, modes=%d\n",
		o.index, o.info.Name, o.info.ID, o.info.Connected, o.info.MmWidth, o.info.MmHeight, len(o.info.Modes))
}
