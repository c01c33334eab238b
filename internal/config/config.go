package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/genricoloni/screend/internal/domain"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = "~/.config/screend/config.yaml"
	defaultStateDB    = "~/.local/state/screend/screens.db"
	defaultMaskDir    = "~/.config/screend/masks"
	defaultDebounce   = 500 * time.Millisecond
	defaultSubsystem  = "backlight"
	defaultBlurRadius = 15.0
)

// rawConfig mirrors the YAML file. Pointers tell unset keys from zero values.
type rawConfig struct {
	Display          *string       `yaml:"display"`
	StateDB          *string       `yaml:"state_db"`
	Debounce         *string       `yaml:"debounce"`
	PowerOnAtInit    *bool         `yaml:"power_on_at_init"`
	ReviseActiveRect *bool         `yaml:"revise_active_rect"`
	MaskDir          *string       `yaml:"mask_dir"`
	MaskBlurRadius   *float64      `yaml:"mask_blur_radius"`
	Virtual          *rawVirtual   `yaml:"virtual"`
	Backlight        *rawBacklight `yaml:"backlight"`
}

type rawVirtual struct {
	ColorGamuts []string `yaml:"color_gamuts"`
	HDRFormats  []string `yaml:"hdr_formats"`
	Width       *int     `yaml:"width"`
	Height      *int     `yaml:"height"`
}

type rawBacklight struct {
	Subsystem *string `yaml:"subsystem"`
	Device    *string `yaml:"device"`
}

// AppConfig holds application configuration
type AppConfig struct {
	logger             *zap.Logger
	display            string
	stateDB            string
	maskDir            string
	maskBlurRadius     float64
	debounce           time.Duration
	options            domain.ScreenOptions
	virtualResolution  domain.ScreenResolution
	backlightSubsystem string
	backlightDevice    string
}

// NewAppConfig builds the configuration from the defaults, the YAML file
// named by SCREEND_CONFIG and the SCREEND_* environment, in that order
func NewAppConfig(logger *zap.Logger) (*AppConfig, error) {
	path := os.Getenv("SCREEND_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	path = expandPath(path)

	cfg := defaults(logger)
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	cfg.stateDB = expandPath(cfg.stateDB)
	cfg.maskDir = expandPath(cfg.maskDir)

	logger.Info("Configuration loaded",
		zap.String("file", path),
		zap.String("display", cfg.display),
		zap.String("stateDB", cfg.stateDB),
		zap.Duration("debounce", cfg.debounce),
		zap.Bool("powerOnAtInit", cfg.options.PowerOnAtInit),
		zap.Bool("reviseActiveRect", cfg.options.ReviseActiveRect))

	return cfg, nil
}

func defaults(logger *zap.Logger) *AppConfig {
	return &AppConfig{
		logger:             logger,
		display:            os.Getenv("DISPLAY"),
		stateDB:            defaultStateDB,
		maskDir:            defaultMaskDir,
		maskBlurRadius:     defaultBlurRadius,
		debounce:           defaultDebounce,
		options:            domain.DefaultScreenOptions(),
		backlightSubsystem: defaultSubsystem,
	}
}

// loadFile applies the YAML file at path. A missing file leaves the defaults.
func (c *AppConfig) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		c.logger.Debug("No configuration file, using defaults", zap.String("path", path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var raw rawConfig
	if err := decodeStrictYAML(data, &raw); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := c.apply(raw); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (c *AppConfig) apply(raw rawConfig) error {
	if raw.Display != nil {
		c.display = *raw.Display
	}
	if raw.StateDB != nil {
		c.stateDB = *raw.StateDB
	}
	if raw.MaskDir != nil {
		c.maskDir = *raw.MaskDir
	}
	if raw.MaskBlurRadius != nil {
		if *raw.MaskBlurRadius < 0 {
			return fmt.Errorf("mask_blur_radius must not be negative, got %g", *raw.MaskBlurRadius)
		}
		c.maskBlurRadius = *raw.MaskBlurRadius
	}
	if raw.Debounce != nil {
		d, err := parseDebounce(*raw.Debounce)
		if err != nil {
			return err
		}
		c.debounce = d
	}
	if raw.PowerOnAtInit != nil {
		c.options.PowerOnAtInit = *raw.PowerOnAtInit
	}
	if raw.ReviseActiveRect != nil {
		c.options.ReviseActiveRect = *raw.ReviseActiveRect
	}

	if v := raw.Virtual; v != nil {
		if v.ColorGamuts != nil {
			gamuts := make([]domain.ColorGamut, 0, len(v.ColorGamuts))
			for _, name := range v.ColorGamuts {
				gamut, err := domain.ParseColorGamut(name)
				if err != nil {
					return fmt.Errorf("virtual.color_gamuts: %w", err)
				}
				gamuts = append(gamuts, gamut)
			}
			c.options.VirtualColorGamuts = gamuts
		}
		if v.HDRFormats != nil {
			formats := make([]domain.HDRFormat, 0, len(v.HDRFormats))
			for _, name := range v.HDRFormats {
				format, err := domain.ParseHDRFormat(name)
				if err != nil {
					return fmt.Errorf("virtual.hdr_formats: %w", err)
				}
				formats = append(formats, format)
			}
			c.options.VirtualHDRFormats = formats
		}
		if v.Width != nil {
			if *v.Width < 0 {
				return fmt.Errorf("virtual.width must not be negative")
			}
			c.virtualResolution.Width = *v.Width
		}
		if v.Height != nil {
			if *v.Height < 0 {
				return fmt.Errorf("virtual.height must not be negative")
			}
			c.virtualResolution.Height = *v.Height
		}
	}

	if b := raw.Backlight; b != nil {
		if b.Subsystem != nil {
			c.backlightSubsystem = *b.Subsystem
		}
		if b.Device != nil {
			c.backlightDevice = *b.Device
		}
	}
	return nil
}

// loadEnv applies the SCREEND_* overrides
func (c *AppConfig) loadEnv() error {
	if v := os.Getenv("SCREEND_DISPLAY"); v != "" {
		c.display = v
	}
	if v := os.Getenv("SCREEND_STATE_DB"); v != "" {
		c.stateDB = v
	}
	if v := os.Getenv("SCREEND_MASK_DIR"); v != "" {
		c.maskDir = v
	}
	if v := os.Getenv("SCREEND_BACKLIGHT_DEVICE"); v != "" {
		c.backlightDevice = v
	}
	if v := os.Getenv("SCREEND_DEBOUNCE"); v != "" {
		d, err := parseDebounce(v)
		if err != nil {
			return fmt.Errorf("SCREEND_DEBOUNCE: %w", err)
		}
		c.debounce = d
	}
	return nil
}

func parseDebounce(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid debounce %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("debounce must be positive, got %s", d)
	}
	return d, nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}

// expandPath expands environment variables and a leading ~
func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return path
}

// Display returns the X display the backend connects to
func (c *AppConfig) Display() string {
	return c.display
}

// StateDBPath returns the location of the screen state database
func (c *AppConfig) StateDBPath() string {
	return c.stateDB
}

func (c *AppConfig) Debounce() time.Duration {
	return c.debounce
}

// ScreenOptions returns a copy of the screen settings
func (c *AppConfig) ScreenOptions() domain.ScreenOptions {
	opts := c.options
	opts.VirtualColorGamuts = append([]domain.ColorGamut(nil), c.options.VirtualColorGamuts...)
	opts.VirtualHDRFormats = append([]domain.HDRFormat(nil), c.options.VirtualHDRFormats...)
	return opts
}

// VirtualResolution returns the configured virtual screen size. A zero value
// means the size of the primary display is used instead.
func (c *AppConfig) VirtualResolution() domain.ScreenResolution {
	return c.virtualResolution
}

func (c *AppConfig) Backlight() (subsystem, device string) {
	return c.backlightSubsystem, c.backlightDevice
}

// MaskDir returns the directory relative mask sources are resolved against
func (c *AppConfig) MaskDir() string {
	return c.maskDir
}

// MaskBlurRadius returns the gaussian sigma applied to security masks. Zero
// disables the blur.
func (c *AppConfig) MaskBlurRadius() float64 {
	return c.maskBlurRadius
}
