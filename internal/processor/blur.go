package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support

	"github.com/disintegration/imaging"
	"github.com/genricoloni/screend/internal/domain"
	"go.uber.org/zap"
)

// ProcessorConfig holds configuration for mask rendering
type ProcessorConfig struct {
	BlurRadius float64 // 0 keeps the mask sharp
}

// MaskProcessor fits security mask images to a screen and blurs them
type MaskProcessor struct {
	logger *zap.Logger
	config ProcessorConfig
}

var _ domain.MaskRenderer = (*MaskProcessor)(nil)

// NewMaskProcessor creates a new blur-based mask renderer using the
// configured blur radius
func NewMaskProcessor(logger *zap.Logger, cfg domain.Config) *MaskProcessor {
	return &MaskProcessor{
		logger: logger,
		config: ProcessorConfig{
			BlurRadius: cfg.MaskBlurRadius(),
		},
	}
}

// Render decodes imageData and crops it to cover width x height around its
// center, then applies the blur
func (p *MaskProcessor) Render(ctx context.Context, imageData []byte, width, height int) (*domain.PixelMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid mask size: %dx%d", width, height)
	}

	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Validate image dimensions to prevent division by zero
	bounds := img.Bounds()
	if bounds.Dy() == 0 || bounds.Dx() == 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	p.logger.Debug("Fitting mask", zap.Int("w", width), zap.Int("h", height))
	mask := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
	if p.config.BlurRadius > 0 {
		mask = imaging.Blur(mask, p.config.BlurRadius)
	}

	p.logger.Debug("Mask rendered successfully",
		zap.Int("source_w", bounds.Dx()),
		zap.Int("source_h", bounds.Dy()))
	return &domain.PixelMap{Width: width, Height: height, Image: mask}, nil
}
