package monitor

import (
	"github.com/genricoloni/screend/internal/domain"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

// NewScreenResolution returns the default size of virtual screens: the
// configured one, otherwise the primary display resolution detected at startup
func NewScreenResolution(logger *zap.Logger, cfg domain.Config) *domain.ScreenResolution {
	if res := cfg.VirtualResolution(); res.Width > 0 && res.Height > 0 {
		logger.Info("Virtual screen resolution configured",
			zap.Int("width", res.Width),
			zap.Int("height", res.Height))
		return &res
	}

	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		logger.Warn("No active displays detected, falling back to 1920x1080")
		return &domain.ScreenResolution{Width: 1920, Height: 1080}
	}

	// Use primary monitor (index 0)
	bounds := screenshot.GetDisplayBounds(0)
	res := &domain.ScreenResolution{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	logger.Info("Screen resolution detected",
		zap.Int("width", res.Width),
		zap.Int("height", res.Height))

	return res
}
