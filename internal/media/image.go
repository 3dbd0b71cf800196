package media

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

// InspectImage reads the image header and reports its format, dimensions and
// color mode without decoding pixel data.
func InspectImage(data []byte) (domain.ImageMetadata, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return domain.ImageMetadata{}, fmt.Errorf("%w: image: %w", domain.ErrDecode, err)
	}

	return domain.ImageMetadata{
		Format: strings.ToUpper(format),
		Size:   [2]int{cfg.Width, cfg.Height},
		Mode:   colorMode(cfg.ColorModel),
	}, nil
}

// colorMode maps a color model to the conventional mode names (RGB, L, P...).
func colorMode(m color.Model) string {
	if _, ok := m.(color.Palette); ok {
		return "P"
	}
	switch m {
	case color.YCbCrModel, color.NYCbCrAModel:
		return "RGB"
	case color.GrayModel:
		return "L"
	case color.Gray16Model:
		return "I;16"
	case color.RGBAModel, color.RGBA64Model:
		// PNG truecolor without an alpha channel decodes to premultiplied RGBA.
		return "RGB"
	case color.NRGBAModel, color.NRGBA64Model:
		return "RGBA"
	case color.CMYKModel:
		return "CMYK"
	case color.AlphaModel, color.Alpha16Model:
		return "A"
	}
	return "unknown"
}
