package imageops

import (
	"path/filepath"
	"strings"

	"github.com/graphixlang/interpreter/internal/backend"
)

// Convert changes only the bound filename's extension to TargetFormat;
// the actual re-encode happens later, at export (spec §4.4).
func Convert(filename, targetFormat string) string {
	_, ext := backend.NormalizeFormat(targetFormat)
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return base + ext
}

// WebOptimize re-encodes img for the web: LOSSLESS round-trips through PNG
// at the backend's default compression level (no maximum-compression
// setting is applied, and the pixels come back unchanged) and tags the
// format as png; LOSSY flattens any alpha onto a white background then
// re-encodes JPEG at quality (spec §4.4).
func WebOptimize(ib backend.ImageBackend, img *backend.Image, lossless bool, quality int) error {
	if lossless {
		data, err := ib.EncodeToMemory(img, "png", 0)
		if err != nil {
			return err
		}
		decoded, err := ib.DecodeFromMemory(data)
		if err != nil {
			return err
		}
		img.Pix = decoded.Pix
		img.Format = "png"
		return nil
	}

	if img.Mode == backend.ModeRGBA {
		flattenOntoWhite(img)
	}
	data, err := ib.EncodeToMemory(img, "jpeg", quality)
	if err != nil {
		return err
	}
	decoded, err := ib.DecodeFromMemory(data)
	if err != nil {
		return err
	}
	img.Pix = decoded.Pix
	img.Mode = backend.ModeRGB
	img.Format = "jpeg"
	return nil
}

func flattenOntoWhite(img *backend.Image) {
	forEachPixel(img.Pix.Pix, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		if a == 255 {
			return r, g, b, a
		}
		af := float64(a) / 255
		nr := float64(r)*af + 255*(1-af)
		ng := float64(g)*af + 255*(1-af)
		nb := float64(b)*af + 255*(1-af)
		return clampByte(nr), clampByte(ng), clampByte(nb), 255
	})
}
