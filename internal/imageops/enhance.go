package imageops

import (
	"math"
	"math/rand"

	"github.com/graphixlang/interpreter/internal/backend"
)

// Brightness scales every RGB channel by value/100 (1.0 = identity),
// matching PIL ImageEnhance.Brightness's multiplicative semantics rather
// than an additive percentage (spec §4.4).
func Brightness(img *backend.Image, value float64) {
	factor := value / 100.0
	forEachPixel(img.Pix.Pix, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		return clampByte(float64(r) * factor), clampByte(float64(g) * factor), clampByte(float64(b) * factor), a
	})
}

// Contrast blends every pixel toward the image's mean luminance by
// factor = value/100, matching PIL ImageEnhance.Contrast: a factor of 1.0
// is identity, 0.0 collapses to flat gray, >1.0 stretches contrast.
func Contrast(img *backend.Image, value float64) {
	factor := value / 100.0
	mean := meanLuminance(img.Pix.Pix)
	forEachPixel(img.Pix.Pix, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		nr := mean + (float64(r)-mean)*factor
		ng := mean + (float64(g)-mean)*factor
		nb := mean + (float64(b)-mean)*factor
		return clampByte(nr), clampByte(ng), clampByte(nb), a
	})
}

func meanLuminance(pix []uint8) float64 {
	var sum float64
	count := 0
	for i := 0; i+3 < len(pix); i += 4 {
		sum += 0.299*float64(pix[i]) + 0.587*float64(pix[i+1]) + 0.114*float64(pix[i+2])
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Round(sum / float64(count))
}

// Opacity ensures the image is RGBA, then multiplies alpha by value/100
// (spec §4.4).
func Opacity(img *backend.Image, value float64) {
	img.EnsureRGBA()
	factor := value / 100.0
	forEachPixel(img.Pix.Pix, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		return r, g, b, clampByte(float64(a) * factor)
	})
}

// Noise adds additive uniform noise in [-L, +L], L = round(value*2.55), to
// each RGB channel, clamping to the valid range (spec §4.4). Alpha is
// untouched.
func Noise(img *backend.Image, value float64) {
	level := int(math.Round(value * 2.55))
	if level <= 0 {
		return
	}
	forEachPixel(img.Pix.Pix, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		dr := rand.Intn(2*level+1) - level
		dg := rand.Intn(2*level+1) - level
		db := rand.Intn(2*level+1) - level
		return clampByteInt(int(r) + dr), clampByteInt(int(g) + dg), clampByteInt(int(b) + db), a
	})
}
