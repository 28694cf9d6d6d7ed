package imageops

import (
	"math"

	"github.com/graphixlang/interpreter/internal/backend"
)

// Hue rotates every pixel's hue by (HueValue mod 360)/360 of the color
// wheel via an RGB->HSV->RGB round trip (spec §4.4), ported directly from
// the original interpreter's per-pixel colorsys usage rather than
// approximated with a matrix transform.
func Hue(img *backend.Image, hueValue float64) {
	shift := math.Mod(hueValue, 360)
	if shift < 0 {
		shift += 360
	}
	shift /= 360

	forEachPixel(img.Pix.Pix, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		h, s, v := rgbToHSV(r, g, b)
		h = math.Mod(h+shift, 1.0)
		if h < 0 {
			h += 1.0
		}
		nr, ng, nb := hsvToRGB(h, s, v)
		return nr, ng, nb, a
	})
}

func rgbToHSV(r, g, b uint8) (h, s, v float64) {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	v = max
	delta := max - min
	if max == 0 {
		s = 0
	} else {
		s = delta / max
	}
	if delta == 0 {
		h = 0
		return
	}
	switch max {
	case rf:
		h = math.Mod((gf-bf)/delta, 6)
	case gf:
		h = (bf-rf)/delta + 2
	default:
		h = (rf-gf)/delta + 4
	}
	h /= 6
	if h < 0 {
		h += 1.0
	}
	return
}

func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	if s == 0 {
		c := clampByte(v * 255)
		return c, c, c
	}
	h6 := h * 6
	i := math.Floor(h6)
	f := h6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var rf, gf, bf float64
	switch int(i) % 6 {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	default:
		rf, gf, bf = v, p, q
	}
	return clampByte(rf * 255), clampByte(gf * 255), clampByte(bf * 255)
}
