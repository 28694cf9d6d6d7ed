package imageops

import (
	stdimage "image"

	"github.com/graphixlang/interpreter/internal/backend"
)

// SetFilter applies one of SEPIA/BW/NEGATIVE/SHARPEN to img in place
// (spec §4.4 SetFilter). Unknown filter names are a no-op; the caller is
// expected to have validated FilterType against ast kind constants.
func SetFilter(img *backend.Image, filter string) {
	switch filter {
	case "SEPIA":
		sepia(img)
	case "BW":
		blackAndWhite(img)
	case "NEGATIVE":
		negative(img)
	case "SHARPEN":
		sharpen(img)
	}
}

// sepia applies the fixed linear sepia matrix used by the original
// interpreter, clamping each channel to 255 (coefficients are all
// nonnegative, so no lower clamp is reachable).
func sepia(img *backend.Image) {
	forEachPixel(img.Pix.Pix, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		rf, gf, bf := float64(r), float64(g), float64(b)
		nr := 0.393*rf + 0.769*gf + 0.189*bf
		ng := 0.349*rf + 0.686*gf + 0.168*bf
		nb := 0.272*rf + 0.534*gf + 0.131*bf
		return clampByte(nr), clampByte(ng), clampByte(nb), a
	})
}

// blackAndWhite converts to luminance, then writes that luminance back into
// all three RGB channels ("convert to luminance then back to RGB").
func blackAndWhite(img *backend.Image) {
	forEachPixel(img.Pix.Pix, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		lum := clampByte(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
		return lum, lum, lum, a
	})
}

// negative inverts the RGB channels, leaving alpha untouched.
func negative(img *backend.Image) {
	forEachPixel(img.Pix.Pix, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		return 255 - r, 255 - g, 255 - b, a
	})
}

// sharpen applies PIL's ImageFilter.SHARPEN 3x3 convolution kernel
// (center 32, the four edge-adjacent neighbors -2 each, the four
// corner-adjacent neighbors -2 each, normalized by 16), matching the
// original interpreter's use of that predefined PIL filter.
var sharpenKernel = [3][3]float64{
	{-2, -2, -2},
	{-2, 32, -2},
	{-2, -2, -2},
}

const sharpenScale = 16.0

func sharpen(img *backend.Image) {
	src := img.Pix
	bounds := src.Bounds()
	out := stdimage.NewNRGBA(bounds)
	copy(out.Pix, src.Pix)

	w, h := bounds.Dx(), bounds.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var rsum, gsum, bsum float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					sx := clampCoord(x+kx, w)
					sy := clampCoord(y+ky, h)
					r, g, b, _ := pixelAt(src, sx, sy)
					weight := sharpenKernel[ky+1][kx+1]
					rsum += weight * float64(r)
					gsum += weight * float64(g)
					bsum += weight * float64(b)
				}
			}
			_, _, _, a := pixelAt(src, x, y)
			setPixelAt(out, x, y, clampByte(rsum/sharpenScale), clampByte(gsum/sharpenScale), clampByte(bsum/sharpenScale), a)
		}
	}
	img.Pix = out
}

func clampCoord(v, max int) int {
	if v < 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}

func pixelAt(img *stdimage.NRGBA, x, y int) (r, g, b, a uint8) {
	i := img.PixOffset(x+img.Rect.Min.X, y+img.Rect.Min.Y)
	p := img.Pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

func setPixelAt(img *stdimage.NRGBA, x, y int, r, g, b, a uint8) {
	i := img.PixOffset(x+img.Rect.Min.X, y+img.Rect.Min.Y)
	p := img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = r, g, b, a
}
