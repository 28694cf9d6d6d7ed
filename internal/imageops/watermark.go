package imageops

import (
	stdimage "image"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/graphixlang/interpreter/internal/backend"
)

// Watermark draws centered text with a black drop shadow (+2,+2, alpha
// 128) followed by the foreground color at full alpha, directly onto img
// after switching it to RGBA mode, then restores the original mode (for a
// non-RGBA original, every alpha is reset to 255) (spec §4.4). Font size is
// min(w,h)/20. Text is rendered with the embedded Go Regular TrueType
// font via freetype, the scalable-text library the corpus carries,
// rather than a fixed-size bitmap face.
func Watermark(img *backend.Image, text, colorValue string, isHex bool) error {
	originalMode := img.Mode
	img.EnsureRGBA()

	bounds := img.Pix.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	minDim := w
	if h < minDim {
		minDim = h
	}
	fontSize := float64(minDim) / 20
	if fontSize < 1 {
		fontSize = 1
	}

	r, g, b := parseWatermarkColor(colorValue, isHex)

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: fontSize})
	defer face.Close()

	drawer := &font.Drawer{Face: face}
	textWidth := drawer.MeasureString(text).Ceil()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	textHeight := ascent + descent

	x := (w - textWidth) / 2
	y := (h-textHeight)/2 + ascent

	draw := func(col color.Color, dx, dy int) error {
		c := freetype.NewContext()
		c.SetDPI(72)
		c.SetFont(f)
		c.SetFontSize(fontSize)
		c.SetClip(img.Pix.Bounds())
		c.SetDst(img.Pix)
		c.SetSrc(stdimage.NewUniform(col))
		_, err := c.DrawString(text, fixed.Point26_6{X: fixed.I(dx), Y: fixed.I(dy)})
		return err
	}

	if err := draw(color.NRGBA{R: 0, G: 0, B: 0, A: 128}, x+2, y+2); err != nil {
		return err
	}
	if err := draw(color.NRGBA{R: r, G: g, B: b, A: 255}, x, y); err != nil {
		return err
	}

	if originalMode != backend.ModeRGBA {
		img.Mode = originalMode
		for i := 3; i < len(img.Pix.Pix); i += 4 {
			img.Pix.Pix[i] = 255
		}
	}
	return nil
}

// parseWatermarkColor parses either a hex RRGGBB string or an
// "rrr,ggg,bbb" / "rrrgggbbb" decimal triple (spec §4.4).
func parseWatermarkColor(value string, isHex bool) (r, g, b uint8) {
	if isHex {
		hex := strings.TrimPrefix(value, "#")
		if len(hex) != 6 {
			return 0, 0, 0
		}
		rv, _ := strconv.ParseUint(hex[0:2], 16, 8)
		gv, _ := strconv.ParseUint(hex[2:4], 16, 8)
		bv, _ := strconv.ParseUint(hex[4:6], 16, 8)
		return uint8(rv), uint8(gv), uint8(bv)
	}
	if strings.Contains(value, ",") {
		parts := strings.Split(value, ",")
		if len(parts) != 3 {
			return 0, 0, 0
		}
		rv, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
		gv, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
		bv, _ := strconv.Atoi(strings.TrimSpace(parts[2]))
		return clampByteInt(rv), clampByteInt(gv), clampByteInt(bv)
	}
	if len(value) == 9 {
		rv, _ := strconv.Atoi(value[0:3])
		gv, _ := strconv.Atoi(value[3:6])
		bv, _ := strconv.Atoi(value[6:9])
		return clampByteInt(rv), clampByteInt(gv), clampByteInt(bv)
	}
	return 0, 0, 0
}

// ImageWatermark resizes mark to at most w/4 wide preserving its aspect
// ratio, clamps its alpha to transparency, then pastes it in the bottom
// right corner with a 10px margin (spec §4.4). img is mutated; mark is
// left untouched.
func ImageWatermark(img, mark *backend.Image, transparency int) {
	bounds := img.Pix.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	mBounds := mark.Pix.Bounds()
	mw, mh := mBounds.Dx(), mBounds.Dy()

	scaled := mark.Pix
	maxW := w / 4
	if maxW > 0 && mw > maxW {
		newH := mh * maxW / mw
		if newH < 1 {
			newH = 1
		}
		scaled = imaging.Resize(mark.Pix, maxW, newH, imaging.Lanczos)
	}

	overlay := imaging.Clone(scaled)
	clampedAlpha := clampByteInt(transparency)
	forEachPixel(overlay.Pix, func(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
		if a > clampedAlpha {
			a = clampedAlpha
		}
		return r, g, b, a
	})

	sw, sh := overlay.Bounds().Dx(), overlay.Bounds().Dy()
	margin := 10
	x := w - sw - margin
	y := h - sh - margin
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	img.EnsureRGBA()
	img.Pix = imaging.Overlay(img.Pix, overlay, stdimage.Pt(x, y), 1.0)
}
