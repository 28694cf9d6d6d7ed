package imageops

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphixlang/interpreter/internal/backend"
)

func TestBrightnessIdentityAt100(t *testing.T) {
	img := solidImage(50, 100, 150, 255, 1, 1)
	Brightness(img, 100)
	assert.EqualValues(t, 50, img.Pix.Pix[0])
	assert.EqualValues(t, 100, img.Pix.Pix[1])
	assert.EqualValues(t, 150, img.Pix.Pix[2])
}

func TestBrightnessClampsAtCeiling(t *testing.T) {
	img := solidImage(200, 200, 200, 255, 1, 1)
	Brightness(img, 200)
	assert.EqualValues(t, 255, img.Pix.Pix[0])
}

func TestContrastIdentityAt100(t *testing.T) {
	img := solidImage(30, 60, 90, 255, 2, 2)
	Contrast(img, 100)
	assert.EqualValues(t, 30, img.Pix.Pix[0])
	assert.EqualValues(t, 60, img.Pix.Pix[1])
	assert.EqualValues(t, 90, img.Pix.Pix[2])
}

func TestContrastZeroCollapsesToMean(t *testing.T) {
	img := solidImage(10, 200, 30, 255, 1, 1)
	mean := meanLuminance(img.Pix.Pix)
	Contrast(img, 0)
	assert.InDelta(t, mean, float64(img.Pix.Pix[0]), 1)
	assert.InDelta(t, mean, float64(img.Pix.Pix[1]), 1)
	assert.InDelta(t, mean, float64(img.Pix.Pix[2]), 1)
}

func TestOpacityEnsuresRGBAAndScalesAlpha(t *testing.T) {
	img := solidImage(10, 20, 30, 255, 1, 1)
	Opacity(img, 50)
	assert.Equal(t, backend.ModeRGBA, img.Mode)
	assert.InDelta(t, 127, img.Pix.Pix[3], 1)
}

func TestNoiseZeroIsNoOp(t *testing.T) {
	img := solidImage(100, 100, 100, 255, 2, 2)
	before := append([]uint8(nil), img.Pix.Pix...)
	Noise(img, 0)
	assert.Equal(t, before, img.Pix.Pix)
}

func TestNoiseStaysWithinBounds(t *testing.T) {
	img := solidImage(10, 10, 245, 255, 4, 4)
	Noise(img, 100)
	for i := 0; i+3 < len(img.Pix.Pix); i += 4 {
		assert.GreaterOrEqual(t, img.Pix.Pix[i], uint8(0))
		assert.LessOrEqual(t, img.Pix.Pix[i+2], uint8(255))
	}
}
