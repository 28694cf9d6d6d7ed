package imageops

import (
	"github.com/disintegration/imaging"

	"github.com/graphixlang/interpreter/internal/backend"
)

// Pixelate mosaics the image with a block size of
// max(1, min(w,h)/(101-value)) (spec §4.4, Open Question 1's clamp
// resolution), downscaling with nearest-neighbor sampling then upscaling
// back to the original dimensions, matching PIL's resize-down/resize-up
// pixelation approach. The block grows with value: at 100 it equals the
// shorter side, so that side collapses to a single block.
func Pixelate(img *backend.Image, value float64) {
	bounds := img.Pix.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return
	}

	block := blockSize(w, h, value)

	smallW := w / block
	if smallW < 1 {
		smallW = 1
	}
	smallH := h / block
	if smallH < 1 {
		smallH = 1
	}

	down := imaging.Resize(img.Pix, smallW, smallH, imaging.NearestNeighbor)
	up := imaging.Resize(down, w, h, imaging.NearestNeighbor)
	img.Pix = up
}

func blockSize(w, h int, value float64) int {
	minDim := w
	if h < minDim {
		minDim = h
	}
	denom := 101 - value
	if denom <= 0 {
		denom = 1
	}
	block := int(minDim / int(denom))
	if block < 1 {
		block = 1
	}
	return block
}
