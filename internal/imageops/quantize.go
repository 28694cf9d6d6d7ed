package imageops

import (
	"sort"

	"github.com/graphixlang/interpreter/internal/backend"
)

// quantColor is a bare RGB triple used only by the median-cut quantizer.
type quantColor struct{ r, g, b uint8 }

type colorBucket []quantColor

// Quantize reduces the image to at most Colors distinct RGB colors via
// median-cut, then maps every pixel to the nearest bucket average, preserving
// alpha exactly (spec §4.4; original_source's visit_quantize calls PIL's
// Image.quantize then converts back to the original mode — RGBA stays
// RGBA, alpha untouched). No example repo in the pack carries a color
// quantization library, so median-cut is implemented directly over
// image/color's RGB space.
func Quantize(img *backend.Image, colors int) {
	if colors < 1 {
		colors = 1
	}
	pix := img.Pix.Pix
	n := len(pix) / 4
	if n == 0 {
		return
	}

	samples := make(colorBucket, n)
	for i := 0; i < n; i++ {
		samples[i] = quantColor{pix[i*4], pix[i*4+1], pix[i*4+2]}
	}

	buckets := medianCut(samples, colors)

	palette := make(colorBucket, len(buckets))
	for i, bucket := range buckets {
		palette[i] = averageColor(bucket)
	}

	for i := 0; i < n; i++ {
		s := samples[i]
		best := 0
		bestDist := colorDist(s, palette[0])
		for j := 1; j < len(palette); j++ {
			if d := colorDist(s, palette[j]); d < bestDist {
				bestDist = d
				best = j
			}
		}
		c := palette[best]
		pix[i*4], pix[i*4+1], pix[i*4+2] = c.r, c.g, c.b
	}
}

func medianCut(samples colorBucket, targetColors int) []colorBucket {
	buckets := []colorBucket{samples}
	for len(buckets) < targetColors {
		idx, axis := widestBucket(buckets)
		if idx < 0 {
			break
		}
		bucket := buckets[idx]
		if len(bucket) < 2 {
			break
		}
		sortBucketByAxis(bucket, axis)
		mid := len(bucket) / 2
		left := append(colorBucket(nil), bucket[:mid]...)
		right := append(colorBucket(nil), bucket[mid:]...)
		rest := append([]colorBucket{}, buckets[idx+1:]...)
		buckets = append(buckets[:idx], append([]colorBucket{left, right}, rest...)...)
	}
	return buckets
}

func widestBucket(buckets []colorBucket) (int, int) {
	best := -1
	bestRange := -1
	bestAxis := 0
	for i, b := range buckets {
		if len(b) < 2 {
			continue
		}
		axis, rng := widestAxis(b)
		if rng > bestRange {
			bestRange = rng
			best = i
			bestAxis = axis
		}
	}
	return best, bestAxis
}

func widestAxis(bucket colorBucket) (axis int, rng int) {
	minR, maxR := 255, 0
	minG, maxG := 255, 0
	minB, maxB := 255, 0
	for _, c := range bucket {
		if int(c.r) < minR {
			minR = int(c.r)
		}
		if int(c.r) > maxR {
			maxR = int(c.r)
		}
		if int(c.g) < minG {
			minG = int(c.g)
		}
		if int(c.g) > maxG {
			maxG = int(c.g)
		}
		if int(c.b) < minB {
			minB = int(c.b)
		}
		if int(c.b) > maxB {
			maxB = int(c.b)
		}
	}
	rR, rG, rB := maxR-minR, maxG-minG, maxB-minB
	switch {
	case rR >= rG && rR >= rB:
		return 0, rR
	case rG >= rR && rG >= rB:
		return 1, rG
	default:
		return 2, rB
	}
}

func sortBucketByAxis(bucket colorBucket, axis int) {
	sort.Slice(bucket, func(i, j int) bool {
		switch axis {
		case 0:
			return bucket[i].r < bucket[j].r
		case 1:
			return bucket[i].g < bucket[j].g
		default:
			return bucket[i].b < bucket[j].b
		}
	})
}

func averageColor(bucket colorBucket) quantColor {
	var sumR, sumG, sumB int
	for _, c := range bucket {
		sumR += int(c.r)
		sumG += int(c.g)
		sumB += int(c.b)
	}
	n := len(bucket)
	if n == 0 {
		return quantColor{}
	}
	return quantColor{
		uint8(sumR / n),
		uint8(sumG / n),
		uint8(sumB / n),
	}
}

func colorDist(a, b quantColor) int {
	dr := int(a.r) - int(b.r)
	dg := int(a.g) - int(b.g)
	db := int(a.b) - int(b.b)
	return dr*dr + dg*dg + db*db
}
