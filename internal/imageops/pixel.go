// Package imageops implements every GraphixLang image operation from
// spec §4.4: filters, enhancers, geometry, watermarks, metadata edits, and
// rename. Each function takes and mutates a *backend.Image, the same
// in-memory handle Binding carries, mirroring the one-operation-per-call
// shape of the teacher's pkg/neta/library/image, but replacing govips calls
// with direct pixel-buffer math so the exact PIL-derived semantics in
// original_source/interpreter.py are preserved rather than approximated by
// a generic image library's own enhancer functions.
package imageops

import "math"

// clampByte rounds and clamps a float channel value to [0, 255].
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// clampByteInt clamps an int channel value to [0, 255].
func clampByteInt(v int) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// forEachPixel calls fn for every pixel's (r,g,b,a) in an NRGBA buffer,
// replacing the channel values with fn's return.
func forEachPixel(pix []uint8, fn func(r, g, b, a uint8) (uint8, uint8, uint8, uint8)) {
	for i := 0; i+3 < len(pix); i += 4 {
		r, g, b, a := fn(pix[i], pix[i+1], pix[i+2], pix[i+3])
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
}
