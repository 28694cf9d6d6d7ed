package imageops

import (
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/graphixlang/interpreter/internal/backend"
)

// Rotate turns the image 90 degrees; LEFT is counter-clockwise, RIGHT is
// clockwise (spec §4.4).
func Rotate(img *backend.Image, direction string) {
	switch strings.ToUpper(direction) {
	case "LEFT":
		img.Pix = imaging.Rotate90(img.Pix)
	case "RIGHT":
		img.Pix = imaging.Rotate270(img.Pix)
	}
}

// Crop cuts a centered width x height window out of the image, clamping
// each requested dimension to the current one if it would otherwise
// exceed it (spec §4.4).
func Crop(img *backend.Image, width, height int) {
	bounds := img.Pix.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if width > w || width <= 0 {
		width = w
	}
	if height > h || height <= 0 {
		height = h
	}
	img.Pix = imaging.CropCenter(img.Pix, width, height)
}

// ResizeParams bundles the several mutually exclusive ways a Resize
// operation's node can specify target dimensions (spec §4.4).
type ResizeParams struct {
	Width             int
	Height            int
	HasWidth          bool
	HasHeight         bool
	AspectRatio       string
	IgnoreAspectRatio bool
}

// Resize scales img per the rules in spec §4.4: an AspectRatio string
// keeps the current width and derives height from it (falling back to
// deriving width from the current height if that derived height would
// exceed it); explicit Width+Height either maintain the original ratio
// (scaling by the smaller of the two requested ratios) or resize exactly
// when IgnoreAspectRatio is set.
func Resize(img *backend.Image, p ResizeParams) {
	bounds := img.Pix.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return
	}

	var targetW, targetH int

	switch {
	case p.AspectRatio != "":
		a, b, ok := parseAspectRatio(p.AspectRatio)
		if !ok || a == 0 {
			return
		}
		targetW = w
		targetH = w * b / a
		if targetH > h {
			targetH = h
			targetW = h * a / b
		}
	case p.IgnoreAspectRatio && p.HasWidth && p.HasHeight:
		targetW, targetH = p.Width, p.Height
	case p.HasWidth && p.HasHeight:
		wRatio := float64(p.Width) / float64(w)
		hRatio := float64(p.Height) / float64(h)
		scale := wRatio
		if hRatio < scale {
			scale = hRatio
		}
		targetW = int(float64(w) * scale)
		targetH = int(float64(h) * scale)
	case p.HasWidth:
		targetW = p.Width
		targetH = h * p.Width / w
	case p.HasHeight:
		targetH = p.Height
		targetW = w * p.Height / h
	default:
		return
	}

	if targetW < 1 {
		targetW = 1
	}
	if targetH < 1 {
		targetH = 1
	}
	img.Pix = imaging.Resize(img.Pix, targetW, targetH, imaging.Lanczos)
}

func parseAspectRatio(s string) (a, b int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
	b, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errA != nil || errB != nil {
		return 0, 0, false
	}
	return a, b, true
}

// Orientation rotates the image into LANDSCAPE or PORTRAIT only if it
// isn't already in that orientation; a square image is always a no-op
// (spec §4.4, Open Question 2).
func Orientation(img *backend.Image, target string) {
	bounds := img.Pix.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == h {
		return
	}
	isLandscape := w > h
	switch strings.ToUpper(target) {
	case "LANDSCAPE":
		if !isLandscape {
			img.Pix = imaging.Rotate90(img.Pix)
		}
	case "PORTRAIT":
		if isLandscape {
			img.Pix = imaging.Rotate270(img.Pix)
		}
	}
}
