package imageops

import (
	"github.com/graphixlang/interpreter/internal/backend"
)

// Compress round-trips the image through a JPEG encode/decode at the
// given quality via the image backend, then restores the original color
// mode (spec §4.4). JPEG has no alpha channel, so a prior RGBA image
// comes back fully opaque — the lossy-alpha outcome is intentional, not a
// bug (Open Question 3).
func Compress(ib backend.ImageBackend, img *backend.Image, quality int) error {
	originalMode := img.Mode

	data, err := ib.EncodeToMemory(img, "jpeg", quality)
	if err != nil {
		return err
	}
	decoded, err := ib.DecodeFromMemory(data)
	if err != nil {
		return err
	}

	img.Pix = decoded.Pix
	img.Mode = originalMode
	if originalMode == backend.ModeRGBA {
		img.EnsureRGBA()
	}
	return nil
}
