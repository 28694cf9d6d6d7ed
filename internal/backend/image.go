// Package backend implements the ImageBackend, MetadataBackend, and
// FileSystem traits that internal/interp and internal/imageops consume
// (spec §6). The interpreter core never imports a codec or OS package
// directly; it only ever talks to these interfaces, so a test can swap in a
// fake without touching the interpreter.
package backend

import (
	"bytes"
	stdimage "image"
	"image/draw"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ColorMode mirrors the PIL-style mode tags the original interpreter
// switches on: RGB, RGBA, L (grayscale), and P (palette/quantized).
type ColorMode string

const (
	ModeRGB   ColorMode = "RGB"
	ModeRGBA  ColorMode = "RGBA"
	ModeL     ColorMode = "L"
	ModePalette ColorMode = "P"
)

// Image is the opaque, owning handle a Binding's Image value carries
// (spec §3 ImageHandle). Pix is always materialized as NRGBA internally so
// every image operation can address channels directly; Mode records the
// logical color mode so operations that care (Opacity's "ensure RGBA",
// Compress's "restore original color mode") can recover it.
type Image struct {
	Pix    *stdimage.NRGBA
	Mode   ColorMode
	Format string // lowercase in-memory format tag: png, jpeg, webp, tiff, bmp
	EXIF   []byte // raw embedded EXIF/APP1 segment, nil if none
}

// Bounds returns the pixel bounds of the image.
func (img *Image) Bounds() stdimage.Rectangle {
	return img.Pix.Bounds()
}

// Clone deep-copies the pixel buffer so the copy can be mutated
// independently of the original.
func (img *Image) Clone() *Image {
	cp := *img
	cp.Pix = imaging.Clone(img.Pix)
	return &cp
}

// HasAlpha reports whether the image's logical mode carries an alpha
// channel.
func (img *Image) HasAlpha() bool {
	return img.Mode == ModeRGBA
}

// EnsureRGBA converts the image in place to RGBA mode if it is not already,
// per the "ensure RGBA" contract used by Opacity and ImageWatermark.
func (img *Image) EnsureRGBA() {
	if img.Mode == ModeRGBA {
		return
	}
	img.Mode = ModeRGBA
	for i := 3; i < len(img.Pix.Pix); i += 4 {
		img.Pix.Pix[i] = 255
	}
}

// ImageBackend is the abstract capability the interpreter core consumes for
// all raster I/O (spec §6). DefaultImageBackend is the production
// implementation; the interface exists so internal/interp and
// internal/imageops never name a concrete codec package.
type ImageBackend interface {
	Open(path string) (*Image, error)
	Save(img *Image, path, format string, quality int) error
	EncodeToMemory(img *Image, format string, quality int) ([]byte, error)
	DecodeFromMemory(data []byte) (*Image, error)
}

// DefaultImageBackend implements ImageBackend over
// github.com/disintegration/imaging (file decode), the stdlib png/jpeg and
// golang.org/x/image bmp/tiff encoders, and github.com/gen2brain/webp (WebP
// encode); resampling, rotation, cropping and filters live in
// internal/imageops, not here. Decode support for
// every recognized format (png/jpeg/webp/tiff/bmp) comes from imaging's own
// registered stdlib decoders plus golang.org/x/image's bmp/tiff decoders and
// webp's self-registration via image.RegisterFormat.
type DefaultImageBackend struct{}

// NewDefaultImageBackend constructs the production ImageBackend.
func NewDefaultImageBackend() *DefaultImageBackend {
	return &DefaultImageBackend{}
}

// Open loads an image from disk, detecting format by content (imaging.Open
// dispatches to image.Decode under the hood, which recognizes every format
// this backend also encodes).
func (b *DefaultImageBackend) Open(path string) (*Image, error) {
	src, err := imaging.Open(path, imaging.AutoOrientation(false))
	if err != nil {
		return nil, err
	}
	format := detectFormatByExt(path)
	return fromStdImage(src, format), nil
}

// Save encodes and writes img to path in format at the given quality.
func (b *DefaultImageBackend) Save(img *Image, path, format string, quality int) error {
	data, err := b.EncodeToMemory(img, format, quality)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// EncodeToMemory encodes img into an in-memory byte slice, used directly by
// Export and by the Compress/WebOptimize re-encode cycles.
func (b *DefaultImageBackend) EncodeToMemory(img *Image, format string, quality int) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "webp":
		err = webp.Encode(&buf, img.Pix, webp.Options{Lossless: false, Quality: quality})
	case "jpeg", "jpg":
		err = jpeg.Encode(&buf, toRGBAForJPEG(img.Pix), &jpeg.Options{Quality: quality})
	case "png":
		enc := &png.Encoder{CompressionLevel: png.DefaultCompression}
		err = enc.Encode(&buf, img.Pix)
	case "tiff":
		err = tiff.Encode(&buf, img.Pix, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		err = bmp.Encode(&buf, img.Pix)
	default:
		enc := &png.Encoder{CompressionLevel: png.DefaultCompression}
		err = enc.Encode(&buf, img.Pix)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeFromMemory decodes a byte slice produced by EncodeToMemory, used by
// the Compress operation's JPEG round trip.
func (b *DefaultImageBackend) DecodeFromMemory(data []byte) (*Image, error) {
	src, format, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return fromStdImage(src, format), nil
}

// toRGBAForJPEG flattens an NRGBA buffer onto an opaque RGBA image, since
// image/jpeg has no alpha channel; the premultiplied RGBA copy effectively
// flattens onto black. Compress relies on this implicit flatten (matching
// PIL's behavior of silently dropping alpha when saving as JPEG without an
// explicit composite); WebOptimize's LOSSY path flattens onto white first,
// so its pixels are already opaque when they get here.
func toRGBAForJPEG(src *stdimage.NRGBA) stdimage.Image {
	if !hasTransparency(src) {
		return src
	}
	dst := stdimage.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

func hasTransparency(src *stdimage.NRGBA) bool {
	for i := 3; i < len(src.Pix); i += 4 {
		if src.Pix[i] != 255 {
			return true
		}
	}
	return false
}

// fromStdImage wraps a decoded stdlib image.Image as our NRGBA-backed
// handle, inferring the logical color mode from whether it carries a real
// alpha channel.
func fromStdImage(src stdimage.Image, format string) *Image {
	nrgba := imaging.Clone(src)
	mode := ModeRGB
	if hasTransparency(nrgba) {
		mode = ModeRGBA
	}
	return &Image{Pix: nrgba, Mode: mode, Format: format}
}
