package interp

import (
	"strings"

	"github.com/graphixlang/interpreter/internal/ast"
	"github.com/graphixlang/interpreter/internal/backend"
	"github.com/graphixlang/interpreter/internal/imageops"
	"github.com/graphixlang/interpreter/internal/value"
)

// numberField reads a numeric field, defaulting to 0 when absent.
func numberField(node ast.Node, lower string) float64 {
	f, _ := node.NumberField(lower)
	return f
}

// execImageOperation dispatches one of the §4.4 image-operation node kinds.
// Every handler resolves ImageIdentifier to an Image binding, mutates the
// backend handle in place, and returns the identifier on success.
func (in *Interpreter) execImageOperation(node ast.Node, kind string) (value.Value, error) {
	identifier := node.StringField("imageIdentifier")
	b, ok := in.Env.Get(identifier)
	if !ok || b.Value.Kind != value.KindImage {
		return value.Null, newErr(KindUnknownIdentifier, "operation %q on unknown image identifier %q", kind, identifier)
	}
	img := b.Value.Image
	handle := img.Handle

	var err error
	switch kind {
	case ast.KindSetFilter:
		imageops.SetFilter(handle, node.StringField("filterType"))
	case ast.KindBrightness:
		imageops.Brightness(handle, numberField(node, "value"))
	case ast.KindContrast:
		imageops.Contrast(handle, numberField(node, "value"))
	case ast.KindOpacity:
		imageops.Opacity(handle, numberField(node, "value"))
	case ast.KindNoise:
		imageops.Noise(handle, numberField(node, "value"))
	case ast.KindBlur:
		imageops.Blur(handle, numberField(node, "value"))
	case ast.KindPixelate:
		imageops.Pixelate(handle, numberField(node, "value"))
	case ast.KindQuantize:
		imageops.Quantize(handle, node.IntField("colors", 256))
	case ast.KindRotate:
		imageops.Rotate(handle, node.StringField("direction"))
	case ast.KindCrop:
		w, h, cerr := in.resolveDims(node)
		if cerr != nil {
			return value.Null, cerr
		}
		imageops.Crop(handle, w, h)
	case ast.KindResize:
		err = in.execResize(node, handle)
	case ast.KindOrientation:
		imageops.Orientation(handle, node.StringField("orientationType"))
	case ast.KindHue:
		imageops.Hue(handle, numberField(node, "hueValue"))
	case ast.KindCompress:
		err = imageops.Compress(in.Image, handle, node.IntField("quality", 85))
	case ast.KindConvert:
		img.Filename = imageops.Convert(img.Filename, node.StringField("targetFormat"))
	case ast.KindWebOptimize:
		err = in.execWebOptimize(node, handle)
	case ast.KindWatermark:
		err = imageops.Watermark(handle, node.StringField("text"), node.StringField("colorValue"), node.BoolField("isHexColor", false))
	case ast.KindImageWatermark:
		err = in.execImageWatermark(node, handle)
	case ast.KindStripMetadata:
		categories := rawListToStrings(node.RawListField("metadataTypes"))
		stripAll := node.BoolField("stripAll", false)
		if !stripAll && in.Metadata.Degraded() {
			in.Log.Warn("metadata backend is degraded; partial strip unsupported, stripping all metadata", "identifier", identifier)
		}
		imageops.StripMetadata(in.Metadata, handle, stripAll, categories, img.MetadataLog)
	case ast.KindAddMetadata:
		if in.Metadata.Degraded() {
			in.Log.Warn("metadata backend is degraded; AddMetadata unsupported, image is left without EXIF", "identifier", identifier)
		}
		imageops.AddMetadata(in.Metadata, handle, node.StringField("metadataType"), node.StringField("value"), img.MetadataLog)
	default:
		return value.Null, newErr(KindUnknownNodeKind, "unrecognized node kind %q", kind)
	}
	if err != nil {
		return value.Null, wrapErr(KindBackendError, err, "operation %q on %q", kind, identifier)
	}

	img.Handle = handle
	updated := b
	updated.Value = value.FromImage(img)
	in.Env.Set(identifier, updated)
	return value.Str(identifier), nil
}

func (in *Interpreter) resolveDims(node ast.Node) (int, int, error) {
	widthNode, hasW := node.NodeField("width")
	heightNode, hasH := node.NodeField("height")
	var w, h int
	if hasW {
		v, err := in.evalExpr(widthNode)
		if err != nil {
			return 0, 0, err
		}
		f, _ := v.AsFloat()
		w = int(f)
	}
	if hasH {
		v, err := in.evalExpr(heightNode)
		if err != nil {
			return 0, 0, err
		}
		f, _ := v.AsFloat()
		h = int(f)
	}
	return w, h, nil
}

func (in *Interpreter) execResize(node ast.Node, handle *backend.Image) error {
	w, h, err := in.resolveDims(node)
	if err != nil {
		return err
	}
	p := imageops.ResizeParams{
		Width:             w,
		Height:            h,
		HasWidth:          node.Has("width"),
		HasHeight:         node.Has("height"),
		AspectRatio:       node.StringField("aspectRatio"),
		IgnoreAspectRatio: node.BoolField("ignoreAspectRatio", false),
	}
	imageops.Resize(handle, p)
	return nil
}

func (in *Interpreter) execWebOptimize(node ast.Node, handle *backend.Image) error {
	mode := strings.ToUpper(node.StringField("mode"))
	lossless := mode == ast.WebOptimizeLossless
	if !node.Has("mode") {
		lossless = node.BoolField("isLossless", false)
	}
	return imageops.WebOptimize(in.Image, handle, lossless, node.IntField("quality", 85))
}

func (in *Interpreter) execImageWatermark(node ast.Node, handle *backend.Image) error {
	markID := node.StringField("watermarkImageIdentifier")
	mb, ok := in.Env.Get(markID)
	if !ok || mb.Value.Kind != value.KindImage {
		return newErr(KindUnknownIdentifier, "image watermark references unknown identifier %q", markID)
	}
	imageops.ImageWatermark(handle, mb.Value.Image.Handle, node.IntField("transparency", 255))
	return nil
}

func rawListToStrings(items []interface{}) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
