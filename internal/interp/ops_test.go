package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphixlang/interpreter/internal/ast"
	"github.com/graphixlang/interpreter/internal/backend"
	"github.com/graphixlang/interpreter/internal/value"
)

func declareImage(t *testing.T, in *Interpreter, ib *fakeImageBackend, identifier, path string, img *backend.Image) {
	t.Helper()
	ib.register(path, img)
	in.Env.Declare(identifier, "IMAGE", value.FromImage(value.Image{
		Handle:      img.Clone(),
		SourcePath:  &path,
		Filename:    path,
		MetadataLog: map[string]string{},
	}))
}

func TestImageOperationOnUnknownIdentifierFails(t *testing.T) {
	in, _, _ := newTestInterpreter()
	op := mustNode(t, map[string]interface{}{
		"type": "SetFilter", "imageIdentifier": "missing", "filterType": ast.FilterNegative,
	})
	_, err := in.execStatement(op)
	require.Error(t, err)
	ierr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindUnknownIdentifier, ierr.Kind)
}

// TestNegativeFilterAppliedTwiceIsIdentity covers spec §8 law 2.
func TestNegativeFilterAppliedTwiceIsIdentity(t *testing.T) {
	in, ib, _ := newTestInterpreter()
	declareImage(t, in, ib, "img", "a.png", solidImage(4, 4, backend.ModeRGB))

	op := mustNode(t, map[string]interface{}{
		"type": "SetFilter", "imageIdentifier": "img", "filterType": ast.FilterNegative,
	})
	before, _ := in.Env.Get("img")
	origPix := append([]uint8(nil), before.Value.Image.Handle.Pix.Pix...)

	_, err := in.execStatement(op)
	require.NoError(t, err)
	_, err = in.execStatement(op)
	require.NoError(t, err)

	after, _ := in.Env.Get("img")
	assert.Equal(t, origPix, after.Value.Image.Handle.Pix.Pix)
	assert.Equal(t, 2, in.OperationCount())
}

// TestRotateRightThenLeftIsIdentity covers spec §8 law 3.
func TestRotateRightThenLeftIsIdentity(t *testing.T) {
	in, ib, _ := newTestInterpreter()
	declareImage(t, in, ib, "img", "a.png", solidImage(6, 4, backend.ModeRGB))

	right := mustNode(t, map[string]interface{}{"type": "Rotate", "imageIdentifier": "img", "direction": ast.DirRight})
	left := mustNode(t, map[string]interface{}{"type": "Rotate", "imageIdentifier": "img", "direction": ast.DirLeft})

	_, err := in.execStatement(right)
	require.NoError(t, err)
	b, _ := in.Env.Get("img")
	assert.Equal(t, 4, b.Value.Image.Handle.Bounds().Dx())
	assert.Equal(t, 6, b.Value.Image.Handle.Bounds().Dy())

	_, err = in.execStatement(left)
	require.NoError(t, err)
	b, _ = in.Env.Get("img")
	assert.Equal(t, 6, b.Value.Image.Handle.Bounds().Dx())
	assert.Equal(t, 4, b.Value.Image.Handle.Bounds().Dy())
}

// TestConvertChangesOnlyExtension covers spec §8 law 5: Convert rewrites the
// logical filename's extension and leaves the pixel buffer untouched.
func TestConvertChangesOnlyExtension(t *testing.T) {
	in, ib, _ := newTestInterpreter()
	declareImage(t, in, ib, "img", "photo.png", solidImage(2, 2, backend.ModeRGB))

	convert := mustNode(t, map[string]interface{}{
		"type": "Convert", "imageIdentifier": "img", "targetFormat": ast.FormatWEBP,
	})
	_, err := in.execStatement(convert)
	require.NoError(t, err)

	b, _ := in.Env.Get("img")
	assert.Equal(t, "photo.webp", b.Value.Image.Filename)
}

func TestBrightnessDispatchCountsOneOperation(t *testing.T) {
	in, ib, _ := newTestInterpreter()
	declareImage(t, in, ib, "img", "a.png", solidImage(3, 3, backend.ModeRGB))

	bright := mustNode(t, map[string]interface{}{"type": "Brightness", "imageIdentifier": "img", "value": float64(150)})
	_, err := in.execStatement(bright)
	require.NoError(t, err)
	assert.Equal(t, 1, in.OperationCount())
}
