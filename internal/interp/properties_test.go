package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphixlang/interpreter/internal/backend"
)

// TestResizeWithAspectRatioKeepsWidthWithinOnePixel covers spec §8 property
// 6: deriving height from an AspectRatio string keeps the original width and
// lands within +/-1px of the exact ratio.
func TestResizeWithAspectRatioKeepsWidthWithinOnePixel(t *testing.T) {
	in, ib, _ := newTestInterpreter()
	declareImage(t, in, ib, "img", "a.png", solidImage(100, 200, backend.ModeRGB))

	resize := mustNode(t, map[string]interface{}{
		"type": "Resize", "imageIdentifier": "img", "aspectRatio": "16:9",
	})
	_, err := in.execStatement(resize)
	require.NoError(t, err)

	b, _ := in.Env.Get("img")
	w := b.Value.Image.Handle.Bounds().Dx()
	h := b.Value.Image.Handle.Bounds().Dy()
	assert.Equal(t, 100, w)
	wantH := 100 * 9 / 16
	assert.InDelta(t, wantH, h, 1)
}

// TestAddMetadataThenStripMetadataRoundTrips covers spec §8 property 9: an
// AddMetadata write is observable in both the MetadataLog audit trail and
// the raw EXIF blob, and StripMetadata(all) clears it back out.
func TestAddMetadataThenStripMetadataRoundTrips(t *testing.T) {
	in, ib, _ := newTestInterpreter()
	declareImage(t, in, ib, "img", "a.png", solidImage(2, 2, backend.ModeRGB))

	add := mustNode(t, map[string]interface{}{
		"type": "AddMetadata", "imageIdentifier": "img", "metadataType": "COPYRIGHT", "value": "2026 Acme",
	})
	_, err := in.execStatement(add)
	require.NoError(t, err)

	b, _ := in.Env.Get("img")
	assert.NotEmpty(t, b.Value.Image.Handle.EXIF)
	assert.Equal(t, "2026 Acme", b.Value.Image.MetadataLog["copyright"])

	mb := backend.NewTIFFMetadataBackend()
	data, ok := mb.LoadEXIF(b.Value.Image.Handle)
	require.True(t, ok)
	field, present := data.Fields[backend.TagCopyright]
	require.True(t, present)
	assert.Equal(t, "2026 Acme", field.ASCII())

	strip := mustNode(t, map[string]interface{}{
		"type": "StripMetadata", "imageIdentifier": "img", "stripAll": true,
	})
	_, err = in.execStatement(strip)
	require.NoError(t, err)

	b, _ = in.Env.Get("img")
	assert.Empty(t, b.Value.Image.Handle.EXIF)
}
