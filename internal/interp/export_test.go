package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphixlang/interpreter/internal/backend"
)

// TestExportToDirectoryUsesImageFilename covers spec §4.7's directory
// disambiguation rule: a trailing-separator or already-existing-directory
// destination appends the image's own filename.
func TestExportToDirectoryUsesImageFilename(t *testing.T) {
	in, ib, fs := newTestInterpreter()
	fs.addDir("renders", nil)
	declareImage(t, in, ib, "img", "shot.png", solidImage(2, 2, backend.ModeRGB))

	export := mustNode(t, map[string]interface{}{
		"type": "Export", "imageIdentifier": "img", "destinationPath": "renders", "keepOriginal": true,
	})
	_, err := in.execStatement(export)
	require.NoError(t, err)

	saved, ok := ib.saved["renders/shot.png"]
	require.True(t, ok)
	assert.Equal(t, "png", saved.format)
}

// TestExportToExplicitFilePathUsesThatPath covers the file-path branch: a
// destination without a trailing separator that isn't itself a directory is
// treated as the exact target path, and its format follows the target's own
// extension rather than the image's in-memory one.
func TestExportToExplicitFilePathUsesThatPath(t *testing.T) {
	in, ib, _ := newTestInterpreter()
	declareImage(t, in, ib, "img", "shot.png", solidImage(2, 2, backend.ModeRGB))

	export := mustNode(t, map[string]interface{}{
		"type": "Export", "imageIdentifier": "img", "destinationPath": "archive/final.jpeg", "keepOriginal": true,
	})
	_, err := in.execStatement(export)
	require.NoError(t, err)

	saved, ok := ib.saved["archive/final.jpeg"]
	require.True(t, ok)
	assert.Equal(t, "jpeg", saved.format)
}

func TestExportKeepOriginalFalseDeletesSource(t *testing.T) {
	in, ib, fs := newTestInterpreter()
	fs.addFile("shot.png")
	declareImage(t, in, ib, "img", "shot.png", solidImage(2, 2, backend.ModeRGB))

	export := mustNode(t, map[string]interface{}{
		"type": "Export", "imageIdentifier": "img", "destinationPath": "out/shot.png", "keepOriginal": false,
	})
	_, err := in.execStatement(export)
	require.NoError(t, err)
	assert.True(t, fs.removed["shot.png"])
}
