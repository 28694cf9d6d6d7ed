package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphixlang/interpreter/internal/backend"
)

// TestRenameCounterTermsAreMonotonicFromZero covers spec §8 property 7: the
// program-wide rename counter starts at 0 and strictly increases by one per
// Counter term evaluated, with no padding in its string form.
func TestRenameCounterTermsAreMonotonicFromZero(t *testing.T) {
	in, ib, _ := newTestInterpreter()
	declareImage(t, in, ib, "img", "photo.png", solidImage(2, 2, backend.ModeRGB))

	counterTerm := map[string]interface{}{"termKind": "COUNTER"}
	rename := mustNode(t, map[string]interface{}{
		"type": "Rename", "imageIdentifier": "img",
		"terms": []interface{}{counterTerm},
	})

	_, err := in.execStatement(rename)
	require.NoError(t, err)
	b, _ := in.Env.Get("img")
	assert.Equal(t, "0.png", b.Value.Image.Filename)

	_, err = in.execStatement(rename)
	require.NoError(t, err)
	b, _ = in.Env.Get("img")
	assert.Equal(t, "1.png", b.Value.Image.Filename)
}

// TestRenameUntaggedTermPrefersStringOverMetadata covers spec §9 open
// question 4: when a term with no STRING/COUNTER/METADATA kind (here only the
// generic "RenameTerm" tag) carries both StringValue and MetadataValue,
// string wins.
func TestRenameUntaggedTermPrefersStringOverMetadata(t *testing.T) {
	in, ib, _ := newTestInterpreter()
	declareImage(t, in, ib, "img", "photo.png", solidImage(5, 2, backend.ModeRGB))

	ambiguousTerm := map[string]interface{}{
		"type":          "RenameTerm",
		"stringValue":   "ignored",
		"metadataValue": map[string]interface{}{"type": "Metadata", "imageIdentifier": "img", "metadataType": "FWIDTH"},
	}
	rename := mustNode(t, map[string]interface{}{
		"type": "Rename", "imageIdentifier": "img",
		"terms": []interface{}{ambiguousTerm},
	})

	_, err := in.execStatement(rename)
	require.NoError(t, err)
	b, _ := in.Env.Get("img")
	assert.Equal(t, "ignored.png", b.Value.Image.Filename)
}

func TestRenameStringTermIsUsedVerbatim(t *testing.T) {
	in, ib, _ := newTestInterpreter()
	declareImage(t, in, ib, "img", "photo.png", solidImage(2, 2, backend.ModeRGB))

	term := map[string]interface{}{"termKind": "STRING", "stringValue": "vacation"}
	rename := mustNode(t, map[string]interface{}{
		"type": "Rename", "imageIdentifier": "img",
		"terms": []interface{}{term},
	})

	_, err := in.execStatement(rename)
	require.NoError(t, err)
	b, _ := in.Env.Get("img")
	assert.Equal(t, "vacation.png", b.Value.Image.Filename)
}
