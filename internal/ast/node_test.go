package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeKindLowercasesDispatchKey(t *testing.T) {
	n, ok := NewNode(map[string]interface{}{"Type": "BatchDeclaration"})
	require.True(t, ok)
	assert.Equal(t, "batchdeclaration", n.Kind())
}

func TestNodeFieldLowercaseWinsOverLegacy(t *testing.T) {
	n, ok := NewNode(map[string]interface{}{
		"value": "new",
		"Value": "legacy",
	})
	require.True(t, ok)
	assert.Equal(t, "new", n.StringField("value"))
}

func TestNodeFieldFallsBackToLegacySpelling(t *testing.T) {
	n, ok := NewNode(map[string]interface{}{"Identifier": "img1"})
	require.True(t, ok)
	assert.Equal(t, "img1", n.StringField("identifier"))
}

func TestBoolFieldParsesStringCaseInsensitively(t *testing.T) {
	n, _ := NewNode(map[string]interface{}{"isHexColor": "TRUE"})
	assert.True(t, n.BoolField("isHexColor", false))

	n2, _ := NewNode(map[string]interface{}{"isHexColor": "false"})
	assert.False(t, n2.BoolField("isHexColor", true))
}

func TestClassifyProgramShape(t *testing.T) {
	doc, err := Classify(map[string]interface{}{
		"Type": "ProgramNode",
		"statements": []interface{}{
			map[string]interface{}{"type": "imagedeclaration"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, ShapeProgram, doc.Shape)
	assert.Len(t, doc.Statements, 1)
}

func TestClassifyBlocksShape(t *testing.T) {
	doc, err := Classify(map[string]interface{}{
		"Blocks": []interface{}{
			map[string]interface{}{"Statements": []interface{}{
				map[string]interface{}{"type": "assignment"},
			}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, ShapeBlocks, doc.Shape)
	require.Len(t, doc.Blocks, 1)
	assert.Len(t, BlockStatements(doc.Blocks[0]), 1)
}

func TestClassifySingleNodeShape(t *testing.T) {
	doc, err := Classify(map[string]interface{}{"type": "imagedeclaration", "path": "a.png"})
	require.NoError(t, err)
	assert.Equal(t, ShapeSingle, doc.Shape)
}

func TestClassifyListShape(t *testing.T) {
	doc, err := Classify([]interface{}{
		map[string]interface{}{"type": "assignment"},
		"not-a-node",
		map[string]interface{}{"type": "export"},
	})
	require.NoError(t, err)
	require.Equal(t, ShapeList, doc.Shape)
	assert.Len(t, doc.Items, 2)
}
