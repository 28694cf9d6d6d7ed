package ast

import "encoding/json"

// DocumentShape names the four root shapes spec §4.1 lists, in priority
// order, that Classify sorts a decoded root value into.
type DocumentShape int

const (
	// ShapeUnknown means none of the recognized shapes matched.
	ShapeUnknown DocumentShape = iota
	// ShapeProgram is a ProgramNode or any node carrying a Statements list.
	ShapeProgram
	// ShapeBlocks is a root carrying a Blocks list, each with its own Statements.
	ShapeBlocks
	// ShapeSingle is a single statement node (has a type discriminator).
	ShapeSingle
	// ShapeList is a bare JSON array of statement nodes.
	ShapeList
)

// Document is the classified, decoded top-level AST value.
type Document struct {
	Shape      DocumentShape
	Root       Node   // valid for ShapeProgram, ShapeBlocks, ShapeSingle
	Statements []Node // valid for ShapeProgram
	Blocks     []Node // valid for ShapeBlocks
	Items      []Node // valid for ShapeList
}

// Decode parses raw JSON bytes into a Document.
func Decode(data []byte) (Document, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return Document{}, err
	}
	return Classify(v)
}

// Classify applies the program-shape dispatch rules from spec §4.1 to an
// already-decoded JSON value, in the specified priority order:
//  1. Type == ProgramNode, or a Statements list present -> walk statements.
//  2. Else a Blocks list present -> walk each block's Statements.
//  3. Else the root is node-shaped (has a type discriminator) -> single statement.
//  4. Else the root is a bare list -> walk each element that is a node.
func Classify(v interface{}) (Document, error) {
	if node, ok := NewNode(v); ok {
		if node.Kind() == "programnode" || node.Has("statements") {
			return Document{
				Shape:      ShapeProgram,
				Root:       node,
				Statements: node.ListField("statements"),
			}, nil
		}
		if node.Has("blocks") {
			return Document{
				Shape:  ShapeBlocks,
				Root:   node,
				Blocks: node.ListField("blocks"),
			}, nil
		}
		if node.Kind() != "" {
			return Document{Shape: ShapeSingle, Root: node}, nil
		}
	}
	if items, ok := v.([]interface{}); ok {
		out := make([]Node, 0, len(items))
		for _, item := range items {
			if child, ok := NewNode(item); ok {
				out = append(out, child)
			}
		}
		return Document{Shape: ShapeList, Items: out}, nil
	}
	return Document{Shape: ShapeUnknown}, nil
}

// BlockStatements returns the Statements list of a block-shaped node (a node
// carrying its own "statements" field), used when walking ShapeBlocks.
func BlockStatements(block Node) []Node {
	return block.ListField("statements")
}
