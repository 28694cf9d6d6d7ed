package interp

import (
	"strconv"
	"strings"

	"github.com/graphixlang/interpreter/internal/ast"
	"github.com/graphixlang/interpreter/internal/imageops"
	"github.com/graphixlang/interpreter/internal/value"
)

// execRename implements spec §4.6: build a new filename from an ordered
// list of rename terms, each a string literal, a counter draw, or a nested
// metadata accessor, then sanitize and store it as the image's filename.
func (in *Interpreter) execRename(node ast.Node) (value.Value, error) {
	identifier := node.StringField("imageIdentifier")
	b, ok := in.Env.Get(identifier)
	if !ok || b.Value.Kind != value.KindImage {
		return value.Null, newErr(KindUnknownIdentifier, "rename of unknown image identifier %q", identifier)
	}
	img := b.Value.Image

	var parts []string
	for _, term := range node.RawListField("terms") {
		termNode, ok := ast.NewNode(term)
		if !ok {
			continue
		}
		part, err := in.evalRenameTerm(termNode)
		if err != nil {
			return value.Null, err
		}
		parts = append(parts, part)
	}

	img.Filename = imageops.BuildRenamedFilename(parts, img.Filename)
	updated := b
	updated.Value = value.FromImage(img)
	in.Env.Set(identifier, updated)
	return value.Str(identifier), nil
}

// evalRenameTerm infers a term's kind when no explicit tag is present:
// StringValue present -> string; else MetadataValue present -> metadata;
// else counter. When both StringValue and MetadataValue are present on an
// untagged term, string wins, matching the original interpreter's
// StringValue-checked-first elif chain (spec §9 open question 4).
func (in *Interpreter) evalRenameTerm(term ast.Node) (string, error) {
	kind := strings.ToUpper(term.StringField("termKind"))
	if kind == "" {
		kind = strings.ToUpper(term.StringField("type"))
	}

	hasString := term.Has("stringValue")
	hasMetadata := term.Has("metadataValue")

	if kind == "" {
		switch {
		case hasString:
			kind = ast.TermString
		case hasMetadata:
			kind = ast.TermMetadata
		default:
			kind = ast.TermCounter
		}
	} else if kind != ast.TermString && kind != ast.TermCounter && kind != ast.TermMetadata {
		// Legacy generic "RenameTerm" tag: infer from which value field is
		// present, string taking priority over metadata when both appear.
		switch {
		case hasString:
			kind = ast.TermString
		case hasMetadata:
			kind = ast.TermMetadata
		default:
			kind = ast.TermCounter
		}
	}

	switch kind {
	case ast.TermString:
		return strings.Trim(term.StringField("stringValue"), `"`), nil
	case ast.TermMetadata:
		metaNode, ok := term.NodeField("metadataValue")
		if !ok {
			return "", nil
		}
		v, err := in.evalExpr(metaNode)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	default:
		return strconv.Itoa(in.Counter.Next()), nil
	}
}
