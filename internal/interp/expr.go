package interp

import (
	"strconv"
	"strings"

	"github.com/graphixlang/interpreter/internal/ast"
	"github.com/graphixlang/interpreter/internal/value"
)

// evalExpr evaluates any expression node: Literal, VariableReference,
// BinaryExpression, Metadata (spec §4.2). BatchExpression is handled
// separately by evalBatchExpr since its PLUS never means arithmetic. Every
// dispatch except BinaryExpression increments the operation counter (spec §3
// invariant 5, §8 law 1) — BinaryExpression's own operand visits count
// individually as they recurse back through this same function.
func (in *Interpreter) evalExpr(node ast.Node) (value.Value, error) {
	kind := node.Kind()
	v, err := in.evalExprKind(node, kind)
	if err == nil && kind != ast.KindBinaryExpression {
		in.countOperation()
	}
	return v, err
}

func (in *Interpreter) evalExprKind(node ast.Node, kind string) (value.Value, error) {
	switch kind {
	case ast.KindLiteral:
		return in.evalLiteral(node)
	case ast.KindVariableReference:
		return in.evalVariableReference(node)
	case ast.KindBinaryExpression:
		return in.evalBinaryExpression(node)
	case ast.KindMetadata:
		return in.evalMetadata(node)
	case ast.KindBatchExpression:
		paths, err := in.evalBatchExpr(node)
		if err != nil {
			return value.Null, err
		}
		return value.Batch(paths), nil
	default:
		return value.Null, newErr(KindUnknownNodeKind, "unrecognized expression kind %q", kind)
	}
}

func (in *Interpreter) evalLiteral(node ast.Node) (value.Value, error) {
	vt := node.StringField("valueType")
	raw, _ := node.Field("value")
	switch vt {
	case ast.ValueTypeInt:
		return value.Int(int64(toNumber(raw))), nil
	case ast.ValueTypeDouble:
		return value.Double(toNumber(raw)), nil
	case ast.ValueTypeString:
		return value.Str(toStringRaw(raw)), nil
	case ast.ValueTypeBool:
		return value.Bool(toBoolRaw(raw)), nil
	default:
		// Unknown value type passes through as-is (spec §4.2).
		switch t := raw.(type) {
		case float64:
			return value.Double(t), nil
		case string:
			return value.Str(t), nil
		case bool:
			return value.Bool(t), nil
		default:
			return value.Null, nil
		}
	}
}

func toNumber(raw interface{}) float64 {
	switch t := raw.(type) {
	case float64:
		return t
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	default:
		return 0
	}
}

func toStringRaw(raw interface{}) string {
	s, _ := raw.(string)
	return s
}

func toBoolRaw(raw interface{}) bool {
	switch t := raw.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(t, "true")
	default:
		return false
	}
}

func (in *Interpreter) evalVariableReference(node ast.Node) (value.Value, error) {
	name := node.StringField("identifier")
	b, ok := in.Env.Get(name)
	if !ok {
		in.Log.Warn("unknown identifier in variable reference", "identifier", name)
		return value.Null, nil
	}
	return b.Value, nil
}

func (in *Interpreter) evalBinaryExpression(node ast.Node) (value.Value, error) {
	leftNode, _ := node.NodeField("left")
	rightNode, _ := node.NodeField("right")
	op := node.StringField("operator")

	left, err := in.evalExpr(leftNode)
	if err != nil {
		return value.Null, err
	}
	right, err := in.evalExpr(rightNode)
	if err != nil {
		return value.Null, err
	}

	return applyOperator(op, left, right)
}

func applyOperator(op string, left, right value.Value) (value.Value, error) {
	switch op {
	case ast.OpPlus:
		if left.Kind == value.KindString || right.Kind == value.KindString {
			return value.Str(left.String() + right.String()), nil
		}
		if left.IsNumeric() && right.IsNumeric() {
			return numericArith(op, left, right)
		}
		return value.Str(left.String() + right.String()), nil
	case ast.OpMinus, ast.OpMultiply, ast.OpDivide:
		return numericArith(op, left, right)
	case ast.OpEqual, ast.OpNotEqual, ast.OpGreater, ast.OpGreaterEqual, ast.OpSmaller, ast.OpSmallerEqual:
		return compare(op, left, right)
	default:
		return value.Null, newErr(KindUnsupportedOperator, "unsupported operator %q", op)
	}
}

func numericArith(op string, left, right value.Value) (value.Value, error) {
	lf, lok := left.AsFloat()
	rf, rok := right.AsFloat()
	if !lok || !rok {
		return value.Null, newErr(KindEvaluationError, "operator %q requires numeric operands", op)
	}
	wide := left.Kind == value.KindDouble || right.Kind == value.KindDouble

	var result float64
	switch op {
	case ast.OpPlus:
		result = lf + rf
	case ast.OpMinus:
		result = lf - rf
	case ast.OpMultiply:
		result = lf * rf
	case ast.OpDivide:
		if rf == 0 {
			return value.Null, newErr(KindEvaluationError, "division by zero")
		}
		result = lf / rf
		wide = true
	default:
		return value.Null, newErr(KindUnsupportedOperator, "unsupported operator %q", op)
	}

	if wide {
		return value.Double(result), nil
	}
	return value.Int(int64(result)), nil
}

func compare(op string, left, right value.Value) (value.Value, error) {
	if left.IsNumeric() && right.IsNumeric() {
		lf, _ := left.AsFloat()
		rf, _ := right.AsFloat()
		switch op {
		case ast.OpEqual:
			return value.Bool(lf == rf), nil
		case ast.OpNotEqual:
			return value.Bool(lf != rf), nil
		case ast.OpGreater:
			return value.Bool(lf > rf), nil
		case ast.OpGreaterEqual:
			return value.Bool(lf >= rf), nil
		case ast.OpSmaller:
			return value.Bool(lf < rf), nil
		case ast.OpSmallerEqual:
			return value.Bool(lf <= rf), nil
		}
	}
	ls, rs := left.String(), right.String()
	switch op {
	case ast.OpEqual:
		return value.Bool(ls == rs), nil
	case ast.OpNotEqual:
		return value.Bool(ls != rs), nil
	case ast.OpGreater:
		return value.Bool(ls > rs), nil
	case ast.OpGreaterEqual:
		return value.Bool(ls >= rs), nil
	case ast.OpSmaller:
		return value.Bool(ls < rs), nil
	case ast.OpSmallerEqual:
		return value.Bool(ls <= rs), nil
	}
	return value.Null, newErr(KindUnsupportedOperator, "unsupported operator %q", op)
}

// evalBatchExpr composes a BatchDeclaration's expression into an ordered
// path list. PLUS here always means list concatenation, never arithmetic
// (spec §4.2 BatchExpression): each operand is either another batch
// expression or a string-evaluating expression.
func (in *Interpreter) evalBatchExpr(node ast.Node) ([]string, error) {
	if node.Kind() == ast.KindBatchExpression || (node.Kind() == ast.KindBinaryExpression && node.StringField("operator") == ast.OpPlus) {
		leftNode, _ := node.NodeField("left")
		rightNode, _ := node.NodeField("right")
		left, err := in.evalBatchExpr(leftNode)
		if err != nil {
			return nil, err
		}
		right, err := in.evalBatchExpr(rightNode)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	}

	v, err := in.evalExpr(node)
	if err != nil {
		return nil, err
	}
	if v.Kind == value.KindBatch {
		return v.Batch, nil
	}
	return []string{in.FS.Normalize(v.String())}, nil
}

func (in *Interpreter) evalMetadata(node ast.Node) (value.Value, error) {
	imgID := node.StringField("imageIdentifier")
	metaType := node.StringField("metadataType")

	b, ok := in.Env.Get(imgID)
	if !ok || b.Value.Kind != value.KindImage {
		in.Log.Warn("metadata accessor on unknown or non-image identifier", "identifier", imgID)
		return value.Null, nil
	}
	img := b.Value.Image

	switch metaType {
	case ast.MetaWidth:
		return value.Int(int64(img.Handle.Bounds().Dx())), nil
	case ast.MetaHeight:
		return value.Int(int64(img.Handle.Bounds().Dy())), nil
	case ast.MetaName:
		return value.Str(img.Filename), nil
	case ast.MetaSize:
		if img.SourcePath == nil || !in.FS.Exists(*img.SourcePath) {
			return value.Int(0), nil
		}
		return value.Int(in.FS.Size(*img.SourcePath)), nil
	default:
		return value.Null, nil
	}
}
