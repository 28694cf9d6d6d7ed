// Package value implements the GraphixLang runtime value model: the tagged
// Value union, Bindings that pair a value with its declared type, the
// single global Environment, and the program-wide rename Counter (spec §3).
package value

import "github.com/graphixlang/interpreter/internal/backend"

// Kind discriminates a Value's variant.
type Kind int

const (
	KindInt Kind = iota
	KindDouble
	KindString
	KindBool
	KindImage
	KindBatch
	KindPixels
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindImage:
		return "Image"
	case KindBatch:
		return "Batch"
	case KindPixels:
		return "Pixels"
	default:
		return "Null"
	}
}

// Image is the runtime representation of an Image value (spec §3): an
// owning handle plus the bookkeeping fields operations and export consult.
type Image struct {
	Handle       *backend.Image
	SourcePath   *string           // nil for in-memory-derived images (never deletion candidates)
	Filename     string            // logical output filename; changed by rename/convert
	MetadataLog  map[string]string // record of metadata mutations, for AddMetadata/StripMetadata audit
}

// Clone returns an Image value with its own copies of SourcePath and
// MetadataLog; the Handle pointer is still shared with the original.
func (img Image) Clone() Image {
	cp := img
	if img.SourcePath != nil {
		sp := *img.SourcePath
		cp.SourcePath = &sp
	}
	cp.MetadataLog = make(map[string]string, len(img.MetadataLog))
	for k, v := range img.MetadataLog {
		cp.MetadataLog[k] = v
	}
	return cp
}

// Value is the tagged union every expression evaluates to and every
// binding stores (spec §3).
type Value struct {
	Kind   Kind
	Int    int64
	Double float64
	Str    string
	Bool   bool
	Image  Image
	Batch  []string
}

// Null is the value VariableReference yields for a missing name and
// Metadata yields for an unknown accessor (spec §4.2), represented as a
// distinguished Kind rather than a Go nil so callers can't mistake it for a
// zero Int/String.
var Null = Value{Kind: KindNull}

func Int(i int64) Value       { return Value{Kind: KindInt, Int: i} }
func Double(f float64) Value  { return Value{Kind: KindDouble, Double: f} }
func Str(s string) Value      { return Value{Kind: KindString, Str: s} }
func Bool(b bool) Value       { return Value{Kind: KindBool, Bool: b} }
func Batch(paths []string) Value { return Value{Kind: KindBatch, Batch: paths} }
func FromImage(img Image) Value  { return Value{Kind: KindImage, Image: img} }

// IsNumeric reports whether the value is Int or Double.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindDouble
}

// AsFloat widens Int/Double to float64; ok is false for non-numeric kinds.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindDouble:
		return v.Double, true
	default:
		return 0, false
	}
}

// Truthy applies host-language truthiness to any value for use as an If
// condition that is not itself a comparison expression (spec §4.3).
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int != 0
	case KindDouble:
		return v.Double != 0
	case KindString:
		return v.Str != ""
	case KindBatch:
		return len(v.Batch) > 0
	case KindNull:
		return false
	default:
		return true
	}
}

// String renders the value for string concatenation, rename string terms,
// and metadata stringification.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return formatInt(v.Int)
	case KindDouble:
		return formatDouble(v.Double)
	case KindBool:
		return formatBool(v.Bool)
	case KindImage:
		return v.Image.Filename
	case KindNull:
		return ""
	default:
		return ""
	}
}
