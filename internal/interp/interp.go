package interp

import (
	"github.com/graphixlang/interpreter/internal/ast"
	"github.com/graphixlang/interpreter/internal/backend"
	"github.com/graphixlang/interpreter/internal/logx"
	"github.com/graphixlang/interpreter/internal/value"
)

// Interpreter owns the single global Environment and Counter for one
// program run, plus the backend traits the core consumes (spec §5, §6).
// Nothing outside this package ever names a concrete codec, EXIF, or
// filesystem package directly.
type Interpreter struct {
	Env        *value.Environment
	Counter    *value.Counter
	Image      backend.ImageBackend
	Metadata   backend.MetadataBackend
	FS         backend.FileSystem
	Log        *logx.Logger
	Extensions []string

	opCount int
}

// New constructs an Interpreter with the given backends. log may be nil.
func New(img backend.ImageBackend, meta backend.MetadataBackend, fs backend.FileSystem, extensions []string, log *logx.Logger) *Interpreter {
	if log == nil {
		log = logx.New(logx.Config{})
	}
	return &Interpreter{
		Env:        value.NewEnvironment(),
		Counter:    &value.Counter{},
		Image:      img,
		Metadata:   meta,
		FS:         fs,
		Log:        log,
		Extensions: extensions,
	}
}

// OperationCount returns the number of successful non-BinaryExpression
// dispatches so far (spec §3 invariant 5, §8 law 1).
func (in *Interpreter) OperationCount() int {
	return in.opCount
}

// countOperation increments the operation counter. Call exactly once per
// successful non-arithmetic dispatch.
func (in *Interpreter) countOperation() {
	in.opCount++
}

// Result is one statement's outcome, returned from Interpret for
// diagnostic/summary purposes (spec §6's "list of per-statement results").
type Result struct {
	Value value.Value
	Err   error
}

// Interpret runs a classified Document to completion, returning one Result
// per top-level statement walked and the final operation count (spec §6
// entry point `interpret(ast_document)`).
func (in *Interpreter) Interpret(doc ast.Document) ([]Result, int) {
	var statements []ast.Node

	switch doc.Shape {
	case ast.ShapeProgram:
		statements = doc.Statements
	case ast.ShapeBlocks:
		for _, block := range doc.Blocks {
			statements = append(statements, ast.BlockStatements(block)...)
		}
	case ast.ShapeSingle:
		statements = []ast.Node{doc.Root}
	case ast.ShapeList:
		statements = doc.Items
	}

	results := make([]Result, 0, len(statements))
	for _, stmt := range statements {
		v, err := in.execStatement(stmt)
		results = append(results, Result{Value: v, Err: err})
		if err != nil {
			if ierr, ok := err.(*Error); ok && ierr.Kind == KindUnknownNodeKind {
				in.Log.Warn("unknown node kind, skipping", "kind", stmt.Kind())
				continue
			}
			in.Log.Error("statement failed, aborting", "error", err)
			break
		}
	}
	return results, in.opCount
}
