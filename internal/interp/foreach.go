package interp

import (
	"github.com/graphixlang/interpreter/internal/ast"
	"github.com/graphixlang/interpreter/internal/backend"
	"github.com/graphixlang/interpreter/internal/value"
)

// execForEach implements spec §4.5: enumerate every recognized image file
// under the bound batch's paths, and for each one load, run Body, then
// synthesize an export against ExportPath under the current KeepOriginal
// policy. Per-file failures are logged and do not abort the loop; the loop
// variable is deliberately left bound to the last iteration's image.
func (in *Interpreter) execForEach(node ast.Node) (value.Value, error) {
	varID := node.StringField("varIdentifier")
	batchID := node.StringField("batchIdentifier")
	exportPath := in.FS.Normalize(node.StringField("exportPath"))
	keepOriginal := node.BoolField("keepOriginal", true)
	bodyNode, _ := node.NodeField("body")

	batchBinding, ok := in.Env.Get(batchID)
	if !ok || batchBinding.Value.Kind != value.KindBatch {
		return value.Null, newErr(KindUnknownIdentifier, "foreach batch identifier %q is not a Batch", batchID)
	}

	if err := in.FS.MakeDirs(exportPath); err != nil {
		return value.Null, wrapErr(KindBackendError, err, "creating foreach export directory %s", exportPath)
	}

	files, err := in.enumerateBatchFiles(batchBinding.Value.Batch)
	if err != nil {
		return value.Null, wrapErr(KindBackendError, err, "enumerating foreach batch")
	}

	processed := 0
	for _, file := range files {
		if ferr := in.processForEachFile(varID, file, bodyNode, exportPath, keepOriginal); ferr != nil {
			in.Log.Error("foreach iteration failed, continuing", "file", file, "error", ferr)
			continue
		}
		processed++
	}

	in.Log.Info("foreach completed", "batch", batchID, "files", len(files), "processed", processed)
	return value.Int(int64(processed)), nil
}

func (in *Interpreter) enumerateBatchFiles(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		if in.FS.IsDir(p) {
			files, err := in.FS.ListDir(p, in.recognizedExtensions())
			if err != nil {
				return nil, err
			}
			out = append(out, files...)
			continue
		}
		if in.FS.Exists(p) && backend.IsRecognizedExtension(extOf(p), in.recognizedExtensions()) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (in *Interpreter) recognizedExtensions() []string {
	if len(in.Extensions) > 0 {
		return in.Extensions
	}
	return ast.RecognizedExtensions
}

func extOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
		if path[i] == '/' {
			break
		}
	}
	return ""
}

func (in *Interpreter) processForEachFile(varID, file string, bodyNode ast.Node, exportPath string, keepOriginal bool) error {
	handle, err := in.Image.Open(file)
	if err != nil {
		return wrapErr(KindBackendError, err, "opening foreach file %s", file)
	}

	sourcePath := file
	img := value.Image{
		Handle:      handle,
		SourcePath:  &sourcePath,
		Filename:    backend.BaseName(file),
		MetadataLog: map[string]string{},
	}
	in.Env.Set(varID, value.Binding{DeclaredType: "IMAGE", Value: value.FromImage(img)})

	if !bodyNode.IsZero() {
		if _, err := in.execBlock(bodyNode); err != nil {
			return err
		}
	}

	current, ok := in.Env.Get(varID)
	if !ok || current.Value.Kind != value.KindImage {
		return newErr(KindEvaluationError, "foreach body unbound loop variable %q", varID)
	}
	return in.exportImage(current.Value.Image, exportPath, keepOriginal)
}
