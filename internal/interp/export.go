package interp

import (
	"github.com/graphixlang/interpreter/internal/ast"
	"github.com/graphixlang/interpreter/internal/backend"
	"github.com/graphixlang/interpreter/internal/value"
)

// execExport implements spec §4.7: resolve the destination, pick a format,
// save, and conditionally delete the source.
func (in *Interpreter) execExport(node ast.Node) (value.Value, error) {
	identifier := node.StringField("imageIdentifier")
	b, ok := in.Env.Get(identifier)
	if !ok || b.Value.Kind != value.KindImage {
		return value.Null, newErr(KindUnknownIdentifier, "export of unknown image identifier %q", identifier)
	}
	destination := node.StringField("destinationPath")
	keepOriginal := node.BoolField("keepOriginal", true)

	if err := in.exportImageTo(b.Value.Image, destination, keepOriginal); err != nil {
		return value.Null, err
	}
	return value.Str(identifier), nil
}

// exportImage synthesizes an export against a directory, used by ForEach
// (spec §4.5 step 3), which always resolves DestinationPath as a directory.
func (in *Interpreter) exportImage(img value.Image, exportPath string, keepOriginal bool) error {
	return in.exportImageTo(img, exportPath, keepOriginal)
}

func (in *Interpreter) exportImageTo(img value.Image, destination string, keepOriginal bool) error {
	finalPath, err := in.resolveExportPath(destination, img.Filename)
	if err != nil {
		return wrapErr(KindBackendError, err, "resolving export destination %s", destination)
	}

	format := exportFormat(finalPath, img.Handle.Format)

	if err := in.Image.Save(img.Handle, finalPath, format, 90); err != nil {
		return wrapErr(KindBackendError, err, "saving exported image to %s", finalPath)
	}

	if !keepOriginal && img.SourcePath != nil && in.FS.Exists(*img.SourcePath) {
		if rmErr := in.FS.Remove(*img.SourcePath); rmErr != nil {
			in.Log.Warn("failed to delete source after export", "path", *img.SourcePath, "error", rmErr)
		}
	}
	return nil
}

// resolveExportPath implements the directory-vs-file disambiguation rule
// (spec §4.7).
func (in *Interpreter) resolveExportPath(destination, filename string) (string, error) {
	destination = in.FS.Normalize(destination)
	if in.FS.IsDir(destination) || backend.HasTrailingSeparator(destination) {
		if err := in.FS.MakeDirs(destination); err != nil {
			return "", err
		}
		return destination + "/" + filename, nil
	}

	parent := parentDir(destination)
	if parent != "" {
		if err := in.FS.MakeDirs(parent); err != nil {
			return "", err
		}
	}
	return destination, nil
}

func parentDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return ""
}

// exportFormat derives the encode format from the final path's extension,
// falling back to the image's in-memory format tag, finally PNG.
func exportFormat(finalPath, inMemoryFormat string) string {
	ext := extOf(finalPath)
	if ext != "" {
		tag, _ := backend.NormalizeFormat(ext)
		return tag
	}
	if inMemoryFormat != "" {
		return inMemoryFormat
	}
	return "png"
}
