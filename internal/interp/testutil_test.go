package interp

import (
	"fmt"
	stdimage "image"

	"github.com/graphixlang/interpreter/internal/backend"
	"github.com/graphixlang/interpreter/internal/logx"
)

// fakeImageBackend satisfies backend.ImageBackend over an in-memory fixture
// map, so tests never touch disk. EncodeToMemory/DecodeFromMemory delegate
// to the real codec so Compress's JPEG round trip stays faithful.
type fakeImageBackend struct {
	real  *backend.DefaultImageBackend
	files map[string]*backend.Image
	saved map[string]savedFile
}

type savedFile struct {
	img     *backend.Image
	format  string
	quality int
}

func newFakeImageBackend() *fakeImageBackend {
	return &fakeImageBackend{
		real:  backend.NewDefaultImageBackend(),
		files: map[string]*backend.Image{},
		saved: map[string]savedFile{},
	}
}

func (f *fakeImageBackend) register(path string, img *backend.Image) {
	f.files[path] = img
}

func (f *fakeImageBackend) Open(path string) (*backend.Image, error) {
	img, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("fake backend: no fixture registered for %s", path)
	}
	return img.Clone(), nil
}

func (f *fakeImageBackend) Save(img *backend.Image, path, format string, quality int) error {
	f.saved[path] = savedFile{img: img.Clone(), format: format, quality: quality}
	return nil
}

func (f *fakeImageBackend) EncodeToMemory(img *backend.Image, format string, quality int) ([]byte, error) {
	return f.real.EncodeToMemory(img, format, quality)
}

func (f *fakeImageBackend) DecodeFromMemory(data []byte) (*backend.Image, error) {
	return f.real.DecodeFromMemory(data)
}

// fakeFS satisfies backend.FileSystem over in-memory sets, so ForEach/Export
// tests never touch disk.
type fakeFS struct {
	files       map[string]bool
	dirs        map[string]bool
	dirContents map[string][]string
	sizes       map[string]int64
	removed     map[string]bool
	madeDirs    map[string]bool
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		files:       map[string]bool{},
		dirs:        map[string]bool{},
		dirContents: map[string][]string{},
		sizes:       map[string]int64{},
		removed:     map[string]bool{},
		madeDirs:    map[string]bool{},
	}
}

func (fs *fakeFS) addFile(path string) { fs.files[path] = true }
func (fs *fakeFS) addDir(dir string, contents []string) {
	fs.dirs[dir] = true
	fs.dirContents[dir] = contents
	for _, c := range contents {
		fs.files[c] = true
	}
}

func (fs *fakeFS) Normalize(path string) string { return path }

func (fs *fakeFS) Exists(path string) bool {
	if fs.removed[path] {
		return false
	}
	return fs.files[path] || fs.dirs[path]
}

func (fs *fakeFS) IsDir(path string) bool { return fs.dirs[path] }

func (fs *fakeFS) Size(path string) int64 {
	if !fs.Exists(path) {
		return 0
	}
	if s, ok := fs.sizes[path]; ok {
		return s
	}
	return 1024
}

func (fs *fakeFS) ListDir(dir string, recognizedExt []string) ([]string, error) {
	return append([]string(nil), fs.dirContents[dir]...), nil
}

func (fs *fakeFS) MakeDirs(path string) error {
	fs.madeDirs[path] = true
	fs.dirs[path] = true
	return nil
}

func (fs *fakeFS) Remove(path string) error {
	if !fs.Exists(path) {
		return fmt.Errorf("fake fs: %s does not exist", path)
	}
	fs.removed[path] = true
	delete(fs.files, path)
	return nil
}

func newTestInterpreter() (*Interpreter, *fakeImageBackend, *fakeFS) {
	ib := newFakeImageBackend()
	fs := newFakeFS()
	in := New(ib, backend.NewTIFFMetadataBackend(), fs, nil, logx.New(logx.Config{Output: discardWriter{}}))
	return in, ib, fs
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func solidImage(w, h int, mode backend.ColorMode) *backend.Image {
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = 120
		img.Pix[i+1] = 140
		img.Pix[i+2] = 160
		img.Pix[i+3] = 255
	}
	return &backend.Image{Pix: img, Mode: mode, Format: "png"}
}

func node(fields map[string]interface{}) map[string]interface{} { return fields }

func literalInt(v int) map[string]interface{} {
	return map[string]interface{}{"type": "Literal", "valueType": "INT_VALUE", "value": float64(v)}
}

func literalString(s string) map[string]interface{} {
	return map[string]interface{}{"type": "Literal", "valueType": "STR_VALUE", "value": s}
}

func variableRef(identifier string) map[string]interface{} {
	return map[string]interface{}{"type": "VariableReference", "identifier": identifier}
}

func binaryExpr(op string, left, right map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"type": "BinaryExpression", "operator": op, "left": left, "right": right}
}

func block(statements ...map[string]interface{}) map[string]interface{} {
	items := make([]interface{}, len(statements))
	for i, s := range statements {
		items[i] = s
	}
	return map[string]interface{}{"type": "Block", "statements": items}
}
