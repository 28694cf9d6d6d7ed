package backend

import (
	"os"
	"path/filepath"
	"strings"
)

// detectFormatByExt infers the in-memory format tag from a file extension,
// normalizing "jpg" to "jpeg" the way PIL's format string does.
func detectFormatByExt(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "jpg":
		return "jpeg"
	case "":
		return "png"
	default:
		return ext
	}
}

// writeFile writes data to path, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// NormalizeFormat maps a DSL-level TargetFormat token (PNG, JPG, JPEG, WEBP,
// TIFF, BMP) to the lowercase in-memory format tag and file extension used
// throughout the backend.
func NormalizeFormat(target string) (tag, ext string) {
	switch strings.ToUpper(target) {
	case "PNG":
		return "png", ".png"
	case "JPG", "JPEG":
		return "jpeg", ".jpg"
	case "WEBP":
		return "webp", ".webp"
	case "TIFF":
		return "tiff", ".tiff"
	case "BMP":
		return "bmp", ".bmp"
	default:
		return "png", ".png"
	}
}

// IsRecognizedExtension reports whether ext (with or without a leading dot)
// is one of the image extensions ForEach enumerates (spec §4.5).
func IsRecognizedExtension(ext string, recognized []string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, r := range recognized {
		if ext == strings.ToLower(strings.TrimPrefix(r, ".")) {
			return true
		}
	}
	return false
}
