package imageops

import (
	"path/filepath"
	"strings"
)

// forbiddenFilenameChars are the characters Rename replaces with
// underscores (spec §4.6); they overlap with what's illegal on Windows
// filesystems, which is why the original interpreter strips them.
const forbiddenFilenameChars = `<>:"/\|?*`

// SanitizeFilename replaces every forbidden character with an underscore
// and falls back to "image.png" if the result is empty (spec §4.6).
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(forbiddenFilenameChars, r) {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}
	sanitized := b.String()
	if sanitized == "" {
		return "image.png"
	}
	return sanitized
}

// BuildRenamedFilename joins the already-resolved term strings, preserves
// the original file's extension (appending it if missing), falls back to
// the original base name when the joined result is empty, and sanitizes
// the result (spec §4.6).
func BuildRenamedFilename(parts []string, originalFilename string) string {
	joined := strings.Join(parts, "")
	ext := filepath.Ext(originalFilename)

	if joined == "" {
		base := strings.TrimSuffix(originalFilename, ext)
		return SanitizeFilename(base) + ext
	}

	if ext != "" && !strings.HasSuffix(joined, ext) {
		joined += ext
	}
	return SanitizeFilename(joined)
}
