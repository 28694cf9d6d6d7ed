package imageops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilenameReplacesForbiddenChars(t *testing.T) {
	assert.Equal(t, "a_b_c", SanitizeFilename(`a:b/c`))
}

func TestSanitizeFilenameFallsBackWhenEmpty(t *testing.T) {
	assert.Equal(t, "image.png", SanitizeFilename(""))
}

func TestBuildRenamedFilenamePreservesExtension(t *testing.T) {
	got := BuildRenamedFilename([]string{"vacation", "-", "1"}, "photo.jpg")
	assert.Equal(t, "vacation-1.jpg", got)
}

func TestBuildRenamedFilenameDoesNotDuplicateExtension(t *testing.T) {
	got := BuildRenamedFilename([]string{"vacation", ".jpg"}, "photo.jpg")
	assert.Equal(t, "vacation.jpg", got)
}

func TestBuildRenamedFilenameFallsBackToOriginalBaseName(t *testing.T) {
	got := BuildRenamedFilename([]string{""}, "photo.jpg")
	assert.Equal(t, "photo.jpg", got)
}
