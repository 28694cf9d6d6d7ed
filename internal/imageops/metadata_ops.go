package imageops

import (
	"strings"

	"github.com/graphixlang/interpreter/internal/backend"
)

// StripMetadata removes EXIF data from img (spec §4.4). StripAll, or the
// absence of any EXIF blob, re-encodes with no EXIF at all; otherwise
// each named category is removed individually: GPS drops the GPS IFD
// pointer, CAMERA drops the Make/Model tags. The removals are recorded in
// metadataLog under the "strip" key, replacing any earlier strip entry.
func StripMetadata(mb backend.MetadataBackend, img *backend.Image, stripAll bool, categories []string, metadataLog map[string]string) {
	if stripAll || len(img.EXIF) == 0 {
		img.EXIF = nil
		metadataLog["strip"] = "all"
		return
	}

	data, ok := mb.LoadEXIF(img)
	if !ok {
		img.EXIF = nil
		metadataLog["strip"] = "all"
		return
	}

	removed := make([]string, 0, len(categories))
	for _, category := range categories {
		switch strings.ToUpper(category) {
		case "GPS":
			if data.HasGPS {
				data.HasGPS = false
				removed = append(removed, "gps")
			}
		case "CAMERA":
			delete(data.Fields, backend.TagMake)
			delete(data.Fields, backend.TagModel)
			removed = append(removed, "camera")
		}
	}

	img.EXIF = mb.DumpEXIF(data)
	if len(removed) > 0 {
		metadataLog["strip"] = strings.Join(removed, ",")
	}
}

// AddMetadata writes a single EXIF field into img: TAGS/TITLE/DESCRIPTION
// are encoded UTF-16LE (the XP* Windows tag convention), COPYRIGHT stays
// ASCII/UTF-8 (spec §4.4). The EXIF blob is re-serialized through the
// metadata backend to commit the change; the pixel buffer is not reloaded.
func AddMetadata(mb backend.MetadataBackend, img *backend.Image, field, value string, metadataLog map[string]string) {
	data, ok := mb.LoadEXIF(img)
	if !ok {
		data = backend.NewExifData()
	}

	switch strings.ToUpper(field) {
	case "TAGS":
		data.SetField(backend.UTF16Field(backend.TagXPKeywords, value))
	case "TITLE":
		data.SetField(backend.UTF16Field(backend.TagXPTitle, value))
	case "DESCRIPTION":
		data.SetField(backend.UTF16Field(backend.TagXPComment, value))
	case "COPYRIGHT":
		data.SetField(backend.AsciiField(backend.TagCopyright, value))
	default:
		return
	}

	img.EXIF = mb.DumpEXIF(data)
	metadataLog[strings.ToLower(field)] = value
}
