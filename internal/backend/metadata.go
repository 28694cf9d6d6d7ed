package backend

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/garyhouston/tiff66"
)

// Exif-relevant tags, named per spec §6's "field constants for
// Make/Model/XPKeywords/XPTitle/XPComment/Copyright/GPS".
const (
	TagMake       = tiff66.Tag(tiff66.Make)
	TagModel      = tiff66.Tag(tiff66.Model)
	TagCopyright  = tiff66.Tag(tiff66.Copyright)
	TagGPSIFD     = tiff66.Tag(tiff66.GPSIFD)
	TagXPTitle    = tiff66.Tag(0x9C9B)
	TagXPComment  = tiff66.Tag(0x9C9C)
	TagXPKeywords = tiff66.Tag(0x9C9E)
)

var byteOrder = binary.LittleEndian

// ExifData is the decoded dict MetadataBackend exposes (spec §6
// load_exif/dump_exif). Fields holds IFD0 entries keyed by tag; HasGPS
// records whether a GPS sub-IFD pointer is present without requiring this
// backend to model the full GPS tag set, since no operation in §4.4
// populates real GPS coordinates.
type ExifData struct {
	Fields map[tiff66.Tag]tiff66.Field
	HasGPS bool
}

// MetadataBackend is the abstract EXIF capability the interpreter core
// consumes for StripMetadata/AddMetadata (spec §6, §9 "metadata-backend
// optional capability").
type MetadataBackend interface {
	LoadEXIF(img *Image) (ExifData, bool)
	DumpEXIF(data ExifData) []byte
	Degraded() bool
}

// TIFFMetadataBackend implements MetadataBackend over
// github.com/garyhouston/tiff66's IFD encode/decode primitives, storing the
// EXIF blob as a minimal standalone little-endian TIFF byte stream in
// Image.EXIF.
type TIFFMetadataBackend struct{}

// NewTIFFMetadataBackend constructs the production MetadataBackend.
func NewTIFFMetadataBackend() *TIFFMetadataBackend {
	return &TIFFMetadataBackend{}
}

// Degraded reports false: this backend supports full field-level edits.
func (TIFFMetadataBackend) Degraded() bool { return false }

// LoadEXIF parses img.EXIF into an ExifData dict. ok is false if no EXIF
// blob is present or it fails to parse.
func (TIFFMetadataBackend) LoadEXIF(img *Image) (ExifData, bool) {
	if len(img.EXIF) == 0 {
		return ExifData{}, false
	}
	valid, order, ifdPos := tiff66.GetHeader(img.EXIF)
	if !valid {
		return ExifData{}, false
	}
	ifd, _, err := tiff66.GetIFD(img.EXIF, order, ifdPos, nil)
	if err != nil {
		return ExifData{}, false
	}
	fields := make(map[tiff66.Tag]tiff66.Field, len(ifd.Fields))
	hasGPS := false
	for _, f := range ifd.Fields {
		if f.Tag == tiff66.Tag(tiff66.GPSIFD) {
			hasGPS = true
			continue
		}
		fields[f.Tag] = f
	}
	return ExifData{Fields: fields, HasGPS: hasGPS}, true
}

// DumpEXIF serializes an ExifData dict back into a standalone TIFF byte
// stream, re-establishing IFD0 with the remaining fields in ascending tag
// order (tiff66.IFD_T.Put requires sorted tags). Used to "re-serialize and
// reload" after AddMetadata/StripMetadata, per spec §4.4.
func (TIFFMetadataBackend) DumpEXIF(data ExifData) []byte {
	tags := make([]tiff66.Tag, 0, len(data.Fields))
	for t := range data.Fields {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	var gpsField *tiff66.Field
	if data.HasGPS {
		f := tiff66.Field{Tag: tiff66.Tag(tiff66.GPSIFD), Type: tiff66.LONG, Count: 1, Data: make([]byte, 4)}
		gpsField = &f
	}

	fields := make([]tiff66.Field, 0, len(tags)+1)
	for _, t := range tags {
		fields = append(fields, data.Fields[t])
	}
	if gpsField != nil {
		inserted := false
		final := make([]tiff66.Field, 0, len(fields)+1)
		for _, f := range fields {
			if !inserted && f.Tag > gpsField.Tag {
				final = append(final, *gpsField)
				inserted = true
			}
			final = append(final, f)
		}
		if !inserted {
			final = append(final, *gpsField)
		}
		fields = final
	}

	ifd := tiff66.IFD_T{Fields: fields}
	const ifd0Pos = 8
	total := ifd0Pos + ifd.TotalSize(byteOrder)
	buf := make([]byte, total)
	tiff66.PutHeader(buf, byteOrder, ifd0Pos)
	if _, err := ifd.Put(buf, byteOrder, ifd0Pos, nil, 0); err != nil {
		return nil
	}
	return buf
}

// NewExifData returns an empty ExifData ready to accept fields, used when
// AddMetadata targets an image with no prior EXIF blob.
func NewExifData() ExifData {
	return ExifData{Fields: map[tiff66.Tag]tiff66.Field{}}
}

// SetField sets or replaces a single field in data.Fields.
func (data ExifData) SetField(f tiff66.Field) {
	data.Fields[f.Tag] = f
}

// AsciiField builds an ASCII-typed TIFF field from a Go string (used for
// Copyright, which spec §4.4 encodes UTF-8).
func AsciiField(tag tiff66.Tag, value string) tiff66.Field {
	var f tiff66.Field
	f.Tag = tag
	f.Type = tiff66.ASCII
	f.PutASCII(value)
	f.Count = uint32(len(f.Data))
	return f
}

// UTF16Field builds a BYTE-typed field holding a NUL-terminated UTF-16LE
// encoding of value, matching the XP* tag convention used for
// TAGS/TITLE/DESCRIPTION (spec §4.4).
func UTF16Field(tag tiff66.Tag, value string) tiff66.Field {
	var buf bytes.Buffer
	for _, r := range value {
		if r > 0xFFFF {
			r = '?'
		}
		var b [2]byte
		byteOrder.PutUint16(b[:], uint16(r))
		buf.Write(b[:])
	}
	buf.Write([]byte{0, 0})
	return tiff66.Field{Tag: tag, Type: tiff66.BYTE, Count: uint32(buf.Len()), Data: buf.Bytes()}
}

// DecodeUTF16Field reverses UTF16Field, stopping at the first NUL pair.
func DecodeUTF16Field(f tiff66.Field) string {
	var runes []rune
	for i := 0; i+1 < len(f.Data); i += 2 {
		u := byteOrder.Uint16(f.Data[i:])
		if u == 0 {
			break
		}
		runes = append(runes, rune(u))
	}
	return string(runes)
}

// DegradedMetadataBackend is the fallback for when no full MetadataBackend
// is configured (spec §9): it supports only full-strip (re-encode without
// EXIF). The interpreter logs a warning for every AddMetadata or
// partial-strip call made against it, since those leave the image without
// EXIF.
type DegradedMetadataBackend struct{}

func (DegradedMetadataBackend) LoadEXIF(img *Image) (ExifData, bool) { return ExifData{}, false }
func (DegradedMetadataBackend) DumpEXIF(data ExifData) []byte        { return nil }
func (DegradedMetadataBackend) Degraded() bool                       { return true }
