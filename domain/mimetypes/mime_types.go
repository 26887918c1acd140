package mimetypes

import (
	"mime"
	"slices"
)

// MIME is a bare media type, parameters stripped.
type MIME string

const (
	Unknown     MIME = "unknown"
	OctetStream MIME = "application/octet-stream"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
	ImageWebP MIME = "image/webp"
)

// Images are the media types a message may carry as its image.
var Images = []MIME{ImagePNG, ImageJPEG, ImageGIF, ImageWebP}

// Parse reads a Content-Type value, Unknown when it is malformed.
func Parse(contentType string) MIME {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return Unknown
	}
	return MIME(mt)
}

// Matches compares contentType with expected, ignoring parameters and case.
func Matches(contentType string, expected MIME) (MIME, bool) {
	mt := Parse(contentType)
	return mt, mt == expected
}

func IsImage(contentType string) bool {
	return slices.Contains(Images, Parse(contentType))
}
