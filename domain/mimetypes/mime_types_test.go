package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		expected    MIME
		want        bool
	}{
		{"PNG", "image/png", ImagePNG, true},
		{"Upper case JPEG", "IMAGE/JPEG", ImageJPEG, true},
		{"GIF with parameter", "image/gif; foo=bar", ImageGIF, true},
		{"Mismatch", "image/png", ImageGIF, false},
		{"Invalid MIME", "not a mime", ImagePNG, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Matches(tt.contentType, tt.expected)
			require.Equal(t, tt.want, ok)
		})
	}
}

func TestIsImage(t *testing.T) {
	req := require.New(t)
	req.True(IsImage("image/webp"))
	req.False(IsImage("application/pdf"))
	req.False(IsImage("text/plain; charset=utf-8"))
	req.Equal(Unknown, Parse(""))
}
