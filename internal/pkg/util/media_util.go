package util

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

const thumbnailWidth = 480

// MakeThumbnail decodes an uploaded image and renders a fixed-width
// jpeg thumbnail, preserving aspect ratio.
func MakeThumbnail(r io.Reader) (*bytes.Buffer, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(82)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf, nil
}
