// Package placeholder derives tiny blur placeholder encodings from product
// images. The encoding is a base64 JPEG data URL small enough to inline in a
// page so the layout can render before the full image loads.
package placeholder

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"

	apperrors "github.com/gr-qft/teini/pkg/errors"
)

const (
	// maxDim is the bounding box of the shrunken placeholder image.
	maxDim = 8
	// jpegQuality keeps the encoded payload in the tens of bytes.
	jpegQuality = 40
)

// Encode derives the blur placeholder for one image. It is a pure function of
// the image bytes and safe for concurrent use. Undecodable input yields an
// error wrapping errors.ErrPlaceholder; callers drop that image rather than
// failing the product.
func Encode(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: decode image: %w", apperrors.ErrPlaceholder, err)
	}

	thumb := shrink(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("%w: encode placeholder: %w", apperrors.ErrPlaceholder, err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// shrink fits the image into the maxDim bounding box, preserving aspect ratio.
func shrink(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return img
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
}
