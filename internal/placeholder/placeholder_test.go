package placeholder

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/gr-qft/teini/pkg/errors"
)

// testImage renders a small gradient PNG.
func testImage(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 11), B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEncodeProducesDataURL(t *testing.T) {
	out, err := Encode(testImage(t, 64, 48))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "data:image/jpeg;base64,"))
	// A placeholder must stay small enough to inline.
	assert.Less(t, len(out), 2048)
}

func TestEncodeIsDeterministic(t *testing.T) {
	data := testImage(t, 32, 32)

	first, err := Encode(data)
	require.NoError(t, err)
	second, err := Encode(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEncodeTinyImagePassesThrough(t *testing.T) {
	out, err := Encode(testImage(t, 4, 4))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/jpeg;base64,"))
}

func TestEncodeRejectsGarbage(t *testing.T) {
	_, err := Encode([]byte("not an image"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPlaceholder))
}
