package services_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashasvi9199/MatchFind/services"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 50, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCompressImageScalesDownPreservingAspect(t *testing.T) {
	out, err := services.CompressImage(pngBytes(t, 1600, 800), 800, 70)
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestCompressImagePortraitBoundsLongerSide(t *testing.T) {
	out, err := services.CompressImage(pngBytes(t, 600, 1200), 800, 70)
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
}

func TestCompressImageKeepsSmallImages(t *testing.T) {
	out, err := services.CompressImage(pngBytes(t, 300, 200), 800, 70)
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestCompressImageRejectsGarbage(t *testing.T) {
	_, err := services.CompressImage([]byte("not an image"), 800, 70)
	assert.Error(t, err)
}

func TestUploadAvatarKeysUnderOwner(t *testing.T) {
	uploader := services.NewMemoryUploader()
	media := services.NewMediaService(uploader)

	url, err := media.UploadAvatar(context.Background(), pngBytes(t, 100, 100), "u1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "memory://avatars/u1/"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)
	assert.Len(t, uploader.Objects, 1)
}
