package picture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// gradient returns a w x h image whose pixel (x, y) is (x, y, x+y)
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 0xff})
		}
	}
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pic.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestLoadPNG(t *testing.T) {
	path := writePNG(t, gradient(10, 6))

	pic, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, pic.Width())
	assert.Equal(t, 6, pic.Height())
	assert.Equal(t, "png", pic.Format())
	assert.Equal(t, path, pic.FileName())
	assert.Equal(t, color.NRGBA{R: 3, G: 4, B: 7, A: 0xff}, pic.ColorAt(3, 4))
}

func TestLoadBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)
	src := gradient(4, 4)
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, image.Point{}, draw.Src)
	require.NoError(t, bmp.Encode(f, rgba))
	require.NoError(t, f.Close())

	pic, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bmp", pic.Format())
	assert.Equal(t, uint8(2), pic.ColorAt(2, 1).R)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Load(dir)
	assert.ErrorIs(t, err, ErrNotFound)

	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0644))
	_, err = Load(junk)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrFormat)

	_, err = New(image.NewRGBA(image.Rect(0, 0, 0, 5)))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestColorAtOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	img.SetNRGBA(10, 20, color.NRGBA{R: 9, A: 0xff})

	pic, err := New(img)
	require.NoError(t, err)
	assert.Equal(t, uint8(9), pic.ColorAt(0, 0).R)
	assert.Equal(t, color.NRGBA{}, pic.ColorAt(3, 0))
	assert.False(t, pic.Contains(-1, 0))
}

func TestPictureString(t *testing.T) {
	pic, err := Load(writePNG(t, gradient(5, 2)))
	require.NoError(t, err)
	assert.Contains(t, pic.String(), "height 2 width 5")
}
