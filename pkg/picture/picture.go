// ABOUTME: Raster picture loading with the stdlib and x/image decoders
// ABOUTME: Provides pixel access in zero-based image coordinates
package picture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrNotFound means the picture path does not exist or is not a file
	ErrNotFound = errors.New("does not exist or is not a file")
	// ErrFormat means the file is not a decodable raster image
	ErrFormat = errors.New("unsupported image format")
)

// Picture is an immutable raster image with the file it was read from
type Picture struct {
	img      image.Image
	fileName string
	format   string
}

// New wraps an already decoded image
func New(img image.Image) (*Picture, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrFormat)
	}
	return &Picture{img: img}, nil
}

// Load decodes a PNG, JPEG, GIF, BMP, TIFF or WebP file
func Load(path string) (*Picture, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s %w", path, ErrNotFound)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s %w", path, ErrNotFound)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s %w", path, ErrNotFound)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFormat, path, err)
	}

	pic, err := New(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	pic.fileName = path
	pic.format = format

	w, h := pic.Size()
	log.Printf("Loaded picture: %s (%s, %dx%d)", path, format, w, h)
	return pic, nil
}

// FileName returns the path the picture was loaded from
func (p *Picture) FileName() string {
	return p.fileName
}

// Format returns the decoder name, such as "png"
func (p *Picture) Format() string {
	return p.format
}

// Image returns the underlying image
func (p *Picture) Image() image.Image {
	return p.img
}

// Size returns width and height in pixels
func (p *Picture) Size() (int, int) {
	b := p.img.Bounds()
	return b.Dx(), b.Dy()
}

// Width returns the width in pixels
func (p *Picture) Width() int {
	return p.img.Bounds().Dx()
}

// Height returns the height in pixels
func (p *Picture) Height() int {
	return p.img.Bounds().Dy()
}

// Contains reports whether (x, y) is a pixel of the picture
func (p *Picture) Contains(x, y int) bool {
	w, h := p.Size()
	return x >= 0 && x < w && y >= 0 && y < h
}

// ColorAt returns the non-premultiplied colour of pixel (x, y).
// Coordinates outside the picture give the zero colour.
func (p *Picture) ColorAt(x, y int) color.NRGBA {
	if !p.Contains(x, y) {
		return color.NRGBA{}
	}
	b := p.img.Bounds()
	return color.NRGBAModel.Convert(p.img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
}

// String describes the picture the way JES prints it
func (p *Picture) String() string {
	return fmt.Sprintf("Picture, filename %s height %d width %d", p.fileName, p.Height(), p.Width())
}
