// ABOUTME: Picture explorer view-model with zoom and pixel selection
// ABOUTME: Keeps the selected pixel clamped and reports its colour
package picture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
)

// ZoomLevels lists the zoom menu in percent, smallest first
var ZoomLevels = []int{25, 50, 75, 100, 150, 200, 500}

const (
	// DefaultZoom is the zoom level of a new explorer, in percent
	DefaultZoom = 100

	// SwatchSize is the edge length of the colour preview square
	SwatchSize = 24
)

var (
	// ErrZoom means a zoom level is not on the menu
	ErrZoom = errors.New("unsupported zoom level")
	// ErrCoordinate means typed coordinate text is not an integer
	ErrCoordinate = errors.New("invalid coordinate")
)

// Explorer is the state behind an explore window: one picture, the zoom
// level and the selected pixel. It is not safe for concurrent use.
type Explorer struct {
	pic   *Picture
	title string
	zoom  int
	x, y  int

	view     image.Image
	viewZoom int
}

// NewExplorer opens pic at 100% with pixel (0, 0) selected.
// An empty title falls back to the picture's file name.
func NewExplorer(pic *Picture, title string) *Explorer {
	if title == "" {
		title = pic.FileName()
	}
	return &Explorer{pic: pic, title: title, zoom: DefaultZoom}
}

// Open loads path and returns an explorer for it
func Open(path, title string) (*Explorer, error) {
	pic, err := Load(path)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = path
	}
	return NewExplorer(pic, title), nil
}

// Title returns the window title
func (e *Explorer) Title() string {
	return e.title
}

// Picture returns the explored picture
func (e *Explorer) Picture() *Picture {
	return e.pic
}

// Zoom returns the current zoom level in percent
func (e *Explorer) Zoom() int {
	return e.zoom
}

// SetZoom selects a level from ZoomLevels. The selection is re-clamped.
func (e *Explorer) SetZoom(percent int) error {
	if zoomIndex(percent) < 0 {
		return fmt.Errorf("%w: %d%%", ErrZoom, percent)
	}
	e.zoom = percent
	e.clamp()
	return nil
}

// ZoomIn steps to the next larger level and reports whether it changed
func (e *Explorer) ZoomIn() bool {
	i := zoomIndex(e.zoom)
	if i+1 >= len(ZoomLevels) {
		return false
	}
	e.zoom = ZoomLevels[i+1]
	return true
}

// ZoomOut steps to the next smaller level and reports whether it changed
func (e *Explorer) ZoomOut() bool {
	i := zoomIndex(e.zoom)
	if i <= 0 {
		return false
	}
	e.zoom = ZoomLevels[i-1]
	return true
}

// ScaledSize returns the displayed image size at the current zoom.
// Each side is at least one pixel.
func (e *Explorer) ScaledSize() (int, int) {
	return scaledSize(e.pic.Width(), e.pic.Height(), e.zoom)
}

// View returns the picture rescaled to the current zoom. Display pixel d
// shows image pixel d*100/zoom, the same mapping SelectDisplay uses.
func (e *Explorer) View() image.Image {
	if e.view != nil && e.viewZoom == e.zoom {
		return e.view
	}

	w, h := e.ScaledSize()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for dy := 0; dy < h; dy++ {
		sy := min(dy*100/e.zoom, e.pic.Height()-1)
		for dx := 0; dx < w; dx++ {
			sx := min(dx*100/e.zoom, e.pic.Width()-1)
			dst.SetNRGBA(dx, dy, e.pic.ColorAt(sx, sy))
		}
	}

	e.view = dst
	e.viewZoom = e.zoom
	return dst
}

// Selected returns the selected pixel in image coordinates
func (e *Explorer) Selected() (int, int) {
	return e.x, e.y
}

// Select moves the selection to (x, y), clamped to the picture
func (e *Explorer) Select(x, y int) {
	e.x, e.y = x, y
	e.clamp()
}

// Move shifts the selection by (dx, dy), clamped to the picture
func (e *Explorer) Move(dx, dy int) {
	e.Select(e.x+dx, e.y+dy)
}

// SelectDisplay selects the pixel under display position (dx, dy) of the
// zoomed view
func (e *Explorer) SelectDisplay(dx, dy int) {
	e.Select(dx*100/e.zoom, dy*100/e.zoom)
}

// DisplayPosition returns the first display position showing the selected
// pixel. Below 100% some pixels are not drawn; for those it returns the
// position of the nearest drawn pixel before it.
func (e *Explorer) DisplayPosition() (int, int) {
	w, h := e.ScaledSize()
	return displayPos(e.x, e.zoom, w), displayPos(e.y, e.zoom, h)
}

// SelectText selects the pixel named by typed coordinate text. The
// selection is unchanged if either value is not an integer.
func (e *Explorer) SelectText(xs, ys string) error {
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return fmt.Errorf("%w: x %q", ErrCoordinate, xs)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return fmt.Errorf("%w: y %q", ErrCoordinate, ys)
	}
	e.Select(x, y)
	return nil
}

// Color returns the RGB colour of the selected pixel
func (e *Explorer) Color() color.RGBA {
	c := e.pic.ColorAt(e.x, e.y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Readout renders the colour of the selected pixel for the info panel
func (e *Explorer) Readout() string {
	c := e.Color()
	return fmt.Sprintf("R: %d G: %d B: %d  Color at location:", c.R, c.G, c.B)
}

// Swatch returns the paint chip: a SwatchSize square filled with the
// selected colour inside a one-pixel black outline
func (e *Explorer) Swatch() *image.RGBA {
	chip := image.NewRGBA(image.Rect(0, 0, SwatchSize, SwatchSize))
	draw.Draw(chip, chip.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	inner := image.Rect(1, 1, SwatchSize-1, SwatchSize-1)
	draw.Draw(chip, inner, image.NewUniform(e.Color()), image.Point{}, draw.Src)
	return chip
}

func (e *Explorer) clamp() {
	w, h := e.pic.Size()
	e.x = clampInt(e.x, 0, w-1)
	e.y = clampInt(e.y, 0, h-1)
}

func zoomIndex(percent int) int {
	for i, z := range ZoomLevels {
		if z == percent {
			return i
		}
	}
	return -1
}

func scaledSize(w, h, percent int) (int, int) {
	return max(1, w*percent/100), max(1, h*percent/100)
}

func displayPos(v, percent, size int) int {
	d := (v*percent + 99) / 100
	if d*100/percent != v {
		d = v * percent / 100
	}
	return min(d, size-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
