package picture

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExplorer(t *testing.T, w, h int) *Explorer {
	t.Helper()
	pic, err := New(gradient(w, h))
	require.NoError(t, err)
	return NewExplorer(pic, "test")
}

func TestNewExplorerDefaults(t *testing.T) {
	ex := newTestExplorer(t, 20, 10)

	assert.Equal(t, DefaultZoom, ex.Zoom())
	x, y := ex.Selected()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, "test", ex.Title())
}

func TestOpenUsesPathAsTitle(t *testing.T) {
	path := writePNG(t, gradient(3, 3))

	ex, err := Open(path, "")
	require.NoError(t, err)
	assert.Equal(t, path, ex.Title())

	ex, err = Open(path, "Beach")
	require.NoError(t, err)
	assert.Equal(t, "Beach", ex.Title())
}

func TestSelectClamps(t *testing.T) {
	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"inside", 5, 3, 5, 3},
		{"negative", -4, -1, 0, 0},
		{"past right edge", 20, 3, 19, 3},
		{"past bottom edge", 2, 10, 2, 9},
		{"far outside", 1000, 1000, 19, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := newTestExplorer(t, 20, 10)
			ex.Select(tt.x, tt.y)
			x, y := ex.Selected()
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestMove(t *testing.T) {
	ex := newTestExplorer(t, 5, 5)

	ex.Move(-1, 0)
	x, _ := ex.Selected()
	assert.Equal(t, 0, x)

	ex.Move(1, 2)
	x, y := ex.Selected()
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)

	ex.Move(10, 10)
	x, y = ex.Selected()
	assert.Equal(t, 4, x)
	assert.Equal(t, 4, y)
}

func TestSelectDisplayAcrossZoomLevels(t *testing.T) {
	for _, z := range ZoomLevels {
		ex := newTestExplorer(t, 40, 30)
		require.NoError(t, ex.SetZoom(z))

		// pixel (12, 8) lands on a whole display position at every zoom
		ex.SelectDisplay(12*z/100, 8*z/100)
		x, y := ex.Selected()
		assert.Equal(t, 12, x, "zoom %d", z)
		assert.Equal(t, 8, y, "zoom %d", z)
		assert.Equal(t, color.RGBA{R: 12, G: 8, B: 20, A: 0xff}, ex.Color(), "zoom %d", z)
	}
}

func TestSelectDisplayTruncates(t *testing.T) {
	ex := newTestExplorer(t, 40, 30)
	require.NoError(t, ex.SetZoom(500))

	ex.SelectDisplay(14, 9)
	x, y := ex.Selected()
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)

	ex.SelectDisplay(10000, -3)
	x, y = ex.Selected()
	assert.Equal(t, 39, x)
	assert.Equal(t, 0, y)
}

func TestDisplayPosition(t *testing.T) {
	ex := newTestExplorer(t, 40, 30)
	ex.Select(10, 4)
	require.NoError(t, ex.SetZoom(150))

	dx, dy := ex.DisplayPosition()
	assert.Equal(t, 15, dx)
	assert.Equal(t, 6, dy)
}

func TestSelectText(t *testing.T) {
	ex := newTestExplorer(t, 10, 10)

	require.NoError(t, ex.SelectText(" 3", "4 "))
	x, y := ex.Selected()
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)

	assert.ErrorIs(t, ex.SelectText("abc", "1"), ErrCoordinate)
	assert.ErrorIs(t, ex.SelectText("1", "2.5"), ErrCoordinate)
	assert.ErrorIs(t, ex.SelectText("", ""), ErrCoordinate)
	x, y = ex.Selected()
	assert.Equal(t, 3, x, "bad input leaves selection unchanged")
	assert.Equal(t, 4, y)

	require.NoError(t, ex.SelectText("-5", "99"))
	x, y = ex.Selected()
	assert.Equal(t, 0, x)
	assert.Equal(t, 9, y)
}

func TestSetZoom(t *testing.T) {
	ex := newTestExplorer(t, 10, 10)

	assert.ErrorIs(t, ex.SetZoom(300), ErrZoom)
	assert.ErrorIs(t, ex.SetZoom(0), ErrZoom)
	assert.Equal(t, DefaultZoom, ex.Zoom())

	require.NoError(t, ex.SetZoom(25))
	assert.Equal(t, 25, ex.Zoom())
}

func TestZoomStepping(t *testing.T) {
	ex := newTestExplorer(t, 10, 10)

	for ex.ZoomIn() {
	}
	assert.Equal(t, 500, ex.Zoom())
	assert.False(t, ex.ZoomIn())

	for ex.ZoomOut() {
	}
	assert.Equal(t, 25, ex.Zoom())
	assert.False(t, ex.ZoomOut())

	assert.True(t, ex.ZoomIn())
	assert.Equal(t, 50, ex.Zoom())
}

func TestScaledSizeAndView(t *testing.T) {
	tests := []struct {
		zoom  int
		wantW int
		wantH int
	}{
		{25, 10, 5},
		{75, 30, 15},
		{100, 40, 20},
		{150, 60, 30},
		{500, 200, 100},
	}

	for _, tt := range tests {
		ex := newTestExplorer(t, 40, 20)
		require.NoError(t, ex.SetZoom(tt.zoom))

		w, h := ex.ScaledSize()
		assert.Equal(t, tt.wantW, w, "zoom %d", tt.zoom)
		assert.Equal(t, tt.wantH, h, "zoom %d", tt.zoom)

		view := ex.View()
		assert.Equal(t, tt.wantW, view.Bounds().Dx())
		assert.Equal(t, tt.wantH, view.Bounds().Dy())
	}
}

func TestViewMatchesSelectDisplay(t *testing.T) {
	for _, z := range ZoomLevels {
		ex := newTestExplorer(t, 7, 5)
		require.NoError(t, ex.SetZoom(z))
		view := ex.View()

		w, h := ex.ScaledSize()
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				ex.SelectDisplay(dx, dy)
				assert.Equal(t, ex.Color(), color.RGBAModel.Convert(view.At(dx, dy)),
					"zoom %d display (%d, %d)", z, dx, dy)
			}
		}
	}
}

func TestViewThreeQuarterZoom(t *testing.T) {
	ex := newTestExplorer(t, 4, 1)
	require.NoError(t, ex.SetZoom(75))

	// display cells 0..2 show pixels 0, 1 and 2
	view := ex.View()
	require.Equal(t, 3, view.Bounds().Dx())
	for d := 0; d < 3; d++ {
		r, _, _, _ := view.At(d, 0).RGBA()
		assert.Equal(t, uint32(d), r>>8, "display %d", d)
	}
}

func TestDisplayPositionShowsSelection(t *testing.T) {
	for _, z := range ZoomLevels {
		ex := newTestExplorer(t, 9, 9)
		require.NoError(t, ex.SetZoom(z))
		w, _ := ex.ScaledSize()

		for x := 0; x < 9; x++ {
			ex.Select(x, 0)
			dx, _ := ex.DisplayPosition()
			require.True(t, dx >= 0 && dx < w, "zoom %d pixel %d at %d", z, x, dx)

			shown := dx * 100 / z
			assert.LessOrEqual(t, shown, x, "zoom %d pixel %d", z, x)
			if z >= 100 {
				assert.Equal(t, x, shown, "zoom %d pixel %d", z, x)
			}
		}
	}
}

func TestViewNearestNeighbour(t *testing.T) {
	ex := newTestExplorer(t, 4, 4)
	require.NoError(t, ex.SetZoom(200))

	view := ex.View()
	r, g, _, _ := view.At(5, 3).RGBA()
	assert.Equal(t, uint32(2), r>>8)
	assert.Equal(t, uint32(1), g>>8)
}

func TestViewCachedPerZoom(t *testing.T) {
	ex := newTestExplorer(t, 4, 4)

	first := ex.View()
	assert.Same(t, first, ex.View())

	require.NoError(t, ex.SetZoom(50))
	assert.Equal(t, 2, ex.View().Bounds().Dx())
}

func TestScaledSizeMinimum(t *testing.T) {
	ex := newTestExplorer(t, 2, 1)
	require.NoError(t, ex.SetZoom(25))

	w, h := ex.ScaledSize()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestReadout(t *testing.T) {
	ex := newTestExplorer(t, 10, 10)
	ex.Select(3, 5)

	assert.Equal(t, "R: 3 G: 5 B: 8  Color at location:", ex.Readout())
}

func TestSwatch(t *testing.T) {
	ex := newTestExplorer(t, 10, 10)
	ex.Select(6, 2)

	chip := ex.Swatch()
	assert.Equal(t, SwatchSize, chip.Bounds().Dx())
	assert.Equal(t, SwatchSize, chip.Bounds().Dy())

	black := color.RGBA{A: 0xff}
	assert.Equal(t, black, chip.RGBAAt(0, 0))
	assert.Equal(t, black, chip.RGBAAt(SwatchSize-1, SwatchSize/2))
	assert.Equal(t, black, chip.RGBAAt(SwatchSize/2, SwatchSize-1))
	assert.Equal(t, color.RGBA{R: 6, G: 2, B: 8, A: 0xff}, chip.RGBAAt(SwatchSize/2, SwatchSize/2))
	assert.Equal(t, color.RGBA{R: 6, G: 2, B: 8, A: 0xff}, chip.RGBAAt(1, 1))
}
