// Package picture holds raster pictures and the explorer view-model used to
// inspect them.
//
// An Explorer keeps one immutable image, a zoom level from a fixed menu and
// a selected pixel that is clamped to the image bounds after every update.
// The colour under the selected pixel is reported independently of the zoom
// level, both as a text readout and as a small outlined swatch image.
//
// Example:
//
//	pic, err := picture.Load("beach.jpg")
//	if err != nil {
//		return err
//	}
//	ex := picture.NewExplorer(pic, "beach")
//	ex.SetZoom(200)
//	ex.SelectDisplay(81, 40) // selects pixel (40, 20)
//	fmt.Println(ex.Readout())
package picture
