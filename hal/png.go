package hal

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// EncodePNG writes the framebuffer as a PNG, upscaled by an integer factor with
// nearest-neighbour sampling so pixel edges stay sharp.
func EncodePNG(w io.Writer, fb Framebuffer, scale int) error {
	if scale < 1 {
		return fmt.Errorf("png: invalid scale %d", scale)
	}
	img, err := Snapshot(fb)
	if err != nil {
		return err
	}
	out := image.Image(img)
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		out = dst
	}
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	return nil
}
