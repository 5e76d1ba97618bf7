package hal

import (
	"fmt"
	"image"
)

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGB565 packs an 8-bit colour into the framebuffer's 16-bit encoding.
func RGB565(r, g, b uint8) uint16 { return rgb565(r, g, b) }

// expandRGB565 writes the RGBA expansion of src into dst.
func expandRGB565(dst []byte, src []byte) {
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}

// Snapshot copies fb into a new RGBA image.
func Snapshot(fb Framebuffer) (*image.RGBA, error) {
	if fb == nil {
		return nil, fmt.Errorf("snapshot: %w: no framebuffer", ErrNotImplemented)
	}
	if fb.Format() != PixelFormatRGB565 {
		return nil, fmt.Errorf("snapshot: unsupported pixel format %d", fb.Format())
	}
	w, h := fb.Width(), fb.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	src := fb.Buffer()
	if hf, ok := fb.(*hostFramebuffer); ok {
		src = make([]byte, len(hf.buf))
		hf.snapshotRGB565(src)
	}
	stride := fb.StrideBytes()
	for y := 0; y < h; y++ {
		row := src[y*stride : y*stride+w*2]
		expandRGB565(img.Pix[y*img.Stride:(y+1)*img.Stride], row)
	}
	return img, nil
}
