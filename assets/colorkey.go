package assets

import (
	"image"
	"image/color"
	"image/draw"
)

// Black is the transparency key applied to every loaded bitmap.
var Black = color.NRGBA{A: 0xff}

// ColorKey returns a copy of src where every pixel whose RGB equals key is
// fully transparent.
func ColorKey(src image.Image, key color.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] == key.R && dst.Pix[i+1] == key.G && dst.Pix[i+2] == key.B {
			dst.Pix[i+3] = 0
		}
	}
	return dst
}
