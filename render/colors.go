package render

import "image/color"

var (
	Background      = color.NRGBA{R: 25, G: 25, B: 25, A: 0xff}
	PanelBackground = color.NRGBA{R: 45, G: 45, B: 45, A: 0xff}
	White           = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Grey            = color.NRGBA{R: 128, G: 128, B: 128, A: 0xff}
	Green           = color.NRGBA{G: 0xff, A: 0xff}
)
