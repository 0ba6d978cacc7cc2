// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package multiqr

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Image returns an image displaying the code at the given number of
// image pixels per QR pixel, with a quiet zone of border QR pixels.
func (c *Code) Image(scale, border int) image.Image {
	return &codeImage{c, scale, border}
}

// WritePNG writes the code to w as a PNG image.
func (c *Code) WritePNG(w io.Writer, scale, border int) error {
	return png.Encode(w, c.Image(scale, border))
}

// codeImage implements image.Image.
type codeImage struct {
	*Code
	scale  int
	border int
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.border) * c.scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if c.Black(x/c.scale-c.border, y/c.scale-c.border) {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}
