// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package multiqr

import (
	"fmt"
	"io"
)

// Label returns the sequence heading for the code, e.g. "wallet
// (2/5) v16".
func (c *Code) Label(label string) string {
	return fmt.Sprintf("%s (%d/%d) v%s",
		label, c.Seq, c.Total, c.Version)
}

// black returns the colour of the pixel at (x,y), possibly inverted.
// Pixels outside the code, in the quiet zone, are white.
func (c *Code) black(x, y int, invert bool) bool {
	return c.Black(x, y) != invert
}

// Text writes the code to w as UTF-8 half-block art, two pixel rows
// per line, with a quiet zone of border pixels.
func (c *Code) Text(w io.Writer, border int, invert bool) error {
	siz := c.Size
	pix := siz + 2*border
	buf := make([]byte, 0, (pix*3+1)*(pix+1)/2)
	for y := -border; y < siz+border; y += 2 {
		for x := -border; x < siz+border; x++ {
			top := c.black(x, y, invert)
			bot := y+1 < siz+border && c.black(x, y+1, invert)
			switch {
			case top && bot:
				buf = append(buf, "█"...)
			case top:
				buf = append(buf, "▀"...)
			case bot:
				buf = append(buf, "▄"...)
			default:
				buf = append(buf, ' ')
			}
		}
		buf = append(buf, '\n')
	}
	_, err := w.Write(buf)
	return err
}

// ASCII writes the code to w as ASCII art, two characters per pixel,
// with a quiet zone of border pixels.
func (c *Code) ASCII(w io.Writer, border int, invert bool) error {
	siz := c.Size
	pix := siz + 2*border
	buf := make([]byte, 0, (pix*2+1)*pix)
	for y := -border; y < siz+border; y++ {
		for x := -border; x < siz+border; x++ {
			var p byte = ' '
			if c.black(x, y, invert) {
				p = '#'
			}
			buf = append(buf, p, p)
		}
		buf = append(buf, '\n')
	}
	_, err := w.Write(buf)
	return err
}
