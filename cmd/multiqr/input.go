// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	errNonASCII = errors.New("standard input contains non-ASCII characters")
	errControl  = errors.New("standard input contains control characters")
)

// transliterate decomposes UTF-8 input and drops combining marks, so
// that accented letters become their plain ASCII counterparts.
func transliterate(buf []byte) ([]byte, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)),
		norm.NFC)
	out, _, err := transform.Bytes(t, buf)
	return out, err
}

// readInput reads r until EOF and validates the data for encoding:
// newlines are dropped, anything else outside printable ASCII is
// rejected.  With translit set the data is transliterated first.
func readInput(r io.Reader, translit bool) ([]byte, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if translit {
		if buf, err = transliterate(buf); err != nil {
			return nil, err
		}
	}
	out := make([]byte, 0, len(buf))
	for _, b := range buf {
		switch {
		case b == '\n' || b == '\r':
			continue
		case b >= 0x80:
			return nil, errNonASCII
		case b < 0x20 || b == 0x7f:
			return nil, errControl
		}
		out = append(out, b)
	}
	return out, nil
}
