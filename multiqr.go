// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package multiqr splits byte streams across multiple QR codes.

A Splitter estimates the chunk length at which consecutive slices of
the input each encode as a QR code of a desired version, splits the
input at that length and encodes every chunk as an independent code.
Scanning the codes in sequence and concatenating the payloads
reconstructs the input exactly.
*/
package multiqr // import "github.com/unixdj/multiqr"

import (
	"github.com/unixdj/qr/coding"
	"github.com/unixdj/qr/split"
)

// QR error correction levels.
const (
	L = coding.L // 20% redundant
	M = coding.M // 38% redundant
	Q = coding.Q // 55% redundant
	H = coding.H // 65% redundant
)

// A Splitter splits content into chunks encodable as QR codes of the
// desired version.
//
// Version is the desired QR version, 1 to 40.  Level is the error
// correction level for probing and encoding.  Probe, if not nil,
// replaces the default probe; it must report capacity exhaustion as
// split.ErrLongText.
type Splitter struct {
	Version coding.Version // desired QR version
	Level   coding.Level   // error correction level
	Probe   ProbeFunc      // encode probe, nil for Probe(Level)
}

// Split splits content into consecutive chunks of the estimated
// length.  The last chunk may be shorter.
func (s *Splitter) Split(content []byte) ([][]byte, error) {
	siz, err := s.ChunkSize(content)
	if err != nil {
		return nil, err
	}
	chunks := make([][]byte, 0, (len(content)+siz-1)/siz)
	for len(content) > siz {
		chunks = append(chunks, content[:siz])
		content = content[siz:]
	}
	return append(chunks, content), nil
}

// A Code is one QR code of a multi-code sequence.
type Code struct {
	*coding.Code
	Version coding.Version // actual QR version
	Seq     int            // position in the sequence, 1-based
	Total   int            // number of codes in the sequence
}

// Encode splits content and encodes each chunk as a QR code.  Every
// chunk is encoded at its own minimal version, which stays at or
// below the desired version as long as the encoding density of the
// content is reasonably even.
func (s *Splitter) Encode(content []byte) ([]*Code, error) {
	chunks, err := s.Split(content)
	if err != nil {
		return nil, err
	}
	codes := make([]*Code, len(chunks))
	for i, chunk := range chunks {
		segs, v, err := split.Split(
			split.String{Text: string(chunk)}, s.Level, split.QR)
		if err != nil {
			return nil, err
		}
		cc, err := coding.Encode(v, s.Level, segs...)
		if err != nil {
			return nil, err
		}
		codes[i] = &Code{
			Code:    cc,
			Version: v,
			Seq:     i + 1,
			Total:   len(chunks),
		}
	}
	return codes, nil
}
