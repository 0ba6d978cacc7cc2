// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package multiqr

import (
	"errors"

	"github.com/unixdj/qr/coding"
	"github.com/unixdj/qr/split"
)

var (
	ErrVersion      = errors.New("multiqr: invalid version")
	ErrEmptyContent = errors.New("multiqr: empty content")
)

// A ProbeFunc reports the version of the smallest QR code encoding
// data, or split.ErrLongText if data fits in no QR code.  Any other
// error is an invariant violation and aborts the caller.
type ProbeFunc func(data []byte) (coding.Version, error)

// Probe returns a ProbeFunc encoding data as a string with default
// segmentation at the given error correction level.
func Probe(level coding.Level) ProbeFunc {
	return func(data []byte) (coding.Version, error) {
		_, v, err := split.Split(split.String{Text: string(data)},
			level, split.QR)
		return v, err
	}
}

/*
ChunkSize returns the length of the chunks splitting content into
pieces that each encode as a QR code of the desired version.

The search probes prefixes of content, halving the prefix length when
the probed version overshoots the target or the prefix exceeds QR
capacity, and growing it by half when the version undershoots.  Once a
prefix hits the target version exactly, the length is rebalanced so
that the last chunk is not disproportionately short.  If all of
content fits in a code no larger than the desired version, the whole
length is returned and no splitting is needed.

The estimate treats content as homogeneous: the encoding efficiency of
the sampled prefix stands in for the whole buffer.  Chunks of content
whose encoding density varies wildly may encode to versions other than
the desired one.
*/
func (s *Splitter) ChunkSize(content []byte) (int, error) {
	ver := s.Version
	if ver < coding.MinVersion || ver > coding.MaxVersion {
		return 0, ErrVersion
	}
	if len(content) == 0 {
		return 0, ErrEmptyContent
	}
	probe := s.Probe
	if probe == nil {
		probe = Probe(s.Level)
	}
	total := len(content)
	for {
		w, err := probe(content[:total])
		if err != nil {
			if !errors.Is(err, split.ErrLongText) {
				panic("multiqr: probe: " + err.Error())
			}
			total /= 2
			continue
		}
		if w > coding.MaxVersion {
			// Micro QR from the probe; unmodelled size class.
			panic("multiqr: probe: micro version " + w.String())
		}
		if w < ver && total >= len(content) {
			// The whole content encodes below the desired
			// version.
			return len(content), nil
		}
		if w == ver {
			break
		}
		if w > ver {
			total /= 2
		} else {
			total = total * 3 / 2
		}
		if total >= len(content) {
			return len(content), nil
		}
	}
	// Even out the chunk lengths instead of leaving the last chunk
	// shorter.
	pieces := len(content)/total + 1
	return len(content)/pieces + 1, nil
}
