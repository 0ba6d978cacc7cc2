// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package multiqr_test

import (
	"bytes"
	"testing"

	"github.com/unixdj/multiqr"
	"github.com/unixdj/qr/coding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContent returns n bytes of printable ASCII.
func testContent(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' ' + byte(i%95)
	}
	return b
}

func TestSplitReconstruct(t *testing.T) {
	t.Parallel()
	content := testContent(3000)
	s := multiqr.Splitter{Version: 10, Level: multiqr.M}
	chunks, err := s.Split(content)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	for i, c := range chunks[:len(chunks)-1] {
		assert.Len(t, c, len(chunks[0]), "chunk %d", i)
	}
	assert.LessOrEqual(t, len(chunks[len(chunks)-1]), len(chunks[0]))
	assert.Equal(t, content, bytes.Join(chunks, nil))
}

func TestEncode(t *testing.T) {
	t.Parallel()
	content := bytes.Repeat([]byte{'X'}, 1200)
	s := multiqr.Splitter{Version: 8, Level: multiqr.M}
	codes, err := s.Encode(content)
	require.NoError(t, err)
	require.Greater(t, len(codes), 1)
	for i, c := range codes {
		assert.Equal(t, i+1, c.Seq)
		assert.Equal(t, len(codes), c.Total)
		// Homogeneous content: every chunk stays at or below the
		// desired version.
		assert.LessOrEqual(t, c.Version, coding.Version(8),
			"code %d", i)
		assert.Equal(t, 4*int(c.Version)+17, c.Size, "code %d", i)
	}
}

func TestEncodeSingle(t *testing.T) {
	t.Parallel()
	s := multiqr.Splitter{Version: 10, Level: multiqr.M}
	codes, err := s.Encode([]byte("HELLO MULTIQR"))
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, 1, codes[0].Seq)
	assert.Equal(t, 1, codes[0].Total)
	assert.Equal(t, coding.Version(1), codes[0].Version)
}

func TestEncodeErrors(t *testing.T) {
	t.Parallel()
	s := multiqr.Splitter{Version: 41}
	_, err := s.Encode([]byte("DATA"))
	assert.ErrorIs(t, err, multiqr.ErrVersion)
	s.Version = 16
	_, err = s.Encode(nil)
	assert.ErrorIs(t, err, multiqr.ErrEmptyContent)
}
