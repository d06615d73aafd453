// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wav

import "fmt"

// FourCC is a raw 4 byte chunk tag.  It is not a string and has no
// terminator; two tags are equal only if all 4 bytes are.
type FourCC [4]byte

var (
	RIFF = FourCC{'R', 'I', 'F', 'F'}
	WAVE = FourCC{'W', 'A', 'V', 'E'}
	Fmt  = FourCC{'f', 'm', 't', ' '}
	Data = FourCC{'d', 'a', 't', 'a'}
)

// ParseFourCC makes a tag from s, which must be exactly 4 bytes long.
func ParseFourCC(s string) (FourCC, error) {
	var f FourCC
	if len(s) != len(f) {
		return f, fmt.Errorf("tag %q is %d bytes, need %d", s, len(s), len(f))
	}
	copy(f[:], s)
	return f, nil
}

// String renders the tag as 4 characters, with non printable bytes
// replaced by '.'.
func (f FourCC) String() string {
	var b [4]byte
	for i, c := range f {
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		b[i] = c
	}
	return string(b[:])
}

// Equal reports whether f and g hold the same 4 bytes.
func (f FourCC) Equal(g FourCC) bool {
	return f == g
}

const (
	chunkHdrSize = 8 // tag + length

	riffChunkSize = 12 // tag + length + form type
	fmtChunkSize  = chunkHdrSize + fmtBodySize
	dataChunkSize = chunkHdrSize

	// fmtBodySize is the size of the PCM format chunk body and the value
	// of its length field.
	fmtBodySize = 2 + 2 + 4 + 4 + 2 + 2
)

// HeaderSize is the size of the canonical three chunk header.
const HeaderSize = riffChunkSize + fmtChunkSize + dataChunkSize

// byte offsets of every header field.
const (
	offRiffID     = 0
	offRiffSize   = 4
	offRiffFormat = 8

	offFmtID            = 12
	offFmtSize          = 16
	offFmtAudioFormat   = 20
	offFmtChannels      = 22
	offFmtSampleRate    = 24
	offFmtByteRate      = 28
	offFmtBlockAlign    = 32
	offFmtBitsPerSample = 34

	offDataID   = 36
	offDataSize = 40
)
