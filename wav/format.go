// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wav

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"zikichombo.org/sound/freq"
	"zikichombo.org/sound/sample"
)

const (
	_TAG_PCM     = 1
	_TAG_FLOAT32 = 3
)

// Codec returns the sample codec described by the format chunk.
func (f FmtChunk) Codec() (sample.Codec, error) {
	switch f.AudioFormat {
	case _TAG_PCM:
		switch f.BitsPerSample {
		case 8:
			return sample.SByte, nil
		case 16:
			return sample.SInt16L, nil
		case 24:
			return sample.SInt24L, nil
		case 32:
			return sample.SInt32L, nil
		}
		return 0, errors.Wrapf(ErrUnsupportedFormat, "bit depth %d", f.BitsPerSample)
	case _TAG_FLOAT32:
		if f.BitsPerSample == 32 {
			return sample.SFloat32L, nil
		}
		return 0, errors.Wrapf(ErrUnsupportedFormat, "float bit depth %d", f.BitsPerSample)
	}
	return 0, errors.Wrapf(ErrUnsupportedFormat, "format tag %d", f.AudioFormat)
}

// Freq returns the sample rate.
func (f FmtChunk) Freq() freq.T {
	return freq.T(f.SampleRate) * freq.Hertz
}

func (f FmtChunk) String() string {
	c, err := f.Codec()
	codec := "unknown"
	if err == nil {
		codec = c.String()
	}
	return fmt.Sprintf(`Samples: %s
Channels: %d
SampleRate: %s
`, codec, f.Channels, f.Freq())
}

// Frames returns the number of frames in the payload, or 0 if the block
// alignment is 0.
func (h Header) Frames() int64 {
	if h.Fmt.BlockAlign == 0 {
		return 0
	}
	return int64(h.Data.Size) / int64(h.Fmt.BlockAlign)
}

// Duration returns the play time of the payload at the declared sample
// rate, or 0 if the rate is 0.
func (h Header) Duration() time.Duration {
	if h.Fmt.SampleRate == 0 {
		return 0
	}
	return time.Duration(h.Frames()) * h.Fmt.Freq().Period()
}

// NewHeader creates a consistent canonical header for a payload of
// dataSize bytes with chans channels at frequency rate using sample codec
// sc.
func NewHeader(chans int, rate freq.T, sc sample.Codec, dataSize uint32) Header {
	tag := uint16(_TAG_PCM)
	if sc.IsFloat() {
		tag = _TAG_FLOAT32
	}
	hz := uint32(rate / freq.Hertz)
	align := uint16(chans) * uint16(sc.Bytes())
	return Header{
		Riff: RiffChunk{
			ID:     RIFF,
			Size:   HeaderSize - chunkHdrSize + dataSize,
			Format: WAVE,
		},
		Fmt: FmtChunk{
			ID:            Fmt,
			Size:          fmtBodySize,
			AudioFormat:   tag,
			Channels:      uint16(chans),
			SampleRate:    hz,
			ByteRate:      hz * uint32(align),
			BlockAlign:    align,
			BitsPerSample: uint16(sc.Bits()),
		},
		Data: DataChunk{
			ID:   Data,
			Size: dataSize,
		},
	}
}
