// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// RiffChunk is the outer chunk of a wav file.  Size counts every byte
// following the Size field.
type RiffChunk struct {
	ID     FourCC
	Size   uint32
	Format FourCC
}

// FmtChunk is the PCM format chunk.
type FmtChunk struct {
	ID            FourCC
	Size          uint32
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// DataChunk describes the payload which follows the header.  Size is the
// payload length in bytes.
type DataChunk struct {
	ID   FourCC
	Size uint32
}

// Header is the canonical 44 byte header of a wav file holding exactly a
// RIFF, a fmt and a data chunk, in that order.
//
// Header is a value; methods never modify the receiver.
type Header struct {
	Riff RiffChunk
	Fmt  FmtChunk
	Data DataChunk
}

// Decode extracts a Header from the first HeaderSize bytes of b.  It only
// reads fields at their fixed offsets; tags are not checked, see
// Validator for that.
//
// If b is shorter than HeaderSize, Decode returns a *TruncatedError.
func Decode(b []byte) (Header, error) {
	var h Header
	if len(b) < HeaderSize {
		return h, &TruncatedError{Read: len(b)}
	}
	le := binary.LittleEndian
	copy(h.Riff.ID[:], b[offRiffID:])
	h.Riff.Size = le.Uint32(b[offRiffSize:])
	copy(h.Riff.Format[:], b[offRiffFormat:])

	copy(h.Fmt.ID[:], b[offFmtID:])
	h.Fmt.Size = le.Uint32(b[offFmtSize:])
	h.Fmt.AudioFormat = le.Uint16(b[offFmtAudioFormat:])
	h.Fmt.Channels = le.Uint16(b[offFmtChannels:])
	h.Fmt.SampleRate = le.Uint32(b[offFmtSampleRate:])
	h.Fmt.ByteRate = le.Uint32(b[offFmtByteRate:])
	h.Fmt.BlockAlign = le.Uint16(b[offFmtBlockAlign:])
	h.Fmt.BitsPerSample = le.Uint16(b[offFmtBitsPerSample:])

	copy(h.Data.ID[:], b[offDataID:])
	h.Data.Size = le.Uint32(b[offDataSize:])
	return h, nil
}

// Encode lays out h in wire order.  Decode(Encode(h)) == h for every h.
func Encode(h Header) [HeaderSize]byte {
	var buf [HeaderSize]byte
	b := buf[:]
	le := binary.LittleEndian
	copy(b[offRiffID:], h.Riff.ID[:])
	le.PutUint32(b[offRiffSize:], h.Riff.Size)
	copy(b[offRiffFormat:], h.Riff.Format[:])

	copy(b[offFmtID:], h.Fmt.ID[:])
	le.PutUint32(b[offFmtSize:], h.Fmt.Size)
	le.PutUint16(b[offFmtAudioFormat:], h.Fmt.AudioFormat)
	le.PutUint16(b[offFmtChannels:], h.Fmt.Channels)
	le.PutUint32(b[offFmtSampleRate:], h.Fmt.SampleRate)
	le.PutUint32(b[offFmtByteRate:], h.Fmt.ByteRate)
	le.PutUint16(b[offFmtBlockAlign:], h.Fmt.BlockAlign)
	le.PutUint16(b[offFmtBitsPerSample:], h.Fmt.BitsPerSample)

	copy(b[offDataID:], h.Data.ID[:])
	le.PutUint32(b[offDataSize:], h.Data.Size)
	return buf
}

// ReadHeader reads exactly HeaderSize bytes from r and decodes them.
//
// The bytes actually read are returned even when decoding fails so that
// callers can show them.  A short read yields a *TruncatedError.
func ReadHeader(r io.Reader) (Header, []byte, error) {
	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, buf)
	buf = buf[:n]
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		return Header{}, buf, &TruncatedError{Read: n}
	default:
		return Header{}, buf, err
	}
	h, err := Decode(buf)
	return h, buf, err
}

// WriteTo writes the encoded header to w.  It implements io.WriterTo.
//
// A write which persists fewer than HeaderSize bytes without an error is
// reported as a *ShortWriteError.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	buf := Encode(h)
	n, err := w.Write(buf[:])
	if err != nil {
		return int64(n), err
	}
	if n != HeaderSize {
		return int64(n), &ShortWriteError{Wrote: n, Want: HeaderSize}
	}
	return int64(n), nil
}

func (h Header) String() string {
	return fmt.Sprintf("%s(%d) %s | %s(%d) fmt=%d ch=%d rate=%d byterate=%d align=%d bits=%d | %s(%d)",
		h.Riff.ID, h.Riff.Size, h.Riff.Format,
		h.Fmt.ID, h.Fmt.Size, h.Fmt.AudioFormat, h.Fmt.Channels, h.Fmt.SampleRate,
		h.Fmt.ByteRate, h.Fmt.BlockAlign, h.Fmt.BitsPerSample,
		h.Data.ID, h.Data.Size)
}
