// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package relay copies an audio payload from one reader to several writers
// a chunk at a time.
package relay /* import "zikichombo.org/wavutil/relay" */

import (
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"
)

// DefaultChunkSize is the number of bytes read per chunk when none is given.
const DefaultChunkSize = 4096

// ErrTooLarge is returned when a payload exceeds a Relay's Limit.
var ErrTooLarge = errors.New("payload too large")

// ChunkFunc modifies chunk in place.  off is the position of chunk[0] in
// the payload.
type ChunkFunc func(chunk []byte, off int64)

// Dest is a destination of a relay.
type Dest struct {
	Name string
	W    io.Writer

	// Transform, if not nil, is applied to a private copy of every chunk
	// before it is written to W.  Other destinations still receive the
	// chunk as read.
	Transform ChunkFunc
}

// ShortWriteError reports a destination write which persisted fewer bytes
// than asked without an error.  It matches io.ErrShortWrite.
type ShortWriteError struct {
	Name        string
	Wrote, Want int
}

func (e *ShortWriteError) Error() string {
	return fmt.Sprintf("writing audio data to %s failed: wrote %d/%d bytes", e.Name, e.Wrote, e.Want)
}

func (e *ShortWriteError) Is(target error) bool {
	return target == io.ErrShortWrite
}

// Relay encapsulates the buffers of a payload copy.  A Relay may be
// reused for several copies but not concurrently.
type Relay struct {
	// Limit, if positive, is the largest payload Copy accepts.
	Limit int64

	// Logger, if not nil, receives per chunk debug output.
	Logger *log.Logger

	buf     []byte // chunk as read
	scratch []byte // private copy for transforming destinations
}

// New creates a Relay reading chunkSize bytes at a time.  If chunkSize is
// not positive, DefaultChunkSize is used.
func New(chunkSize int) *Relay {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Relay{buf: make([]byte, chunkSize)}
}

// ChunkSize returns the size of the chunks r reads.
func (r *Relay) ChunkSize() int {
	return len(r.buf)
}

// Copy reads src until io.EOF and writes every chunk to each of dsts
// before reading the next one.  The last chunk may be short and is
// written at its actual length.
//
// Copy returns the number of payload bytes read.  Every error is final:
// partial writes are not retried.
func (r *Relay) Copy(src io.Reader, dsts ...Dest) (int64, error) {
	var total int64
	nChunks := 0
	for {
		n, err := io.ReadFull(src, r.buf)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return total, errors.Wrap(err, "reading audio data")
		}
		if n > 0 {
			if r.Limit > 0 && total+int64(n) > r.Limit {
				return total, errors.Wrapf(ErrTooLarge, "more than %d bytes", r.Limit)
			}
			nChunks++
			r.logf("relay: chunk %d: read %d bytes", nChunks, n)
			if werr := r.forward(r.buf[:n], total, dsts); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if err != nil {
			r.logf("relay: %d chunks, %d bytes", nChunks, total)
			return total, nil
		}
	}
}

func (r *Relay) forward(chunk []byte, off int64, dsts []Dest) error {
	for i := range dsts {
		d := &dsts[i]
		p := chunk
		if d.Transform != nil {
			if cap(r.scratch) < len(chunk) {
				r.scratch = make([]byte, len(r.buf))
			}
			p = r.scratch[:len(chunk)]
			copy(p, chunk)
			d.Transform(p, off)
		}
		n, err := d.W.Write(p)
		if err != nil {
			return errors.Wrapf(err, "writing audio data to %s", d.Name)
		}
		if n != len(p) {
			return &ShortWriteError{Name: d.Name, Wrote: n, Want: len(p)}
		}
	}
	return nil
}

func (r *Relay) logf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}
