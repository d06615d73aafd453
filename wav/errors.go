// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wav

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrTruncated matches errors for inputs shorter than HeaderSize.
	ErrTruncated = errors.New("truncated header")

	// ErrInvalid matches errors for headers rejected by a Validator.
	ErrInvalid = errors.New("invalid header")

	// ErrUnknownTransform is returned by TransformFor for unregistered names.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrUnsupportedFormat is returned when a format chunk does not map to a
	// sample codec.
	ErrUnsupportedFormat = errors.New("unsupported sample format")
)

// TruncatedError reports a header read which ended early.
type TruncatedError struct {
	Read int // bytes available
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated header: read %d/%d bytes", e.Read, HeaderSize)
}

func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

// ShortWriteError reports a write which persisted fewer bytes than asked
// without returning an error.  It matches io.ErrShortWrite.
type ShortWriteError struct {
	Wrote, Want int
}

func (e *ShortWriteError) Error() string {
	return fmt.Sprintf("short write: wrote %d/%d bytes", e.Wrote, e.Want)
}

func (e *ShortWriteError) Is(target error) bool {
	return target == io.ErrShortWrite
}

// ValidationError carries every failure found by a Validator.  It matches
// ErrInvalid.
type ValidationError struct {
	Failures []Failure
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.String()
	}
	return fmt.Sprintf("invalid header: %s", strings.Join(msgs, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}
