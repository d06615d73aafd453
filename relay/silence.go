// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package relay

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrBitDepth is returned by NewSilence for bit depths under 8.
var ErrBitDepth = errors.New("bits per sample must be at least 8")

// Fraction is a ratio in [0, 1].  Its text form is "num/den".
type Fraction struct {
	Num, Den uint64
}

// Default silence window bounds: half the samples plus a hundredth, and
// half the samples plus a thirtieth, each term truncated.
var (
	DefaultSilenceStart = Bound{{1, 2}, {1, 100}}
	DefaultSilenceEnd   = Bound{{1, 2}, {1, 30}}
)

// ParseFraction parses "num/den".
func ParseFraction(s string) (Fraction, error) {
	var f Fraction
	num, den, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return f, fmt.Errorf("fraction %q: want num/den", s)
	}
	var err error
	if f.Num, err = strconv.ParseUint(strings.TrimSpace(num), 10, 32); err != nil {
		return f, errors.Wrapf(err, "fraction %q", s)
	}
	if f.Den, err = strconv.ParseUint(strings.TrimSpace(den), 10, 32); err != nil {
		return f, errors.Wrapf(err, "fraction %q", s)
	}
	return f, f.Check()
}

// Check returns an error unless f has a non zero denominator and does
// not exceed 1.
func (f Fraction) Check() error {
	if f.Den == 0 {
		return fmt.Errorf("fraction %s: zero denominator", f)
	}
	if f.Num > f.Den {
		return fmt.Errorf("fraction %s: greater than 1", f)
	}
	return nil
}

// Of returns n*f, truncated.
func (f Fraction) Of(n uint64) uint64 {
	return n * f.Num / f.Den
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// MarshalText implements encoding.TextMarshaler.
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fraction) UnmarshalText(b []byte) error {
	g, err := ParseFraction(string(b))
	if err != nil {
		return err
	}
	*f = g
	return nil
}

// Set and Type let a *Fraction be used as a command line flag value.
func (f *Fraction) Set(s string) error {
	return f.UnmarshalText([]byte(s))
}

func (f *Fraction) Type() string {
	return "fraction"
}

// Bound is a sum of fractions of a count.  Each term is truncated on its
// own, so "1/2+1/30" of 15 is 7 where "8/15" of 15 is 8.  Its text form
// joins the terms with '+'.
type Bound []Fraction

// ParseBound parses one or more fractions joined by '+'.
func ParseBound(s string) (Bound, error) {
	parts := strings.Split(s, "+")
	b := make(Bound, 0, len(parts))
	for _, p := range parts {
		f, err := ParseFraction(p)
		if err != nil {
			return nil, err
		}
		b = append(b, f)
	}
	return b, nil
}

// Check returns an error if b has no terms or a term is invalid.
func (b Bound) Check() error {
	if len(b) == 0 {
		return errors.New("bound: no fractions")
	}
	for _, f := range b {
		if err := f.Check(); err != nil {
			return err
		}
	}
	return nil
}

// Of returns the sum of the truncated terms applied to n.
func (b Bound) Of(n uint64) uint64 {
	var sum uint64
	for _, f := range b {
		sum += f.Of(n)
	}
	return sum
}

func (b Bound) rat() *big.Rat {
	sum := new(big.Rat)
	for _, f := range b {
		if f.Den == 0 {
			continue
		}
		sum.Add(sum, new(big.Rat).SetFrac(new(big.Int).SetUint64(f.Num), new(big.Int).SetUint64(f.Den)))
	}
	return sum
}

// Less reports whether the exact sum of b is less than that of c.
func (b Bound) Less(c Bound) bool {
	return b.rat().Cmp(c.rat()) < 0
}

func (b Bound) String() string {
	terms := make([]string, len(b))
	for i, f := range b {
		terms[i] = f.String()
	}
	return strings.Join(terms, "+")
}

// MarshalText implements encoding.TextMarshaler.
func (b Bound) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bound) UnmarshalText(text []byte) error {
	c, err := ParseBound(string(text))
	if err != nil {
		return err
	}
	*b = c
	return nil
}

// Set and Type let a *Bound be used as a command line flag value.
func (b *Bound) Set(s string) error {
	return b.UnmarshalText([]byte(s))
}

func (b *Bound) Type() string {
	return "bound"
}

// Window is an inclusive range of payload byte positions to silence.
// It is empty when End < Start.
type Window struct {
	Start, End int64
}

// NewSilence computes a silence window for a payload of dataSize bytes.
// With samples = dataSize / (bitsPerSample/8), the window runs from
// start.Of(samples) to end.Of(samples).  The bounds are sample counts
// applied to byte positions.
func NewSilence(dataSize uint32, bitsPerSample uint16, start, end Bound) (Window, error) {
	bytesPerSample := uint64(bitsPerSample) / 8
	if bytesPerSample == 0 {
		return Window{}, errors.Wrapf(ErrBitDepth, "got %d", bitsPerSample)
	}
	if err := start.Check(); err != nil {
		return Window{}, err
	}
	if err := end.Check(); err != nil {
		return Window{}, err
	}
	samples := uint64(dataSize) / bytesPerSample
	return Window{
		Start: int64(start.Of(samples)),
		End:   int64(end.Of(samples)),
	}, nil
}

// Contains reports whether payload position p is silenced.
func (w Window) Contains(p int64) bool {
	return p >= w.Start && p <= w.End
}

// Apply zeroes the bytes of chunk inside w.  chunk[0] is at payload
// position off.  It has the signature of a ChunkFunc.
func (w Window) Apply(chunk []byte, off int64) {
	lo := w.Start - off
	if lo < 0 {
		lo = 0
	}
	hi := w.End - off + 1
	if hi > int64(len(chunk)) {
		hi = int64(len(chunk))
	}
	for i := lo; i < hi; i++ {
		chunk[i] = 0
	}
}
