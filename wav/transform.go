// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wav

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Transform derives a new header from h.  Since Header is a value, a
// Transform cannot modify its argument.
type Transform func(h Header) Header

// Identity returns h unchanged.
func Identity(h Header) Header {
	return h
}

// HalveSampleRate halves the sample rate, dropping any remainder, which
// makes players run the unchanged payload at half speed.  ByteRate and
// BlockAlign are left as they were.
func HalveSampleRate(h Header) Header {
	h.Fmt.SampleRate /= 2
	return h
}

// RecomputeRates sets ByteRate and BlockAlign from the sample rate,
// channel count and bit depth.  Values too large for their fields are
// clamped to the field maximum.
func RecomputeRates(h Header) Header {
	bytesPerSample := uint64(h.Fmt.BitsPerSample) / 8
	align := uint64(h.Fmt.Channels) * bytesPerSample
	if align > math.MaxUint16 {
		align = math.MaxUint16
	}
	rate := uint64(h.Fmt.SampleRate) * align
	if rate > math.MaxUint32 {
		rate = math.MaxUint32
	}
	h.Fmt.BlockAlign = uint16(align)
	h.Fmt.ByteRate = uint32(rate)
	return h
}

// Compose returns a Transform applying ts in order.
func Compose(ts ...Transform) Transform {
	return func(h Header) Header {
		for _, t := range ts {
			h = t(h)
		}
		return h
	}
}

// NamedTransform is a Transform which can be selected by name, for
// example from a configuration file.
type NamedTransform struct {
	// Priority orders transforms registered under the same name.  Lower
	// values win.
	Priority int

	Name      string
	Doc       string
	Transform Transform
}

var transforms []NamedTransform

// RegisterTransform makes t available to TransformFor.  A copy of t is
// registered.
func RegisterTransform(t *NamedTransform) {
	transforms = append(transforms, *t)
}

// TransformFor looks up a transform by name.  If several were registered
// under name, the one with the lowest Priority is returned, and among
// those the first registered.
func TransformFor(name string) (Transform, error) {
	minPriority := math.MaxInt32
	var best *NamedTransform
	for i := range transforms {
		t := &transforms[i]
		if t.Name == name && t.Priority < minPriority {
			minPriority = t.Priority
			best = t
		}
	}
	if best == nil {
		return nil, errors.Wrapf(ErrUnknownTransform, "%q", name)
	}
	return best.Transform, nil
}

// TransformNames lists the registered names, sorted.
func TransformNames() []string {
	seen := make(map[string]bool, len(transforms))
	var names []string
	for _, t := range transforms {
		if !seen[t.Name] {
			seen[t.Name] = true
			names = append(names, t.Name)
		}
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterTransform(&NamedTransform{
		Priority:  1000,
		Name:      "identity",
		Doc:       "copy the header unchanged",
		Transform: Identity})
	RegisterTransform(&NamedTransform{
		Priority:  1000,
		Name:      "halve-sample-rate",
		Doc:       "halve the sample rate, leaving byte rate and block align",
		Transform: HalveSampleRate})
	RegisterTransform(&NamedTransform{
		Priority:  1000,
		Name:      "recompute-rates",
		Doc:       "recompute byte rate and block align from the sample rate",
		Transform: RecomputeRates})
}
