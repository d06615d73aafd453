// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wav

import (
	"testing"

	"github.com/pkg/errors"
	"zikichombo.org/sound/freq"
	"zikichombo.org/sound/sample"
)

func TestHalveSampleRate(t *testing.T) {
	cases := []struct{ in, out uint32 }{
		{44100, 22050},
		{48000, 24000},
		{11025, 5512},
		{1, 0},
		{0, 0},
	}
	for _, c := range cases {
		h := NewHeader(2, freq.T(c.in)*freq.Hertz, sample.SInt16L, 64)
		orig := h
		g := HalveSampleRate(h)
		if g.Fmt.SampleRate != c.out {
			t.Errorf("%d: got %d want %d", c.in, g.Fmt.SampleRate, c.out)
		}
		if h != orig {
			t.Errorf("%d: input modified", c.in)
		}
		g.Fmt.SampleRate = h.Fmt.SampleRate
		if g != h {
			t.Errorf("%d: other fields changed: %s", c.in, g)
		}
	}
}

func TestRecomputeRates(t *testing.T) {
	h := HalveSampleRate(NewHeader(2, 44100*freq.Hertz, sample.SInt16L, 64))
	if h.Fmt.ByteRate != 176400 {
		t.Fatalf("byte rate changed by halving: %d", h.Fmt.ByteRate)
	}
	g := RecomputeRates(h)
	if g.Fmt.ByteRate != 88200 || g.Fmt.BlockAlign != 4 {
		t.Errorf("got byte rate %d block align %d", g.Fmt.ByteRate, g.Fmt.BlockAlign)
	}
}

func TestRecomputeRatesClamp(t *testing.T) {
	cases := []struct {
		chans, bits uint16
		rate        uint32
		align       uint16
		byteRate    uint32
	}{
		{2, 16, 44100, 4, 176400},
		{65535, 16, 8000, 65535, 8000 * 65535},
		{40000, 32, 1, 65535, 65535},
		{65535, 8, 1 << 20, 65535, 1<<32 - 1},
	}
	for _, c := range cases {
		var h Header
		h.Fmt.Channels = c.chans
		h.Fmt.BitsPerSample = c.bits
		h.Fmt.SampleRate = c.rate
		g := RecomputeRates(h)
		if g.Fmt.BlockAlign != c.align || g.Fmt.ByteRate != c.byteRate {
			t.Errorf("%d ch %d bit %d Hz: got align %d rate %d", c.chans, c.bits, c.rate, g.Fmt.BlockAlign, g.Fmt.ByteRate)
		}
	}
}

func TestTransformFor(t *testing.T) {
	for _, name := range []string{"identity", "halve-sample-rate", "recompute-rates"} {
		if _, err := TransformFor(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, err := TransformFor("double-sample-rate"); !errors.Is(err, ErrUnknownTransform) {
		t.Errorf("got %v", err)
	}
	names := TransformNames()
	if len(names) < 3 || names[0] != "halve-sample-rate" {
		t.Errorf("names %v", names)
	}
}

func TestTransformPriority(t *testing.T) {
	n := len(transforms)
	defer func() { transforms = transforms[:n] }()
	RegisterTransform(&NamedTransform{Priority: 1001, Name: "identity", Transform: HalveSampleRate})
	tr, _ := TransformFor("identity")
	h := NewHeader(1, 8000*freq.Hertz, sample.SByte, 0)
	if tr(h) != h {
		t.Error("higher priority value won")
	}
	RegisterTransform(&NamedTransform{Priority: 999, Name: "identity", Transform: HalveSampleRate})
	tr, _ = TransformFor("identity")
	if tr(h).Fmt.SampleRate != 4000 {
		t.Error("lower priority value lost")
	}
}

func TestCompose(t *testing.T) {
	h := NewHeader(1, 32000*freq.Hertz, sample.SInt16L, 0)
	g := Compose(HalveSampleRate, HalveSampleRate, RecomputeRates)(h)
	if g.Fmt.SampleRate != 8000 || g.Fmt.ByteRate != 16000 {
		t.Errorf("got %s", g)
	}
}
