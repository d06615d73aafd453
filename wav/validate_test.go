// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wav

import (
	"testing"

	"github.com/pkg/errors"
	"zikichombo.org/sound/freq"
	"zikichombo.org/sound/sample"
)

func TestValidateAccepts(t *testing.T) {
	v := NewValidator(DefaultTags())
	res := v.Validate(NewHeader(2, 44100*freq.Hertz, sample.SInt16L, 100))
	if !res.OK() || res.Err() != nil {
		t.Errorf("valid header rejected: %v", res.Failures)
	}
}

func TestValidateSingleCorruption(t *testing.T) {
	bad := FourCC{'J', 'U', 'N', 'K'}
	cases := []struct {
		name    string
		corrupt func(*Header)
		want    FailureKind
	}{
		{"riff tag", func(h *Header) { h.Riff.ID = bad }, BadContainerTag},
		{"riff format", func(h *Header) { h.Riff.Format = bad }, BadContainerFormat},
		{"fmt tag", func(h *Header) { h.Fmt.ID = bad }, BadFormatTag},
		{"data tag", func(h *Header) { h.Data.ID = bad }, BadPayloadTag},
	}
	v := NewValidator(DefaultTags())
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewHeader(1, 8000*freq.Hertz, sample.SInt16L, 16)
			c.corrupt(&h)
			res := v.Validate(h)
			if len(res.Failures) != 1 {
				t.Fatalf("got %d failures: %v", len(res.Failures), res.Failures)
			}
			f := res.Failures[0]
			if f.Kind != c.want || f.Got != bad {
				t.Errorf("got %v", f)
			}
			if !errors.Is(res.Err(), ErrInvalid) {
				t.Errorf("err %v does not match ErrInvalid", res.Err())
			}
		})
	}
}

func TestValidateAllCorrupted(t *testing.T) {
	var h Header
	res := NewValidator(DefaultTags()).Validate(h)
	want := []FailureKind{BadContainerTag, BadContainerFormat, BadFormatTag, BadPayloadTag}
	if len(res.Failures) != len(want) {
		t.Fatalf("got %d failures", len(res.Failures))
	}
	for i, k := range want {
		if res.Failures[i].Kind != k {
			t.Errorf("failure %d: got %s want %s", i, res.Failures[i].Kind, k)
		}
	}
	var ve *ValidationError
	if !errors.As(res.Err(), &ve) || len(ve.Failures) != 4 {
		t.Errorf("got %v", res.Err())
	}
}

func TestValidateExactBytes(t *testing.T) {
	h := NewHeader(1, 8000*freq.Hertz, sample.SInt16L, 16)
	// "fmt" followed by a NUL would pass a C string comparison.
	h.Fmt.ID = FourCC{'f', 'm', 't', 0}
	res := NewValidator(DefaultTags()).Validate(h)
	if len(res.Failures) != 1 || res.Failures[0].Kind != BadFormatTag {
		t.Errorf("got %v", res.Failures)
	}
}

func TestValidateCustomTags(t *testing.T) {
	tags := DefaultTags()
	tags.Riff = FourCC{'R', 'F', '6', '4'}
	v := NewValidator(tags)
	h := NewHeader(1, 8000*freq.Hertz, sample.SInt16L, 16)
	res := v.Validate(h)
	if len(res.Failures) != 1 || res.Failures[0].Kind != BadContainerTag || res.Failures[0].Want != tags.Riff {
		t.Errorf("got %v", res.Failures)
	}
	h.Riff.ID = tags.Riff
	if res := v.Validate(h); !res.OK() {
		t.Errorf("got %v", res.Failures)
	}
}
