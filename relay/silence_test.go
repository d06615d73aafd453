// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package relay

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

func TestParseFraction(t *testing.T) {
	cases := []struct {
		in   string
		want Fraction
		ok   bool
	}{
		{"51/100", Fraction{51, 100}, true},
		{" 8 / 15 ", Fraction{8, 15}, true},
		{"0/1", Fraction{0, 1}, true},
		{"1/1", Fraction{1, 1}, true},
		{"3/2", Fraction{}, false},
		{"1/0", Fraction{}, false},
		{"0.5", Fraction{}, false},
		{"a/b", Fraction{}, false},
		{"-1/2", Fraction{}, false},
	}
	for _, c := range cases {
		got, err := ParseFraction(c.in)
		if c.ok != (err == nil) {
			t.Errorf("%q: err %v", c.in, err)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("%q: got %s want %s", c.in, got, c.want)
		}
	}
}

func TestParseBound(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"51/100", "51/100", true},
		{"1/2+1/100", "1/2+1/100", true},
		{" 1/2 + 1/30 ", "1/2+1/30", true},
		{"1/2+1/2+1/2", "1/2+1/2+1/2", true},
		{"", "", false},
		{"1/2+", "", false},
		{"1/2+3/2", "", false},
	}
	for _, c := range cases {
		got, err := ParseBound(c.in)
		if c.ok != (err == nil) {
			t.Errorf("%q: err %v", c.in, err)
			continue
		}
		if c.ok && got.String() != c.want {
			t.Errorf("%q: got %s want %s", c.in, got, c.want)
		}
	}
	if err := (Bound{}).Check(); err == nil {
		t.Error("empty bound accepted")
	}
}

func TestBoundText(t *testing.T) {
	var cfg struct {
		Start Bound `toml:"start"`
		End   Bound `toml:"end"`
	}
	if _, err := toml.Decode("start = \"1/3\"\nend = \"1/2+1/30\"", &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Start.String() != "1/3" || len(cfg.End) != 2 || cfg.End[1] != (Fraction{1, 30}) {
		t.Errorf("got %s, %s", cfg.Start, cfg.End)
	}
	var b Bound
	if err := b.Set("2/7+1/7"); err != nil || b.String() != "2/7+1/7" || b.Type() != "bound" {
		t.Errorf("got %s, %v", b, err)
	}
	if !DefaultSilenceStart.Less(DefaultSilenceEnd) || DefaultSilenceEnd.Less(DefaultSilenceStart) {
		t.Error("default window bounds out of order")
	}
	if (Bound{{51, 100}}).Less(DefaultSilenceStart) || DefaultSilenceStart.Less(Bound{{51, 100}}) {
		t.Error("1/2+1/100 and 51/100 are not equal")
	}
}

// The default window truncates n/2, n/100 and n/30 separately.
func TestNewSilenceTerms(t *testing.T) {
	cases := []struct {
		samples    uint32
		start, end int64
	}{
		{15, 7, 7},
		{17, 8, 8},
		{199, 100, 105},
		{4000, 2040, 2133},
		{6152, 3137, 3281},
	}
	for _, c := range cases {
		w, err := NewSilence(2*c.samples, 16, DefaultSilenceStart, DefaultSilenceEnd)
		if err != nil {
			t.Fatal(err)
		}
		if w.Start != c.start || w.End != c.end {
			t.Errorf("samples %d: got [%d,%d] want [%d,%d]", c.samples, w.Start, w.End, c.start, c.end)
		}
	}
	for n := uint32(0); n <= 1000; n++ {
		w, err := NewSilence(2*n, 16, DefaultSilenceStart, DefaultSilenceEnd)
		if err != nil {
			t.Fatal(err)
		}
		start, end := int64(n/2+n/100), int64(n/2+n/30)
		if w.Start != start || w.End != end {
			t.Fatalf("samples %d: got [%d,%d] want [%d,%d]", n, w.Start, w.End, start, end)
		}
	}
	// A single fraction truncates once.
	w, err := NewSilence(30, 16, Bound{{51, 100}}, Bound{{8, 15}})
	if err != nil {
		t.Fatal(err)
	}
	if w.Start != 7 || w.End != 8 {
		t.Errorf("single fractions: got %+v", w)
	}
}

func TestNewSilence(t *testing.T) {
	// 16 bit: 4000 samples, window [2040, 2133].
	w, err := NewSilence(8000, 16, DefaultSilenceStart, DefaultSilenceEnd)
	if err != nil {
		t.Fatal(err)
	}
	if w.Start != 2040 || w.End != 2133 {
		t.Errorf("got %+v", w)
	}
	// 8 bit: one sample per byte.
	w, err = NewSilence(3000, 8, Bound{{1, 2}}, Bound{{1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if w.Start != 1500 || w.End != 3000 {
		t.Errorf("got %+v", w)
	}
	if _, err := NewSilence(8000, 4, DefaultSilenceStart, DefaultSilenceEnd); !errors.Is(err, ErrBitDepth) {
		t.Errorf("4 bit: got %v", err)
	}
	if _, err := NewSilence(8000, 16, Bound{{1, 0}}, DefaultSilenceEnd); err == nil {
		t.Error("zero denominator accepted")
	}
}

func TestWindowApply(t *testing.T) {
	w := Window{Start: 5, End: 12}
	cases := []struct {
		off  int64
		n    int
		zero [2]int // zeroed index range [lo, hi)
	}{
		{0, 4, [2]int{0, 0}},
		{0, 8, [2]int{5, 8}},
		{4, 4, [2]int{1, 4}},
		{8, 8, [2]int{0, 5}},
		{12, 4, [2]int{0, 1}},
		{13, 4, [2]int{0, 0}},
		{0, 20, [2]int{5, 13}},
	}
	for _, c := range cases {
		chunk := make([]byte, c.n)
		for i := range chunk {
			chunk[i] = 0xaa
		}
		w.Apply(chunk, c.off)
		for i, b := range chunk {
			want := byte(0xaa)
			if i >= c.zero[0] && i < c.zero[1] {
				want = 0
			}
			if b != want {
				t.Errorf("off %d len %d: byte %d is %#x", c.off, c.n, i, b)
			}
			if (want == 0) != w.Contains(c.off+int64(i)) {
				t.Errorf("off %d: Contains(%d) disagrees", c.off, c.off+int64(i))
			}
		}
	}
	empty := Window{Start: 3, End: 2}
	chunk := []byte{1, 2, 3, 4, 5}
	empty.Apply(chunk, 0)
	for i, b := range chunk {
		if b != byte(i+1) {
			t.Errorf("empty window zeroed byte %d", i)
		}
	}
}
