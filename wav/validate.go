// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wav

import "fmt"

// FailureKind identifies which tag of a header did not match.
type FailureKind int

const (
	BadContainerTag FailureKind = iota
	BadContainerFormat
	BadFormatTag
	BadPayloadTag
)

var failureNames = [...]string{
	BadContainerTag:    "riff chunk",
	BadContainerFormat: "riff format",
	BadFormatTag:       "format chunk",
	BadPayloadTag:      "data chunk",
}

func (k FailureKind) String() string {
	if k < 0 || int(k) >= len(failureNames) {
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
	return failureNames[k]
}

// Failure is one mismatched tag.
type Failure struct {
	Kind FailureKind
	Got  FourCC
	Want FourCC
}

func (f Failure) String() string {
	return fmt.Sprintf("%s could not be verified: %s (want %s)", f.Kind, f.Got, f.Want)
}

// Tags holds the literals a Validator requires.
type Tags struct {
	Riff FourCC // container tag
	Wave FourCC // container form type
	Fmt  FourCC // format chunk tag
	Data FourCC // payload chunk tag
}

// DefaultTags returns the tags of a canonical wav file.
func DefaultTags() Tags {
	return Tags{Riff: RIFF, Wave: WAVE, Fmt: Fmt, Data: Data}
}

// Validator checks decoded headers against a fixed set of tags.
type Validator struct {
	tags Tags
}

// NewValidator creates a Validator requiring tags.
func NewValidator(tags Tags) *Validator {
	return &Validator{tags: tags}
}

// Tags returns the tags v checks against.
func (v *Validator) Tags() Tags {
	return v.tags
}

// Result lists the failures of a validation in check order.  An empty
// Result accepts the header.
type Result struct {
	Failures []Failure
}

// OK reports whether the header was accepted.
func (r Result) OK() bool {
	return len(r.Failures) == 0
}

// Err returns nil if r is OK and a *ValidationError otherwise.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Failures: r.Failures}
}

// Validate runs every tag check on h.  A failed check does not stop the
// following ones.
func (v *Validator) Validate(h Header) Result {
	checks := [...]struct {
		kind      FailureKind
		got, want FourCC
	}{
		{BadContainerTag, h.Riff.ID, v.tags.Riff},
		{BadContainerFormat, h.Riff.Format, v.tags.Wave},
		{BadFormatTag, h.Fmt.ID, v.tags.Fmt},
		{BadPayloadTag, h.Data.ID, v.tags.Data},
	}
	var res Result
	for _, c := range checks {
		if !c.got.Equal(c.want) {
			res.Failures = append(res.Failures, Failure{Kind: c.kind, Got: c.got, Want: c.want})
		}
	}
	return res
}
