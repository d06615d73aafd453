// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package display renders wav headers for people.
package display

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"zikichombo.org/wavutil/wav"
)

var (
	colorTitle = lipgloss.Color("#06B6D4")
	colorLabel = lipgloss.Color("#94A3B8")
	colorError = lipgloss.Color("#EF4444")
)

const labelWidth = 16

// Printer writes headers, failures and raw bytes to an output.
type Printer struct {
	w     io.Writer
	title lipgloss.Style
	label lipgloss.Style
	err   lipgloss.Style
}

// New creates a Printer writing to w.  With color false, or when w is
// not a terminal, no escape sequences are written.
func New(w io.Writer, color bool) *Printer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	r := lipgloss.NewRenderer(w, opts...)
	return &Printer{
		w: w,
		title: r.NewStyle().
			Bold(true).
			Foreground(colorTitle).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorTitle).
			Padding(0, 1),
		label: r.NewStyle().
			Foreground(colorLabel).
			Width(labelWidth),
		err: r.NewStyle().
			Foreground(colorError).
			Bold(true),
	}
}

type row struct {
	label string
	value string
}

func (p *Printer) section(b *strings.Builder, title string, rows []row) {
	b.WriteString(p.title.Render(title))
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(p.label.Render(r.label))
		b.WriteString(r.value)
		b.WriteByte('\n')
	}
}

// Header prints every field of h, tags as text and integers in decimal,
// followed by values derived from the format chunk.
func (p *Printer) Header(h wav.Header) error {
	var b strings.Builder
	p.section(&b, "RIFF CHUNK", []row{
		{"ID", h.Riff.ID.String()},
		{"Size", fmt.Sprint(h.Riff.Size)},
		{"Format", h.Riff.Format.String()},
	})
	p.section(&b, "FMT CHUNK", []row{
		{"ID", h.Fmt.ID.String()},
		{"Size", fmt.Sprint(h.Fmt.Size)},
		{"Format", fmt.Sprint(h.Fmt.AudioFormat)},
		{"Channels", fmt.Sprint(h.Fmt.Channels)},
		{"Sample rate", fmt.Sprint(h.Fmt.SampleRate)},
		{"Byte rate", fmt.Sprint(h.Fmt.ByteRate)},
		{"Block align", fmt.Sprint(h.Fmt.BlockAlign)},
		{"Bits per sample", fmt.Sprint(h.Fmt.BitsPerSample)},
	})
	p.section(&b, "DATA CHUNK", []row{
		{"ID", h.Data.ID.String()},
		{"Size", fmt.Sprint(h.Data.Size)},
	})
	codec := "unsupported"
	if c, err := h.Fmt.Codec(); err == nil {
		codec = c.String()
	}
	p.section(&b, "DERIVED", []row{
		{"Codec", codec},
		{"Frequency", h.Fmt.Freq().String()},
		{"Frames", fmt.Sprint(h.Frames())},
		{"Duration", h.Duration().String()},
	})
	_, err := io.WriteString(p.w, b.String())
	return err
}

// Failures prints one line per failed tag check.
func (p *Printer) Failures(fs []wav.Failure) error {
	var b strings.Builder
	for _, f := range fs {
		b.WriteString(p.err.Render(f.Kind.String() + " could not be verified:"))
		fmt.Fprintf(&b, " %s (want %s)\n", f.Got, f.Want)
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// Raw prints a hex dump of b.
func (p *Printer) Raw(b []byte) error {
	_, err := io.WriteString(p.w, hex.Dump(b))
	return err
}
