// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package app runs a header check and payload copy from start to finish.
//
// Run is the only place errors end up; it never exits the process.
package app

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"zikichombo.org/wavutil/internal/config"
	"zikichombo.org/wavutil/internal/display"
	"zikichombo.org/wavutil/relay"
	"zikichombo.org/wavutil/wav"
)

// Options configures a Run.
type Options struct {
	Input   string
	Outputs []config.OutputConfig
	OutDir  string // directory for outputs, "" for the working directory
	Config  *config.Config

	Stdout io.Writer   // header display, nil for os.Stdout
	Color  bool        // colored display on terminals
	Quiet  bool        // skip the header display
	Raw    bool        // hex dump the header bytes when they are rejected
	Logger *log.Logger // debug output, nil to discard
}

type output struct {
	path string
	f    *os.File
	hdr  wav.Header
	win  *relay.Window
}

// Run reads the header of opts.Input, checks it, prints it and writes
// every output: a derived header followed by the payload.
//
// Nothing is created unless the header is read completely and accepted.
// Outputs which were partly written when an error occurred are left on
// disk.
func Run(opts Options) (err error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := display.New(stdout, opts.Color)

	in, err := os.Open(opts.Input)
	if err != nil {
		return &OpenError{Op: "open", Name: opts.Input, Err: err}
	}
	defer in.Close()

	h, raw, err := wav.ReadHeader(in)
	if err != nil {
		if opts.Raw {
			if perr := p.Raw(raw); perr != nil {
				return errors.Wrap(perr, "printing header bytes")
			}
		}
		return errors.Wrapf(err, "reading file header of %s failed", opts.Input)
	}

	tags, err := cfg.WavTags()
	if err != nil {
		return err
	}
	res := wav.NewValidator(tags).Validate(h)
	if !res.OK() {
		if perr := p.Failures(res.Failures); perr != nil {
			return errors.Wrap(perr, "printing failures")
		}
		if opts.Raw {
			if perr := p.Raw(raw); perr != nil {
				return errors.Wrap(perr, "printing header bytes")
			}
		}
		return errors.Wrapf(res.Err(), "input file %s could not be verified", opts.Input)
	}
	if limit := cfg.Relay.MaxPayload; limit > 0 && int64(h.Data.Size) > limit {
		return errors.Wrapf(relay.ErrTooLarge, "%s declares %d bytes, limit %d", opts.Input, h.Data.Size, limit)
	}

	if !opts.Quiet {
		if err := p.Header(h); err != nil {
			return errors.Wrap(err, "printing header")
		}
	}

	outs, err := prepare(opts, cfg, h)
	if err != nil {
		return err
	}
	if len(outs) == 0 {
		return nil
	}
	defer func() {
		for _, o := range outs {
			if o.f == nil {
				continue
			}
			if cerr := o.f.Close(); cerr != nil && err == nil {
				err = errors.Wrapf(cerr, "closing %s", o.path)
			}
		}
	}()

	dsts := make([]relay.Dest, 0, len(outs))
	for _, o := range outs {
		f, err := os.Create(o.path)
		if err != nil {
			return &OpenError{Op: "create", Name: o.path, Err: err}
		}
		o.f = f
		if _, err := o.hdr.WriteTo(f); err != nil {
			return errors.Wrapf(err, "writing header to %s failed", o.path)
		}
		logger.Printf("app: %s: %s", o.path, o.hdr)
		d := relay.Dest{Name: o.path, W: f}
		if o.win != nil {
			logger.Printf("app: %s: silencing bytes %d to %d", o.path, o.win.Start, o.win.End)
			d.Transform = o.win.Apply
		}
		dsts = append(dsts, d)
	}

	r := relay.New(cfg.Relay.ChunkSize)
	r.Limit = cfg.Relay.MaxPayload
	r.Logger = logger
	n, err := r.Copy(in, dsts...)
	if err != nil {
		return err
	}
	logger.Printf("app: relayed %d payload bytes to %d files", n, len(dsts))
	return nil
}

// prepare derives the header and silence window of every output.  It
// creates no files.
func prepare(opts Options, cfg *config.Config, h wav.Header) ([]*output, error) {
	inAbs, err := filepath.Abs(opts.Input)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", opts.Input)
	}
	inInfo, err := os.Stat(opts.Input)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", opts.Input)
	}
	outs := make([]*output, 0, len(opts.Outputs))
	for _, oc := range opts.Outputs {
		name := oc.Transform
		if name == "" {
			name = "identity"
		}
		t, err := wav.TransformFor(name)
		if err != nil {
			return nil, errors.Wrapf(err, "output %s", oc.Name)
		}
		path := oc.Name
		if opts.OutDir != "" {
			path = filepath.Join(opts.OutDir, oc.Name)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving %s", path)
		}
		if abs == inAbs {
			return nil, errors.Wrapf(ErrSameFile, "%s", path)
		}
		// links to the input would be truncated by os.Create
		if fi, err := os.Stat(path); err == nil && os.SameFile(fi, inInfo) {
			return nil, errors.Wrapf(ErrSameFile, "%s links to %s", path, opts.Input)
		}
		o := &output{path: path, hdr: t(h)}
		if oc.Silence {
			win, err := relay.NewSilence(h.Data.Size, h.Fmt.BitsPerSample, cfg.Silence.Start, cfg.Silence.End)
			if err != nil {
				return nil, errors.Wrapf(err, "silence window for %s", path)
			}
			o.win = &win
		}
		outs = append(outs, o)
	}
	return outs, nil
}
