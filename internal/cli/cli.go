// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cli builds the cobra commands of the wav programs.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"zikichombo.org/wavutil/internal/app"
	"zikichombo.org/wavutil/internal/config"
	"zikichombo.org/wavutil/relay"
)

// Flags holds the command line settings common to all programs.
type Flags struct {
	ConfigPath   string
	OutDir       string
	ChunkSize    int
	SilenceStart relay.Bound
	SilenceEnd   relay.Bound
	NoColor      bool
	Debug        bool
	Raw          bool
	Quiet        bool
}

// Register adds the flags to cmd.
func (f *Flags) Register(cmd *cobra.Command) {
	f.SilenceStart = relay.DefaultSilenceStart
	f.SilenceEnd = relay.DefaultSilenceEnd
	fs := cmd.Flags()
	fs.StringVar(&f.ConfigPath, "config", "", "TOML configuration file")
	fs.StringVarP(&f.OutDir, "out-dir", "o", "", "directory for output files (default: working directory)")
	fs.IntVar(&f.ChunkSize, "chunk-size", relay.DefaultChunkSize, "payload bytes copied per chunk")
	fs.Var(&f.SilenceStart, "silence-start", "start of the silence window as fractions of the samples, e.g. 1/2+1/100")
	fs.Var(&f.SilenceEnd, "silence-end", "end of the silence window as fractions of the samples, e.g. 1/2+1/30")
	fs.BoolVar(&f.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&f.Debug, "debug", false, "log debug output to stderr")
	fs.BoolVar(&f.Raw, "raw", false, "hex dump header bytes which are rejected")
	fs.BoolVarP(&f.Quiet, "quiet", "q", false, "do not print the header")
}

// Config loads the configuration file, if any, and applies the flags set
// on cmd over it.
func (f *Flags) Config(cmd *cobra.Command) (*config.Config, error) {
	if f.Debug {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	fs := cmd.Flags()
	if fs.Changed("chunk-size") {
		cfg.Relay.ChunkSize = f.ChunkSize
	}
	if fs.Changed("silence-start") {
		cfg.Silence.Start = f.SilenceStart
	}
	if fs.Changed("silence-end") {
		cfg.Silence.End = f.SilenceEnd
	}
	return cfg, cfg.Validate()
}

// Logger returns the debug logger for app.Options.
func (f *Flags) Logger() *log.Logger {
	if !f.Debug {
		return nil
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

// Options builds the options of a run on input.  Outputs from the
// configuration file replace outputs.
func (f *Flags) Options(cfg *config.Config, input string, outputs []config.OutputConfig) app.Options {
	if len(cfg.Outputs) > 0 {
		outputs = cfg.Outputs
	}
	return app.Options{
		Input:   input,
		Outputs: outputs,
		OutDir:  f.OutDir,
		Config:  cfg,
		Stdout:  os.Stdout,
		Color:   !f.NoColor,
		Quiet:   f.Quiet,
		Raw:     f.Raw,
		Logger:  f.Logger(),
	}
}

// New creates a command taking exactly one input file and writing
// outputs derived from it.
func New(use, short string, outputs []config.OutputConfig) *cobra.Command {
	var f Flags
	cmd := &cobra.Command{
		Use:           use + " <filename|path>",
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return app.CheckArgs(use, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.Config(cmd)
			if err != nil {
				return err
			}
			return app.Run(f.Options(cfg, args[0], outputs))
		},
	}
	f.Register(cmd)
	return cmd
}

// Main executes cmd and exits with status 1 on error.  It is the only
// place a program exits.
func Main(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd.Name(), err)
		os.Exit(1)
	}
}
