// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command wavdump checks and prints the headers of wav files without
// writing anything.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"zikichombo.org/wavutil/internal/app"
	"zikichombo.org/wavutil/internal/cli"
)

func main() {
	var (
		f       cli.Flags
		cpuprof string
	)
	cmd := &cobra.Command{
		Use:           "wavdump <filename|path>...",
		Short:         "Check and print wav file headers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return app.CheckArgs("wavdump", args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.Config(cmd)
			if err != nil {
				return err
			}
			if cpuprof != "" {
				pf, err := os.Create(cpuprof)
				if err != nil {
					return err
				}
				defer pf.Close()
				if err := pprof.StartCPUProfile(pf); err != nil {
					return err
				}
				defer pprof.StopCPUProfile()
			}
			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()
			failed := 0
			for _, fn := range args {
				if len(args) > 1 {
					fmt.Fprintf(out, "==> %s <==\n", fn)
				}
				opts := f.Options(cfg, fn, nil)
				opts.Outputs = nil
				opts.Stdout = out
				if err := app.Run(opts); err != nil {
					out.Flush()
					log.New(os.Stderr, "", 0).Printf("%s: %s\n", fn, err.Error())
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files rejected", failed, len(args))
			}
			return nil
		},
	}
	f.Register(cmd)
	cmd.Flags().StringVar(&cpuprof, "cpuprof", "", "cpu profile")
	cli.Main(cmd)
}
