// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command wavutil prints the header of a wav file and copies the file to
// modified.wav.
package main

import (
	"zikichombo.org/wavutil/internal/cli"
	"zikichombo.org/wavutil/internal/config"
)

func main() {
	cli.Main(cli.New("wavutil", "View a wav file header and copy the file",
		[]config.OutputConfig{
			{Name: "modified.wav", Transform: "identity"},
		}))
}
