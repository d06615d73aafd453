// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command wavlook prints the header of a wav file and writes two variants
// of it: sample.wav, which plays at half speed, and silence.wav, which
// is silent for a short window past the middle.
package main

import (
	"zikichombo.org/wavutil/internal/cli"
	"zikichombo.org/wavutil/internal/config"
)

func main() {
	cli.Main(cli.New("wavlook", "View a wav file header and write slowed and silenced copies",
		[]config.OutputConfig{
			{Name: "sample.wav", Transform: "halve-sample-rate"},
			{Name: "silence.wav", Transform: "identity", Silence: true},
		}))
}
