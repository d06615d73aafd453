// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package wav reads, checks and rewrites the header of canonical wav files.
//
// Package wav only supports the 44 byte layout of a RIFF chunk, a PCM fmt
// chunk and a data chunk with nothing in between.  Headers are decoded and
// encoded field by field in little endian order, never by overlaying a
// struct on the raw bytes.
package wav /* import "zikichombo.org/wavutil/wav" */
