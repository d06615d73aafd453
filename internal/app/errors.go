// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package app

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUsage matches command line errors.
	ErrUsage = errors.New("usage")

	// ErrSameFile is returned when an output would overwrite the input.
	ErrSameFile = errors.New("output is the input file")
)

// UsageError is a bad command line.  It matches ErrUsage.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// OpenError reports an input which could not be opened or an output which
// could not be created.
type OpenError struct {
	Op   string // "open" or "create"
	Name string
	Err  error
}

func (e *OpenError) Error() string {
	if e.Op == "create" {
		return fmt.Sprintf("failed to create %s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("failed to open file: %s: %v", e.Name, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// CheckArgs requires exactly one positional argument naming the input.
func CheckArgs(prog string, args []string) error {
	switch {
	case len(args) == 0:
		return &UsageError{Msg: fmt.Sprintf("please provide a file: %s <filename|path>", prog)}
	case len(args) > 1:
		return &UsageError{Msg: fmt.Sprintf("too many arguments: %s <filename|path>", prog)}
	}
	return nil
}
