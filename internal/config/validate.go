// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package config

import (
	"fmt"

	"github.com/pkg/errors"
	"zikichombo.org/wavutil/wav"
)

func (c *Config) Validate() error {
	if _, err := c.WavTags(); err != nil {
		return err
	}
	if c.Relay.ChunkSize <= 0 {
		return fmt.Errorf("invalid relay.chunk_size: %d", c.Relay.ChunkSize)
	}
	if c.Relay.MaxPayload < 0 {
		return fmt.Errorf("invalid relay.max_payload: %d", c.Relay.MaxPayload)
	}
	if err := c.Silence.Start.Check(); err != nil {
		return errors.Wrap(err, "invalid silence.start")
	}
	if err := c.Silence.End.Check(); err != nil {
		return errors.Wrap(err, "invalid silence.end")
	}
	if c.Silence.End.Less(c.Silence.Start) {
		return fmt.Errorf("invalid silence window: end %s before start %s", c.Silence.End, c.Silence.Start)
	}
	seen := make(map[string]bool, len(c.Outputs))
	for i, o := range c.Outputs {
		if o.Name == "" {
			return fmt.Errorf("invalid outputs[%d].name: empty", i)
		}
		if seen[o.Name] {
			return fmt.Errorf("invalid outputs[%d].name: %s listed twice", i, o.Name)
		}
		seen[o.Name] = true
		if o.Transform != "" {
			if _, err := wav.TransformFor(o.Transform); err != nil {
				return errors.Wrapf(err, "invalid outputs[%d].transform", i)
			}
		}
	}
	return nil
}
