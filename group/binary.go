// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package group

import (
	"errors"

	"github.com/blinklabs-io/gocesr/common"
)

// DecodeBinary reads one binary domain group from the front of data and
// returns the remaining bytes.
//
// Every group is quadlet aligned in the text domain, which makes it triplet
// aligned in the binary domain. A growing window of the input is converted to
// text and decoded until the group fits inside it
func (d *Decoder) DecodeBinary(data []byte) (Group, []byte, error) {
	aligned := len(data) - len(data)%3
	window := d.config.BinaryWindow - d.config.BinaryWindow%3
	if window <= 0 {
		window = DefaultBinaryWindow
	}
	size := min(window, aligned)
	for {
		text, err := common.BinaryToText(data[:size])
		if err != nil {
			return nil, data, err
		}
		g, rest, err := d.Decode(text)
		if err == nil {
			consumed := len(text) - len(rest)
			if consumed%4 != 0 {
				return nil, data, common.NewFramingError(
					"binary group consumed %d characters, which is not quadlet aligned",
					consumed,
				)
			}
			return g, data[consumed/4*3:], nil
		}
		var incErr common.IncompleteError
		if !errors.As(err, &incErr) {
			return nil, data, err
		}
		if incErr.Bounded {
			// The frame body was received in full, so a larger window cannot help
			return nil, data, common.IncompleteError{
				Needed:  (incErr.Needed + 3) / 4 * 3,
				Bounded: true,
			}
		}
		if size < aligned {
			size = min(size*2, aligned)
			continue
		}
		if incErr.Needed <= 0 {
			return nil, data, err
		}
		// Convert the character shortfall into a byte shortfall
		neededChars := len(text) + incErr.Needed
		neededBytes := (neededChars+3)/4*3 - len(data)
		if neededBytes < 1 {
			neededBytes = 1
		}
		return nil, data, common.IncompleteError{Needed: neededBytes}
	}
}
