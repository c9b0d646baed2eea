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
	"fmt"

	"github.com/blinklabs-io/gocesr/common"
	"github.com/blinklabs-io/gocesr/counter"
)

// QuadletSize is the alignment unit used to measure frame bodies
const QuadletSize = 4

// Frame wraps a length delimited sub-stream of groups. Its counter holds the
// length of the body in quadlets rather than an element count
type Frame struct {
	Groups []Group
}

func (*Frame) Code() counter.Code {
	return counter.Frame
}

func (f *Frame) encodeBody() ([]byte, int, error) {
	var body []byte
	for idx, g := range f.Groups {
		tmp, err := Encode(g)
		if err != nil {
			return nil, 0, fmt.Errorf("frame element %d: %w", idx, err)
		}
		body = append(body, tmp...)
	}
	if len(body)%QuadletSize != 0 {
		return nil, 0, common.NewFramingError(
			"frame body of %d bytes is not quadlet aligned",
			len(body),
		)
	}
	return body, len(body) / QuadletSize, nil
}

func (f *Frame) MarshalText() ([]byte, error) {
	return Encode(f)
}

func decodeFrame(
	d *Decoder,
	count int,
	data []byte,
	depth int,
) (Group, []byte, error) {
	if depth >= d.config.MaxDepth {
		return nil, data, fmt.Errorf(
			"%w: limit is %d",
			ErrMaxDepthExceeded,
			d.config.MaxDepth,
		)
	}
	body, rest, err := common.Take(data, count*QuadletSize)
	if err != nil {
		return nil, data, err
	}
	var groups []Group
	remaining := body
	for len(remaining) > 0 {
		g, next, err := d.decode(remaining, depth+1)
		if err != nil {
			if errors.Is(err, ErrMaxDepthExceeded) {
				return nil, data, fmt.Errorf("frame element %d: %w", len(groups), err)
			}
			return nil, data, fmt.Errorf(
				"frame element %d: %v: %w",
				len(groups),
				err,
				bodyShortfall(err, len(remaining)),
			)
		}
		groups = append(groups, g)
		remaining = next
	}
	return &Frame{Groups: groups}, rest, nil
}

// bodyShortfall reports a failure inside a fully received frame body as the
// number of body bytes the groups could not account for. A child that ran
// short reports its own shortfall instead
func bodyShortfall(err error, unaccounted int) common.IncompleteError {
	var incErr common.IncompleteError
	if errors.As(err, &incErr) && incErr.Needed > 0 {
		return common.IncompleteError{Needed: incErr.Needed, Bounded: true}
	}
	return common.IncompleteError{Needed: unaccounted, Bounded: true}
}
