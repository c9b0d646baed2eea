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

// Package bench provides benchmark fixtures for CESR streams.
package bench

import (
	"fmt"
	"strings"

	"github.com/blinklabs-io/gocesr/internal/test"
)

// StreamFixture is a pre-built stream for benchmarking
type StreamFixture struct {
	Name     string
	Data     []byte
	Messages int
}

// streamParts are the messages that fixtures are built from, keyed by kind
var streamParts = map[string][]string{
	"groups": {
		test.ControllerSigs,
		test.SealSourceCouples,
		test.NonTransReceiptCouples,
		test.TransIdxSigGroups,
	},
	"frames": {
		test.Frame,
	},
	"mixed": {
		`{"v":"KERI10JSON000000_","t":"icp","s":"0"}`,
		test.ControllerSigsMixed,
		`{"v":"KERI10JSON000000_","t":"rct","s":"0"}`,
		test.NonTransReceiptCouples,
	},
}

// StreamKinds returns the names of the available fixture kinds
func StreamKinds() []string {
	return []string{"groups", "frames", "mixed"}
}

// LoadStreamFixture builds a stream of the given kind holding count messages
func LoadStreamFixture(kind string, count int) (*StreamFixture, error) {
	parts, ok := streamParts[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("unknown stream fixture kind: %s", kind)
	}
	if count < 1 {
		return nil, fmt.Errorf("stream fixture needs at least one message, got %d", count)
	}
	var sb strings.Builder
	for i := range count {
		sb.WriteString(parts[i%len(parts)])
	}
	ret := &StreamFixture{
		Name:     fmt.Sprintf("%s-%d", kind, count),
		Data:     []byte(sb.String()),
		Messages: count,
	}
	return ret, nil
}

// MustLoadStreamFixture builds a stream fixture and panics on error.
// Use this in benchmark setup code
func MustLoadStreamFixture(kind string, count int) *StreamFixture {
	fixture, err := LoadStreamFixture(kind, count)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s stream fixture: %v", kind, err))
	}
	return fixture
}
