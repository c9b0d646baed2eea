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

package cesr_test

import (
	"bytes"
	"testing"

	cesr "github.com/blinklabs-io/gocesr"
	"github.com/blinklabs-io/gocesr/internal/test"
)

func FuzzDecodeMessageList(f *testing.F) {
	f.Add([]byte(`{"name":"Cesr"}` + test.SealSourceCouples + `{"surname":"Parse"}`))
	f.Add([]byte(test.ControllerSigsMixed))
	f.Add([]byte(test.TransIdxSigGroups))
	f.Add([]byte(test.Frame))
	f.Add(test.TextToBinary(test.Frame))
	f.Add(test.DecodeHexString("a1646e616d656443657372"))
	f.Add(test.DecodeHexString("81a46e616d65a443657372"))
	f.Add([]byte{0xdf, 0xff, 0xff, 0xff, 0xff})
	f.Fuzz(func(t *testing.T, data []byte) {
		msgs, rest := cesr.DecodeMessageList(data)
		if !bytes.HasSuffix(data, rest) {
			t.Fatalf("tail is not a suffix of the input")
		}
		encoded, err := msgs.Encode()
		if err != nil {
			t.Fatalf("re-encoding decoded messages failed: %s", err)
		}
		if !bytes.Equal(encoded, data[:len(data)-len(rest)]) {
			t.Fatalf("re-encoded messages do not match the consumed input")
		}
	})
}
