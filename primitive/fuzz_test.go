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

package primitive_test

import (
	"bytes"
	"testing"

	"github.com/blinklabs-io/gocesr/internal/test"
	"github.com/blinklabs-io/gocesr/primitive"
)

var fuzzKinds = []primitive.Kind{
	primitive.KindBasic,
	primitive.KindSelfAddressing,
	primitive.KindSelfSigning,
	primitive.KindSerialNumber,
	primitive.KindTimestamp,
	primitive.KindAttachedSignature,
	primitive.KindIdentifier,
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte(test.SelfAddressing))
	f.Add([]byte(test.SelfSigning))
	f.Add([]byte(test.SerialNumberOne))
	f.Add([]byte(test.SerialNumberThree))
	f.Add([]byte(test.Timestamp))
	f.Add([]byte("1AAA"))
	f.Add([]byte("0A"))
	f.Fuzz(func(t *testing.T, data []byte) {
		for _, kind := range fuzzKinds {
			p, rest, err := primitive.Decode(kind, data)
			if err != nil {
				continue
			}
			if !bytes.HasSuffix(data, rest) {
				t.Fatalf("%s: remainder is not a suffix of the input", kind)
			}
			encoded, err := primitive.Encode(p)
			if err != nil {
				t.Fatalf("%s: re-encoding decoded primitive failed: %s", kind, err)
			}
			if encoded == "" {
				continue
			}
			p2, rest2, err := primitive.Decode(kind, []byte(encoded))
			if err != nil {
				t.Fatalf("%s: decoding re-encoded primitive %q failed: %s", kind, encoded, err)
			}
			if len(rest2) != 0 {
				t.Fatalf("%s: re-encoded primitive %q left %d bytes", kind, encoded, len(rest2))
			}
			encoded2, err := primitive.Encode(p2)
			if err != nil {
				t.Fatalf("%s: second encode failed: %s", kind, err)
			}
			if encoded != encoded2 {
				t.Fatalf("%s: encoding is not stable: %q != %q", kind, encoded, encoded2)
			}
		}
	})
}
