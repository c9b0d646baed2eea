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

package payload

import (
	"github.com/blinklabs-io/gocesr/cbor"
	"github.com/blinklabs-io/gocesr/common"
)

func decodeCBOR(data []byte) (map[string]any, int, error) {
	return cbor.DecodeMap(data)
}

func encodeCBOR(v any) ([]byte, error) {
	return cbor.Encode(v)
}

func unmarshalCBOR(data []byte, dest any) error {
	n, err := cbor.Decode(data, dest)
	if err != nil {
		return err
	}
	if n != len(data) {
		return common.TrailingDataError{Remaining: len(data) - n}
	}
	return nil
}
