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
	"bytes"
	"fmt"

	"github.com/blinklabs-io/gocesr/common"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

func newMGPKDecoder(r *bytes.Reader) *msgpack.Decoder {
	dec := msgpack.NewDecoder(r)
	// Widen fixed size integers to int64 and uint64
	dec.UseLooseInterfaceDecoding(true)
	return dec
}

func decodeMGPK(data []byte) (map[string]any, int, error) {
	if len(data) > 0 && !isMGPKMap(data[0]) {
		return nil, 0, fmt.Errorf("value with code 0x%02x is not a map", data[0])
	}
	n, err := mgpkValueLen(data)
	if err != nil {
		return nil, 0, err
	}
	dec := newMGPKDecoder(bytes.NewReader(data[:n]))
	ret, err := dec.DecodeMap()
	if err != nil {
		return nil, 0, err
	}
	return ret, n, nil
}

// mgpkValueLen walks the first value in data without decoding it and returns
// its length. The decoder sizes maps and slices from their declared lengths,
// so a value is only decoded once it is known to be present in full
func mgpkValueLen(data []byte) (int, error) {
	r := bytes.NewReader(data)
	if err := msgpack.NewDecoder(r).Skip(); err != nil {
		return 0, err
	}
	return len(data) - r.Len(), nil
}

func isMGPKMap(c byte) bool {
	return msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32
}

func encodeMGPK(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshalMGPK(data []byte, dest any) error {
	n, err := mgpkValueLen(data)
	if err != nil {
		return err
	}
	if n < len(data) {
		return common.TrailingDataError{Remaining: len(data) - n}
	}
	return newMGPKDecoder(bytes.NewReader(data)).Decode(dest)
}
