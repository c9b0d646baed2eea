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
	"encoding/json"
	"fmt"
)

func decodeJSON(data []byte) (map[string]any, int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tmp any
	if err := dec.Decode(&tmp); err != nil {
		return nil, 0, err
	}
	ret, ok := tmp.(map[string]any)
	if !ok {
		return nil, 0, fmt.Errorf("value is %T, not an object", tmp)
	}
	return ret, int(dec.InputOffset()), nil
}

func encodeJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshalJSON(data []byte, dest any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(dest); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after value at offset %d", dec.InputOffset())
	}
	return nil
}
