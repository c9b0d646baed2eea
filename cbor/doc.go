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

// Package cbor wraps github.com/fxamacker/cbor/v2 with the decode and encode
// modes used for CBOR payloads embedded in CESR streams.
//
// Decoding reports the number of bytes read so that a caller can slice the
// raw payload out of a larger stream. Maps decode as map[string]any so that
// payloads look the same regardless of their serialization. Encoding uses
// core deterministic map key ordering.
package cbor
