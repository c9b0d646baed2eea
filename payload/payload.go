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

// Package payload decodes and encodes the serialized key event bodies that
// are interleaved with CESR groups in a stream.
//
// Each decoder reads exactly one value from the front of its input and
// reports how many bytes the value occupied, so the caller can keep the raw
// bytes and continue with the remainder.
package payload

import (
	"errors"
	"fmt"
	"io"

	"github.com/blinklabs-io/gocesr/common"
)

// Format identifies the serialization of a custom payload
type Format uint8

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatCBOR
	FormatMGPK
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatCBOR:
		return "CBOR"
	case FormatMGPK:
		return "MGPK"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// MarshalText encodes the format as its name
func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("invalid payload format %d", uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(data []byte) error {
	tmp, err := ParseFormat(string(data))
	if err != nil {
		return err
	}
	*f = tmp
	return nil
}

func (f Format) valid() bool {
	return f >= FormatJSON && f <= FormatMGPK
}

// ParseFormat returns the format with the given name
func ParseFormat(name string) (Format, error) {
	switch name {
	case "JSON", "json":
		return FormatJSON, nil
	case "CBOR", "cbor":
		return FormatCBOR, nil
	case "MGPK", "mgpk", "msgpack":
		return FormatMGPK, nil
	}
	return FormatUnknown, fmt.Errorf("unknown payload format: %q", name)
}

// Decode reads one map valued payload from the front of data and returns it
// along with the number of bytes it occupied
func Decode(format Format, data []byte) (map[string]any, int, error) {
	var ret map[string]any
	var n int
	var err error
	switch format {
	case FormatJSON:
		ret, n, err = decodeJSON(data)
	case FormatCBOR:
		ret, n, err = decodeCBOR(data)
	case FormatMGPK:
		ret, n, err = decodeMGPK(data)
	default:
		return nil, 0, common.NotImplementedError{Feature: format.String() + " payloads"}
	}
	if err != nil {
		return nil, 0, wrapError(format, err)
	}
	if ret == nil {
		// A null value decodes without error but is not a payload
		return nil, 0, common.EncodingError{
			Err: fmt.Errorf("%s payload is not a map", format),
		}
	}
	return ret, n, nil
}

// Encode serializes v in the given format
func Encode(format Format, v any) ([]byte, error) {
	var ret []byte
	var err error
	switch format {
	case FormatJSON:
		ret, err = encodeJSON(v)
	case FormatCBOR:
		ret, err = encodeCBOR(v)
	case FormatMGPK:
		ret, err = encodeMGPK(v)
	default:
		return nil, common.NotImplementedError{Feature: format.String() + " payloads"}
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", format, err)
	}
	return ret, nil
}

// Unmarshal decodes a complete payload into dest
func Unmarshal(format Format, data []byte, dest any) error {
	var err error
	switch format {
	case FormatJSON:
		err = unmarshalJSON(data, dest)
	case FormatCBOR:
		err = unmarshalCBOR(data, dest)
	case FormatMGPK:
		err = unmarshalMGPK(data, dest)
	default:
		return common.NotImplementedError{Feature: format.String() + " payloads"}
	}
	if err != nil {
		return wrapError(format, err)
	}
	return nil
}

func wrapError(format Format, err error) error {
	var encErr common.EncodingError
	if errors.As(err, &encErr) {
		return err
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		// The decoders cannot tell how much of the value is missing
		return common.IncompleteError{}
	}
	return common.EncodingError{Err: fmt.Errorf("%s payload: %w", format, err)}
}
