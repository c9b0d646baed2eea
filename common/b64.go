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

package common

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"
)

// Alphabet is the base64url alphabet used by every CESR text code
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// Encoding is the strict, unpadded base64url encoding. Strict mode rejects
// non-zero pad bits so that decoded payloads always re-encode to the same text
var Encoding = base64.RawURLEncoding.Strict()

// PackIndex packs a number into its variable-width base64 form:
// a single character below 63, the leading two characters of the big-endian
// 16-bit encoding below 4095, and the full three character encoding otherwise.
// Only the single character tier unpacks back to the same value
func PackIndex(n uint16) string {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], n)
	switch {
	case n < 63:
		return string(Alphabet[n])
	case n < 4095:
		return base64.RawURLEncoding.EncodeToString(buf[:])[:2]
	default:
		return base64.RawURLEncoding.EncodeToString(buf[:])
	}
}

// PackCount packs a number into exactly width base64 characters, most significant digit first
func PackCount(n uint16, width int) (string, error) {
	if width < 1 || width > 3 {
		return "", NewFramingError("invalid count width %d", width)
	}
	if uint64(n) >= uint64(1)<<(6*width) {
		return "", NewFramingError(
			"count %d does not fit in %d base64 characters",
			n,
			width,
		)
	}
	var sb strings.Builder
	sb.Grow(width)
	for i := width - 1; i >= 0; i-- {
		sb.WriteByte(Alphabet[(n>>(6*i))&0x3f])
	}
	return sb.String(), nil
}

// UnpackNum decodes 1 to 4 base64 characters into a number. The characters are
// left padded with 'A' to a full 4 character group and the low 2 bytes of the
// decoded group are read as a big-endian uint16
func UnpackNum(data []byte) (uint16, error) {
	if len(data) == 0 || len(data) > 4 {
		return 0, NewFramingError("invalid numeric field length %d", len(data))
	}
	var padded [4]byte
	for i := range padded {
		padded[i] = 'A'
	}
	copy(padded[4-len(data):], data)
	var out [3]byte
	n, err := base64.RawURLEncoding.Decode(out[:], padded[:])
	if err != nil {
		return 0, EncodingError{
			Err: fmt.Errorf("invalid base64 number %q: %w", data, err),
		}
	}
	if n != 3 {
		return 0, EncodingError{
			Err: fmt.Errorf("invalid base64 number %q", data),
		}
	}
	return binary.BigEndian.Uint16(out[1:3]), nil
}

// Take splits off exactly n bytes from the front of data
func Take(data []byte, n int) ([]byte, []byte, error) {
	if n < 0 {
		return nil, data, NewFramingError("negative length %d", n)
	}
	if len(data) < n {
		return nil, data, IncompleteError{Needed: n - len(data)}
	}
	return data[:n], data[n:], nil
}

// TextToBinary converts quadlet aligned text into its binary domain form
func TextToBinary(text []byte) ([]byte, error) {
	if len(text)%4 != 0 {
		return nil, NewFramingError(
			"text of length %d is not quadlet aligned",
			len(text),
		)
	}
	out := make([]byte, base64.RawURLEncoding.DecodedLen(len(text)))
	n, err := base64.RawURLEncoding.Decode(out, text)
	if err != nil {
		return nil, EncodingError{Err: err}
	}
	return out[:n], nil
}

// BinaryToText converts triplet aligned binary domain bytes into text
func BinaryToText(data []byte) ([]byte, error) {
	if len(data)%3 != 0 {
		return nil, NewFramingError(
			"binary of length %d is not triplet aligned",
			len(data),
		)
	}
	out := make([]byte, base64.RawURLEncoding.EncodedLen(len(data)))
	base64.RawURLEncoding.Encode(out, data)
	return out, nil
}
