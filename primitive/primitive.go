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

// Package primitive implements the self-framing CESR primitives: keys,
// digests, signatures, indexed signatures, serial numbers and timestamps.
//
// Every primitive has a text form (qb64), which is its derivation code tag
// followed by the unpadded base64url payload, and a binary form (qb2), which is
// the base64 decoding of the quadlet aligned text form.
package primitive

import (
	"encoding"
	"fmt"

	"github.com/blinklabs-io/gocesr/common"
	"github.com/blinklabs-io/gocesr/derivation"
)

// Primitive is implemented by every primitive type
type Primitive interface {
	encoding.TextMarshaler
	encoding.BinaryMarshaler
	fmt.Stringer
	DerivationCode() derivation.Code
}

// Kind selects which primitive decoder to use
type Kind uint8

const (
	KindBasic Kind = iota + 1
	KindSelfAddressing
	KindSelfSigning
	KindSerialNumber
	KindTimestamp
	KindAttachedSignature
	KindIdentifier
)

func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindSelfAddressing:
		return "self-addressing"
	case KindSelfSigning:
		return "self-signing"
	case KindSerialNumber:
		return "serial number"
	case KindTimestamp:
		return "timestamp"
	case KindAttachedSignature:
		return "attached signature"
	case KindIdentifier:
		return "identifier"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Decode reads one primitive of the given kind from the front of data and
// returns it along with the remaining bytes
func Decode(kind Kind, data []byte) (Primitive, []byte, error) {
	switch kind {
	case KindBasic:
		return wrap(DecodeBasic(data))
	case KindSelfAddressing:
		return wrap(DecodeSelfAddressing(data))
	case KindSelfSigning:
		return wrap(DecodeSelfSigning(data))
	case KindSerialNumber:
		return wrap(DecodeSerialNumber(data))
	case KindTimestamp:
		return wrap(DecodeTimestamp(data))
	case KindAttachedSignature:
		return wrap(DecodeAttachedSignature(data))
	case KindIdentifier:
		return wrap(DecodeIdentifier(data))
	default:
		return nil, data, fmt.Errorf("unknown primitive kind: %s", kind)
	}
}

func wrap[T Primitive](p T, rest []byte, err error) (Primitive, []byte, error) {
	if err != nil {
		return nil, rest, err
	}
	return p, rest, nil
}

// Encode returns the text form of a primitive
func Encode(p Primitive) (string, error) {
	text, err := p.MarshalText()
	if err != nil {
		return "", err
	}
	return string(text), nil
}

// encodeText builds the text form of a code and raw payload. An empty payload
// encodes to the empty string
func encodeText(code derivation.Code, raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return []byte{}, nil
	}
	return encodeWithTag(code.String(), code, raw)
}

func encodeWithTag(tag string, code derivation.Code, raw []byte) ([]byte, error) {
	if expected := derivation.RawSize(code); len(raw) != expected {
		return nil, common.NewFramingError(
			"payload for code %q is %d bytes, expected %d",
			code.String(),
			len(raw),
			expected,
		)
	}
	ret := make([]byte, 0, len(tag)+code.DerivativeLen())
	ret = append(ret, tag...)
	ret = common.Encoding.AppendEncode(ret, raw)
	return ret, nil
}

// decodePayload reads the fixed length base64 payload that follows a code tag
func decodePayload(code derivation.Code, data []byte) ([]byte, []byte, error) {
	text, rest, err := common.Take(data, code.DerivativeLen())
	if err != nil {
		return nil, data, err
	}
	raw := make([]byte, common.Encoding.DecodedLen(len(text)))
	n, err := common.Encoding.Decode(raw, text)
	if err != nil {
		return nil, data, common.EncodingError{
			Err: fmt.Errorf("invalid payload for code %q: %w", code.String(), err),
		}
	}
	if expected := derivation.RawSize(code); n != expected {
		return nil, data, common.NewFramingError(
			"payload for code %q decoded to %d bytes, expected %d",
			code.String(),
			n,
			expected,
		)
	}
	return raw[:n], rest, nil
}

// parseExact decodes exactly one value, failing if any input remains
func parseExact[T any](
	data []byte,
	decodeFunc func([]byte) (T, []byte, error),
) (T, error) {
	ret, rest, err := decodeFunc(data)
	if err != nil {
		var zero T
		return zero, err
	}
	if len(rest) > 0 {
		var zero T
		return zero, common.TrailingDataError{Remaining: len(rest)}
	}
	return ret, nil
}

// textToBinary converts the text form of a primitive into its binary form
func textToBinary(text []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return common.TextToBinary(text)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	ret := make([]byte, len(b))
	copy(ret, b)
	return ret
}
