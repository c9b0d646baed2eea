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

package primitive

import (
	"github.com/blinklabs-io/gocesr/common"
	"github.com/blinklabs-io/gocesr/derivation"
)

// Basic is a public key prefix
type Basic struct {
	Code      derivation.BasicCode
	PublicKey []byte
}

// NewBasic builds a basic prefix, checking the key size against the code
func NewBasic(code derivation.BasicCode, publicKey []byte) (Basic, error) {
	if expected := derivation.RawSize(code); len(publicKey) != expected {
		return Basic{}, common.NewFramingError(
			"public key for code %q is %d bytes, expected %d",
			code.String(),
			len(publicKey),
			expected,
		)
	}
	return Basic{Code: code, PublicKey: cloneBytes(publicKey)}, nil
}

// DecodeBasic reads a basic prefix from the front of data
func DecodeBasic(data []byte) (Basic, []byte, error) {
	code, tagLen, err := derivation.ParseBasicCode(data)
	if err != nil {
		return Basic{}, data, err
	}
	raw, rest, err := decodePayload(code, data[tagLen:])
	if err != nil {
		return Basic{}, data, err
	}
	return Basic{Code: code, PublicKey: raw}, rest, nil
}

// ParseBasic decodes a basic prefix from its complete text form
func ParseBasic(s string) (Basic, error) {
	return parseExact([]byte(s), DecodeBasic)
}

func (b Basic) DerivationCode() derivation.Code {
	return b.Code
}

func (b Basic) MarshalText() ([]byte, error) {
	return encodeText(b.Code, b.PublicKey)
}

func (b *Basic) UnmarshalText(text []byte) error {
	tmp, err := parseExact(text, DecodeBasic)
	if err != nil {
		return err
	}
	*b = tmp
	return nil
}

func (b Basic) MarshalBinary() ([]byte, error) {
	return textToBinary(b.MarshalText())
}

func (b *Basic) UnmarshalBinary(data []byte) error {
	text, err := common.BinaryToText(data)
	if err != nil {
		return err
	}
	return b.UnmarshalText(text)
}

func (b Basic) String() string {
	text, _ := b.MarshalText()
	return string(text)
}

func (Basic) isIdentifier() {}

// Transferable reports whether the key may be rotated
func (b Basic) Transferable() bool {
	return b.Code.Transferable()
}
