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

// SelfSigning is an unindexed signature
type SelfSigning struct {
	Code      derivation.SelfSigningCode
	Signature []byte
}

// NewSelfSigning builds a signature prefix, checking the signature size against the code
func NewSelfSigning(
	code derivation.SelfSigningCode,
	signature []byte,
) (SelfSigning, error) {
	if expected := derivation.RawSize(code); len(signature) != expected {
		return SelfSigning{}, common.NewFramingError(
			"signature for code %q is %d bytes, expected %d",
			code.String(),
			len(signature),
			expected,
		)
	}
	return SelfSigning{Code: code, Signature: cloneBytes(signature)}, nil
}

// DecodeSelfSigning reads a signature prefix from the front of data
func DecodeSelfSigning(data []byte) (SelfSigning, []byte, error) {
	code, tagLen, err := derivation.ParseSelfSigningCode(data)
	if err != nil {
		return SelfSigning{}, data, err
	}
	raw, rest, err := decodePayload(code, data[tagLen:])
	if err != nil {
		return SelfSigning{}, data, err
	}
	return SelfSigning{Code: code, Signature: raw}, rest, nil
}

// ParseSelfSigning decodes a signature prefix from its complete text form
func ParseSelfSigning(s string) (SelfSigning, error) {
	return parseExact([]byte(s), DecodeSelfSigning)
}

func (s SelfSigning) DerivationCode() derivation.Code {
	return s.Code
}

func (s SelfSigning) MarshalText() ([]byte, error) {
	return encodeText(s.Code, s.Signature)
}

func (s *SelfSigning) UnmarshalText(text []byte) error {
	tmp, err := parseExact(text, DecodeSelfSigning)
	if err != nil {
		return err
	}
	*s = tmp
	return nil
}

func (s SelfSigning) MarshalBinary() ([]byte, error) {
	return textToBinary(s.MarshalText())
}

func (s *SelfSigning) UnmarshalBinary(data []byte) error {
	text, err := common.BinaryToText(data)
	if err != nil {
		return err
	}
	return s.UnmarshalText(text)
}

func (s SelfSigning) String() string {
	text, _ := s.MarshalText()
	return string(text)
}
