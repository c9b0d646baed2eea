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

// SelfAddressing is a digest prefix
type SelfAddressing struct {
	Code   derivation.SelfAddressingCode
	Digest []byte
}

// NewSelfAddressing builds a digest prefix from a precomputed digest
func NewSelfAddressing(
	code derivation.SelfAddressingCode,
	digest []byte,
) (SelfAddressing, error) {
	if expected := derivation.RawSize(code); len(digest) != expected {
		return SelfAddressing{}, common.NewFramingError(
			"digest for code %q is %d bytes, expected %d",
			code.String(),
			len(digest),
			expected,
		)
	}
	return SelfAddressing{Code: code, Digest: cloneBytes(digest)}, nil
}

// DecodeSelfAddressing reads a digest prefix from the front of data
func DecodeSelfAddressing(data []byte) (SelfAddressing, []byte, error) {
	code, tagLen, err := derivation.ParseSelfAddressingCode(data)
	if err != nil {
		return SelfAddressing{}, data, err
	}
	raw, rest, err := decodePayload(code, data[tagLen:])
	if err != nil {
		return SelfAddressing{}, data, err
	}
	return SelfAddressing{Code: code, Digest: raw}, rest, nil
}

// ParseSelfAddressing decodes a digest prefix from its complete text form
func ParseSelfAddressing(s string) (SelfAddressing, error) {
	return parseExact([]byte(s), DecodeSelfAddressing)
}

func (s SelfAddressing) DerivationCode() derivation.Code {
	return s.Code
}

func (s SelfAddressing) MarshalText() ([]byte, error) {
	return encodeText(s.Code, s.Digest)
}

func (s *SelfAddressing) UnmarshalText(text []byte) error {
	tmp, err := parseExact(text, DecodeSelfAddressing)
	if err != nil {
		return err
	}
	*s = tmp
	return nil
}

func (s SelfAddressing) MarshalBinary() ([]byte, error) {
	return textToBinary(s.MarshalText())
}

func (s *SelfAddressing) UnmarshalBinary(data []byte) error {
	text, err := common.BinaryToText(data)
	if err != nil {
		return err
	}
	return s.UnmarshalText(text)
}

func (s SelfAddressing) String() string {
	text, _ := s.MarshalText()
	return string(text)
}

func (SelfAddressing) isIdentifier() {}
