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
	"encoding/binary"
	"errors"

	"github.com/blinklabs-io/gocesr/common"
	"github.com/blinklabs-io/gocesr/derivation"
)

// SerialNumber is a 64-bit sequence number carried in a fixed width 128-bit field
type SerialNumber uint64

// DecodeSerialNumber reads a serial number from the front of data
func DecodeSerialNumber(data []byte) (SerialNumber, []byte, error) {
	code, tagLen, err := derivation.ParseSerialNumberCode(data)
	if err != nil {
		return 0, data, err
	}
	raw, rest, err := decodePayload(code, data[tagLen:])
	if err != nil {
		return 0, data, err
	}
	// The value is right aligned in the field
	high := raw[:len(raw)-8]
	for _, b := range high {
		if b != 0 {
			return 0, data, common.EncodingError{
				Err: errors.New("serial number does not fit in 64 bits"),
			}
		}
	}
	return SerialNumber(binary.BigEndian.Uint64(raw[len(raw)-8:])), rest, nil
}

// ParseSerialNumber decodes a serial number from its complete text form
func ParseSerialNumber(s string) (SerialNumber, error) {
	return parseExact([]byte(s), DecodeSerialNumber)
}

func (SerialNumber) DerivationCode() derivation.Code {
	return derivation.SerialNumberSalt128
}

func (s SerialNumber) MarshalText() ([]byte, error) {
	code := derivation.SerialNumberSalt128
	raw := make([]byte, derivation.RawSize(code))
	binary.BigEndian.PutUint64(raw[len(raw)-8:], uint64(s))
	return encodeWithTag(code.String(), code, raw)
}

func (s *SerialNumber) UnmarshalText(text []byte) error {
	tmp, err := parseExact(text, DecodeSerialNumber)
	if err != nil {
		return err
	}
	*s = tmp
	return nil
}

func (s SerialNumber) MarshalBinary() ([]byte, error) {
	return textToBinary(s.MarshalText())
}

func (s *SerialNumber) UnmarshalBinary(data []byte) error {
	text, err := common.BinaryToText(data)
	if err != nil {
		return err
	}
	return s.UnmarshalText(text)
}

func (s SerialNumber) String() string {
	text, _ := s.MarshalText()
	return string(text)
}
