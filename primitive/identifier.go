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
	"errors"

	"github.com/blinklabs-io/gocesr/common"
	"github.com/blinklabs-io/gocesr/derivation"
)

// Identifier is an identifier prefix, either a digest or a public key
type Identifier interface {
	Primitive
	isIdentifier()
}

// DecodeIdentifier reads an identifier prefix from the front of data. Digest
// codes are tried first, then public key codes
func DecodeIdentifier(data []byte) (Identifier, []byte, error) {
	_, _, err := derivation.ParseSelfAddressingCode(data)
	if err == nil {
		sa, rest, err := DecodeSelfAddressing(data)
		if err != nil {
			return nil, data, err
		}
		return sa, rest, nil
	}
	if !errors.Is(err, common.ErrUnknownCode) {
		return nil, data, err
	}
	basic, rest, err := DecodeBasic(data)
	if err != nil {
		var codeErr common.UnknownCodeError
		if errors.As(err, &codeErr) {
			codeErr.Kind = "identifier"
			return nil, data, codeErr
		}
		return nil, data, err
	}
	return basic, rest, nil
}

// ParseIdentifier decodes an identifier prefix from its complete text form
func ParseIdentifier(s string) (Identifier, error) {
	return parseExact([]byte(s), DecodeIdentifier)
}
