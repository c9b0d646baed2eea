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

package cesr

import (
	"fmt"

	"github.com/blinklabs-io/gocesr/common"
)

// ColdCode is the top three bits of the first byte of a message. It selects
// the decoder for the message
type ColdCode uint8

const (
	ColdFree   ColdCode = 0b000 // reserved
	ColdCtB64  ColdCode = 0b001 // text domain count code
	ColdOpB64  ColdCode = 0b010 // text domain op code
	ColdJSON   ColdCode = 0b011 // JSON object
	ColdMGPK1  ColdCode = 0b100 // MessagePack fixed map
	ColdCBOR   ColdCode = 0b101 // CBOR map
	ColdMGPK2  ColdCode = 0b110 // MessagePack map16 or map32
	ColdCtOpB2 ColdCode = 0b111 // binary domain count or op code
)

func (c ColdCode) String() string {
	switch c {
	case ColdFree:
		return "Free"
	case ColdCtB64:
		return "CtB64"
	case ColdOpB64:
		return "OpB64"
	case ColdJSON:
		return "JSON"
	case ColdMGPK1:
		return "MGPK1"
	case ColdCBOR:
		return "CBOR"
	case ColdMGPK2:
		return "MGPK2"
	case ColdCtOpB2:
		return "CtOpB2"
	default:
		return fmt.Sprintf("ColdCode(%d)", uint8(c))
	}
}

// Sniff classifies the first byte of a message
func Sniff(b byte) (ColdCode, error) {
	c := ColdCode(b >> 5)
	if c == ColdFree {
		return c, common.UnknownCodeError{
			Kind: "cold start",
			Code: fmt.Sprintf("0x%02x", b),
		}
	}
	return c, nil
}
