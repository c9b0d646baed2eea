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

package derivation

import (
	"fmt"
	"strings"

	"github.com/blinklabs-io/gocesr/common"
)

// AttachedSignatureCode identifies the algorithm of an indexed signature. The
// signer index is packed into the code tag right after the algorithm selector
type AttachedSignatureCode uint8

const (
	AttachedEd25519Sha512 AttachedSignatureCode = iota + 1
	AttachedECDSAsecp256k1Sha256
	AttachedEd448
)

type attachedInfo struct {
	selector    string
	indexWidth  int
	selfSigning SelfSigningCode
}

var attachedSignatureTable = map[AttachedSignatureCode]attachedInfo{
	AttachedEd25519Sha512: {
		selector:    "A",
		indexWidth:  1,
		selfSigning: SelfSigningEd25519Sha512,
	},
	AttachedECDSAsecp256k1Sha256: {
		selector:    "B",
		indexWidth:  1,
		selfSigning: SelfSigningECDSAsecp256k1Sha256,
	},
	AttachedEd448: {
		selector:    "0A",
		indexWidth:  2,
		selfSigning: SelfSigningEd448,
	},
}

// AttachedSignatureCodeFor returns the indexed form of a self-signing code
func AttachedSignatureCodeFor(code SelfSigningCode) (AttachedSignatureCode, error) {
	for attached, info := range attachedSignatureTable {
		if info.selfSigning == code {
			return attached, nil
		}
	}
	return 0, common.UnknownCodeError{
		Kind: "attached signature",
		Code: code.String(),
	}
}

// CodeLen is the full tag length, including the index field
func (c AttachedSignatureCode) CodeLen() int {
	info := attachedSignatureTable[c]
	return len(info.selector) + info.indexWidth
}

func (c AttachedSignatureCode) DerivativeLen() int {
	return attachedSignatureTable[c].selfSigning.DerivativeLen()
}

// String returns the algorithm selector, without the index field
func (c AttachedSignatureCode) String() string {
	return attachedSignatureTable[c].selector
}

func (c AttachedSignatureCode) Name() string {
	return attachedSignatureTable[c].selfSigning.Name()
}

// IndexWidth is the number of characters reserved for the signer index
func (c AttachedSignatureCode) IndexWidth() int {
	return attachedSignatureTable[c].indexWidth
}

// SelfSigning returns the self-signing code of the underlying signature
func (c AttachedSignatureCode) SelfSigning() SelfSigningCode {
	return attachedSignatureTable[c].selfSigning
}

// Tag returns the full code tag for a signer index. Indices whose packed form
// does not fit the index field, or would not unpack to the same value, are rejected
func (c AttachedSignatureCode) Tag(index uint16) (string, error) {
	info, ok := attachedSignatureTable[c]
	if !ok {
		return "", common.UnknownCodeError{
			Kind: "attached signature",
			Code: fmt.Sprintf("%d", c),
		}
	}
	packed := common.PackIndex(index)
	if len(packed) > info.indexWidth {
		return "", common.NewFramingError(
			"signature index %d does not fit the %d character index field of code %q",
			index,
			info.indexWidth,
			info.selector,
		)
	}
	field := strings.Repeat("A", info.indexWidth-len(packed)) + packed
	unpacked, err := common.UnpackNum([]byte(field))
	if err != nil {
		return "", err
	}
	if unpacked != index {
		return "", common.NewFramingError(
			"signature index %d cannot be represented losslessly",
			index,
		)
	}
	return info.selector + field, nil
}

// ParseAttachedSignatureCode reads an indexed signature tag from the front of
// data and returns the code, the signer index and the full tag length
func ParseAttachedSignatureCode(
	data []byte,
) (AttachedSignatureCode, uint16, int, error) {
	if len(data) == 0 {
		return 0, 0, 0, common.IncompleteError{Needed: 1}
	}
	var code AttachedSignatureCode
	switch data[0] {
	case 'A':
		code = AttachedEd25519Sha512
	case 'B':
		code = AttachedECDSAsecp256k1Sha256
	case '0':
		if len(data) < 2 {
			return 0, 0, 0, common.IncompleteError{Needed: 1}
		}
		if data[1] != 'A' {
			return 0, 0, 0, common.UnknownCodeError{
				Kind: "attached signature",
				Code: string(data[:2]),
			}
		}
		code = AttachedEd448
	default:
		return 0, 0, 0, common.UnknownCodeError{
			Kind: "attached signature",
			Code: string(data[:1]),
		}
	}
	tagLen := code.CodeLen()
	if len(data) < tagLen {
		return 0, 0, 0, common.IncompleteError{Needed: tagLen - len(data)}
	}
	selectorLen := len(code.String())
	index, err := common.UnpackNum(data[selectorLen:tagLen])
	if err != nil {
		return 0, 0, 0, err
	}
	// Only accept index fields that re-encode to the same tag
	tag, err := code.Tag(index)
	if err != nil || tag != string(data[:tagLen]) {
		return 0, 0, 0, common.NewFramingError(
			"non-canonical signature index field %q",
			string(data[selectorLen:tagLen]),
		)
	}
	return code, index, tagLen, nil
}
