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

// AttachedSignature is a signature tagged with the index of its signer in a multi-sig key set
type AttachedSignature struct {
	Index     uint16
	Signature SelfSigning
}

// NewAttachedSignature builds an indexed signature. The index must be
// representable in the index field of the signature's code
func NewAttachedSignature(
	code derivation.SelfSigningCode,
	index uint16,
	signature []byte,
) (AttachedSignature, error) {
	sig, err := NewSelfSigning(code, signature)
	if err != nil {
		return AttachedSignature{}, err
	}
	attachedCode, err := derivation.AttachedSignatureCodeFor(code)
	if err != nil {
		return AttachedSignature{}, err
	}
	if _, err := attachedCode.Tag(index); err != nil {
		return AttachedSignature{}, err
	}
	return AttachedSignature{Index: index, Signature: sig}, nil
}

// DecodeAttachedSignature reads an indexed signature from the front of data
func DecodeAttachedSignature(data []byte) (AttachedSignature, []byte, error) {
	code, index, tagLen, err := derivation.ParseAttachedSignatureCode(data)
	if err != nil {
		return AttachedSignature{}, data, err
	}
	raw, rest, err := decodePayload(code, data[tagLen:])
	if err != nil {
		return AttachedSignature{}, data, err
	}
	ret := AttachedSignature{
		Index: index,
		Signature: SelfSigning{
			Code:      code.SelfSigning(),
			Signature: raw,
		},
	}
	return ret, rest, nil
}

// ParseAttachedSignature decodes an indexed signature from its complete text form
func ParseAttachedSignature(s string) (AttachedSignature, error) {
	return parseExact([]byte(s), DecodeAttachedSignature)
}

// Code returns the indexed signature code for the underlying signature algorithm
func (a AttachedSignature) Code() (derivation.AttachedSignatureCode, error) {
	return derivation.AttachedSignatureCodeFor(a.Signature.Code)
}

func (a AttachedSignature) DerivationCode() derivation.Code {
	code, err := a.Code()
	if err != nil {
		return a.Signature.Code
	}
	return code
}

func (a AttachedSignature) MarshalText() ([]byte, error) {
	if len(a.Signature.Signature) == 0 {
		return []byte{}, nil
	}
	code, err := a.Code()
	if err != nil {
		return nil, err
	}
	tag, err := code.Tag(a.Index)
	if err != nil {
		return nil, err
	}
	return encodeWithTag(tag, code, a.Signature.Signature)
}

func (a *AttachedSignature) UnmarshalText(text []byte) error {
	tmp, err := parseExact(text, DecodeAttachedSignature)
	if err != nil {
		return err
	}
	*a = tmp
	return nil
}

func (a AttachedSignature) MarshalBinary() ([]byte, error) {
	return textToBinary(a.MarshalText())
}

func (a *AttachedSignature) UnmarshalBinary(data []byte) error {
	text, err := common.BinaryToText(data)
	if err != nil {
		return err
	}
	return a.UnmarshalText(text)
}

func (a AttachedSignature) String() string {
	text, _ := a.MarshalText()
	return string(text)
}
