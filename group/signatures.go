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

package group

import (
	"github.com/blinklabs-io/gocesr/common"
	"github.com/blinklabs-io/gocesr/counter"
	"github.com/blinklabs-io/gocesr/primitive"
)

// ControllerIdxSigs holds indexed signatures made with the controller's current keys
type ControllerIdxSigs struct {
	Signatures []primitive.AttachedSignature
}

func (*ControllerIdxSigs) Code() counter.Code {
	return counter.ControllerIdxSigs
}

func (g *ControllerIdxSigs) encodeBody() ([]byte, int, error) {
	body, err := appendSignatures(nil, g.Signatures)
	return body, len(g.Signatures), err
}

func (g *ControllerIdxSigs) MarshalText() ([]byte, error) {
	return Encode(g)
}

func decodeControllerIdxSigs(
	_ *Decoder,
	count int,
	data []byte,
	_ int,
) (Group, []byte, error) {
	sigs, rest, err := decodeN(count, data, primitive.DecodeAttachedSignature)
	if err != nil {
		return nil, data, err
	}
	return &ControllerIdxSigs{Signatures: sigs}, rest, nil
}

// WitnessIdxSigs holds indexed signatures made by witnesses
type WitnessIdxSigs struct {
	Signatures []primitive.AttachedSignature
}

func (*WitnessIdxSigs) Code() counter.Code {
	return counter.WitnessIdxSigs
}

func (g *WitnessIdxSigs) encodeBody() ([]byte, int, error) {
	body, err := appendSignatures(nil, g.Signatures)
	return body, len(g.Signatures), err
}

func (g *WitnessIdxSigs) MarshalText() ([]byte, error) {
	return Encode(g)
}

func decodeWitnessIdxSigs(
	_ *Decoder,
	count int,
	data []byte,
	_ int,
) (Group, []byte, error) {
	sigs, rest, err := decodeN(count, data, primitive.DecodeAttachedSignature)
	if err != nil {
		return nil, data, err
	}
	return &WitnessIdxSigs{Signatures: sigs}, rest, nil
}

func appendSignatures(
	dst []byte,
	sigs []primitive.AttachedSignature,
) ([]byte, error) {
	var err error
	for _, sig := range sigs {
		dst, err = appendPrimitive(dst, sig)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// appendNestedSignatures appends a complete controller signature group, as
// used for the trailing list of the signature group shapes
func appendNestedSignatures(
	dst []byte,
	sigs []primitive.AttachedSignature,
) ([]byte, error) {
	nested, err := Encode(&ControllerIdxSigs{Signatures: sigs})
	if err != nil {
		return nil, err
	}
	return append(dst, nested...), nil
}

// decodeNestedSignatures reads the self-framed controller signature group that
// ends each element of the signature group shapes
func decodeNestedSignatures(
	data []byte,
) ([]primitive.AttachedSignature, []byte, error) {
	c, rest, err := counter.Decode(data)
	if err != nil {
		return nil, data, err
	}
	if c.Code != counter.ControllerIdxSigs {
		return nil, data, common.NewFramingError(
			"expected nested %s group, found %q",
			counter.ControllerIdxSigs.Name(),
			string(c.Code),
		)
	}
	sigs, rest, err := decodeN(
		int(c.Count),
		rest,
		primitive.DecodeAttachedSignature,
	)
	if err != nil {
		return nil, data, err
	}
	return sigs, rest, nil
}
