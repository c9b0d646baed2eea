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
	"github.com/blinklabs-io/gocesr/counter"
	"github.com/blinklabs-io/gocesr/primitive"
)

// SealSourceTriple anchors an event of another identifier
type SealSourceTriple struct {
	Prefix       primitive.Identifier
	SerialNumber primitive.SerialNumber
	Digest       primitive.SelfAddressing
}

func decodeSealSourceTriple(data []byte) (SealSourceTriple, []byte, error) {
	prefix, rest, err := primitive.DecodeIdentifier(data)
	if err != nil {
		return SealSourceTriple{}, data, err
	}
	sn, rest, err := primitive.DecodeSerialNumber(rest)
	if err != nil {
		return SealSourceTriple{}, data, err
	}
	digest, rest, err := primitive.DecodeSelfAddressing(rest)
	if err != nil {
		return SealSourceTriple{}, data, err
	}
	ret := SealSourceTriple{
		Prefix:       prefix,
		SerialNumber: sn,
		Digest:       digest,
	}
	return ret, rest, nil
}

// SealSourceTriples holds seal source triples
type SealSourceTriples struct {
	Triples []SealSourceTriple
}

func (*SealSourceTriples) Code() counter.Code {
	return counter.SealSourceTriples
}

func (g *SealSourceTriples) encodeBody() ([]byte, int, error) {
	var body []byte
	var err error
	for _, triple := range g.Triples {
		body, err = appendPrimitives(
			body,
			triple.Prefix,
			triple.SerialNumber,
			triple.Digest,
		)
		if err != nil {
			return nil, 0, err
		}
	}
	return body, len(g.Triples), nil
}

func (g *SealSourceTriples) MarshalText() ([]byte, error) {
	return Encode(g)
}

func decodeSealSourceTriples(
	_ *Decoder,
	count int,
	data []byte,
	_ int,
) (Group, []byte, error) {
	triples, rest, err := decodeN(count, data, decodeSealSourceTriple)
	if err != nil {
		return nil, data, err
	}
	return &SealSourceTriples{Triples: triples}, rest, nil
}

// TransReceiptQuadruple is a receipt from a transferable identifier: the
// signer's prefix, the serial number and digest of its establishment event,
// and the indexed signature
type TransReceiptQuadruple struct {
	Prefix       primitive.Identifier
	SerialNumber primitive.SerialNumber
	Digest       primitive.SelfAddressing
	Signature    primitive.AttachedSignature
}

func decodeTransReceiptQuadruple(data []byte) (TransReceiptQuadruple, []byte, error) {
	prefix, rest, err := primitive.DecodeIdentifier(data)
	if err != nil {
		return TransReceiptQuadruple{}, data, err
	}
	sn, rest, err := primitive.DecodeSerialNumber(rest)
	if err != nil {
		return TransReceiptQuadruple{}, data, err
	}
	digest, rest, err := primitive.DecodeSelfAddressing(rest)
	if err != nil {
		return TransReceiptQuadruple{}, data, err
	}
	sig, rest, err := primitive.DecodeAttachedSignature(rest)
	if err != nil {
		return TransReceiptQuadruple{}, data, err
	}
	ret := TransReceiptQuadruple{
		Prefix:       prefix,
		SerialNumber: sn,
		Digest:       digest,
		Signature:    sig,
	}
	return ret, rest, nil
}

// TransReceiptQuadruples holds receipts from transferable identifiers
type TransReceiptQuadruples struct {
	Quadruples []TransReceiptQuadruple
}

func (*TransReceiptQuadruples) Code() counter.Code {
	return counter.TransReceiptQuadruples
}

func (g *TransReceiptQuadruples) encodeBody() ([]byte, int, error) {
	var body []byte
	var err error
	for _, quad := range g.Quadruples {
		body, err = appendPrimitives(
			body,
			quad.Prefix,
			quad.SerialNumber,
			quad.Digest,
			quad.Signature,
		)
		if err != nil {
			return nil, 0, err
		}
	}
	return body, len(g.Quadruples), nil
}

func (g *TransReceiptQuadruples) MarshalText() ([]byte, error) {
	return Encode(g)
}

func decodeTransReceiptQuadruples(
	_ *Decoder,
	count int,
	data []byte,
	_ int,
) (Group, []byte, error) {
	quads, rest, err := decodeN(count, data, decodeTransReceiptQuadruple)
	if err != nil {
		return nil, data, err
	}
	return &TransReceiptQuadruples{Quadruples: quads}, rest, nil
}

// TransIdxSigGroup is a set of indexed signatures from a transferable
// identifier together with the establishment event they were made against
type TransIdxSigGroup struct {
	Prefix       primitive.Identifier
	SerialNumber primitive.SerialNumber
	Digest       primitive.SelfAddressing
	Signatures   []primitive.AttachedSignature
}

func decodeTransIdxSigGroup(data []byte) (TransIdxSigGroup, []byte, error) {
	prefix, rest, err := primitive.DecodeIdentifier(data)
	if err != nil {
		return TransIdxSigGroup{}, data, err
	}
	sn, rest, err := primitive.DecodeSerialNumber(rest)
	if err != nil {
		return TransIdxSigGroup{}, data, err
	}
	digest, rest, err := primitive.DecodeSelfAddressing(rest)
	if err != nil {
		return TransIdxSigGroup{}, data, err
	}
	sigs, rest, err := decodeNestedSignatures(rest)
	if err != nil {
		return TransIdxSigGroup{}, data, err
	}
	ret := TransIdxSigGroup{
		Prefix:       prefix,
		SerialNumber: sn,
		Digest:       digest,
		Signatures:   sigs,
	}
	return ret, rest, nil
}

// TransIdxSigGroups holds transferable indexed signature groups
type TransIdxSigGroups struct {
	Groups []TransIdxSigGroup
}

func (*TransIdxSigGroups) Code() counter.Code {
	return counter.TransIdxSigGroups
}

func (g *TransIdxSigGroups) encodeBody() ([]byte, int, error) {
	var body []byte
	var err error
	for _, sigGroup := range g.Groups {
		body, err = appendPrimitives(
			body,
			sigGroup.Prefix,
			sigGroup.SerialNumber,
			sigGroup.Digest,
		)
		if err != nil {
			return nil, 0, err
		}
		body, err = appendNestedSignatures(body, sigGroup.Signatures)
		if err != nil {
			return nil, 0, err
		}
	}
	return body, len(g.Groups), nil
}

func (g *TransIdxSigGroups) MarshalText() ([]byte, error) {
	return Encode(g)
}

func decodeTransIdxSigGroups(
	_ *Decoder,
	count int,
	data []byte,
	_ int,
) (Group, []byte, error) {
	groups, rest, err := decodeN(count, data, decodeTransIdxSigGroup)
	if err != nil {
		return nil, data, err
	}
	return &TransIdxSigGroups{Groups: groups}, rest, nil
}

// TransLastIdxSigGroup is a set of indexed signatures made with the keys of
// the latest establishment event of a transferable identifier
type TransLastIdxSigGroup struct {
	Prefix     primitive.Identifier
	Signatures []primitive.AttachedSignature
}

func decodeTransLastIdxSigGroup(data []byte) (TransLastIdxSigGroup, []byte, error) {
	prefix, rest, err := primitive.DecodeIdentifier(data)
	if err != nil {
		return TransLastIdxSigGroup{}, data, err
	}
	sigs, rest, err := decodeNestedSignatures(rest)
	if err != nil {
		return TransLastIdxSigGroup{}, data, err
	}
	return TransLastIdxSigGroup{Prefix: prefix, Signatures: sigs}, rest, nil
}

// TransLastIdxSigGroups holds last establishment signature groups
type TransLastIdxSigGroups struct {
	Groups []TransLastIdxSigGroup
}

func (*TransLastIdxSigGroups) Code() counter.Code {
	return counter.TransLastIdxSigGroups
}

func (g *TransLastIdxSigGroups) encodeBody() ([]byte, int, error) {
	var body []byte
	var err error
	for _, sigGroup := range g.Groups {
		body, err = appendPrimitive(body, sigGroup.Prefix)
		if err != nil {
			return nil, 0, err
		}
		body, err = appendNestedSignatures(body, sigGroup.Signatures)
		if err != nil {
			return nil, 0, err
		}
	}
	return body, len(g.Groups), nil
}

func (g *TransLastIdxSigGroups) MarshalText() ([]byte, error) {
	return Encode(g)
}

func decodeTransLastIdxSigGroups(
	_ *Decoder,
	count int,
	data []byte,
	_ int,
) (Group, []byte, error) {
	groups, rest, err := decodeN(count, data, decodeTransLastIdxSigGroup)
	if err != nil {
		return nil, data, err
	}
	return &TransLastIdxSigGroups{Groups: groups}, rest, nil
}
