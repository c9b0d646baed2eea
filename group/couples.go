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

// NonTransReceiptCouple is a receipt from a non-transferable identifier: the
// signer's public key and its signature
type NonTransReceiptCouple struct {
	Prefix    primitive.Basic
	Signature primitive.SelfSigning
}

func decodeNonTransReceiptCouple(data []byte) (NonTransReceiptCouple, []byte, error) {
	prefix, rest, err := primitive.DecodeBasic(data)
	if err != nil {
		return NonTransReceiptCouple{}, data, err
	}
	sig, rest, err := primitive.DecodeSelfSigning(rest)
	if err != nil {
		return NonTransReceiptCouple{}, data, err
	}
	return NonTransReceiptCouple{Prefix: prefix, Signature: sig}, rest, nil
}

// NonTransReceiptCouples holds receipts from non-transferable identifiers
type NonTransReceiptCouples struct {
	Couples []NonTransReceiptCouple
}

func (*NonTransReceiptCouples) Code() counter.Code {
	return counter.NonTransReceiptCouples
}

func (g *NonTransReceiptCouples) encodeBody() ([]byte, int, error) {
	var body []byte
	var err error
	for _, couple := range g.Couples {
		body, err = appendPrimitives(body, couple.Prefix, couple.Signature)
		if err != nil {
			return nil, 0, err
		}
	}
	return body, len(g.Couples), nil
}

func (g *NonTransReceiptCouples) MarshalText() ([]byte, error) {
	return Encode(g)
}

func decodeNonTransReceiptCouples(
	_ *Decoder,
	count int,
	data []byte,
	_ int,
) (Group, []byte, error) {
	couples, rest, err := decodeN(count, data, decodeNonTransReceiptCouple)
	if err != nil {
		return nil, data, err
	}
	return &NonTransReceiptCouples{Couples: couples}, rest, nil
}

// FirstSeenReplayCouple records the first seen ordinal and time of an event
type FirstSeenReplayCouple struct {
	FirstSeen primitive.SerialNumber
	Timestamp primitive.Timestamp
}

func decodeFirstSeenReplayCouple(data []byte) (FirstSeenReplayCouple, []byte, error) {
	fn, rest, err := primitive.DecodeSerialNumber(data)
	if err != nil {
		return FirstSeenReplayCouple{}, data, err
	}
	ts, rest, err := primitive.DecodeTimestamp(rest)
	if err != nil {
		return FirstSeenReplayCouple{}, data, err
	}
	return FirstSeenReplayCouple{FirstSeen: fn, Timestamp: ts}, rest, nil
}

// FirstSeenReplayCouples holds first seen replay records
type FirstSeenReplayCouples struct {
	Couples []FirstSeenReplayCouple
}

func (*FirstSeenReplayCouples) Code() counter.Code {
	return counter.FirstSeenReplayCouples
}

func (g *FirstSeenReplayCouples) encodeBody() ([]byte, int, error) {
	var body []byte
	var err error
	for _, couple := range g.Couples {
		body, err = appendPrimitives(body, couple.FirstSeen, couple.Timestamp)
		if err != nil {
			return nil, 0, err
		}
	}
	return body, len(g.Couples), nil
}

func (g *FirstSeenReplayCouples) MarshalText() ([]byte, error) {
	return Encode(g)
}

func decodeFirstSeenReplayCouples(
	_ *Decoder,
	count int,
	data []byte,
	_ int,
) (Group, []byte, error) {
	couples, rest, err := decodeN(count, data, decodeFirstSeenReplayCouple)
	if err != nil {
		return nil, data, err
	}
	return &FirstSeenReplayCouples{Couples: couples}, rest, nil
}

// SealSourceCouple anchors an event by its serial number and digest
type SealSourceCouple struct {
	SerialNumber primitive.SerialNumber
	Digest       primitive.SelfAddressing
}

func decodeSealSourceCouple(data []byte) (SealSourceCouple, []byte, error) {
	sn, rest, err := primitive.DecodeSerialNumber(data)
	if err != nil {
		return SealSourceCouple{}, data, err
	}
	digest, rest, err := primitive.DecodeSelfAddressing(rest)
	if err != nil {
		return SealSourceCouple{}, data, err
	}
	return SealSourceCouple{SerialNumber: sn, Digest: digest}, rest, nil
}

// SealSourceCouples holds seal source couples
type SealSourceCouples struct {
	Couples []SealSourceCouple
}

func (*SealSourceCouples) Code() counter.Code {
	return counter.SealSourceCouples
}

func (g *SealSourceCouples) encodeBody() ([]byte, int, error) {
	var body []byte
	var err error
	for _, couple := range g.Couples {
		body, err = appendPrimitives(body, couple.SerialNumber, couple.Digest)
		if err != nil {
			return nil, 0, err
		}
	}
	return body, len(g.Couples), nil
}

func (g *SealSourceCouples) MarshalText() ([]byte, error) {
	return Encode(g)
}

func decodeSealSourceCouples(
	_ *Decoder,
	count int,
	data []byte,
	_ int,
) (Group, []byte, error) {
	couples, rest, err := decodeN(count, data, decodeSealSourceCouple)
	if err != nil {
		return nil, data, err
	}
	return &SealSourceCouples{Couples: couples}, rest, nil
}
