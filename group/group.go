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

// Package group implements CESR groups: a counter followed by a fixed number
// of primitives or tuples of primitives, and frames that wrap further groups.
package group

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gocesr/common"
	"github.com/blinklabs-io/gocesr/counter"
	"github.com/blinklabs-io/gocesr/primitive"
)

// ErrMaxDepthExceeded is returned when frames are nested deeper than the decoder allows
var ErrMaxDepthExceeded = errors.New("maximum frame nesting depth exceeded")

// Group is implemented by every group type
type Group interface {
	// Code returns the count code of the group
	Code() counter.Code
	// encodeBody returns the encoded elements and the count to put in the header
	encodeBody() ([]byte, int, error)
}

// Arity describes the shape of the elements that follow a counter
type Arity uint8

const (
	ArityList Arity = iota + 1
	ArityCouple
	ArityTriple
	ArityQuadruple
	ArityCoupleWithList
	ArityQuadrupleWithList
	ArityFrame
)

func (a Arity) String() string {
	switch a {
	case ArityList:
		return "list"
	case ArityCouple:
		return "couple"
	case ArityTriple:
		return "triple"
	case ArityQuadruple:
		return "quadruple"
	case ArityCoupleWithList:
		return "couple-with-list"
	case ArityQuadrupleWithList:
		return "quadruple-with-list"
	case ArityFrame:
		return "frame"
	default:
		return fmt.Sprintf("Arity(%d)", uint8(a))
	}
}

type decodeFunc func(d *Decoder, count int, data []byte, depth int) (Group, []byte, error)

type rule struct {
	arity  Arity
	decode decodeFunc
}

// dispatchTable maps each count code to the shape of its elements. A nil
// decode function marks a recognized code whose shape is not supported
var dispatchTable map[counter.Code]rule

func init() {
	dispatchTable = map[counter.Code]rule{
		counter.ControllerIdxSigs:      {arity: ArityList, decode: decodeControllerIdxSigs},
		counter.WitnessIdxSigs:         {arity: ArityList, decode: decodeWitnessIdxSigs},
		counter.NonTransReceiptCouples: {arity: ArityCouple, decode: decodeNonTransReceiptCouples},
		counter.TransReceiptQuadruples: {arity: ArityQuadruple, decode: decodeTransReceiptQuadruples},
		counter.FirstSeenReplayCouples: {arity: ArityCouple, decode: decodeFirstSeenReplayCouples},
		counter.TransIdxSigGroups:      {arity: ArityQuadrupleWithList, decode: decodeTransIdxSigGroups},
		counter.SealSourceCouples:      {arity: ArityCouple, decode: decodeSealSourceCouples},
		counter.TransLastIdxSigGroups:  {arity: ArityCoupleWithList, decode: decodeTransLastIdxSigGroups},
		counter.SealSourceTriples:      {arity: ArityTriple, decode: decodeSealSourceTriples},
		counter.Frame:                  {arity: ArityFrame, decode: decodeFrame},
		counter.SadPathSig:             {},
		counter.SadPathSigGroup:        {},
		counter.PathedMaterialQuadlets: {},
	}
}

// ArityOf returns the element shape of a count code
func ArityOf(code counter.Code) (Arity, bool) {
	r, ok := dispatchTable[code]
	if !ok || r.decode == nil {
		return 0, false
	}
	return r.arity, true
}

// Decode reads one group from the front of data using the default decoder
func Decode(data []byte) (Group, []byte, error) {
	return defaultDecoder.Decode(data)
}

// DecodeExact decodes exactly one group, failing if any input remains
func DecodeExact(data []byte) (Group, error) {
	return defaultDecoder.DecodeExact(data)
}

// DecodeBinary reads one binary domain group from the front of data using the default decoder
func DecodeBinary(data []byte) (Group, []byte, error) {
	return defaultDecoder.DecodeBinary(data)
}

// Encode returns the text form of a group
func Encode(g Group) ([]byte, error) {
	if g == nil {
		return nil, common.NewFramingError("cannot encode nil group")
	}
	body, count, err := g.encodeBody()
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", g.Code().Name(), err)
	}
	c, err := counter.New(g.Code(), count)
	if err != nil {
		return nil, err
	}
	return c.Encode(body)
}

// EncodeBinary returns the binary domain form of a group
func EncodeBinary(g Group) ([]byte, error) {
	text, err := Encode(g)
	if err != nil {
		return nil, err
	}
	return common.TextToBinary(text)
}

// Count returns the number of elements the group header declares
func Count(g Group) (int, error) {
	_, count, err := g.encodeBody()
	return count, err
}

var defaultDecoder = NewDecoder()

// Decoder decodes groups. It holds no mutable state and is safe for concurrent use
type Decoder struct {
	config DecoderConfig
}

// NewDecoder returns a decoder with the given options applied over the defaults
func NewDecoder(opts ...DecoderOptionFunc) *Decoder {
	d := &Decoder{
		config: DefaultDecoderConfig(),
	}
	for _, opt := range opts {
		opt(&d.config)
	}
	if d.config.MaxDepth < 1 {
		d.config.MaxDepth = DefaultMaxDepth
	}
	return d
}

// Decode reads one group from the front of data and returns the remaining bytes
func (d *Decoder) Decode(data []byte) (Group, []byte, error) {
	return d.decode(data, 0)
}

// DecodeExact decodes exactly one group, failing if any input remains
func (d *Decoder) DecodeExact(data []byte) (Group, error) {
	g, rest, err := d.Decode(data)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, common.TrailingDataError{Remaining: len(rest)}
	}
	return g, nil
}

func (d *Decoder) decode(data []byte, depth int) (Group, []byte, error) {
	c, rest, err := counter.Decode(data)
	if err != nil {
		return nil, data, err
	}
	r, ok := dispatchTable[c.Code]
	if !ok {
		return nil, data, common.UnknownCodeError{
			Kind: "counter",
			Code: string(c.Code),
		}
	}
	if r.decode == nil {
		return nil, data, common.NotImplementedError{
			Feature: fmt.Sprintf("group %s (%s)", c.Code.Name(), string(c.Code)),
		}
	}
	g, rest, err := r.decode(d, int(c.Count), rest, depth)
	if err != nil {
		return nil, data, err
	}
	return g, rest, nil
}

// decodeN decodes count consecutive elements
func decodeN[T any](
	count int,
	data []byte,
	decodeElement func([]byte) (T, []byte, error),
) ([]T, []byte, error) {
	if count == 0 {
		return nil, data, nil
	}
	ret := make([]T, 0, count)
	rest := data
	for i := range count {
		var elem T
		var err error
		elem, rest, err = decodeElement(rest)
		if err != nil {
			return nil, data, fmt.Errorf("element %d: %w", i, err)
		}
		ret = append(ret, elem)
	}
	return ret, rest, nil
}

// appendPrimitive appends the text form of a primitive. Empty primitives are
// rejected because they encode to nothing and could not be decoded back
func appendPrimitive(dst []byte, p primitive.Primitive) ([]byte, error) {
	if p == nil {
		return nil, common.NewFramingError("missing primitive")
	}
	text, err := p.MarshalText()
	if err != nil {
		return nil, err
	}
	if len(text) == 0 {
		return nil, common.NewFramingError(
			"empty %T cannot be framed in a group",
			p,
		)
	}
	return append(dst, text...), nil
}

// appendPrimitives appends the text form of each primitive in order
func appendPrimitives(dst []byte, prims ...primitive.Primitive) ([]byte, error) {
	var err error
	for _, p := range prims {
		dst, err = appendPrimitive(dst, p)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}
