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

// Package counter implements the CESR count code that prefixes every group
package counter

import (
	"fmt"

	"github.com/blinklabs-io/gocesr/common"
)

const (
	// CodeLen is the length of a count code tag
	CodeLen = 2
	// CountLen is the length of the packed count
	CountLen = 2
	// HeaderLen is the full text length of a counter
	HeaderLen = CodeLen + CountLen
	// MaxCount is the largest count that fits in the packed count
	MaxCount = 1<<(6*CountLen) - 1
)

// Code is a count code tag, such as "-A"
type Code string

const (
	ControllerIdxSigs        Code = "-A"
	WitnessIdxSigs           Code = "-B"
	NonTransReceiptCouples   Code = "-C"
	TransReceiptQuadruples   Code = "-D"
	FirstSeenReplayCouples   Code = "-E"
	TransIdxSigGroups        Code = "-F"
	SealSourceCouples        Code = "-G"
	TransLastIdxSigGroups    Code = "-H"
	SealSourceTriples        Code = "-I"
	SadPathSig               Code = "-J"
	SadPathSigGroup          Code = "-K"
	PathedMaterialQuadlets   Code = "-L"
	Frame                    Code = "-V"
	AttachedMaterialQuadlets Code = "-0V"
)

var codeNames = map[Code]string{
	ControllerIdxSigs:        "ControllerIdxSigs",
	WitnessIdxSigs:           "WitnessIdxSigs",
	NonTransReceiptCouples:   "NonTransReceiptCouples",
	TransReceiptQuadruples:   "TransReceiptQuadruples",
	FirstSeenReplayCouples:   "FirstSeenReplayCouples",
	TransIdxSigGroups:        "TransIdxSigGroups",
	SealSourceCouples:        "SealSourceCouples",
	TransLastIdxSigGroups:    "TransLastIdxSigGroups",
	SealSourceTriples:        "SealSourceTriples",
	SadPathSig:               "SadPathSig",
	SadPathSigGroup:          "SadPathSigGroup",
	PathedMaterialQuadlets:   "PathedMaterialQuadlets",
	Frame:                    "Frame",
	AttachedMaterialQuadlets: "AttachedMaterialQuadlets",
}

// Name returns the descriptive name of a count code
func (c Code) Name() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%s)", string(c))
}

// Known reports whether the code is in the count code table
func (c Code) Known() bool {
	_, ok := codeNames[c]
	return ok
}

// Counter is a group header: a count code and the number of elements that follow
type Counter struct {
	Code  Code
	Count uint16
}

// New builds a counter from an element count, failing if the count does not fit
func New(code Code, count int) (Counter, error) {
	if count < 0 || count > MaxCount {
		return Counter{}, common.NewFramingError(
			"count %d for code %q is out of range",
			count,
			string(code),
		)
	}
	return Counter{Code: code, Count: uint16(count)}, nil
}

// Decode reads a counter from the front of data. The count code must be
// syntactically valid but is not checked against the code table
func Decode(data []byte) (Counter, []byte, error) {
	if len(data) == 0 {
		return Counter{}, data, common.IncompleteError{Needed: HeaderLen}
	}
	if data[0] != '-' {
		return Counter{}, data, common.UnknownCodeError{
			Kind: "counter",
			Code: string(data[:1]),
		}
	}
	if len(data) < HeaderLen {
		return Counter{}, data, common.IncompleteError{
			Needed: HeaderLen - len(data),
		}
	}
	// Extended counters carry a digit selector and a longer count field
	if data[1] >= '0' && data[1] <= '9' {
		return Counter{}, data, common.NotImplementedError{
			Feature: fmt.Sprintf("extended count code %q", string(data[:3])),
		}
	}
	count, err := common.UnpackNum(data[CodeLen:HeaderLen])
	if err != nil {
		return Counter{}, data, err
	}
	ret := Counter{
		Code:  Code(data[:CodeLen]),
		Count: count,
	}
	return ret, data[HeaderLen:], nil
}

// MarshalText returns the counter header
func (c Counter) MarshalText() ([]byte, error) {
	if len(c.Code) != CodeLen || c.Code[0] != '-' {
		return nil, common.UnknownCodeError{Kind: "counter", Code: string(c.Code)}
	}
	count, err := common.PackCount(c.Count, CountLen)
	if err != nil {
		return nil, err
	}
	return []byte(string(c.Code) + count), nil
}

// Encode returns the counter header followed by body
func (c Counter) Encode(body []byte) ([]byte, error) {
	header, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	ret := make([]byte, 0, len(header)+len(body))
	ret = append(ret, header...)
	ret = append(ret, body...)
	return ret, nil
}

func (c Counter) MarshalBinary() ([]byte, error) {
	header, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return common.TextToBinary(header)
}

func (c *Counter) UnmarshalBinary(data []byte) error {
	text, err := common.BinaryToText(data)
	if err != nil {
		return err
	}
	tmp, rest, err := Decode(text)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return common.TrailingDataError{Remaining: len(rest)}
	}
	*c = tmp
	return nil
}

func (c Counter) String() string {
	header, err := c.MarshalText()
	if err != nil {
		return fmt.Sprintf("%s?%d", string(c.Code), c.Count)
	}
	return string(header)
}
