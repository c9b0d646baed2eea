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

// Package derivation holds the static CESR derivation code tables.
//
// A derivation code is the short leading tag of a primitive. It declares the
// algorithm of the primitive and, through the table, the fixed number of text
// characters that follow it. Lengths are constants of the format and are never
// computed from content.
package derivation

import (
	"github.com/blinklabs-io/gocesr/common"
)

// Code is implemented by every derivation code enum
type Code interface {
	// CodeLen is the length of the code tag in text characters
	CodeLen() int
	// DerivativeLen is the length of the encoded payload in text characters
	DerivativeLen() int
	// String returns the code tag
	String() string
}

// RawSize returns the number of payload bytes carried by a code
func RawSize(c Code) int {
	return c.DerivativeLen() * 6 / 8
}

// FullLen returns the total text length of a primitive using the code
func FullLen(c Code) int {
	return c.CodeLen() + c.DerivativeLen()
}

// TagLen returns the length of a code tag from its first character.
// '0' selects a 2 character tag, '1' a 4 character tag, anything else is a
// complete 1 character tag
func TagLen(first byte) int {
	switch first {
	case '0':
		return 2
	case '1':
		return 4
	default:
		return 1
	}
}

type codeInfo struct {
	tag           string
	name          string
	derivativeLen int
}

type codeTable[T ~uint8] struct {
	kind   string
	byCode map[T]codeInfo
	byTag  map[string]T
}

func newCodeTable[T ~uint8](kind string, entries map[T]codeInfo) *codeTable[T] {
	t := &codeTable[T]{
		kind:   kind,
		byCode: entries,
		byTag:  make(map[string]T, len(entries)),
	}
	for code, info := range entries {
		if _, exists := t.byTag[info.tag]; exists {
			panic("duplicate " + kind + " code tag " + info.tag)
		}
		t.byTag[info.tag] = code
	}
	return t
}

func (t *codeTable[T]) info(code T) codeInfo {
	return t.byCode[code]
}

// parse reads a code tag from the front of data and returns the code and the tag length
func (t *codeTable[T]) parse(data []byte) (T, int, error) {
	if len(data) == 0 {
		return 0, 0, common.IncompleteError{Needed: 1}
	}
	n := TagLen(data[0])
	if len(data) < n {
		return 0, 0, common.IncompleteError{Needed: n - len(data)}
	}
	tag := string(data[:n])
	code, ok := t.byTag[tag]
	if !ok {
		return 0, 0, common.UnknownCodeError{Kind: t.kind, Code: tag}
	}
	return code, n, nil
}

// fromString looks up a code by its complete tag
func (t *codeTable[T]) fromString(tag string) (T, error) {
	code, ok := t.byTag[tag]
	if !ok {
		return 0, common.UnknownCodeError{Kind: t.kind, Code: tag}
	}
	return code, nil
}
