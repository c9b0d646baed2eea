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

package derivation_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/gocesr/common"
	"github.com/blinklabs-io/gocesr/derivation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeLengths(t *testing.T) {
	testDefs := []struct {
		code          derivation.Code
		tag           string
		codeLen       int
		derivativeLen int
		rawSize       int
	}{
		{code: derivation.BasicEd25519NT, tag: "B", codeLen: 1, derivativeLen: 43, rawSize: 32},
		{code: derivation.BasicX25519, tag: "C", codeLen: 1, derivativeLen: 43, rawSize: 32},
		{code: derivation.BasicEd25519, tag: "D", codeLen: 1, derivativeLen: 43, rawSize: 32},
		{code: derivation.BasicX448, tag: "L", codeLen: 1, derivativeLen: 75, rawSize: 56},
		{code: derivation.BasicECDSAsecp256k1NT, tag: "1AAA", codeLen: 4, derivativeLen: 44, rawSize: 33},
		{code: derivation.BasicECDSAsecp256k1, tag: "1AAB", codeLen: 4, derivativeLen: 44, rawSize: 33},
		{code: derivation.BasicEd448NT, tag: "1AAC", codeLen: 4, derivativeLen: 76, rawSize: 57},
		{code: derivation.BasicEd448, tag: "1AAD", codeLen: 4, derivativeLen: 76, rawSize: 57},
		{code: derivation.SelfAddressingBlake3_256, tag: "E", codeLen: 1, derivativeLen: 43, rawSize: 32},
		{code: derivation.SelfAddressingSHA2_256, tag: "I", codeLen: 1, derivativeLen: 43, rawSize: 32},
		{code: derivation.SelfAddressingBlake3_512, tag: "0D", codeLen: 2, derivativeLen: 86, rawSize: 64},
		{code: derivation.SelfAddressingSHA2_512, tag: "0G", codeLen: 2, derivativeLen: 86, rawSize: 64},
		{code: derivation.SelfSigningEd25519Sha512, tag: "0B", codeLen: 2, derivativeLen: 86, rawSize: 64},
		{code: derivation.SelfSigningECDSAsecp256k1Sha256, tag: "0C", codeLen: 2, derivativeLen: 86, rawSize: 64},
		{code: derivation.SelfSigningEd448, tag: "1AAE", codeLen: 4, derivativeLen: 152, rawSize: 114},
		{code: derivation.SerialNumberSalt128, tag: "0A", codeLen: 2, derivativeLen: 22, rawSize: 16},
		{code: derivation.TimestampDateTime, tag: "1AAG", codeLen: 4, derivativeLen: 32, rawSize: 24},
		{code: derivation.AttachedEd25519Sha512, tag: "A", codeLen: 2, derivativeLen: 86, rawSize: 64},
		{code: derivation.AttachedECDSAsecp256k1Sha256, tag: "B", codeLen: 2, derivativeLen: 86, rawSize: 64},
		{code: derivation.AttachedEd448, tag: "0A", codeLen: 4, derivativeLen: 152, rawSize: 114},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.tag, testDef.code.String())
		assert.Equal(t, testDef.codeLen, testDef.code.CodeLen(), "code %s", testDef.tag)
		assert.Equal(t, testDef.derivativeLen, testDef.code.DerivativeLen(), "code %s", testDef.tag)
		assert.Equal(t, testDef.rawSize, derivation.RawSize(testDef.code), "code %s", testDef.tag)
		// Every primitive is quadlet aligned
		assert.Zero(t, derivation.FullLen(testDef.code)%4, "code %s", testDef.tag)
	}
}

func TestTagLen(t *testing.T) {
	assert.Equal(t, 2, derivation.TagLen('0'))
	assert.Equal(t, 4, derivation.TagLen('1'))
	assert.Equal(t, 1, derivation.TagLen('D'))
	assert.Equal(t, 1, derivation.TagLen('-'))
}

func TestParseBasicCode(t *testing.T) {
	code, n, err := derivation.ParseBasicCode([]byte("DAAA"))
	require.NoError(t, err)
	assert.Equal(t, derivation.BasicEd25519, code)
	assert.Equal(t, 1, n)
	code, n, err = derivation.ParseBasicCode([]byte("1AACxyz"))
	require.NoError(t, err)
	assert.Equal(t, derivation.BasicEd448NT, code)
	assert.Equal(t, 4, n)
	assert.False(t, code.Transferable())
	assert.Equal(t, "Ed448NT", code.Name())
	// Short extended tag
	_, _, err = derivation.ParseBasicCode([]byte("1A"))
	var incErr common.IncompleteError
	require.True(t, errors.As(err, &incErr))
	assert.Equal(t, 2, incErr.Needed)
	// Digest code is not a basic code
	_, _, err = derivation.ParseBasicCode([]byte("EAAA"))
	assert.ErrorIs(t, err, common.ErrUnknownCode)
	_, _, err = derivation.ParseBasicCode(nil)
	assert.ErrorIs(t, err, common.ErrIncomplete)
}

func TestParseSelfAddressingCode(t *testing.T) {
	code, n, err := derivation.ParseSelfAddressingCode([]byte("0FAAAA"))
	require.NoError(t, err)
	assert.Equal(t, derivation.SelfAddressingBlake2B512, code)
	assert.Equal(t, 2, n)
	_, _, err = derivation.ParseSelfAddressingCode([]byte("0Z"))
	assert.ErrorIs(t, err, common.ErrUnknownCode)
	code, err = derivation.SelfAddressingCodeFromString("H")
	require.NoError(t, err)
	assert.Equal(t, derivation.SelfAddressingSHA3_256, code)
}

func TestParseSelfSigningCode(t *testing.T) {
	code, n, err := derivation.ParseSelfSigningCode([]byte("1AAEAAAA"))
	require.NoError(t, err)
	assert.Equal(t, derivation.SelfSigningEd448, code)
	assert.Equal(t, 4, n)
	_, err = derivation.SelfSigningCodeFromString("0Q")
	assert.ErrorIs(t, err, common.ErrUnknownCode)
}

func TestParseAttachedSignatureCode(t *testing.T) {
	testDefs := []struct {
		input  string
		code   derivation.AttachedSignatureCode
		index  uint16
		tagLen int
	}{
		{input: "AAAAA", code: derivation.AttachedEd25519Sha512, index: 0, tagLen: 2},
		{input: "ACAAA", code: derivation.AttachedEd25519Sha512, index: 2, tagLen: 2},
		{input: "BGAAA", code: derivation.AttachedECDSAsecp256k1Sha256, index: 6, tagLen: 2},
		{input: "0AAEA", code: derivation.AttachedEd448, index: 4, tagLen: 4},
		{input: "0AADA", code: derivation.AttachedEd448, index: 3, tagLen: 4},
	}
	for _, testDef := range testDefs {
		code, index, tagLen, err := derivation.ParseAttachedSignatureCode([]byte(testDef.input))
		require.NoError(t, err, "input %q", testDef.input)
		assert.Equal(t, testDef.code, code)
		assert.Equal(t, testDef.index, index)
		assert.Equal(t, testDef.tagLen, tagLen)
	}
	_, _, _, err := derivation.ParseAttachedSignatureCode([]byte("0B"))
	assert.ErrorIs(t, err, common.ErrUnknownCode)
	_, _, _, err = derivation.ParseAttachedSignatureCode([]byte("D"))
	assert.ErrorIs(t, err, common.ErrUnknownCode)
	_, _, _, err = derivation.ParseAttachedSignatureCode([]byte("0AA"))
	assert.ErrorIs(t, err, common.ErrIncomplete)
	// Index fields that do not re-encode to the same tag
	for _, input := range []string{"A_", "0AA_", "0ABA"} {
		_, _, _, err = derivation.ParseAttachedSignatureCode([]byte(input))
		assert.ErrorIs(t, err, common.ErrFraming, "input %q", input)
	}
}

func TestAttachedSignatureTag(t *testing.T) {
	tag, err := derivation.AttachedEd25519Sha512.Tag(0)
	require.NoError(t, err)
	assert.Equal(t, "AA", tag)
	tag, err = derivation.AttachedEd25519Sha512.Tag(27)
	require.NoError(t, err)
	assert.Equal(t, "Ab", tag)
	tag, err = derivation.AttachedECDSAsecp256k1Sha256.Tag(6)
	require.NoError(t, err)
	assert.Equal(t, "BG", tag)
	tag, err = derivation.AttachedEd448.Tag(4)
	require.NoError(t, err)
	assert.Equal(t, "0AAE", tag)
	// The two character tier does not unpack to the same value
	_, err = derivation.AttachedEd25519Sha512.Tag(64)
	assert.ErrorIs(t, err, common.ErrFraming)
	_, err = derivation.AttachedEd448.Tag(64)
	assert.ErrorIs(t, err, common.ErrFraming)
	for index := range uint16(63) {
		tag, err := derivation.AttachedEd448.Tag(index)
		require.NoError(t, err)
		code, parsed, _, err := derivation.ParseAttachedSignatureCode([]byte(tag))
		require.NoError(t, err)
		assert.Equal(t, derivation.AttachedEd448, code)
		assert.Equal(t, index, parsed)
	}
}

func TestAttachedSignatureCodeFor(t *testing.T) {
	code, err := derivation.AttachedSignatureCodeFor(derivation.SelfSigningEd448)
	require.NoError(t, err)
	assert.Equal(t, derivation.AttachedEd448, code)
	assert.Equal(t, derivation.SelfSigningEd448, code.SelfSigning())
	assert.Equal(t, 2, code.IndexWidth())
}
