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

package group_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/blinklabs-io/gocesr/common"
	"github.com/blinklabs-io/gocesr/counter"
	"github.com/blinklabs-io/gocesr/derivation"
	"github.com/blinklabs-io/gocesr/group"
	"github.com/blinklabs-io/gocesr/internal/test"
	"github.com/blinklabs-io/gocesr/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zeroSig(index uint16) primitive.AttachedSignature {
	return primitive.AttachedSignature{
		Index: index,
		Signature: primitive.SelfSigning{
			Code:      derivation.SelfSigningEd25519Sha512,
			Signature: make([]byte, 64),
		},
	}
}

func mustSelfAddressing(t *testing.T, s string) primitive.SelfAddressing {
	t.Helper()
	ret, err := primitive.ParseSelfAddressing(s)
	require.NoError(t, err)
	return ret
}

func TestControllerIdxSigsVector(t *testing.T) {
	g, rest, err := group.Decode([]byte(test.ControllerSigs))
	require.NoError(t, err)
	assert.Empty(t, rest)
	sigs, ok := g.(*group.ControllerIdxSigs)
	require.True(t, ok)
	require.Len(t, sigs.Signatures, 1)
	assert.Equal(t, zeroSig(0), sigs.Signatures[0])
	out, err := group.Encode(g)
	require.NoError(t, err)
	assert.Equal(t, test.ControllerSigs, string(out))
}

func TestControllerIdxSigsMixedVector(t *testing.T) {
	g, rest, err := group.Decode([]byte(test.ControllerSigsMixed + "extra data"))
	require.NoError(t, err)
	assert.Equal(t, "extra data", string(rest))
	expected := &group.ControllerIdxSigs{
		Signatures: []primitive.AttachedSignature{
			zeroSig(0),
			{
				Index: 2,
				Signature: primitive.SelfSigning{
					Code:      derivation.SelfSigningEd448,
					Signature: make([]byte, 114),
				},
			},
		},
	}
	assert.Equal(t, expected, g)
}

func TestSealSourceCouplesVector(t *testing.T) {
	g, err := group.DecodeExact([]byte(test.SealSourceCouples))
	require.NoError(t, err)
	couples, ok := g.(*group.SealSourceCouples)
	require.True(t, ok)
	require.Len(t, couples.Couples, 2)
	for _, couple := range couples.Couples {
		assert.Equal(t, primitive.SerialNumber(1), couple.SerialNumber)
		assert.Equal(t, derivation.SelfAddressingBlake3_256, couple.Digest.Code)
	}
	out, err := group.Encode(g)
	require.NoError(t, err)
	assert.Equal(t, test.SealSourceCouples, string(out))
}

func TestNonTransReceiptCouplesVector(t *testing.T) {
	g, err := group.DecodeExact([]byte(test.NonTransReceiptCouples))
	require.NoError(t, err)
	couples, ok := g.(*group.NonTransReceiptCouples)
	require.True(t, ok)
	require.Len(t, couples.Couples, 1)
	assert.Equal(t, derivation.BasicEd25519NT, couples.Couples[0].Prefix.Code)
	assert.Equal(t, derivation.SelfSigningEd25519Sha512, couples.Couples[0].Signature.Code)
	out, err := group.Encode(g)
	require.NoError(t, err)
	assert.Equal(t, test.NonTransReceiptCouples, string(out))
}

func TestTransIdxSigGroupsVector(t *testing.T) {
	g, err := group.DecodeExact([]byte(test.TransIdxSigGroups))
	require.NoError(t, err)
	sigGroups, ok := g.(*group.TransIdxSigGroups)
	require.True(t, ok)
	require.Len(t, sigGroups.Groups, 1)
	sigGroup := sigGroups.Groups[0]
	assert.IsType(t, primitive.SelfAddressing{}, sigGroup.Prefix)
	assert.Equal(t, primitive.SerialNumber(0), sigGroup.SerialNumber)
	assert.Equal(t, []primitive.AttachedSignature{zeroSig(0)}, sigGroup.Signatures)
	out, err := group.Encode(g)
	require.NoError(t, err)
	assert.Equal(t, test.TransIdxSigGroups, string(out))
}

func TestFrameVector(t *testing.T) {
	g, err := group.DecodeExact([]byte(test.Frame))
	require.NoError(t, err)
	frame, ok := g.(*group.Frame)
	require.True(t, ok)
	require.Len(t, frame.Groups, 1)
	lastGroups, ok := frame.Groups[0].(*group.TransLastIdxSigGroups)
	require.True(t, ok)
	require.Len(t, lastGroups.Groups, 1)
	assert.Len(t, lastGroups.Groups[0].Signatures, 1)
	count, err := group.Count(g)
	require.NoError(t, err)
	assert.Equal(t, 35, count)
	out, err := group.Encode(g)
	require.NoError(t, err)
	assert.Equal(t, test.Frame, string(out))
}

func TestFrameLengthMismatch(t *testing.T) {
	body := test.Frame[counter.HeaderLen:]
	// Declared length runs past the available data
	_, _, err := group.Decode([]byte("-VAk" + body))
	var incErr common.IncompleteError
	require.True(t, errors.As(err, &incErr))
	assert.Equal(t, 4, incErr.Needed)
	assert.False(t, incErr.Bounded)
	assert.True(t, common.IsRecoverable(err))
	// Declared length cuts the last signature short
	_, _, err = group.Decode([]byte("-VAi" + body))
	require.True(t, errors.As(err, &incErr))
	assert.Equal(t, 4, incErr.Needed)
	assert.True(t, incErr.Bounded)
	assert.ErrorIs(t, err, common.ErrFraming)
	assert.False(t, common.IsRecoverable(err))
}

func TestFrameBodyNotAGroup(t *testing.T) {
	body := test.Frame[counter.HeaderLen:]
	// Declared length covers four bytes that do not start a group
	data := []byte("-VAk" + body + "AAAA")
	_, rest, err := group.Decode(data)
	assert.Equal(t, data, rest)
	var incErr common.IncompleteError
	require.True(t, errors.As(err, &incErr), "unexpected error: %v", err)
	assert.Equal(t, 4, incErr.Needed)
	assert.True(t, incErr.Bounded)
	assert.ErrorIs(t, err, common.ErrIncomplete)
	assert.ErrorIs(t, err, common.ErrFraming)
	// The same frame in the binary domain reports the shortfall in bytes
	_, _, err = group.DecodeBinary(test.TextToBinary(string(data)))
	require.True(t, errors.As(err, &incErr), "unexpected error: %v", err)
	assert.Equal(t, 3, incErr.Needed)
	assert.True(t, incErr.Bounded)
	// A shortfall in a nested frame is reported by the outer frame
	nested := []byte("-VAl-VAk" + body + "AAAA")
	_, _, err = group.Decode(nested)
	require.True(t, errors.As(err, &incErr), "unexpected error: %v", err)
	assert.Equal(t, 4, incErr.Needed)
	assert.True(t, incErr.Bounded)
}

func TestFrameDepthLimit(t *testing.T) {
	inner := &group.ControllerIdxSigs{
		Signatures: []primitive.AttachedSignature{zeroSig(1)},
	}
	nested := &group.Frame{Groups: []group.Group{
		&group.Frame{Groups: []group.Group{
			&group.Frame{Groups: []group.Group{inner}},
		}},
	}}
	data, err := group.Encode(nested)
	require.NoError(t, err)
	decoded, err := group.DecodeExact(data)
	require.NoError(t, err)
	assert.Equal(t, nested, decoded)
	_, _, err = group.NewDecoder(group.WithMaxDepth(2)).Decode(data)
	assert.ErrorIs(t, err, group.ErrMaxDepthExceeded)
	_, _, err = group.NewDecoder(group.WithMaxDepth(3)).Decode(data)
	assert.NoError(t, err)
}

func TestRoundTrip(t *testing.T) {
	digest := mustSelfAddressing(t, test.SelfAddressing)
	basic, err := primitive.NewBasic(derivation.BasicEd25519, bytes.Repeat([]byte{0x11}, 32))
	require.NoError(t, err)
	sig, err := primitive.NewSelfSigning(
		derivation.SelfSigningECDSAsecp256k1Sha256,
		bytes.Repeat([]byte{0x22}, 64),
	)
	require.NoError(t, err)
	ed448Sig, err := primitive.NewAttachedSignature(
		derivation.SelfSigningEd448,
		5,
		bytes.Repeat([]byte{0x33}, 114),
	)
	require.NoError(t, err)
	ts := primitive.NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 678000, time.UTC))
	testDefs := []group.Group{
		&group.ControllerIdxSigs{
			Signatures: []primitive.AttachedSignature{zeroSig(0), ed448Sig},
		},
		&group.WitnessIdxSigs{
			Signatures: []primitive.AttachedSignature{zeroSig(3), zeroSig(62)},
		},
		&group.NonTransReceiptCouples{
			Couples: []group.NonTransReceiptCouple{{Prefix: basic, Signature: sig}},
		},
		&group.TransReceiptQuadruples{
			Quadruples: []group.TransReceiptQuadruple{
				{Prefix: digest, SerialNumber: 7, Digest: digest, Signature: ed448Sig},
				{Prefix: basic, SerialNumber: 8, Digest: digest, Signature: zeroSig(1)},
			},
		},
		&group.FirstSeenReplayCouples{
			Couples: []group.FirstSeenReplayCouple{{FirstSeen: 42, Timestamp: ts}},
		},
		&group.TransIdxSigGroups{
			Groups: []group.TransIdxSigGroup{
				{
					Prefix:       basic,
					SerialNumber: 1,
					Digest:       digest,
					Signatures:   []primitive.AttachedSignature{zeroSig(0), zeroSig(1)},
				},
			},
		},
		&group.SealSourceCouples{
			Couples: []group.SealSourceCouple{{SerialNumber: 9, Digest: digest}},
		},
		&group.TransLastIdxSigGroups{
			Groups: []group.TransLastIdxSigGroup{
				{Prefix: digest, Signatures: []primitive.AttachedSignature{ed448Sig}},
			},
		},
		&group.SealSourceTriples{
			Triples: []group.SealSourceTriple{
				{Prefix: digest, SerialNumber: 2, Digest: digest},
				{Prefix: basic, SerialNumber: 3, Digest: digest},
			},
		},
	}
	// Nest everything in a frame as well
	frame := &group.Frame{Groups: append([]group.Group{}, testDefs...)}
	testDefs = append(testDefs, frame, &group.Frame{Groups: []group.Group{frame}})
	for _, g := range testDefs {
		data, err := group.Encode(g)
		require.NoError(t, err, "group %s", g.Code().Name())
		decoded, err := group.DecodeExact(data)
		require.NoError(t, err, "group %s", g.Code().Name())
		if fsr, ok := g.(*group.FirstSeenReplayCouples); ok {
			decodedFsr, ok := decoded.(*group.FirstSeenReplayCouples)
			require.True(t, ok)
			require.Len(t, decodedFsr.Couples, 1)
			assert.True(t, fsr.Couples[0].Timestamp.Equal(decodedFsr.Couples[0].Timestamp))
		}
		// Nested frames compare structurally once their timestamps share a location
		utcTimestamps(decoded)
		assert.Equal(t, g, decoded, "group %s", g.Code().Name())
		reencoded, err := group.Encode(decoded)
		require.NoError(t, err)
		assert.Equal(t, data, reencoded, "group %s", g.Code().Name())
		// The binary domain carries the same group
		bin, err := group.EncodeBinary(g)
		require.NoError(t, err)
		fromBin, rest, err := group.DecodeBinary(bin)
		require.NoError(t, err)
		assert.Empty(t, rest)
		binText, err := group.Encode(fromBin)
		require.NoError(t, err)
		assert.Equal(t, data, binText)
		utcTimestamps(fromBin)
		assert.Equal(t, g, fromBin, "group %s", g.Code().Name())
	}
}

// utcTimestamps moves the timestamps of a decoded group to UTC, which parsing
// may have recorded in the local zone
func utcTimestamps(g group.Group) {
	switch v := g.(type) {
	case *group.FirstSeenReplayCouples:
		for idx := range v.Couples {
			v.Couples[idx].Timestamp.Time = v.Couples[idx].Timestamp.Time.UTC()
		}
	case *group.Frame:
		for _, child := range v.Groups {
			utcTimestamps(child)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	_, _, err := group.Decode([]byte("-ZAB"))
	assert.ErrorIs(t, err, common.ErrUnknownCode)
	for _, code := range []string{"-JAB", "-KAB", "-LAB"} {
		_, _, err = group.Decode([]byte(code))
		assert.ErrorIs(t, err, common.ErrNotImplemented, "code %s", code)
	}
	_, _, err = group.Decode([]byte("-0VAAAAB"))
	assert.ErrorIs(t, err, common.ErrNotImplemented)
	// Nested list with the wrong count code
	bad := "-HAB" + test.SelfAddressing + "-BAB" + test.ZeroSignature('A')
	_, _, err = group.Decode([]byte(bad))
	assert.ErrorIs(t, err, common.ErrFraming)
	// Truncated element
	truncated := test.ControllerSigs[:len(test.ControllerSigs)-10]
	g, rest, err := group.Decode([]byte(truncated))
	assert.Nil(t, g)
	assert.Equal(t, truncated, string(rest))
	var incErr common.IncompleteError
	require.True(t, errors.As(err, &incErr))
	assert.Equal(t, 10, incErr.Needed)
	// Trailing data on the exact entry point
	_, err = group.DecodeExact([]byte(test.ControllerSigs + "AAAA"))
	assert.ErrorIs(t, err, common.ErrTrailingData)
}

func TestEncodeErrors(t *testing.T) {
	// Empty primitives cannot be framed
	_, err := group.Encode(&group.ControllerIdxSigs{
		Signatures: []primitive.AttachedSignature{{Index: 0}},
	})
	assert.ErrorIs(t, err, common.ErrFraming)
	// Missing identifier
	_, err = group.Encode(&group.SealSourceTriples{
		Triples: []group.SealSourceTriple{
			{SerialNumber: 1, Digest: mustSelfAddressing(t, test.SelfAddressing)},
		},
	})
	assert.ErrorIs(t, err, common.ErrFraming)
	// Too many elements for the counter
	sigs := make([]primitive.AttachedSignature, counter.MaxCount+1)
	for i := range sigs {
		sigs[i] = zeroSig(0)
	}
	_, err = group.Encode(&group.WitnessIdxSigs{Signatures: sigs})
	assert.ErrorIs(t, err, common.ErrFraming)
	_, err = group.Encode(nil)
	assert.ErrorIs(t, err, common.ErrFraming)
}

func TestBinaryVectors(t *testing.T) {
	vectors := []string{
		test.ControllerSigs,
		test.ControllerSigsMixed,
		test.SealSourceCouples,
		test.NonTransReceiptCouples,
		test.TransIdxSigGroups,
		test.Frame,
	}
	decoder := group.NewDecoder(group.WithBinaryWindow(3))
	for _, vector := range vectors {
		bin := test.TextToBinary(vector)
		// Trailing binary data stays untouched
		input := append(bytes.Clone(bin), 0x7b, 0x7d)
		g, rest, err := decoder.DecodeBinary(input)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x7b, 0x7d}, rest)
		out, err := group.EncodeBinary(g)
		require.NoError(t, err)
		assert.Equal(t, bin, out)
	}
}

func TestBinaryIncomplete(t *testing.T) {
	bin := test.TextToBinary(test.ControllerSigs)
	_, rest, err := group.DecodeBinary(bin[:len(bin)-3])
	assert.Len(t, rest, len(bin)-3)
	var incErr common.IncompleteError
	require.True(t, errors.As(err, &incErr))
	assert.Equal(t, 3, incErr.Needed)
	_, _, err = group.DecodeBinary(nil)
	require.True(t, errors.As(err, &incErr))
	assert.Equal(t, 3, incErr.Needed)
}

func TestArityOf(t *testing.T) {
	testDefs := map[counter.Code]group.Arity{
		counter.ControllerIdxSigs:      group.ArityList,
		counter.SealSourceCouples:      group.ArityCouple,
		counter.SealSourceTriples:      group.ArityTriple,
		counter.TransReceiptQuadruples: group.ArityQuadruple,
		counter.TransLastIdxSigGroups:  group.ArityCoupleWithList,
		counter.TransIdxSigGroups:      group.ArityQuadrupleWithList,
		counter.Frame:                  group.ArityFrame,
	}
	for code, expected := range testDefs {
		arity, ok := group.ArityOf(code)
		require.True(t, ok, "code %s", code)
		assert.Equal(t, expected, arity)
	}
	_, ok := group.ArityOf(counter.SadPathSig)
	assert.False(t, ok)
	assert.Equal(t, "couple-with-list", group.ArityCoupleWithList.String())
	assert.True(t, strings.HasPrefix(group.Arity(99).String(), "Arity("))
}
