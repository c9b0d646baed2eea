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

package counter_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/gocesr/common"
	"github.com/blinklabs-io/gocesr/counter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	testDefs := []struct {
		input string
		code  counter.Code
		count uint16
		rest  string
	}{
		{input: "-AAB", code: counter.ControllerIdxSigs, count: 1},
		{input: "-GACtail", code: counter.SealSourceCouples, count: 2, rest: "tail"},
		{input: "-VAj", code: counter.Frame, count: 35},
		{input: "-CBA", code: counter.NonTransReceiptCouples, count: 64},
		{input: "-Z__", code: counter.Code("-Z"), count: 4095},
	}
	for _, testDef := range testDefs {
		c, rest, err := counter.Decode([]byte(testDef.input))
		require.NoError(t, err, "input %q", testDef.input)
		assert.Equal(t, testDef.code, c.Code)
		assert.Equal(t, testDef.count, c.Count)
		assert.Equal(t, testDef.rest, string(rest))
	}
}

func TestDecodeErrors(t *testing.T) {
	_, _, err := counter.Decode([]byte("-A"))
	var incErr common.IncompleteError
	require.True(t, errors.As(err, &incErr))
	assert.Equal(t, 2, incErr.Needed)
	_, _, err = counter.Decode([]byte("AAAB"))
	assert.ErrorIs(t, err, common.ErrUnknownCode)
	_, _, err = counter.Decode([]byte("-A*B"))
	assert.ErrorIs(t, err, common.ErrEncoding)
	_, _, err = counter.Decode([]byte("-0VAAAAB"))
	assert.ErrorIs(t, err, common.ErrNotImplemented)
	_, _, err = counter.Decode(nil)
	assert.ErrorIs(t, err, common.ErrIncomplete)
}

func TestEncode(t *testing.T) {
	c, err := counter.New(counter.SealSourceCouples, 2)
	require.NoError(t, err)
	out, err := c.Encode([]byte("body"))
	require.NoError(t, err)
	assert.Equal(t, "-GACbody", string(out))
	assert.Equal(t, "-GAC", c.String())
	_, err = counter.New(counter.Frame, counter.MaxCount+1)
	assert.ErrorIs(t, err, common.ErrFraming)
	_, err = counter.Counter{Code: counter.AttachedMaterialQuadlets}.MarshalText()
	assert.ErrorIs(t, err, common.ErrUnknownCode)
}

func TestRoundTrip(t *testing.T) {
	for count := 0; count <= counter.MaxCount; count++ {
		c, err := counter.New(counter.WitnessIdxSigs, count)
		require.NoError(t, err)
		text, err := c.MarshalText()
		require.NoError(t, err)
		decoded, rest, err := counter.Decode(text)
		require.NoError(t, err)
		require.Empty(t, rest)
		require.Equal(t, c, decoded)
	}
}

func TestBinary(t *testing.T) {
	c := counter.Counter{Code: counter.ControllerIdxSigs, Count: 1}
	bin, err := c.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xf8, 0x00, 0x01}, bin)
	var decoded counter.Counter
	require.NoError(t, decoded.UnmarshalBinary(bin))
	assert.Equal(t, c, decoded)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "SealSourceTriples", counter.SealSourceTriples.Name())
	assert.True(t, counter.Frame.Known())
	assert.False(t, counter.Code("-Z").Known())
	assert.Equal(t, "Unknown(-Z)", counter.Code("-Z").Name())
}
