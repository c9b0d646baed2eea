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

package derivation

// BasicCode identifies the key algorithm of a basic (public key) prefix
type BasicCode uint8

const (
	BasicEd25519NT BasicCode = iota + 1
	BasicX25519
	BasicEd25519
	BasicX448
	BasicECDSAsecp256k1NT
	BasicECDSAsecp256k1
	BasicEd448NT
	BasicEd448
)

var basicTable = newCodeTable("basic", map[BasicCode]codeInfo{
	BasicEd25519NT:        {tag: "B", name: "Ed25519NT", derivativeLen: 43},
	BasicX25519:           {tag: "C", name: "X25519", derivativeLen: 43},
	BasicEd25519:          {tag: "D", name: "Ed25519", derivativeLen: 43},
	BasicX448:             {tag: "L", name: "X448", derivativeLen: 75},
	BasicECDSAsecp256k1NT: {tag: "1AAA", name: "ECDSAsecp256k1NT", derivativeLen: 44},
	BasicECDSAsecp256k1:   {tag: "1AAB", name: "ECDSAsecp256k1", derivativeLen: 44},
	BasicEd448NT:          {tag: "1AAC", name: "Ed448NT", derivativeLen: 76},
	BasicEd448:            {tag: "1AAD", name: "Ed448", derivativeLen: 76},
})

func (c BasicCode) CodeLen() int       { return len(basicTable.info(c).tag) }
func (c BasicCode) DerivativeLen() int { return basicTable.info(c).derivativeLen }
func (c BasicCode) String() string     { return basicTable.info(c).tag }
func (c BasicCode) Name() string       { return basicTable.info(c).name }

// Transferable reports whether keys with this code may be rotated
func (c BasicCode) Transferable() bool {
	switch c {
	case BasicEd25519NT, BasicECDSAsecp256k1NT, BasicEd448NT:
		return false
	default:
		return true
	}
}

// ParseBasicCode reads a basic code tag from the front of data
func ParseBasicCode(data []byte) (BasicCode, int, error) {
	return basicTable.parse(data)
}

// BasicCodeFromString looks up a basic code by its tag
func BasicCodeFromString(tag string) (BasicCode, error) {
	return basicTable.fromString(tag)
}

// SelfAddressingCode identifies the digest algorithm of a self-addressing prefix
type SelfAddressingCode uint8

const (
	SelfAddressingBlake3_256 SelfAddressingCode = iota + 1
	SelfAddressingBlake2B256
	SelfAddressingBlake2S256
	SelfAddressingSHA3_256
	SelfAddressingSHA2_256
	SelfAddressingBlake3_512
	SelfAddressingSHA3_512
	SelfAddressingBlake2B512
	SelfAddressingSHA2_512
)

var selfAddressingTable = newCodeTable("self-addressing", map[SelfAddressingCode]codeInfo{
	SelfAddressingBlake3_256: {tag: "E", name: "Blake3_256", derivativeLen: 43},
	SelfAddressingBlake2B256: {tag: "F", name: "Blake2B256", derivativeLen: 43},
	SelfAddressingBlake2S256: {tag: "G", name: "Blake2S256", derivativeLen: 43},
	SelfAddressingSHA3_256:   {tag: "H", name: "SHA3_256", derivativeLen: 43},
	SelfAddressingSHA2_256:   {tag: "I", name: "SHA2_256", derivativeLen: 43},
	SelfAddressingBlake3_512: {tag: "0D", name: "Blake3_512", derivativeLen: 86},
	SelfAddressingSHA3_512:   {tag: "0E", name: "SHA3_512", derivativeLen: 86},
	SelfAddressingBlake2B512: {tag: "0F", name: "Blake2B512", derivativeLen: 86},
	SelfAddressingSHA2_512:   {tag: "0G", name: "SHA2_512", derivativeLen: 86},
})

func (c SelfAddressingCode) CodeLen() int       { return len(selfAddressingTable.info(c).tag) }
func (c SelfAddressingCode) DerivativeLen() int { return selfAddressingTable.info(c).derivativeLen }
func (c SelfAddressingCode) String() string     { return selfAddressingTable.info(c).tag }
func (c SelfAddressingCode) Name() string       { return selfAddressingTable.info(c).name }

// ParseSelfAddressingCode reads a self-addressing code tag from the front of data
func ParseSelfAddressingCode(data []byte) (SelfAddressingCode, int, error) {
	return selfAddressingTable.parse(data)
}

// SelfAddressingCodeFromString looks up a self-addressing code by its tag
func SelfAddressingCodeFromString(tag string) (SelfAddressingCode, error) {
	return selfAddressingTable.fromString(tag)
}

// SelfSigningCode identifies the signature algorithm of a self-signing prefix
type SelfSigningCode uint8

const (
	SelfSigningEd25519Sha512 SelfSigningCode = iota + 1
	SelfSigningECDSAsecp256k1Sha256
	SelfSigningEd448
)

var selfSigningTable = newCodeTable("self-signing", map[SelfSigningCode]codeInfo{
	SelfSigningEd25519Sha512:        {tag: "0B", name: "Ed25519Sha512", derivativeLen: 86},
	SelfSigningECDSAsecp256k1Sha256: {tag: "0C", name: "ECDSAsecp256k1Sha256", derivativeLen: 86},
	SelfSigningEd448:                {tag: "1AAE", name: "Ed448", derivativeLen: 152},
})

func (c SelfSigningCode) CodeLen() int       { return len(selfSigningTable.info(c).tag) }
func (c SelfSigningCode) DerivativeLen() int { return selfSigningTable.info(c).derivativeLen }
func (c SelfSigningCode) String() string     { return selfSigningTable.info(c).tag }
func (c SelfSigningCode) Name() string       { return selfSigningTable.info(c).name }

// ParseSelfSigningCode reads a self-signing code tag from the front of data
func ParseSelfSigningCode(data []byte) (SelfSigningCode, int, error) {
	return selfSigningTable.parse(data)
}

// SelfSigningCodeFromString looks up a self-signing code by its tag
func SelfSigningCodeFromString(tag string) (SelfSigningCode, error) {
	return selfSigningTable.fromString(tag)
}

// SerialNumberCode identifies a fixed width serial number
type SerialNumberCode uint8

const (
	SerialNumberSalt128 SerialNumberCode = iota + 1
)

var serialNumberTable = newCodeTable("serial number", map[SerialNumberCode]codeInfo{
	SerialNumberSalt128: {tag: "0A", name: "Salt128", derivativeLen: 22},
})

func (c SerialNumberCode) CodeLen() int       { return len(serialNumberTable.info(c).tag) }
func (c SerialNumberCode) DerivativeLen() int { return serialNumberTable.info(c).derivativeLen }
func (c SerialNumberCode) String() string     { return serialNumberTable.info(c).tag }

// ParseSerialNumberCode reads a serial number code tag from the front of data
func ParseSerialNumberCode(data []byte) (SerialNumberCode, int, error) {
	return serialNumberTable.parse(data)
}

// TimestampCode identifies a fixed width timestamp
type TimestampCode uint8

const (
	TimestampDateTime TimestampCode = iota + 1
)

var timestampTable = newCodeTable("timestamp", map[TimestampCode]codeInfo{
	TimestampDateTime: {tag: "1AAG", name: "DateTime", derivativeLen: 32},
})

func (c TimestampCode) CodeLen() int       { return len(timestampTable.info(c).tag) }
func (c TimestampCode) DerivativeLen() int { return timestampTable.info(c).derivativeLen }
func (c TimestampCode) String() string     { return timestampTable.info(c).tag }

// ParseTimestampCode reads a timestamp code tag from the front of data
func ParseTimestampCode(data []byte) (TimestampCode, int, error) {
	return timestampTable.parse(data)
}
