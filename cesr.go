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

// Package cesr decodes and encodes CESR streams: concatenations of self framing
// groups of primitives, in the text or binary domain, interleaved with JSON,
// CBOR and MessagePack payloads.
//
// The first byte of each message selects how it is decoded. See Sniff for the
// cold start rules and Parser for decoding messages and message lists.
package cesr

// DecodeMessage reads one message from the front of data using the default
// parser settings and returns the remaining bytes
func DecodeMessage(data []byte) (Message, []byte, error) {
	return NewParser().DecodeMessage(data)
}

// DecodeMessageExact decodes exactly one message using the default parser
// settings, failing if any input remains
func DecodeMessageExact(data []byte) (Message, error) {
	return NewParser().DecodeMessageExact(data)
}

// DecodeMessageList decodes consecutive messages using the default parser
// settings until the input is exhausted or a message fails to decode, and
// returns the undecoded tail
func DecodeMessageList(data []byte) (MessageList, []byte) {
	return NewParser().DecodeMessageList(data)
}
