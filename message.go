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

package cesr

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/blinklabs-io/gocesr/group"
	"github.com/blinklabs-io/gocesr/payload"
)

// Message is one element of a CESR stream: either a custom payload or a group
type Message interface {
	// Encode returns the bytes of the message as they appear in a stream
	Encode() ([]byte, error)
	isMessage()
}

// Domain identifies the representation a group was read from
type Domain uint8

const (
	DomainText Domain = iota
	DomainBinary
)

func (d Domain) String() string {
	switch d {
	case DomainText:
		return "text"
	case DomainBinary:
		return "binary"
	default:
		return fmt.Sprintf("Domain(%d)", uint8(d))
	}
}

// CustomMessage is a JSON, CBOR or MessagePack map embedded in the stream.
// The serialized bytes are the source of truth, so a decoded message is
// written back unchanged. Use SetValue to replace the payload
type CustomMessage struct {
	format payload.Format
	value  map[string]any
	raw    []byte
}

// NewCustomMessage serializes value in the given format. The value must
// serialize to a map
func NewCustomMessage(format payload.Format, value any) (*CustomMessage, error) {
	ret := &CustomMessage{format: format}
	if err := ret.SetValue(value); err != nil {
		return nil, err
	}
	return ret, nil
}

func (*CustomMessage) isMessage() {}

// Format returns the serialization format of the payload
func (m *CustomMessage) Format() payload.Format {
	return m.format
}

// Value returns the decoded payload. The map is shared with the message and
// must not be modified
func (m *CustomMessage) Value() map[string]any {
	return m.value
}

// SetValue serializes value in the message format and replaces the payload
func (m *CustomMessage) SetValue(value any) error {
	raw, err := payload.Encode(m.format, value)
	if err != nil {
		return err
	}
	decoded, n, err := payload.Decode(m.format, raw)
	if err != nil {
		return err
	}
	if n != len(raw) {
		return fmt.Errorf(
			"%s payload decoded %d of %d bytes",
			m.format,
			n,
			len(raw),
		)
	}
	m.value = decoded
	m.raw = raw
	return nil
}

// Raw returns the serialized payload
func (m *CustomMessage) Raw() []byte {
	return m.raw
}

// Encode returns the serialized payload
func (m *CustomMessage) Encode() ([]byte, error) {
	if m.raw == nil {
		return nil, errors.New("custom message has no payload")
	}
	return bytes.Clone(m.raw), nil
}

// Unmarshal decodes the payload into dest
func (m *CustomMessage) Unmarshal(dest any) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}
	return payload.Unmarshal(m.format, data, dest)
}

// GroupMessage is a CESR group at the top level of the stream
type GroupMessage struct {
	Group  group.Group
	Domain Domain
}

func (*GroupMessage) isMessage() {}

// Encode returns the group in the domain it was read from
func (m *GroupMessage) Encode() ([]byte, error) {
	if m.Domain == DomainBinary {
		return group.EncodeBinary(m.Group)
	}
	return group.Encode(m.Group)
}

// MessageList is an ordered sequence of messages
type MessageList []Message

// Encode concatenates the encoded messages
func (l MessageList) Encode() ([]byte, error) {
	var ret []byte
	for idx, msg := range l {
		if msg == nil {
			return nil, fmt.Errorf("message %d is nil", idx)
		}
		data, err := msg.Encode()
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", idx, err)
		}
		ret = append(ret, data...)
	}
	return ret, nil
}
