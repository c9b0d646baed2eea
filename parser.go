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
	"log/slog"

	"github.com/blinklabs-io/gocesr/common"
	"github.com/blinklabs-io/gocesr/group"
	"github.com/blinklabs-io/gocesr/payload"
)

// Parser decodes messages. It holds no mutable state and is safe for concurrent use
type Parser struct {
	config ParserConfig
	logger *slog.Logger
	groups *group.Decoder
}

// NewParser returns a parser with the given options applied over the defaults
func NewParser(opts ...ParserOptionFunc) *Parser {
	p := &Parser{
		config: DefaultParserConfig(),
	}
	for _, opt := range opts {
		opt(&p.config)
	}
	logger := p.config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	p.logger = logger.With("component", "cesr")
	p.groups = group.NewDecoder(
		group.WithMaxDepth(p.config.MaxDepth),
	)
	return p
}

// Config returns the parser settings
func (p *Parser) Config() ParserConfig {
	return p.config
}

// DecodeMessage reads one message from the front of data and returns the
// remaining bytes. On error the input is returned unchanged
func (p *Parser) DecodeMessage(data []byte) (Message, []byte, error) {
	if len(data) == 0 {
		return nil, data, common.IncompleteError{Needed: 1}
	}
	cold, err := Sniff(data[0])
	if err != nil {
		return nil, data, err
	}
	switch cold {
	case ColdCtB64, ColdOpB64:
		g, rest, err := p.groups.Decode(data)
		if err != nil {
			return nil, data, err
		}
		return &GroupMessage{Group: g, Domain: DomainText}, rest, nil
	case ColdCtOpB2:
		if !p.config.Binary {
			return nil, data, common.NotImplementedError{
				Feature: "binary domain CESR",
			}
		}
		g, rest, err := p.groups.DecodeBinary(data)
		if err != nil {
			return nil, data, err
		}
		return &GroupMessage{Group: g, Domain: DomainBinary}, rest, nil
	case ColdJSON:
		return p.decodeCustom(payload.FormatJSON, data)
	case ColdMGPK1, ColdMGPK2:
		return p.decodeCustom(payload.FormatMGPK, data)
	case ColdCBOR:
		return p.decodeCustom(payload.FormatCBOR, data)
	}
	// Unreachable: Sniff rejects everything else
	return nil, data, common.UnknownCodeError{Kind: "cold start", Code: cold.String()}
}

func (p *Parser) decodeCustom(format payload.Format, data []byte) (Message, []byte, error) {
	value, n, err := payload.Decode(format, data)
	if err != nil {
		return nil, data, err
	}
	msg := &CustomMessage{
		format: format,
		value:  value,
		raw:    bytes.Clone(data[:n]),
	}
	return msg, data[n:], nil
}

// DecodeMessageExact decodes exactly one message, failing if any input remains
func (p *Parser) DecodeMessageExact(data []byte) (Message, error) {
	msg, rest, err := p.DecodeMessage(data)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, common.TrailingDataError{Remaining: len(rest)}
	}
	return msg, nil
}

// DecodeMessageList decodes consecutive messages until the input is exhausted
// or a message fails to decode. The undecoded tail is returned as is so that
// a partially received message can be completed by later input
func (p *Parser) DecodeMessageList(data []byte) (MessageList, []byte) {
	ret, rest, err := p.DecodeMessages(data)
	if err != nil {
		p.logger.Debug(
			"message list decode stopped",
			"offset",
			len(data)-len(rest),
			"remaining",
			len(rest),
			"error",
			err,
		)
	}
	return ret, rest
}

// DecodeMessages works like DecodeMessageList and also returns the error that
// stopped decoding, which is nil when all input was consumed
func (p *Parser) DecodeMessages(data []byte) (MessageList, []byte, error) {
	var ret MessageList
	rest := data
	for len(rest) > 0 {
		msg, next, err := p.DecodeMessage(rest)
		if err != nil {
			return ret, rest, err
		}
		ret = append(ret, msg)
		rest = next
	}
	return ret, rest, nil
}
