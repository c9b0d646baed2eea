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

package stream

import (
	"log/slog"

	cesr "github.com/blinklabs-io/gocesr"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// DefaultReadSize is the default number of bytes requested per read
	DefaultReadSize = 64 * 1024

	// DefaultMaxBufferSize is the default limit on undecoded bytes held while
	// waiting for the rest of a message
	DefaultMaxBufferSize = 16 * 1024 * 1024

	// DefaultMessageQueueSize is the default capacity of the message channel
	DefaultMessageQueueSize = 16
)

// ReaderConfig holds the stream reader settings
type ReaderConfig struct {
	Logger *slog.Logger
	// Parser decodes messages. If none is provided, one is created with the reader's logger
	Parser           *cesr.Parser
	ReadSize         int
	MaxBufferSize    int
	MessageQueueSize int
	// Registerer receives the reader metrics as prometheus counters when set
	Registerer prometheus.Registerer
}

// DefaultReaderConfig returns the default stream reader settings
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		ReadSize:         DefaultReadSize,
		MaxBufferSize:    DefaultMaxBufferSize,
		MessageQueueSize: DefaultMessageQueueSize,
	}
}

// ReaderOptionFunc is a type that represents functions that modify the reader config
type ReaderOptionFunc func(*ReaderConfig)

// WithLogger specifies the logger to use. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) ReaderOptionFunc {
	return func(c *ReaderConfig) {
		c.Logger = logger
	}
}

// WithParser specifies the parser used to decode messages
func WithParser(parser *cesr.Parser) ReaderOptionFunc {
	return func(c *ReaderConfig) {
		c.Parser = parser
	}
}

// WithReadSize specifies how many bytes are requested from the source per read
func WithReadSize(readSize int) ReaderOptionFunc {
	return func(c *ReaderConfig) {
		c.ReadSize = readSize
	}
}

// WithMaxBufferSize specifies how many undecoded bytes may be buffered while
// waiting for the rest of a message
func WithMaxBufferSize(maxBufferSize int) ReaderOptionFunc {
	return func(c *ReaderConfig) {
		c.MaxBufferSize = maxBufferSize
	}
}

// WithMessageQueueSize specifies the capacity of the message channel
func WithMessageQueueSize(size int) ReaderOptionFunc {
	return func(c *ReaderConfig) {
		c.MessageQueueSize = size
	}
}

// WithRegisterer specifies a prometheus registerer for the reader metrics
func WithRegisterer(reg prometheus.Registerer) ReaderOptionFunc {
	return func(c *ReaderConfig) {
		c.Registerer = reg
	}
}
