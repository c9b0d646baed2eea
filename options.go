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
	"log/slog"

	"github.com/blinklabs-io/gocesr/group"
)

// ParserConfig holds the parser settings
type ParserConfig struct {
	Logger *slog.Logger
	// MaxDepth limits how many frames may be nested inside each other
	MaxDepth int
	// Binary enables decoding of binary domain groups
	Binary bool
}

// DefaultParserConfig returns the default parser settings
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		MaxDepth: group.DefaultMaxDepth,
		Binary:   true,
	}
}

// ParserOptionFunc is a type that represents functions that modify the parser config
type ParserOptionFunc func(*ParserConfig)

// WithLogger specifies the logger to use. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) ParserOptionFunc {
	return func(c *ParserConfig) {
		c.Logger = logger
	}
}

// WithMaxDepth specifies how many frames may be nested inside each other
func WithMaxDepth(maxDepth int) ParserOptionFunc {
	return func(c *ParserConfig) {
		c.MaxDepth = maxDepth
	}
}

// WithBinary specifies whether binary domain groups are decoded. When
// disabled they are rejected as not implemented
func WithBinary(binary bool) ParserOptionFunc {
	return func(c *ParserConfig) {
		c.Binary = binary
	}
}
