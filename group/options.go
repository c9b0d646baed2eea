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

package group

const (
	// DefaultMaxDepth is the default limit on nested frames
	DefaultMaxDepth = 32

	// DefaultBinaryWindow is the initial number of bytes converted to text
	// when decoding a binary domain group. It must be a multiple of 3
	DefaultBinaryWindow = 3 * 1024
)

// DecoderConfig holds the decoder settings
type DecoderConfig struct {
	MaxDepth     int
	BinaryWindow int
}

// DefaultDecoderConfig returns the default decoder settings
func DefaultDecoderConfig() DecoderConfig {
	return DecoderConfig{
		MaxDepth:     DefaultMaxDepth,
		BinaryWindow: DefaultBinaryWindow,
	}
}

// DecoderOptionFunc is a type that represents functions that modify the decoder config
type DecoderOptionFunc func(*DecoderConfig)

// WithMaxDepth specifies how many frames may be nested inside each other
func WithMaxDepth(maxDepth int) DecoderOptionFunc {
	return func(c *DecoderConfig) {
		c.MaxDepth = maxDepth
	}
}

// WithBinaryWindow specifies the initial conversion window for binary domain input
func WithBinaryWindow(size int) DecoderOptionFunc {
	return func(c *DecoderConfig) {
		c.BinaryWindow = size
	}
}
