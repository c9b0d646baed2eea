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

// Package stream decodes CESR messages incrementally from an io.Reader.
package stream

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	cesr "github.com/blinklabs-io/gocesr"
	"github.com/blinklabs-io/gocesr/common"
)

// Reader reads a CESR stream from a source and delivers each decoded message
// on its message channel. Partial messages are buffered until the rest arrives
type Reader struct {
	source      io.Reader
	config      ReaderConfig
	logger      *slog.Logger
	parser      *cesr.Parser
	metrics     *Metrics
	messageChan chan cesr.Message
	errorChan   chan error
	doneChan    chan struct{}
	startOnce   sync.Once
	stopOnce    sync.Once
}

// NewReader returns a reader for source with the given options applied over the defaults
func NewReader(source io.Reader, opts ...ReaderOptionFunc) *Reader {
	r := &Reader{
		source: source,
		config: DefaultReaderConfig(),
	}
	for _, opt := range opts {
		opt(&r.config)
	}
	if r.config.ReadSize <= 0 {
		r.config.ReadSize = DefaultReadSize
	}
	if r.config.MaxBufferSize <= 0 {
		r.config.MaxBufferSize = DefaultMaxBufferSize
	}
	if r.config.MessageQueueSize < 0 {
		r.config.MessageQueueSize = DefaultMessageQueueSize
	}
	logger := r.config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r.logger = logger.With("component", "cesr")
	r.parser = r.config.Parser
	if r.parser == nil {
		r.parser = cesr.NewParser(cesr.WithLogger(logger))
	}
	r.metrics = NewMetrics(r.config.Registerer, r.logger)
	r.messageChan = make(chan cesr.Message, r.config.MessageQueueSize)
	// The read loop sends at most one error
	r.errorChan = make(chan error, 1)
	r.doneChan = make(chan struct{})
	return r
}

// Start launches the read loop. Calling it more than once has no effect
func (r *Reader) Start() {
	r.startOnce.Do(func() {
		go r.readLoop()
	})
}

// Stop signals the read loop to exit. A read that is already blocked on the
// source is not interrupted, so closing the source may also be needed
func (r *Reader) Stop() {
	r.stopOnce.Do(func() {
		close(r.doneChan)
	})
}

// MessageChan returns the channel that decoded messages are delivered on.
// It is closed when the read loop exits
func (r *Reader) MessageChan() <-chan cesr.Message {
	return r.messageChan
}

// ErrorChan returns the channel that a fatal error is delivered on. It is
// closed when the read loop exits, without an error on a clean end of stream
func (r *Reader) ErrorChan() <-chan error {
	return r.errorChan
}

// Stats returns a snapshot of the reader metrics
func (r *Reader) Stats() Stats {
	return r.metrics.Stats()
}

func (r *Reader) stopping() bool {
	select {
	case <-r.doneChan:
		return true
	default:
		return false
	}
}

func (r *Reader) sendError(err error) {
	r.metrics.RecordError()
	r.logger.Error(
		"stream decode failed",
		"error",
		err,
	)
	r.errorChan <- err
}

func (r *Reader) readLoop() {
	defer func() {
		close(r.errorChan)
		close(r.messageChan)
	}()
	var buf []byte
	// tailErr is the error that stopped the last decode of the buffered tail
	var tailErr error
	// The tail is not decoded again until the buffer reaches this length
	waitLen := 0
	// Set when bytes were buffered without decoding the tail
	pending := false
	chunk := make([]byte, r.config.ReadSize)
	for {
		// Break out of read loop if we're shutting down
		if r.stopping() {
			return
		}
		n, readErr := r.source.Read(chunk)
		if n > 0 {
			r.metrics.RecordRead(n)
			buf = append(buf, chunk[:n]...)
			if len(buf) >= waitLen {
				rest, ok, err := r.decodeBuffer(buf, n)
				if !ok {
					return
				}
				if err := r.checkTail(rest, err); err != nil {
					r.sendError(err)
					return
				}
				// Move the undecoded tail to the front of the buffer
				buf = append(buf[:0], rest...)
				tailErr = err
				waitLen = len(buf) + neededBytes(err)
				pending = false
			} else {
				if len(buf) > r.config.MaxBufferSize {
					r.sendError(r.bufferLimitError(len(buf)))
					return
				}
				pending = true
			}
		}
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				r.sendError(fmt.Errorf("read stream: %w", readErr))
				return
			}
			if pending {
				rest, ok, err := r.decodeBuffer(buf, 0)
				if !ok {
					return
				}
				buf = rest
				tailErr = err
			}
			if len(buf) > 0 {
				r.sendError(
					fmt.Errorf(
						"stream ended with %d undecoded bytes: %w",
						len(buf),
						tailErr,
					),
				)
			}
			return
		}
	}
}

// decodeBuffer decodes the messages at the front of buf and delivers them.
// It returns the undecoded tail, false when the reader was stopped during
// delivery, and the error that stopped decoding
func (r *Reader) decodeBuffer(buf []byte, n int) ([]byte, bool, error) {
	msgs, rest, err := r.parser.DecodeMessages(buf)
	r.logger.Debug(
		"decoded chunk",
		"bytes",
		n,
		"messages",
		len(msgs),
		"buffered",
		len(rest),
		"error",
		err,
	)
	for _, msg := range msgs {
		r.metrics.RecordMessage(msg)
		select {
		case r.messageChan <- msg:
		case <-r.doneChan:
			return nil, false, nil
		}
	}
	return rest, true, err
}

// checkTail decides whether the undecoded tail can still become a message.
// Shortfalls inside a fully received frame body cannot be completed by more input
func (r *Reader) checkTail(rest []byte, err error) error {
	if len(rest) == 0 {
		return nil
	}
	if !common.IsRecoverable(err) {
		return err
	}
	if len(rest) > r.config.MaxBufferSize {
		return r.bufferLimitError(len(rest))
	}
	return nil
}

func (r *Reader) bufferLimitError(buffered int) error {
	return common.NewFramingError(
		"buffered %d bytes without completing a message, limit is %d",
		buffered,
		r.config.MaxBufferSize,
	)
}

// neededBytes returns the known number of bytes missing from the tail
func neededBytes(err error) int {
	var incErr common.IncompleteError
	if errors.As(err, &incErr) && incErr.Needed > 0 {
		return incErr.Needed
	}
	return 0
}
