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

package common

import (
	"errors"
	"fmt"
)

// Sentinel errors so callers can use errors.Is without caring about the concrete type
var (
	ErrIncomplete     = errors.New("incomplete input")
	ErrUnknownCode    = errors.New("unknown code")
	ErrEncoding       = errors.New("encoding error")
	ErrFraming        = errors.New("framing error")
	ErrTrailingData   = errors.New("trailing data")
	ErrNotImplemented = errors.New("not implemented")
)

// IncompleteError indicates that the input ended before a complete value could be read.
// Needed is the number of additional bytes required, or 0 when the amount is unknown.
//
// Bounded is set when the shortfall lies inside a length delimited body that was
// received in full. More input cannot complete such a value, so a bounded error
// also matches ErrFraming
type IncompleteError struct {
	Needed  int
	Bounded bool
}

func (e IncompleteError) Error() string {
	if e.Bounded {
		return fmt.Sprintf(
			"incomplete input: declared body length is off by %d bytes",
			e.Needed,
		)
	}
	if e.Needed <= 0 {
		return "incomplete input: more data needed"
	}
	return fmt.Sprintf("incomplete input: need %d more bytes", e.Needed)
}

func (e IncompleteError) Is(target error) bool {
	if target == ErrIncomplete {
		return true
	}
	return e.Bounded && target == ErrFraming
}

// UnknownCodeError indicates a code tag that does not appear in the relevant table
type UnknownCodeError struct {
	Kind string
	Code string
}

func (e UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown %s code: %q", e.Kind, e.Code)
}

func (UnknownCodeError) Is(target error) bool {
	return target == ErrUnknownCode
}

// EncodingError indicates a payload that could not be decoded (bad base64, bad timestamp, etc.)
type EncodingError struct {
	Err error
}

func (e EncodingError) Error() string {
	return fmt.Sprintf("encoding error: %v", e.Err)
}

func (e EncodingError) Unwrap() error { return e.Err }

func (EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

// FramingError indicates a declared length that does not agree with the data
type FramingError struct {
	Msg string
}

func (e FramingError) Error() string {
	return "framing error: " + e.Msg
}

func (FramingError) Is(target error) bool {
	return target == ErrFraming
}

// NewFramingError builds a FramingError from a format string
func NewFramingError(format string, args ...any) FramingError {
	return FramingError{Msg: fmt.Sprintf(format, args...)}
}

// TrailingDataError is returned by the "decode exactly one" entry points when input remains
type TrailingDataError struct {
	Remaining int
}

func (e TrailingDataError) Error() string {
	return fmt.Sprintf("trailing data: %d bytes left after decode", e.Remaining)
}

func (TrailingDataError) Is(target error) bool {
	return target == ErrTrailingData
}

// NotImplementedError indicates a recognized but unsupported feature
type NotImplementedError struct {
	Feature string
}

func (e NotImplementedError) Error() string {
	return "not implemented: " + e.Feature
}

func (NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

// IsIncomplete reports whether the error means that the input ran short
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// IsRecoverable reports whether more input could complete the value
func IsRecoverable(err error) bool {
	var incErr IncompleteError
	if !errors.As(err, &incErr) {
		return false
	}
	return !incErr.Bounded
}
