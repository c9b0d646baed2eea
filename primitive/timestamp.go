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

package primitive

import (
	"fmt"
	"strings"
	"time"

	"github.com/blinklabs-io/gocesr/common"
	"github.com/blinklabs-io/gocesr/derivation"
)

// TimestampLayout is RFC3339 with microsecond precision and a numeric offset
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

var (
	timestampEscaper   = strings.NewReplacer(":", "c", ".", "d", "+", "p")
	timestampUnescaper = strings.NewReplacer("c", ":", "d", ".", "p", "+")
)

// Timestamp is a point in time with microsecond precision
type Timestamp struct {
	Time time.Time
}

// NewTimestamp builds a timestamp, truncating to the encoded precision
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Microsecond)}
}

// DecodeTimestamp reads a timestamp from the front of data
func DecodeTimestamp(data []byte) (Timestamp, []byte, error) {
	code, tagLen, err := derivation.ParseTimestampCode(data)
	if err != nil {
		return Timestamp{}, data, err
	}
	text, rest, err := common.Take(data[tagLen:], code.DerivativeLen())
	if err != nil {
		return Timestamp{}, data, err
	}
	unescaped := timestampUnescaper.Replace(string(text))
	t, err := time.Parse(TimestampLayout, unescaped)
	if err != nil {
		return Timestamp{}, data, common.EncodingError{
			Err: fmt.Errorf("invalid timestamp %q: %w", text, err),
		}
	}
	// Reject anything that would not re-encode to the same text
	if timestampEscaper.Replace(t.Format(TimestampLayout)) != string(text) {
		return Timestamp{}, data, common.EncodingError{
			Err: fmt.Errorf("non-canonical timestamp %q", text),
		}
	}
	return Timestamp{Time: t}, rest, nil
}

// ParseTimestamp decodes a timestamp from its complete text form
func ParseTimestamp(s string) (Timestamp, error) {
	return parseExact([]byte(s), DecodeTimestamp)
}

func (Timestamp) DerivationCode() derivation.Code {
	return derivation.TimestampDateTime
}

func (t Timestamp) MarshalText() ([]byte, error) {
	code := derivation.TimestampDateTime
	body := timestampEscaper.Replace(t.Time.Format(TimestampLayout))
	if len(body) != code.DerivativeLen() {
		return nil, common.NewFramingError(
			"timestamp %q encodes to %d characters, expected %d",
			body,
			len(body),
			code.DerivativeLen(),
		)
	}
	return []byte(code.String() + body), nil
}

func (t *Timestamp) UnmarshalText(text []byte) error {
	tmp, err := parseExact(text, DecodeTimestamp)
	if err != nil {
		return err
	}
	*t = tmp
	return nil
}

func (t Timestamp) MarshalBinary() ([]byte, error) {
	return textToBinary(t.MarshalText())
}

func (t *Timestamp) UnmarshalBinary(data []byte) error {
	text, err := common.BinaryToText(data)
	if err != nil {
		return err
	}
	return t.UnmarshalText(text)
}

func (t Timestamp) String() string {
	text, _ := t.MarshalText()
	return string(text)
}

// Equal reports whether two timestamps represent the same instant
func (t Timestamp) Equal(other Timestamp) bool {
	return t.Time.Equal(other.Time)
}
