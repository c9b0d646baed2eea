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
	"errors"
	"log/slog"
	"sync/atomic"

	cesr "github.com/blinklabs-io/gocesr"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "cesr_stream"

// Metrics tracks stream reader activity.
// Uses atomic counters for thread-safe operation.
type Metrics struct {
	messages       atomic.Uint64
	groups         atomic.Uint64
	customPayloads atomic.Uint64
	bytesRead      atomic.Uint64
	fatalErrors    atomic.Uint64

	promMessages       prometheus.Counter
	promGroups         prometheus.Counter
	promCustomPayloads prometheus.Counter
	promBytesRead      prometheus.Counter
	promErrors         prometheus.Counter
}

// Stats is a snapshot of the reader metrics
type Stats struct {
	Messages       uint64
	Groups         uint64
	CustomPayloads uint64
	BytesRead      uint64
	Errors         uint64
}

// NewMetrics creates a new Metrics. The counters are also registered with reg
// when it is not nil. Counters that are already registered are shared
func NewMetrics(reg prometheus.Registerer, logger *slog.Logger) *Metrics {
	m := &Metrics{}
	if reg == nil {
		return m
	}
	if logger == nil {
		logger = slog.Default()
	}
	m.promMessages = registerCounter(reg, logger, prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "messages_total",
		Help:      "Total number of messages decoded from the stream",
	})
	m.promGroups = registerCounter(reg, logger, prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "groups_total",
		Help:      "Total number of CESR groups decoded from the stream",
	})
	m.promCustomPayloads = registerCounter(reg, logger, prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "custom_payloads_total",
		Help:      "Total number of JSON, CBOR and MessagePack payloads decoded from the stream",
	})
	m.promBytesRead = registerCounter(reg, logger, prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "bytes_read_total",
		Help:      "Total number of bytes read from the stream source",
	})
	m.promErrors = registerCounter(reg, logger, prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "errors_total",
		Help:      "Total number of fatal stream errors",
	})
	return m
}

func registerCounter(
	reg prometheus.Registerer,
	logger *slog.Logger,
	opts prometheus.CounterOpts,
) prometheus.Counter {
	counter := prometheus.NewCounter(opts)
	if err := reg.Register(counter); err != nil {
		var alreadyErr prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyErr) {
			if existing, ok := alreadyErr.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
		logger.Warn(
			"failed to register metric",
			"metric",
			opts.Namespace+"_"+opts.Name,
			"error",
			err,
		)
	}
	return counter
}

func inc(c prometheus.Counter, n uint64) {
	if c != nil {
		c.Add(float64(n))
	}
}

// RecordRead records bytes read from the source
func (m *Metrics) RecordRead(n int) {
	if n <= 0 {
		return
	}
	m.bytesRead.Add(uint64(n))
	inc(m.promBytesRead, uint64(n))
}

// RecordMessage records a decoded message
func (m *Metrics) RecordMessage(msg cesr.Message) {
	m.messages.Add(1)
	inc(m.promMessages, 1)
	switch msg.(type) {
	case *cesr.GroupMessage:
		m.groups.Add(1)
		inc(m.promGroups, 1)
	case *cesr.CustomMessage:
		m.customPayloads.Add(1)
		inc(m.promCustomPayloads, 1)
	}
}

// RecordError records a fatal error
func (m *Metrics) RecordError() {
	m.fatalErrors.Add(1)
	inc(m.promErrors, 1)
}

// Stats returns a snapshot of the current metrics
func (m *Metrics) Stats() Stats {
	return Stats{
		Messages:       m.messages.Load(),
		Groups:         m.groups.Load(),
		CustomPayloads: m.customPayloads.Load(),
		BytesRead:      m.bytesRead.Load(),
		Errors:         m.fatalErrors.Load(),
	}
}
