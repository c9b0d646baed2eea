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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	cesr "github.com/blinklabs-io/gocesr"
	"github.com/blinklabs-io/gocesr/group"
	"github.com/blinklabs-io/gocesr/payload"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// messageView is the printable form of a message
type messageView struct {
	Kind   string         `json:"kind"             yaml:"kind"`
	Format string         `json:"format,omitempty" yaml:"format,omitempty"`
	Domain string         `json:"domain,omitempty" yaml:"domain,omitempty"`
	Code   string         `json:"code,omitempty"   yaml:"code,omitempty"`
	Name   string         `json:"name,omitempty"   yaml:"name,omitempty"`
	Count  int            `json:"count,omitempty"  yaml:"count,omitempty"`
	Text   string         `json:"text,omitempty"   yaml:"text,omitempty"`
	Value  map[string]any `json:"value,omitempty"  yaml:"value,omitempty"`
}

func newMessageView(msg cesr.Message) (messageView, error) {
	switch m := msg.(type) {
	case *cesr.CustomMessage:
		return messageView{
			Kind:   "custom",
			Format: m.Format().String(),
			Value:  m.Value(),
		}, nil
	case *cesr.GroupMessage:
		text, err := group.Encode(m.Group)
		if err != nil {
			return messageView{}, err
		}
		count, err := group.Count(m.Group)
		if err != nil {
			return messageView{}, err
		}
		return messageView{
			Kind:   "group",
			Domain: m.Domain.String(),
			Code:   string(m.Group.Code()),
			Name:   m.Group.Code().Name(),
			Count:  count,
			Text:   string(text),
		}, nil
	default:
		return messageView{}, fmt.Errorf("unsupported message type %T", msg)
	}
}

type printer struct {
	format  string
	out     io.Writer
	jsonEnc *json.Encoder
	yamlEnc *yaml.Encoder
}

func newPrinter(format string, out io.Writer) (*printer, error) {
	p := &printer{
		format: strings.ToLower(format),
		out:    out,
	}
	switch p.format {
	case outputText:
	case outputJSON:
		p.jsonEnc = json.NewEncoder(out)
	case outputYAML:
		p.yamlEnc = yaml.NewEncoder(out)
		p.yamlEnc.SetIndent(2)
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
	return p, nil
}

// Close flushes any buffered output
func (p *printer) Close() error {
	if p.yamlEnc != nil {
		return p.yamlEnc.Close()
	}
	return nil
}

// Print writes one message
func (p *printer) Print(msg cesr.Message) error {
	view, err := newMessageView(msg)
	if err != nil {
		return err
	}
	switch p.format {
	case outputJSON:
		return p.jsonEnc.Encode(view)
	case outputYAML:
		return p.yamlEnc.Encode(view)
	default:
		return p.printText(msg, view)
	}
}

func (p *printer) printText(msg cesr.Message, view messageView) error {
	if view.Kind == "group" {
		_, err := fmt.Fprintf(
			p.out,
			"%s %s count=%d domain=%s %s\n",
			view.Code,
			view.Name,
			view.Count,
			view.Domain,
			view.Text,
		)
		return err
	}
	custom := msg.(*cesr.CustomMessage)
	body := custom.Raw()
	if custom.Format() != payload.FormatJSON {
		// Show binary payloads as JSON
		tmp, err := json.Marshal(custom.Value())
		if err != nil {
			return err
		}
		body = tmp
	}
	_, err := fmt.Fprintf(p.out, "%s %s\n", view.Format, body)
	return err
}
