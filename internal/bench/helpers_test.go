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

package bench

import (
	"testing"

	cesr "github.com/blinklabs-io/gocesr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStreamFixture(t *testing.T) {
	for _, kind := range StreamKinds() {
		t.Run(kind, func(t *testing.T) {
			fixture, err := LoadStreamFixture(kind, 10)
			require.NoError(t, err)
			msgs, rest := cesr.DecodeMessageList(fixture.Data)
			assert.Empty(t, rest)
			assert.Len(t, msgs, fixture.Messages)
		})
	}
	_, err := LoadStreamFixture("unknown", 1)
	assert.Error(t, err)
	_, err = LoadStreamFixture("groups", 0)
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoadStreamFixture("unknown", 1) })
}
