/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ipfix

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
)

// TemplateCache stores templates observed on a single IPFIX stream, keyed by
// template id (§3's Data Model deliberately drops the teacher's per-exporter
// TemplateKey: multi-tenant isolation between exporters is a Non-goal here).
//
// Caches do not have to perform active expiry. For a cache bounded by entry
// count instead, use a DecayingEphemeralCache.
type TemplateCache interface {
	// GetAll returns every currently cached regular and options template.
	GetAll(ctx context.Context) (templates map[uint16]*Template, options map[uint16]*OptionsTemplate)

	// Get returns the regular template stored at id, or ErrTemplateNotFound.
	Get(ctx context.Context, id uint16) (*Template, error)

	// GetOptions returns the options template stored at id, or ErrTemplateNotFound.
	GetOptions(ctx context.Context, id uint16) (*OptionsTemplate, error)

	// Add installs (or, per RFC 7011 §3.4.3, redefines) a regular template.
	Add(ctx context.Context, id uint16, template *Template) error

	// AddOptions installs (or redefines) an options template.
	AddOptions(ctx context.Context, id uint16, template *OptionsTemplate) error

	// Delete withdraws a regular template. Implementations of the optional
	// withdrawal deviation (DESIGN.md Open Question #2) call this when a
	// Template Record's FieldCount is zero.
	Delete(ctx context.Context, id uint16) error

	// DeleteOptions withdraws an options template.
	DeleteOptions(ctx context.Context, id uint16) error

	// Name returns the name of the cache set at construction.
	Name() string

	// Type returns the constant type of the cache as a string.
	Type() string

	json.Marshaler
}

// EphemeralCache is the basic in-memory TemplateCache: two maps, guarded by
// a single RWMutex, with no expiry and no persistence (§5's Non-goal on
// template persistence across restarts).
type EphemeralCache struct {
	templates map[uint16]*Template
	options   map[uint16]*OptionsTemplate

	mu *sync.RWMutex

	name string
}

var _ TemplateCache = &EphemeralCache{}

func NewDefaultEphemeralCache() TemplateCache {
	return NewNamedEphemeralCache("default")
}

func NewNamedEphemeralCache(name string) TemplateCache {
	return &EphemeralCache{
		templates: make(map[uint16]*Template),
		options:   make(map[uint16]*OptionsTemplate),
		mu:        &sync.RWMutex{},
		name:      name,
	}
}

func (ts *EphemeralCache) GetAll(ctx context.Context) (map[uint16]*Template, map[uint16]*OptionsTemplate) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.templates, ts.options
}

func (ts *EphemeralCache) Get(ctx context.Context, id uint16) (*Template, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	t, ok := ts.templates[id]
	if !ok {
		return nil, TemplateNotFound(id)
	}
	return t, nil
}

func (ts *EphemeralCache) GetOptions(ctx context.Context, id uint16) (*OptionsTemplate, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	t, ok := ts.options[id]
	if !ok {
		return nil, TemplateNotFound(id)
	}
	return t, nil
}

func (ts *EphemeralCache) Add(ctx context.Context, id uint16, template *Template) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.templates[id] = template
	return nil
}

func (ts *EphemeralCache) AddOptions(ctx context.Context, id uint16, template *OptionsTemplate) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.options[id] = template
	return nil
}

func (ts *EphemeralCache) Delete(ctx context.Context, id uint16) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	delete(ts.templates, id)
	return nil
}

func (ts *EphemeralCache) DeleteOptions(ctx context.Context, id uint16) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	delete(ts.options, id)
	return nil
}

func (ts *EphemeralCache) Type() string {
	return "ephemeral"
}

func (ts *EphemeralCache) Name() string {
	return ts.name
}

func (ts *EphemeralCache) MarshalJSON() ([]byte, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	s := make(map[string]interface{}, len(ts.templates)+len(ts.options))
	for k, v := range ts.templates {
		s[strconv.Itoa(int(k))] = v
	}
	for k, v := range ts.options {
		s["options-"+strconv.Itoa(int(k))] = v
	}
	return json.Marshal(s)
}
