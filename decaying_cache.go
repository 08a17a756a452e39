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
	"container/list"
	"context"
	"encoding/json"
	"strconv"
	"sync"
)

// DecayingEphemeralCache is a TemplateCache bounded by entry count rather
// than by time: spec.md §5 allows imposing "a cap on cache entries...
// evict[ing] by least-recently-used" instead of the teacher's original
// TTL-based decay, so that is what this cache does. Both the regular and
// options template maps share one eviction list and one capacity budget.
type DecayingEphemeralCache struct {
	capacity int

	templates map[uint16]*list.Element
	options   map[uint16]*list.Element

	order *list.List // front = most recently used

	mu *sync.Mutex

	name string
}

type cacheEntry struct {
	id       uint16
	isOption bool
	template *Template
	options  *OptionsTemplate
}

var _ TemplateCache = &DecayingEphemeralCache{}

// NewDefaultDecayingEphemeralCache creates an LRU-bounded cache with the
// given capacity shared across regular and options templates. A capacity
// of 0 or less means unbounded (no eviction ever occurs).
func NewDefaultDecayingEphemeralCache(capacity int) TemplateCache {
	return NewNamedDecayingEphemeralCache("default", capacity)
}

func NewNamedDecayingEphemeralCache(name string, capacity int) TemplateCache {
	return &DecayingEphemeralCache{
		capacity:  capacity,
		templates: make(map[uint16]*list.Element),
		options:   make(map[uint16]*list.Element),
		order:     list.New(),
		mu:        &sync.Mutex{},
		name:      name,
	}
}

func (ts *DecayingEphemeralCache) touch(e *list.Element) {
	ts.order.MoveToFront(e)
}

// evictIfFull removes the least-recently-used entry when the cache is at
// capacity. Called with mu held.
func (ts *DecayingEphemeralCache) evictIfFull() {
	if ts.capacity <= 0 {
		return
	}
	for len(ts.templates)+len(ts.options) > ts.capacity {
		oldest := ts.order.Back()
		if oldest == nil {
			return
		}
		entry := oldest.Value.(*cacheEntry)
		ts.order.Remove(oldest)
		if entry.isOption {
			delete(ts.options, entry.id)
		} else {
			delete(ts.templates, entry.id)
		}
	}
}

func (ts *DecayingEphemeralCache) GetAll(ctx context.Context) (map[uint16]*Template, map[uint16]*OptionsTemplate) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	templates := make(map[uint16]*Template, len(ts.templates))
	for id, e := range ts.templates {
		templates[id] = e.Value.(*cacheEntry).template
	}
	options := make(map[uint16]*OptionsTemplate, len(ts.options))
	for id, e := range ts.options {
		options[id] = e.Value.(*cacheEntry).options
	}
	return templates, options
}

func (ts *DecayingEphemeralCache) Get(ctx context.Context, id uint16) (*Template, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	e, ok := ts.templates[id]
	if !ok {
		return nil, TemplateNotFound(id)
	}
	ts.touch(e)
	return e.Value.(*cacheEntry).template, nil
}

func (ts *DecayingEphemeralCache) GetOptions(ctx context.Context, id uint16) (*OptionsTemplate, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	e, ok := ts.options[id]
	if !ok {
		return nil, TemplateNotFound(id)
	}
	ts.touch(e)
	return e.Value.(*cacheEntry).options, nil
}

func (ts *DecayingEphemeralCache) Add(ctx context.Context, id uint16, template *Template) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if e, ok := ts.templates[id]; ok {
		e.Value.(*cacheEntry).template = template
		ts.touch(e)
		return nil
	}

	e := ts.order.PushFront(&cacheEntry{id: id, template: template})
	ts.templates[id] = e
	ts.evictIfFull()
	return nil
}

func (ts *DecayingEphemeralCache) AddOptions(ctx context.Context, id uint16, template *OptionsTemplate) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if e, ok := ts.options[id]; ok {
		e.Value.(*cacheEntry).options = template
		ts.touch(e)
		return nil
	}

	e := ts.order.PushFront(&cacheEntry{id: id, isOption: true, options: template})
	ts.options[id] = e
	ts.evictIfFull()
	return nil
}

func (ts *DecayingEphemeralCache) Delete(ctx context.Context, id uint16) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if e, ok := ts.templates[id]; ok {
		ts.order.Remove(e)
		delete(ts.templates, id)
	}
	return nil
}

func (ts *DecayingEphemeralCache) DeleteOptions(ctx context.Context, id uint16) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if e, ok := ts.options[id]; ok {
		ts.order.Remove(e)
		delete(ts.options, id)
	}
	return nil
}

func (ts *DecayingEphemeralCache) Type() string {
	return "decaying_ephemeral"
}

func (ts *DecayingEphemeralCache) Name() string {
	return ts.name
}

func (ts *DecayingEphemeralCache) MarshalJSON() ([]byte, error) {
	templates, options := ts.GetAll(context.Background())

	s := make(map[string]interface{}, len(templates)+len(options))
	for k, v := range templates {
		s[strconv.Itoa(int(k))] = v
	}
	for k, v := range options {
		s["options-"+strconv.Itoa(int(k))] = v
	}
	return json.Marshal(s)
}
