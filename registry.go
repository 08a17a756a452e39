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

import "sync"

// FieldKey identifies one Information Element by its private enterprise
// number (0 for IANA-assigned elements) and its 15-bit element id, mirroring
// the teacher's field_cache.go FieldKey.
type FieldKey struct {
	PEN uint32
	Id  uint16
}

// FieldFormatter names and decodes one Information Element.
type FieldFormatter struct {
	Name  string
	Parse ParseFunc
}

// EnterpriseRegistry is the pluggable "Enterprise Formatter Registry" of
// §4.4: a two-level map, enterprise number to field id to FieldFormatter,
// populated at construction with the IANA table (enterprise 0) and
// extensible at runtime by vendor dictionaries (dictionary.go) or direct
// calls to Register. The two levels exist so a lookup can distinguish "this
// PEN was never registered" from "this PEN is known, this field id isn't" --
// §4.4/§7 require different decode behavior for each case.
type EnterpriseRegistry struct {
	mu          sync.RWMutex
	enterprises map[uint32]map[uint16]FieldFormatter
}

// NewEnterpriseRegistry returns a registry pre-populated with the built-in
// IANA Information Element table (iana_registry.go), registered under
// enterprise 0.
func NewEnterpriseRegistry() *EnterpriseRegistry {
	r := &EnterpriseRegistry{
		enterprises: make(map[uint32]map[uint16]FieldFormatter),
	}
	iana := make(map[uint16]FieldFormatter, len(ianaInformationElements))
	for id, f := range ianaInformationElements {
		iana[id] = f
	}
	r.enterprises[0] = iana
	return r
}

// Register installs or replaces a formatter for (pen, id), creating the
// enterprise's field table on first use.
func (r *EnterpriseRegistry) Register(pen uint32, id uint16, name string, parse ParseFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fields, ok := r.enterprises[pen]
	if !ok {
		fields = make(map[uint16]FieldFormatter)
		r.enterprises[pen] = fields
	}
	fields[id] = FieldFormatter{Name: name, Parse: parse}
}

// PENKnown reports whether any formatter has been registered under pen,
// regardless of field id.
func (r *EnterpriseRegistry) PENKnown(pen uint32) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.enterprises[pen]
	return ok
}

// Lookup returns the formatter registered for (pen, id), and whether one
// was found. It does not distinguish an unknown PEN from a known PEN with an
// unknown field id; use PENKnown first where that distinction matters.
func (r *EnterpriseRegistry) Lookup(pen uint32, id uint16) (FieldFormatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fields, ok := r.enterprises[pen]
	if !ok {
		return FieldFormatter{}, false
	}
	f, ok := fields[id]
	return f, ok
}

// GetAll returns a snapshot of every registered entry, flattened back to
// FieldKey-addressed form for callers that don't need the two-level split
// (e.g. dictionary.go's WriteDictionary).
func (r *EnterpriseRegistry) GetAll() map[FieldKey]FieldFormatter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[FieldKey]FieldFormatter)
	for pen, fields := range r.enterprises {
		for id, f := range fields {
			out[FieldKey{PEN: pen, Id: id}] = f
		}
	}
	return out
}
