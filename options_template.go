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
	"bytes"
	"fmt"
	"io"
)

// OptionsTemplate is one Options Template Record (RFC 7011 §3.4.2.2): like a
// Template, but the leading ScopeFieldCount fields of Fields are scope
// fields identifying what the remaining fields' values are metadata about.
type OptionsTemplate struct {
	TemplateId      uint16           `json:"template_id"`
	FieldCount      uint16           `json:"field_count"`
	ScopeFieldCount uint16           `json:"scope_field_count"`
	Fields          []FieldSpecifier `json:"fields"`
}

func (t OptionsTemplate) String() string {
	return fmt.Sprintf("OptionsTemplate<id=%d,fields=%d,scope=%d>", t.TemplateId, t.FieldCount, t.ScopeFieldCount)
}

// ScopeFields returns the leading scope-field specifiers.
func (t OptionsTemplate) ScopeFields() []FieldSpecifier {
	return t.Fields[:t.ScopeFieldCount]
}

// OptionFields returns the non-scope field specifiers.
func (t OptionsTemplate) OptionFields() []FieldSpecifier {
	return t.Fields[t.ScopeFieldCount:]
}

func (t OptionsTemplate) Encode(w io.Writer) (n int, err error) {
	for _, v := range []uint16{t.TemplateId, t.FieldCount, t.ScopeFieldCount} {
		m, err := writeUint16(w, v)
		n += m
		if err != nil {
			return n, err
		}
	}
	for _, fs := range t.Fields {
		m, err := fs.encode(w)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// decodeOptionsTemplate reads one Options Template Record off r, validating
// that 1 <= scope_field_count <= field_count (§4.3's scope-count invariant).
func decodeOptionsTemplate(r *bytes.Reader) (OptionsTemplate, int, error) {
	var t OptionsTemplate
	n := 0

	var err error
	t.TemplateId, err = readUint16(r)
	if err != nil {
		return t, n, err
	}
	n += 2

	t.FieldCount, err = readUint16(r)
	if err != nil {
		return t, n, err
	}
	n += 2

	t.ScopeFieldCount, err = readUint16(r)
	if err != nil {
		return t, n, err
	}
	n += 2

	if t.FieldCount == 0 {
		// withdrawal: an empty options template record carries no scope
		// count invariant to check and no field specifiers to read.
		return t, n, nil
	}

	if t.ScopeFieldCount == 0 || t.ScopeFieldCount > t.FieldCount {
		return t, n, fmt.Errorf("%w: template %d has scope_field_count=%d, field_count=%d",
			ErrScopeCountInvalid, t.TemplateId, t.ScopeFieldCount, t.FieldCount)
	}

	t.Fields = make([]FieldSpecifier, 0, t.FieldCount)
	for i := uint16(0); i < t.FieldCount; i++ {
		fs, m, err := decodeFieldSpecifier(r)
		n += m
		if err != nil {
			return t, n, err
		}
		t.Fields = append(t.Fields, fs)
	}

	return t, n, nil
}

// decodeOptionsTemplateSet mirrors decodeTemplateSet's partial-tail policy:
// malformed or short trailing records are discarded, not reported as errors.
func decodeOptionsTemplateSet(body []byte) []OptionsTemplate {
	r := bytes.NewReader(body)
	templates := make([]OptionsTemplate, 0)

	for r.Len() > 0 {
		start := r.Len()
		t, _, err := decodeOptionsTemplate(r)
		if err != nil {
			break
		}
		if start == r.Len() {
			break
		}
		templates = append(templates, t)
	}

	return templates
}
