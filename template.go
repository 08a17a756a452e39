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

// Template is one Template Record: a template id and the ordered field
// specifiers that describe the layout of Data Records referencing it (§3).
type Template struct {
	TemplateId uint16           `json:"template_id"`
	FieldCount uint16           `json:"field_count"`
	Fields     []FieldSpecifier `json:"fields"`
}

func (t Template) String() string {
	return fmt.Sprintf("Template<id=%d,fields=%d>", t.TemplateId, t.FieldCount)
}

func (t Template) Encode(w io.Writer) (n int, err error) {
	m, err := writeUint16(w, t.TemplateId)
	n += m
	if err != nil {
		return n, err
	}
	m, err = writeUint16(w, t.FieldCount)
	n += m
	if err != nil {
		return n, err
	}
	for _, fs := range t.Fields {
		m, err = fs.encode(w)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// decodeTemplate reads one Template Record off r.
func decodeTemplate(r *bytes.Reader) (Template, int, error) {
	var t Template
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

// decodeTemplateSet repeatedly decodes Template Records from a Template
// Set's body, stopping (without error) at the first short/partial record,
// per spec.md §4.2's "template parse partial" failure policy: records
// already assembled are kept, the malformed tail is silently discarded.
func decodeTemplateSet(body []byte) []Template {
	r := bytes.NewReader(body)
	templates := make([]Template, 0)

	for r.Len() > 0 {
		start := r.Len()
		t, _, err := decodeTemplate(r)
		if err != nil {
			break
		}
		if start == r.Len() {
			// nothing was consumed; avoid looping forever on a malformed record
			break
		}
		templates = append(templates, t)
	}

	return templates
}
