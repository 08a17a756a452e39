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
	"encoding/json"
	"fmt"
	"strings"
)

// KeyKind discriminates a Key's two cases (§4.4, §9): a field recognized by
// the EnterpriseRegistry, or one that is not. Decode errors are deliberately
// not a third case here -- spec.md §9's Open Question recommends collecting
// them on DataRecord.Errors instead of an error-valued map key, to avoid two
// differently-failed fields silently colliding under one map key.
type KeyKind int

const (
	KeyName KeyKind = iota
	KeyUnrecognized
)

// Key identifies one field within a DataRecord's Fields map.
type Key struct {
	Kind KeyKind

	// Name is set when Kind == KeyName, to the formatter's registered name.
	Name string

	// PEN and Id are set when Kind == KeyUnrecognized, to the field
	// specifier's effective enterprise number and element id.
	PEN uint32
	Id  uint16
}

func NameKey(name string) Key { return Key{Kind: KeyName, Name: name} }

func UnrecognizedKey(pen uint32, id uint16) Key { return Key{Kind: KeyUnrecognized, PEN: pen, Id: id} }

func (k Key) String() string {
	if k.Kind == KeyName {
		return k.Name
	}
	return fmt.Sprintf("unrecognized(pen=%d,id=%d)", k.PEN, k.Id)
}

// DataRecord is one decoded Data Record: recognized fields are keyed by
// name, unrecognized fields by (PEN, id), and any per-field decode failures
// are collected in Errors rather than aborting the whole record (§4.4,
// §5's "continue decoding remaining fields on a single field error").
type DataRecord struct {
	TemplateId uint16        `json:"template_id"`
	Fields     map[Key]Value `json:"-"`
	Errors     []string      `json:"errors,omitempty"`
}

func newDataRecord(templateId uint16) *DataRecord {
	return &DataRecord{
		TemplateId: templateId,
		Fields:     make(map[Key]Value),
	}
}

func (r *DataRecord) addError(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *DataRecord) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DataRecord<template=%d>{", r.TemplateId)
	first := true
	for k, v := range r.Fields {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%s=%s", k, v)
	}
	sb.WriteString("}")
	if len(r.Errors) > 0 {
		fmt.Fprintf(&sb, " errors=%v", r.Errors)
	}
	return sb.String()
}

// MarshalJSON renders Fields as a string-keyed object, since Key is not
// itself a valid JSON object key.
func (r *DataRecord) MarshalJSON() ([]byte, error) {
	flattened := make(map[string]Value, len(r.Fields))
	for k, v := range r.Fields {
		flattened[k.String()] = v
	}
	return json.Marshal(struct {
		TemplateId uint16           `json:"template_id"`
		Fields     map[string]Value `json:"fields"`
		Errors     []string         `json:"errors,omitempty"`
	}{
		TemplateId: r.TemplateId,
		Fields:     flattened,
		Errors:     r.Errors,
	})
}
