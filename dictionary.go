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
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// VendorField is one YAML-described Information Element belonging to a
// private enterprise, grounded on the teacher's InformationElement/yaml.go
// export shape. Type names match the IANA abstract data types; only the
// subset ParseFuncByType understands is supported.
type VendorField struct {
	Id   uint16 `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// VendorDictionary is a YAML document naming one enterprise's Information
// Elements, loaded at startup to extend the decoder's EnterpriseRegistry
// beyond the built-in IANA table (§4.4's "pluggable" requirement).
type VendorDictionary struct {
	Name            string        `yaml:"name"`
	PEN             uint32        `yaml:"pen"`
	ExportTimestamp time.Time     `yaml:"export_timestamp,omitempty"`
	Fields          []VendorField `yaml:"fields"`
}

// ParseFuncByType resolves a YAML-declared type name to a ParseFunc,
// defaulting to ParseOctetArray for anything unrecognized so a typo in a
// dictionary degrades to raw bytes instead of rejecting the whole file.
func ParseFuncByType(t string) ParseFunc {
	switch t {
	case "unsigned8", "unsigned16", "unsigned32", "unsigned64":
		return ParseUnsigned
	case "signed8", "signed16", "signed32", "signed64":
		return ParseSigned
	case "ipv4Address":
		return ParseIPv4Address
	case "ipv6Address":
		return ParseIPv6Address
	case "macAddress":
		return ParseMACAddress
	case "string":
		return ParseString
	case "boolean":
		return ParseBoolean
	case "mplsLabelStackSection":
		return ParseMPLSLabelStack
	case "dateTimeSeconds":
		return ParseDateTimeSeconds
	case "dateTimeMilliseconds":
		return ParseDateTimeMilliseconds
	case "dateTimeMicroseconds":
		return ParseDateTimeMicroseconds
	case "dateTimeNanoseconds":
		return ParseDateTimeNanoseconds
	default:
		return ParseOctetArray
	}
}

// ReadDictionary decodes a VendorDictionary from r.
func ReadDictionary(r io.Reader) (*VendorDictionary, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d VendorDictionary
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode vendor dictionary: %w", err)
	}
	return &d, nil
}

// LoadDictionary reads a VendorDictionary from r and registers every field
// it describes into reg under the dictionary's PEN.
func LoadDictionary(reg *EnterpriseRegistry, r io.Reader) error {
	d, err := ReadDictionary(r)
	if err != nil {
		return err
	}
	for _, f := range d.Fields {
		reg.Register(d.PEN, f.Id, f.Name, ParseFuncByType(f.Type))
	}
	return nil
}

// WriteDictionary encodes the entries of reg registered under pen as one
// VendorDictionary document, matching the teacher's WriteYAML round-trip
// shape. Entries under other PENs are left out, and each field's Type is
// written empty because a registered formatter carries no type name.
func WriteDictionary(w io.Writer, name string, pen uint32, reg *EnterpriseRegistry) error {
	fields := make([]VendorField, 0)
	for k, f := range reg.GetAll() {
		if k.PEN != pen {
			continue
		}
		fields = append(fields, VendorField{Id: k.Id, Name: f.Name})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()

	return enc.Encode(VendorDictionary{
		Name:            name,
		PEN:             pen,
		ExportTimestamp: time.Now(),
		Fields:          fields,
	})
}
