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
	"io"
)

// FieldSpecifier is one entry of a Template/Options Template record (§3).
// Ident has the enterprise bit already stripped. EnterpriseNumber is nil
// when the specifier carries no enterprise bit; 0 is never implicit here,
// it only arises if an exporter explicitly sends PEN 0, which is reserved
// for IANA and treated identically to "no enterprise number" by the
// decoder's lookup path (§4.4 "pen = enterprise_number or 0").
type FieldSpecifier struct {
	Ident            uint16  `json:"ident"`
	FieldLength      uint16  `json:"field_length"`
	EnterpriseNumber *uint32 `json:"enterprise_number,omitempty"`
}

// PEN returns the specifier's effective private enterprise number, treating
// an absent enterprise number as IANA (0).
func (fs FieldSpecifier) PEN() uint32 {
	if fs.EnterpriseNumber == nil {
		return 0
	}
	return *fs.EnterpriseNumber
}

func decodeFieldSpecifier(r *bytes.Reader) (FieldSpecifier, int, error) {
	var fs FieldSpecifier
	n := 0

	raw, err := readUint16(r)
	if err != nil {
		return fs, n, err
	}
	n += 2

	fs.Ident = raw & identMask

	fs.FieldLength, err = readUint16(r)
	if err != nil {
		return fs, n, err
	}
	n += 2

	if raw&enterpriseBit != 0 {
		pen, err := readUint32(r)
		if err != nil {
			return fs, n, err
		}
		n += 4
		fs.EnterpriseNumber = &pen
	}

	return fs, n, nil
}

func (fs FieldSpecifier) encode(w io.Writer) (n int, err error) {
	ident := fs.Ident
	if fs.EnterpriseNumber != nil {
		ident |= enterpriseBit
	}

	m, err := writeUint16(w, ident)
	n += m
	if err != nil {
		return n, err
	}

	m, err = writeUint16(w, fs.FieldLength)
	n += m
	if err != nil {
		return n, err
	}

	if fs.EnterpriseNumber != nil {
		m, err = writeUint32(w, *fs.EnterpriseNumber)
		n += m
		if err != nil {
			return n, err
		}
	}

	return n, nil
}

// fieldSpecifierSize returns a specifier's on-wire size: 4 bytes, or 8 if it
// carries an enterprise number (used by Template.Length()/OptionsTemplate.Length()).
func fieldSpecifierSize(fs FieldSpecifier) uint16 {
	if fs.EnterpriseNumber == nil {
		return 4
	}
	return 8
}
