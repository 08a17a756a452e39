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

// MessageHeader is the fixed 16-byte IPFIX Message Header (RFC 7011 §3.1).
type MessageHeader struct {
	Version             uint16 `json:"version"`
	Length              uint16 `json:"length"`
	ExportTime          uint32 `json:"export_time"`
	SequenceNumber      uint32 `json:"sequence_number"`
	ObservationDomainId uint32 `json:"observation_domain_id"`
}

func (h *MessageHeader) Decode(r *bytes.Reader) (n int, err error) {
	if r.Len() < messageHeaderLength {
		return 0, ErrShortHeader
	}

	h.Version, err = readUint16(r)
	if err != nil {
		return 2, err
	}
	n += 2

	if h.Version != Version {
		return n, UnknownVersion(h.Version)
	}

	h.Length, err = readUint16(r)
	if err != nil {
		return n, err
	}
	n += 2

	h.ExportTime, err = readUint32(r)
	if err != nil {
		return n, err
	}
	n += 4

	h.SequenceNumber, err = readUint32(r)
	if err != nil {
		return n, err
	}
	n += 4

	h.ObservationDomainId, err = readUint32(r)
	if err != nil {
		return n, err
	}
	n += 4

	return n, nil
}

func (h *MessageHeader) Encode(w io.Writer) (n int, err error) {
	for _, v := range []uint16{h.Version, h.Length} {
		m, err := writeUint16(w, v)
		n += m
		if err != nil {
			return n, err
		}
	}
	for _, v := range []uint32{h.ExportTime, h.SequenceNumber, h.ObservationDomainId} {
		m, err := writeUint32(w, v)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// SetHeader is the 4-byte header prefixing every Set (RFC 7011 §3.3.2).
type SetHeader struct {
	// Id is 2 for a Template Set, 3 for an Options Template Set, and
	// >=256 for a Data Set, where Id doubles as the referenced template id.
	Id     uint16 `json:"id"`
	Length uint16 `json:"length"`
}

func (sh *SetHeader) Decode(r *bytes.Reader) (n int, err error) {
	sh.Id, err = readUint16(r)
	if err != nil {
		return 0, err
	}
	n += 2

	sh.Length, err = readUint16(r)
	if err != nil {
		return n, err
	}
	n += 2

	if sh.Length < setHeaderLength {
		return n, fmt.Errorf("%w: set %d declares length %d", ErrSetTooShort, sh.Id, sh.Length)
	}
	return n, nil
}

func (sh *SetHeader) Encode(w io.Writer) (n int, err error) {
	m, err := writeUint16(w, sh.Id)
	n += m
	if err != nil {
		return n, err
	}
	m, err = writeUint16(w, sh.Length)
	n += m
	return n, err
}

func (sh SetHeader) Kind() SetKind {
	switch {
	case sh.Id == TemplateSetID:
		return KindTemplateSet
	case sh.Id == OptionsTemplateSetID:
		return KindOptionsTemplateSet
	case sh.Id >= DataSetIDMin:
		return KindDataSet
	default:
		return KindReserved
	}
}

// SetKind classifies a Set by its header id, per spec.md §2's routing table.
type SetKind int

const (
	KindReserved SetKind = iota
	KindTemplateSet
	KindOptionsTemplateSet
	KindDataSet
)

func (k SetKind) String() string {
	switch k {
	case KindTemplateSet:
		return "TemplateSet"
	case KindOptionsTemplateSet:
		return "OptionsTemplateSet"
	case KindDataSet:
		return "DataSet"
	default:
		return "Reserved"
	}
}
