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

import "fmt"

// DataSet is a Data Set after being resolved against a Template or Options
// Template and decoded into typed, registry-enriched records (§4.4).
type DataSet struct {
	Header  SetHeader    `json:"-"`
	Records []DataRecord `json:"records,omitempty"`
}

func (d DataSet) String() string {
	s := make([]string, 0, len(d.Records))
	for _, r := range d.Records {
		s = append(s, r.String())
	}
	return fmt.Sprintf("%v", s)
}

// Message is one decoded IPFIX Message (§2): the header plus every Template,
// Options Template, and Data Set observed in it, in wire order. Sets whose
// id routes to KindReserved, or Data Sets with no bound template, are
// dropped per §4.5's "unknown set id / unbound template" tolerance policy,
// and do not appear here.
type Message struct {
	Header MessageHeader `json:"header"`

	Templates        []Template        `json:"templates,omitempty"`
	OptionsTemplates []OptionsTemplate `json:"options_templates,omitempty"`
	DataSets         []DataSet         `json:"data_sets,omitempty"`
}

func (m Message) String() string {
	return fmt.Sprintf(
		"Message<version=%d length=%d exportTime=%d sequenceNumber=%d observationDomainId=%d templates=%d optionsTemplates=%d dataSets=%d>",
		m.Header.Version, m.Header.Length, m.Header.ExportTime, m.Header.SequenceNumber, m.Header.ObservationDomainId,
		len(m.Templates), len(m.OptionsTemplates), len(m.DataSets),
	)
}
