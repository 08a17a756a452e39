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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageString(t *testing.T) {
	msg := Message{
		Header: MessageHeader{
			Version:             Version,
			Length:              292,
			ExportTime:          1000,
			SequenceNumber:      1,
			ObservationDomainId: 1,
		},
		Templates:        []Template{{TemplateId: 500}},
		OptionsTemplates: []OptionsTemplate{{TemplateId: 999}},
		DataSets:         []DataSet{{Header: SetHeader{Id: 500}}},
	}

	s := msg.String()
	require.Contains(t, s, "templates=1")
	require.Contains(t, s, "optionsTemplates=1")
	require.Contains(t, s, "dataSets=1")
	require.Contains(t, s, "length=292")
}

func TestDataSetString(t *testing.T) {
	rec := newDataRecord(500)
	rec.Fields[NameKey("protocolIdentifier")] = UintValue(6)
	ds := DataSet{Header: SetHeader{Id: 500}, Records: []DataRecord{*rec}}

	require.Contains(t, ds.String(), "protocolIdentifier=6")
}
