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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeTemplateSet(t *testing.T) {
	t1 := Template{
		TemplateId: 500,
		FieldCount: 3,
		Fields: []FieldSpecifier{
			{Ident: 8, FieldLength: 4},  // sourceIPv4Address
			{Ident: 12, FieldLength: 4}, // destinationIPv4Address
			{Ident: 4, FieldLength: 1},  // protocolIdentifier
		},
	}
	t2 := Template{
		TemplateId: 501,
		FieldCount: 1,
		Fields: []FieldSpecifier{
			{Ident: 153, FieldLength: 4}, // flowEndMilliSeconds
		},
	}

	buf := &bytes.Buffer{}
	_, err := t1.Encode(buf)
	require.NoError(t, err)
	_, err = t2.Encode(buf)
	require.NoError(t, err)

	got := decodeTemplateSet(buf.Bytes())
	require.Len(t, got, 2)
	require.Equal(t, t1, got[0])
	require.Equal(t, t2, got[1])
}

func TestDecodeTemplateSetDiscardsShortTail(t *testing.T) {
	t1 := Template{
		TemplateId: 999,
		FieldCount: 1,
		Fields:     []FieldSpecifier{{Ident: 1, FieldLength: 4}},
	}

	buf := &bytes.Buffer{}
	_, err := t1.Encode(buf)
	require.NoError(t, err)
	// a trailing short, malformed record (padding)
	buf.Write([]byte{0x00, 0x01})

	got := decodeTemplateSet(buf.Bytes())
	require.Len(t, got, 1)
	require.Equal(t, t1, got[0])
}

func TestDecodeTemplateSetEmptyBody(t *testing.T) {
	got := decodeTemplateSet(nil)
	require.Empty(t, got)
}
