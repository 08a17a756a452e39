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

func TestMessageHeaderRoundTrip(t *testing.T) {
	h := MessageHeader{
		Version:             10,
		Length:              42,
		ExportTime:          1700000000,
		SequenceNumber:      7,
		ObservationDomainId: 1,
	}

	buf := &bytes.Buffer{}
	_, err := h.Encode(buf)
	require.NoError(t, err)

	var got MessageHeader
	n, err := got.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, messageHeaderLength, n)
	require.Equal(t, h, got)
}

func TestMessageHeaderRejectsUnknownVersion(t *testing.T) {
	raw := make([]byte, messageHeaderLength)
	raw[1] = 9 // version 9, not 10

	var h MessageHeader
	_, err := h.Decode(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrUnknownVersion)
}

func TestMessageHeaderRejectsShortBuffer(t *testing.T) {
	var h MessageHeader
	_, err := h.Decode(bytes.NewReader(make([]byte, 4)))
	require.ErrorIs(t, err, ErrShortHeader)
}

func TestSetHeaderKindRouting(t *testing.T) {
	cases := []struct {
		id   uint16
		kind SetKind
	}{
		{2, KindTemplateSet},
		{3, KindOptionsTemplateSet},
		{256, KindDataSet},
		{999, KindDataSet},
		{1, KindReserved},
	}

	for _, c := range cases {
		sh := SetHeader{Id: c.id, Length: setHeaderLength}
		require.Equal(t, c.kind, sh.Kind(), "id %d", c.id)
	}
}

func TestSetHeaderRejectsTooShortLength(t *testing.T) {
	buf := &bytes.Buffer{}
	_, err := (&SetHeader{Id: 256, Length: 1}).Encode(buf)
	require.NoError(t, err)

	var sh SetHeader
	_, err = sh.Decode(bytes.NewReader(buf.Bytes()))
	require.ErrorIs(t, err, ErrSetTooShort)
}
