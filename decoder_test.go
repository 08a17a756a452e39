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
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// encodeSet frames a Set (header + body) ready to be concatenated into a
// Message payload.
func encodeSet(t *testing.T, id uint16, body []byte) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	sh := SetHeader{Id: id, Length: uint16(setHeaderLength + len(body))}
	_, err := sh.Encode(buf)
	require.NoError(t, err)
	buf.Write(body)
	return buf.Bytes()
}

// encodeMessage assembles a complete wire message out of pre-framed sets.
func encodeMessage(t *testing.T, sets ...[]byte) []byte {
	t.Helper()
	payload := &bytes.Buffer{}
	for _, s := range sets {
		payload.Write(s)
	}

	header := MessageHeader{
		Version:             Version,
		Length:              uint16(messageHeaderLength + payload.Len()),
		ExportTime:          1700000000,
		SequenceNumber:      1,
		ObservationDomainId: 1,
	}

	out := &bytes.Buffer{}
	_, err := header.Encode(out)
	require.NoError(t, err)
	out.Write(payload.Bytes())
	return out.Bytes()
}

func encodeTemplateBody(t *testing.T, tpl Template) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	_, err := tpl.Encode(buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestDecoderTemplateThenDataMessage(t *testing.T) {
	d := New()
	ctx := context.Background()

	tpl := Template{
		TemplateId: 500,
		FieldCount: 3,
		Fields: []FieldSpecifier{
			{Ident: 8, FieldLength: 4},  // sourceIPv4Address
			{Ident: 12, FieldLength: 4}, // destinationIPv4Address
			{Ident: 4, FieldLength: 1},  // protocolIdentifier
		},
	}

	templateMsg := encodeMessage(t, encodeSet(t, TemplateSetID, encodeTemplateBody(t, tpl)))
	msg, err := d.ParseMessage(ctx, templateMsg)
	require.NoError(t, err)
	require.Len(t, msg.Templates, 1)

	dataBody := []byte{10, 0, 0, 1, 10, 0, 0, 2, 6}
	dataMsg := encodeMessage(t, encodeSet(t, 500, dataBody))

	decoded, err := d.ParseMessage(ctx, dataMsg)
	require.NoError(t, err)
	require.Len(t, decoded.DataSets, 1)
	require.Len(t, decoded.DataSets[0].Records, 1)

	rec := decoded.DataSets[0].Records[0]
	require.Equal(t, uint64(6), rec.Fields[NameKey("protocolIdentifier")].Uint())
	require.Equal(t, "10.0.0.1", rec.Fields[NameKey("sourceIPv4Address")].String())
}

func TestDecoderDataSetWithNoBoundTemplateIsDropped(t *testing.T) {
	d := New()
	ctx := context.Background()

	msg := encodeMessage(t, encodeSet(t, 12345, []byte{1, 2, 3, 4}))
	decoded, err := d.ParseMessage(ctx, msg)
	require.NoError(t, err)
	require.Empty(t, decoded.DataSets)
}

func TestDecoderTemplateRedefinitionReplaces(t *testing.T) {
	d := New()
	ctx := context.Background()

	first := Template{TemplateId: 999, FieldCount: 1, Fields: []FieldSpecifier{{Ident: 4, FieldLength: 1}}}
	second := Template{TemplateId: 999, FieldCount: 2, Fields: []FieldSpecifier{{Ident: 4, FieldLength: 1}, {Ident: 8, FieldLength: 4}}}

	_, err := d.ParseMessage(ctx, encodeMessage(t, encodeSet(t, TemplateSetID, encodeTemplateBody(t, first))))
	require.NoError(t, err)
	_, err = d.ParseMessage(ctx, encodeMessage(t, encodeSet(t, TemplateSetID, encodeTemplateBody(t, second))))
	require.NoError(t, err)

	got, err := d.Templates.Get(ctx, 999)
	require.NoError(t, err)
	require.Equal(t, second, *got)
}

func TestDecoderTemplateWithdrawal(t *testing.T) {
	d := New()
	ctx := context.Background()

	tpl := Template{TemplateId: 500, FieldCount: 1, Fields: []FieldSpecifier{{Ident: 4, FieldLength: 1}}}
	_, err := d.ParseMessage(ctx, encodeMessage(t, encodeSet(t, TemplateSetID, encodeTemplateBody(t, tpl))))
	require.NoError(t, err)

	withdrawal := Template{TemplateId: 500, FieldCount: 0}
	msg, err := d.ParseMessage(ctx, encodeMessage(t, encodeSet(t, TemplateSetID, encodeTemplateBody(t, withdrawal))))
	require.NoError(t, err)
	require.Empty(t, msg.Templates)

	_, err = d.Templates.Get(ctx, 500)
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestDecoderOptionsTemplateAndDataSet(t *testing.T) {
	d := New()
	ctx := context.Background()

	ot := OptionsTemplate{
		TemplateId:      999,
		FieldCount:      2,
		ScopeFieldCount: 1,
		Fields: []FieldSpecifier{
			{Ident: 145, FieldLength: 2}, // templateId (scope)
			{Ident: 41, FieldLength: 8},  // exportedMessageTotalCount
		},
	}
	otBuf := &bytes.Buffer{}
	_, err := ot.Encode(otBuf)
	require.NoError(t, err)

	_, err = d.ParseMessage(ctx, encodeMessage(t, encodeSet(t, OptionsTemplateSetID, otBuf.Bytes())))
	require.NoError(t, err)

	dataBody := []byte{0x01, 0xF4, 0, 0, 0, 0, 0, 0, 0, 10} // templateId=500, count=10
	msg, err := d.ParseMessage(ctx, encodeMessage(t, encodeSet(t, 999, dataBody)))
	require.NoError(t, err)
	require.Len(t, msg.DataSets, 1)
	require.Equal(t, uint64(500), msg.DataSets[0].Records[0].Fields[NameKey("templateId")].Uint())
}

func TestDecoderUnknownEnterpriseFieldGetsEmptyValueAndError(t *testing.T) {
	d := New()
	ctx := context.Background()

	tpl := Template{
		TemplateId: 257,
		FieldCount: 1,
		Fields: []FieldSpecifier{
			{Ident: 205, FieldLength: 4, EnterpriseNumber: uint32Ptr(35632)}, // DNS_QUERY, PEN not yet registered
		},
	}
	_, err := d.ParseMessage(ctx, encodeMessage(t, encodeSet(t, TemplateSetID, encodeTemplateBody(t, tpl))))
	require.NoError(t, err)

	msg, err := d.ParseMessage(ctx, encodeMessage(t, encodeSet(t, 257, []byte{1, 2, 3, 4})))
	require.NoError(t, err)

	rec := msg.DataSets[0].Records[0]
	require.Contains(t, rec.Fields, UnrecognizedKey(35632, 205))
	require.Equal(t, KindEmpty, rec.Fields[UnrecognizedKey(35632, 205)].Kind, "unknown PEN must not carry raw bytes")
	require.Len(t, rec.Errors, 1)
	require.Contains(t, rec.Errors[0], "35632")
}

func TestDecoderKnownEnterpriseUnknownFieldGetsRawValueNoError(t *testing.T) {
	d := New()
	ctx := context.Background()
	// registering any field under PEN 35632 makes the enterprise "known"
	d.RegisterField(35632, 205, "DNS_QUERY", ParseString)

	tpl := Template{
		TemplateId: 258,
		FieldCount: 1,
		Fields: []FieldSpecifier{
			{Ident: 999, FieldLength: 4, EnterpriseNumber: uint32Ptr(35632)}, // unregistered field id under a known PEN
		},
	}
	_, err := d.ParseMessage(ctx, encodeMessage(t, encodeSet(t, TemplateSetID, encodeTemplateBody(t, tpl))))
	require.NoError(t, err)

	msg, err := d.ParseMessage(ctx, encodeMessage(t, encodeSet(t, 258, []byte{1, 2, 3, 4})))
	require.NoError(t, err)

	rec := msg.DataSets[0].Records[0]
	require.Contains(t, rec.Fields, UnrecognizedKey(35632, 999))
	require.Equal(t, []byte{1, 2, 3, 4}, rec.Fields[UnrecognizedKey(35632, 999)].Raw())
	require.Empty(t, rec.Errors, "a known enterprise with an unrecognized field id is not an error")
}

func TestDecoderRegisteredEnterpriseFieldIsNamed(t *testing.T) {
	d := New()
	ctx := context.Background()
	d.RegisterField(35632, 205, "DNS_QUERY", ParseString)

	tpl := Template{
		TemplateId: 259,
		FieldCount: 1,
		Fields:     []FieldSpecifier{{Ident: 205, FieldLength: VariableLength, EnterpriseNumber: uint32Ptr(35632)}},
	}
	_, err := d.ParseMessage(ctx, encodeMessage(t, encodeSet(t, TemplateSetID, encodeTemplateBody(t, tpl))))
	require.NoError(t, err)

	body := append([]byte{11}, []byte("example.com")...)
	msg, err := d.ParseMessage(ctx, encodeMessage(t, encodeSet(t, 259, body)))
	require.NoError(t, err)

	rec := msg.DataSets[0].Records[0]
	require.Equal(t, "example.com", rec.Fields[NameKey("DNS_QUERY")].Str())
}

func TestDecoderRejectsShortMessage(t *testing.T) {
	d := New()
	_, err := d.ParseMessage(context.Background(), []byte{0, 10})
	require.Error(t, err)
}

func TestDecoderRejectsDeclaredLengthShorterThanHeader(t *testing.T) {
	d := New()
	buf := &bytes.Buffer{}
	header := MessageHeader{Version: Version, Length: 4}
	_, err := header.Encode(buf)
	require.NoError(t, err)
	buf.Write(make([]byte, 20))

	_, err = d.ParseMessage(context.Background(), buf.Bytes())
	require.ErrorIs(t, err, ErrMessageTruncated)
}

func uint32Ptr(v uint32) *uint32 { return &v }
