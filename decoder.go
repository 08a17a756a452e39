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
	"time"

	"github.com/go-logr/logr"
)

// Decoder is the Message Driver of §4.5: it owns the template caches and the
// enterprise formatter registry for one IPFIX stream, and turns a raw wire
// buffer into a fully decoded Message.
type Decoder struct {
	Templates        TemplateCache
	OptionsTemplates TemplateCache
	Registry         *EnterpriseRegistry

	log logr.Logger
}

// New returns a Decoder backed by unbounded in-memory template caches and
// the built-in IANA registry.
func New() *Decoder {
	return &Decoder{
		Templates:        NewDefaultEphemeralCache(),
		OptionsTemplates: NewDefaultEphemeralCache(),
		Registry:         NewEnterpriseRegistry(),
		log:              logr.Discard(),
	}
}

// NewWithCache returns a Decoder backed by caller-supplied template caches,
// e.g. a DecayingEphemeralCache bounded by entry count (§5).
func NewWithCache(templates, options TemplateCache) *Decoder {
	return &Decoder{
		Templates:        templates,
		OptionsTemplates: options,
		Registry:         NewEnterpriseRegistry(),
		log:              logr.Discard(),
	}
}

// SetLogger installs the logger used for per-message/per-set diagnostics.
func (d *Decoder) SetLogger(log logr.Logger) {
	d.log = log
}

// RegisterField installs a formatter for (pen, id) in the decoder's registry.
func (d *Decoder) RegisterField(pen uint32, id uint16, name string, parse ParseFunc) {
	d.Registry.Register(pen, id, name, parse)
}

// ParseMessage decodes one complete IPFIX Message from buf (§2, §4.5):
// header, then every Set in wire order. Template and Options Template Sets
// are installed into the caches immediately, so later sets in the same
// message can reference templates defined earlier in it. Sets with an
// unroutable id (KindReserved) and Data Sets with no bound template are
// skipped rather than treated as fatal, matching the exporter-tolerant
// posture of §4.5's "Message Driver" component design.
func (d *Decoder) ParseMessage(ctx context.Context, buf []byte) (*Message, error) {
	start := time.Now()
	defer func() {
		DecodeDurationMicroseconds.Observe(float64(time.Since(start).Microseconds()))
	}()

	msg, err := d.parseMessage(ctx, buf)
	if err != nil {
		DecodeErrorsTotal.Inc()
		return nil, err
	}
	MessagesTotal.Inc()
	return msg, nil
}

func (d *Decoder) parseMessage(ctx context.Context, buf []byte) (*Message, error) {
	r := bytes.NewReader(buf)

	var header MessageHeader
	if _, err := header.Decode(r); err != nil {
		return nil, err
	}

	if int(header.Length) < messageHeaderLength {
		return nil, MessageTruncated(int(header.Length), len(buf))
	}
	if int(header.Length) > len(buf) {
		return nil, MessageTruncated(int(header.Length), len(buf))
	}

	payload := buf[messageHeaderLength:header.Length]
	sets, err := splitSets(payload)
	if err != nil {
		return nil, err
	}

	msg := &Message{Header: header}

	for _, set := range sets {
		switch set.Kind {
		case KindTemplateSet:
			DecodedSetsTotal.WithLabelValues("template").Inc()
			d.installTemplates(ctx, set, msg)
		case KindOptionsTemplateSet:
			DecodedSetsTotal.WithLabelValues("options_template").Inc()
			d.installOptionsTemplates(ctx, set, msg)
		case KindDataSet:
			DecodedSetsTotal.WithLabelValues("data").Inc()
			d.decodeDataSet(ctx, set, msg)
		default:
			d.log.V(1).Info("skipping set with unroutable id", "id", set.Header.Id)
		}
	}

	return msg, nil
}

func (d *Decoder) installTemplates(ctx context.Context, set Set, msg *Message) {
	templates := decodeTemplateSet(set.Body)
	for _, t := range templates {
		t := t
		if t.FieldCount == 0 {
			// withdrawal deviation (DESIGN.md Open Question #2): an empty
			// template record removes any existing definition for its id.
			_ = d.Templates.Delete(ctx, t.TemplateId)
			continue
		}
		_ = d.Templates.Add(ctx, t.TemplateId, &t)
		msg.Templates = append(msg.Templates, t)
	}
}

func (d *Decoder) installOptionsTemplates(ctx context.Context, set Set, msg *Message) {
	templates := decodeOptionsTemplateSet(set.Body)
	for _, t := range templates {
		t := t
		if t.FieldCount == 0 {
			_ = d.OptionsTemplates.DeleteOptions(ctx, t.TemplateId)
			continue
		}
		_ = d.OptionsTemplates.AddOptions(ctx, t.TemplateId, &t)
		msg.OptionsTemplates = append(msg.OptionsTemplates, t)
	}
}

func (d *Decoder) decodeDataSet(ctx context.Context, set Set, msg *Message) {
	var fields []FieldSpecifier

	if t, err := d.Templates.Get(ctx, set.Header.Id); err == nil {
		fields = t.Fields
	} else if ot, err := d.OptionsTemplates.GetOptions(ctx, set.Header.Id); err == nil {
		fields = ot.Fields
	} else {
		d.log.V(1).Info(ErrNoTemplateBound.Error(), "id", set.Header.Id)
		return
	}

	r := bytes.NewReader(set.Body)
	records := make([]DataRecord, 0)

	for r.Len() > 0 {
		start := r.Len()
		rec, err := d.decodeDataRecord(r, set.Header.Id, fields)
		if err != nil {
			break
		}
		if start == r.Len() {
			break
		}
		records = append(records, *rec)
	}

	DecodedRecordsTotal.Add(float64(len(records)))
	msg.DataSets = append(msg.DataSets, DataSet{Header: set.Header, Records: records})
}

// decodeDataRecord reads one Data Record described by fields off r. Parse
// functions never fail (§4.4: a formatter always produces some Value); the
// only failure mode is running out of bytes mid-record, which is propagated
// so the Data Set loop can stop and discard the partial tail.
func (d *Decoder) decodeDataRecord(r *bytes.Reader, templateId uint16, fields []FieldSpecifier) (*DataRecord, error) {
	rec := newDataRecord(templateId)

	for _, fs := range fields {
		var raw []byte
		var err error

		if fs.FieldLength == VariableLength {
			raw, err = readVariableLength(r)
		} else {
			raw, err = take(r, int(fs.FieldLength))
		}
		if err != nil {
			return rec, err
		}

		pen := fs.PEN()
		if pen != 0 && !d.Registry.PENKnown(pen) {
			// unknown enterprise: the field is kept under its (PEN, id) key
			// with an empty value and the failure is recorded in Errors;
			// sibling fields in the record still decode.
			UnrecognizedFieldsTotal.Inc()
			rec.Fields[UnrecognizedKey(pen, fs.Ident)] = EmptyValue()
			rec.addError(UnknownEnterprise(pen))
			continue
		}

		formatter, ok := d.Registry.Lookup(pen, fs.Ident)
		if !ok {
			// known enterprise, unrecognized field id: raw bytes, no error.
			UnrecognizedFieldsTotal.Inc()
			rec.Fields[UnrecognizedKey(pen, fs.Ident)] = RawValue(raw)
			continue
		}
		rec.Fields[NameKey(formatter.Name)] = formatter.Parse(raw)
	}

	return rec, nil
}
