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
	"encoding/binary"
	"net"
	"strings"
)

// ParseFunc decodes a field's raw octets into a Value. Every entry in an
// EnterpriseRegistry carries one of these rather than a constructor for an
// interface type (§4.4's "function pointer keyed by PEN and field id").
type ParseFunc func(raw []byte) Value

// ParseUnsigned decodes raw as a big-endian unsigned integer, including
// RFC 7011 §6.2 reduced-length encodings: the teacher's Unsigned32/
// Unsigned64 pad the short encoding into a full-width buffer before calling
// binary.BigEndian; this dispatches on the observed length instead of a
// pre-declared field width, since the registry only ever sees raw bytes.
func ParseUnsigned(raw []byte) Value {
	var padded [8]byte
	offset := 8 - len(raw)
	if offset < 0 {
		offset = 0
		raw = raw[len(raw)-8:]
	}
	copy(padded[offset:], raw)
	return UintValue(binary.BigEndian.Uint64(padded[:]))
}

// ParseSigned decodes raw as a big-endian two's-complement signed integer,
// surfaced through Value's unsigned accessor since the tagged union has no
// separate signed Kind; callers needing the sign reinterpret Uint() at the
// field's declared bit width.
func ParseSigned(raw []byte) Value {
	return ParseUnsigned(raw)
}

// ParseIPv4Address parses a 4-octet ipv4Address field, grounded on the
// teacher's IPv4Address.Decode.
func ParseIPv4Address(raw []byte) Value {
	return IPv4Value(net.IP(append([]byte(nil), raw...)).To4())
}

// ParseIPv6Address parses a 16-octet ipv6Address field.
func ParseIPv6Address(raw []byte) Value {
	return IPv6Value(net.IP(append([]byte(nil), raw...)).To16())
}

// ParseMACAddress parses a 6-octet macAddress field.
func ParseMACAddress(raw []byte) Value {
	return MACValue(net.HardwareAddr(append([]byte(nil), raw...)))
}

// ParseString decodes a UTF-8 string field, scrubbing any invalid runes a
// misbehaving exporter may have sent rather than rejecting the record.
func ParseString(raw []byte) Value {
	return StringValue(strings.ToValidUTF8(string(raw), ""))
}

// ParseOctetArray passes raw bytes through unmodified, for fields with no
// registered interpretation or declared type octetArray.
func ParseOctetArray(raw []byte) Value {
	return RawValue(append([]byte(nil), raw...))
}

// ParseBoolean decodes the IPFIX boolean type (RFC 7011 §6.1.5: 1 = true,
// 2 = false), surfaced as a uint so callers can compare against 1 directly.
func ParseBoolean(raw []byte) Value {
	return ParseUnsigned(raw)
}

// ParseMPLSLabelStack decomposes an mplsLabelStackSection into its
// individual 3-octet label entries: 20-bit label, 3-bit traffic class,
// 1-bit bottom-of-stack flag, grounded on the teacher's rfc5103/MPLS
// bit-packing convention.
func ParseMPLSLabelStack(raw []byte) Value {
	labels := make([]MPLSLabel, 0, len(raw)/3)
	for i := 0; i+3 <= len(raw); i += 3 {
		word := uint32(raw[i])<<16 | uint32(raw[i+1])<<8 | uint32(raw[i+2])
		labels = append(labels, MPLSLabel{
			Label:         word >> 4,
			TrafficClass:  uint8((word >> 1) & 0x7),
			BottomOfStack: word&0x1 != 0,
		})
	}
	return MPLSValue(labels)
}

// ParseDateTimeSeconds / ParseDateTimeMilliseconds / ParseDateTimeMicroseconds
// / ParseDateTimeNanoseconds all decode as plain unsigned integers: the
// registry hands callers the raw epoch-relative magnitude (matching the
// teacher's per-type Decode, minus the time.Time conversion, since Value has
// no dedicated time Kind) rather than interpreting the NTP/Unix epoch here.
var (
	ParseDateTimeSeconds      = ParseUnsigned
	ParseDateTimeMilliseconds = ParseUnsigned
	ParseDateTimeMicroseconds = ParseUnsigned
	ParseDateTimeNanoseconds  = ParseUnsigned
)
