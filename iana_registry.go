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

// ianaInformationElements is the built-in table of well-known IANA-assigned
// IPFIX Information Elements (PEN 0), keyed by element id. It covers the
// elements exercised by common exporters (NetFlow v9/IPFIX routers) rather
// than the full IANA registry; entries absent here surface to callers as
// unrecognized fields (§4.4) until a vendor dictionary or Register call
// fills them in. Field type assignments follow the IANA IPFIX Information
// Elements registry (https://www.iana.org/assignments/ipfix).
var ianaInformationElements = map[uint16]FieldFormatter{
	1:   {Name: "octetDeltaCount", Parse: ParseUnsigned},
	2:   {Name: "packetDeltaCount", Parse: ParseUnsigned},
	3:   {Name: "deltaFlowCount", Parse: ParseUnsigned},
	4:   {Name: "protocolIdentifier", Parse: ParseUnsigned},
	5:   {Name: "ipClassOfService", Parse: ParseUnsigned},
	6:   {Name: "tcpControlBits", Parse: ParseUnsigned},
	7:   {Name: "sourceTransportPort", Parse: ParseUnsigned},
	8:   {Name: "sourceIPv4Address", Parse: ParseIPv4Address},
	9:   {Name: "sourceIPv4PrefixLength", Parse: ParseUnsigned},
	10:  {Name: "ingressInterface", Parse: ParseUnsigned},
	11:  {Name: "destinationTransportPort", Parse: ParseUnsigned},
	12:  {Name: "destinationIPv4Address", Parse: ParseIPv4Address},
	13:  {Name: "destinationIPv4PrefixLength", Parse: ParseUnsigned},
	14:  {Name: "egressInterface", Parse: ParseUnsigned},
	15:  {Name: "ipNextHopIPv4Address", Parse: ParseIPv4Address},
	16:  {Name: "bgpSourceAsNumber", Parse: ParseUnsigned},
	17:  {Name: "bgpDestinationAsNumber", Parse: ParseUnsigned},
	18:  {Name: "bgpNextHopIPv4Address", Parse: ParseIPv4Address},
	19:  {Name: "postMCastPacketDeltaCount", Parse: ParseUnsigned},
	20:  {Name: "postMCastOctetDeltaCount", Parse: ParseUnsigned},
	21:  {Name: "flowEndSysUpTime", Parse: ParseUnsigned},
	22:  {Name: "flowStartSysUpTime", Parse: ParseUnsigned},
	23:  {Name: "postOctetDeltaCount", Parse: ParseUnsigned},
	24:  {Name: "postPacketDeltaCount", Parse: ParseUnsigned},
	25:  {Name: "minimumIpTotalLength", Parse: ParseUnsigned},
	26:  {Name: "maximumIpTotalLength", Parse: ParseUnsigned},
	27:  {Name: "sourceIPv6Address", Parse: ParseIPv6Address},
	28:  {Name: "destinationIPv6Address", Parse: ParseIPv6Address},
	29:  {Name: "sourceIPv6PrefixLength", Parse: ParseUnsigned},
	30:  {Name: "destinationIPv6PrefixLength", Parse: ParseUnsigned},
	31:  {Name: "flowLabelIPv6", Parse: ParseUnsigned},
	32:  {Name: "icmpTypeCodeIPv4", Parse: ParseUnsigned},
	33:  {Name: "igmpType", Parse: ParseUnsigned},
	36:  {Name: "flowActiveTimeout", Parse: ParseUnsigned},
	37:  {Name: "flowIdleTimeout", Parse: ParseUnsigned},
	40:  {Name: "exportedOctetTotalCount", Parse: ParseUnsigned},
	41:  {Name: "exportedMessageTotalCount", Parse: ParseUnsigned},
	42:  {Name: "exportedFlowRecordTotalCount", Parse: ParseUnsigned},
	44:  {Name: "sourceIPv4Prefix", Parse: ParseIPv4Address},
	45:  {Name: "destinationIPv4Prefix", Parse: ParseIPv4Address},
	52:  {Name: "minimumTTL", Parse: ParseUnsigned},
	53:  {Name: "maximumTTL", Parse: ParseUnsigned},
	54:  {Name: "fragmentIdentification", Parse: ParseUnsigned},
	55:  {Name: "postIpClassOfService", Parse: ParseUnsigned},
	56:  {Name: "sourceMacAddress", Parse: ParseMACAddress},
	57:  {Name: "postDestinationMacAddress", Parse: ParseMACAddress},
	58:  {Name: "vlanId", Parse: ParseUnsigned},
	59:  {Name: "postVlanId", Parse: ParseUnsigned},
	60:  {Name: "ipVersion", Parse: ParseUnsigned},
	61:  {Name: "flowDirection", Parse: ParseUnsigned},
	62:  {Name: "ipNextHopIPv6Address", Parse: ParseIPv6Address},
	63:  {Name: "bgpNextHopIPv6Address", Parse: ParseIPv6Address},
	70:  {Name: "mplsTopLabelStackSection", Parse: ParseMPLSLabelStack},
	80:  {Name: "destinationMacAddress", Parse: ParseMACAddress},
	81:  {Name: "postSourceMacAddress", Parse: ParseMACAddress},
	88:  {Name: "fragmentOffset", Parse: ParseUnsigned},
	89:  {Name: "forwardingStatus", Parse: ParseUnsigned},
	90:  {Name: "mplsVpnRouteDistinguisher", Parse: ParseOctetArray},
	128: {Name: "bgpNextAdjacentAsNumber", Parse: ParseUnsigned},
	129: {Name: "bgpPrevAdjacentAsNumber", Parse: ParseUnsigned},
	130: {Name: "exporterIPv4Address", Parse: ParseIPv4Address},
	131: {Name: "exporterIPv6Address", Parse: ParseIPv6Address},
	132: {Name: "droppedOctetDeltaCount", Parse: ParseUnsigned},
	133: {Name: "droppedPacketDeltaCount", Parse: ParseUnsigned},
	136: {Name: "flowEndReason", Parse: ParseUnsigned},
	137: {Name: "commonPropertiesId", Parse: ParseUnsigned},
	138: {Name: "observationPointId", Parse: ParseUnsigned},
	139: {Name: "icmpTypeCodeIPv6", Parse: ParseUnsigned},
	140: {Name: "mplsTopLabelIPv6Address", Parse: ParseIPv6Address},
	141: {Name: "lineCardId", Parse: ParseUnsigned},
	142: {Name: "portId", Parse: ParseUnsigned},
	143: {Name: "meteringProcessId", Parse: ParseUnsigned},
	144: {Name: "exportingProcessId", Parse: ParseUnsigned},
	145: {Name: "templateId", Parse: ParseUnsigned},
	146: {Name: "wlanChannelId", Parse: ParseUnsigned},
	147: {Name: "wlanSSID", Parse: ParseString},
	148: {Name: "flowId", Parse: ParseUnsigned},
	149: {Name: "observationDomainId", Parse: ParseUnsigned},
	150: {Name: "flowStartSeconds", Parse: ParseDateTimeSeconds},
	151: {Name: "flowEndSeconds", Parse: ParseDateTimeSeconds},
	152: {Name: "flowStartMilliSeconds", Parse: ParseDateTimeMilliseconds},
	153: {Name: "flowEndMilliSeconds", Parse: ParseDateTimeMilliseconds},
	154: {Name: "flowStartMicroseconds", Parse: ParseDateTimeMicroseconds},
	155: {Name: "flowEndMicroseconds", Parse: ParseDateTimeMicroseconds},
	156: {Name: "flowStartNanoseconds", Parse: ParseDateTimeNanoseconds},
	157: {Name: "flowEndNanoseconds", Parse: ParseDateTimeNanoseconds},
	158: {Name: "flowStartDeltaMicroseconds", Parse: ParseUnsigned},
	159: {Name: "flowEndDeltaMicroseconds", Parse: ParseUnsigned},
	160: {Name: "systemInitTimeMilliseconds", Parse: ParseDateTimeMilliseconds},
	161: {Name: "flowDurationMilliseconds", Parse: ParseUnsigned},
	162: {Name: "flowDurationMicroseconds", Parse: ParseUnsigned},
	163: {Name: "observedFlowTotalCount", Parse: ParseUnsigned},
	164: {Name: "ignoredPacketTotalCount", Parse: ParseUnsigned},
	165: {Name: "ignoredOctetTotalCount", Parse: ParseUnsigned},
	166: {Name: "notSentFlowTotalCount", Parse: ParseUnsigned},
	167: {Name: "notSentPacketTotalCount", Parse: ParseUnsigned},
	168: {Name: "notSentOctetTotalCount", Parse: ParseUnsigned},
	169: {Name: "destinationIPv6Prefix", Parse: ParseIPv6Address},
	170: {Name: "sourceIPv6Prefix", Parse: ParseIPv6Address},
	171: {Name: "postOctetTotalCount", Parse: ParseUnsigned},
	172: {Name: "postPacketTotalCount", Parse: ParseUnsigned},
	173: {Name: "flowKeyIndicator", Parse: ParseUnsigned},
	176: {Name: "icmpTypeIPv4", Parse: ParseUnsigned},
	177: {Name: "icmpCodeIPv4", Parse: ParseUnsigned},
	178: {Name: "icmpTypeIPv6", Parse: ParseUnsigned},
	179: {Name: "icmpCodeIPv6", Parse: ParseUnsigned},
	180: {Name: "udpSourcePort", Parse: ParseUnsigned},
	181: {Name: "udpDestinationPort", Parse: ParseUnsigned},
	182: {Name: "tcpSourcePort", Parse: ParseUnsigned},
	183: {Name: "tcpDestinationPort", Parse: ParseUnsigned},
	184: {Name: "tcpSequenceNumber", Parse: ParseUnsigned},
	185: {Name: "tcpAcknowledgementNumber", Parse: ParseUnsigned},
	186: {Name: "tcpWindowSize", Parse: ParseUnsigned},
	187: {Name: "tcpUrgentPointer", Parse: ParseUnsigned},
	188: {Name: "tcpHeaderLength", Parse: ParseUnsigned},
	189: {Name: "ipHeaderLength", Parse: ParseUnsigned},
	190: {Name: "totalLengthIPv4", Parse: ParseUnsigned},
	191: {Name: "payloadLengthIPv6", Parse: ParseUnsigned},
	192: {Name: "ipTTL", Parse: ParseUnsigned},
	193: {Name: "nextHeaderIPv6", Parse: ParseUnsigned},
	194: {Name: "mplsPayloadLength", Parse: ParseUnsigned},
	195: {Name: "ipDiffServCodePoint", Parse: ParseUnsigned},
	196: {Name: "ipPrecedence", Parse: ParseUnsigned},
	197: {Name: "fragmentFlags", Parse: ParseUnsigned},
	198: {Name: "octetDeltaSumOfSquares", Parse: ParseUnsigned},
	199: {Name: "octetTotalSumOfSquares", Parse: ParseUnsigned},
	200: {Name: "mplsTopLabelTTL", Parse: ParseUnsigned},
	201: {Name: "mplsLabelStackLength", Parse: ParseUnsigned},
	202: {Name: "mplsLabelStackDepth", Parse: ParseUnsigned},
	203: {Name: "mplsTopLabelExp", Parse: ParseUnsigned},
	204: {Name: "ipPayloadLength", Parse: ParseUnsigned},
	205: {Name: "udpMessageLength", Parse: ParseUnsigned},
	206: {Name: "isMulticast", Parse: ParseBoolean},
	207: {Name: "ipv4IHL", Parse: ParseUnsigned},
	208: {Name: "ipv4Options", Parse: ParseUnsigned},
	209: {Name: "tcpOptions", Parse: ParseUnsigned},
	210: {Name: "paddingOctets", Parse: ParseOctetArray},
	211: {Name: "collectorIPv4Address", Parse: ParseIPv4Address},
	212: {Name: "collectorIPv6Address", Parse: ParseIPv6Address},
	213: {Name: "exportInterface", Parse: ParseUnsigned},
	214: {Name: "exportProtocolVersion", Parse: ParseUnsigned},
	215: {Name: "exportTransportProtocol", Parse: ParseUnsigned},
	216: {Name: "collectorTransportPort", Parse: ParseUnsigned},
	217: {Name: "exporterTransportPort", Parse: ParseUnsigned},
	225: {Name: "postNATSourceIPv4Address", Parse: ParseIPv4Address},
	226: {Name: "postNATDestinationIPv4Address", Parse: ParseIPv4Address},
	227: {Name: "postNAPTSourceTransportPort", Parse: ParseUnsigned},
	228: {Name: "postNAPTDestinationTransportPort", Parse: ParseUnsigned},
	233: {Name: "firewallEvent", Parse: ParseUnsigned},
	234: {Name: "ingressVRFID", Parse: ParseUnsigned},
	235: {Name: "egressVRFID", Parse: ParseUnsigned},
	236: {Name: "VRFname", Parse: ParseString},
	239: {Name: "biflowDirection", Parse: ParseUnsigned},
	243: {Name: "dot1qVlanId", Parse: ParseUnsigned},
	244: {Name: "dot1qPriority", Parse: ParseUnsigned},
	245: {Name: "dot1qCustomerVlanId", Parse: ParseUnsigned},
	252: {Name: "postDot1qVlanId", Parse: ParseUnsigned},
	254: {Name: "postDot1qCustomerVlanId", Parse: ParseUnsigned},
	256: {Name: "ethernetType", Parse: ParseUnsigned},
	258: {Name: "collectionTimeMilliseconds", Parse: ParseDateTimeMilliseconds},
	290: {Name: "collectorCertificate", Parse: ParseOctetArray},
	291: {Name: "exporterCertificate", Parse: ParseOctetArray},
	403: {Name: "natOriginatingAddressRealm", Parse: ParseUnsigned},
	420: {Name: "tcpSynTotalCount", Parse: ParseUnsigned},
	421: {Name: "tcpFinTotalCount", Parse: ParseUnsigned},
	422: {Name: "tcpRstTotalCount", Parse: ParseUnsigned},
	423: {Name: "tcpPshTotalCount", Parse: ParseUnsigned},
	424: {Name: "tcpAckTotalCount", Parse: ParseUnsigned},
	425: {Name: "tcpUrgTotalCount", Parse: ParseUnsigned},
}
