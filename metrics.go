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

import "github.com/prometheus/client_golang/prometheus"

var (
	MessagesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "decoder_decoded_messages_total",
		Help: "Total number of decoded IPFIX messages",
	})
	DecodeErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "decoder_errors_total",
		Help: "Total number of messages that failed to decode",
	})
	DecodeDurationMicroseconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "decoder_duration_microseconds",
		Help:    "Duration of decoding a single IPFIX message in microseconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})
	DecodedSetsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "decoder_decoded_sets_total",
		Help: "Total number of decoded sets per kind",
	}, []string{"kind"})
	DecodedRecordsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "decoder_decoded_records_total",
		Help: "Total number of decoded Data Records",
	})
	UnrecognizedFieldsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "decoder_unrecognized_fields_total",
		Help: "Total number of Data Record fields with no registered formatter",
	})
)

var (
	UDPPacketsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "udp_listener_packets_total",
		Help: "Total number of packets received via UDP listener",
	})
	UDPErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "udp_listener_errors_total",
		Help: "Total number of errors encountered in the UDP listener",
	})
	UDPPacketBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "udp_listener_packet_bytes",
		Help: "Total number of bytes read in the UDP listener",
	})
)

// MustRegister registers every collector above against reg. Called once
// from cmd/ipfix-collectord before serving /metrics.
func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		MessagesTotal,
		DecodeErrorsTotal,
		DecodeDurationMicroseconds,
		DecodedSetsTotal,
		DecodedRecordsTotal,
		UnrecognizedFieldsTotal,
		UDPPacketsTotal,
		UDPErrorsTotal,
		UDPPacketBytes,
	)
}
