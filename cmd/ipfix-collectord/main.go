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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	ipfix "github.com/flowlens/ipfix"
)

var (
	listenAddr  string
	metricsAddr string
	dictionary  string
	cacheCap    int
)

var rootCmd = &cobra.Command{
	Use:     "ipfix-collectord",
	Short:   "Decode IPFIX flow export traffic and print it as JSON",
	Version: "0.1.0",
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVar(&listenAddr, "listen", ":4739", "UDP address to listen for IPFIX messages on")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "address to serve Prometheus metrics on")
	rootCmd.Flags().StringVar(&dictionary, "dictionary", "", "path to a YAML vendor dictionary to load at startup")
	rootCmd.Flags().IntVar(&cacheCap, "template-cache-capacity", 0, "max template cache entries (0 = unbounded)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := ipfix.Log.WithName("ipfix-collectord")
	ipfix.SetLogger(log)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = ipfix.IntoContext(ctx, log)

	var decoder *ipfix.Decoder
	if cacheCap > 0 {
		decoder = ipfix.NewWithCache(
			ipfix.NewDefaultDecayingEphemeralCache(cacheCap),
			ipfix.NewDefaultDecayingEphemeralCache(cacheCap),
		)
	} else {
		decoder = ipfix.New()
	}
	decoder.SetLogger(log)

	if dictionary != "" {
		f, err := os.Open(dictionary)
		if err != nil {
			return fmt.Errorf("failed to open dictionary %s: %w", dictionary, err)
		}
		defer f.Close()
		if err := ipfix.LoadDictionary(decoder.Registry, f); err != nil {
			return fmt.Errorf("failed to load dictionary %s: %w", dictionary, err)
		}
	}

	reg := prometheus.NewRegistry()
	ipfix.MustRegister(reg)
	metricsSrv := &http.Server{
		Addr:    metricsAddr,
		Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
	go func() {
		log.Info("serving metrics", "addr", metricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err, "metrics server exited")
		}
	}()
	defer metricsSrv.Close()

	listener := ipfix.NewUDPListener(listenAddr)

	out := json.NewEncoder(os.Stdout)

	go func() {
		for packet := range listener.Messages() {
			msg, err := decoder.ParseMessage(ctx, packet)
			if err != nil {
				log.Error(err, "failed to decode IPFIX message")
				continue
			}
			if err := out.Encode(msg); err != nil {
				log.Error(err, "failed to write decoded message")
			}
		}
	}()

	return listener.Listen(ctx)
}
