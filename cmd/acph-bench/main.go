// Copyright 2021 Alvalor S.A.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

// Command acph-bench builds a tree over the lines of a word list and
// reports its build time and slot efficiency, optionally exposing the same
// numbers as Prometheus gauges on a /metrics endpoint.
package main

import (
	"bufio"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/adesutherland/acph"
	"github.com/adesutherland/acph/metrics"
)

func main() {

	var (
		flagWords   string
		flagLog     string
		flagServe   string
		flagDump    bool
		flagDumpBFS bool
	)

	pflag.StringVarP(&flagWords, "words", "w", "", "path to a newline-delimited word list")
	pflag.StringVarP(&flagLog, "log", "l", "info", "log output level")
	pflag.StringVarP(&flagServe, "serve", "s", "", "address to expose build stats on /metrics, empty to disable")
	pflag.BoolVar(&flagDump, "dump", false, "print the tree structure depth-first after building")
	pflag.BoolVar(&flagDumpBFS, "dump-levels", false, "print the tree structure breadth-first after building")

	pflag.Parse()

	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLog)
	if err != nil {
		log.Fatal().Err(err).Msg("could not parse log level")
	}
	log = log.Level(level)

	if flagWords == "" {
		log.Fatal().Msg("must specify a word list with --words")
	}

	file, err := os.Open(flagWords)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open word list")
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal().Err(err).Msg("could not read word list")
	}

	payloads := make([]acph.Payload, len(words))
	for i := range words {
		payloads[i] = i
	}

	start := time.Now()
	tree, err := acph.BuildStrings(words, payloads, acph.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("could not build tree")
	}
	elapsed := time.Since(start)

	stats := tree.Efficiency()
	log.Info().
		Int("words", len(words)).
		Dur("build_time", elapsed).
		Int("slots_used", stats.SlotsUsed).
		Int("slots_empty", stats.SlotsEmpty).
		Int("max_compare_depth", stats.MaxCompareDepth).
		Float64("slot_efficiency", stats.SlotEfficiency()).
		Msg("tree built")

	if flagDump {
		if err := tree.Dump(os.Stdout, nil); err != nil {
			log.Fatal().Err(err).Msg("could not dump tree")
		}
	}
	if flagDumpBFS {
		if err := tree.DumpLevels(os.Stdout, nil); err != nil {
			log.Fatal().Err(err).Msg("could not dump tree levels")
		}
	}

	if flagServe == "" {
		return
	}

	gauges := metrics.NewTree()
	gauges.Observe(stats)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info().Str("address", flagServe).Msg("serving metrics")
	if err := http.ListenAndServe(flagServe, mux); err != nil {
		log.Fatal().Err(err).Msg("could not serve metrics")
	}
}
