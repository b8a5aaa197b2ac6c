// Copyright 2025 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package metrics

import (
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	defaultRegistry = newRegistry()

	mu         sync.Mutex
	counters   = map[string]*counter{}
	counterVec = map[string]*CounterVec{}
	histograms = map[string]prometheus.Histogram{}
)

func newRegistry() *prometheus.Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewGoCollector())
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return r
}

// Registry returns the registry every metric of this package is registered in.
func Registry() *prometheus.Registry {
	return defaultRegistry
}

// GetOrCreateCounter returns registered counter with the given name
// or creates new counter if the registry doesn't contain counter with
// the given name.
//
// The returned counter is safe to use from concurrent goroutines.
func GetOrCreateCounter(name string, help ...string) Counter {
	mu.Lock()
	defer mu.Unlock()

	if c, ok := counters[name]; ok {
		return c
	}

	c := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: helpText(name, help)})
	if err := register(c); err != nil {
		panic(fmt.Errorf("could not get or create new counter: %w", err))
	}

	counters[name] = &counter{c}
	return counters[name]
}

// GetOrCreateCounterVec is GetOrCreateCounter for a counter family with
// the given label names.
func GetOrCreateCounterVec(name string, labels []string, help ...string) *CounterVec {
	mu.Lock()
	defer mu.Unlock()

	if v, ok := counterVec[name]; ok {
		return v
	}

	v := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: helpText(name, help)}, labels)
	if err := register(v); err != nil {
		panic(fmt.Errorf("could not get or create new countervec: %w", err))
	}

	counterVec[name] = &CounterVec{vec: v}
	return counterVec[name]
}

// GetOrCreateHistogram returns registered histogram with the given name or
// creates one with the default buckets.
func GetOrCreateHistogram(name string, help ...string) prometheus.Histogram {
	mu.Lock()
	defer mu.Unlock()

	if h, ok := histograms[name]; ok {
		return h
	}

	h := prometheus.NewHistogram(prometheus.HistogramOpts{Name: name, Help: helpText(name, help)})
	if err := register(h); err != nil {
		panic(fmt.Errorf("could not get or create new histogram: %w", err))
	}

	histograms[name] = h
	return h
}

func register(c prometheus.Collector) error {
	if err := defaultRegistry.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return err
		}
	}
	return nil
}

func helpText(name string, help []string) string {
	if len(help) > 0 {
		return help[0]
	}
	return name
}
